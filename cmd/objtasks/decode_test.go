package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pavel0606/mitso-core-js/pkg/jsonx"
)

// newDecodeCmd creates a fresh decode command for testing
func newDecodeCmd(out *bytes.Buffer, in string) *cobra.Command {
	cmd := &cobra.Command{
		Use:  "decode [json|-]",
		Args: cobra.MaximumNArgs(1),
		RunE: runDecode,

		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.Flags().StringVar(&decodeProto, "proto", "rectangle", "Prototype to bind")
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(in))
	return cmd
}

func TestDecodeCmd(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		stdin string
		want  string
	}{
		{
			name: "rectangle argument",
			args: []string{`{"width":10,"height":5}`},
			want: "keys: width, height\narea: 50\n",
		},
		{
			name: "duplicate keys last value wins",
			args: []string{`{"width":1,"height":5,"width":3}`},
			want: "keys: width, height\narea: 15\n",
		},
		{
			name:  "stdin dash",
			args:  []string{"-"},
			stdin: `{"height": 2, "width": 4}`,
			want:  "keys: height, width\narea: 8\n",
		},
		{
			name:  "stdin without argument",
			args:  []string{},
			stdin: "{\"width\":3,\"height\":3}\n",
			want:  "keys: width, height\narea: 9\n",
		},
		{
			name: "circle",
			args: []string{"--proto", "circle", `{"radius":1}`},
			want: "keys: radius\narea: 3.141592653589793\n",
		},
		{
			name: "missing fields read as zero",
			args: []string{`{}`},
			want: "keys: \narea: 0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cmd := newDecodeCmd(&buf, tt.stdin)
			cmd.SetArgs(tt.args)
			require.NoError(t, cmd.Execute())
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestDecodeCmd_Errors(t *testing.T) {
	t.Run("malformed json", func(t *testing.T) {
		cmd := newDecodeCmd(&bytes.Buffer{}, "")
		cmd.SetArgs([]string{`{"width":`})
		err := cmd.Execute()
		assert.ErrorIs(t, err, jsonx.ErrParse)
	})

	t.Run("not an object", func(t *testing.T) {
		cmd := newDecodeCmd(&bytes.Buffer{}, "")
		cmd.SetArgs([]string{`[1,2]`})
		err := cmd.Execute()
		assert.ErrorIs(t, err, jsonx.ErrNotObject)
	})

	t.Run("unknown prototype", func(t *testing.T) {
		cmd := newDecodeCmd(&bytes.Buffer{}, "")
		cmd.SetArgs([]string{"--proto", "triangle", `{}`})
		err := cmd.Execute()
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown prototype "triangle"`)
		assert.Contains(t, err.Error(), "circle, rectangle")
	})
}
