package environment_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Pavel0606/mitso-core-js/pkg/environment"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected environment.Environment
	}{
		{input: "production", expected: environment.Production},
		{input: "PROD", expected: environment.Production},
		{input: " stage ", expected: environment.Staging},
		{input: "staging", expected: environment.Staging},
		{input: "dev", expected: environment.Development},
		{input: "", expected: environment.Development},
		{input: "qa", expected: environment.Development},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, environment.Parse(tt.input))
		})
	}
}

func TestContext(t *testing.T) {
	t.Parallel()

	ctx := environment.WithContext(context.Background(), environment.Production)
	assert.Equal(t, environment.Production, environment.FromContext(ctx))
	assert.False(t, environment.IsDevelopment(ctx))
	assert.True(t, environment.IsDevelopment(environment.WithContext(ctx, environment.Development)))
	assert.False(t, environment.IsDevelopment(context.Background()))

	assert.Equal(t, environment.Environment(""), environment.FromContext(context.Background()))
	//nolint:staticcheck // nil context is part of the contract
	assert.Equal(t, environment.Environment(""), environment.FromContext(nil))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := environment.LoggerExtractor()

	_, ok := extract(context.Background())
	assert.False(t, ok)

	attr, ok := extract(environment.WithContext(context.Background(), environment.Staging))
	assert.True(t, ok)
	assert.Equal(t, "env", attr.Key)
	assert.Equal(t, "staging", attr.Value.String())
}
