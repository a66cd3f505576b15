package config

import (
	"os"
	"sort"
)

// setUnset exports values that are not already present in the environment.
func setUnset(values map[string]string) error {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, exists := os.LookupEnv(k); exists {
			continue
		}
		if err := os.Setenv(k, values[k]); err != nil {
			return err
		}
	}
	return nil
}
