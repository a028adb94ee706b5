// FILE: paramstore/args_test.go
package paramstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want map[string]string
	}{
		{"FlagWithValue", []string{"--input", "deck.toml"}, map[string]string{"input": "deck.toml"}},
		{"BareFlag", []string{"--verbose"}, map[string]string{"verbose": ""}},
		{"SingleDash", []string{"-n", "4"}, map[string]string{"n": "4"}},
		{"FlagThenFlag", []string{"--dry-run", "--input", "deck.toml"},
			map[string]string{"dry-run": "", "input": "deck.toml"}},
		{"TrailingBareFlag", []string{"--input", "deck.toml", "--verbose"},
			map[string]string{"input": "deck.toml", "verbose": ""}},
		{"StrayValueSkipped", []string{"stray", "--n", "4"}, map[string]string{"n": "4"}},
		{"Empty", nil, map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := ParseArgs(tt.argv)
			got := make(map[string]string)
			for _, key := range a.Flags() {
				v, err := a.Value(key)
				require.NoError(t, err)
				got[key] = v
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArgsValueMissing(t *testing.T) {
	a := ParseArgs([]string{"--input", "deck.toml"})

	assert.True(t, a.Contains("input"))
	assert.False(t, a.Contains("output"))

	_, err := a.Value("output")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestArgsUsage(t *testing.T) {
	a := ParseArgs(nil)
	a.Describe("input", "FILE", "parameter file to load")
	a.Describe("verbose", "", "enable verbose output")

	usage := a.Usage()
	assert.Contains(t, usage, "--input FILE")
	assert.Contains(t, usage, "parameter file to load")
	assert.Contains(t, usage, "--verbose")
}
