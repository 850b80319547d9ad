package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeConfig creates a config using the given backend with its store in a
// temp dir and returns the config path.
func writeConfig(t *testing.T, backend string) string {
	t.Helper()
	dir := t.TempDir()
	storePath := filepath.Join(dir, "defaults."+map[string]string{"file": "yaml", "sqlite": "db", "memory": "mem"}[backend])
	content := "store:\n  backend: " + backend + "\n  path: " + storePath + "\nlogging:\n  level: error\n"
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestShow_BeforePreferencesAreSaved(t *testing.T) {
	cfg := writeConfig(t, "file")

	out, err := run(t, "--config", cfg, "show", "--distance", "12", "--temperature", "70")
	require.NoError(t, err)
	assert.Equal(t, "Distance: Distance will appear here...\nTemperature: Temperature will appear here...\n", out)
}

func TestPrefsSetThenShow(t *testing.T) {
	for _, backend := range []string{"file", "sqlite"} {
		t.Run(backend, func(t *testing.T) {
			cfg := writeConfig(t, backend)

			_, err := run(t, "--config", cfg, "prefs", "set",
				"--distance", "kilometers", "--temperature", "celsius", "--emoji=true")
			require.NoError(t, err)

			out, err := run(t, "--config", cfg, "prefs", "get")
			require.NoError(t, err)
			assert.Equal(t, "distance: kilometers\ntemperature: celsius\nemoji: true\n", out)

			out, err = run(t, "--config", cfg, "show", "--distance", "10", "--temperature", "70")
			require.NoError(t, err)
			assert.Equal(t, "Distance: 16.1 km 😍\nTemperature: 21.1°C 😍\n", out)
		})
	}
}

func TestPrefsSet_OnlyGivenFlags(t *testing.T) {
	cfg := writeConfig(t, "file")

	_, err := run(t, "--config", cfg, "prefs", "set", "--temperature", "celsius")
	require.NoError(t, err)

	out, err := run(t, "--config", cfg, "prefs", "get")
	require.NoError(t, err)
	assert.Equal(t, "distance: miles\ntemperature: celsius\nemoji: false\n", out)

	out, err = run(t, "--config", cfg, "show", "--distance", "5", "--temperature", "32")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Distance: Distance will appear here...", lines[0])
	assert.Equal(t, "Temperature: 0.0°C", lines[1])
}

func TestPrefsSet_Errors(t *testing.T) {
	cfg := writeConfig(t, "file")

	_, err := run(t, "--config", cfg, "prefs", "set")
	assert.Error(t, err)

	_, err = run(t, "--config", cfg, "prefs", "set", "--distance", "furlongs", "--emoji=true")
	assert.Error(t, err)

	// Nothing was written by the rejected call.
	out, err := run(t, "--config", cfg, "prefs", "get")
	require.NoError(t, err)
	assert.Contains(t, out, "emoji: false")
}

func TestPrefsOptions(t *testing.T) {
	out, err := run(t, "--config", writeConfig(t, "memory"), "prefs", "options")
	require.NoError(t, err)
	assert.Contains(t, out, "kilometers   Kilometers")
	assert.Contains(t, out, "celsius      Celsius")
}

func TestConvert(t *testing.T) {
	cfg := writeConfig(t, "memory")

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"26.2", "miles", "kilometers"}, "42.2 km\n"},
		{[]string{"100", "celsius", "fahrenheit"}, "212.0°F\n"},
		{[]string{"5", "km", "miles"}, ""},
	}
	for _, tt := range tests {
		out, err := run(t, append([]string{"--config", cfg, "convert"}, tt.args...)...)
		if tt.want == "" {
			assert.Error(t, err, "args %v", tt.args)
			continue
		}
		require.NoError(t, err, "args %v", tt.args)
		assert.Equal(t, tt.want, out)
	}

	_, err := run(t, "--config", cfg, "convert", "5", "miles", "celsius")
	assert.Error(t, err)

	_, err = run(t, "--config", cfg, "convert", "five", "miles", "kilometers")
	assert.Error(t, err)
}

func TestWatch_RequiresFileBackend(t *testing.T) {
	_, err := run(t, "--config", writeConfig(t, "sqlite"), "watch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file")
}

func TestInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  backend: redis\n"), 0644))

	_, err := run(t, "--config", path, "prefs", "get")
	assert.Error(t, err)
}
