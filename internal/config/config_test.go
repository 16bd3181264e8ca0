// SPDX-License-Identifier: MIT

package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubepers/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, 0.0, cfg.Threshold)
	assert.True(t, cfg.Certificates)
	assert.True(t, cfg.OrderCheck)
	assert.Equal(t, config.OutputsConfig{Binary: true, Text: true, CSV: false}, cfg.Outputs)
	assert.Equal(t, config.LogConfig{Level: "info", Format: "json"}, cfg.Log)
}

func TestLoadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("threshold: 0.25\noutputs:\n  csv: true\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0.25, cfg.Threshold)
	assert.True(t, cfg.Outputs.CSV)
	assert.True(t, cfg.Outputs.Binary, "untouched keys keep defaults")
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadErrors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	dir := t.TempDir()
	cases := map[string]struct {
		body string
		want error
	}{
		"negative": {"threshold: -1\n", config.ErrThreshold},
		"level":    {"log:\n  level: loud\n", config.ErrLogLevel},
		"format":   {"log:\n  format: xml\n", config.ErrLogFormat},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.body), 0o644))
			_, err := config.Load(path)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("threshold: [\n"), 0o644))
	_, err = config.Load(bad)
	assert.Error(t, err)
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Threshold = 1.5
	cfg.Log.Format = "console"

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, cfg.WriteYAML(path))

	back, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}

func TestEncode(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, cfg.Encode(&buf))
	assert.Contains(t, buf.String(), "order_check: true")
	assert.Contains(t, buf.String(), "format: json")
}
