package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		name   string
		data   string
		expect Config
		err    string
	}{
		{
			name:   "empty",
			data:   "",
			expect: Default(),
		},
		{
			name: "full",
			data: `
trace: true
dump: false
depthLimit: 64
timeout: 2s
jobs: 8
prelude:
  - lib/math.rpn
  - /abs/util.rpn
`,
			expect: Config{
				Trace:      true,
				Dump:       false,
				DepthLimit: 64,
				Timeout:    2 * time.Second,
				Jobs:       8,
				Prelude:    []string{"lib/math.rpn", "/abs/util.rpn"},
			},
		},
		{
			name: "partial keeps defaults",
			data: "depthLimit: 10\n",
			expect: Config{
				Dump:       true,
				DepthLimit: 10,
				Jobs:       4,
			},
		},
		{
			name: "unknown key",
			data: "trace: true\nbogus: 1\n",
			err:  "field bogus not found",
		},
		{
			name: "bad duration",
			data: "timeout: soon\n",
			err:  "soon",
		},
		{
			name: "negative depth",
			data: "depthLimit: -1\n",
			err:  "invalid depthLimit -1",
		},
		{
			name: "zero jobs",
			data: "jobs: 0\n",
			err:  "invalid jobs 0, must be at least 1",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tc.data))
			if tc.err != "" {
				if assert.Error(t, err) {
					assert.Contains(t, err.Error(), tc.err)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expect, cfg)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gorpn.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"prelude: [lib.rpn, /etc/gorpn/base.rpn]\n",
	), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "lib.rpn"),
		"/etc/gorpn/base.rpn",
	}, cfg.Prelude)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("jobs: [1]\n"), 0o644))
	_, err = Load(bad)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), bad+": ")
	}
}
