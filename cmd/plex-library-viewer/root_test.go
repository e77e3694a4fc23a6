package main

import (
	"bytes"
	"log/slog"
	"os"
	"testing"

	"github.com/clambin/plex-library-viewer/internal/config"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/viewer.yaml", []byte("line_width: 80\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/bad.yaml", []byte("line_width: -1\n"), 0o644))
	notATerminal := func() bool { return false }

	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{name: "no terminal", wantErr: ErrNoTerminal},
		{name: "config", args: []string{"--config", "/viewer.yaml", "--debug"}, wantErr: ErrNoTerminal},
		{name: "invalid config", args: []string{"--config", "/bad.yaml"}, wantErr: config.ErrInvalidLineWidth},
		{name: "missing config", args: []string{"--config", "/missing.yaml"}, wantErr: os.ErrNotExist},
		{name: "arguments", args: []string{"foo"}, wantMsg: `unknown command "foo" for "plex-library-viewer"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCmd(fs, notATerminal)
			cmd.SetArgs(tt.args)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			err := cmd.ExecuteContext(t.Context())
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.EqualError(t, err, tt.wantMsg)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	var out bytes.Buffer
	newLogger(&out, false).Debug("hidden")
	assert.Empty(t, out.String())
	newLogger(&out, true).Debug("shown")
	assert.Contains(t, out.String(), "level=DEBUG msg=shown")
	assert.True(t, newLogger(&out, true).Enabled(t.Context(), slog.LevelDebug))
}

func TestDevice(t *testing.T) {
	d := device(config.Default())
	assert.Equal(t, "plex-library-viewer", d.Product)
	assert.Equal(t, "0.1.0", d.Version)
	assert.Equal(t, "Plex Library Viewer", d.DeviceName)
}
