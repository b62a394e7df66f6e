package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveHost(t *testing.T) {
	tests := []struct {
		name        string
		host        string
		allowRemote bool
		want        string
		wantWarn    bool
	}{
		{"empty defaults to loopback", "", false, "127.0.0.1", false},
		{"wildcard v4 without flag", "0.0.0.0", false, "127.0.0.1", false},
		{"wildcard v6 without flag", "::", false, "127.0.0.1", false},
		{"explicit host kept", "192.168.1.10", false, "192.168.1.10", false},
		{"remote empty binds all", "", true, "0.0.0.0", true},
		{"remote explicit host", "10.0.0.5", true, "10.0.0.5", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			got := resolveHost(tt.host, tt.allowRemote, logger)
			assert.Equal(t, tt.want, got)
			if tt.wantWarn {
				assert.Contains(t, buf.String(), "level=WARN")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestServeCommandRejectsArgs(t *testing.T) {
	_, _, err := runCLI(t, "serve", "extra")
	assert.Error(t, err)
}

func TestServeCommandBadMetadata(t *testing.T) {
	_, _, err := runCLI(t, "--metadata", "ftp://example.com/x.json", "serve", "--port", "0")
	assert.Error(t, err)
	assert.Equal(t, ExitError, exitCode(err))
}
