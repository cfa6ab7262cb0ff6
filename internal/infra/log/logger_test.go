package logs

import (
	"bytes"
	"log/slog"
	"testing"

	"placebook/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "INFO", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_JSONHandlerCarriesServiceName(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "placebook"
	cfg.Env.Log.Level = "info"

	var buf bytes.Buffer
	logger, err := New(Params{Config: cfg, Writer: &buf})
	require.NoError(t, err)

	logger.Info("[PlaceDirectory] listed", slog.Int("count", 2))
	assert.Contains(t, buf.String(), `"service":"placebook"`)
	assert.Contains(t, buf.String(), `"count":2`)
}
