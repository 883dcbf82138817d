package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `
subdir: memos
output_dir: /var/lib/a2t
db_path: /var/lib/a2t/recordings.db
retention_days: 30
trim:
  threshold_db: -35
  min_silence_len_ms: 700
  keep_silence_ms: 150
whisper:
  binary: /usr/local/bin/whisper-cli
  model: /opt/models/ggml-base.en.bin
`

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "memos", cfg.Subdir)
	assert.Equal(t, "/var/lib/a2t", cfg.OutputDir)
	assert.Equal(t, 30, cfg.RetentionDays)
	assert.Equal(t, -35, cfg.Trim.ThresholdDB)
	assert.Equal(t, 700, cfg.Trim.MinSilenceLenMs)
	assert.Equal(t, 150, cfg.Trim.KeepSilenceMs)
	assert.Equal(t, "/usr/local/bin/whisper-cli", cfg.Whisper.Binary)
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.Whisper.Language)
	assert.Equal(t, 5, cfg.Whisper.BeamSize)
	assert.Equal(t, 4, cfg.Whisper.MaxThreads)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 120, cfg.Timeouts.TrimSec)
	assert.Equal(t, 900, cfg.Timeouts.TranscribeSec)
}

func TestLoadExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("A2T_DATA", "/srv/a2t-data")

	cfg, err := Load(writeConfig(t, `
subdir: memos
output_dir: ${A2T_DATA}/out
db_path: ${A2T_DATA}/recordings.db
whisper:
  binary: /usr/local/bin/whisper-cli
  model: ${A2T_DATA}/ggml-base.en.bin
`))
	require.NoError(t, err)

	assert.Equal(t, "/srv/a2t-data/out", cfg.OutputDir)
	assert.Equal(t, "/srv/a2t-data/recordings.db", cfg.DBPath)
	assert.Equal(t, "/srv/a2t-data/ggml-base.en.bin", cfg.Whisper.Model)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoadMalformedYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "subdir: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name: "missing_subdir",
			content: `
output_dir: /out
db_path: /out/db
whisper: {binary: /bin/w, model: /m}
`,
			wantErr: "subdir is required",
		},
		{
			name: "missing_whisper_model",
			content: `
subdir: memos
output_dir: /out
db_path: /out/db
whisper: {binary: /bin/w}
`,
			wantErr: "whisper.model is required",
		},
		{
			name: "negative_retention",
			content: `
subdir: memos
output_dir: /out
db_path: /out/db
retention_days: -1
whisper: {binary: /bin/w, model: /m}
`,
			wantErr: "retention_days must not be negative",
		},
		{
			name: "vad_without_model",
			content: `
subdir: memos
output_dir: /out
db_path: /out/db
whisper: {binary: /bin/w, model: /m, vad: true}
`,
			wantErr: "vad_model is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadZeroRetentionDisablesCleanup(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
subdir: memos
output_dir: /out
db_path: /out/db
retention_days: 0
whisper: {binary: /bin/w, model: /m}
`))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.RetentionDays)
}
