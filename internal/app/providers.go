package app

import (
	"go.uber.org/zap"

	"memo-whisper/internal/app/api"
	"memo-whisper/internal/app/api/whisper_cpp"
	"memo-whisper/internal/app/audio"
	"memo-whisper/internal/app/config"
	"memo-whisper/internal/app/repository"
	"memo-whisper/internal/app/repository/sqlite"
)

func provideRecordingDAO(cfg *config.Config) (repository.RecordingDAO, error) {
	return sqlite.Open(cfg.DBPath)
}

func provideTrimmer() audio.Trimmer {
	return audio.NewFFmpegTrimmer()
}

// provideTranscriber wires the local whisper.cpp engine; the binary and
// model paths come from the config file and must exist on this machine.
func provideTranscriber(cfg *config.Config, logger *zap.Logger) api.Transcriber {
	return whisper_cpp.NewLocalTranscriber(whisper_cpp.Options{
		BinaryPath:   cfg.Whisper.Binary,
		ModelPath:    cfg.Whisper.Model,
		Language:     cfg.Whisper.Language,
		BeamSize:     cfg.Whisper.BeamSize,
		MaxThreads:   cfg.Whisper.MaxThreads,
		VAD:          cfg.Whisper.VAD,
		VADModelPath: cfg.Whisper.VADModel,
	}, logger)
}
