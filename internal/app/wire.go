//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"memo-whisper/internal/app/config"
	"memo-whisper/internal/app/importer"
)

func InitializeImporter(cfg *config.Config, logger *zap.Logger) (*importer.Importer, error) {
	wire.Build(provideRecordingDAO, provideTrimmer, provideTranscriber, importer.New)
	return nil, nil
}
