package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"memo-whisper/internal/api/v1/dto"
	apperrors "memo-whisper/internal/app/errors"
	"memo-whisper/internal/app/model"
	"memo-whisper/internal/app/repository"
)

// RecordingHandler serves the viewer read contract over the ledger.
type RecordingHandler struct {
	db     repository.RecordingDAO
	logger *zap.Logger
}

func NewRecordingHandler(db repository.RecordingDAO, logger *zap.Logger) *RecordingHandler {
	return &RecordingHandler{db: db, logger: logger}
}

// List returns non-deleted recordings, newest import first.
func (h *RecordingHandler) List(c *gin.Context) {
	recordings, err := h.db.ListActive()
	if err != nil {
		h.logger.Error("list recordings failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list recordings"})
		return
	}

	summaries := lo.Map(recordings, func(rec model.Recording, _ int) dto.RecordingSummary {
		return dto.NewRecordingSummary(rec)
	})
	c.JSON(http.StatusOK, gin.H{"recordings": summaries})
}

// Get returns one recording with its decoded sentence list.
func (h *RecordingHandler) Get(c *gin.Context) {
	id := c.Param("id")
	rec, err := h.db.Get(id)
	if errors.Is(err, apperrors.ErrRecordingNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "recording not found"})
		return
	}
	if err != nil {
		h.logger.Error("get recording failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load recording"})
		return
	}

	c.JSON(http.StatusOK, dto.NewRecordingDetail(rec))
}

// Audio streams the trimmed audio file for a recording.
func (h *RecordingHandler) Audio(c *gin.Context) {
	id := c.Param("id")
	path, err := h.db.TrimmedPath(id)
	if errors.Is(err, apperrors.ErrRecordingNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "recording not found"})
		return
	}
	if err != nil {
		h.logger.Error("audio lookup failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load recording"})
		return
	}

	c.Header("Content-Type", "audio/wav")
	c.File(path)
}

// Delete soft-deletes a recording. Idempotent: deleting an already-deleted
// or unknown id still reports ok.
func (h *RecordingHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.db.MarkDeleted(id); err != nil {
		h.logger.Error("soft delete failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete recording"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
