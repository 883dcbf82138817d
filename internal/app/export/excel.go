package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/tealeg/xlsx"

	"memo-whisper/internal/app/model"
)

// ToExcel writes the given recordings to an xlsx workbook, one row per
// recording with its sentence text joined into a single transcript column.
func ToExcel(recordings []model.Recording, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Recordings")
	if err != nil {
		return err
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "ID"
	headerRow.AddCell().Value = "Imported At"
	headerRow.AddCell().Value = "Duration (sec)"
	headerRow.AddCell().Value = "Subdir"
	headerRow.AddCell().Value = "Source Path"
	headerRow.AddCell().Value = "Transcript"

	for _, rec := range recordings {
		row := sheet.AddRow()
		row.AddCell().Value = rec.ID
		row.AddCell().Value = time.Unix(rec.ImportedAt, 0).Format(time.RFC3339)
		row.AddCell().Value = fmt.Sprintf("%.2f", rec.DurationSec)
		row.AddCell().Value = rec.Subdir
		row.AddCell().Value = rec.SourcePath
		row.AddCell().Value = transcriptText(rec.Transcription.Sentences)
	}

	return file.Save(outputFilePath)
}

func transcriptText(sentences []model.Sentence) string {
	texts := lo.Map(sentences, func(s model.Sentence, _ int) string { return s.Text })
	return strings.Join(texts, " ")
}
