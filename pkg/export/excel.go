// Package export writes feedback submissions into an Excel workbook so the
// team can review them without touching the database.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"venue-booking/internal/data/entity"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const sheetName = "Feedback Data"

var headerColumns = []string{
	"ID", "Date & Time", "Name", "Email", "Overall Rating",
	"Feedback Type", "Recommendation", "Related Venue", "Message", "Status",
}

var columnWidths = []float64{8, 20, 25, 30, 15, 15, 20, 25, 50, 12}

var ratingText = map[int]string{
	5: "Excellent",
	4: "Very Good",
	3: "Good",
	2: "Fair",
	1: "Poor",
}

var feedbackTypeText = map[string]string{
	"compliment": "Compliment",
	"suggestion": "Suggestion",
	"complaint":  "Complaint",
	"general":    "General",
}

var recommendationText = map[string]string{
	"definitely":     "Definitely!",
	"probably":       "Probably",
	"maybe":          "Maybe",
	"probably_not":   "Probably not",
	"definitely_not": "Definitely not",
}

type ExcelExporter struct {
	path string
	log  *zap.Logger
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func NewExcelExporter(path string, log *zap.Logger) *ExcelExporter {
	return &ExcelExporter{
		path: path,
		log:  log.With(zap.String("component", "excel_exporter")),
	}
}

func (e *ExcelExporter) Path() string {
	return e.path
}

// Append adds one feedback row to the workbook, creating the file with a
// styled header when it does not exist yet.
func (e *ExcelExporter) Append(feedback *entity.Feedback) error {
	f, created, err := e.openOrCreate()
	if err != nil {
		return err
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return fmt.Errorf("read sheet rows: %w", err)
	}
	rowIdx := len(rows) + 1

	venue := "N/A"
	if feedback.Venue != nil && *feedback.Venue != "" {
		venue = *feedback.Venue
	}

	rating, ok := ratingText[feedback.Rating]
	if !ok {
		rating = fmt.Sprintf("Rating %d", feedback.Rating)
	}
	feedbackType, ok := feedbackTypeText[feedback.FeedbackType]
	if !ok {
		feedbackType = title(feedback.FeedbackType)
	}
	recommendation, ok := recommendationText[feedback.Recommendation]
	if !ok {
		recommendation = feedback.Recommendation
	}

	values := []interface{}{
		feedback.ID.String(),
		feedback.CreatedAt.Format("2006-01-02 15:04:05"),
		feedback.Name,
		feedback.Email,
		rating,
		feedbackType,
		recommendation,
		venue,
		feedback.Message,
		title(string(feedback.Status)),
	}
	for i, value := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, rowIdx)
		if err != nil {
			return fmt.Errorf("build cell name: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, value); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}

	if err := f.SaveAs(e.path); err != nil {
		return fmt.Errorf("save workbook %s: %w", e.path, err)
	}

	if created {
		e.log.Info("Created feedback workbook", zap.String("path", e.path))
	}

	return nil
}

func (e *ExcelExporter) openOrCreate() (*excelize.File, bool, error) {
	if _, err := os.Stat(e.path); err == nil {
		f, err := excelize.OpenFile(e.path)
		if err != nil {
			return nil, false, fmt.Errorf("open workbook %s: %w", e.path, err)
		}
		return f, false, nil
	}

	if dir := filepath.Dir(e.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, false, fmt.Errorf("create export directory %s: %w", dir, err)
		}
	}

	f := excelize.NewFile()
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, false, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, false, fmt.Errorf("drop default sheet: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"366092"}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, false, fmt.Errorf("create header style: %w", err)
	}

	for i, title := range headerColumns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, false, fmt.Errorf("build header cell name: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			return nil, false, fmt.Errorf("set header cell %s: %w", cell, err)
		}
		if err := f.SetCellStyle(sheetName, cell, cell, style); err != nil {
			return nil, false, fmt.Errorf("style header cell %s: %w", cell, err)
		}
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, false, fmt.Errorf("resolve column name: %w", err)
		}
		if err := f.SetColWidth(sheetName, col, col, columnWidths[i]); err != nil {
			return nil, false, fmt.Errorf("set column width %s: %w", col, err)
		}
	}

	return f, true, nil
}
