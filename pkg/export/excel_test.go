package export

import (
	"path/filepath"
	"testing"
	"time"

	"venue-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func sampleFeedback(name string) *entity.Feedback {
	venue := "Grand Almaty Hotel"
	feedback := &entity.Feedback{
		Name:           name,
		Email:          "aigerim@example.com",
		FeedbackType:   "compliment",
		Rating:         5,
		Recommendation: "definitely",
		Message:        "Everything was perfect",
		Venue:          &venue,
		Status:         entity.FeedbackStatusNew,
	}
	feedback.ID = uuid.New()
	feedback.CreatedAt = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	return feedback
}

func TestAppendCreatesWorkbookWithHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exports", "feedback_data.xlsx")
	exporter := NewExcelExporter(path, zap.NewNop())

	require.NoError(t, exporter.Append(sampleFeedback("Aigerim")))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, headerColumns, rows[0][:len(headerColumns)])
	assert.Equal(t, "Aigerim", rows[1][2])
	assert.Equal(t, "Excellent", rows[1][4])
	assert.Equal(t, "Compliment", rows[1][5])
	assert.Equal(t, "Definitely!", rows[1][6])
	assert.Equal(t, "Grand Almaty Hotel", rows[1][7])
	assert.Equal(t, "New", rows[1][9])
}

func TestAppendAccumulatesRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feedback_data.xlsx")
	exporter := NewExcelExporter(path, zap.NewNop())

	require.NoError(t, exporter.Append(sampleFeedback("Aigerim")))
	require.NoError(t, exporter.Append(sampleFeedback("Dana")))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Dana", rows[2][2])
}
