package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeRoster(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	loader := NewLoader(t.TempDir(), zap.NewNop())

	records, err := loader.Load("hosts.csv")
	require.NoError(t, err)
	assert.Nil(t, records)
}

func TestLoadParsesRecords(t *testing.T) {
	dir := t.TempDir()
	writeRoster(t, dir, "hosts.csv",
		"id,name,city,language,price_per_event,experience\n"+
			"7,Arman Bekov,Almaty,Kazakh / Russian,80000,10 years\n"+
			",Dana Serik,Astana,Russian,120 000,\n")
	loader := NewLoader(dir, zap.NewNop())

	records, err := loader.Load("hosts.csv")
	require.NoError(t, err)
	require.Len(t, records, 2)

	first := records[0]
	assert.Equal(t, "7", first.ID)
	assert.Equal(t, "Arman Bekov", first.Name)
	require.NotNil(t, first.PricePerEvent)
	assert.Equal(t, 80000, *first.PricePerEvent)
	// Extra columns survive in Fields.
	assert.Equal(t, "10 years", first.Fields["experience"])

	// Missing ID gets a positional one; spaced prices still parse.
	second := records[1]
	assert.Equal(t, "2", second.ID)
	require.NotNil(t, second.PricePerEvent)
	assert.Equal(t, 120000, *second.PricePerEvent)
}

func TestLoadStripsBOM(t *testing.T) {
	dir := t.TempDir()
	writeRoster(t, dir, "hosts.csv", "\ufeffid,name\n1,Arman\n")
	loader := NewLoader(dir, zap.NewNop())

	records, err := loader.Load("hosts.csv")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "1", records[0].ID)
	assert.Equal(t, "Arman", records[0].Name)
}

func TestLoadKeepsNamelessRows(t *testing.T) {
	dir := t.TempDir()
	writeRoster(t, dir, "hosts.csv", "id,name\n1,Arman\n2,\n3,Dana\n")
	loader := NewLoader(dir, zap.NewNop())

	records, err := loader.Load("hosts.csv")
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "2", records[1].ID)
	assert.Empty(t, records[1].Name)
	assert.Equal(t, "3", records[2].ID)
}

func TestResolvedPrice(t *testing.T) {
	event := 80000
	hour := 45000

	assert.Equal(t, 80000, (&Record{PricePerEvent: &event, PricePerHour: &hour}).ResolvedPrice())
	assert.Equal(t, 45000, (&Record{PricePerHour: &hour}).ResolvedPrice())
	assert.Equal(t, 0, (&Record{}).ResolvedPrice())
}
