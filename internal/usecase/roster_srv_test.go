package usecase

import (
	"os"
	"path/filepath"
	"testing"

	"venue-booking/internal/roster"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRosterService(t *testing.T) RosterService {
	t.Helper()

	dir := t.TempDir()
	hostsCSV := "name,city,language,price_per_event\n" +
		"Arman Bekov,Almaty,Kazakh / Russian,80000\n" +
		"Dana Serik,Astana,Russian / English,120000\n" +
		"Olzhas T.,Almaty,Kazakh,\n"
	musiciansCSV := "name,city,genre,price_per_hour\n" +
		"Altyn Trio,Almaty,Traditional,45000\n" +
		"Jazz Quartet,Astana,Jazz,90000\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "hosts.csv"), []byte(hostsCSV), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "musicians.csv"), []byte(musiciansCSV), 0o644))

	return NewRosterService(roster.NewLoader(dir, zap.NewNop()), zap.NewNop())
}

func TestListHostsUnfiltered(t *testing.T) {
	service := newTestRosterService(t)

	hosts, err := service.ListHosts(RosterFilter{})
	require.NoError(t, err)

	require.Len(t, hosts, 3)
	// Rows without an ID column get positional IDs.
	assert.Equal(t, "1", hosts[0].ID)
	assert.Equal(t, "Arman Bekov", hosts[0].Name)
}

func TestListHostsFiltersByLanguage(t *testing.T) {
	service := newTestRosterService(t)

	language := "english"
	hosts, err := service.ListHosts(RosterFilter{Language: &language})
	require.NoError(t, err)

	require.Len(t, hosts, 1)
	assert.Equal(t, "Dana Serik", hosts[0].Name)
}

func TestListHostsMaxPriceKeepsUnpriced(t *testing.T) {
	service := newTestRosterService(t)

	maxPrice := 100000
	hosts, err := service.ListHosts(RosterFilter{MaxPrice: &maxPrice})
	require.NoError(t, err)

	// Dana is over budget; Olzhas has no listed price and stays in.
	require.Len(t, hosts, 2)
	assert.Equal(t, "Arman Bekov", hosts[0].Name)
	assert.Equal(t, "Olzhas T.", hosts[1].Name)
}

func TestListMusiciansFiltersByGenre(t *testing.T) {
	service := newTestRosterService(t)

	genre := "jazz"
	musicians, err := service.ListMusicians(RosterFilter{Genre: &genre})
	require.NoError(t, err)

	require.Len(t, musicians, 1)
	assert.Equal(t, "Jazz Quartet", musicians[0].Name)
}

func TestGetMusicianByID(t *testing.T) {
	service := newTestRosterService(t)

	musician, err := service.GetMusician("2")
	require.NoError(t, err)
	assert.Equal(t, "Jazz Quartet", musician.Name)

	_, err = service.GetMusician("99")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
