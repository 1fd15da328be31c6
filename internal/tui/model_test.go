package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anikethb04/Project-IMDB/internal/browser"
	"github.com/Anikethb04/Project-IMDB/internal/models"
	"github.com/Anikethb04/Project-IMDB/internal/store"
)

type stubCatalog struct {
	movies    []models.CatalogItem
	regional  []models.CatalogItem
	moviesErr error
	detailIDs []string
}

func (s *stubCatalog) Movies(context.Context) ([]models.CatalogItem, error) {
	return s.movies, s.moviesErr
}

func (s *stubCatalog) TrendingRegional(context.Context) ([]models.CatalogItem, error) {
	return s.regional, nil
}

func (s *stubCatalog) Search(_ context.Context, q string) ([]models.CatalogItem, error) {
	return []models.CatalogItem{{ID: 9, Name: "Result " + q, MediaType: "tv", Kind: models.KindSeries}}, nil
}

func (s *stubCatalog) Detail(_ context.Context, id, mediaType string) (*models.DetailRecord, error) {
	s.detailIDs = append(s.detailIDs, mediaType+"/"+id)
	if id == "500" {
		return nil, errors.New("boom")
	}
	return &models.DetailRecord{Title: "Detail " + id, Runtime: 95}, nil
}

func catalog() []models.CatalogItem {
	return []models.CatalogItem{
		{ID: 1, Name: "Heat", Kind: models.KindMovie, MediaType: "movie", GenreLabel: "Movie", Year: "1995"},
		{ID: 2, Name: "Dark", Kind: models.KindSeries, MediaType: "tv", GenreLabel: "TV Series", Year: "2017"},
		{ID: 3, Name: "Ronin", Kind: models.KindMovie, GenreLabel: "Movie", Year: "1998"},
	}
}

func newTestModel(t *testing.T, api *stubCatalog) (*Model, *clock.Mock, store.Store) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	s := store.NewMemory()
	c := clock.NewMock()
	c.Set(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	m := New(ctx, Deps{API: api, Store: s, Clock: c})
	t.Cleanup(m.Close)
	return m, c, s
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m *Model, msg tea.Msg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func TestLoadCatalog_CachesResult(t *testing.T) {
	api := &stubCatalog{movies: catalog()}
	m, _, s := newTestModel(t, api)

	msg := m.loadCatalog()()
	loaded, ok := msg.(catalogLoadedMsg)
	require.True(t, ok)
	assert.Len(t, loaded.items, 3)

	vals, err := s.GetMany(context.Background(), browser.GeneralPolicy.PayloadKey)
	require.NoError(t, err)
	assert.Contains(t, vals, browser.GeneralPolicy.PayloadKey)
}

func TestLoadCatalog_FailureShowsEmptyGrid(t *testing.T) {
	m, _, _ := newTestModel(t, &stubCatalog{moviesErr: errors.New("down")})

	send(m, m.loadCatalog()())
	assert.Contains(t, m.View(), "Nothing to show")
}

func TestLoadRegional_StartsFeatured(t *testing.T) {
	api := &stubCatalog{regional: catalog()[:1]}
	m, c, _ := newTestModel(t, api)

	msg := m.loadRegional()()
	assert.Equal(t, regionalLoadedMsg{count: 1}, msg)

	send(m, m.waitForEvent()())
	assert.True(t, m.hasHeader)
	assert.Equal(t, "Heat", m.header.Name)

	// the rotation re-renders once the interval elapses
	m.header = models.CatalogItem{}
	c.Add(browser.RotationInterval)
	send(m, m.waitForEvent()())
	assert.Equal(t, "Heat", m.header.Name)
}

func TestLoadRegional_EmptyNeverArmsRotation(t *testing.T) {
	m, c, _ := newTestModel(t, &stubCatalog{})
	m.loadRegional()()
	c.Add(2 * browser.RotationInterval)

	assert.Never(t, func() bool { return len(m.events) > 0 }, 50*time.Millisecond, 5*time.Millisecond)
	assert.False(t, m.hasHeader)
}

func TestFilterKeys(t *testing.T) {
	m, _, _ := newTestModel(t, &stubCatalog{})
	send(m, catalogLoadedMsg{items: catalog()})

	send(m, keyMsg("s"))
	assert.Equal(t, browser.FilterSeries, m.filter)
	require.Len(t, m.visible(), 1)
	assert.Equal(t, "Dark", m.visible()[0].Name)

	send(m, keyMsg("m"))
	assert.Len(t, m.visible(), 2)

	send(m, keyMsg("a"))
	assert.Len(t, m.visible(), 3)
}

func TestHoverPreviewUpdatesHeader(t *testing.T) {
	m, _, _ := newTestModel(t, &stubCatalog{})
	send(m, catalogLoadedMsg{items: catalog()})

	send(m, keyMsg("right"))
	assert.Equal(t, 1, m.cursor)

	send(m, m.waitForEvent()())
	assert.Equal(t, "Dark", m.header.Name)
	assert.Contains(t, m.View(), "Dark")
}

func TestOpenDetail_DefaultsToMovieType(t *testing.T) {
	api := &stubCatalog{}
	m, _, _ := newTestModel(t, api)
	send(m, catalogLoadedMsg{items: catalog()})

	send(m, keyMsg("m"))
	send(m, keyMsg("right"))
	cmd := send(m, keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, screenDetail, m.screen)
	assert.Contains(t, m.View(), "Loading")

	send(m, cmd())
	assert.Equal(t, []string{"movie/3"}, api.detailIDs)
	view := m.View()
	assert.Contains(t, view, "Detail 3")
	assert.Contains(t, view, "1h 35m")
	assert.Contains(t, view, browser.NoCastText)

	send(m, keyMsg("esc"))
	assert.Equal(t, screenHome, m.screen)
}

func TestOpenDetail_SeriesViewFallsBackToTV(t *testing.T) {
	api := &stubCatalog{}
	m, _, _ := newTestModel(t, api)
	send(m, catalogLoadedMsg{items: []models.CatalogItem{{ID: 7, Name: "Show", Kind: models.KindSeries}}})

	send(m, keyMsg("s"))
	cmd := send(m, keyMsg("enter"))
	require.NotNil(t, cmd)
	send(m, cmd())
	assert.Equal(t, []string{"tv/7"}, api.detailIDs)
}

func TestOpenDetail_ErrorText(t *testing.T) {
	m, _, _ := newTestModel(t, &stubCatalog{})
	send(m, catalogLoadedMsg{items: []models.CatalogItem{{ID: 500, Name: "Broken"}}})

	cmd := send(m, keyMsg("enter"))
	send(m, cmd())
	assert.Contains(t, m.View(), browser.DetailErrText)
}

func TestOpenDetail_NoIDReturnsHome(t *testing.T) {
	api := &stubCatalog{}
	m, _, _ := newTestModel(t, api)
	send(m, catalogLoadedMsg{items: []models.CatalogItem{{Name: "No id"}}})

	cmd := send(m, keyMsg("enter"))
	send(m, cmd())
	assert.Equal(t, screenHome, m.screen)
	assert.Empty(t, api.detailIDs)
}

func TestPlayNotice(t *testing.T) {
	m, _, _ := newTestModel(t, &stubCatalog{})
	send(m, keyMsg("p"))
	assert.Contains(t, m.View(), browser.PlayNotice)
}

func TestSearchFlow(t *testing.T) {
	m, c, _ := newTestModel(t, &stubCatalog{})

	send(m, keyMsg("/"))
	assert.Equal(t, focusInput, m.focus)

	// "q" is text while the input has focus
	cmd := send(m, keyMsg("q"))
	if cmd != nil {
		_, isQuit := cmd().(tea.QuitMsg)
		assert.False(t, isQuit)
	}
	assert.Equal(t, "q", m.input.Value())

	c.Add(browser.DebounceDelay)
	send(m, m.waitForEvent()())
	require.True(t, m.searchView.Visible)
	assert.Contains(t, m.View(), "Result q")

	send(m, keyMsg("down"))
	assert.Equal(t, focusPanel, m.focus)

	cmd = send(m, keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, screenDetail, m.screen)
}

func TestSearchEscBlursAndHides(t *testing.T) {
	m, c, _ := newTestModel(t, &stubCatalog{})

	send(m, keyMsg("/"))
	send(m, keyMsg("x"))
	c.Add(browser.DebounceDelay)
	send(m, m.waitForEvent()())
	require.True(t, m.searchView.Visible)

	send(m, keyMsg("esc"))
	assert.Equal(t, focusGrid, m.focus)
	c.Add(browser.BlurGrace)
	send(m, m.waitForEvent()())
	assert.False(t, m.searchView.Visible)
}
