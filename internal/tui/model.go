// Package tui is the terminal front end: a featured header, a filterable card
// grid, a debounced search panel and a detail view.
package tui

import (
	"context"
	"errors"
	"log/slog"

	"github.com/benbjohnson/clock"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Anikethb04/Project-IMDB/internal/browser"
	"github.com/Anikethb04/Project-IMDB/internal/models"
	"github.com/Anikethb04/Project-IMDB/internal/store"
)

const eventBuffer = 64

// Catalog is the server API the front end consumes.
type Catalog interface {
	Movies(ctx context.Context) ([]models.CatalogItem, error)
	TrendingRegional(ctx context.Context) ([]models.CatalogItem, error)
	browser.Searcher
	browser.DetailFetcher
}

// Deps wires the model to its collaborators.
type Deps struct {
	API   Catalog
	Store store.Store
	Clock clock.Clock
	Log   *slog.Logger
}

type screen int

const (
	screenHome screen = iota
	screenDetail
)

type focus int

const (
	focusGrid focus = iota
	focusInput
	focusPanel
)

type (
	catalogLoadedMsg  struct{ items []models.CatalogItem }
	regionalLoadedMsg struct{ count int }
	featuredMsg       struct{ item models.CatalogItem }
	searchViewMsg     struct{ view browser.SearchView }
	detailLoadedMsg   struct {
		page browser.DetailPage
		err  error
	}
)

// Model is the bubbletea model. It owns one instance of each controller for
// the lifetime of the program.
type Model struct {
	ctx      context.Context
	api      Catalog
	log      *slog.Logger
	general  *browser.Keyspace
	regional *browser.Keyspace
	featured *browser.Featured
	search   *browser.Search
	events   chan tea.Msg

	keys  keyMap
	help  help.Model
	input textinput.Model

	screen      screen
	focus       focus
	items       []models.CatalogItem
	filter      browser.Filter
	cursor      int
	header      models.CatalogItem
	hasHeader   bool
	searchView  browser.SearchView
	panelCursor int
	detail      browser.DetailPage
	loading     bool
	notice      string
	width       int
}

// New builds the model and its controllers.
func New(ctx context.Context, deps Deps) *Model {
	log := deps.Log
	if log == nil {
		log = slog.Default()
	}

	input := textinput.New()
	input.Placeholder = "Search movies and shows"
	input.Prompt = "🔍 "
	input.CharLimit = 100

	m := &Model{
		ctx:      ctx,
		api:      deps.API,
		log:      log,
		general:  browser.NewKeyspace(browser.GeneralPolicy, deps.Store, deps.Clock, log),
		regional: browser.NewKeyspace(browser.RegionalPolicy, deps.Store, deps.Clock, log),
		events:   make(chan tea.Msg, eventBuffer),
		keys:     defaultKeys(),
		help:     help.New(),
		input:    input,
		width:    100,
	}
	m.featured = browser.NewFeatured(deps.Clock, nil, func(it models.CatalogItem) {
		m.emit(featuredMsg{item: it})
	})
	m.search = browser.NewSearch(ctx, deps.Clock, deps.API, func(v browser.SearchView) {
		m.emit(searchViewMsg{view: v})
	}, log)
	return m
}

// emit forwards a controller callback into the update loop.
func (m *Model) emit(msg tea.Msg) {
	select {
	case m.events <- msg:
	case <-m.ctx.Done():
	}
}

func (m *Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-m.events:
			return msg
		case <-m.ctx.Done():
			return nil
		}
	}
}

// Init loads both lists and starts listening for controller events.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadCatalog(), m.loadRegional(), m.waitForEvent(), textinput.Blink)
}

func (m *Model) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		items := m.general.Load(m.ctx, m.api.Movies)
		if len(items) == 0 {
			m.log.Error("no movies loaded")
		}
		return catalogLoadedMsg{items: items}
	}
}

func (m *Model) loadRegional() tea.Cmd {
	return func() tea.Msg {
		items := m.regional.Load(m.ctx, m.api.TrendingRegional)
		m.featured.Start(items)
		return regionalLoadedMsg{count: len(items)}
	}
}

func (m *Model) openDetail(id, mediaType string) tea.Cmd {
	m.screen = screenDetail
	m.loading = true
	m.notice = ""
	return func() tea.Msg {
		page, err := browser.LoadDetail(m.ctx, m.api, id, mediaType)
		return detailLoadedMsg{page: page, err: err}
	}
}

// Close stops the controllers' timers.
func (m *Model) Close() {
	m.featured.Stop()
	m.search.Close()
}

func (m *Model) visible() []models.CatalogItem {
	return browser.FilterKind(m.items, m.filter)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case catalogLoadedMsg:
		m.items = msg.items
		m.cursor = 0
		return m, nil

	case regionalLoadedMsg:
		m.log.Debug("regional trending loaded", "items", msg.count)
		return m, nil

	case featuredMsg:
		m.header = msg.item
		m.hasHeader = true
		return m, m.waitForEvent()

	case searchViewMsg:
		m.searchView = msg.view
		if m.panelCursor >= len(msg.view.Results) {
			m.panelCursor = 0
		}
		if !msg.view.Visible && m.focus == focusPanel {
			m.focus = focusGrid
		}
		return m, m.waitForEvent()

	case detailLoadedMsg:
		m.loading = false
		if errors.Is(msg.err, browser.ErrNoTitleID) {
			m.screen = screenHome
			return m, nil
		}
		if msg.err != nil {
			m.log.Error("error fetching movie details", "error", msg.err)
		}
		m.detail = msg.page
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.Close()
		return m, tea.Quit
	}

	if m.screen == screenDetail {
		switch {
		case key.Matches(msg, m.keys.back):
			m.screen = screenHome
			m.notice = ""
		case key.Matches(msg, m.keys.play):
			m.notice = browser.PlayNotice
		case key.Matches(msg, m.keys.quit):
			m.Close()
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.focus {
	case focusInput:
		return m.handleInputKey(msg)
	case focusPanel:
		return m.handlePanelKey(msg)
	}
	return m.handleGridKey(msg)
}

func (m *Model) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.visible()
	switch {
	case key.Matches(msg, m.keys.quit):
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.search):
		m.focus = focusInput
		m.search.Focus()
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.left):
		if m.cursor > 0 {
			m.cursor--
			m.featured.Show(items[m.cursor])
		}
	case key.Matches(msg, m.keys.right):
		if m.cursor < len(items)-1 {
			m.cursor++
			m.featured.Show(items[m.cursor])
		}
	case key.Matches(msg, m.keys.open):
		if len(items) == 0 {
			return m, nil
		}
		id, mt := browser.DetailLink(items[m.cursor], m.filter)
		return m, m.openDetail(id, mt)
	case key.Matches(msg, m.keys.all):
		m.setFilter(browser.FilterAll)
	case key.Matches(msg, m.keys.movies):
		m.setFilter(browser.FilterMovies)
	case key.Matches(msg, m.keys.series):
		m.setFilter(browser.FilterSeries)
	case key.Matches(msg, m.keys.play):
		m.notice = browser.PlayNotice
	}
	return m, nil
}

func (m *Model) setFilter(f browser.Filter) {
	m.filter = f
	m.cursor = 0
	m.notice = ""
}

func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.focus = focusGrid
		m.search.Blur()
		return m, nil
	case "down", "tab":
		if m.searchView.Visible && len(m.searchView.Results) > 0 {
			m.search.PanelEnter()
			m.input.Blur()
			m.search.Blur()
			m.focus = focusPanel
			m.panelCursor = 0
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.search.KeyUp(m.input.Value())
	return m, cmd
}

func (m *Model) handlePanelKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	results := m.searchView.Results
	switch msg.String() {
	case "up":
		if m.panelCursor > 0 {
			m.panelCursor--
			return m, nil
		}
		m.search.PanelLeave()
		m.focus = focusInput
		m.search.Focus()
		return m, m.input.Focus()
	case "down":
		if m.panelCursor < len(results)-1 {
			m.panelCursor++
		}
	case "esc":
		m.search.PanelLeave()
		m.focus = focusGrid
	case "enter":
		if m.panelCursor < len(results) {
			id, mt := browser.DetailLink(results[m.panelCursor], browser.FilterAll)
			m.search.PanelLeave()
			m.focus = focusGrid
			return m, m.openDetail(id, mt)
		}
	}
	return m, nil
}
