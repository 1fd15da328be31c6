package browser

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/Anikethb04/Project-IMDB/internal/models"
)

const (
	// DebounceDelay is the quiet period after a keystroke before searching.
	DebounceDelay = 300 * time.Millisecond
	// BlurGrace lets the pointer travel from the input to the panel.
	BlurGrace = 200 * time.Millisecond

	NoResultsMessage = "No results found"
)

// SearchState is the search controller's state.
type SearchState int

const (
	SearchIdle SearchState = iota
	SearchPending
	SearchResultsShown
)

func (s SearchState) String() string {
	switch s {
	case SearchPending:
		return "pending"
	case SearchResultsShown:
		return "results-shown"
	default:
		return "idle"
	}
}

// Searcher runs a catalog search.
type Searcher interface {
	Search(ctx context.Context, query string) ([]models.CatalogItem, error)
}

// SearchView is what the search panel should show.
type SearchView struct {
	Visible bool
	Results []models.CatalogItem
	// Message replaces the results list when set.
	Message string
}

// Search is the debounced search controller. Overlapping requests are not
// cancelled: whichever response arrives last is shown.
type Search struct {
	mu       sync.Mutex
	ctx      context.Context
	clock    clock.Clock
	searcher Searcher
	onChange func(SearchView)
	spawn    func(func())
	log      *slog.Logger

	state     SearchState
	query     string
	debounce  *clock.Timer
	// gen identifies the armed debounce; a callback from an older one is ignored.
	gen       int
	results   []models.CatalogItem
	message   string
	visible   bool
	focused   bool
	overPanel bool
}

// NewSearch creates an idle controller. Searches run under ctx; onChange is
// called with the new view after every visible change.
func NewSearch(ctx context.Context, c clock.Clock, searcher Searcher, onChange func(SearchView), log *slog.Logger) *Search {
	if log == nil {
		log = slog.Default()
	}
	if onChange == nil {
		onChange = func(SearchView) {}
	}
	return &Search{
		ctx:      ctx,
		clock:    c,
		searcher: searcher,
		onChange: onChange,
		spawn:    func(f func()) { go f() },
		log:      log.With("component", "search"),
	}
}

// State returns the current state.
func (s *Search) State() SearchState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// View projects the current state.
func (s *Search) View() SearchView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *Search) viewLocked() SearchView {
	return SearchView{
		Visible: s.visible,
		Results: s.results,
		Message: s.message,
	}
}

// KeyUp handles the input text changing.
func (s *Search) KeyUp(text string) {
	q := strings.TrimSpace(text)

	s.mu.Lock()
	s.cancelDebounceLocked()
	s.query = q
	if q == "" {
		s.state = SearchIdle
		s.results = nil
		s.message = ""
		s.visible = false
		view := s.viewLocked()
		s.mu.Unlock()
		s.onChange(view)
		return
	}
	s.state = SearchPending
	gen := s.gen
	s.debounce = s.clock.AfterFunc(DebounceDelay, func() { s.fire(gen, q) })
	s.mu.Unlock()
}

// Focus handles the input gaining focus. Existing text is searched at once.
func (s *Search) Focus() {
	s.mu.Lock()
	s.focused = true
	q := s.query
	s.mu.Unlock()

	if q != "" {
		s.spawn(func() { s.run(q) })
	}
}

// Blur handles the input losing focus.
func (s *Search) Blur() {
	s.mu.Lock()
	s.focused = false
	s.mu.Unlock()
	s.scheduleHide()
}

// PanelEnter handles the pointer entering the results panel.
func (s *Search) PanelEnter() {
	s.mu.Lock()
	s.overPanel = true
	s.mu.Unlock()
}

// PanelLeave handles the pointer leaving the results panel.
func (s *Search) PanelLeave() {
	s.mu.Lock()
	s.overPanel = false
	s.mu.Unlock()
	s.scheduleHide()
}

// Close cancels a pending debounce.
func (s *Search) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelDebounceLocked()
}

func (s *Search) scheduleHide() {
	s.clock.AfterFunc(BlurGrace, s.hideIfAbandoned)
}

func (s *Search) hideIfAbandoned() {
	s.mu.Lock()
	if s.overPanel || s.focused || !s.visible {
		s.mu.Unlock()
		return
	}
	s.visible = false
	s.state = SearchIdle
	view := s.viewLocked()
	s.mu.Unlock()
	s.onChange(view)
}

func (s *Search) fire(gen int, q string) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.debounce = nil
	s.mu.Unlock()
	s.run(q)
}

func (s *Search) run(q string) {
	results, err := s.searcher.Search(s.ctx, q)
	if err != nil {
		s.log.Error("search failed", "query", q, "error", err)
		return
	}

	s.mu.Lock()
	s.results = results
	s.message = ""
	if len(results) == 0 {
		s.message = NoResultsMessage
	}
	s.visible = true
	s.state = SearchResultsShown
	view := s.viewLocked()
	s.mu.Unlock()
	s.onChange(view)
}

// cancelDebounceLocked also bumps the generation, since Stop cannot reach a
// callback that is already waiting on the lock.
func (s *Search) cancelDebounceLocked() {
	if s.debounce != nil {
		s.debounce.Stop()
		s.debounce = nil
	}
	s.gen++
}
