package browser

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/Anikethb04/Project-IMDB/internal/models"
)

// RotationInterval is how often the featured item is re-picked.
const RotationInterval = 10 * time.Minute

// Featured picks a random item from a list and re-picks it periodically.
type Featured struct {
	mu      sync.Mutex
	clock   clock.Clock
	intn    func(n int) int
	render  func(models.CatalogItem)
	items   []models.CatalogItem
	current int
	timer   *clock.Timer
	gen     int
}

// NewFeatured creates a stopped controller. A nil intn uses math/rand/v2.
func NewFeatured(c clock.Clock, intn func(n int) int, render func(models.CatalogItem)) *Featured {
	if intn == nil {
		intn = rand.IntN
	}
	return &Featured{clock: c, intn: intn, render: render, current: -1}
}

// Start renders a random item now and then every RotationInterval. An empty
// list is a no-op: nothing renders and no timer is armed.
func (f *Featured) Start(items []models.CatalogItem) {
	f.mu.Lock()
	f.stopLocked()
	if len(items) == 0 {
		f.mu.Unlock()
		return
	}
	f.items = items
	gen := f.gen
	item := f.pickLocked()
	f.armLocked(gen)
	f.mu.Unlock()

	f.render(item)
}

// Stop cancels the rotation timer.
func (f *Featured) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopLocked()
}

// Current returns the item last picked by the rotation.
func (f *Featured) Current() (models.CatalogItem, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.current < 0 || f.current >= len(f.items) {
		return models.CatalogItem{}, false
	}
	return f.items[f.current], true
}

// Show renders item without touching the rotation schedule.
func (f *Featured) Show(item models.CatalogItem) {
	f.render(item)
}

func (f *Featured) tick(gen int) {
	f.mu.Lock()
	if gen != f.gen {
		f.mu.Unlock()
		return
	}
	item := f.pickLocked()
	f.armLocked(gen)
	f.mu.Unlock()

	f.render(item)
}

func (f *Featured) pickLocked() models.CatalogItem {
	f.current = f.intn(len(f.items))
	return f.items[f.current]
}

func (f *Featured) armLocked(gen int) {
	f.timer = f.clock.AfterFunc(RotationInterval, func() { f.tick(gen) })
}

// stopLocked also bumps the generation so a callback already in flight
// becomes a no-op.
func (f *Featured) stopLocked() {
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.gen++
}
