package browser

import (
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anikethb04/Project-IMDB/internal/models"
)

const settle = 50 * time.Millisecond

// seq returns an intn that yields the given indexes in order, then repeats the last.
func seq(idx ...int) func(int) int {
	i := 0
	return func(n int) int {
		v := idx[min(i, len(idx)-1)]
		i++
		return v % n
	}
}

// renderLog records featured renders, which may arrive from timer goroutines.
type renderLog struct {
	mu    sync.Mutex
	names []string
}

func (r *renderLog) render(it models.CatalogItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names = append(r.names, it.Name)
}

func (r *renderLog) get() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.names...)
}

func (r *renderLog) waitFor(t *testing.T, want ...string) {
	t.Helper()
	require.Eventually(t, func() bool { return len(r.get()) >= len(want) }, time.Second, time.Millisecond)
	assert.Equal(t, want, r.get())
}

func (r *renderLog) staysAt(t *testing.T, n int) {
	t.Helper()
	assert.Never(t, func() bool { return len(r.get()) != n }, settle, 5*time.Millisecond)
}

func TestFeatured_EmptyListNeverArmsTimer(t *testing.T) {
	c := clock.NewMock()
	var log renderLog
	f := NewFeatured(c, seq(0), log.render)

	f.Start(nil)
	f.Start([]models.CatalogItem{})
	c.Add(time.Hour)

	log.staysAt(t, 0)
	_, ok := f.Current()
	assert.False(t, ok)
}

func TestFeatured_RendersImmediatelyThenEveryInterval(t *testing.T) {
	c := clock.NewMock()
	var log renderLog
	f := NewFeatured(c, seq(2, 0, 0, 1), log.render)

	f.Start(sample("a", "b", "c"))
	require.Equal(t, []string{"c"}, log.get())

	c.Add(RotationInterval - time.Millisecond)
	log.staysAt(t, 1)

	c.Add(time.Millisecond)
	log.waitFor(t, "c", "a")

	// repeats are allowed
	c.Add(RotationInterval)
	log.waitFor(t, "c", "a", "a")

	c.Add(RotationInterval)
	log.waitFor(t, "c", "a", "a", "b")

	cur, ok := f.Current()
	require.True(t, ok)
	assert.Equal(t, "b", cur.Name)
}

func TestFeatured_StopCancelsRotation(t *testing.T) {
	c := clock.NewMock()
	var log renderLog
	f := NewFeatured(c, seq(0), log.render)

	f.Start(sample("a"))
	f.Stop()
	c.Add(3 * RotationInterval)

	log.staysAt(t, 1)
}

func TestFeatured_RestartReplacesTimer(t *testing.T) {
	c := clock.NewMock()
	var log renderLog
	f := NewFeatured(c, seq(0), log.render)

	f.Start(sample("a"))
	f.Start(sample("z"))

	// only the second schedule survives
	c.Add(RotationInterval)
	log.waitFor(t, "a", "z", "z")
	log.staysAt(t, 3)
}

func TestFeatured_StaleTickIsIgnored(t *testing.T) {
	var log renderLog
	f := NewFeatured(clock.NewMock(), seq(0), log.render)

	f.Start(sample("a"))
	f.mu.Lock()
	stale := f.gen
	f.mu.Unlock()
	f.Stop()

	f.tick(stale)
	assert.Equal(t, []string{"a"}, log.get())
}

func TestFeatured_ShowDoesNotReschedule(t *testing.T) {
	c := clock.NewMock()
	var log renderLog
	f := NewFeatured(c, seq(0), log.render)

	f.Start(sample("a", "b"))
	f.Show(sample("hovered")[0])
	assert.Equal(t, []string{"a", "hovered"}, log.get())

	cur, _ := f.Current()
	assert.Equal(t, "a", cur.Name)

	c.Add(RotationInterval)
	log.waitFor(t, "a", "hovered", "a")
}
