package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit   key.Binding
	search key.Binding
	back   key.Binding
	left   key.Binding
	right  key.Binding
	up     key.Binding
	down   key.Binding
	open   key.Binding
	all    key.Binding
	movies key.Binding
	series key.Binding
	play   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		up: key.NewBinding(
			key.WithKeys("up"),
		),
		down: key.NewBinding(
			key.WithKeys("down"),
		),
		open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		all: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "all"),
		),
		movies: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "movies"),
		),
		series: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "series"),
		),
		play: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "play"),
		),
	}
}

func (k keyMap) homeHelp() []key.Binding {
	return []key.Binding{k.left, k.right, k.open, k.search, k.all, k.movies, k.series, k.play, k.quit}
}

func (k keyMap) detailHelp() []key.Binding {
	return []key.Binding{k.back, k.play, k.quit}
}
