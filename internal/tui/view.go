package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Anikethb04/Project-IMDB/internal/browser"
	"github.com/Anikethb04/Project-IMDB/internal/models"
)

const (
	cardWidth    = 22
	overviewWrap = 80
)

func (m *Model) View() string {
	if m.screen == screenDetail {
		return m.detailView()
	}
	return m.homeView()
}

func ratingLine(r float64) string {
	return ratingStyle.Render(fmt.Sprintf("TMDB ★ %.1f", r))
}

func (m *Model) homeView() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")
	if m.searchView.Visible {
		b.WriteString(m.panelView())
		b.WriteString("\n")
	}

	if m.hasHeader {
		b.WriteString(featuredView(m.header))
		b.WriteString("\n")
	}

	b.WriteString(m.tabsView())
	b.WriteString("\n")
	b.WriteString(m.gridView())
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(m.help.ShortHelpView(m.keys.homeHelp()))
	return b.String()
}

func featuredView(it models.CatalogItem) string {
	lines := []string{
		titleStyle.Render(it.Name),
		subtleStyle.Render(it.GenreLabel+" · "+it.Year) + "  " + ratingLine(it.Rating),
	}
	if it.Overview != "" {
		lines = append(lines, lipgloss.NewStyle().Width(overviewWrap).Render(it.Overview))
	}
	return headerStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) tabsView() string {
	tabs := make([]string, 0, 3)
	for _, f := range []browser.Filter{browser.FilterAll, browser.FilterMovies, browser.FilterSeries} {
		style := tabStyle
		if f == m.filter {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(f.String()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) gridView() string {
	items := m.visible()
	if len(items) == 0 {
		return subtleStyle.Render("Nothing to show")
	}

	perRow := max(1, m.width/(cardWidth+4))
	start := (m.cursor / perRow) * perRow
	end := min(len(items), start+perRow)

	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		style := cardStyle
		if i == m.cursor && m.focus == focusGrid {
			style = selectedCardStyle
		}
		cards = append(cards, style.Render(cardText(items[i])))
	}
	pos := subtleStyle.Render(fmt.Sprintf("%d/%d", m.cursor+1, len(items)))
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...) + "\n" + pos
}

func cardText(it models.CatalogItem) string {
	return it.Name + "\n" +
		subtleStyle.Render(it.GenreLabel+", "+it.Year) + "\n" +
		ratingLine(it.Rating)
}

func (m *Model) panelView() string {
	v := m.searchView
	if v.Message != "" {
		return panelStyle.Render(v.Message)
	}
	rows := make([]string, len(v.Results))
	for i, it := range v.Results {
		row := fmt.Sprintf("%s  %s", it.Name, subtleStyle.Render(it.GenreLabel+", "+it.Year+", ")+ratingLine(it.Rating))
		if m.focus == focusPanel && i == m.panelCursor {
			row = titleStyle.Render("› ") + row
		} else {
			row = "  " + row
		}
		rows[i] = row
	}
	return panelStyle.Render(strings.Join(rows, "\n"))
}

func (m *Model) detailView() string {
	if m.loading {
		return subtleStyle.Render("Loading...")
	}
	d := m.detail

	var b strings.Builder
	b.WriteString(titleStyle.Render(d.Title))
	b.WriteString("\n")
	if d.Tagline != "" {
		b.WriteString(subtleStyle.Render(d.Tagline))
		b.WriteString("\n")
	}

	facts := []string{d.Year}
	if d.Runtime != "" {
		facts = append(facts, d.Runtime)
	}
	if d.Rating != "" {
		facts = append(facts, ratingStyle.Render("★ "+d.Rating))
	}
	b.WriteString(strings.Join(facts, "  ·  "))
	b.WriteString("\n")
	if len(d.Genres) > 0 {
		b.WriteString(subtleStyle.Render(strings.Join(d.Genres, ", ")))
		b.WriteString("\n")
	}
	if d.Overview != "" {
		b.WriteString(lipgloss.NewStyle().Width(overviewWrap).Render(d.Overview))
		b.WriteString("\n")
	}

	b.WriteString(sectionStyle.Render("Cast"))
	b.WriteString("\n")
	b.WriteString(peopleView(d.Cast, d.CastNote))

	b.WriteString(sectionStyle.Render("Crew"))
	b.WriteString("\n")
	b.WriteString(peopleView(d.Crew, d.CrewNote))

	b.WriteString(sectionStyle.Render("Reviews"))
	b.WriteString("\n")
	if d.ReviewsNote != "" {
		b.WriteString(subtleStyle.Render(d.ReviewsNote))
		b.WriteString("\n")
	}
	for _, r := range d.Reviews {
		head := titleStyle.Render(r.Author) + "  " + subtleStyle.Render(r.Date)
		if r.Rating != "" {
			head += "  " + ratingStyle.Render("★ "+r.Rating)
		}
		b.WriteString(head)
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(overviewWrap).Render(r.Content))
		b.WriteString("\n\n")
	}

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(m.help.ShortHelpView(m.keys.detailHelp()))
	return b.String()
}

func peopleView(people []browser.PersonCard, note string) string {
	if note != "" {
		return subtleStyle.Render(note) + "\n"
	}
	var b strings.Builder
	for _, p := range people {
		b.WriteString(p.Name + "  " + subtleStyle.Render(p.Role) + "\n")
	}
	return b.String()
}
