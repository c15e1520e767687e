// Package render draws the interactive menu with lipgloss.
package render

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/bastiangx/countryq/internal/utils"
	"github.com/bastiangx/countryq/pkg/country"
	"github.com/bastiangx/countryq/pkg/pager"
	"github.com/bastiangx/countryq/pkg/stats"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

const defaultWidth = 80

var (
	text   = lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}
	subtle = lipgloss.AdaptiveColor{Light: "#9893a5", Dark: "#6e6a86"}
	accent = lipgloss.AdaptiveColor{Light: "#286983", Dark: "#9ccfd8"}
	warn   = lipgloss.AdaptiveColor{Light: "#ea9d34", Dark: "#f6c177"}
	danger = lipgloss.AdaptiveColor{Light: "#b4637a", Dark: "#eb6f92"}
)

// Styles groups every lipgloss style the terminal uses.
type Styles struct {
	Title  lipgloss.Style
	Panel  lipgloss.Style
	Prompt lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style
	Number lipgloss.Style
	Muted  lipgloss.Style
	Info   lipgloss.Style
	Warn   lipgloss.Style
	Error  lipgloss.Style
}

// DefaultStyles returns the adaptive light/dark palette.
func DefaultStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		Panel:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(subtle).Padding(0, 2),
		Prompt: lipgloss.NewStyle().Bold(true).Foreground(text),
		Header: lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1),
		Cell:   lipgloss.NewStyle().Foreground(text).Padding(0, 1),
		Number: lipgloss.NewStyle().Foreground(text).Padding(0, 1).Align(lipgloss.Right),
		Muted:  lipgloss.NewStyle().Italic(true).Foreground(subtle),
		Info:   lipgloss.NewStyle().Foreground(accent),
		Warn:   lipgloss.NewStyle().Foreground(warn),
		Error:  lipgloss.NewStyle().Bold(true).Foreground(danger),
	}
}

// Terminal renders to a writer. Screen clearing and width detection
// only happen when the writer is a terminal.
type Terminal struct {
	out       io.Writer
	styles    Styles
	nameWidth int
	width     int
	tty       bool
}

// NewTerminal builds a renderer for out. nameWidth caps the name column in display cells.
func NewTerminal(out io.Writer, nameWidth int) *Terminal {
	t := &Terminal{
		out:       out,
		styles:    DefaultStyles(),
		nameWidth: nameWidth,
		width:     defaultWidth,
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		t.tty = true
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			t.width = w
		}
	}
	if t.nameWidth <= 0 {
		t.nameWidth = 28
	}
	return t
}

func (t *Terminal) println(s string) {
	fmt.Fprintln(t.out, s)
}

// Clear wipes the screen on a terminal and does nothing otherwise.
func (t *Terminal) Clear() {
	if t.tty {
		fmt.Fprint(t.out, "\033[H\033[2J")
	}
}

func (t *Terminal) Menu(title string, options []string) {
	body := lipgloss.JoinVertical(lipgloss.Left,
		t.styles.Title.Render(title),
		"",
		strings.Join(options, "\n"),
	)
	t.println(t.styles.Panel.Render(body))
}

func (t *Terminal) Prompt(label string) {
	fmt.Fprint(t.out, t.styles.Prompt.Render(label+": "))
}

// Countries prints one page as a table with a position footer.
func (t *Terminal) Countries(title string, page []country.Country, offset int, state pager.State) {
	rows := make([][]string, len(page))
	for i, c := range page {
		rows[i] = []string{
			strconv.Itoa(offset + i + 1),
			Truncate(c.Name, t.nameWidth),
			c.Continent,
			utils.FormatWithCommas(c.Population),
			utils.FormatWithCommas(c.Area),
		}
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(subtle)).
		Headers("#", "Name", "Continent", "Population", "Area (km²)").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return t.styles.Header
			case col == 0 || col >= 3:
				return t.styles.Number
			}
			return t.styles.Cell
		})

	t.println(t.styles.Title.Render(title))
	t.println(tbl.Render())
	t.println(t.styles.Muted.Render(fmt.Sprintf("Page %d of %d", state.Current, state.Total)))
}

func (t *Terminal) Summary(s stats.Summary) {
	overview := table.New().
		Border(lipgloss.HiddenBorder()).
		Rows(
			[]string{"Countries", utils.FormatWithCommas(int64(s.Count))},
			[]string{"Most populous", fmt.Sprintf("%s (%s)", s.MostPopulous.Name, utils.FormatWithCommas(s.MostPopulous.Population))},
			[]string{"Least populous", fmt.Sprintf("%s (%s)", s.LeastPopulous.Name, utils.FormatWithCommas(s.LeastPopulous.Population))},
			[]string{"Mean population", formatMean(s.MeanPopulation)},
			[]string{"Total population", utils.FormatWithCommas(s.TotalPopulation)},
		).
		StyleFunc(func(_, col int) lipgloss.Style {
			if col == 0 {
				return t.styles.Header
			}
			return t.styles.Cell
		})

	counts := make([][]string, len(s.ByContinent))
	for i, cc := range s.ByContinent {
		counts[i] = []string{cc.Continent, strconv.Itoa(cc.Count)}
	}
	byContinent := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(subtle)).
		Headers("Continent", "Countries").
		Rows(counts...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return t.styles.Header
			case col == 1:
				return t.styles.Number
			}
			return t.styles.Cell
		})

	t.println(t.styles.Title.Render("Statistics"))
	t.println(overview.Render())
	t.println(byContinent.Render())
}

func (t *Terminal) Continents(labels []string) {
	t.println(t.styles.Muted.Render("Available continents: " + strings.Join(labels, ", ")))
}

func (t *Terminal) Suggestions(names []string) {
	t.println(t.styles.Muted.Render("Names starting alike: " + strings.Join(names, ", ")))
}

func (t *Terminal) Info(msg string)  { t.println(t.styles.Info.Render(msg)) }
func (t *Terminal) Warn(msg string)  { t.println(t.styles.Warn.Render("warning: " + msg)) }
func (t *Terminal) Error(msg string) { t.println(t.styles.Error.Render("error: " + msg)) }

// Truncate shortens s to at most width display cells, marking the cut with an ellipsis.
func Truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

func formatMean(mean float64) string {
	cents := int64(math.Round(mean * 100))
	return fmt.Sprintf("%s.%02d", utils.FormatWithCommas(cents/100), cents%100)
}
