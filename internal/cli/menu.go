package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/countryq/internal/utils"
	"github.com/bastiangx/countryq/pkg/country"
	"github.com/bastiangx/countryq/pkg/filter"
	"github.com/bastiangx/countryq/pkg/fuzzy"
	"github.com/bastiangx/countryq/pkg/order"
	"github.com/bastiangx/countryq/pkg/pager"
	"github.com/bastiangx/countryq/pkg/stats"
	"github.com/bastiangx/countryq/pkg/suggest"
	"github.com/charmbracelet/log"
)

const menuTitle = "Country Explorer"

var menuOptions = []string{
	"1. Search country by name",
	"2. Filter by continent",
	"3. Filter by population range",
	"4. Filter by area range",
	"5. Sort countries",
	"6. Show statistics",
	"0. Exit",
}

// Options controls the interactive session.
type Options struct {
	PageSize        int
	CompletionLimit int
	ClearScreen     bool
}

// App is the interactive menu loop. It owns no data: every operation
// borrows the store's records and hands results to the Renderer.
type App struct {
	store   *country.Store
	matcher *fuzzy.Matcher
	names   suggest.ICompleter
	out     Renderer
	in      *Prompter
	opts    Options
	closed  bool
}

// NewApp wires the query components to a renderer and a prompter.
func NewApp(store *country.Store, matcher *fuzzy.Matcher, names suggest.ICompleter, out Renderer, in *Prompter, opts Options) *App {
	if opts.PageSize <= 0 {
		opts.PageSize = pager.DefaultPageSize
	}
	return &App{
		store:   store,
		matcher: matcher,
		names:   names,
		out:     out,
		in:      in,
		opts:    opts,
	}
}

// Run shows the menu until the user exits, interrupts at the menu, or input ends.
func (a *App) Run() error {
	for {
		if a.opts.ClearScreen {
			a.out.Clear()
		}
		a.out.Menu(menuTitle, menuOptions)
		in, err := a.ask("Choose an option")
		if err != nil {
			return err
		}
		if a.closed || in.Cancelled {
			return nil
		}

		choice := strings.TrimSpace(in.Text)
		start := time.Now()
		switch choice {
		case "1":
			a.search()
		case "2":
			a.byContinent()
		case "3":
			a.byRange("population", filter.ByPopulation)
		case "4":
			a.byRange("area", filter.ByArea)
		case "5":
			a.sort()
		case "6":
			a.statistics()
		case "0":
			return nil
		default:
			a.out.Error(fmt.Sprintf("Invalid option %q", choice))
		}
		log.Debugf("Option %s took [ %v ]", choice, time.Since(start))

		if a.closed {
			return nil
		}
		a.pause()
	}
}

// ask prompts and reads one line. End of input marks the app closed
// and reads as a cancellation so the running operation unwinds.
func (a *App) ask(label string) (country.Input, error) {
	a.out.Prompt(label)
	in, err := a.in.Read()
	if errors.Is(err, io.EOF) {
		a.closed = true
		return country.Interrupted(), nil
	}
	if err != nil {
		return country.Input{}, err
	}
	return in, nil
}

func (a *App) pause() {
	if _, err := a.ask("Press Enter to continue"); err != nil {
		a.closed = true
	}
}

func (a *App) search() {
	in, err := a.ask("Country name")
	if err != nil || in.Cancelled {
		return
	}
	matches, err := a.matcher.Search(in.Text)
	if err != nil {
		a.out.Error(err.Error())
		return
	}
	if len(matches) == 0 {
		a.out.Info(fmt.Sprintf("No country matches %q", strings.TrimSpace(in.Text)))
		a.hintNames(in.Text)
		return
	}
	a.browse(fmt.Sprintf("Results for %q", strings.TrimSpace(in.Text)), fuzzy.Countries(matches))
}

// hintNames lists names sharing the longest prefix of query that any name starts with.
func (a *App) hintNames(query string) {
	if a.names == nil {
		return
	}
	var found []suggest.Suggestion
	prefix := []rune(strings.TrimSpace(query))
	for ; len(prefix) > 0 && len(found) == 0; prefix = prefix[:len(prefix)-1] {
		found = a.names.Complete(string(prefix), a.opts.CompletionLimit)
	}
	if len(found) == 0 {
		return
	}
	names := make([]string, len(found))
	for i, s := range found {
		names[i] = s.Name
	}
	a.out.Suggestions(names)
}

func (a *App) byContinent() {
	records := a.store.All()
	a.out.Continents(filter.Continents(records))
	in, err := a.ask("Continent")
	if err != nil || in.Cancelled {
		return
	}
	found, err := filter.ByContinent(records, in.Text)
	if err != nil {
		a.out.Error(err.Error())
		return
	}
	term := strings.TrimSpace(in.Text)
	if len(found) == 0 {
		a.out.Info(fmt.Sprintf("No countries found in %q", term))
		if hint, ok := filter.SuggestContinent(records, term); ok {
			a.out.Info(fmt.Sprintf("Did you mean %q?", hint))
		}
		return
	}
	a.browse(fmt.Sprintf("Countries in %s", found[0].Continent), found)
}

type rangeFunc func([]country.Country, int64, int64) ([]country.Country, error)

func (a *App) byRange(field string, apply rangeFunc) {
	lo := a.bound(field, "Minimum "+field)
	if !lo.IsOK() {
		return
	}
	hi := a.bound(field, "Maximum "+field)
	if !hi.IsOK() {
		return
	}
	found, err := apply(a.store.All(), lo.Value, hi.Value)
	if err != nil {
		a.out.Error(err.Error())
		return
	}
	if len(found) == 0 {
		a.out.Info(fmt.Sprintf("No countries with %s between %s and %s",
			field, utils.FormatWithCommas(lo.Value), utils.FormatWithCommas(hi.Value)))
		return
	}
	a.browse(fmt.Sprintf("Countries by %s [%s, %s]",
		field, utils.FormatWithCommas(lo.Value), utils.FormatWithCommas(hi.Value)), found)
}

// bound re-prompts until the user enters an integer or cancels.
func (a *App) bound(field, label string) country.Result[int64] {
	for {
		in, err := a.ask(label)
		if err != nil {
			return country.Cancelled[int64]()
		}
		res := filter.ParseBound(field, in)
		if res.Status != country.StatusErr {
			return res
		}
		a.out.Error(res.Err.Error())
	}
}

func (a *App) sort() {
	keyIn, err := a.ask("Sort by: 1) name  2) continent  3) population  4) area")
	if err != nil || keyIn.Cancelled {
		return
	}
	if _, err := order.ParseKey(keyIn.Text); err != nil {
		a.out.Error(err.Error())
		return
	}
	dirIn, err := a.ask("Order: [A]scending or [D]escending")
	if err != nil || dirIn.Cancelled {
		return
	}
	sorted, err := order.Sort(a.store.All(), keyIn.Text, dirIn.Text)
	if err != nil {
		a.out.Error(err.Error())
		return
	}
	if sorted.Warning != "" {
		a.out.Warn(sorted.Warning)
	}
	a.browse(fmt.Sprintf("Sorted by %s, %s", sorted.Key, sorted.Direction), sorted.Records)
}

func (a *App) statistics() {
	summary, err := stats.Summarize(a.store.All())
	if err != nil {
		a.out.Error(err.Error())
		return
	}
	a.out.Summary(summary)
}

// browse pages through records until the user leaves. A single page is shown without navigation.
func (a *App) browse(title string, records []country.Country) {
	session, err := pager.New(records, a.opts.PageSize)
	if err != nil {
		a.out.Info(err.Error())
		return
	}
	notice := pager.NoNotice
	for {
		if a.opts.ClearScreen && session.TotalPages() > 1 {
			a.out.Clear()
		}
		a.out.Countries(title, session.Page(), session.Offset(), session.State())
		if session.TotalPages() == 1 {
			return
		}
		if notice != pager.NoNotice {
			a.out.Warn(string(notice))
		}
		in, err := a.ask(navLabel(session.HasPrevious(), session.HasNext()))
		if err != nil || in.Cancelled {
			return
		}
		notice = session.Apply(pager.ParseCommand(in.Text))
		if session.Done() {
			return
		}
	}
}

// navLabel lists only the moves that lead somewhere from the current page.
func navLabel(hasPrevious, hasNext bool) string {
	moves := make([]string, 0, 3)
	if hasNext {
		moves = append(moves, "[N]ext")
	}
	if hasPrevious {
		moves = append(moves, "[P]revious")
	}
	moves = append(moves, "[Q]uit")
	return strings.Join(moves, "  ")
}
