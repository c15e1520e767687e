package cli

import (
	"github.com/bastiangx/countryq/pkg/country"
	"github.com/bastiangx/countryq/pkg/pager"
	"github.com/bastiangx/countryq/pkg/stats"
)

// Renderer draws everything the menu shows. The query packages never write output themselves.
type Renderer interface {
	Clear()
	Menu(title string, options []string)
	Prompt(label string)
	Countries(title string, page []country.Country, offset int, state pager.State)
	Summary(s stats.Summary)
	Continents(labels []string)
	Suggestions(names []string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}
