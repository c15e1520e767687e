/*
Package server exposes the country query engine over msgpack IPC.

Clients write a stream of msgpack-encoded Request maps to stdin and read one
Response per request from stdout. The first message the server writes is a
ready Response with the record count.

	{"id": "r1", "op": "search", "q": "argentna"}
	{"id": "r1", "status": "ok", "records": [...], "scores": [94], "total": 1, "page": 1, "pages": 1, "t": 212}

Range bounds travel as text so they are validated exactly like typed input:

	{"id": "r2", "op": "population", "min": "1000000", "max": "5e6"}
	{"id": "r2", "status": "error", "error": {"kind": "invalid number", "field": "population", ...}, "c": 400}

Supported ops: search, continent, continents, population, area, sort, page,
stats, complete and health. List results are paged; page and size select the
window and a notice is set when the requested page is past the end.
*/
package server

import (
	"github.com/bastiangx/countryq/pkg/country"
	"github.com/bastiangx/countryq/pkg/stats"
)

// Request is one client message. Fields not used by an op are ignored.
type Request struct {
	ID    string `msgpack:"id"`
	Op    string `msgpack:"op"`
	Query string `msgpack:"q,omitempty"`
	Min   string `msgpack:"min,omitempty"`
	Max   string `msgpack:"max,omitempty"`
	Key   string `msgpack:"key,omitempty"`
	Dir   string `msgpack:"dir,omitempty"`
	Page  int    `msgpack:"page,omitempty"`
	Size  int    `msgpack:"size,omitempty"`
	Limit int    `msgpack:"l,omitempty"`
}

// ErrorInfo describes a failed request.
type ErrorInfo struct {
	Kind    string `msgpack:"kind"`
	Field   string `msgpack:"field,omitempty"`
	Input   string `msgpack:"input,omitempty"`
	Message string `msgpack:"message"`
}

// Response answers one Request.
type Response struct {
	ID        string            `msgpack:"id"`
	Status    string            `msgpack:"status"`
	Error     *ErrorInfo        `msgpack:"error,omitempty"`
	Code      int               `msgpack:"c,omitempty"`
	Records   []country.Country `msgpack:"records,omitempty"`
	Scores    []int             `msgpack:"scores,omitempty"`
	Labels    []string          `msgpack:"labels,omitempty"`
	Stats     *stats.Summary    `msgpack:"stats,omitempty"`
	Total     int               `msgpack:"total"`
	Page      int               `msgpack:"page,omitempty"`
	Pages     int               `msgpack:"pages,omitempty"`
	Warning   string            `msgpack:"warning,omitempty"`
	Notice    string            `msgpack:"notice,omitempty"`
	Matcher   map[string]int    `msgpack:"matcher,omitempty"`
	Names     map[string]int    `msgpack:"names,omitempty"`
	TimeTaken int64             `msgpack:"t"` // microseconds
}

const (
	StatusReady = "ready"
	StatusOK    = "ok"
	StatusError = "error"
)
