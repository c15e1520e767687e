package server

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bastiangx/countryq/pkg/config"
	"github.com/bastiangx/countryq/pkg/country"
	"github.com/bastiangx/countryq/pkg/filter"
	"github.com/bastiangx/countryq/pkg/fuzzy"
	"github.com/bastiangx/countryq/pkg/order"
	"github.com/bastiangx/countryq/pkg/pager"
	"github.com/bastiangx/countryq/pkg/stats"
	"github.com/bastiangx/countryq/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles msgpack IPC for country queries
type Server struct {
	store        *country.Store
	matcher      *fuzzy.Matcher
	names        suggest.ICompleter
	config       *config.Config
	dec          *msgpack.Decoder
	enc          *msgpack.Encoder
	requestCount int
}

// NewServer creates a server reading requests from in and writing responses to out
func NewServer(store *country.Store, matcher *fuzzy.Matcher, names suggest.ICompleter, cfg *config.Config, in io.Reader, out io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		store:   store,
		matcher: matcher,
		names:   names,
		config:  cfg,
		dec:     msgpack.NewDecoder(in),
		enc:     msgpack.NewEncoder(out),
	}
}

// Start announces readiness and serves requests until the input ends
func (s *Server) Start() error {
	log.Debug("Starting IPC server")
	if err := s.send(Response{Status: StatusReady, Total: s.store.Len()}); err != nil {
		return err
	}

	for {
		raw, err := s.dec.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Debugf("Input closed after %d requests", s.requestCount)
				return nil
			}
			log.Errorf("Reading request: %v", err)
			return err
		}
		s.requestCount++

		var req Request
		if err := msgpack.Unmarshal(raw, &req); err != nil {
			log.Errorf("Unmarshaling request: %v", err)
			if err := s.sendError("", "invalid request", err.Error(), 400); err != nil {
				return err
			}
			continue
		}
		if err := s.send(s.handleRequest(req)); err != nil {
			return err
		}
	}
}

// handleRequest dispatches one request by op and times it
func (s *Server) handleRequest(req Request) Response {
	start := time.Now()
	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	log.Debug("Processing request", "id", req.ID, "op", req.Op)

	var resp Response
	switch req.Op {
	case "search":
		resp = s.handleSearch(req)
	case "continent":
		resp = s.handleContinent(req)
	case "continents":
		resp = Response{Labels: filter.Continents(s.store.All())}
		resp.Total = len(resp.Labels)
	case "population":
		resp = s.handleRange(req, filter.PopulationRange)
	case "area":
		resp = s.handleRange(req, filter.AreaRange)
	case "sort":
		resp = s.handleSort(req)
	case "page":
		resp = s.paged(s.store.All(), req)
	case "stats":
		resp = s.handleStats(req)
	case "complete":
		resp = s.handleComplete(req)
	case "health":
		resp = s.handleHealth()
	default:
		resp = errorResponse("unknown op", fmt.Sprintf("unknown op %q", req.Op), 400)
	}

	resp.ID = req.ID
	if resp.Status == "" {
		resp.Status = StatusOK
	}
	resp.TimeTaken = time.Since(start).Microseconds()
	log.Debugf("Took [ %v ] for op '%s'", time.Since(start), req.Op)
	return resp
}

func (s *Server) handleSearch(req Request) Response {
	matches, err := s.matcher.Search(req.Query)
	if err != nil {
		return queryError(err)
	}
	resp := s.paged(fuzzy.Countries(matches), req)
	if len(resp.Records) > 0 {
		offset := (resp.Page - 1) * s.pageSize(req)
		resp.Scores = make([]int, len(resp.Records))
		for i := range resp.Records {
			resp.Scores[i] = matches[offset+i].Score
		}
	}
	return resp
}

func (s *Server) handleContinent(req Request) Response {
	records := s.store.All()
	found, err := filter.ByContinent(records, req.Query)
	if err != nil {
		return queryError(err)
	}
	resp := s.paged(found, req)
	if len(found) == 0 {
		if hint, ok := filter.SuggestContinent(records, req.Query); ok {
			resp.Labels = []string{hint}
		}
	}
	return resp
}

type rangeQuery func([]country.Country, country.Input, country.Input) country.Result[[]country.Country]

func (s *Server) handleRange(req Request, query rangeQuery) Response {
	res := query(s.store.All(), country.Text(req.Min), country.Text(req.Max))
	if res.Status != country.StatusOK {
		return queryError(res.Err)
	}
	return s.paged(res.Value, req)
}

func (s *Server) handleSort(req Request) Response {
	sorted, err := order.Sort(s.store.All(), req.Key, req.Dir)
	if err != nil {
		return queryError(err)
	}
	resp := s.paged(sorted.Records, req)
	resp.Warning = sorted.Warning
	return resp
}

// handleStats summarizes the whole store, or one continent when q is set
func (s *Server) handleStats(req Request) Response {
	records := s.store.All()
	if req.Query != "" {
		found, err := filter.ByContinent(records, req.Query)
		if err != nil {
			return queryError(err)
		}
		records = found
	}
	summary, err := stats.Summarize(records)
	if err != nil {
		return queryError(err)
	}
	return Response{Stats: &summary, Total: summary.Count}
}

// handleHealth reports the store size plus matcher and name index stats
func (s *Server) handleHealth() Response {
	resp := Response{Total: s.store.Len()}
	if s.matcher != nil {
		resp.Matcher = s.matcher.Stats()
	}
	if s.names != nil {
		resp.Names = s.names.Stats()
	}
	return resp
}

func (s *Server) handleComplete(req Request) Response {
	if s.names == nil {
		return errorResponse("unavailable", "name completion is not enabled", 503)
	}
	limit := req.Limit
	if limit < 1 {
		limit = s.config.Search.CompletionLimit
	}
	found := s.names.Complete(req.Query, limit)
	labels := make([]string, len(found))
	for i, sg := range found {
		labels[i] = sg.Name
	}
	return Response{Labels: labels, Total: len(labels)}
}

func (s *Server) pageSize(req Request) int {
	if req.Size > 0 {
		return req.Size
	}
	return s.config.Display.PageSize
}

// paged windows records onto the requested page. Asking past the last
// page returns the last page with the boundary notice.
func (s *Server) paged(records []country.Country, req Request) Response {
	resp := Response{Records: []country.Country{}, Total: len(records)}
	session, err := pager.New(records, s.pageSize(req))
	if err != nil {
		return resp
	}
	for session.CurrentPage() < req.Page {
		if notice := session.Apply(pager.Next); notice != pager.NoNotice {
			resp.Notice = string(notice)
			break
		}
	}
	resp.Records = session.Page()
	resp.Page = session.CurrentPage()
	resp.Pages = session.TotalPages()
	return resp
}

func queryError(err error) Response {
	info := &ErrorInfo{Kind: country.KindOf(err).String(), Message: err.Error()}
	var qe *country.Error
	if errors.As(err, &qe) {
		info.Field = qe.Field
		info.Input = qe.Input
		info.Message = qe.Msg
	}
	code := 400
	if k := country.KindOf(err); k == country.NoData || k == country.NoRecords {
		code = 404
	}
	return Response{Status: StatusError, Error: info, Code: code}
}

func errorResponse(kind, message string, code int) Response {
	return Response{Status: StatusError, Error: &ErrorInfo{Kind: kind, Message: message}, Code: code}
}

func (s *Server) send(resp Response) error {
	if err := s.enc.Encode(&resp); err != nil {
		log.Errorf("Encoding response: %v", err)
		return err
	}
	return nil
}

// sendError sends an error response
func (s *Server) sendError(id, kind, message string, code int) error {
	resp := errorResponse(kind, message, code)
	resp.ID = id
	return s.send(resp)
}
