// Package valettest provides an in-process stand-in for the Valet observations API.
//
// It reproduces the behaviour the functional suite relies on: 200 with an
// observations payload, 400 with a message for bad formats and bad query
// parameters, 404 for unknown series. Only the json format is served.
package valettest

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
	"valet/internal/domain"

	"github.com/go-chi/chi/v5"
)

const (
	dateLayout = "2006-01-02"

	MsgBadRecent  = "Bad recent observations request parameters, you can not mix recent and start_date or end_date, and you can only use one recent parameter."
	MsgBadFormat  = "Bad request format. The format must be one of json, xml or csv."
	MsgBadDate    = "Bad date request parameters, dates must be in YYYY-MM-DD format."
	MsgBadOrder   = "Bad order_dir request parameter, must be asc or desc."
	msgNotFoundFn = "Series %s not found."
)

// Point is one business-day value of a series.
type Point struct {
	Date  time.Time
	Value float64
}

type Server struct {
	*httptest.Server

	mu       sync.RWMutex
	now      time.Time
	series   map[string][]Point
	requests []string
}

type Option func(*Server)

// WithNow pins the date the recent_* windows are computed from.
func WithNow(now time.Time) Option {
	return func(s *Server) { s.now = now.UTC().Truncate(24 * time.Hour) }
}

// WithSeries registers a series with explicit points, replacing any generated data.
func WithSeries(name string, points ...Point) Option {
	return func(s *Server) { s.series[name] = sortPoints(points) }
}

// DefaultSeries are generated for every server unless overridden.
var DefaultSeries = map[string]float64{
	"FXUSDCAD": 1.36,
	"FXEURCAD": 1.48,
	"FXAUDCAD": 0.89,
	"FXCADAUD": 1.12,
	"FXUSDEUR": 0.92,
}

func NewServer(opts ...Option) *Server {
	s := &Server{
		now:    time.Now().UTC().Truncate(24 * time.Hour),
		series: make(map[string][]Point),
	}
	for _, opt := range opts {
		opt(s)
	}
	for name, base := range DefaultSeries {
		if _, ok := s.series[name]; !ok {
			s.series[name] = generate(s.now, base)
		}
	}

	router := chi.NewRouter()
	router.Use(s.record)
	router.Get("/valet/observations/{series}/{format}", s.observations)
	s.Server = httptest.NewServer(router)
	return s
}

// Requests returns the request URIs received so far.
func (s *Server) Requests() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.requests)
}

// Points returns a copy of the stored points of a series.
func (s *Server) Points(name string) []Point {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.series[name])
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.URL.RequestURI())
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

type observationsResponse struct {
	Terms        map[string]string              `json:"terms"`
	SeriesDetail map[string]domain.SeriesDetail `json:"seriesDetail"`
	Observations []map[string]any               `json:"observations"`
}

func (s *Server) observations(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "format") != "json" {
		writeMessage(w, http.StatusBadRequest, MsgBadFormat)
		return
	}

	names := strings.Split(chi.URLParam(r, "series"), ",")

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, name := range names {
		if _, ok := s.series[name]; !ok {
			writeMessage(w, http.StatusNotFound, fmt.Sprintf(msgNotFoundFn, name))
			return
		}
	}

	f, status, msg := s.parseFilter(r)
	if status != http.StatusOK {
		writeMessage(w, status, msg)
		return
	}

	byDate := make(map[string]map[string]any)
	var dates []string
	for _, name := range names {
		for _, p := range f.apply(s.series[name]) {
			d := p.Date.Format(dateLayout)
			obs, ok := byDate[d]
			if !ok {
				obs = map[string]any{"d": d}
				byDate[d] = obs
				dates = append(dates, d)
			}
			obs[name] = domain.SeriesValue{V: strconv.FormatFloat(p.Value, 'f', 4, 64)}
		}
	}
	slices.Sort(dates)
	if f.desc {
		slices.Reverse(dates)
	}

	res := observationsResponse{
		Terms:        map[string]string{"url": "https://www.bankofcanada.ca/terms/"},
		SeriesDetail: make(map[string]domain.SeriesDetail, len(names)),
		Observations: make([]map[string]any, 0, len(dates)),
	}
	for _, name := range names {
		res.SeriesDetail[name] = seriesDetail(name)
	}
	for _, d := range dates {
		res.Observations = append(res.Observations, byDate[d])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(res)
}

type filter struct {
	from   time.Time
	to     time.Time
	recent int
	desc   bool
}

func (f filter) apply(points []Point) []Point {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if !f.from.IsZero() && p.Date.Before(f.from) {
			continue
		}
		if !f.to.IsZero() && p.Date.After(f.to) {
			continue
		}
		out = append(out, p)
	}
	if f.recent > 0 && len(out) > f.recent {
		out = out[len(out)-f.recent:]
	}
	return out
}

func (s *Server) parseFilter(r *http.Request) (filter, int, string) {
	q := r.URL.Query()
	var f filter

	recentKeys := 0
	for _, key := range []string{"recent", "recent_weeks", "recent_months", "recent_years"} {
		raw, ok := q[key]
		if !ok {
			continue
		}
		recentKeys++
		n, err := strconv.Atoi(raw[0])
		if err != nil || n <= 0 {
			return f, http.StatusBadRequest, MsgBadRecent
		}
		switch key {
		case "recent":
			f.recent = n
		case "recent_weeks":
			f.from = s.now.AddDate(0, 0, -7*n)
		case "recent_months":
			f.from = s.now.AddDate(0, -n, 0)
		case "recent_years":
			f.from = s.now.AddDate(-n, 0, 0)
		}
	}
	hasDates := q.Has("start_date") || q.Has("end_date")
	if recentKeys > 1 || (recentKeys == 1 && hasDates) {
		return f, http.StatusBadRequest, MsgBadRecent
	}

	if v := q.Get("start_date"); v != "" {
		d, err := time.Parse(dateLayout, v)
		if err != nil {
			return f, http.StatusBadRequest, MsgBadDate
		}
		f.from = d
	}
	if v := q.Get("end_date"); v != "" {
		d, err := time.Parse(dateLayout, v)
		if err != nil {
			return f, http.StatusBadRequest, MsgBadDate
		}
		f.to = d
	}

	switch q.Get("order_dir") {
	case "", "asc":
	case "desc":
		f.desc = true
	default:
		return f, http.StatusBadRequest, MsgBadOrder
	}
	return f, http.StatusOK, ""
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(domain.ErrorPayload{
		Message: msg,
		Docs:    "https://www.bankofcanada.ca/valet/docs",
	})
}

func seriesDetail(name string) domain.SeriesDetail {
	if len(name) != 8 || !strings.HasPrefix(name, "FX") {
		return domain.SeriesDetail{Label: name, Description: name}
	}
	from, to := name[2:5], name[5:]
	return domain.SeriesDetail{
		Label:       from + "/" + to,
		Description: fmt.Sprintf("%s to %s daily exchange rate", from, to),
	}
}

// generate builds two years of business-day points oscillating around base.
func generate(now time.Time, base float64) []Point {
	var points []Point
	for d := now.AddDate(-2, 0, 0); !d.After(now); d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		day := float64(d.Unix() / 86400)
		v := base * (1 + 0.02*math.Sin(day/17))
		points = append(points, Point{Date: d, Value: math.Round(v*10000) / 10000})
	}
	return points
}

func sortPoints(points []Point) []Point {
	out := slices.Clone(points)
	slices.SortFunc(out, func(a, b Point) int { return a.Date.Compare(b.Date) })
	return out
}
