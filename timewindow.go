// Package timewindow evaluates whether an instant falls inside an
// occurrence of a recurring time window: a base interval [Start, End) that
// repeats daily, weekly, monthly, or yearly, bounded by an occurrence count
// or an end date. It is typically used to drive time-based activation of a
// feature; the caller supplies an already-parsed spec and a query instant
// and gets back a boolean.
package timewindow

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/samber/mo"

	"timewindow/recurrence"
)

// Spec describes a time window: a base interval [Start, End) plus an
// optional recurrence. Start and End are required; a nil Recurrence means
// the window happens exactly once.
type Spec struct {
	Start      *time.Time
	End        *time.Time
	Recurrence *recurrence.Spec
}

// Validate compiles the spec eagerly so callers can reject bad
// configuration at load time rather than on the first match query. The
// returned error, if any, is a *recurrence.SpecError.
func (s *Spec) Validate() error {
	_, err := recurrence.Compile(s.Start, s.End, s.Recurrence)
	return err
}

// Compile validates the spec and returns its immutable compiled form for
// direct use (matching, RRULE/iCalendar export).
func (s *Spec) Compile() (*recurrence.Compiled, error) {
	return recurrence.Compile(s.Start, s.End, s.Recurrence)
}

// contentHash fingerprints every field that affects validation, so a
// mutated spec lands on a different cache entry and is recompiled.
func (s *Spec) contentHash() string {
	h := sha256.New()
	writeString := func(v string) {
		io.WriteString(h, v)
		h.Write([]byte{0})
	}
	writeInt := func(v int) { writeString(strconv.Itoa(v)) }
	writeTime := func(t *time.Time) {
		if t == nil {
			writeString("")
			return
		}
		writeString(t.Format(time.RFC3339Nano))
	}

	writeTime(s.Start)
	writeTime(s.End)
	if s.Recurrence == nil {
		writeString("norecur")
		return hex.EncodeToString(h.Sum(nil))
	}
	if p := s.Recurrence.Pattern; p != nil {
		writeString("pattern")
		writeString(string(p.Type))
		writeInt(p.Interval)
		writeInt(len(p.DaysOfWeek))
		for _, d := range p.DaysOfWeek {
			writeString(d)
		}
		writeString(p.FirstDayOfWeek)
		writeInt(p.DayOfMonth)
		writeInt(p.Month)
		writeString(string(p.Index))
	} else {
		writeString("nopattern")
	}
	if r := s.Recurrence.Range; r != nil {
		writeString("range")
		writeString(string(r.Type))
		writeInt(r.NumberOfOccurrences)
		writeTime(r.EndDate)
		writeString(r.RecurrenceTimeZone)
	} else {
		writeString("norange")
	}
	return hex.EncodeToString(h.Sum(nil))
}

// DefaultMaxCachedSpecs bounds the validation cache of a Matcher unless
// configured otherwise.
const DefaultMaxCachedSpecs = 1000

// MatcherConfig holds configuration options for a Matcher.
type MatcherConfig struct {
	// Logger receives debug events for cache activity and rejected specs.
	// Nil discards them.
	Logger *slog.Logger

	// MaxCachedSpecs bounds the validation cache. Zero or negative means
	// DefaultMaxCachedSpecs.
	MaxCachedSpecs int
}

// Matcher evaluates specs against instants, validating each spec once and
// serving later queries from an immutable cached compilation. It is safe
// for concurrent use from many goroutines.
type Matcher struct {
	cache  *specCache
	logger *slog.Logger
}

// NewMatcher creates a Matcher with the given configuration.
func NewMatcher(cfg MatcherConfig) *Matcher {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.MaxCachedSpecs <= 0 {
		cfg.MaxCachedSpecs = DefaultMaxCachedSpecs
	}
	return &Matcher{
		cache:  newSpecCache(cfg.MaxCachedSpecs),
		logger: cfg.Logger,
	}
}

// Match reports whether t falls inside an occurrence of the window
// described by spec. The spec is validated on first use; validation errors
// are returned on every call until the spec content changes. Matching an
// already-valid spec cannot fail.
func (m *Matcher) Match(spec *Spec, t time.Time) (bool, error) {
	if spec == nil {
		spec = &Spec{}
	}

	key := spec.contentHash()
	result, ok := m.cache.get(key)
	if !ok {
		result = mo.TupleToResult(recurrence.Compile(spec.Start, spec.End, spec.Recurrence))
		m.cache.put(key, result)
		if compiled, err := result.Get(); err != nil {
			m.logger.Debug("time window spec rejected", "error", err)
		} else {
			m.logger.Debug("time window spec compiled",
				"start", compiled.Start(),
				"duration", compiled.Duration(),
				"recurs", compiled.Recurs())
		}
	}

	compiled, err := result.Get()
	if err != nil {
		return false, err
	}
	return compiled.Match(t), nil
}

// CacheStats reports the matcher's validation cache activity.
func (m *Matcher) CacheStats() CacheStats {
	return m.cache.stats()
}

var defaultMatcher = NewMatcher(MatcherConfig{})

// Match evaluates spec against t using a shared default Matcher.
func Match(spec *Spec, t time.Time) (bool, error) {
	return defaultMatcher.Match(spec, t)
}
