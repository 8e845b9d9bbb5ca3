package query

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campusassist/collegebot/internal/cache"
	"github.com/campusassist/collegebot/internal/dataset"
	"github.com/campusassist/collegebot/internal/observability"
)

// ErrRecordNotFound reports an extracted college name with no exact
// record. Extraction validates names against the dataset vocabulary
// first, so in practice this does not occur; the router turns it into a
// user-visible message rather than surfacing it to callers.
var ErrRecordNotFound = errors.New("record not found")

// Response is the answer produced for one query.
type Response struct {
	ID        uuid.UUID
	Question  string
	Intent    Intent
	Entities  Entities
	Text      string
	CacheHit  bool
	LatencyMs int64
}

// RouterConfig holds router configuration.
type RouterConfig struct {
	CacheResults bool
	CacheTTL     time.Duration
}

// Router combines the classified intent and extracted entities into one
// response path. Branch order is fixed; the first satisfied branch wins,
// and a branch whose result set turns out empty still answers with a
// not-found message instead of falling through, because the specificity of
// the matched entities outranks breadth of results.
type Router struct {
	logger     *observability.Logger
	index      *dataset.Index
	extractor  *Extractor
	classifier *IntentClassifier
	formatter  *Formatter
	cache      cache.Client
	config     RouterConfig
}

// NewRouter creates a query router over the given index. The cache client
// may be nil when answer caching is disabled.
func NewRouter(
	logger *observability.Logger,
	ix *dataset.Index,
	extractor *Extractor,
	cacheClient cache.Client,
	cfg RouterConfig,
) *Router {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	return &Router{
		logger:     logger,
		index:      ix,
		extractor:  extractor,
		classifier: NewIntentClassifier(),
		formatter:  NewFormatter(),
		cache:      cacheClient,
		config:     cfg,
	}
}

// Answer runs the full pipeline for one query. Extraction and routing
// failures are absorbed into the response text; the error return is
// reserved for infrastructure faults and is nil for every understood or
// not-understood query.
func (r *Router) Answer(ctx context.Context, question string) (*Response, error) {
	start := time.Now()

	resp := &Response{
		ID:       uuid.New(),
		Question: question,
	}

	if r.config.CacheResults && r.cache != nil {
		key := cache.AnswerKey(question)
		if cached, err := r.cache.Get(ctx, key); err == nil {
			resp.Text = string(cached)
			resp.Intent = r.classifier.Classify(question)
			resp.CacheHit = true
			resp.LatencyMs = time.Since(start).Milliseconds()
			return resp, nil
		}
	}

	ents := r.extractor.Extract(question)
	intent := r.classifier.Classify(question)

	r.logger.Debug().
		Str("question", question).
		Str("intent", string(intent)).
		Int("colleges", len(ents.Colleges)).
		Int("locations", len(ents.Locations)).
		Str("course", ents.Course).
		Msg("Routing query")

	resp.Intent = intent
	resp.Entities = ents
	resp.Text = r.route(intent, ents)
	resp.LatencyMs = time.Since(start).Milliseconds()

	if r.config.CacheResults && r.cache != nil {
		key := cache.AnswerKey(question)
		if err := r.cache.Set(ctx, key, []byte(resp.Text), r.config.CacheTTL); err != nil {
			r.logger.Warn().Err(err).Msg("Failed to cache answer")
		}
	}

	return resp, nil
}

// route selects the response path. The decision list is ordered; exactly
// one branch fires per query.
func (r *Router) route(intent Intent, ents Entities) string {
	switch {
	case len(ents.Colleges) == 2:
		return r.compare(ents.Colleges[0], ents.Colleges[1])

	case ents.Course != "" && intent == IntentDuration:
		recs := r.index.FilterByCourseSubstring(ents.Course)
		return r.formatter.DurationList(ents.Course, recs)

	case len(ents.Colleges) == 1 && len(ents.Locations) > 0:
		return r.collegeInLocations(ents.Colleges[0], ents.Locations, intent)

	case intent == IntentFeeRange && ents.HasFee:
		recs := r.index.FilterByFeeRange(ents.FeeMin, ents.FeeMax)
		return r.formatter.FeeRangeList(ents.FeeMin, ents.FeeMax, recs)

	case len(ents.Colleges) == 1:
		rec, ok := r.index.LookupByName(ents.Colleges[0])
		if !ok {
			return r.formatter.NotFound(ents.Colleges[0])
		}
		return r.formatter.SingleCollege(rec, intent)

	case len(ents.Locations) > 0:
		var blocks []string
		for _, loc := range ents.Locations {
			recs := r.index.FilterByLocation(loc)
			blocks = append(blocks, r.formatter.LocationList(loc, intent, recs))
		}
		return strings.Join(blocks, "\n")

	case ents.Course != "":
		recs := r.index.FilterByCourseSubstring(ents.Course)
		return r.formatter.CourseList(ents.Course, recs)

	default:
		return Fallback
	}
}

// compare renders the side-by-side block for two extracted college names.
// A name that fails the exact lookup yields not-found text.
func (r *Router) compare(first, second string) string {
	a, err := r.lookup(first)
	if err != nil {
		return r.formatter.NotFound(first)
	}
	b, err := r.lookup(second)
	if err != nil {
		return r.formatter.NotFound(second)
	}
	return r.formatter.Comparison(a, b)
}

// collegeInLocations renders one block per extracted location, each holding
// the college's records restricted to that location.
func (r *Router) collegeInLocations(college string, locations []string, intent Intent) string {
	var blocks []string
	for _, loc := range locations {
		var matched []dataset.Record
		for _, rec := range r.index.FilterByLocation(loc) {
			if strings.Contains(strings.ToLower(rec.Name), college) {
				matched = append(matched, rec)
			}
		}
		blocks = append(blocks, r.formatter.CollegeInLocation(college, loc, intent, matched))
	}
	return strings.Join(blocks, "\n")
}

func (r *Router) lookup(name string) (dataset.Record, error) {
	rec, ok := r.index.LookupByName(name)
	if !ok {
		return dataset.Record{}, ErrRecordNotFound
	}
	return rec, nil
}
