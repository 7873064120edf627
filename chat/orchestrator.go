// Package chat is the top-level turn controller: it builds the extraction
// prompt, invokes the language-model collaborator exactly once per turn,
// classifies the response, drives normalization, filtering, and synthesis,
// and maintains the conversation history and the active filtered result.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"go-floodlens/criteria"
	"go-floodlens/dataset"
	"go-floodlens/filtering"
	"go-floodlens/logging"
	"go-floodlens/observability"
	"go-floodlens/summarization"
	"go-floodlens/types"
)

const (
	historyLimit = 10
	promptWindow = 4
)

// ModelClient is the language-model collaborator. The response is expected
// to be a single JSON criteria object with no surrounding prose.
type ModelClient interface {
	ExtractCriteria(ctx context.Context, system, query string) (string, error)
}

// Outcome classifies a completed turn.
type Outcome string

const (
	OutcomeAnswered       Outcome = "answered"
	OutcomeNoMatch        Outcome = "no_match"
	OutcomeClarify        Outcome = "clarification"
	OutcomeMalformed      Outcome = "malformed_response"
	OutcomeTransportError Outcome = "transport_error"
	OutcomeNotReady       Outcome = "not_ready"
)

// User-facing messages, one per outcome branch.
const (
	msgNoCredential = "The language model credential is not configured. Please set OPENAI_API_KEY and restart the service."
	msgNoData       = "The flood dataset hasn't loaded correctly, so I can't answer questions yet."
	msgTransport    = "Sorry, I encountered an issue trying to understand that. Please try again."
	msgRephrase     = "Sorry, I had trouble understanding the specific criteria for filtering. Could you please rephrase your request?"
	msgClarify      = "I couldn't determine specific filters from your request. Could you please provide more details like the year, district, severity level, or month?"
)

var (
	// ErrBusy is returned while a query round trip is already outstanding.
	ErrBusy = errors.New("a query is already being processed")
	// ErrEmptyQuery is returned for blank input.
	ErrEmptyQuery = errors.New("query text is empty")
	// ErrStale is returned when a model response arrives for a superseded turn.
	ErrStale = errors.New("stale model response discarded")
)

// TurnResult is the single outcome of one query turn.
type TurnResult struct {
	ID           string
	Outcome      Outcome
	Message      string
	Notification string
	Records      []types.Record
	ClearedView  bool
	Speak        bool
}

// Orchestrator drives one query turn at a time. Conversation history and the
// active filtered result are single-writer state owned by this type.
type Orchestrator struct {
	model   ModelClient
	store   *dataset.Store
	timeout time.Duration
	metrics *observability.Metrics

	mu      sync.Mutex
	busy    bool
	seq     uint64
	history *History
	active  []types.Record
}

// New builds an orchestrator. model may be nil when no credential is
// configured; queries then resolve to a not-ready outcome without a model
// call.
func New(model ModelClient, store *dataset.Store, timeout time.Duration, metrics *observability.Metrics) *Orchestrator {
	return &Orchestrator{
		model:   model,
		store:   store,
		timeout: timeout,
		metrics: metrics,
		history: NewHistory(historyLimit),
	}
}

// HandleQuery runs one full turn for the given user text. Exactly one
// outcome message is produced per invocation; the busy token is released on
// every exit path.
func (o *Orchestrator) HandleQuery(ctx context.Context, query string, voice bool) (TurnResult, error) {
	log := logging.GetLogger()

	query = strings.TrimSpace(query)
	if query == "" {
		return TurnResult{}, ErrEmptyQuery
	}

	// Preconditions: no model call, no history mutation.
	if o.model == nil {
		return o.notReady(msgNoCredential, voice), nil
	}
	if o.store == nil || o.store.Len() == 0 {
		return o.notReady(msgNoData, voice), nil
	}

	o.mu.Lock()
	if o.busy {
		o.mu.Unlock()
		return TurnResult{}, ErrBusy
	}
	o.busy = true
	o.seq++
	seq := o.seq
	o.history.Append(types.RoleUser, query)
	window := o.history.Window(promptWindow)
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		o.busy = false
		o.mu.Unlock()
	}()

	system := buildSystemInstruction(window)

	callCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	start := time.Now()
	raw, err := o.model.ExtractCriteria(callCtx, system, query)
	o.metrics.ModelLatency.Observe(time.Since(start).Seconds())

	// A response for a superseded turn must not overwrite newer state.
	o.mu.Lock()
	stale := seq != o.seq
	o.mu.Unlock()
	if stale {
		log.WithField("seq", seq).Warn("discarding stale model response")
		return TurnResult{}, ErrStale
	}

	if err != nil {
		log.WithError(err).Error("criteria extraction failed")
		// Prior visualization is left untouched on transport failure.
		return o.finish(OutcomeTransportError, msgTransport, "", nil, false, voice), nil
	}

	crit, err := criteria.Parse(raw)
	if err != nil {
		log.WithError(err).WithField("raw", raw).Warn("model response was not a clean JSON object")
		return o.finish(OutcomeMalformed, msgRephrase, "", nil, true, voice), nil
	}

	if crit.Empty() {
		return o.finish(OutcomeClarify, msgClarify, "", nil, true, voice), nil
	}

	preds := criteria.Normalize(crit)
	matched := filtering.Apply(preds, o.store.Records())
	summary := criteria.Summary(crit)

	if len(matched) == 0 {
		msg := fmt.Sprintf("I understood the criteria (%s), but found no matching data points in the records.", summary)
		return o.finish(OutcomeNoMatch, msg, "", nil, true, voice), nil
	}

	o.metrics.MatchedRecords.Observe(float64(len(matched)))

	contextual := summarization.Synthesize(query, matched, crit)
	notification := fmt.Sprintf("Showing %d location(s) on the map matching your criteria for %s.", len(matched), summary)
	message := contextual + "\n\n" + notification

	return o.finish(OutcomeAnswered, message, notification, matched, false, voice), nil
}

// finish appends the outcome as a model turn, updates the active result, and
// records metrics. clearView empties the active result; a non-nil matched
// set replaces it; otherwise (transport error) it is left alone.
func (o *Orchestrator) finish(outcome Outcome, message, notification string, matched []types.Record, clearView, voice bool) TurnResult {
	o.mu.Lock()
	o.history.Append(types.RoleModel, message)
	if clearView {
		o.active = nil
	} else if matched != nil {
		o.active = matched
	}
	o.mu.Unlock()

	o.metrics.QueriesTotal.WithLabelValues(string(outcome)).Inc()

	return TurnResult{
		ID:           uuid.NewString(),
		Outcome:      outcome,
		Message:      message,
		Notification: notification,
		Records:      matched,
		ClearedView:  clearView,
		Speak:        voice,
	}
}

func (o *Orchestrator) notReady(message string, voice bool) TurnResult {
	o.metrics.QueriesTotal.WithLabelValues(string(OutcomeNotReady)).Inc()
	return TurnResult{
		ID:      uuid.NewString(),
		Outcome: OutcomeNotReady,
		Message: message,
		Speak:   voice,
	}
}

// Active returns a copy of the currently displayed filtered result.
func (o *Orchestrator) Active() []types.Record {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]types.Record, len(o.active))
	copy(out, o.active)
	return out
}

// HistorySnapshot returns a copy of the retained conversation turns.
func (o *Orchestrator) HistorySnapshot() []types.Turn {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.history.All()
}
