// Package tracker holds the in-memory state of one grade-entry session:
// the selected term, the pending grade text, the recorded terms and the
// outcome of the most recent GPA computation.
package tracker

import (
	"errors"
	"strings"
	"sync"

	"github.com/alexanderramin/termtracker/internal/domain"
)

// GenericComputeError is shown when a computation fails without a message
// from the scoring service.
const GenericComputeError = "An error occurred while calculating GPA."

// ErrUnknownTerm is returned by SelectTerm for labels outside the catalog.
var ErrUnknownTerm = errors.New("unknown term")

// AddResult reports what AddGrade did with the pending input.
type AddResult int

const (
	Added AddResult = iota
	AddedReplacedOffTerm
	RejectedEmpty
	RejectedUnknownGrade
)

// Accepted reports whether the grade was recorded.
func (r AddResult) Accepted() bool {
	return r == Added || r == AddedReplacedOffTerm
}

func (r AddResult) String() string {
	switch r {
	case Added:
		return "added"
	case AddedReplacedOffTerm:
		return "added (off-term cleared)"
	case RejectedEmpty:
		return "rejected: empty grade"
	case RejectedUnknownGrade:
		return "rejected: unknown grade"
	default:
		return "unknown"
	}
}

// State is the computation outcome state.
type State int

const (
	Idle State = iota
	Pending
	Succeeded
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Pending:
		return "pending"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Ticket identifies one in-flight computation.
type Ticket struct {
	Generation uint64
	Terms      domain.TermRecords
}

// Tracker is safe for concurrent use.
type Tracker struct {
	mu sync.Mutex

	selected string
	pending  string
	records  domain.TermRecords

	state      State
	result     *domain.GPASummary // last successful summary; survives a later failure
	errMessage string
	generation uint64
	inFlight   int
}

// New returns a tracker with the default selection and no records.
func New() *Tracker {
	return &Tracker{
		selected: domain.DefaultTerm(),
		records:  domain.TermRecords{},
	}
}

// SelectTerm changes the active term.
func (t *Tracker) SelectTerm(label string) error {
	if !domain.ValidTerms[label] {
		return ErrUnknownTerm
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.selected = label
	return nil
}

// SetPendingGrade stores text as the pending grade input. It is only
// validated when AddGrade runs.
func (t *Tracker) SetPendingGrade(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.pending = text
}

// AddGrade appends the pending grade to the selected term. Rejections
// leave every piece of state untouched, pending input included.
func (t *Tracker) AddGrade() AddResult {
	t.mu.Lock()
	defer t.mu.Unlock()

	token := strings.TrimSpace(t.pending)
	if token == "" {
		return RejectedEmpty
	}
	g := domain.Grade(token)
	if !domain.ValidGrades[g] {
		return RejectedUnknownGrade
	}

	result := Added
	current, ok := t.records[t.selected]
	if ok && current.IsOffTerm() {
		result = AddedReplacedOffTerm
	}
	if ok {
		t.records[t.selected] = current.Append(g)
	} else {
		t.records[t.selected] = domain.Graded(g)
	}
	t.pending = ""
	return result
}

// MarkOffTerm replaces the selected term's value with the off-term marker.
func (t *Tracker) MarkOffTerm() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.records[t.selected] = domain.OffTerm()
}

// ClearTerm removes the selected term. Absent terms are a no-op.
func (t *Tracker) ClearTerm() {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.records, t.selected)
}

// ClearAll drops every record along with the result and error. Selection
// and pending input are kept.
func (t *Tracker) ClearAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.records = domain.TermRecords{}
	t.result = nil
	t.errMessage = ""
	if t.inFlight > 0 {
		t.state = Pending
	} else {
		t.state = Idle
	}
}

// BeginCompute snapshots the records for submission and marks the tracker
// pending. Every call supersedes the tickets issued before it.
func (t *Tracker) BeginCompute() Ticket {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.generation++
	t.inFlight++
	t.state = Pending
	return Ticket{Generation: t.generation, Terms: t.records.Clone()}
}

// RemoteMessager is implemented by errors that carry a human-readable
// message from the scoring service.
type RemoteMessager interface {
	RemoteMessage() string
}

// ErrorMessage returns the message the user sees for a failed computation:
// the service's own message when err carries one, the generic text otherwise.
func ErrorMessage(err error) string {
	var rm RemoteMessager
	if errors.As(err, &rm) && rm.RemoteMessage() != "" {
		return rm.RemoteMessage()
	}
	return GenericComputeError
}

// CompleteCompute applies the outcome of a ticket's computation. A nil err
// stores summary as the result and clears the error. A non-nil err sets the
// error message and leaves the prior result in place. Outcomes for
// superseded tickets are discarded and CompleteCompute returns false.
func (t *Tracker) CompleteCompute(ticket Ticket, summary *domain.GPASummary, err error) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.inFlight > 0 {
		t.inFlight--
	}
	if ticket.Generation != t.generation {
		return false
	}

	if err == nil {
		t.result = summary
		t.errMessage = ""
		t.state = Succeeded
		return true
	}

	t.errMessage = ErrorMessage(err)
	t.state = Failed
	return true
}

func (t *Tracker) Selected() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.selected
}

func (t *Tracker) Pending() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending
}

// Records returns a copy of the recorded terms.
func (t *Tracker) Records() domain.TermRecords {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.records.Clone()
}

// Term returns the value recorded for label, if any.
func (t *Tracker) Term(label string) (domain.TermValue, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.records[label]
	return v, ok
}

// Result returns the last successful summary, or nil.
func (t *Tracker) Result() *domain.GPASummary {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.result
}

// Error returns the current error message, or "".
func (t *Tracker) Error() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.errMessage
}

func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// InFlight reports whether any computation is still awaiting a response.
func (t *Tracker) InFlight() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.inFlight > 0
}
