package challenge

import "time"

// DefaultStatusTTL is how long a status message stays visible.
const DefaultStatusTTL = 4000 * time.Millisecond

// Kind classifies a status message.
type Kind int

const (
	KindNone Kind = iota
	KindSuccess
	KindInfo
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindInfo:
		return "info"
	case KindError:
		return "error"
	default:
		return ""
	}
}

// Status is the transient message shown after an operation.
type Status struct {
	Message string
	Kind    Kind
}

// IsZero reports whether no message is set.
func (s Status) IsZero() bool { return s.Message == "" }

// StatusBoard holds the current status. Every Set starts a new generation;
// Clear only acts on the generation it was scheduled for, so a stale clear
// never erases a newer message.
type StatusBoard struct {
	now     func() time.Time
	ttl     time.Duration
	current Status
	expires time.Time
	gen     uint64
}

// NewStatusBoard returns a board whose messages expire after ttl.
// A nil clock means time.Now; a non-positive ttl means DefaultStatusTTL.
func NewStatusBoard(ttl time.Duration, now func() time.Time) *StatusBoard {
	if now == nil {
		now = time.Now
	}
	if ttl <= 0 {
		ttl = DefaultStatusTTL
	}
	return &StatusBoard{now: now, ttl: ttl}
}

// TTL is the display duration of each message.
func (b *StatusBoard) TTL() time.Duration { return b.ttl }

// Set replaces the current message and returns its generation.
func (b *StatusBoard) Set(message string, kind Kind) uint64 {
	b.gen++
	b.current = Status{Message: message, Kind: kind}
	b.expires = b.now().Add(b.ttl)
	return b.gen
}

// Generation is the generation of the latest Set.
func (b *StatusBoard) Generation() uint64 { return b.gen }

// Current returns the message unless it has expired.
func (b *StatusBoard) Current() Status {
	if b.current.IsZero() || !b.now().Before(b.expires) {
		return Status{}
	}
	return b.current
}

// Clear drops the message if gen is still the current generation.
func (b *StatusBoard) Clear(gen uint64) bool {
	if gen != b.gen || b.current.IsZero() {
		return false
	}
	b.current = Status{}
	return true
}
