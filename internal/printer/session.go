package printer

import "fmt"

// SessionState tracks one buffered print transaction:
// idle -> buffering -> (committed | aborted). Committed and aborted are
// terminal; the next job opens a fresh session.
type SessionState int

const (
	SessionIdle SessionState = iota
	SessionBuffering
	SessionCommitted
	SessionAborted
)

func (s SessionState) String() string {
	switch s {
	case SessionIdle:
		return "idle"
	case SessionBuffering:
		return "buffering"
	case SessionCommitted:
		return "committed"
	case SessionAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Session owns the state of one buffered transaction and an ordered log of
// the instructions emitted under it, kept for diagnostic replay.
type Session struct {
	state SessionState
	log   []Instruction
}

func NewSession() *Session {
	return &Session{state: SessionIdle}
}

func (s *Session) State() SessionState {
	return s.state
}

// Log returns the instructions emitted so far, in execution order.
func (s *Session) Log() []Instruction {
	return s.log
}

func (s *Session) Begin() error {
	if s.state != SessionIdle {
		return fmt.Errorf("cannot begin session in state %s", s.state)
	}
	s.state = SessionBuffering
	return nil
}

// Record appends a successfully emitted instruction to the replay log.
func (s *Session) Record(in Instruction) {
	s.log = append(s.log, in)
}

func (s *Session) Commit() error {
	if s.state != SessionBuffering {
		return fmt.Errorf("cannot commit session in state %s", s.state)
	}
	s.state = SessionCommitted
	return nil
}

func (s *Session) Abort() error {
	if s.state != SessionBuffering {
		return fmt.Errorf("cannot abort session in state %s", s.state)
	}
	s.state = SessionAborted
	return nil
}
