package tui

// ActionClass groups requests whose responses replace each other
type ActionClass int

const (
	ClassList   ActionClass = iota // listing pages
	ClassDetail                    // search, row detail and random
	classCount
)

func (c ActionClass) String() string {
	switch c {
	case ClassList:
		return "list"
	case ClassDetail:
		return "detail"
	default:
		return "unknown"
	}
}

// Ticket tags a request with its position in its class
type Ticket struct {
	Class ActionClass
	Seq   uint64
}

// Sequencer issues tickets and tells whether a response is still wanted.
// Only the most recent ticket of each class is current; responses to
// older tickets are stale and must be dropped.
type Sequencer struct {
	latest [classCount]uint64
}

// Next issues a new ticket for class, superseding all earlier ones
func (s *Sequencer) Next(class ActionClass) Ticket {
	s.latest[class]++
	return Ticket{Class: class, Seq: s.latest[class]}
}

// IsCurrent reports whether t is the latest ticket of its class
func (s Sequencer) IsCurrent(t Ticket) bool {
	if t.Class < 0 || t.Class >= classCount || t.Seq == 0 {
		return false
	}
	return s.latest[t.Class] == t.Seq
}
