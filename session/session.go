package session

import (
	"context"
	"time"
)

// Step is the position of a user inside the questionnaire.
type Step string

const (
	StepStart      Step = "start"
	StepSector     Step = "sector"
	StepAge        Step = "age"
	StepRegistered Step = "registered"
	StepAssistance Step = "assistance"
	StepDone       Step = "done"
)

var order = []Step{StepStart, StepSector, StepAge, StepRegistered, StepAssistance, StepDone}

// Index returns the position of s in the questionnaire, or -1 for an unknown step.
func (s Step) Index() int {
	for i, st := range order {
		if st == s {
			return i
		}
	}
	return -1
}

// Next returns the step that follows s. Done is terminal and maps to itself.
func (s Step) Next() Step {
	i := s.Index()
	if i < 0 || i == len(order)-1 {
		return s
	}
	return order[i+1]
}

// Answers holds the raw text a user typed at each question.
type Answers struct {
	Sector     string `json:"sector,omitempty"`
	Age        string `json:"age,omitempty"`
	Registered string `json:"registered,omitempty"`
	Assistance string `json:"assistance,omitempty"`
}

// Session is the dialogue state of one user.
type Session struct {
	UserID    string    `json:"user_id"`
	Step      Step      `json:"step"`
	Answers   Answers   `json:"answers"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New returns a session at the first step.
func New(userID string, now time.Time) Session {
	return Session{
		UserID:    userID,
		Step:      StepStart,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Done reports whether the questionnaire is finished.
func (s Session) Done() bool {
	return s.Step == StepDone
}

// Store keeps sessions keyed by user id.
type Store interface {
	Get(ctx context.Context, userID string) (Session, bool, error)
	Save(ctx context.Context, s Session) error
	Count(ctx context.Context) (int, error)
}
