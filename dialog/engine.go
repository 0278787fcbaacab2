package dialog

import (
	"strings"
	"time"

	"wep_bot/catalog"
	"wep_bot/session"
)

// Recommender produces the final scheme list for a completed questionnaire.
type Recommender interface {
	Recommend(a session.Answers, schemes []catalog.Scheme) []catalog.Scheme
}

// Engine is the questionnaire state machine. It holds no per-user state.
type Engine struct {
	catalog     *catalog.Catalog
	recommender Recommender
	now         func() time.Time
}

func NewEngine(c *catalog.Catalog, r Recommender) *Engine {
	return &Engine{
		catalog:     c,
		recommender: r,
		now:         time.Now,
	}
}

// Start opens a session for a user seen for the first time.
func (e *Engine) Start(userID string) (session.Session, string) {
	return session.New(userID, e.now()), PromptWelcome
}

// Advance applies one message to s and returns the updated session and the reply.
// Every step accepts every input, so Advance never fails.
func (e *Engine) Advance(s session.Session, input string) (session.Session, string) {
	s, reply, _ := e.advance(s, input)
	return s, reply
}

// advance is Advance that also hands back the schemes recommended when the
// questionnaire completes on this message.
func (e *Engine) advance(s session.Session, input string) (session.Session, string, []catalog.Scheme) {
	var (
		reply       string
		recommended []catalog.Scheme
	)

	switch s.Step {
	case session.StepStart:
		if !isAffirmative(input) {
			return s, PromptNotReady, nil
		}
		reply = PromptSector
	case session.StepSector:
		s.Answers.Sector = input
		reply = PromptAge
	case session.StepAge:
		s.Answers.Age = input
		reply = PromptRegistered
	case session.StepRegistered:
		s.Answers.Registered = input
		reply = PromptAssistance
	case session.StepAssistance:
		s.Answers.Assistance = input
		recommended = e.Recommend(s.Answers)
		reply = RenderRecommendations(recommended)
	default:
		return s, PromptClosing, nil
	}

	s.Step = s.Step.Next()
	s.UpdatedAt = e.now()
	return s, reply, recommended
}

// Recommend runs the recommender over the catalog.
func (e *Engine) Recommend(a session.Answers) []catalog.Scheme {
	return e.recommender.Recommend(a, e.catalog.Schemes())
}

func isAffirmative(input string) bool {
	input = strings.TrimSpace(input)
	for _, t := range startTokens {
		if strings.EqualFold(input, t) {
			return true
		}
	}
	return false
}
