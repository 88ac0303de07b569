package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"asdscreen/internal/handoff"
	"asdscreen/internal/model"
)

// Broadcaster pushes wizard progress to connected observers. Implemented by
// the ws hub; optional on every service.
type Broadcaster interface {
	NotifyStepCompleted(sessionID, step string)
	NotifyResultPending(sessionID string)
	NotifyOutcome(sessionID string, outcome model.Outcome)
}

// IntakeService captures per-step form state, gates it through validation and
// hands completed steps to the durable store.
type IntakeService struct {
	store       handoff.Store
	broadcaster Broadcaster
}

// NewIntakeService creates a new intake service.
func NewIntakeService(store handoff.Store) *IntakeService {
	return &IntakeService{store: store}
}

// SetBroadcaster injects the progress broadcaster.
func (s *IntakeService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// NewSession issues a fresh wizard session ID.
func (s *IntakeService) NewSession() string {
	return uuid.New().String()
}

// SaveBehavioral validates the behavioral step and, on pass, files it under
// the behavioral handoff key. A failed validation writes nothing.
func (s *IntakeService) SaveBehavioral(ctx context.Context, sessionID string, answers map[string]string) (ValidationResult, error) {
	form := model.Rekey(answers, model.BehavioralFields)
	return s.saveStep(ctx, sessionID, handoff.StepBehavioral, form, model.BehavioralFields, MsgAnswerAllQuestions)
}

// SavePersonal validates the personal-info step and, on pass, files it under
// the personal handoff key.
func (s *IntakeService) SavePersonal(ctx context.Context, sessionID string, answers map[string]string) (ValidationResult, error) {
	form := model.Rekey(answers, model.PersonalFields)
	return s.saveStep(ctx, sessionID, handoff.StepPersonal, form, model.PersonalFields, MsgFillAllFields)
}

func (s *IntakeService) saveStep(ctx context.Context, sessionID, step string, form model.StepForm, fields []string, failMessage string) (ValidationResult, error) {
	result := ValidateForm(form, fields, failMessage)
	if !result.Valid {
		return result, nil
	}

	// Overwrites any earlier submission of the same step.
	if err := s.store.Put(ctx, sessionID, step, form); err != nil {
		return result, err
	}
	log.Printf("[Intake] session %s completed step %s", sessionID, step)

	if s.broadcaster != nil {
		s.broadcaster.NotifyStepCompleted(sessionID, step)
	}
	return result, nil
}

// GetStep returns a previously completed step, reporting absence distinctly
// from an empty form.
func (s *IntakeService) GetStep(ctx context.Context, sessionID, step string) (model.StepForm, bool, error) {
	return s.store.Get(ctx, sessionID, step)
}
