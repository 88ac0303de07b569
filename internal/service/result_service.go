package service

import (
	"context"
	"log"

	"asdscreen/internal/handoff"
	"asdscreen/internal/model"
	"asdscreen/internal/repository"
)

// ResultService runs the scoring pipeline for a completed wizard: read both
// steps from the handoff store, normalize, submit once, archive.
type ResultService struct {
	store       handoff.Store
	predictor   Predictor
	records     repository.RecordRepository
	broadcaster Broadcaster
}

// NewResultService creates a new result service. records may be nil when no
// archive is configured.
func NewResultService(store handoff.Store, predictor Predictor, records repository.RecordRepository) *ResultService {
	return &ResultService{
		store:     store,
		predictor: predictor,
		records:   records,
	}
}

// SetBroadcaster injects the progress broadcaster.
func (s *ResultService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// Run produces the outcome for one visit to the result step. If either step
// record is absent the predictor is never invoked and the outcome is
// missing-input. Re-running re-reads the store and re-submits; there is no
// deduplication.
func (s *ResultService) Run(ctx context.Context, sessionID string) (model.Outcome, error) {
	behavioral, ok, err := s.store.Get(ctx, sessionID, handoff.StepBehavioral)
	if err != nil {
		return model.Outcome{}, err
	}
	if !ok {
		return s.finish(ctx, sessionID, nil, model.MissingInputOutcome()), nil
	}

	personal, ok, err := s.store.Get(ctx, sessionID, handoff.StepPersonal)
	if err != nil {
		return model.Outcome{}, err
	}
	if !ok {
		return s.finish(ctx, sessionID, nil, model.MissingInputOutcome()), nil
	}

	payload := Normalize(behavioral, personal)

	if s.broadcaster != nil {
		s.broadcaster.NotifyResultPending(sessionID)
	}

	outcome := s.predictor.Submit(ctx, &payload)
	return s.finish(ctx, sessionID, &payload, outcome), nil
}

// finish archives the run best-effort and broadcasts the outcome. Archive
// failures are logged for operators, never surfaced to the user.
func (s *ResultService) finish(ctx context.Context, sessionID string, payload *model.NormalizedPayload, outcome model.Outcome) model.Outcome {
	if s.records != nil && payload != nil {
		record := &model.ScreeningRecord{
			SessionID:   sessionID,
			Payload:     *payload,
			Kind:        outcome.Kind,
			Prediction:  outcome.Prediction,
			Probability: outcome.Probability,
		}
		if err := s.records.Create(ctx, record); err != nil {
			log.Printf("[Result] ERROR: failed to archive record for session %s: %v", sessionID, err)
		}
	}

	if s.broadcaster != nil {
		s.broadcaster.NotifyOutcome(sessionID, outcome)
	}
	return outcome
}
