package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asdscreen/internal/handoff"
	"asdscreen/internal/model"
)

// stubPredictor records submissions and returns a fixed outcome.
type stubPredictor struct {
	calls    int
	payloads []model.NormalizedPayload
	outcome  model.Outcome
}

func (s *stubPredictor) Submit(_ context.Context, payload *model.NormalizedPayload) model.Outcome {
	s.calls++
	s.payloads = append(s.payloads, *payload)
	return s.outcome
}

// stubRecords captures archived screening records.
type stubRecords struct {
	created []*model.ScreeningRecord
}

func (s *stubRecords) Create(_ context.Context, record *model.ScreeningRecord) error {
	s.created = append(s.created, record)
	return nil
}

func (s *stubRecords) GetBySessionID(context.Context, string) ([]*model.ScreeningRecord, error) {
	return nil, nil
}

func (s *stubRecords) List(context.Context, int64) ([]*model.ScreeningRecord, error) {
	return nil, nil
}

func completeWizard(t *testing.T, intake *IntakeService, sessionID string) {
	t.Helper()
	ctx := context.Background()

	result, err := intake.SaveBehavioral(ctx, sessionID, fullBehavioral("1"))
	require.NoError(t, err)
	require.True(t, result.Valid)

	result, err = intake.SavePersonal(ctx, sessionID, samplePersonal())
	require.NoError(t, err)
	require.True(t, result.Valid)
}

func TestResultService_Run(t *testing.T) {
	store := handoff.NewMemoryStore()
	intake := NewIntakeService(store)
	predictor := &stubPredictor{outcome: model.SuccessOutcome("No", "12%")}
	records := &stubRecords{}
	resultSvc := NewResultService(store, predictor, records)

	sessionID := intake.NewSession()
	completeWizard(t, intake, sessionID)

	outcome, err := resultSvc.Run(context.Background(), sessionID)
	require.NoError(t, err)
	require.Equal(t, model.OutcomeSuccess, outcome.Kind)
	assert.Equal(t, "No (12%)", outcome.Display())

	require.Equal(t, 1, predictor.calls)
	assert.Equal(t, 25.0, predictor.payloads[0].Age)
	assert.True(t, predictor.payloads[0].Jaundice)

	require.Len(t, records.created, 1)
	assert.Equal(t, sessionID, records.created[0].SessionID)
	assert.Equal(t, model.OutcomeSuccess, records.created[0].Kind)
	assert.Equal(t, "No", records.created[0].Prediction)
}

func TestResultService_MissingPersonalStep(t *testing.T) {
	store := handoff.NewMemoryStore()
	intake := NewIntakeService(store)
	predictor := &stubPredictor{outcome: model.SuccessOutcome("No", "12%")}
	resultSvc := NewResultService(store, predictor, nil)

	sessionID := intake.NewSession()

	// Only the behavioral step is completed.
	result, err := intake.SaveBehavioral(context.Background(), sessionID, fullBehavioral("1"))
	require.NoError(t, err)
	require.True(t, result.Valid)

	outcome, err := resultSvc.Run(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeMissingInput, outcome.Kind)
	assert.Equal(t, model.MsgMissingInput, outcome.Message)
	assert.Equal(t, 0, predictor.calls, "predictor must never be invoked on missing input")
}

func TestResultService_MissingBothSteps(t *testing.T) {
	store := handoff.NewMemoryStore()
	predictor := &stubPredictor{}
	resultSvc := NewResultService(store, predictor, nil)

	outcome, err := resultSvc.Run(context.Background(), "never-started")
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeMissingInput, outcome.Kind)
	assert.Equal(t, 0, predictor.calls)
}

func TestResultService_RerunResubmits(t *testing.T) {
	store := handoff.NewMemoryStore()
	intake := NewIntakeService(store)
	predictor := &stubPredictor{outcome: model.SuccessOutcome("No", "12%")}
	resultSvc := NewResultService(store, predictor, nil)

	sessionID := intake.NewSession()
	completeWizard(t, intake, sessionID)

	_, err := resultSvc.Run(context.Background(), sessionID)
	require.NoError(t, err)
	_, err = resultSvc.Run(context.Background(), sessionID)
	require.NoError(t, err)

	// No deduplication: every visit to the result step submits again.
	assert.Equal(t, 2, predictor.calls)
}

func TestResultService_ServiceErrorArchived(t *testing.T) {
	store := handoff.NewMemoryStore()
	intake := NewIntakeService(store)
	predictor := &stubPredictor{outcome: model.ServiceErrorOutcome()}
	records := &stubRecords{}
	resultSvc := NewResultService(store, predictor, records)

	sessionID := intake.NewSession()
	completeWizard(t, intake, sessionID)

	outcome, err := resultSvc.Run(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, model.OutcomeServiceError, outcome.Kind)

	require.Len(t, records.created, 1)
	assert.Equal(t, model.OutcomeServiceError, records.created[0].Kind)
	assert.Empty(t, records.created[0].Prediction)
}

func TestIntakeService_FailedValidationWritesNothing(t *testing.T) {
	store := handoff.NewMemoryStore()
	intake := NewIntakeService(store)
	sessionID := intake.NewSession()

	answers := fullBehavioral("1")
	answers["A7_Score"] = ""

	result, err := intake.SaveBehavioral(context.Background(), sessionID, answers)
	require.NoError(t, err)
	require.False(t, result.Valid)
	assert.Equal(t, []string{"A7_Score"}, result.MissingFields)

	_, ok, err := store.Get(context.Background(), sessionID, handoff.StepBehavioral)
	require.NoError(t, err)
	assert.False(t, ok, "failed step must not reach the handoff store")
}

func TestIntakeService_ResubmissionOverwrites(t *testing.T) {
	store := handoff.NewMemoryStore()
	intake := NewIntakeService(store)
	sessionID := intake.NewSession()
	ctx := context.Background()

	_, err := intake.SaveBehavioral(ctx, sessionID, fullBehavioral("1"))
	require.NoError(t, err)
	_, err = intake.SaveBehavioral(ctx, sessionID, fullBehavioral("0"))
	require.NoError(t, err)

	form, ok, err := intake.GetStep(ctx, sessionID, handoff.StepBehavioral)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "0", form["A1_Score"])
}

func TestIntakeService_DropsUnknownKeys(t *testing.T) {
	store := handoff.NewMemoryStore()
	intake := NewIntakeService(store)
	sessionID := intake.NewSession()

	answers := map[string]string(fullBehavioral("1"))
	answers["extra"] = "ignored"

	result, err := intake.SaveBehavioral(context.Background(), sessionID, answers)
	require.NoError(t, err)
	require.True(t, result.Valid)

	form, ok, err := intake.GetStep(context.Background(), sessionID, handoff.StepBehavioral)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Len(t, form, len(model.BehavioralFields))
	assert.NotContains(t, form, "extra")
}
