package model

import "time"

// ScreeningRecord is the archived result of one completed wizard run.
type ScreeningRecord struct {
	ID          string            `json:"id" bson:"_id,omitempty"`
	SessionID   string            `json:"sessionId" bson:"sessionId"`
	Payload     NormalizedPayload `json:"payload" bson:"payload"`
	Kind        OutcomeKind       `json:"kind" bson:"kind"`
	Prediction  string            `json:"prediction,omitempty" bson:"prediction,omitempty"`
	Probability string            `json:"probability,omitempty" bson:"probability,omitempty"`
	CreatedAt   time.Time         `json:"createdAt" bson:"createdAt"`
}
