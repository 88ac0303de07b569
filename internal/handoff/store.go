// Package handoff persists completed step forms between wizard pages. The
// store is keyed by session and step; a record written after a step's
// validation passes stays readable for the rest of that session, including
// across a full navigation.
package handoff

import (
	"context"

	"asdscreen/internal/model"
)

// Step keys. These are the logical names each completed step is filed under.
const (
	StepBehavioral = "behavioralFormData"
	StepPersonal   = "personalInfo"
)

// Store is the durable handoff store. Get reports ok=false when the key was
// never written; callers must treat that distinctly from an empty form.
type Store interface {
	Put(ctx context.Context, sessionID, step string, form model.StepForm) error
	Get(ctx context.Context, sessionID, step string) (model.StepForm, bool, error)
}
