package service

import "asdscreen/internal/model"

// Fixed summary messages shown when a step fails validation.
const (
	MsgAnswerAllQuestions = "Please answer all the questions."
	MsgFillAllFields      = "Please fill in all the fields."
)

// ValidationResult reports whether a step form is complete. MissingFields
// lists the empty fields so the caller can mark them individually; it is
// recomputed here on every call, never stored.
type ValidationResult struct {
	Valid         bool     `json:"valid"`
	Message       string   `json:"message,omitempty"`
	MissingFields []string `json:"missingFields,omitempty"`
}

// ValidateForm checks that every declared field is non-empty. All-or-nothing
// per step: one empty field fails the whole step with failMessage. Pure
// function, no side effects.
func ValidateForm(form model.StepForm, fields []string, failMessage string) ValidationResult {
	var missing []string
	for _, f := range fields {
		if form[f] == "" {
			missing = append(missing, f)
		}
	}

	if len(missing) > 0 {
		return ValidationResult{Valid: false, Message: failMessage, MissingFields: missing}
	}
	return ValidationResult{Valid: true}
}
