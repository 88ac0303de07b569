package model

import "fmt"

// OutcomeKind tags the result of one scoring attempt.
type OutcomeKind string

const (
	OutcomeSuccess      OutcomeKind = "success"
	OutcomeServiceError OutcomeKind = "service_error"
	OutcomeMissingInput OutcomeKind = "missing_input"
)

// User-facing messages for the failure outcomes.
const (
	MsgServiceError = "An error occurred while fetching the prediction."
	MsgMissingInput = "Required form data not found. Please complete both forms."
)

// Outcome is the tagged result of a wizard run. Exactly one kind is active;
// Prediction/Probability are set only for OutcomeSuccess, Message only for
// the failure kinds. Presentation switches on Kind, never on message text.
type Outcome struct {
	Kind        OutcomeKind `json:"kind"`
	Prediction  string      `json:"prediction,omitempty"`
	Probability string      `json:"probability,omitempty"`
	Message     string      `json:"message,omitempty"`
}

// SuccessOutcome builds a success outcome from the scorer's response fields.
func SuccessOutcome(prediction, probability string) Outcome {
	return Outcome{Kind: OutcomeSuccess, Prediction: prediction, Probability: probability}
}

// ServiceErrorOutcome builds the generic remote-failure outcome.
func ServiceErrorOutcome() Outcome {
	return Outcome{Kind: OutcomeServiceError, Message: MsgServiceError}
}

// MissingInputOutcome builds the incomplete-forms outcome.
func MissingInputOutcome() Outcome {
	return Outcome{Kind: OutcomeMissingInput, Message: MsgMissingInput}
}

// Display renders the outcome for the result view: "prediction (probability)"
// on success, the stored message otherwise.
func (o Outcome) Display() string {
	if o.Kind == OutcomeSuccess {
		return fmt.Sprintf("%s (%s)", o.Prediction, o.Probability)
	}
	return o.Message
}
