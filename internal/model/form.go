package model

// StepForm holds the in-progress answers for one wizard step as a mapping
// from a fixed field name to the raw string the user entered. Every declared
// field is always present; empty string means unanswered.
type StepForm map[string]string

// BehavioralFields are the ten yes/no screening questions. Values are "1"
// (yes) or "0" (no).
var BehavioralFields = []string{
	"A1_Score", "A2_Score", "A3_Score", "A4_Score", "A5_Score",
	"A6_Score", "A7_Score", "A8_Score", "A9_Score", "A10_Score",
}

// PersonalFields are the personal-info step fields. age is numeric text, the
// rest are free text or closed-enum text.
var PersonalFields = []string{
	"age", "gender", "ethnicity", "jaundice", "autism",
	"country_of_residence", "used_app_before", "relation",
}

// NewStepForm creates a form with every field present and empty.
func NewStepForm(fields []string) StepForm {
	form := make(StepForm, len(fields))
	for _, f := range fields {
		form[f] = ""
	}
	return form
}

// Rekey copies values from src onto a fresh form over the declared field set,
// dropping unknown keys. Keeps the all-fields-present invariant regardless of
// what the client sent.
func Rekey(src map[string]string, fields []string) StepForm {
	form := NewStepForm(fields)
	for _, f := range fields {
		if v, ok := src[f]; ok {
			form[f] = v
		}
	}
	return form
}
