package service

import (
	"strconv"

	"asdscreen/internal/model"
)

// Coercion policy for building the scorer payload. The scorer's training
// pipeline expects every field present, so malformed or empty input defaults
// rather than rejects: numerics to zero, booleans to false. Kept as named
// functions so the defaulting is deliberate and testable, not a silent
// fallback.

// IntOrZero parses a behavioral score; empty or unparsable input becomes 0.
func IntOrZero(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// FloatOrZero parses a numeric-text field; empty or unparsable input becomes 0.
func FloatOrZero(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// IsYes reports whether the source string is exactly the literal "yes".
// Case-sensitive by contract: "Yes", "YES" and everything else are false.
func IsYes(s string) bool {
	return s == "yes"
}

// RemapRelation maps the form's "self" to the label the scorer was trained
// on; every other value passes through, including empty string.
func RemapRelation(s string) string {
	if s == "self" {
		return "parent"
	}
	return s
}

// Normalize merges the two completed step forms into the outbound payload,
// applying the coercion table field by field. No cross-field validation:
// age=0 after defaulting is accepted. Deterministic, no side effects.
func Normalize(behavioral, personal model.StepForm) model.NormalizedPayload {
	return model.NormalizedPayload{
		A1Score:  IntOrZero(behavioral["A1_Score"]),
		A2Score:  IntOrZero(behavioral["A2_Score"]),
		A3Score:  IntOrZero(behavioral["A3_Score"]),
		A4Score:  IntOrZero(behavioral["A4_Score"]),
		A5Score:  IntOrZero(behavioral["A5_Score"]),
		A6Score:  IntOrZero(behavioral["A6_Score"]),
		A7Score:  IntOrZero(behavioral["A7_Score"]),
		A8Score:  IntOrZero(behavioral["A8_Score"]),
		A9Score:  IntOrZero(behavioral["A9_Score"]),
		A10Score: IntOrZero(behavioral["A10_Score"]),

		Age:                FloatOrZero(personal["age"]),
		Gender:             personal["gender"],
		Ethnicity:          personal["ethnicity"],
		Jaundice:           IsYes(personal["jaundice"]),
		Autism:             IsYes(personal["autism"]),
		CountryOfResidence: personal["country_of_residence"],
		UsedAppBefore:      IsYes(personal["used_app_before"]),
		Relation:           RemapRelation(personal["relation"]),
	}
}
