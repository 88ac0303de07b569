package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeDisplay(t *testing.T) {
	assert.Equal(t, "No (12%)", SuccessOutcome("No", "12%").Display())
	assert.Equal(t, MsgServiceError, ServiceErrorOutcome().Display())
	assert.Equal(t, MsgMissingInput, MissingInputOutcome().Display())
}

func TestOutcomeDisplay_ErrorLikePredictionLabel(t *testing.T) {
	// Classification rides on Kind, so a prediction label that happens to
	// contain "error" still renders as a success.
	o := SuccessOutcome("margin of error high", "50%")
	assert.Equal(t, OutcomeSuccess, o.Kind)
	assert.Equal(t, "margin of error high (50%)", o.Display())
}
