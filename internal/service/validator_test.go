package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asdscreen/internal/model"
)

func fullBehavioral(value string) model.StepForm {
	form := model.NewStepForm(model.BehavioralFields)
	for _, f := range model.BehavioralFields {
		form[f] = value
	}
	return form
}

func TestValidateForm_AllAnswered(t *testing.T) {
	for _, value := range []string{"0", "1"} {
		result := ValidateForm(fullBehavioral(value), model.BehavioralFields, MsgAnswerAllQuestions)
		assert.True(t, result.Valid)
		assert.Empty(t, result.Message)
		assert.Empty(t, result.MissingFields)
	}
}

func TestValidateForm_AnyEmptyFieldFails(t *testing.T) {
	for _, field := range model.BehavioralFields {
		form := fullBehavioral("1")
		form[field] = ""

		result := ValidateForm(form, model.BehavioralFields, MsgAnswerAllQuestions)
		require.False(t, result.Valid, "field %s", field)
		assert.Equal(t, MsgAnswerAllQuestions, result.Message)
		assert.Equal(t, []string{field}, result.MissingFields)
	}
}

func TestValidateForm_EmptyFormListsEveryField(t *testing.T) {
	form := model.NewStepForm(model.PersonalFields)

	result := ValidateForm(form, model.PersonalFields, MsgFillAllFields)
	require.False(t, result.Valid)
	assert.Equal(t, MsgFillAllFields, result.Message)
	assert.Equal(t, model.PersonalFields, result.MissingFields)
}

func TestValidateForm_Pure(t *testing.T) {
	form := fullBehavioral("1")
	form["A3_Score"] = ""

	ValidateForm(form, model.BehavioralFields, MsgAnswerAllQuestions)
	assert.Equal(t, "", form["A3_Score"], "validation must not mutate the form")
}
