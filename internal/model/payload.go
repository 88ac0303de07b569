package model

// NormalizedPayload is the single coerced record sent to the scoring service.
// Field names match the scorer's request model exactly; it has exactly these
// 18 fields regardless of how malformed the source forms were.
type NormalizedPayload struct {
	A1Score  int `json:"A1_Score"`
	A2Score  int `json:"A2_Score"`
	A3Score  int `json:"A3_Score"`
	A4Score  int `json:"A4_Score"`
	A5Score  int `json:"A5_Score"`
	A6Score  int `json:"A6_Score"`
	A7Score  int `json:"A7_Score"`
	A8Score  int `json:"A8_Score"`
	A9Score  int `json:"A9_Score"`
	A10Score int `json:"A10_Score"`

	Age                float64 `json:"age"`
	Gender             string  `json:"gender"`
	Ethnicity          string  `json:"ethnicity"`
	Jaundice           bool    `json:"jaundice"`
	Autism             bool    `json:"autism"`
	CountryOfResidence string  `json:"country_of_residence"`
	UsedAppBefore      bool    `json:"used_app_before"`
	Relation           string  `json:"relation"`
}

// BehavioralSum is the number of yes answers across A1..A10. Used by the
// local fallback evaluator.
func (p *NormalizedPayload) BehavioralSum() int {
	return p.A1Score + p.A2Score + p.A3Score + p.A4Score + p.A5Score +
		p.A6Score + p.A7Score + p.A8Score + p.A9Score + p.A10Score
}
