package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"asdscreen/internal/model"
)

// Predictor submits a normalized payload to a scorer and classifies the
// outcome. Implemented by PredictionClient; tests substitute their own.
type Predictor interface {
	Submit(ctx context.Context, payload *model.NormalizedPayload) model.Outcome
}

// PredictionClient calls the remote scoring service over HTTP. When no base
// URL is configured it falls back to the local threshold evaluator.
type PredictionClient struct {
	baseURL    string
	httpClient *http.Client
}

// predictionResponse is the scorer's success body.
type predictionResponse struct {
	Prediction            string          `json:"prediction"`
	Probability           float64         `json:"probability"`
	ProbabilityPercentage json.RawMessage `json:"probability_percentage"`
}

// errorDetail is the scorer's failure body, decoded best-effort for logs.
type errorDetail struct {
	Detail string `json:"detail"`
}

// NewPredictionClient creates a scoring client for the given base URL.
// An empty baseURL enables the local fallback evaluator.
func NewPredictionClient(baseURL string) *PredictionClient {
	if baseURL == "" {
		log.Println("Warning: SCORER_URL not set, using local threshold evaluator")
	}
	return &PredictionClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Submit sends the payload to the scorer and classifies the result. One
// attempt per call; any transport failure, non-2xx status or undecodable
// success body becomes a generic service-error outcome.
func (c *PredictionClient) Submit(ctx context.Context, payload *model.NormalizedPayload) model.Outcome {
	if c.baseURL == "" {
		return c.localScore(payload)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[Predictor] ERROR: failed to encode payload: %v", err)
		return model.ServiceErrorOutcome()
	}

	url := c.baseURL + "/autism_prediction"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		log.Printf("[Predictor] ERROR: failed to create request: %v", err)
		return model.ServiceErrorOutcome()
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[Predictor] ERROR: request failed: %v", err)
		return model.ServiceErrorOutcome()
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[Predictor] ERROR: failed to read response body: %v", err)
		return model.ServiceErrorOutcome()
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var detail errorDetail
		if err := json.Unmarshal(respBody, &detail); err == nil && detail.Detail != "" {
			log.Printf("[Predictor] scorer returned %d: %s", resp.StatusCode, detail.Detail)
		} else {
			log.Printf("[Predictor] scorer returned %d, body length %d bytes", resp.StatusCode, len(respBody))
		}
		return model.ServiceErrorOutcome()
	}

	var result predictionResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		log.Printf("[Predictor] ERROR: undecodable success body: %v", err)
		return model.ServiceErrorOutcome()
	}

	return model.SuccessOutcome(result.Prediction, displayProbability(result.ProbabilityPercentage))
}

// referralThreshold is the AQ-10 cutoff: six or more yes answers refer.
const referralThreshold = 6

// localScore is the fallback evaluator used when no scorer URL is configured.
// It classifies from the behavioral sum alone, ignoring the personal fields.
func (c *PredictionClient) localScore(payload *model.NormalizedPayload) model.Outcome {
	sum := payload.BehavioralSum()
	probability := fmt.Sprintf("%.2f%%", float64(sum)/10*100)
	if sum >= referralThreshold {
		return model.SuccessOutcome("Positive for ASD", probability)
	}
	return model.SuccessOutcome("Negative for ASD", probability)
}

// displayProbability renders probability_percentage, which the scorer may
// send as a quoted string ("12%") or a bare number.
func displayProbability(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return fmt.Sprintf("%.2f%%", f)
	}
	return string(raw)
}
