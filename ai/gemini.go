package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// Roles for conversation history turns as submitted by clients.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one prior turn of a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Outcome classifies a generation attempt. Transient failures (rate limits,
// temporary unavailability) are safe to retry; config failures need operator
// intervention.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeTransient
	OutcomeConfig
	OutcomeFatal
)

// Result is the tagged outcome of one generation call. The orchestrator is
// the only place where a non-OK Result collapses into user-facing text.
type Result struct {
	Text    string
	Outcome Outcome
	Err     error
}

// OK reports whether the call produced usable text.
func (r Result) OK() bool {
	return r.Outcome == OutcomeOK
}

// Generator abstracts the generative-language service so the orchestrator
// and handlers can be tested against a stub.
type Generator interface {
	// Generate submits an optional user-first history plus a new prompt and
	// returns the model's text. History must already be normalized; roles are
	// mapped to the wire format here.
	Generate(ctx context.Context, history []Message, prompt string) Result
}

// Wire format of the generateContent endpoint.

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

type generateRequest struct {
	Contents       []content       `json:"contents"`
	SafetySettings []safetySetting `json:"safetySettings"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

var defaultSafetySettings = []safetySetting{
	{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
	{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_MEDIUM_AND_ABOVE"},
}

// GeminiClient calls Google's generative-language REST API.
type GeminiClient struct {
	client *resty.Client
	apiKey string
	model  string
}

// NewGeminiClient builds a client for the given credential and model. An
// empty apiKey is allowed; every call then reports OutcomeConfig and the
// orchestrator substitutes fallback text.
func NewGeminiClient(apiKey, model string) *GeminiClient {
	client := resty.New().
		SetBaseURL(defaultBaseURL).
		SetTimeout(60 * time.Second)

	return &GeminiClient{
		client: client,
		apiKey: apiKey,
		model:  model,
	}
}

func (g *GeminiClient) Generate(ctx context.Context, history []Message, prompt string) Result {
	if g.apiKey == "" {
		return Result{Outcome: OutcomeConfig, Err: errors.New("GOOGLE_API_KEY is not configured")}
	}

	contents := make([]content, 0, len(history)+1)
	for _, turn := range history {
		role := "user"
		if turn.Role == RoleAssistant {
			role = "model"
		}
		contents = append(contents, content{Role: role, Parts: []part{{Text: turn.Content}}})
	}
	contents = append(contents, content{Role: "user", Parts: []part{{Text: prompt}}})

	resp, err := g.client.R().
		SetContext(ctx).
		SetQueryParam("key", g.apiKey).
		SetBody(generateRequest{Contents: contents, SafetySettings: defaultSafetySettings}).
		Post(fmt.Sprintf("/models/%s:generateContent", g.model))
	if err != nil {
		return Result{Outcome: OutcomeTransient, Err: err}
	}

	var out generateResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil && resp.StatusCode() == http.StatusOK {
		return Result{Outcome: OutcomeFatal, Err: fmt.Errorf("invalid response from gemini: %w", err)}
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		// fall through to candidate extraction
	case http.StatusTooManyRequests, http.StatusServiceUnavailable:
		return Result{Outcome: OutcomeTransient, Err: fmt.Errorf("gemini responded with status %d", resp.StatusCode())}
	default:
		message := resp.Status()
		if out.Error != nil {
			message = out.Error.Message
		}
		return Result{Outcome: OutcomeFatal, Err: fmt.Errorf("gemini error: %s", message)}
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return Result{Outcome: OutcomeFatal, Err: errors.New("gemini returned no candidates")}
	}
	return Result{Text: strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text), Outcome: OutcomeOK}
}
