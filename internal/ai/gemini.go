package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jairomatosve/voyagedesigner/internal/planner"
)

const defaultGeminiBase = "https://generativelanguage.googleapis.com/v1beta"

// GeminiGenerator calls the Generative Language API. Prompts ask for JSON
// output and the response is parsed strictly: anything that is not a
// complete day-indexed plan becomes ErrGenerationFailed so no partial
// itinerary ever reaches storage.
type GeminiGenerator struct {
	APIKey  string
	Model   string
	BaseURL string
	Client  *http.Client
}

func NewGeminiGenerator(apiKey, model string) *GeminiGenerator {
	if model == "" {
		model = "gemini-2.0-flash"
	}
	return &GeminiGenerator{
		APIKey:  apiKey,
		Model:   model,
		BaseURL: defaultGeminiBase,
		Client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiGenConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig geminiGenConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiGenerator) GenerateItinerary(ctx context.Context, req GenerateRequest) (*ItineraryPlan, error) {
	span := planner.DaySpan(req.StartDate, req.EndDate)

	prompt := fmt.Sprintf(
		`Plan a %d-day trip to %s from %s to %s at a %s pace. Traveller interests: %s.
Respond with JSON only, shaped as {"days":[{"day_index":1,"date":"YYYY-MM-DD","theme":"...","activities":[{"title":"...","description":"...","location":"...","start_time":"HH:MM","end_time":"HH:MM","duration_min":60,"estimated_cost":20,"category":"dining|sightseeing|transport|activity|rest|accommodation"}]}]}.
Produce exactly %d entries in "days", one per calendar day starting %s.`,
		span, req.Destination,
		req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"),
		paceOrDefault(req.Pace), interestsOrDefault(req.Interests),
		span, req.StartDate.Format("2006-01-02"),
	)

	raw, err := g.call(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var plan ItineraryPlan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		logrus.WithError(err).Warn("gemini: itinerary response is not valid JSON")
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if len(plan.Days) != span {
		logrus.Warnf("gemini: asked for %d days, got %d", span, len(plan.Days))
		return nil, fmt.Errorf("%w: incomplete plan (%d/%d days)", ErrGenerationFailed, len(plan.Days), span)
	}

	// Re-anchor indices and dates to the requested window; the model's
	// ordering is trusted, its labels are not.
	for i := range plan.Days {
		plan.Days[i].DayIndex = i + 1
		plan.Days[i].Date = req.StartDate.AddDate(0, 0, i).Format("2006-01-02")
	}
	return &plan, nil
}

func (g *GeminiGenerator) SuggestAlternatives(ctx context.Context, req ReoptimizeRequest) ([]Suggestion, error) {
	prompt := fmt.Sprintf(
		`An activity on a trip to %s fell through: %q. Time available: %s. Constraints: %s.
Suggest exactly %d replacement activities. Respond with JSON only, shaped as
{"suggestions":[{"title":"...","description":"...","estimated_cost":20,"duration_min":90,"reason":"..."}]}.`,
		req.Destination, req.FailedActivity,
		orDefault(req.TimeAvailable, "a few hours"), orDefault(req.Constraints, "none"),
		SuggestionCount,
	)

	raw, err := g.call(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var out struct {
		Suggestions []Suggestion `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		logrus.WithError(err).Warn("gemini: suggestion response is not valid JSON")
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if len(out.Suggestions) == 0 {
		return nil, fmt.Errorf("%w: no suggestions returned", ErrGenerationFailed)
	}
	if len(out.Suggestions) > SuggestionCount {
		out.Suggestions = out.Suggestions[:SuggestionCount]
	}
	return out.Suggestions, nil
}

// call performs one generateContent request and returns the first
// candidate's text with any markdown fences stripped.
func (g *GeminiGenerator) call(ctx context.Context, prompt string) (string, error) {
	body := geminiRequest{
		Contents:         []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: geminiGenConfig{ResponseMimeType: "application/json"},
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", g.BaseURL, g.Model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", g.APIKey)

	resp, err := g.Client.Do(httpReq)
	if err != nil {
		logrus.WithError(err).Error("gemini: request failed")
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		logrus.Warnf("gemini: upstream status %d", resp.StatusCode)
		return "", fmt.Errorf("%w: upstream status %d", ErrGenerationFailed, resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: empty candidate list", ErrGenerationFailed)
	}
	return stripFences(parsed.Candidates[0].Content.Parts[0].Text), nil
}

// stripFences removes a surrounding ```json ... ``` block if the model
// wrapped its output despite the JSON response MIME type.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

func paceOrDefault(p string) string {
	switch p {
	case "relaxed", "moderate", "fast":
		return p
	}
	return "moderate"
}

func interestsOrDefault(interests []string) string {
	if len(interests) == 0 {
		return "general"
	}
	return strings.Join(interests, ", ")
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
