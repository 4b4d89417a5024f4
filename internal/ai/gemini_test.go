package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// candidateServer returns an httptest server that wraps text in the
// Generative Language response envelope.
func candidateServer(t *testing.T, text string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") == "" {
			t.Error("missing api key header")
		}
		w.WriteHeader(status)
		resp := geminiResponse{}
		resp.Candidates = append(resp.Candidates, struct {
			Content geminiContent `json:"content"`
		}{Content: geminiContent{Parts: []geminiPart{{Text: text}}}})
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func testGenerator(srv *httptest.Server) *GeminiGenerator {
	g := NewGeminiGenerator("test-key", "")
	g.BaseURL = srv.URL
	g.Client = srv.Client()
	return g
}

func twoDayRequest() GenerateRequest {
	return GenerateRequest{
		Destination: "Lisbon",
		StartDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC),
	}
}

func TestGeminiGenerateParsesPlan(t *testing.T) {
	body := `{"days":[
		{"day_index":9,"date":"wrong","activities":[{"title":"Tram ride","category":"transport","estimated_cost":5}]},
		{"day_index":9,"date":"wrong","activities":[{"title":"Fado night","category":"activity","estimated_cost":40}]}
	]}`
	srv := candidateServer(t, body, http.StatusOK)
	defer srv.Close()

	plan, err := testGenerator(srv).GenerateItinerary(context.Background(), twoDayRequest())
	if err != nil {
		t.Fatalf("GenerateItinerary: %v", err)
	}
	if len(plan.Days) != 2 {
		t.Fatalf("len(Days) = %d, want 2", len(plan.Days))
	}
	// Indices and dates are re-anchored regardless of what the model said.
	if plan.Days[0].DayIndex != 1 || plan.Days[0].Date != "2024-06-01" {
		t.Errorf("day 1 not re-anchored: %+v", plan.Days[0])
	}
	if plan.Days[1].DayIndex != 2 || plan.Days[1].Date != "2024-06-02" {
		t.Errorf("day 2 not re-anchored: %+v", plan.Days[1])
	}
}

func TestGeminiGenerateStripsFences(t *testing.T) {
	body := "```json\n{\"days\":[{\"activities\":[]},{\"activities\":[]}]}\n```"
	srv := candidateServer(t, body, http.StatusOK)
	defer srv.Close()

	plan, err := testGenerator(srv).GenerateItinerary(context.Background(), twoDayRequest())
	if err != nil {
		t.Fatalf("GenerateItinerary: %v", err)
	}
	if len(plan.Days) != 2 {
		t.Errorf("len(Days) = %d, want 2", len(plan.Days))
	}
}

func TestGeminiGenerateMalformedJSON(t *testing.T) {
	srv := candidateServer(t, "sure! here is your itinerary: day one ...", http.StatusOK)
	defer srv.Close()

	_, err := testGenerator(srv).GenerateItinerary(context.Background(), twoDayRequest())
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("err = %v, want ErrGenerationFailed", err)
	}
}

func TestGeminiGenerateIncompletePlan(t *testing.T) {
	srv := candidateServer(t, `{"days":[{"activities":[]}]}`, http.StatusOK)
	defer srv.Close()

	_, err := testGenerator(srv).GenerateItinerary(context.Background(), twoDayRequest())
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("err = %v, want ErrGenerationFailed", err)
	}
}

func TestGeminiUpstreamError(t *testing.T) {
	srv := candidateServer(t, "", http.StatusInternalServerError)
	defer srv.Close()

	_, err := testGenerator(srv).GenerateItinerary(context.Background(), twoDayRequest())
	if !errors.Is(err, ErrGenerationFailed) {
		t.Fatalf("err = %v, want ErrGenerationFailed", err)
	}
}

func TestGeminiSuggestAlternatives(t *testing.T) {
	body := `{"suggestions":[
		{"title":"Tile museum","description":"Azulejo collection","estimated_cost":8,"duration_min":90,"reason":"indoors"},
		{"title":"River cruise","description":"Tagus by boat","estimated_cost":25,"duration_min":60,"reason":"short"},
		{"title":"Extra one","description":"over the batch size","estimated_cost":1,"duration_min":10}
	]}`
	srv := candidateServer(t, body, http.StatusOK)
	defer srv.Close()

	got, err := testGenerator(srv).SuggestAlternatives(context.Background(), ReoptimizeRequest{
		Destination:    "Lisbon",
		FailedActivity: "Walking tour",
	})
	if err != nil {
		t.Fatalf("SuggestAlternatives: %v", err)
	}
	if len(got) != SuggestionCount {
		t.Fatalf("len = %d, want %d (batch is clamped)", len(got), SuggestionCount)
	}
	if got[0].Title != "Tile museum" {
		t.Errorf("title = %q", got[0].Title)
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct{ in, want string }{
		{"{\"a\":1}", "{\"a\":1}"},
		{"```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"```\n{\"a\":1}\n```", "{\"a\":1}"},
		{"  {\"a\":1}  ", "{\"a\":1}"},
	}
	for _, tt := range tests {
		if got := stripFences(tt.in); got != tt.want {
			t.Errorf("stripFences(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
