package qualify

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"leadgenie_backend/platform/logger"
)

const validQualifierResponse = `{"score": 75, "category": "Hot", "confidence": 0.8,
	"reasoning": "strong signals",
	"buying_signals": ["Budget mentioned", "Short timeline"],
	"risk_factors": [],
	"next_actions": ["Schedule demo"]}`

type fakeClient struct {
	mu    sync.Mutex
	calls int
	text  string
	err   error
}

func (c *fakeClient) Generate(ctx context.Context, prompt string) (RawResponse, error) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	if c.err != nil {
		return RawResponse{}, c.err
	}
	return RawResponse{
		Text:    c.text,
		Model:   "llama3-8b-8192",
		Usage:   TokenUsage{PromptTokens: 500, CompletionTokens: 120, TotalTokens: 620},
		Elapsed: 5 * time.Millisecond,
	}, nil
}

func (c *fakeClient) Model() string { return "llama3-8b-8192" }

func (c *fakeClient) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

type memLogStore struct {
	mu      sync.Mutex
	err     error
	entries []ProcessingLogEntry
}

func (s *memLogStore) Append(ctx context.Context, entry ProcessingLogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.entries = append(s.entries, entry)
	return nil
}

func (s *memLogStore) all() []ProcessingLogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ProcessingLogEntry(nil), s.entries...)
}

func newTestService(client QualifierClient, logs ProcessingLogStore, cacheSize int) *Service {
	return NewService(client, DefaultConfig(), logs, logger.New("development"), ServiceOptions{
		Timeout:   time.Second,
		CacheSize: cacheSize,
	})
}

func TestQualifyHappyPath(t *testing.T) {
	client := &fakeClient{text: validQualifierResponse}
	logs := &memLogStore{}
	svc := newTestService(client, logs, 0)

	lead := LeadInput{ID: uuid.New(), Name: "Jane", Email: "jane@acme.example", Message: "Need a CRM"}
	result := svc.Qualify(context.Background(), lead)

	if result.Fallback() {
		t.Fatalf("happy path produced a fallback result: %+v", result)
	}
	if result.Score != 100 || result.Category != CategoryHot {
		t.Fatalf("score/category = %d/%q, want 100/Hot", result.Score, result.Category)
	}
	if result.AIOriginalScore == nil || *result.AIOriginalScore != 75 {
		t.Errorf("ai original score = %v, want 75", result.AIOriginalScore)
	}
	if result.Confidence != 0.8 {
		t.Errorf("confidence = %v, want 0.8", result.Confidence)
	}

	entries := logs.all()
	if len(entries) != 1 {
		t.Fatalf("log entries = %d, want 1", len(entries))
	}
	entry := entries[0]
	if !entry.Success || entry.ErrorMessage != "" {
		t.Errorf("log entry should record success: %+v", entry)
	}
	if entry.LeadID != lead.ID || entry.Model != "llama3-8b-8192" {
		t.Errorf("log entry identity wrong: %+v", entry)
	}
	if !strings.Contains(entry.Prompt, "Jane") || entry.Response != validQualifierResponse {
		t.Errorf("log entry must carry the full prompt and raw response")
	}
}

func TestQualifyNeverFails(t *testing.T) {
	tests := []struct {
		name        string
		client      *fakeClient
		wantFailure string
	}{
		{
			name:        "qualifier unavailable",
			client:      &fakeClient{err: errors.New("connection refused")},
			wantFailure: "qualifier_unavailable",
		},
		{
			name:        "malformed response",
			client:      &fakeClient{text: "I cannot analyze this lead, sorry."},
			wantFailure: "malformed_response",
		},
		{
			name:        "schema violation",
			client:      &fakeClient{text: `{"score": 150, "category": "Hot", "confidence": 0.9}`},
			wantFailure: "schema_violation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logs := &memLogStore{}
			svc := newTestService(tt.client, logs, 0)

			lead := LeadInput{ID: uuid.New(), Name: "Bob", Email: "bob@example.com", Message: "budget approved, asap"}
			result := svc.Qualify(context.Background(), lead)

			if !result.Fallback() {
				t.Fatalf("expected fallback result, got %+v", result)
			}
			if result.Reasoning != FallbackReasoning {
				t.Errorf("reasoning = %q", result.Reasoning)
			}
			if result.Score != 85 || result.Category != CategoryHot {
				t.Errorf("fallback score/category = %d/%q, want 85/Hot", result.Score, result.Category)
			}

			entries := logs.all()
			if len(entries) != 1 {
				t.Fatalf("log entries = %d, want 1", len(entries))
			}
			if entries[0].Success {
				t.Errorf("failed attempt logged as success")
			}
			if !strings.Contains(entries[0].ErrorMessage, tt.wantFailure) {
				t.Errorf("error message %q missing failure kind %q", entries[0].ErrorMessage, tt.wantFailure)
			}
		})
	}
}

func TestQualifySurvivesLogStoreFailure(t *testing.T) {
	client := &fakeClient{text: validQualifierResponse}
	logs := &memLogStore{err: errors.New("database down")}
	svc := newTestService(client, logs, 0)

	result := svc.Qualify(context.Background(), LeadInput{ID: uuid.New(), Message: "hi"})

	if result.Fallback() {
		t.Fatalf("audit failure must not degrade a successful qualification")
	}
}

func TestQualifyUsesResultCache(t *testing.T) {
	client := &fakeClient{text: validQualifierResponse}
	svc := newTestService(client, &memLogStore{}, 8)

	lead := LeadInput{ID: uuid.New(), Message: "Need a CRM"}
	first := svc.Qualify(context.Background(), lead)
	second := svc.Qualify(context.Background(), lead)

	if client.callCount() != 1 {
		t.Fatalf("qualifier called %d times, want 1 with warm cache", client.callCount())
	}
	if first.Score != second.Score || first.Category != second.Category {
		t.Fatalf("cached result differs: %+v vs %+v", first, second)
	}
}

type promptSwitchClient struct{}

func (c *promptSwitchClient) Generate(ctx context.Context, prompt string) (RawResponse, error) {
	if strings.Contains(prompt, "unreachable") {
		return RawResponse{}, errors.New("connection refused")
	}
	return RawResponse{Text: validQualifierResponse, Model: "llama3-8b-8192"}, nil
}

func (c *promptSwitchClient) Model() string { return "llama3-8b-8192" }

func TestQualifyBatchPreservesOrder(t *testing.T) {
	svc := newTestService(&promptSwitchClient{}, &memLogStore{}, 0)

	leads := []LeadInput{
		{ID: uuid.New(), Name: "first", Message: "Need a CRM"},
		{ID: uuid.New(), Name: "unreachable", Message: "hello"},
		{ID: uuid.New(), Name: "third", Message: "Need a CRM"},
	}

	results := svc.QualifyBatch(context.Background(), leads)

	if len(results) != len(leads) {
		t.Fatalf("results = %d, want %d", len(results), len(leads))
	}
	if results[0].Fallback() || results[2].Fallback() {
		t.Errorf("healthy leads came back as fallback")
	}
	if !results[1].Fallback() {
		t.Errorf("failing lead did not fall back")
	}
}
