package scheduler

import (
	"context"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"leadgenie_backend/internal/config"
)

func TestLeadQualifyTaskRoundTrip(t *testing.T) {
	leadID := uuid.NewString()

	task, err := NewLeadQualifyTask(LeadQualifyPayload{LeadID: leadID})
	if err != nil {
		t.Fatalf("NewLeadQualifyTask: %v", err)
	}
	if task.Type() != TaskLeadQualify {
		t.Fatalf("task type = %q, want %q", task.Type(), TaskLeadQualify)
	}

	payload, err := ParseLeadQualifyPayload(task)
	if err != nil {
		t.Fatalf("ParseLeadQualifyPayload: %v", err)
	}
	if payload.LeadID != leadID {
		t.Fatalf("lead id = %q, want %q", payload.LeadID, leadID)
	}
}

func TestParseLeadQualifyPayloadRejectsGarbage(t *testing.T) {
	task := asynq.NewTask(TaskLeadQualify, []byte("not json"))
	if _, err := ParseLeadQualifyPayload(task); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestClientEnqueuesToRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := &config.Config{
		RedisURL:   "redis://" + mr.Addr(),
		AsynqQueue: "qualification",
	}

	client, err := NewClient(cfg)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer client.Close()

	err = client.EnqueueLeadQualification(context.Background(), LeadQualifyPayload{LeadID: uuid.NewString()})
	if err != nil {
		t.Fatalf("EnqueueLeadQualification: %v", err)
	}

	var pending bool
	for _, key := range mr.Keys() {
		if strings.Contains(key, "qualification") && strings.Contains(key, "pending") {
			pending = true
		}
	}
	if !pending {
		t.Fatalf("no pending task in queue, keys: %v", mr.Keys())
	}
}

func TestNewClientRequiresRedisURL(t *testing.T) {
	if _, err := NewClient(&config.Config{}); err == nil {
		t.Fatal("expected error without redis url")
	}
}
