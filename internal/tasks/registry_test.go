package tasks

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	"talentdesk_echo/internal/models"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := &Registry{handlers: make(map[string]TaskHandler)}

	if _, ok := registry.Get("expire_job_postings"); ok {
		t.Fatal("empty registry returned a handler")
	}

	registry.Register("expire_job_postings", func(ctx context.Context, db *gorm.DB, task models.ScheduledTask) (map[string]interface{}, error) {
		return map[string]interface{}{"status": "success"}, nil
	})

	handler, ok := registry.Get("expire_job_postings")
	if !ok {
		t.Fatal("registered handler not found")
	}
	result, err := handler(context.Background(), nil, models.ScheduledTask{})
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if result["status"] != "success" {
		t.Errorf("result status = %v; want success", result["status"])
	}
}

func TestBuildScheduledTask(t *testing.T) {
	due := time.Now().Add(time.Hour)
	interval := "FREQ=WEEKLY;INTERVAL=1"

	task, err := BuildScheduledTask("send_pipeline_digest",
		SendPipelineDigestArgs{Recipients: []string{"recruiting@example.com"}, Subject: "Weekly digest"},
		due, &interval, models.ScheduledTaskTypeRecurring, 3)
	if err != nil {
		t.Fatalf("BuildScheduledTask: %v", err)
	}

	if task.TaskName != "send_pipeline_digest" {
		t.Errorf("TaskName = %q", task.TaskName)
	}
	if task.Status != models.ScheduledTaskStatusActive {
		t.Errorf("Status = %q; want active", task.Status)
	}
	if task.TaskType != models.ScheduledTaskTypeRecurring {
		t.Errorf("TaskType = %q; want recurring", task.TaskType)
	}
	recipients, ok := task.Arguments["recipients"].([]interface{})
	if !ok || len(recipients) != 1 {
		t.Errorf("Arguments recipients = %v; want one entry", task.Arguments["recipients"])
	}
}

func TestNextIntake(t *testing.T) {
	daily := "FREQ=DAILY;INTERVAL=1"
	bad := "FREQ=NEVERISH"
	posted := time.Now().Add(-72 * time.Hour)

	tests := []struct {
		name    string
		posting models.JobPosting
		wantOK  bool
	}{
		{
			name:    "due occurrence reopens",
			posting: models.JobPosting{PostedAt: posted, RepostRule: &daily},
			wantOK:  true,
		},
		{
			name:    "future-only rule stays closed",
			posting: models.JobPosting{PostedAt: time.Now().Add(time.Hour), RepostRule: &daily},
			wantOK:  false,
		},
		{
			name:    "bad rule is skipped",
			posting: models.JobPosting{PostedAt: posted, RepostRule: &bad},
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, ok := nextIntake(tt.posting, time.Now())
			if ok != tt.wantOK {
				t.Fatalf("nextIntake ok = %v; want %v", ok, tt.wantOK)
			}
			if ok && !next.After(tt.posting.PostedAt) {
				t.Errorf("nextIntake = %v; want after posted date %v", next, tt.posting.PostedAt)
			}
		})
	}
}
