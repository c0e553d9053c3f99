package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"talentdesk_echo/internal/models"
	"talentdesk_echo/internal/services"
)

// SendPipelineDigestArgs defines the arguments for a digest task
type SendPipelineDigestArgs struct {
	Recipients []string `json:"recipients"`
	Subject    string   `json:"subject"`
}

// SendPipelineDigestTaskDef emails recruiters a stage-count summary of the
// candidate pipeline.
type SendPipelineDigestTaskDef struct{}

// TaskID returns the unique identifier for this task
func (t *SendPipelineDigestTaskDef) TaskID() string {
	return "send_pipeline_digest"
}

// CreateTask builds a ScheduledTask record for this task
func (t *SendPipelineDigestTaskDef) CreateTask(args SendPipelineDigestArgs, due time.Time, interval *string) (*models.ScheduledTask, error) {
	taskType := models.ScheduledTaskTypeOneTime
	if interval != nil {
		taskType = models.ScheduledTaskTypeRecurring
	}
	return BuildScheduledTask(t.TaskID(), args, due, interval, taskType, 3)
}

// HandleExecution builds the digest body and sends it over SMTP
func (t *SendPipelineDigestTaskDef) HandleExecution(ctx context.Context, db *gorm.DB, task models.ScheduledTask) (map[string]interface{}, error) {
	argsBytes, err := json.Marshal(task.Arguments)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal args: %w", err)
	}
	var args SendPipelineDigestArgs
	if err := json.Unmarshal(argsBytes, &args); err != nil {
		return nil, fmt.Errorf("failed to unmarshal args: %w", err)
	}
	if len(args.Recipients) == 0 {
		return map[string]interface{}{"status": "skipped", "message": "No recipients configured"}, nil
	}

	body, err := buildDigestBody(ctx, db)
	if err != nil {
		return nil, err
	}

	subject := args.Subject
	if subject == "" {
		subject = "Hiring pipeline digest"
	}

	mailer := services.NewEmailService()
	if err := mailer.SendEmail(args.Recipients, subject, body); err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"status":     "success",
		"recipients": len(args.Recipients),
	}, nil
}

func buildDigestBody(ctx context.Context, db *gorm.DB) (string, error) {
	var b strings.Builder
	b.WriteString("Candidate pipeline as of " + time.Now().Format("2006-01-02") + "\n\n")

	for _, stage := range models.AllCandidateStages {
		var count int64
		if err := db.WithContext(ctx).Model(&models.Candidate{}).
			Where("stage = ?", stage).Count(&count).Error; err != nil {
			return "", fmt.Errorf("failed to count stage %s: %w", stage, err)
		}
		fmt.Fprintf(&b, "%-12s %d\n", stage, count)
	}

	var open int64
	if err := db.WithContext(ctx).Model(&models.JobPosting{}).
		Where("status = ?", models.JobPostingStatusOpen).Count(&open).Error; err != nil {
		return "", fmt.Errorf("failed to count open postings: %w", err)
	}
	fmt.Fprintf(&b, "\nOpen postings: %d\n", open)

	return b.String(), nil
}

// SendPipelineDigestTask is the singleton instance of SendPipelineDigestTaskDef
var SendPipelineDigestTask = &SendPipelineDigestTaskDef{}
