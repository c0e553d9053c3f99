package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/teambition/rrule-go"
	"gorm.io/gorm"

	"talentdesk_echo/internal/models"
)

// ExpireJobPostingsTaskDef closes postings whose deadline has passed
type ExpireJobPostingsTaskDef struct{}

// TaskID returns the unique identifier for this task
func (t *ExpireJobPostingsTaskDef) TaskID() string {
	return "expire_job_postings"
}

// CreateTask builds a recurring ScheduledTask record for this task
func (t *ExpireJobPostingsTaskDef) CreateTask(due time.Time, interval string) (*models.ScheduledTask, error) {
	return BuildScheduledTask(t.TaskID(), map[string]interface{}{}, due, &interval, models.ScheduledTaskTypeRecurring, 3)
}

// HandleExecution closes every open posting past its expiry date
func (t *ExpireJobPostingsTaskDef) HandleExecution(ctx context.Context, db *gorm.DB, task models.ScheduledTask) (map[string]interface{}, error) {
	result := db.WithContext(ctx).Model(&models.JobPosting{}).
		Where("status = ? AND expires_at IS NOT NULL AND expires_at < ?", models.JobPostingStatusOpen, time.Now()).
		Update("status", models.JobPostingStatusClosed)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to expire postings: %w", result.Error)
	}

	log.Printf("[Task: expire_job_postings] Closed %d postings", result.RowsAffected)
	return map[string]interface{}{
		"status": "success",
		"closed": result.RowsAffected,
	}, nil
}

// ExpireJobPostingsTask is the singleton instance of ExpireJobPostingsTaskDef
var ExpireJobPostingsTask = &ExpireJobPostingsTaskDef{}

// RepostRecurringPostingsTaskDef reopens closed postings whose repost rule
// has fired, such as recurring internship intakes.
type RepostRecurringPostingsTaskDef struct{}

// TaskID returns the unique identifier for this task
func (t *RepostRecurringPostingsTaskDef) TaskID() string {
	return "repost_recurring_postings"
}

// CreateTask builds a recurring ScheduledTask record for this task
func (t *RepostRecurringPostingsTaskDef) CreateTask(due time.Time, interval string) (*models.ScheduledTask, error) {
	return BuildScheduledTask(t.TaskID(), map[string]interface{}{}, due, &interval, models.ScheduledTaskTypeRecurring, 3)
}

// HandleExecution reopens closed postings that carry a repost rule whose
// next occurrence has arrived, advancing their posted date.
func (t *RepostRecurringPostingsTaskDef) HandleExecution(ctx context.Context, db *gorm.DB, task models.ScheduledTask) (map[string]interface{}, error) {
	var postings []models.JobPosting
	if err := db.WithContext(ctx).
		Where("status = ? AND repost_rule IS NOT NULL AND repost_rule <> ''", models.JobPostingStatusClosed).
		Find(&postings).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch recurring postings: %w", err)
	}

	now := time.Now()
	reopened := 0
	for _, posting := range postings {
		next, ok := nextIntake(posting, now)
		if !ok {
			continue
		}
		updates := map[string]interface{}{
			"status":    models.JobPostingStatusOpen,
			"posted_at": next,
		}
		if err := db.WithContext(ctx).Model(&posting).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to reopen posting %d: %w", posting.ID, err)
		}
		reopened++
	}

	log.Printf("[Task: repost_recurring_postings] Reopened %d postings", reopened)
	return map[string]interface{}{
		"status":   "success",
		"reopened": reopened,
	}, nil
}

// nextIntake finds the first rule occurrence after the posting's current
// posted date that has already arrived. ok is false when the rule is
// unparseable or the next occurrence is still ahead.
func nextIntake(posting models.JobPosting, now time.Time) (time.Time, bool) {
	rule, err := rrule.StrToRRule(*posting.RepostRule)
	if err != nil {
		return time.Time{}, false
	}
	rule.DTStart(posting.PostedAt)

	next := rule.After(posting.PostedAt, false)
	if next.IsZero() || next.After(now) {
		return time.Time{}, false
	}
	return next, true
}

// RepostRecurringPostingsTask is the singleton instance of RepostRecurringPostingsTaskDef
var RepostRecurringPostingsTask = &RepostRecurringPostingsTaskDef{}
