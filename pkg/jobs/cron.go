package jobs

import (
	"context"
	"time"

	"github.com/jordanlanch/touchpoint/ent"
	"github.com/jordanlanch/touchpoint/ent/subscription"
	"github.com/jordanlanch/touchpoint/pkg/backup"
	"github.com/jordanlanch/touchpoint/pkg/logger"
	subscriptions "github.com/jordanlanch/touchpoint/pkg/subscription"
	"github.com/jordanlanch/touchpoint/pkg/touch"
	"github.com/robfig/cron/v3"
)

// Schedules carries the cron expressions for the background jobs.
type Schedules struct {
	AutoResume    string
	OverdueDigest string
	Backup        string
}

// CronManager runs the scheduled callers of the engine. The engine itself
// never ticks: pause_until is only a recorded fact until the auto-resume
// sweep compares it to now and calls Resume like any other operator would.
type CronManager struct {
	cron      *cron.Cron
	db        *ent.Client
	subs      *subscriptions.Service
	touches   *touch.Service
	backups   *backup.Service
	schedules Schedules
	log       logger.Logger
}

// NewCronManager creates a new cron manager. The backup service may be nil
// when backups are disabled.
func NewCronManager(db *ent.Client, subs *subscriptions.Service, touches *touch.Service, backups *backup.Service, schedules Schedules, log logger.Logger) *CronManager {
	if log == nil {
		log = logger.Default()
	}
	return &CronManager{
		cron:      cron.New(),
		db:        db,
		subs:      subs,
		touches:   touches,
		backups:   backups,
		schedules: schedules,
		log:       log,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	if _, err := cm.cron.AddFunc(cm.schedules.AutoResume, cm.runAutoResume); err != nil {
		return err
	}
	if _, err := cm.cron.AddFunc(cm.schedules.OverdueDigest, cm.runOverdueDigest); err != nil {
		return err
	}
	if cm.backups != nil && cm.schedules.Backup != "" {
		if _, err := cm.cron.AddFunc(cm.schedules.Backup, cm.runBackup); err != nil {
			return err
		}
	}

	cm.log.Info("cron jobs configured",
		"auto_resume", cm.schedules.AutoResume,
		"overdue_digest", cm.schedules.OverdueDigest,
		"backup", cm.schedules.Backup)
	return nil
}

// runAutoResume resumes paused subscriptions whose pause_until has passed.
func (cm *CronManager) runAutoResume() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	due, err := cm.db.Subscription.Query().
		Where(
			subscription.StatusEQ(subscription.StatusPaused),
			subscription.PauseUntilNotNil(),
			subscription.PauseUntilLTE(time.Now()),
		).
		All(ctx)
	if err != nil {
		cm.log.Error("auto-resume sweep failed", "error", err)
		return
	}
	if len(due) == 0 {
		return
	}

	resumed := 0
	for _, sub := range due {
		if _, err := cm.subs.Resume(ctx, 0, sub.ID); err != nil {
			cm.log.Warn("auto-resume failed", "subscription_id", sub.ID, "error", err)
			continue
		}
		resumed++
	}
	cm.log.Info("auto-resume sweep completed", "due", len(due), "resumed", resumed)
}

// runOverdueDigest logs how much pending work has slipped past its date.
func (cm *CronManager) runOverdueDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
	defer cancel()

	overdue, err := cm.touches.ListDue(ctx, touch.DueFilter{OverdueOnly: true})
	if err != nil {
		cm.log.Error("overdue digest failed", "error", err)
		return
	}
	if len(overdue) == 0 {
		cm.log.Info("overdue digest: nothing overdue")
		return
	}

	byAssignee := make(map[int]int)
	for _, t := range overdue {
		byAssignee[t.AssignedTo]++
	}
	cm.log.Info("overdue digest", "total", len(overdue), "assignees", len(byAssignee))
	for assignee, count := range byAssignee {
		cm.log.Info("overdue touches", "assigned_to", assignee, "count", count)
	}
}

// runBackup creates a scheduled database backup.
func (cm *CronManager) runBackup() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	if _, err := cm.backups.CreateBackup(ctx); err != nil {
		cm.log.Error("scheduled backup failed", "error", err)
	}
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.log.Info("starting cron scheduler")
	cm.cron.Start()
}

// Stop stops the cron scheduler
func (cm *CronManager) Stop() {
	cm.log.Info("stopping cron scheduler")
	cm.cron.Stop()
}
