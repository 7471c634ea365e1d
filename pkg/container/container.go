package container

import (
	"github.com/jordanlanch/touchpoint/config"
	"github.com/jordanlanch/touchpoint/pkg/api/handlers"
	"github.com/jordanlanch/touchpoint/pkg/audit"
	"github.com/jordanlanch/touchpoint/pkg/backup"
	"github.com/jordanlanch/touchpoint/pkg/cache"
	"github.com/jordanlanch/touchpoint/pkg/database"
	"github.com/jordanlanch/touchpoint/pkg/domain"
	"github.com/jordanlanch/touchpoint/pkg/export"
	"github.com/jordanlanch/touchpoint/pkg/identity"
	"github.com/jordanlanch/touchpoint/pkg/jobs"
	"github.com/jordanlanch/touchpoint/pkg/logger"
	"github.com/jordanlanch/touchpoint/pkg/metrics"
	"github.com/jordanlanch/touchpoint/pkg/preset"
	"github.com/jordanlanch/touchpoint/pkg/sequence"
	"github.com/jordanlanch/touchpoint/pkg/subscription"
	"github.com/jordanlanch/touchpoint/pkg/tasks"
	"github.com/jordanlanch/touchpoint/pkg/touch"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger logger.Logger

	// Infrastructure
	DB      *database.Client
	Cache   domain.CacheRepository
	Metrics *metrics.Metrics

	// Services
	AuditLogger         *audit.Service
	PresetService       *preset.Service
	SubscriptionService *subscription.Service
	TouchService        *touch.Service
	ExportService       *export.Service
	BackupService       *backup.Service

	// Jobs
	CronManager *jobs.CronManager

	// Handlers
	PresetHandler       *handlers.PresetHandler
	SubscriptionHandler *handlers.SubscriptionHandler
	TouchHandler        *handlers.TouchHandler
	ExportHandler       *handlers.ExportHandler
}

// New creates and initializes all application dependencies
func New(cfg *config.Config) (*Container, error) {
	c := &Container{
		Config: cfg,
		Logger: logger.New(cfg.LogLevel, cfg.LogFormat),
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	if err := c.initServices(); err != nil {
		return nil, err
	}
	c.initHandlers()
	c.initJobs()

	c.Logger.Info("Container initialized successfully",
		"environment", cfg.APIEnvironment,
		"database", "connected",
		"cache", "connected")

	return c, nil
}

// initInfrastructure initializes database and cache connections
func (c *Container) initInfrastructure() error {
	var err error

	c.DB, err = database.NewClient(c.Config.DatabaseURL)
	if err != nil {
		c.Logger.Error("Failed to connect to database", "error", err)
		return err
	}

	cacheClient, err := cache.NewClient(c.Config.RedisURL)
	if err != nil {
		c.Logger.Error("Failed to connect to cache", "error", err)
		return err
	}
	c.Cache = cacheClient

	c.Metrics = metrics.New()

	return nil
}

// initServices wires the engine: preset catalog, materializer, subscription
// lifecycle and touch state machine, with the cycle policy hooked up last.
func (c *Container) initServices() error {
	c.AuditLogger = audit.NewService(c.DB.Ent)

	directory := identity.NewStaticDirectory(c.Config.DefaultOwnerID, c.Config.FieldStaffIDs)
	materializer := sequence.NewMaterializer(directory)
	locks := domain.NewSubscriptionLocks()
	syncer := tasks.NewSyncer(tasks.Noop{}, tasks.Noop{}, c.Logger)

	c.PresetService = preset.NewService(c.DB.Ent, c.Cache, c.AuditLogger)
	c.TouchService = touch.NewService(c.DB.Ent, locks, syncer, c.AuditLogger, c.Logger)
	c.SubscriptionService = subscription.NewService(
		c.DB.Ent,
		locks,
		materializer,
		c.PresetService,
		c.Cache,
		c.AuditLogger,
		c.Logger,
	)
	c.TouchService.SetCyclePolicy(c.SubscriptionService)

	c.ExportService = export.NewService(c.DB.Ent, c.AuditLogger, c.Config.ExportLocalPath)

	if c.Config.BackupEnabled {
		backupSvc, err := backup.NewService(backup.Config{
			AWSAccessKeyID:     c.Config.BackupAccessKey,
			AWSSecretAccessKey: c.Config.BackupSecretKey,
			AWSRegion:          c.Config.BackupS3Region,
			S3Bucket:           c.Config.BackupS3Bucket,
			DatabaseURL:        c.Config.DatabaseURL,
			LocalBackupDir:     c.Config.BackupLocalDir,
			RetentionDays:      c.Config.BackupKeepDays,
		}, c.AuditLogger, c.Logger)
		if err != nil {
			c.Logger.Error("Failed to initialize backup service", "error", err)
			return err
		}
		c.BackupService = backupSvc
	}

	return nil
}

// initHandlers initializes all HTTP handlers
func (c *Container) initHandlers() {
	c.PresetHandler = handlers.NewPresetHandler(c.PresetService)
	c.SubscriptionHandler = handlers.NewSubscriptionHandler(c.SubscriptionService, c.Metrics)
	c.TouchHandler = handlers.NewTouchHandler(c.TouchService, c.Metrics)
	c.ExportHandler = handlers.NewExportHandler(c.ExportService, c.Metrics)
}

// initJobs builds the cron manager; it is started from main once the HTTP
// surface is up.
func (c *Container) initJobs() {
	if !c.Config.JobsEnabled {
		return
	}

	c.CronManager = jobs.NewCronManager(
		c.DB.Ent,
		c.SubscriptionService,
		c.TouchService,
		c.BackupService,
		jobs.Schedules{
			AutoResume:    c.Config.AutoResumeSchedule,
			OverdueDigest: c.Config.OverdueDigestSchedule,
			Backup:        c.Config.BackupSchedule,
		},
		c.Logger,
	)
}

// Close closes all resources (database, cache connections)
func (c *Container) Close() error {
	c.Logger.Info("Shutting down container...")

	if err := c.DB.Close(); err != nil {
		c.Logger.Error("Failed to close database", "error", err)
		return err
	}

	if err := c.Cache.Close(); err != nil {
		c.Logger.Error("Failed to close cache", "error", err)
		return err
	}

	c.Logger.Info("Container shutdown complete")
	return nil
}
