package backup

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/jordanlanch/touchpoint/ent/activitylog"
	"github.com/jordanlanch/touchpoint/pkg/audit"
	"github.com/jordanlanch/touchpoint/pkg/logger"
)

// Service handles database backups. Touch history is the product: a lost
// database is months of relationship context gone, so backups run on a
// schedule and land in S3.
type Service struct {
	s3Client       *s3.Client
	bucket         string
	databaseURL    string
	localBackupDir string
	retentionDays  int
	audit          *audit.Service
	log            logger.Logger
}

// Config holds backup configuration
type Config struct {
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSRegion          string
	S3Bucket           string
	DatabaseURL        string
	LocalBackupDir     string
	RetentionDays      int // Number of days to keep backups
}

// NewService creates a new backup service
func NewService(cfg Config, auditSvc *audit.Service, log logger.Logger) (*Service, error) {
	if log == nil {
		log = logger.Default()
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.AWSRegion),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	if err := os.MkdirAll(cfg.LocalBackupDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}

	return &Service{
		s3Client:       s3.NewFromConfig(awsCfg),
		bucket:         cfg.S3Bucket,
		databaseURL:    cfg.DatabaseURL,
		localBackupDir: cfg.LocalBackupDir,
		retentionDays:  cfg.RetentionDays,
		audit:          auditSvc,
		log:            log,
	}, nil
}

// BackupResult contains backup operation results
type BackupResult struct {
	Filename     string
	FileSize     int64
	S3Key        string
	Duration     time.Duration
	Compressed   bool
	UploadedToS3 bool
}

// CreateBackup creates a PostgreSQL backup and uploads it to S3
func (s *Service) CreateBackup(ctx context.Context) (*BackupResult, error) {
	start := time.Now()

	timestamp := time.Now().UTC().Format("20060102-150405")
	filename := fmt.Sprintf("touchpoint-backup-%s.sql.gz", timestamp)
	localPath := filepath.Join(s.localBackupDir, filename)

	file, err := os.Create(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create backup file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	defer gzipWriter.Close()

	s.log.Info("starting database backup", "file", filename)
	cmd := exec.CommandContext(ctx, "pg_dump", s.databaseURL)
	cmd.Stdout = gzipWriter
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		os.Remove(localPath) // Clean up failed backup
		return nil, fmt.Errorf("pg_dump failed: %w", err)
	}

	if err := gzipWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close gzip writer: %w", err)
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat backup file: %w", err)
	}

	result := &BackupResult{
		Filename:   filename,
		FileSize:   fileInfo.Size(),
		S3Key:      fmt.Sprintf("backups/%s", filename),
		Compressed: true,
		Duration:   time.Since(start),
	}

	if s.bucket != "" {
		if err := s.uploadToS3(ctx, localPath, result.S3Key); err != nil {
			return result, fmt.Errorf("backup created locally but S3 upload failed: %w", err)
		}
		result.UploadedToS3 = true
		s.log.Info("backup uploaded to S3", "bucket", s.bucket, "key", result.S3Key)

		if err := s.cleanupOldBackups(ctx); err != nil {
			s.log.Warn("failed to cleanup old backups", "error", err)
		}
	}

	s.log.Info("backup completed",
		"file", filename, "size_bytes", result.FileSize, "duration", result.Duration.String())

	if s.audit != nil {
		_ = s.audit.RecordSystem(ctx, activitylog.ActionBackupCreated, "database backup created", map[string]interface{}{
			"file":       filename,
			"size_bytes": result.FileSize,
			"s3":         result.UploadedToS3,
		})
	}

	return result, nil
}

// uploadToS3 uploads a file to S3
func (s *Service) uploadToS3(ctx context.Context, localPath, s3Key string) error {
	file, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	_, err = s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(s3Key),
		Body:         file,
		StorageClass: types.StorageClassStandardIa, // Infrequent Access for backups
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}

	return nil
}

// cleanupOldBackups deletes backups older than retention period
func (s *Service) cleanupOldBackups(ctx context.Context) error {
	if s.retentionDays <= 0 {
		return nil // No retention policy
	}

	cutoffDate := time.Now().UTC().AddDate(0, 0, -s.retentionDays)

	result, err := s.s3Client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String("backups/"),
	})
	if err != nil {
		return fmt.Errorf("failed to list S3 objects: %w", err)
	}

	var deleted int
	for _, obj := range result.Contents {
		if obj.LastModified.Before(cutoffDate) {
			_, err := s.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
				Bucket: aws.String(s.bucket),
				Key:    obj.Key,
			})
			if err != nil {
				s.log.Warn("failed to delete old backup", "key", *obj.Key, "error", err)
				continue
			}
			deleted++
		}
	}

	if deleted > 0 {
		s.log.Info("cleaned up old backups", "deleted", deleted, "retention_days", s.retentionDays)
	}

	return nil
}

// ListBackups lists all backups in S3
func (s *Service) ListBackups(ctx context.Context) ([]BackupInfo, error) {
	if s.bucket == "" {
		return nil, fmt.Errorf("S3 bucket not configured")
	}

	result, err := s.s3Client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String("backups/"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list S3 objects: %w", err)
	}

	backups := make([]BackupInfo, 0, len(result.Contents))
	for _, obj := range result.Contents {
		backups = append(backups, BackupInfo{
			Key:          *obj.Key,
			Size:         *obj.Size,
			LastModified: *obj.LastModified,
			Age:          time.Since(*obj.LastModified),
		})
	}

	return backups, nil
}

// BackupInfo contains information about a backup
type BackupInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
	Age          time.Duration
}

// RestoreBackup downloads and restores a backup from S3
func (s *Service) RestoreBackup(ctx context.Context, s3Key string) error {
	s.log.Info("downloading backup from S3", "key", s3Key)
	result, err := s.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s3Key),
	})
	if err != nil {
		return fmt.Errorf("failed to download from S3: %w", err)
	}
	defer result.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(result.Body); err != nil {
		return fmt.Errorf("failed to read backup data: %w", err)
	}

	gzipReader, err := gzip.NewReader(&buf)
	if err != nil {
		return fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzipReader.Close()

	s.log.Info("restoring database from backup", "key", s3Key)
	cmd := exec.CommandContext(ctx, "psql", s.databaseURL)
	cmd.Stdin = gzipReader
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("psql restore failed: %w", err)
	}

	s.log.Info("database restored", "key", s3Key)
	return nil
}
