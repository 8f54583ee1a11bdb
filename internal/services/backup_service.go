package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	appconfig "pg-backend/internal/config"
	"pg-backend/internal/timeutil"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jackc/pgx/v5/pgxpool"
)

const backupInterval = 24 * time.Hour

// backupTables are dumped in full on every run. Small tables, so a
// whole-table JSON dump is fine.
var backupTables = []string{"users", "rooms", "tenants", "complaints", "rent_payments"}

// BackupService periodically dumps every table as JSON and uploads the
// bundle to an S3-compatible bucket.
type BackupService struct {
	DB  *pgxpool.Pool
	Cfg *appconfig.Config

	mu     sync.Mutex
	ticker *time.Ticker
	stop   chan struct{}
}

func NewBackupService(db *pgxpool.Pool, cfg *appconfig.Config) *BackupService {
	return &BackupService{DB: db, Cfg: cfg}
}

// Start launches the daily backup scheduler. No-op when the bucket is
// not configured.
func (s *BackupService) Start() {
	if !s.Cfg.Backup.Enabled {
		log.Println("[Backup] Disabled: no bucket configured")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ticker != nil {
		return
	}
	s.ticker = time.NewTicker(backupInterval)
	s.stop = make(chan struct{})

	go func() {
		for {
			select {
			case <-s.ticker.C:
				if err := s.Run(context.Background()); err != nil {
					log.Printf("[Backup] Failed: %v", err)
				}
			case <-s.stop:
				log.Println("[Backup] Scheduler stopped")
				return
			}
		}
	}()

	log.Printf("[Backup] Scheduler started (interval: %v)", backupInterval)
}

// Stop halts the scheduler
func (s *BackupService) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ticker != nil {
		s.ticker.Stop()
		close(s.stop)
		s.ticker = nil
	}
}

// Run performs a single backup and uploads it
func (s *BackupService) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	log.Println("[Backup] Starting backup...")

	data, err := s.dump(ctx)
	if err != nil {
		return fmt.Errorf("create backup: %w", err)
	}

	client, err := s.client(ctx)
	if err != nil {
		return fmt.Errorf("configure bucket client: %w", err)
	}

	key := fmt.Sprintf("pg/pg_db_%s.json", timeutil.Now().Format("20060102_150405"))
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.Cfg.Backup.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("upload backup: %w", err)
	}

	log.Printf("[Backup] Success: %s (%d bytes)", key, len(data))
	return nil
}

func (s *BackupService) client(ctx context.Context) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.Cfg.Backup.AccessKey,
			s.Cfg.Backup.SecretKey,
			"",
		)),
		awsconfig.WithRegion(s.Cfg.Backup.Region),
	)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if s.Cfg.Backup.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.Cfg.Backup.Endpoint)
		}
	}), nil
}

// dump serializes every table into one JSON document keyed by table
// name.
func (s *BackupService) dump(ctx context.Context) ([]byte, error) {
	out := make(map[string][]map[string]interface{}, len(backupTables))
	for _, table := range backupTables {
		rows, err := s.dumpTable(ctx, table)
		if err != nil {
			return nil, err
		}
		out[table] = rows
	}
	return json.Marshal(map[string]interface{}{
		"created_at": timeutil.Now(),
		"tables":     out,
	})
}

func (s *BackupService) dumpTable(ctx context.Context, table string) ([]map[string]interface{}, error) {
	// table comes from the fixed backupTables list, never user input
	rows, err := s.DB.Query(ctx, "SELECT * FROM "+table)
	if err != nil {
		return nil, fmt.Errorf("dump %s: %w", table, err)
	}
	defer rows.Close()

	var result []map[string]interface{}
	fields := rows.FieldDescriptions()
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("dump %s: %w", table, err)
		}
		row := make(map[string]interface{}, len(fields))
		for i, fd := range fields {
			row[string(fd.Name)] = values[i]
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
