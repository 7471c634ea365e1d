package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jordanlanch/touchpoint/ent"
	"github.com/jordanlanch/touchpoint/ent/activitylog"
	"github.com/jordanlanch/touchpoint/ent/predicate"
	"github.com/jordanlanch/touchpoint/ent/touch"
	"github.com/jordanlanch/touchpoint/pkg/audit"
	"github.com/jordanlanch/touchpoint/pkg/domain"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const maxRows = 10000

// Service generates touch-history files for handoff outside the tool
// (a manager review, a CRM import, a spreadsheet person).
type Service struct {
	db          *ent.Client
	audit       *audit.Service
	storagePath string
	titler      cases.Caser
}

// NewService creates a new export service
func NewService(db *ent.Client, auditSvc *audit.Service, storagePath string) *Service {
	// Ensure storage directory exists
	os.MkdirAll(storagePath, 0755)

	return &Service{
		db:          db,
		audit:       auditSvc,
		storagePath: storagePath,
		titler:      cases.Title(language.English),
	}
}

// Request narrows which touches end up in the file. Zero values mean "all".
type Request struct {
	Format         string     `json:"format" validate:"required,oneof=csv excel"`
	SubscriptionID int        `json:"subscription_id,omitempty" validate:"omitempty,min=1"`
	AssigneeID     int        `json:"assignee_id,omitempty" validate:"omitempty,min=1"`
	Status         string     `json:"status,omitempty" validate:"omitempty,oneof=pending completed skipped"`
	From           *time.Time `json:"from,omitempty"`
	To             *time.Time `json:"to,omitempty"`
}

// Result describes the generated file.
type Result struct {
	FileName  string    `json:"file_name"`
	FilePath  string    `json:"file_path"`
	Format    string    `json:"format"`
	Rows      int       `json:"rows"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateExport generates a touch-history file and returns where it landed.
func (s *Service) CreateExport(ctx context.Context, actorID int, req Request) (*Result, error) {
	if req.Format != "csv" && req.Format != "excel" {
		return nil, domain.NewValidationError("invalid format: must be csv or excel")
	}

	preds := []predicate.Touch{}
	if req.SubscriptionID > 0 {
		preds = append(preds, touch.SubscriptionID(req.SubscriptionID))
	}
	if req.AssigneeID > 0 {
		preds = append(preds, touch.AssignedTo(req.AssigneeID))
	}
	if req.Status != "" {
		preds = append(preds, touch.StatusEQ(touch.Status(req.Status)))
	}
	if req.From != nil {
		preds = append(preds, touch.ScheduledDateGTE(*req.From))
	}
	if req.To != nil {
		preds = append(preds, touch.ScheduledDateLTE(*req.To))
	}

	touches, err := s.db.Touch.Query().
		Where(preds...).
		WithSubscription().
		Order(ent.Asc(touch.FieldScheduledDate), ent.Asc(touch.FieldID)).
		Limit(maxRows).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query touches: %w", err)
	}

	ext := "csv"
	if req.Format == "excel" {
		ext = "xlsx"
	}
	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("touches-%s.%s", timestamp, ext)
	path := filepath.Join(s.storagePath, filename)

	if req.Format == "csv" {
		err = s.generateCSV(path, touches)
	} else {
		err = s.generateExcel(path, touches)
	}
	if err != nil {
		return nil, err
	}

	if s.audit != nil {
		_ = s.audit.Record(ctx, audit.Entry{
			ActorID:      actorPtr(actorID),
			Action:       activitylog.ActionExportCreated,
			ResourceType: "export",
			Severity:     activitylog.SeverityInfo,
			Metadata: map[string]interface{}{
				"format": req.Format,
				"rows":   len(touches),
				"file":   filename,
			},
		})
	}

	return &Result{
		FileName:  filename,
		FilePath:  path,
		Format:    req.Format,
		Rows:      len(touches),
		CreatedAt: time.Now(),
	}, nil
}

var exportHeaders = []string{
	"ID", "Entity Type", "Entity", "Phone", "Cycle", "Step", "Method",
	"Scheduled Date", "Scheduled Time", "Assigned To", "Status",
	"Outcome", "Notes", "Resolved At",
}

// row flattens one touch plus its subscription snapshot into export cells.
func (s *Service) row(t *ent.Touch) []string {
	entityType, entityName, phone := "", "", ""
	if sub := t.Edges.Subscription; sub != nil {
		entityType = s.titler.String(string(sub.EntityType))
		entityName = sub.EntityName
		phone = sub.EntityPhone
	}

	resolvedAt := ""
	if t.ResolvedAt != nil {
		resolvedAt = t.ResolvedAt.Format("2006-01-02 15:04")
	}

	return []string{
		strconv.Itoa(t.ID),
		entityType,
		entityName,
		phone,
		strconv.Itoa(t.Cycle),
		strconv.Itoa(t.SequenceIndex + 1),
		s.titler.String(string(t.Method)),
		t.ScheduledDate.Format("2006-01-02"),
		t.ScheduledTime,
		strconv.Itoa(t.AssignedTo),
		s.titler.String(string(t.Status)),
		t.Outcome,
		t.OutcomeNotes,
		resolvedAt,
	}
}

// generateCSV generates a CSV file from touches
func (s *Service) generateCSV(path string, touches []*ent.Touch) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(exportHeaders); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, t := range touches {
		if err := writer.Write(s.row(t)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	return nil
}

// generateExcel generates an Excel file from touches
func (s *Service) generateExcel(path string, touches []*ent.Touch) error {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Touches"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, t := range touches {
		row := rowIdx + 2 // Start from row 2 (after header)
		for colIdx, value := range s.row(t) {
			cell := fmt.Sprintf("%c%d", 'A'+colIdx, row)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range exportHeaders {
		col := string(rune('A' + i))
		f.SetColWidth(sheetName, col, col, 16)
	}

	f.SetActiveSheet(index)

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}

	return nil
}

// FilePath resolves a previously generated file name inside the storage
// directory. Names carrying path separators are rejected.
func (s *Service) FilePath(name string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", domain.NewValidationError("invalid file name")
	}
	path := filepath.Join(s.storagePath, name)
	if _, err := os.Stat(path); err != nil {
		return "", domain.NewNotFoundError("export file")
	}
	return path, nil
}

func actorPtr(actorID int) *int {
	if actorID <= 0 {
		return nil
	}
	return &actorID
}
