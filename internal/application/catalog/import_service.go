package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/lanzy-lanzy/tailoring/internal/domain/catalog"
	csvimport "github.com/lanzy-lanzy/tailoring/internal/infrastructure/import"
)

// GarmentTypeImportService loads the garment catalog in bulk from CSV
// files. Imports are all-or-nothing: a file with any invalid row is
// rejected with a row error report and nothing is written.
type GarmentTypeImportService struct {
	garmentTypeRepo catalog.GarmentTypeRepository
	logger          *zap.Logger
}

// NewGarmentTypeImportService creates a new GarmentTypeImportService
func NewGarmentTypeImportService(garmentTypeRepo catalog.GarmentTypeRepository, logger *zap.Logger) *GarmentTypeImportService {
	return &GarmentTypeImportService{
		garmentTypeRepo: garmentTypeRepo,
		logger:          logger,
	}
}

// ImportGarmentTypesResult reports the outcome of a validation or import run
type ImportGarmentTypesResult struct {
	SessionID uuid.UUID            `json:"session_id"`
	State     string               `json:"state"`
	TotalRows int                  `json:"total_rows"`
	ValidRows int                  `json:"valid_rows"`
	ErrorRows int                  `json:"error_rows"`
	Imported  int                  `json:"imported"`
	Errors    []csvimport.RowError `json:"errors,omitempty"`
	Preview   []map[string]any     `json:"preview,omitempty"`
}

func garmentTypeImportRules() []csvimport.FieldRule {
	return []csvimport.FieldRule{
		csvimport.Field("name").Required().String().MaxLength(100).Unique().Build(),
		csvimport.Field("description").String().Build(),
		csvimport.Field("category").Required().Custom(func(value string) error {
			if !catalog.GarmentCategory(value).IsValid() {
				return fmt.Errorf("unknown category '%s' (expected upper, lower, or both)", value)
			}
			return nil
		}).Build(),
		csvimport.Field("estimated_fabric_meters").Required().Decimal().MinValue(decimal.Zero).Build(),
		csvimport.Field("base_price").Required().Decimal().MinValue(decimal.Zero).Build(),
	}
}

// processor builds an import processor whose duplicate check runs
// against the garment type table
func (s *GarmentTypeImportService) processor(ctx context.Context) *csvimport.ImportProcessor {
	return csvimport.NewImportProcessor(
		csvimport.WithUniqueLookup(func(entityType, field, value string) (bool, error) {
			if field != "name" {
				return false, nil
			}
			return s.garmentTypeRepo.ExistsByName(ctx, value)
		}),
	)
}

// Validate dry-runs an import and reports row errors without writing
func (s *GarmentTypeImportService) Validate(ctx context.Context, userID uuid.UUID, fileName string, reader io.Reader) (*ImportGarmentTypesResult, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	session := csvimport.NewImportSession(userID, csvimport.EntityGarmentTypes, fileName, int64(len(data)))
	if _, err := s.processor(ctx).Validate(ctx, session, bytes.NewReader(data), garmentTypeImportRules()); err != nil {
		return nil, err
	}
	return toGarmentTypeImportResult(session, 0), nil
}

// Import validates and persists a garment type CSV file
func (s *GarmentTypeImportService) Import(ctx context.Context, userID uuid.UUID, fileName string, reader io.Reader) (*ImportGarmentTypesResult, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	session := csvimport.NewImportSession(userID, csvimport.EntityGarmentTypes, fileName, int64(len(data)))
	result, err := s.processor(ctx).Validate(ctx, session, bytes.NewReader(data), garmentTypeImportRules())
	if err != nil {
		return nil, err
	}
	if !result.IsValid() {
		s.logger.Warn("Garment type import rejected",
			zap.String("session_id", session.ID.String()),
			zap.String("file", fileName),
			zap.Int("error_rows", result.ErrorRows))
		return toGarmentTypeImportResult(session, 0), nil
	}

	session.UpdateState(csvimport.StateImporting)

	parser, err := csvimport.ParseFromBytes(data)
	if err != nil {
		session.UpdateState(csvimport.StateFailed)
		return nil, err
	}
	if err := parser.ParseHeader(); err != nil {
		session.UpdateState(csvimport.StateFailed)
		return nil, err
	}
	rows, err := parser.ReadAllRows()
	if err != nil {
		session.UpdateState(csvimport.StateFailed)
		return nil, err
	}

	imported := 0
	for _, row := range rows {
		if row.IsEmpty() {
			continue
		}

		meters, _ := decimal.NewFromString(row.Get("estimated_fabric_meters"))
		price, _ := decimal.NewFromString(row.Get("base_price"))

		garmentType, err := catalog.NewGarmentType(
			row.Get("name"),
			row.Get("description"),
			catalog.GarmentCategory(row.Get("category")),
			meters,
			price,
		)
		if err != nil {
			session.UpdateState(csvimport.StateFailed)
			return nil, err
		}

		if err := s.garmentTypeRepo.Save(ctx, garmentType); err != nil {
			session.UpdateState(csvimport.StateFailed)
			return nil, err
		}
		imported++
	}

	session.UpdateState(csvimport.StateCompleted)
	s.logger.Info("Garment type import completed",
		zap.String("session_id", session.ID.String()),
		zap.String("file", fileName),
		zap.Int("imported", imported))

	return toGarmentTypeImportResult(session, imported), nil
}

func toGarmentTypeImportResult(session *csvimport.ImportSession, imported int) *ImportGarmentTypesResult {
	return &ImportGarmentTypesResult{
		SessionID: session.ID,
		State:     string(session.State),
		TotalRows: session.TotalRows,
		ValidRows: session.ValidRows,
		ErrorRows: session.ErrorRows,
		Imported:  imported,
		Errors:    session.Errors,
		Preview:   session.Preview,
	}
}
