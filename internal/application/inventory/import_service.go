package inventory

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/lanzy-lanzy/tailoring/internal/domain/inventory"
	csvimport "github.com/lanzy-lanzy/tailoring/internal/infrastructure/import"
)

// StockImportService loads fabrics and accessories in bulk from CSV
// files, typically when a shop first stocks the system. Imports are
// all-or-nothing: a file with any invalid row is rejected with a row
// error report and nothing is written.
type StockImportService struct {
	fabricRepo    inventory.FabricRepository
	accessoryRepo inventory.AccessoryRepository
	logRepo       inventory.InventoryLogRepository
	logger        *zap.Logger
}

// NewStockImportService creates a new StockImportService
func NewStockImportService(
	fabricRepo inventory.FabricRepository,
	accessoryRepo inventory.AccessoryRepository,
	logRepo inventory.InventoryLogRepository,
	logger *zap.Logger,
) *StockImportService {
	return &StockImportService{
		fabricRepo:    fabricRepo,
		accessoryRepo: accessoryRepo,
		logRepo:       logRepo,
		logger:        logger,
	}
}

// ImportStockResult reports the outcome of a validation or import run
type ImportStockResult struct {
	SessionID uuid.UUID            `json:"session_id"`
	State     string               `json:"state"`
	TotalRows int                  `json:"total_rows"`
	ValidRows int                  `json:"valid_rows"`
	ErrorRows int                  `json:"error_rows"`
	Imported  int                  `json:"imported"`
	Errors    []csvimport.RowError `json:"errors,omitempty"`
	Preview   []map[string]any     `json:"preview,omitempty"`
}

func fabricImportRules() []csvimport.FieldRule {
	return []csvimport.FieldRule{
		csvimport.Field("name").Required().String().MaxLength(100).Build(),
		csvimport.Field("color").Required().String().MaxLength(50).Build(),
		csvimport.Field("stock_meters").Decimal().MinValue(decimal.Zero).Build(),
		csvimport.Field("price_per_meter").Required().Decimal().MinValue(decimal.Zero).Build(),
	}
}

func accessoryImportRules() []csvimport.FieldRule {
	return []csvimport.FieldRule{
		csvimport.Field("name").Required().String().MaxLength(100).Build(),
		csvimport.Field("unit").Required().Custom(func(value string) error {
			if !inventory.AccessoryUnit(value).IsValid() {
				return fmt.Errorf("unknown unit '%s' (expected pcs, meters, yards, rolls, or packs)", value)
			}
			return nil
		}).Build(),
		csvimport.Field("stock_quantity").Decimal().MinValue(decimal.Zero).Build(),
		csvimport.Field("price_per_unit").Required().Decimal().MinValue(decimal.Zero).Build(),
	}
}

// ValidateFabrics dry-runs a fabric import and reports row errors without writing
func (s *StockImportService) ValidateFabrics(ctx context.Context, userID uuid.UUID, fileName string, reader io.Reader) (*ImportStockResult, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	session := csvimport.NewImportSession(userID, csvimport.EntityFabrics, fileName, int64(len(data)))
	if _, err := csvimport.NewImportProcessor().Validate(ctx, session, bytes.NewReader(data), fabricImportRules()); err != nil {
		return nil, err
	}
	return toStockImportResult(session, 0), nil
}

// ImportFabrics validates and persists a fabric CSV file
func (s *StockImportService) ImportFabrics(ctx context.Context, userID uuid.UUID, fileName string, reader io.Reader) (*ImportStockResult, error) {
	return s.runImport(ctx, userID, csvimport.EntityFabrics, fileName, reader, fabricImportRules(),
		func(ctx context.Context, row *csvimport.Row, performedBy uuid.UUID) error {
			stock := decimal.Zero
			if raw := row.Get("stock_meters"); raw != "" {
				stock, _ = decimal.NewFromString(raw)
			}
			price, _ := decimal.NewFromString(row.Get("price_per_meter"))

			fabric, err := inventory.NewFabric(row.Get("name"), row.Get("color"), stock, price)
			if err != nil {
				return err
			}
			if err := s.fabricRepo.Save(ctx, fabric); err != nil {
				return err
			}
			if fabric.StockMeters.GreaterThan(decimal.Zero) {
				s.writeOpeningLog(ctx, inventory.ItemTypeFabric, fabric.ID,
					fabric.Name+" ("+fabric.Color+")", fabric.StockMeters, fileName, performedBy)
			}
			return nil
		})
}

// ValidateAccessories dry-runs an accessory import and reports row errors without writing
func (s *StockImportService) ValidateAccessories(ctx context.Context, userID uuid.UUID, fileName string, reader io.Reader) (*ImportStockResult, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	session := csvimport.NewImportSession(userID, csvimport.EntityAccessories, fileName, int64(len(data)))
	if _, err := csvimport.NewImportProcessor().Validate(ctx, session, bytes.NewReader(data), accessoryImportRules()); err != nil {
		return nil, err
	}
	return toStockImportResult(session, 0), nil
}

// ImportAccessories validates and persists an accessory CSV file
func (s *StockImportService) ImportAccessories(ctx context.Context, userID uuid.UUID, fileName string, reader io.Reader) (*ImportStockResult, error) {
	return s.runImport(ctx, userID, csvimport.EntityAccessories, fileName, reader, accessoryImportRules(),
		func(ctx context.Context, row *csvimport.Row, performedBy uuid.UUID) error {
			stock := decimal.Zero
			if raw := row.Get("stock_quantity"); raw != "" {
				stock, _ = decimal.NewFromString(raw)
			}
			price, _ := decimal.NewFromString(row.Get("price_per_unit"))

			accessory, err := inventory.NewAccessory(row.Get("name"), inventory.AccessoryUnit(row.Get("unit")), stock, price)
			if err != nil {
				return err
			}
			if err := s.accessoryRepo.Save(ctx, accessory); err != nil {
				return err
			}
			if accessory.StockQuantity.GreaterThan(decimal.Zero) {
				s.writeOpeningLog(ctx, inventory.ItemTypeAccessory, accessory.ID,
					accessory.Name, accessory.StockQuantity, fileName, performedBy)
			}
			return nil
		})
}

// runImport validates the file and, when clean, persists every row
func (s *StockImportService) runImport(
	ctx context.Context,
	userID uuid.UUID,
	entity csvimport.EntityType,
	fileName string,
	reader io.Reader,
	rules []csvimport.FieldRule,
	persistRow func(ctx context.Context, row *csvimport.Row, performedBy uuid.UUID) error,
) (*ImportStockResult, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	session := csvimport.NewImportSession(userID, entity, fileName, int64(len(data)))
	result, err := csvimport.NewImportProcessor().Validate(ctx, session, bytes.NewReader(data), rules)
	if err != nil {
		return nil, err
	}
	if !result.IsValid() {
		s.logger.Warn("Stock import rejected",
			zap.String("session_id", session.ID.String()),
			zap.String("entity", string(entity)),
			zap.String("file", fileName),
			zap.Int("error_rows", result.ErrorRows))
		return toStockImportResult(session, 0), nil
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
		if err := persistRow(ctx, row, userID); err != nil {
			session.UpdateState(csvimport.StateFailed)
			return nil, err
		}
		imported++
	}

	session.UpdateState(csvimport.StateCompleted)
	s.logger.Info("Stock import completed",
		zap.String("session_id", session.ID.String()),
		zap.String("entity", string(entity)),
		zap.String("file", fileName),
		zap.Int("imported", imported))

	return toStockImportResult(session, imported), nil
}

func (s *StockImportService) writeOpeningLog(ctx context.Context, itemType inventory.ItemType, itemID uuid.UUID, itemName string, quantity decimal.Decimal, fileName string, performedBy uuid.UUID) {
	log, err := inventory.NewInventoryLog(itemType, itemID, itemName,
		inventory.LogActionAdd, quantity, decimal.Zero, quantity)
	if err != nil {
		return
	}
	log.WithNotes("Opening stock from " + fileName)
	if performedBy != uuid.Nil {
		log.By(performedBy)
	}
	// The audit trail must not fail the import itself
	_ = s.logRepo.Save(ctx, log)
}

func toStockImportResult(session *csvimport.ImportSession, imported int) *ImportStockResult {
	return &ImportStockResult{
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
