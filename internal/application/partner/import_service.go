package partner

import (
	"bytes"
	"context"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lanzy-lanzy/tailoring/internal/domain/partner"
	csvimport "github.com/lanzy-lanzy/tailoring/internal/infrastructure/import"
)

// CustomerImportService loads customer records in bulk from CSV files,
// typically when a shop migrates from a paper ledger. Imports are
// all-or-nothing: a file with any invalid row is rejected with a row
// error report and nothing is written.
type CustomerImportService struct {
	customerRepo partner.CustomerRepository
	logger       *zap.Logger
}

// NewCustomerImportService creates a new CustomerImportService
func NewCustomerImportService(customerRepo partner.CustomerRepository, logger *zap.Logger) *CustomerImportService {
	return &CustomerImportService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// ImportCustomersResult reports the outcome of a validation or import run
type ImportCustomersResult struct {
	SessionID uuid.UUID            `json:"session_id"`
	State     string               `json:"state"`
	TotalRows int                  `json:"total_rows"`
	ValidRows int                  `json:"valid_rows"`
	ErrorRows int                  `json:"error_rows"`
	Imported  int                  `json:"imported"`
	Errors    []csvimport.RowError `json:"errors,omitempty"`
	Preview   []map[string]any     `json:"preview,omitempty"`
}

func customerImportRules() []csvimport.FieldRule {
	return []csvimport.FieldRule{
		csvimport.Field("name").Required().String().MaxLength(200).Build(),
		csvimport.Field("contact_number").Required().String().MaxLength(50).Unique().Build(),
		csvimport.Field("address").String().Build(),
		csvimport.Field("email").Email().MaxLength(200).Build(),
		csvimport.Field("notes").String().Build(),
	}
}

// processor builds an import processor whose duplicate check runs
// against the customer table
func (s *CustomerImportService) processor(ctx context.Context) *csvimport.ImportProcessor {
	return csvimport.NewImportProcessor(
		csvimport.WithUniqueLookup(func(entityType, field, value string) (bool, error) {
			if field != "contact_number" {
				return false, nil
			}
			return s.customerRepo.ExistsByContactNumber(ctx, value)
		}),
	)
}

// Validate dry-runs an import and reports row errors without writing
func (s *CustomerImportService) Validate(ctx context.Context, userID uuid.UUID, fileName string, reader io.Reader) (*ImportCustomersResult, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	session := csvimport.NewImportSession(userID, csvimport.EntityCustomers, fileName, int64(len(data)))
	if _, err := s.processor(ctx).Validate(ctx, session, bytes.NewReader(data), customerImportRules()); err != nil {
		return nil, err
	}
	return toImportResult(session, 0), nil
}

// Import validates and persists a customer CSV file
func (s *CustomerImportService) Import(ctx context.Context, userID uuid.UUID, fileName string, reader io.Reader) (*ImportCustomersResult, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}

	session := csvimport.NewImportSession(userID, csvimport.EntityCustomers, fileName, int64(len(data)))
	result, err := s.processor(ctx).Validate(ctx, session, bytes.NewReader(data), customerImportRules())
	if err != nil {
		return nil, err
	}
	if !result.IsValid() {
		s.logger.Warn("Customer import rejected",
			zap.String("session_id", session.ID.String()),
			zap.String("file", fileName),
			zap.Int("error_rows", result.ErrorRows))
		return toImportResult(session, 0), nil
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

		customer, err := partner.NewCustomer(
			row.Get("name"),
			row.Get("contact_number"),
			row.Get("address"),
			row.Get("email"),
		)
		if err != nil {
			session.UpdateState(csvimport.StateFailed)
			return nil, err
		}
		if notes := row.Get("notes"); notes != "" {
			customer.SetNotes(notes)
		}

		if err := s.customerRepo.Save(ctx, customer); err != nil {
			session.UpdateState(csvimport.StateFailed)
			return nil, err
		}
		imported++
	}

	session.UpdateState(csvimport.StateCompleted)
	s.logger.Info("Customer import completed",
		zap.String("session_id", session.ID.String()),
		zap.String("file", fileName),
		zap.Int("imported", imported))

	return toImportResult(session, imported), nil
}

func toImportResult(session *csvimport.ImportSession, imported int) *ImportCustomersResult {
	return &ImportCustomersResult{
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
