package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gwssd/medical_bills_app/internal/apperrors"
	"github.com/gwssd/medical_bills_app/internal/core/domain"
	portsrepo "github.com/gwssd/medical_bills_app/internal/core/ports/repositories"
	"github.com/gwssd/medical_bills_app/internal/models"
	"github.com/gwssd/medical_bills_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBillRepository struct {
	BaseRepository
}

func newPgxBillRepository(pool *pgxpool.Pool) portsrepo.BillRepositoryFacade {
	return &PgxBillRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BillRepositoryFacade = (*PgxBillRepository)(nil)

const billColumns = `bill_id, bill_number, receipt_date, employee_id, employee_name,
		dependent_name, relationship, treatment_period_from, treatment_period_to,
		amount_claimed, hospital, current_status, status_history,
		latest_reference_number, latest_approved_amount, created_at, updated_at`

// billUpdateColumns whitelists the columns the generic partial update may
// touch. Status fields and the history only change through AppendBillStatus.
var billUpdateColumns = []string{
	"bill_number", "receipt_date", "employee_id", "employee_name", "dependent_name",
	"relationship", "treatment_period_from", "treatment_period_to", "amount_claimed",
	"hospital",
}

func scanBill(row pgx.Row) (models.Bill, error) {
	var m models.Bill
	err := row.Scan(
		&m.BillID,
		&m.BillNumber,
		&m.ReceiptDate,
		&m.EmployeeID,
		&m.EmployeeName,
		&m.DependentName,
		&m.Relationship,
		&m.TreatmentPeriodFrom,
		&m.TreatmentPeriodTo,
		&m.AmountClaimed,
		&m.Hospital,
		&m.CurrentStatus,
		&m.StatusHistory,
		&m.LatestReferenceNumber,
		&m.LatestApprovedAmount,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *PgxBillRepository) SaveBill(ctx context.Context, bill domain.Bill) error {
	m := mapping.ToModelBill(bill)
	query := `
		INSERT INTO bills (` + billColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BillID,
		m.BillNumber,
		m.ReceiptDate,
		m.EmployeeID,
		m.EmployeeName,
		m.DependentName,
		m.Relationship,
		m.TreatmentPeriodFrom,
		m.TreatmentPeriodTo,
		m.AmountClaimed,
		m.Hospital,
		m.CurrentStatus,
		m.StatusHistory,
		m.LatestReferenceNumber,
		m.LatestApprovedAmount,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("bill number %s: %w", m.BillNumber, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save bill: %w", err)
	}
	return nil
}

func (r *PgxBillRepository) FindBillByID(ctx context.Context, billID string) (*domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE bill_id = $1;`
	m, err := scanBill(r.Pool.QueryRow(ctx, query, billID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bill %s: %w", billID, err)
	}
	bill := mapping.ToDomainBill(m)
	return &bill, nil
}

func (r *PgxBillRepository) FindBillByNumber(ctx context.Context, billNumber string) (*domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE bill_number = $1;`
	m, err := scanBill(r.Pool.QueryRow(ctx, query, billNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bill by number %s: %w", billNumber, err)
	}
	bill := mapping.ToDomainBill(m)
	return &bill, nil
}

func (r *PgxBillRepository) FindBills(ctx context.Context) ([]domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills ORDER BY created_at DESC;`
	return r.queryBills(ctx, query)
}

func (r *PgxBillRepository) FindBillsByEmployee(ctx context.Context, employeeID string) ([]domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE employee_id = $1 ORDER BY created_at DESC;`
	return r.queryBills(ctx, query, employeeID)
}

func (r *PgxBillRepository) FindBillsByStatus(ctx context.Context, status string) ([]domain.Bill, error) {
	query := `SELECT ` + billColumns + ` FROM bills WHERE current_status = $1 ORDER BY updated_at DESC;`
	return r.queryBills(ctx, query, status)
}

// FilterBills builds a conjunctive WHERE clause from the present criteria
// only; absent criteria do not constrain the query at all.
func (r *PgxBillRepository) FilterBills(ctx context.Context, filter domain.BillFilter) ([]domain.Bill, error) {
	conds := []string{}
	args := []any{}

	substring := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, value)
		conds = append(conds, fmt.Sprintf("%s ILIKE '%%' || $%d || '%%'", column, len(args)))
	}
	substring("bill_number", filter.BillNumber)
	substring("employee_id", filter.EmployeeID)
	substring("employee_name", filter.EmployeeName)

	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("current_status = $%d", len(args)))
	}

	if filter.ReferenceNumber != "" {
		if filter.ReferenceStatus != "" {
			args = append(args, filter.ReferenceStatus, filter.ReferenceNumber)
			conds = append(conds, fmt.Sprintf(
				`EXISTS (
					SELECT 1 FROM jsonb_array_elements(status_history) AS entry
					WHERE entry->>'status' = $%d
					AND entry->>'reference_number' ILIKE '%%' || $%d || '%%'
				)`, len(args)-1, len(args)))
		} else {
			args = append(args, filter.ReferenceNumber)
			conds = append(conds, fmt.Sprintf(
				`EXISTS (
					SELECT 1 FROM jsonb_array_elements(status_history) AS entry
					WHERE entry->>'reference_number' ILIKE '%%' || $%d || '%%'
				)`, len(args)))
		}
	}

	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		conds = append(conds, fmt.Sprintf("receipt_date >= $%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		conds = append(conds, fmt.Sprintf("receipt_date <= $%d", len(args)))
	}

	if filter.AmountFrom != nil {
		args = append(args, *filter.AmountFrom)
		conds = append(conds, fmt.Sprintf("amount_claimed >= $%d", len(args)))
	}
	if filter.AmountTo != nil {
		args = append(args, *filter.AmountTo)
		conds = append(conds, fmt.Sprintf("amount_claimed <= $%d", len(args)))
	}

	if filter.Hospital != "" {
		args = append(args, filter.Hospital)
		conds = append(conds, fmt.Sprintf("hospital = $%d", len(args)))
	}

	query := `SELECT ` + billColumns + ` FROM bills`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY updated_at DESC;"

	return r.queryBills(ctx, query, args...)
}

func (r *PgxBillRepository) queryBills(ctx context.Context, query string, args ...any) ([]domain.Bill, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bills: %w", err)
	}
	defer rows.Close()

	ms := []models.Bill{}
	for rows.Next() {
		m, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating bill rows: %w", rows.Err())
	}
	return mapping.ToDomainBillSlice(ms), nil
}

func (r *PgxBillRepository) UpdateBillFields(ctx context.Context, billID string, fields map[string]any, updatedAt time.Time) error {
	setClauses := make([]string, 0, len(fields)+1)
	args := make([]any, 0, len(fields)+2)
	for _, column := range billUpdateColumns {
		value, ok := fields[column]
		if !ok {
			continue
		}
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	args = append(args, updatedAt)
	setClauses = append(setClauses, fmt.Sprintf("updated_at = $%d", len(args)))
	args = append(args, billID)

	query := fmt.Sprintf(`UPDATE bills SET %s WHERE bill_id = $%d;`,
		strings.Join(setClauses, ", "), len(args))

	cmdTag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("bill number already taken: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update bill %s: %w", billID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("bill %s: %w", billID, apperrors.ErrNotFound)
	}
	return nil
}

// AppendBillStatus moves the bill's current status and appends the update to
// its history in one row update, so the two mutations apply together or not
// at all.
func (r *PgxBillRepository) AppendBillStatus(ctx context.Context, billID string, update domain.StatusUpdate, updatedAt time.Time) error {
	entry, err := json.Marshal(mapping.ToModelStatusUpdate(update))
	if err != nil {
		return fmt.Errorf("failed to encode status update: %w", err)
	}

	query := `
		UPDATE bills
		SET current_status = $1,
			updated_at = $2,
			latest_reference_number = $3,
			latest_approved_amount = $4,
			status_history = status_history || $5::jsonb
		WHERE bill_id = $6;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		update.Status,
		updatedAt,
		update.ReferenceNumber,
		update.ApprovedAmount,
		entry,
		billID,
	)
	if err != nil {
		return fmt.Errorf("failed to update status of bill %s: %w", billID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("bill %s: %w", billID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxBillRepository) DeleteBill(ctx context.Context, billID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM bills WHERE bill_id = $1;`, billID)
	if err != nil {
		return fmt.Errorf("failed to delete bill %s: %w", billID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("bill %s: %w", billID, apperrors.ErrNotFound)
	}
	return nil
}
