package pgsql

import (
	"context"
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

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

const employeeColumns = `id, employee_id, name, father_name, designation, status, sub_division,
		phone, bank_account, bank_name, bank_branch, retirement_date, life_status, death_date,
		dependents, created_at, updated_at`

// employeeUpdateColumns whitelists the columns a partial update may touch.
// The storage id and business key are never updatable through this path.
var employeeUpdateColumns = []string{
	"name", "father_name", "designation", "status", "sub_division", "phone",
	"bank_account", "bank_name", "bank_branch", "retirement_date", "life_status",
	"death_date", "dependents",
}

func scanEmployee(row pgx.Row) (models.Employee, error) {
	var m models.Employee
	err := row.Scan(
		&m.ID,
		&m.EmployeeID,
		&m.Name,
		&m.FatherName,
		&m.Designation,
		&m.Status,
		&m.SubDivision,
		&m.Phone,
		&m.BankAccount,
		&m.BankName,
		&m.BankBranch,
		&m.RetirementDate,
		&m.LifeStatus,
		&m.DeathDate,
		&m.Dependents,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ID,
		m.EmployeeID,
		m.Name,
		m.FatherName,
		m.Designation,
		m.Status,
		m.SubDivision,
		m.Phone,
		m.BankAccount,
		m.BankName,
		m.BankBranch,
		m.RetirementDate,
		m.LifeStatus,
		m.DeathDate,
		m.Dependents,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("employee ID %s: %w", m.EmployeeID, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save employee: %w", err)
	}
	return nil
}

func (r *PgxEmployeeRepository) FindEmployeeByEmployeeID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1;`
	m, err := scanEmployee(r.Pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee %s: %w", employeeID, err)
	}
	employee := mapping.ToDomainEmployee(m)
	return &employee, nil
}

func (r *PgxEmployeeRepository) FindEmployees(ctx context.Context) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY name ASC;`
	return r.queryEmployees(ctx, query)
}

func (r *PgxEmployeeRepository) SearchEmployeesByName(ctx context.Context, name string) ([]domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees
		WHERE name ILIKE '%' || $1 || '%'
		ORDER BY name ASC;`
	return r.queryEmployees(ctx, query, name)
}

func (r *PgxEmployeeRepository) queryEmployees(ctx context.Context, query string, args ...any) ([]domain.Employee, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	defer rows.Close()

	ms := []models.Employee{}
	for rows.Next() {
		m, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee row: %w", err)
		}
		ms = append(ms, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating employee rows: %w", rows.Err())
	}
	return mapping.ToDomainEmployeeSlice(ms), nil
}

func (r *PgxEmployeeRepository) UpdateEmployeeFields(ctx context.Context, employeeID string, fields map[string]any, updatedAt time.Time) error {
	setClauses := make([]string, 0, len(fields)+1)
	args := make([]any, 0, len(fields)+2)
	for _, column := range employeeUpdateColumns {
		value, ok := fields[column]
		if !ok {
			continue
		}
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	args = append(args, updatedAt)
	setClauses = append(setClauses, fmt.Sprintf("updated_at = $%d", len(args)))
	args = append(args, employeeID)

	query := fmt.Sprintf(`UPDATE employees SET %s WHERE employee_id = $%d;`,
		strings.Join(setClauses, ", "), len(args))

	cmdTag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee %s: %w", employeeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("employee %s: %w", employeeID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1;`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", employeeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("employee %s: %w", employeeID, apperrors.ErrNotFound)
	}
	return nil
}
