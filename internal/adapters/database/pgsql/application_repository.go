package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/EstateDesk/estate_management_app/internal/apperrors"
	"github.com/EstateDesk/estate_management_app/internal/core/domain"
	portsrepo "github.com/EstateDesk/estate_management_app/internal/core/ports/repositories"
)

type ApplicationRepository struct {
	db *pgxpool.Pool
}

func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Ensure ApplicationRepository implements the facade
var _ portsrepo.ApplicationRepositoryFacade = (*ApplicationRepository)(nil)

const applicationColumns = `
    application_id, customer_id, property_id, COALESCE(reviewed_by, ''), full_name,
    email, phone, COALESCE(national_id, ''), employer_name, employment_status,
    annual_income, employment_proof_ref, government_id_ref, address_proof_ref,
    bank_statement_ref, status, version, created_at, last_updated_at
`

func scanApplication(row pgx.Row) (*domain.Application, error) {
	var a domain.Application
	err := row.Scan(
		&a.ApplicationID,
		&a.CustomerID,
		&a.PropertyID,
		&a.ReviewedBy,
		&a.FullName,
		&a.Email,
		&a.Phone,
		&a.NationalID,
		&a.EmployerName,
		&a.EmploymentStatus,
		&a.AnnualIncome,
		&a.Documents.EmploymentProof,
		&a.Documents.GovernmentID,
		&a.Documents.AddressProof,
		&a.Documents.BankStatement,
		&a.Status,
		&a.Version,
		&a.CreatedAt,
		&a.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *ApplicationRepository) FindApplicationByID(ctx context.Context, applicationID string) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE application_id = $1;`
	application, err := scanApplication(r.db.QueryRow(ctx, query, applicationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find application by ID %s: %w", applicationID, err)
	}
	return application, nil
}

func (r *ApplicationRepository) HasActiveApplication(ctx context.Context, customerID, propertyID string) (bool, error) {
	query := `
        SELECT EXISTS (
            SELECT 1 FROM applications
            WHERE customer_id = $1 AND property_id = $2 AND status IN ('pending', 'approved')
        );
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, customerID, propertyID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check active application: %w", err)
	}
	return exists, nil
}

func (r *ApplicationRepository) listApplications(ctx context.Context, query string, args ...any) ([]domain.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query applications: %w", err)
	}
	defer rows.Close()

	applications := []domain.Application{}
	for rows.Next() {
		application, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan application row: %w", err)
		}
		applications = append(applications, *application)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating application rows: %w", rows.Err())
	}
	return applications, nil
}

func (r *ApplicationRepository) ListApplicationsByCustomer(ctx context.Context, customerID string) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE customer_id = $1 ORDER BY created_at DESC;`
	return r.listApplications(ctx, query, customerID)
}

func (r *ApplicationRepository) ListApplicationsByProperty(ctx context.Context, propertyID string) ([]domain.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE property_id = $1 ORDER BY created_at DESC;`
	return r.listApplications(ctx, query, propertyID)
}

func (r *ApplicationRepository) ListApplicationsByRealtor(ctx context.Context, realtorID string) ([]domain.Application, error) {
	query := `
        SELECT ` + applicationColumns + `
        FROM applications a
        WHERE EXISTS (
            SELECT 1 FROM properties p
            WHERE p.property_id = a.property_id AND p.realtor_id = $1
        )
        ORDER BY a.created_at DESC;
    `
	return r.listApplications(ctx, query, realtorID)
}

func (r *ApplicationRepository) SaveApplication(ctx context.Context, application domain.Application) error {
	query := `
        INSERT INTO applications (
            application_id, customer_id, property_id, full_name, email, phone,
            national_id, employer_name, employment_status, annual_income,
            employment_proof_ref, government_id_ref, address_proof_ref,
            bank_statement_ref, status, version, created_at, last_updated_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
    `
	_, err := r.db.Exec(ctx, query,
		application.ApplicationID,
		application.CustomerID,
		application.PropertyID,
		application.FullName,
		application.Email,
		application.Phone,
		application.NationalID,
		application.EmployerName,
		application.EmploymentStatus,
		application.AnnualIncome,
		application.Documents.EmploymentProof,
		application.Documents.GovernmentID,
		application.Documents.AddressProof,
		application.Documents.BankStatement,
		application.Status,
		application.Version,
		application.CreatedAt,
		application.LastUpdatedAt,
	)
	if err != nil {
		// The partial unique index on (customer_id, property_id) for active
		// applications is the backstop for concurrent double submissions.
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicateApplication
		}
		return fmt.Errorf("failed to save application: %w", err)
	}
	return nil
}

func (r *ApplicationRepository) UpdateApplicationStatus(ctx context.Context, applicationID string, status domain.ApplicationStatus, reviewedBy string, expectedVersion int64) error {
	query := `
        UPDATE applications
        SET status = $1,
            reviewed_by = COALESCE(NULLIF($2, ''), reviewed_by),
            version = version + 1,
            last_updated_at = now()
        WHERE application_id = $3 AND version = $4;
    `
	cmdTag, err := r.db.Exec(ctx, query, status, reviewedBy, applicationID, expectedVersion)
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}
