package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/EstateDesk/estate_management_app/internal/apperrors"
	"github.com/EstateDesk/estate_management_app/internal/core/domain"
	portsrepo "github.com/EstateDesk/estate_management_app/internal/core/ports/repositories"
)

// uniqueViolation is the Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

type AccountRepository struct {
	db *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

// Ensure AccountRepository implements the facade
var _ portsrepo.AccountRepositoryFacade = (*AccountRepository)(nil)

// --- Admins ---

func (r *AccountRepository) FindAdminByAdminID(ctx context.Context, adminID string) (*domain.Admin, error) {
	query := `
        SELECT id, admin_id, password_hash, name, created_at, last_updated_at
        FROM admins
        WHERE admin_id = $1;
    `
	var admin domain.Admin
	err := r.db.QueryRow(ctx, query, adminID).Scan(
		&admin.AdminRecordID,
		&admin.AdminID,
		&admin.PasswordHash,
		&admin.Name,
		&admin.CreatedAt,
		&admin.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find admin: %w", err)
	}
	return &admin, nil
}

// --- Owners ---

func (r *AccountRepository) SaveOwner(ctx context.Context, owner domain.Owner) error {
	query := `
        INSERT INTO owners (
            owner_id, email, password_hash, name, phone, dob, occupation,
            annual_income, address, national_id, approval_status, version,
            created_at, last_updated_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULLIF($10, ''), $11, $12, $13, $14);
    `
	_, err := r.db.Exec(ctx, query,
		owner.OwnerID,
		owner.Email,
		owner.PasswordHash,
		owner.Name,
		owner.Phone,
		owner.DateOfBirth,
		owner.Occupation,
		owner.AnnualIncome,
		owner.Address,
		owner.NationalID,
		owner.Status,
		owner.Version,
		owner.CreatedAt,
		owner.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save owner: %w", err)
	}
	return nil
}

const ownerColumns = `
    owner_id, email, password_hash, name, phone, dob, occupation,
    annual_income, address, COALESCE(national_id, ''), approval_status, version,
    created_at, last_updated_at
`

func scanOwner(row pgx.Row) (*domain.Owner, error) {
	var o domain.Owner
	err := row.Scan(
		&o.OwnerID,
		&o.Email,
		&o.PasswordHash,
		&o.Name,
		&o.Phone,
		&o.DateOfBirth,
		&o.Occupation,
		&o.AnnualIncome,
		&o.Address,
		&o.NationalID,
		&o.Status,
		&o.Version,
		&o.CreatedAt,
		&o.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *AccountRepository) FindOwnerByID(ctx context.Context, ownerID string) (*domain.Owner, error) {
	query := `SELECT ` + ownerColumns + ` FROM owners WHERE owner_id = $1;`
	owner, err := scanOwner(r.db.QueryRow(ctx, query, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find owner by ID %s: %w", ownerID, err)
	}

	// Load the listed-properties set maintained by the listing ledger.
	rows, err := r.db.Query(ctx, `SELECT property_id FROM owner_properties WHERE owner_id = $1 ORDER BY created_at;`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load owner's listed properties: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var propertyID string
		if err := rows.Scan(&propertyID); err != nil {
			return nil, fmt.Errorf("failed to scan listed property id: %w", err)
		}
		owner.ListedPropertyIDs = append(owner.ListedPropertyIDs, propertyID)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating listed property rows: %w", rows.Err())
	}

	return owner, nil
}

func (r *AccountRepository) FindOwnerByEmail(ctx context.Context, email string) (*domain.Owner, error) {
	query := `SELECT ` + ownerColumns + ` FROM owners WHERE email = $1;`
	owner, err := scanOwner(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find owner by email: %w", err)
	}
	return owner, nil
}

func (r *AccountRepository) ListOwners(ctx context.Context, status *domain.ApprovalStatus) ([]domain.Owner, error) {
	query := `SELECT ` + ownerColumns + ` FROM owners`
	args := []any{}
	if status != nil {
		query += ` WHERE approval_status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query owners: %w", err)
	}
	defer rows.Close()

	owners := []domain.Owner{}
	for rows.Next() {
		owner, err := scanOwner(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan owner row: %w", err)
		}
		owners = append(owners, *owner)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating owner rows: %w", rows.Err())
	}
	return owners, nil
}

func (r *AccountRepository) UpdateOwnerStatus(ctx context.Context, ownerID string, status domain.ApprovalStatus, expectedVersion int64) error {
	query := `
        UPDATE owners
        SET approval_status = $1, version = version + 1, last_updated_at = now()
        WHERE owner_id = $2 AND version = $3;
    `
	cmdTag, err := r.db.Exec(ctx, query, status, ownerID, expectedVersion)
	if err != nil {
		return fmt.Errorf("failed to update owner status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}

func (r *AccountRepository) DeleteOwner(ctx context.Context, ownerID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM owners WHERE owner_id = $1;`, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete owner: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// --- Realtors ---

func (r *AccountRepository) SaveRealtor(ctx context.Context, realtor domain.Realtor) error {
	query := `
        INSERT INTO realtors (
            realtor_id, email, password_hash, name, phone, approval_status,
            version, created_at, last_updated_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		realtor.RealtorID,
		realtor.Email,
		realtor.PasswordHash,
		realtor.Name,
		realtor.Phone,
		realtor.Status,
		realtor.Version,
		realtor.CreatedAt,
		realtor.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save realtor: %w", err)
	}
	return nil
}

const realtorColumns = `
    realtor_id, email, password_hash, name, phone, approval_status, version,
    created_at, last_updated_at
`

func scanRealtor(row pgx.Row) (*domain.Realtor, error) {
	var rl domain.Realtor
	err := row.Scan(
		&rl.RealtorID,
		&rl.Email,
		&rl.PasswordHash,
		&rl.Name,
		&rl.Phone,
		&rl.Status,
		&rl.Version,
		&rl.CreatedAt,
		&rl.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rl, nil
}

func (r *AccountRepository) FindRealtorByID(ctx context.Context, realtorID string) (*domain.Realtor, error) {
	query := `SELECT ` + realtorColumns + ` FROM realtors WHERE realtor_id = $1;`
	realtor, err := scanRealtor(r.db.QueryRow(ctx, query, realtorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find realtor by ID %s: %w", realtorID, err)
	}
	return realtor, nil
}

func (r *AccountRepository) FindRealtorByEmail(ctx context.Context, email string) (*domain.Realtor, error) {
	query := `SELECT ` + realtorColumns + ` FROM realtors WHERE email = $1;`
	realtor, err := scanRealtor(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find realtor by email: %w", err)
	}
	return realtor, nil
}

func (r *AccountRepository) ListRealtors(ctx context.Context, status *domain.ApprovalStatus) ([]domain.Realtor, error) {
	query := `SELECT ` + realtorColumns + ` FROM realtors`
	args := []any{}
	if status != nil {
		query += ` WHERE approval_status = $1`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC;`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query realtors: %w", err)
	}
	defer rows.Close()

	realtors := []domain.Realtor{}
	for rows.Next() {
		realtor, err := scanRealtor(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan realtor row: %w", err)
		}
		realtors = append(realtors, *realtor)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating realtor rows: %w", rows.Err())
	}
	return realtors, nil
}

func (r *AccountRepository) ListRealtorCustomers(ctx context.Context, realtorID string) ([]domain.Customer, error) {
	query := `
        SELECT c.customer_id, c.email, c.password_hash, c.name, c.phone, c.auth_provider,
               c.dob, c.occupation, c.annual_income, c.address, COALESCE(c.national_id, ''),
               c.created_at, c.last_updated_at
        FROM customers c
        JOIN realtor_customers rc ON rc.customer_id = c.customer_id
        WHERE rc.realtor_id = $1
        ORDER BY c.created_at DESC;
    `
	rows, err := r.db.Query(ctx, query, realtorID)
	if err != nil {
		return nil, fmt.Errorf("failed to query realtor customers: %w", err)
	}
	defer rows.Close()

	customers := []domain.Customer{}
	for rows.Next() {
		customer, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, *customer)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", rows.Err())
	}
	return customers, nil
}

func (r *AccountRepository) UpdateRealtorStatus(ctx context.Context, realtorID string, status domain.ApprovalStatus, expectedVersion int64) error {
	query := `
        UPDATE realtors
        SET approval_status = $1, version = version + 1, last_updated_at = now()
        WHERE realtor_id = $2 AND version = $3;
    `
	cmdTag, err := r.db.Exec(ctx, query, status, realtorID, expectedVersion)
	if err != nil {
		return fmt.Errorf("failed to update realtor status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}

func (r *AccountRepository) DeleteRealtor(ctx context.Context, realtorID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM realtors WHERE realtor_id = $1;`, realtorID)
	if err != nil {
		return fmt.Errorf("failed to delete realtor: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *AccountRepository) AddRealtorCustomer(ctx context.Context, realtorID, customerID string) error {
	query := `
        INSERT INTO realtor_customers (realtor_id, customer_id)
        VALUES ($1, $2)
        ON CONFLICT DO NOTHING;
    `
	_, err := r.db.Exec(ctx, query, realtorID, customerID)
	if err != nil {
		return fmt.Errorf("failed to add realtor customer: %w", err)
	}
	return nil
}

// --- Customers ---

func (r *AccountRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	query := `
        INSERT INTO customers (
            customer_id, email, password_hash, name, phone, auth_provider,
            dob, occupation, annual_income, address, national_id,
            created_at, last_updated_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, ''), $12, $13);
    `
	_, err := r.db.Exec(ctx, query,
		customer.CustomerID,
		customer.Email,
		customer.PasswordHash,
		customer.Name,
		customer.Phone,
		customer.AuthProvider,
		customer.DateOfBirth,
		customer.Occupation,
		customer.AnnualIncome,
		customer.Address,
		customer.NationalID,
		customer.CreatedAt,
		customer.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save customer: %w", err)
	}
	return nil
}

func scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(
		&c.CustomerID,
		&c.Email,
		&c.PasswordHash,
		&c.Name,
		&c.Phone,
		&c.AuthProvider,
		&c.DateOfBirth,
		&c.Occupation,
		&c.AnnualIncome,
		&c.Address,
		&c.NationalID,
		&c.CreatedAt,
		&c.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

const customerColumns = `
    customer_id, email, password_hash, name, phone, auth_provider,
    dob, occupation, annual_income, address, COALESCE(national_id, ''),
    created_at, last_updated_at
`

func (r *AccountRepository) FindCustomerByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE customer_id = $1;`
	customer, err := scanCustomer(r.db.QueryRow(ctx, query, customerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer by ID %s: %w", customerID, err)
	}
	return customer, nil
}

func (r *AccountRepository) FindCustomerByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE email = $1;`
	customer, err := scanCustomer(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer by email: %w", err)
	}
	return customer, nil
}

// --- Stats ---

func (r *AccountRepository) GetApprovalStats(ctx context.Context) (*domain.ApprovalStats, error) {
	query := `
        SELECT
            (SELECT count(*) FROM owners),
            (SELECT count(*) FROM realtors),
            (SELECT count(*) FROM owners WHERE approval_status = 'pending')
                + (SELECT count(*) FROM realtors WHERE approval_status = 'pending');
    `
	var stats domain.ApprovalStats
	err := r.db.QueryRow(ctx, query).Scan(&stats.TotalOwners, &stats.TotalRealtors, &stats.PendingApprovals)
	if err != nil {
		return nil, fmt.Errorf("failed to query approval stats: %w", err)
	}
	return &stats, nil
}
