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

type PropertyRepository struct {
	db *pgxpool.Pool
}

func NewPropertyRepository(db *pgxpool.Pool) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// Ensure PropertyRepository implements the facade
var _ portsrepo.PropertyRepositoryFacade = (*PropertyRepository)(nil)

const propertyColumns = `
    property_id, name, type, status, price, area, bedrooms, location,
    image_refs, owner_id, COALESCE(realtor_id, ''), version, created_at, last_updated_at
`

func scanProperty(row pgx.Row) (*domain.Property, error) {
	var p domain.Property
	err := row.Scan(
		&p.PropertyID,
		&p.Name,
		&p.Type,
		&p.Status,
		&p.Price,
		&p.Area,
		&p.Bedrooms,
		&p.Location,
		&p.ImageRefs,
		&p.OwnerID,
		&p.RealtorID,
		&p.Version,
		&p.CreatedAt,
		&p.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PropertyRepository) FindPropertyByID(ctx context.Context, propertyID string) (*domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE property_id = $1;`
	property, err := scanProperty(r.db.QueryRow(ctx, query, propertyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find property by ID %s: %w", propertyID, err)
	}

	rows, err := r.db.Query(ctx, `SELECT customer_id FROM property_interests WHERE property_id = $1 ORDER BY created_at;`, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to load interested customers: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var customerID string
		if err := rows.Scan(&customerID); err != nil {
			return nil, fmt.Errorf("failed to scan interested customer id: %w", err)
		}
		property.InterestedCustomerIDs = append(property.InterestedCustomerIDs, customerID)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating interest rows: %w", rows.Err())
	}

	return property, nil
}

func (r *PropertyRepository) listProperties(ctx context.Context, query string, args ...any) ([]domain.Property, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	properties := []domain.Property{}
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property row: %w", err)
		}
		properties = append(properties, *property)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating property rows: %w", rows.Err())
	}
	return properties, nil
}

func (r *PropertyRepository) ListProperties(ctx context.Context) ([]domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties ORDER BY created_at DESC;`
	return r.listProperties(ctx, query)
}

func (r *PropertyRepository) ListPropertiesByOwner(ctx context.Context, ownerID string) ([]domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE owner_id = $1 ORDER BY created_at DESC;`
	return r.listProperties(ctx, query, ownerID)
}

func (r *PropertyRepository) ListPropertiesByRealtor(ctx context.Context, realtorID string) ([]domain.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE realtor_id = $1 ORDER BY created_at DESC;`
	return r.listProperties(ctx, query, realtorID)
}

// SaveProperty inserts the property row and the owner's listing-ledger row in
// one transaction.
func (r *PropertyRepository) SaveProperty(ctx context.Context, property domain.Property) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insertProperty := `
        INSERT INTO properties (
            property_id, name, type, status, price, area, bedrooms, location,
            image_refs, owner_id, realtor_id, version, created_at, last_updated_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NULLIF($11, ''), $12, $13, $14);
    `
	_, err = tx.Exec(ctx, insertProperty,
		property.PropertyID,
		property.Name,
		property.Type,
		property.Status,
		property.Price,
		property.Area,
		property.Bedrooms,
		property.Location,
		property.ImageRefs,
		property.OwnerID,
		property.RealtorID,
		property.Version,
		property.CreatedAt,
		property.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert property: %w", err)
	}

	insertLedger := `INSERT INTO owner_properties (owner_id, property_id) VALUES ($1, $2);`
	if _, err = tx.Exec(ctx, insertLedger, property.OwnerID, property.PropertyID); err != nil {
		return fmt.Errorf("failed to insert owner listing link: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit property transaction: %w", err)
	}
	return nil
}

func (r *PropertyRepository) AssignRealtor(ctx context.Context, propertyID, realtorID string, expectedVersion int64) error {
	query := `
        UPDATE properties
        SET realtor_id = $1, version = version + 1, last_updated_at = now()
        WHERE property_id = $2 AND version = $3;
    `
	cmdTag, err := r.db.Exec(ctx, query, realtorID, propertyID, expectedVersion)
	if err != nil {
		return fmt.Errorf("failed to assign realtor: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}

func (r *PropertyRepository) AddInterestedCustomer(ctx context.Context, propertyID, customerID string) error {
	query := `
        INSERT INTO property_interests (property_id, customer_id)
        VALUES ($1, $2)
        ON CONFLICT DO NOTHING;
    `
	_, err := r.db.Exec(ctx, query, propertyID, customerID)
	if err != nil {
		return fmt.Errorf("failed to add interested customer: %w", err)
	}
	return nil
}
