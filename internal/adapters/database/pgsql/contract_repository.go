package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/EstateDesk/estate_management_app/internal/apperrors"
	"github.com/EstateDesk/estate_management_app/internal/core/domain"
	portsrepo "github.com/EstateDesk/estate_management_app/internal/core/ports/repositories"
)

type ContractRepository struct {
	db *pgxpool.Pool
}

func NewContractRepository(db *pgxpool.Pool) *ContractRepository {
	return &ContractRepository{db: db}
}

// Ensure ContractRepository implements the facade
var _ portsrepo.ContractRepositoryFacade = (*ContractRepository)(nil)

const contractColumns = `
    contract_id, type, status, contract_date, start_date, end_date, closing_date,
    sale_price, deposit_amount, payment_terms,
    loan_amount, loan_provider, loan_interest_rate, loan_approval_date, loan_status,
    owner_id, customer_id, COALESCE(realtor_id, ''), property_id,
    COALESCE(owner_signature, ''), COALESCE(customer_signature, ''),
    version, created_at, last_updated_at
`

func scanContract(row pgx.Row) (*domain.Contract, error) {
	var c domain.Contract
	var loanAmount, loanRate *decimal.Decimal
	var loanProvider, loanStatus *string
	var loanApprovalDate *time.Time
	err := row.Scan(
		&c.ContractID,
		&c.Type,
		&c.Status,
		&c.ContractDate,
		&c.StartDate,
		&c.EndDate,
		&c.ClosingDate,
		&c.SalePrice,
		&c.DepositAmount,
		&c.PaymentTerms,
		&loanAmount,
		&loanProvider,
		&loanRate,
		&loanApprovalDate,
		&loanStatus,
		&c.OwnerID,
		&c.CustomerID,
		&c.RealtorID,
		&c.PropertyID,
		&c.Signatures.Owner,
		&c.Signatures.Customer,
		&c.Version,
		&c.CreatedAt,
		&c.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	// loan_amount is the presence marker for the optional financing sub-record.
	if loanAmount != nil {
		c.Loan = &domain.LoanDetails{
			Amount:       *loanAmount,
			ApprovalDate: loanApprovalDate,
		}
		if loanProvider != nil {
			c.Loan.Provider = *loanProvider
		}
		if loanRate != nil {
			c.Loan.InterestRate = *loanRate
		}
		if loanStatus != nil {
			c.Loan.Status = *loanStatus
		}
	}
	return &c, nil
}

func (r *ContractRepository) FindContractByID(ctx context.Context, contractID string) (*domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE contract_id = $1;`
	contract, err := scanContract(r.db.QueryRow(ctx, query, contractID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find contract by ID %s: %w", contractID, err)
	}
	return contract, nil
}

func (r *ContractRepository) listContracts(ctx context.Context, query string, args ...any) ([]domain.Contract, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query contracts: %w", err)
	}
	defer rows.Close()

	contracts := []domain.Contract{}
	for rows.Next() {
		contract, err := scanContract(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contract row: %w", err)
		}
		contracts = append(contracts, *contract)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating contract rows: %w", rows.Err())
	}
	return contracts, nil
}

func (r *ContractRepository) ListContractsByOwner(ctx context.Context, ownerID string) ([]domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE owner_id = $1 ORDER BY created_at DESC;`
	return r.listContracts(ctx, query, ownerID)
}

func (r *ContractRepository) ListContractsByCustomer(ctx context.Context, customerID string) ([]domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE customer_id = $1 ORDER BY created_at DESC;`
	return r.listContracts(ctx, query, customerID)
}

func (r *ContractRepository) ListContractsByRealtor(ctx context.Context, realtorID string) ([]domain.Contract, error) {
	query := `SELECT ` + contractColumns + ` FROM contracts WHERE realtor_id = $1 ORDER BY created_at DESC;`
	return r.listContracts(ctx, query, realtorID)
}

func loanFields(loan *domain.LoanDetails) (amount, rate *decimal.Decimal, provider, status *string, approvalDate *time.Time) {
	if loan == nil {
		return nil, nil, nil, nil, nil
	}
	amount = &loan.Amount
	rate = &loan.InterestRate
	if loan.Provider != "" {
		provider = &loan.Provider
	}
	if loan.Status != "" {
		status = &loan.Status
	}
	approvalDate = loan.ApprovalDate
	return amount, rate, provider, status, approvalDate
}

func (r *ContractRepository) SaveContract(ctx context.Context, contract domain.Contract) error {
	loanAmount, loanRate, loanProvider, loanStatus, loanApprovalDate := loanFields(contract.Loan)
	query := `
        INSERT INTO contracts (
            contract_id, type, status, contract_date, start_date, end_date,
            closing_date, sale_price, deposit_amount, payment_terms,
            loan_amount, loan_provider, loan_interest_rate, loan_approval_date, loan_status,
            owner_id, customer_id, realtor_id, property_id,
            owner_signature, customer_signature, version, created_at, last_updated_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
                $11, $12, $13, $14, $15,
                $16, $17, NULLIF($18, ''), $19,
                NULLIF($20, ''), NULLIF($21, ''), $22, $23, $24);
    `
	_, err := r.db.Exec(ctx, query,
		contract.ContractID,
		contract.Type,
		contract.Status,
		contract.ContractDate,
		contract.StartDate,
		contract.EndDate,
		contract.ClosingDate,
		contract.SalePrice,
		contract.DepositAmount,
		contract.PaymentTerms,
		loanAmount,
		loanProvider,
		loanRate,
		loanApprovalDate,
		loanStatus,
		contract.OwnerID,
		contract.CustomerID,
		contract.RealtorID,
		contract.PropertyID,
		contract.Signatures.Owner,
		contract.Signatures.Customer,
		contract.Version,
		contract.CreatedAt,
		contract.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save contract: %w", err)
	}
	return nil
}

func (r *ContractRepository) UpdateContract(ctx context.Context, contract domain.Contract, expectedVersion int64) error {
	query := `
        UPDATE contracts
        SET status = $1,
            owner_signature = NULLIF($2, ''),
            customer_signature = NULLIF($3, ''),
            version = version + 1,
            last_updated_at = now()
        WHERE contract_id = $4 AND version = $5;
    `
	cmdTag, err := r.db.Exec(ctx, query,
		contract.Status,
		contract.Signatures.Owner,
		contract.Signatures.Customer,
		contract.ContractID,
		expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to update contract: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}
	return nil
}

// ExecuteContract commits the final signature and, for sale contracts, the
// property's sold flip as one transaction.
func (r *ContractRepository) ExecuteContract(ctx context.Context, contract domain.Contract, expectedVersion int64, markPropertySold bool) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	updateContract := `
        UPDATE contracts
        SET status = $1,
            owner_signature = NULLIF($2, ''),
            customer_signature = NULLIF($3, ''),
            version = version + 1,
            last_updated_at = now()
        WHERE contract_id = $4 AND version = $5;
    `
	cmdTag, err := tx.Exec(ctx, updateContract,
		domain.ContractExecuted,
		contract.Signatures.Owner,
		contract.Signatures.Customer,
		contract.ContractID,
		expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("failed to execute contract: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrConflict
	}

	if markPropertySold {
		updateProperty := `
            UPDATE properties
            SET status = $1, version = version + 1, last_updated_at = now()
            WHERE property_id = $2;
        `
		cmdTag, err = tx.Exec(ctx, updateProperty, domain.PropertySold, contract.PropertyID)
		if err != nil {
			return fmt.Errorf("failed to mark property sold: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit contract execution: %w", err)
	}
	return nil
}
