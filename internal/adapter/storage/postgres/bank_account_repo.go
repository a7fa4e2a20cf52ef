package postgres

import (
	"context"
	"errors"
	"fmt"

	"mangopay-sync/internal/core/domain"
	"mangopay-sync/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// BankAccountRepo implements ports.BankAccountRepository. IBANs and
// account numbers are encrypted at rest.
type BankAccountRepo struct {
	pool   Pool
	cipher ports.EncryptionService
}

// NewBankAccountRepo creates a new BankAccountRepo.
func NewBankAccountRepo(pool Pool, cipher ports.EncryptionService) *BankAccountRepo {
	return &BankAccountRepo{pool: pool, cipher: cipher}
}

func (r *BankAccountRepo) seal(s *string) (*string, error) {
	if s == nil {
		return nil, nil
	}
	enc, err := r.cipher.Encrypt(*s)
	if err != nil {
		return nil, err
	}
	return &enc, nil
}

func (r *BankAccountRepo) open(s *string) (*string, error) {
	if s == nil {
		return nil, nil
	}
	plain, err := r.cipher.Decrypt(*s)
	if err != nil {
		return nil, err
	}
	return &plain, nil
}

func (r *BankAccountRepo) sealed(b *domain.BankAccount) (iban, number *string, err error) {
	if iban, err = r.seal(b.IBAN); err != nil {
		return nil, nil, fmt.Errorf("encrypt iban: %w", err)
	}
	if number, err = r.seal(b.AccountNumber); err != nil {
		return nil, nil, fmt.Errorf("encrypt account number: %w", err)
	}
	return iban, number, nil
}

// Create inserts a new bank account.
func (r *BankAccountRepo) Create(ctx context.Context, b *domain.BankAccount) error {
	iban, number, err := r.sealed(b)
	if err != nil {
		return err
	}

	query := `INSERT INTO mangopay_bank_accounts (id, remote_id, user_id, address, account_type, iban_enc, bic,
		country, account_number_enc, aba, deposit_account_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err = r.pool.Exec(ctx, query,
		b.ID, b.RemoteID, b.UserID, b.Address, string(b.AccountType), iban, b.BIC,
		b.Country, number, b.ABA, string(b.DepositAccountType), b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert bank account: %w", err)
	}
	return nil
}

// GetByID fetches and decrypts a bank account.
func (r *BankAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.BankAccount, error) {
	query := `SELECT id, remote_id, user_id, address, account_type, iban_enc, bic, country,
		account_number_enc, aba, deposit_account_type, created_at, updated_at
		FROM mangopay_bank_accounts WHERE id = $1`

	var (
		b           domain.BankAccount
		accountType string
		depositType string
		ibanEnc     *string
		numberEnc   *string
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.RemoteID, &b.UserID, &b.Address, &accountType, &ibanEnc, &b.BIC, &b.Country,
		&numberEnc, &b.ABA, &depositType, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get bank account by id: %w", err)
	}
	b.AccountType = domain.BankAccountType(accountType)
	b.DepositAccountType = domain.DepositAccountType(depositType)

	if b.IBAN, err = r.open(ibanEnc); err != nil {
		return nil, fmt.Errorf("decrypt iban: %w", err)
	}
	if b.AccountNumber, err = r.open(numberEnc); err != nil {
		return nil, fmt.Errorf("decrypt account number: %w", err)
	}
	return &b, nil
}

// Update only mirrors the remote id; bank accounts are immutable once
// registered.
func (r *BankAccountRepo) Update(ctx context.Context, b *domain.BankAccount) error {
	return execOne(ctx, r.pool, "update bank account",
		`UPDATE mangopay_bank_accounts SET remote_id = $1, updated_at = NOW() WHERE id = $2`,
		b.RemoteID, b.ID,
	)
}
