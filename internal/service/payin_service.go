package service

import (
	"context"
	"time"

	"mangopay-sync/internal/core/domain"
	"mangopay-sync/internal/core/ports"
	"mangopay-sync/internal/core/resource"
	"mangopay-sync/pkg/apperror"

	"github.com/google/uuid"
)

type payInService struct {
	users   ports.UserRepository
	wallets ports.WalletRepository
	cards   ports.CardRepository
	payIns  ports.PayInRepository
	sync    *Syncer
}

func NewPayInService(
	users ports.UserRepository,
	wallets ports.WalletRepository,
	cards ports.CardRepository,
	payIns ports.PayInRepository,
	sync *Syncer,
) ports.PayInSyncService {
	return &payInService{
		users:   users,
		wallets: wallets,
		cards:   cards,
		payIns:  payIns,
		sync:    sync,
	}
}

func (s *payInService) Register(ctx context.Context, p *domain.PayIn) error {
	switch p.Kind {
	case domain.PaymentCard:
		if p.CardID == nil {
			return apperror.Validation("card pay-ins need a card")
		}
	case domain.PaymentBankWire:
		if p.CardID != nil {
			return apperror.Validation("bank wire pay-ins cannot reference a card")
		}
	default:
		return apperror.Validation("payment_type must be CARD or BANK_WIRE")
	}
	if err := validateFunds(p.DebitedFunds, p.Fees); err != nil {
		return err
	}
	if _, err := loadUser(ctx, s.users, p.UserID); err != nil {
		return err
	}
	if _, err := loadWallet(ctx, s.wallets, p.WalletID); err != nil {
		return err
	}
	if err := s.payIns.Create(ctx, p); err != nil {
		return storageFailed("create pay-in", err)
	}
	return nil
}

// Create submits the pay-in. Bank wires additionally record the wire
// reference and the account the payer has to wire to.
func (s *payInService) Create(ctx context.Context, id uuid.UUID) (*domain.PayIn, error) {
	var p *domain.PayIn
	err := s.sync.withLock(ctx, "payin", id, func() error {
		var err error
		p, err = loadPayIn(ctx, s.payIns, id)
		if err != nil {
			return err
		}
		if p.HasRemoteID() {
			return apperror.ErrAlreadyCreated("pay-in")
		}
		author, err := loadUser(ctx, s.users, p.UserID)
		if err != nil {
			return err
		}
		wallet, err := loadWallet(ctx, s.wallets, p.WalletID)
		if err != nil {
			return err
		}
		var card *domain.Card
		if p.Kind == domain.PaymentCard && p.CardID != nil {
			if card, err = loadCard(ctx, s.cards, *p.CardID); err != nil {
				return err
			}
		}

		res, err := BuildPayIn(p, author, wallet, card)
		if err != nil {
			return err
		}
		resp, err := s.sync.client.Create(ctx, res)
		if err != nil {
			return s.sync.remoteFailed("create pay-in", id, err)
		}

		p.RemoteID = &resp.ID
		p.Outcome = s.sync.outcome(resp)
		switch p.Kind {
		case domain.PaymentCard:
			p.SecureModeRedirectURL = strPtr(resp.SecureModeRedirectURL)
		case domain.PaymentBankWire:
			p.WireReference = strPtr(resp.WireReference)
			p.WireBankAccount = resp.BankAccount
		}
		p.UpdatedAt = time.Now().UTC()
		return s.sync.confirm("create pay-in", id, resp.ID, func() error {
			return s.payIns.Update(ctx, p)
		})
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Get refreshes status, result code and execution date. A pay-in already
// in a final state is returned as stored.
func (s *payInService) Get(ctx context.Context, id uuid.UUID) (*domain.PayIn, error) {
	var p *domain.PayIn
	err := s.sync.withLock(ctx, "payin", id, func() error {
		var err error
		p, err = loadPayIn(ctx, s.payIns, id)
		if err != nil {
			return err
		}
		remote, err := remoteID("pay-in", p.RemoteID)
		if err != nil {
			return err
		}
		// SUCCEEDED and FAILED are final on the processor side.
		if p.Status != nil && p.Status.IsTerminal() {
			return nil
		}

		resp, err := s.sync.client.Fetch(ctx, resource.KindPayIn, remote)
		if err != nil {
			return s.sync.remoteFailed("get pay-in", id, err)
		}
		p.Outcome = s.sync.outcome(resp)
		p.UpdatedAt = time.Now().UTC()
		return s.sync.confirm("get pay-in", id, remote, func() error {
			return s.payIns.Update(ctx, p)
		})
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func loadPayIn(ctx context.Context, payIns ports.PayInRepository, id uuid.UUID) (*domain.PayIn, error) {
	p, err := payIns.GetByID(ctx, id)
	if err != nil {
		return nil, storageFailed("get pay-in", err)
	}
	if p == nil {
		return nil, apperror.ErrNotFound("pay-in")
	}
	return p, nil
}
