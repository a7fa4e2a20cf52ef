package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mangopay-sync/internal/core/domain"
	"mangopay-sync/internal/core/ports"
	"mangopay-sync/internal/core/resource"
	"mangopay-sync/pkg/apperror"
	"mangopay-sync/pkg/money"

	"github.com/google/uuid"
)

type cardService struct {
	users      ports.UserRepository
	cards      ports.CardRepository
	regs       ports.CardRegistrationRepository
	transactor ports.DBTransactor
	sync       *Syncer
}

func NewCardService(
	users ports.UserRepository,
	cards ports.CardRepository,
	regs ports.CardRegistrationRepository,
	transactor ports.DBTransactor,
	sync *Syncer,
) ports.CardSyncService {
	return &cardService{
		users:      users,
		cards:      cards,
		regs:       regs,
		transactor: transactor,
		sync:       sync,
	}
}

// SaveRegistration persists the registration. When no card is linked
// yet, an empty one is created in the same transaction so that every
// saved registration owns exactly one card.
func (s *cardService) SaveRegistration(ctx context.Context, reg *domain.CardRegistration) error {
	if reg.Currency == "" {
		reg.Currency = money.DefaultCurrency
	}
	reg.Currency = strings.ToUpper(reg.Currency)
	if _, err := loadUser(ctx, s.users, reg.UserID); err != nil {
		return err
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	linked := reg.CardID
	if linked == nil {
		card := domain.NewCard()
		if err := s.cards.Create(ctx, tx, card); err != nil {
			return storageFailed("create card", err)
		}
		reg.CardID = &card.ID
	}
	reg.UpdatedAt = time.Now().UTC()

	if err := s.regs.Save(ctx, tx, reg); err != nil {
		reg.CardID = linked
		return storageFailed("save card registration", err)
	}
	if err := tx.Commit(ctx); err != nil {
		reg.CardID = linked
		return apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}
	return nil
}

func (s *cardService) CreateRegistration(ctx context.Context, id uuid.UUID) (*domain.CardRegistration, error) {
	var reg *domain.CardRegistration
	err := s.sync.withLock(ctx, "card_registration", id, func() error {
		var err error
		reg, err = s.loadRegistration(ctx, id)
		if err != nil {
			return err
		}
		if reg.HasRemoteID() {
			return apperror.ErrAlreadyCreated("card registration")
		}
		owner, err := loadUser(ctx, s.users, reg.UserID)
		if err != nil {
			return err
		}

		res, err := BuildCardRegistration(reg, owner)
		if err != nil {
			return err
		}
		resp, err := s.sync.client.Create(ctx, res)
		if err != nil {
			return s.sync.remoteFailed("create card registration", id, err)
		}

		reg.RemoteID = &resp.ID
		reg.UpdatedAt = time.Now().UTC()
		return s.sync.confirm("create card registration", id, resp.ID, func() error {
			return s.regs.Update(ctx, reg)
		})
	})
	if err != nil {
		return nil, err
	}
	return reg, nil
}

// PreregistrationData returns what the client-side tokenization step
// needs. Raw card data never passes through here.
func (s *cardService) PreregistrationData(ctx context.Context, id uuid.UUID) (*domain.PreregistrationData, error) {
	reg, err := s.loadRegistration(ctx, id)
	if err != nil {
		return nil, err
	}
	remote, err := remoteID("card registration", reg.RemoteID)
	if err != nil {
		return nil, err
	}

	resp, err := s.sync.client.Fetch(ctx, resource.KindCardRegistration, remote)
	if err != nil {
		return nil, s.sync.remoteFailed("get card registration", id, err)
	}
	return &domain.PreregistrationData{
		PreregistrationData: resp.PreregistrationData,
		AccessKey:           resp.AccessKey,
		CardRegistrationURL: resp.CardRegistrationURL,
	}, nil
}

// SaveCardID stores the processor card id obtained after tokenization on
// the registration's card.
func (s *cardService) SaveCardID(ctx context.Context, registrationID uuid.UUID, cardRemoteID string) (*domain.Card, error) {
	if strings.TrimSpace(cardRemoteID) == "" {
		return nil, apperror.Validation("card_id is required")
	}

	var card *domain.Card
	err := s.sync.withLock(ctx, "card_registration", registrationID, func() error {
		reg, err := s.loadRegistration(ctx, registrationID)
		if err != nil {
			return err
		}
		if reg.CardID == nil {
			return apperror.ErrPrecondition("card registration has no linked card")
		}
		card, err = loadCard(ctx, s.cards, *reg.CardID)
		if err != nil {
			return err
		}

		card.RemoteID = &cardRemoteID
		card.UpdatedAt = time.Now().UTC()
		if err := s.cards.Update(ctx, card); err != nil {
			return storageFailed("update card", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

// RefreshCard mirrors expiration, alias, activity and validity. Cards
// without a remote id are returned unchanged.
func (s *cardService) RefreshCard(ctx context.Context, cardID uuid.UUID) (*domain.Card, error) {
	var card *domain.Card
	err := s.sync.withLock(ctx, "card", cardID, func() error {
		var err error
		card, err = loadCard(ctx, s.cards, cardID)
		if err != nil {
			return err
		}
		if !card.HasRemoteID() {
			return nil
		}

		resp, err := s.sync.client.Fetch(ctx, resource.KindCard, *card.RemoteID)
		if err != nil {
			return s.sync.remoteFailed("get card", cardID, err)
		}
		card.ExpirationDate = strPtr(resp.ExpirationDate)
		card.Alias = strPtr(resp.Alias)
		card.IsActive = resp.Active != nil && *resp.Active
		card.IsValid = cardValidityFromRemote(resp.Validity)
		card.UpdatedAt = time.Now().UTC()
		return s.sync.confirm("get card", cardID, *card.RemoteID, func() error {
			return s.cards.Update(ctx, card)
		})
	})
	if err != nil {
		return nil, err
	}
	return card, nil
}

func (s *cardService) loadRegistration(ctx context.Context, id uuid.UUID) (*domain.CardRegistration, error) {
	reg, err := s.regs.GetByID(ctx, id)
	if err != nil {
		return nil, storageFailed("get card registration", err)
	}
	if reg == nil {
		return nil, apperror.ErrNotFound("card registration")
	}
	return reg, nil
}

func loadCard(ctx context.Context, cards ports.CardRepository, id uuid.UUID) (*domain.Card, error) {
	card, err := cards.GetByID(ctx, id)
	if err != nil {
		return nil, storageFailed("get card", err)
	}
	if card == nil {
		return nil, apperror.ErrNotFound("card")
	}
	return card, nil
}
