package service

import (
	"context"
	"errors"
	"testing"

	"mangopay-sync/internal/core/domain"
	"mangopay-sync/internal/core/resource"
	"mangopay-sync/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCardService_SaveRegistration_CreatesCardEagerly(t *testing.T) {
	d := setupSync(t)
	svc := NewCardService(d.users, d.cards, d.regs, d.transactor, d.sync)
	ctx := context.Background()
	tx := &mockTx{}

	owner := naturalUser(ptr("u-1"))
	reg := &domain.CardRegistration{ID: uuid.New(), UserID: owner.ID}

	var createdCard *domain.Card
	d.users.EXPECT().GetByID(ctx, owner.ID).Return(owner, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.cards.EXPECT().Create(ctx, tx, gomock.Any()).DoAndReturn(func(_ context.Context, _ pgx.Tx, c *domain.Card) error {
		createdCard = c
		return nil
	})
	d.regs.EXPECT().Save(ctx, tx, reg).Return(nil)

	require.NoError(t, svc.SaveRegistration(ctx, reg))
	require.NotNil(t, createdCard)
	require.NotNil(t, reg.CardID)
	assert.Equal(t, createdCard.ID, *reg.CardID)
	assert.Equal(t, "EUR", reg.Currency)
	assert.True(t, tx.committed)
}

func TestCardService_SaveRegistration_KeepsLinkedCard(t *testing.T) {
	d := setupSync(t)
	svc := NewCardService(d.users, d.cards, d.regs, d.transactor, d.sync)
	ctx := context.Background()
	tx := &mockTx{}

	owner := naturalUser(ptr("u-1"))
	cardID := uuid.New()
	reg := &domain.CardRegistration{ID: uuid.New(), UserID: owner.ID, CardID: &cardID, Currency: "usd"}

	d.users.EXPECT().GetByID(ctx, owner.ID).Return(owner, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.regs.EXPECT().Save(ctx, tx, reg).Return(nil)

	require.NoError(t, svc.SaveRegistration(ctx, reg))
	assert.Equal(t, cardID, *reg.CardID)
	assert.Equal(t, "USD", reg.Currency)
}

func TestCardService_SaveRegistration_RollsBack(t *testing.T) {
	d := setupSync(t)
	svc := NewCardService(d.users, d.cards, d.regs, d.transactor, d.sync)
	ctx := context.Background()
	tx := &mockTx{}

	owner := naturalUser(ptr("u-1"))
	reg := &domain.CardRegistration{ID: uuid.New(), UserID: owner.ID}

	d.users.EXPECT().GetByID(ctx, owner.ID).Return(owner, nil)
	d.transactor.EXPECT().Begin(ctx).Return(tx, nil)
	d.cards.EXPECT().Create(ctx, tx, gomock.Any()).Return(nil)
	d.regs.EXPECT().Save(ctx, tx, reg).Return(errors.New("unique violation"))

	err := svc.SaveRegistration(ctx, reg)
	assert.True(t, apperror.HasCode(err, apperror.CodeInternal))
	assert.Nil(t, reg.CardID, "link is reverted")
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}

func TestCardService_CreateRegistration(t *testing.T) {
	d := setupSync(t)
	svc := NewCardService(d.users, d.cards, d.regs, d.transactor, d.sync)
	ctx := context.Background()

	owner := naturalUser(ptr("u-1"))
	reg := &domain.CardRegistration{ID: uuid.New(), UserID: owner.ID, Currency: "EUR"}

	d.expectLock("card_registration", reg.ID)
	d.regs.EXPECT().GetByID(ctx, reg.ID).Return(reg, nil)
	d.users.EXPECT().GetByID(ctx, owner.ID).Return(owner, nil)
	d.client.EXPECT().Create(ctx, resource.CardRegistration{UserID: "u-1", Currency: "EUR"}).
		Return(&resource.Response{ID: "cr-1", Status: "CREATED"}, nil)
	d.regs.EXPECT().Update(ctx, reg).Return(nil)

	got, err := svc.CreateRegistration(ctx, reg.ID)
	require.NoError(t, err)
	assert.Equal(t, "cr-1", *got.RemoteID)
}

func TestCardService_PreregistrationData(t *testing.T) {
	d := setupSync(t)
	svc := NewCardService(d.users, d.cards, d.regs, d.transactor, d.sync)
	ctx := context.Background()

	reg := &domain.CardRegistration{ID: uuid.New(), RemoteID: ptr("cr-1")}
	d.regs.EXPECT().GetByID(ctx, reg.ID).Return(reg, nil)
	d.client.EXPECT().Fetch(ctx, resource.KindCardRegistration, "cr-1").Return(&resource.Response{
		ID:                  "cr-1",
		PreregistrationData: "opaque",
		AccessKey:           "1X0m87dmM2LiwFgxPLBJ",
		CardRegistrationURL: "https://homologation-webpayment.payline.com/webpayment/getToken",
	}, nil)

	data, err := svc.PreregistrationData(ctx, reg.ID)
	require.NoError(t, err)
	assert.Equal(t, &domain.PreregistrationData{
		PreregistrationData: "opaque",
		AccessKey:           "1X0m87dmM2LiwFgxPLBJ",
		CardRegistrationURL: "https://homologation-webpayment.payline.com/webpayment/getToken",
	}, data)
}

func TestCardService_SaveCardID(t *testing.T) {
	d := setupSync(t)
	svc := NewCardService(d.users, d.cards, d.regs, d.transactor, d.sync)
	ctx := context.Background()

	card := domain.NewCard()
	reg := &domain.CardRegistration{ID: uuid.New(), CardID: &card.ID}

	d.expectLock("card_registration", reg.ID)
	d.regs.EXPECT().GetByID(ctx, reg.ID).Return(reg, nil)
	d.cards.EXPECT().GetByID(ctx, card.ID).Return(card, nil)
	d.cards.EXPECT().Update(ctx, card).Return(nil)

	got, err := svc.SaveCardID(ctx, reg.ID, "c-9")
	require.NoError(t, err)
	assert.Equal(t, "c-9", *got.RemoteID)

	_, err = svc.SaveCardID(ctx, reg.ID, " ")
	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
}

func TestCardService_RefreshCard(t *testing.T) {
	tests := []struct {
		validity string
		want     *bool
	}{
		{"VALID", ptr(true)},
		{"INVALID", ptr(false)},
		{"UNKNOWN", nil},
	}

	for _, tt := range tests {
		t.Run(tt.validity, func(t *testing.T) {
			d := setupSync(t)
			svc := NewCardService(d.users, d.cards, d.regs, d.transactor, d.sync)
			ctx := context.Background()

			card := domain.NewCard()
			card.RemoteID = ptr("c-1")
			active := true

			d.expectLock("card", card.ID)
			d.cards.EXPECT().GetByID(ctx, card.ID).Return(card, nil)
			d.client.EXPECT().Fetch(ctx, resource.KindCard, "c-1").Return(&resource.Response{
				ID:             "c-1",
				ExpirationDate: "1229",
				Alias:          "497010XXXXXX4414",
				Active:         &active,
				Validity:       tt.validity,
			}, nil)
			d.cards.EXPECT().Update(ctx, card).Return(nil)

			got, err := svc.RefreshCard(ctx, card.ID)
			require.NoError(t, err)
			assert.Equal(t, "1229", *got.ExpirationDate)
			assert.Equal(t, "497010XXXXXX4414", *got.Alias)
			assert.True(t, got.IsActive)
			assert.Equal(t, tt.want, got.IsValid)
		})
	}
}

func TestCardService_RefreshCard_NotTokenizedYet(t *testing.T) {
	d := setupSync(t)
	svc := NewCardService(d.users, d.cards, d.regs, d.transactor, d.sync)
	ctx := context.Background()

	card := domain.NewCard()
	d.expectLock("card", card.ID)
	d.cards.EXPECT().GetByID(ctx, card.ID).Return(card, nil)

	got, err := svc.RefreshCard(ctx, card.ID)
	require.NoError(t, err)
	assert.Nil(t, got.IsValid)
	assert.False(t, got.IsActive)
}
