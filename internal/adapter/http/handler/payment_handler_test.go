package handler

import (
	"context"
	"net/http"
	"testing"

	"mangopay-sync/internal/adapter/http/dto"
	"mangopay-sync/internal/core/domain"
	"mangopay-sync/internal/core/ports/mocks"
	"mangopay-sync/pkg/apperror"
	"mangopay-sync/pkg/money"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type paymentMocks struct {
	payIns    *mocks.MockPayInSyncService
	payOuts   *mocks.MockPayOutSyncService
	transfers *mocks.MockTransferSyncService
	refunds   *mocks.MockRefundSyncService
}

func newPaymentHandler(ctrl *gomock.Controller) (*PaymentHandler, paymentMocks) {
	m := paymentMocks{
		payIns:    mocks.NewMockPayInSyncService(ctrl),
		payOuts:   mocks.NewMockPayOutSyncService(ctrl),
		transfers: mocks.NewMockTransferSyncService(ctrl),
		refunds:   mocks.NewMockRefundSyncService(ctrl),
	}
	return NewPaymentHandler(m.payIns, m.payOuts, m.transfers, m.refunds), m
}

func TestRegisterPayIn_Card(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newPaymentHandler(ctrl)
	cardID := uuid.New()

	m.payIns.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domain.PayIn) error {
			assert.Equal(t, domain.PaymentCard, p.Kind)
			assert.True(t, decimal.RequireFromString("12.50").Equal(p.DebitedFunds.Value))
			assert.Equal(t, "EUR", p.DebitedFunds.Currency)
			assert.True(t, p.Fees.Value.IsZero(), "fees default to zero")
			assert.Equal(t, "EUR", p.Fees.Currency)
			require.NotNil(t, p.CardID)
			assert.Equal(t, cardID, *p.CardID)
			return nil
		})

	c, w := newContext(http.MethodPost, "/api/v1/payins", dto.RegisterPayInRequest{
		UserID:              uuid.NewString(),
		WalletID:            uuid.NewString(),
		PaymentType:         "CARD",
		DebitedFunds:        dto.AmountRequest{Value: "12.50", Currency: "eur"},
		CardID:              strPtr(cardID.String()),
		SecureModeReturnURL: strPtr("https://shop.example.com/return"),
	}, "")
	h.RegisterPayIn(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "CARD", decodeData(t, w)["payment_type"])
}

func TestRegisterPayIn_ServiceValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newPaymentHandler(ctrl)
	m.payIns.EXPECT().Register(gomock.Any(), gomock.Any()).Return(apperror.Validation("card pay-ins need a card"))

	c, w := newContext(http.MethodPost, "/api/v1/payins", dto.RegisterPayInRequest{
		UserID:       uuid.NewString(),
		WalletID:     uuid.NewString(),
		PaymentType:  "CARD",
		DebitedFunds: dto.AmountRequest{Value: "10", Currency: "EUR"},
	}, "")
	h.RegisterPayIn(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegisterPayIn_NegativeAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, _ := newPaymentHandler(ctrl)

	c, w := newContext(http.MethodPost, "/api/v1/payins", dto.RegisterPayInRequest{
		UserID:       uuid.NewString(),
		WalletID:     uuid.NewString(),
		PaymentType:  "BANK_WIRE",
		DebitedFunds: dto.AmountRequest{Value: "-5", Currency: "EUR"},
	}, "")
	h.RegisterPayIn(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePayIn_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newPaymentHandler(ctrl)
	id := uuid.New()
	status := domain.TransactionCreated
	payIn := &domain.PayIn{
		ID:            id,
		RemoteID:      strPtr("74980101"),
		Kind:          domain.PaymentBankWire,
		DebitedFunds:  money.Zero("EUR"),
		Fees:          money.Zero("EUR"),
		Outcome:       domain.Outcome{Status: &status},
		WireReference: strPtr("4a57980154"),
	}
	m.payIns.EXPECT().Create(gomock.Any(), id).Return(payIn, nil)

	c, w := newContext(http.MethodPost, "/", nil, id.String())
	h.CreatePayIn(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, "74980101", data["remote_id"])
	assert.Equal(t, "CREATED", data["status"])
	assert.Equal(t, "4a57980154", data["wire_reference"])
}

func TestGetPayIn_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newPaymentHandler(ctrl)
	id := uuid.New()
	m.payIns.EXPECT().Get(gomock.Any(), id).Return(nil, apperror.ErrNotFound("pay-in"))

	c, w := newContext(http.MethodGet, "/", nil, id.String())
	h.GetPayIn(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRegisterPayOut_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newPaymentHandler(ctrl)
	bankID := uuid.New()

	m.payOuts.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *domain.PayOut) error {
			assert.Equal(t, bankID, p.BankAccountID)
			assert.True(t, decimal.RequireFromString("1.25").Equal(p.Fees.Value))
			assert.Equal(t, "INV-42", *p.BankWireRef)
			return nil
		})

	c, w := newContext(http.MethodPost, "/api/v1/payouts", dto.RegisterPayOutRequest{
		UserID:        uuid.NewString(),
		WalletID:      uuid.NewString(),
		BankAccountID: bankID.String(),
		DebitedFunds:  dto.AmountRequest{Value: "100", Currency: "EUR"},
		Fees:          &dto.AmountRequest{Value: "1.25", Currency: "EUR"},
		BankWireRef:   strPtr("INV-42"),
	}, "")
	h.RegisterPayOut(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreatePayOut_Locked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newPaymentHandler(ctrl)
	id := uuid.New()
	m.payOuts.EXPECT().Create(gomock.Any(), id).Return(nil, apperror.ErrRecordLocked("payout"))

	c, w := newContext(http.MethodPost, "/", nil, id.String())
	h.CreatePayOut(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, apperror.CodeRecordLocked, decodeErrorCode(t, w))
}

func TestRegisterTransfer_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newPaymentHandler(ctrl)
	debited, credited := uuid.New(), uuid.New()

	m.transfers.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tr *domain.Transfer) error {
			assert.Equal(t, debited, tr.DebitedWalletID)
			assert.Equal(t, credited, tr.CreditedWalletID)
			return nil
		})

	c, w := newContext(http.MethodPost, "/api/v1/transfers", dto.RegisterTransferRequest{
		DebitedWalletID:  debited.String(),
		CreditedWalletID: credited.String(),
		DebitedFunds:     dto.AmountRequest{Value: "30", Currency: "EUR"},
	}, "")
	h.RegisterTransfer(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateTransfer_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newPaymentHandler(ctrl)
	id := uuid.New()
	m.transfers.EXPECT().Create(gomock.Any(), id).Return(&domain.Transfer{ID: id, RemoteID: strPtr("t-1")}, nil)

	c, w := newContext(http.MethodPost, "/", nil, id.String())
	h.CreateTransfer(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "t-1", decodeData(t, w)["remote_id"])
}

func TestRegisterRefund_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newPaymentHandler(ctrl)
	payInID := uuid.New()

	m.refunds.EXPECT().Register(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r *domain.Refund) error {
			assert.Equal(t, payInID, r.PayInID)
			return nil
		})

	c, w := newContext(http.MethodPost, "/api/v1/refunds", dto.RegisterRefundRequest{
		UserID:  uuid.NewString(),
		PayInID: payInID.String(),
	}, "")
	h.RegisterRefund(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCreateRefund_AlreadyCreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newPaymentHandler(ctrl)
	id := uuid.New()
	m.refunds.EXPECT().Create(gomock.Any(), id).Return(nil, apperror.ErrAlreadyCreated("refund"))

	c, w := newContext(http.MethodPost, "/", nil, id.String())
	h.CreateRefund(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}
