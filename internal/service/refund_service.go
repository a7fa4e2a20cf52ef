package service

import (
	"context"
	"time"

	"mangopay-sync/internal/core/domain"
	"mangopay-sync/internal/core/ports"
	"mangopay-sync/pkg/apperror"

	"github.com/google/uuid"
)

type refundService struct {
	users   ports.UserRepository
	payIns  ports.PayInRepository
	refunds ports.RefundRepository
	sync    *Syncer
}

func NewRefundService(
	users ports.UserRepository,
	payIns ports.PayInRepository,
	refunds ports.RefundRepository,
	sync *Syncer,
) ports.RefundSyncService {
	return &refundService{
		users:   users,
		payIns:  payIns,
		refunds: refunds,
		sync:    sync,
	}
}

func (s *refundService) Register(ctx context.Context, r *domain.Refund) error {
	if _, err := loadUser(ctx, s.users, r.UserID); err != nil {
		return err
	}
	if _, err := loadPayIn(ctx, s.payIns, r.PayInID); err != nil {
		return err
	}
	if err := s.refunds.Create(ctx, r); err != nil {
		return storageFailed("create refund", err)
	}
	return nil
}

// Create refunds the pay-in. The refund is immutable once confirmed.
func (s *refundService) Create(ctx context.Context, id uuid.UUID) (*domain.Refund, error) {
	var r *domain.Refund
	err := s.sync.withLock(ctx, "refund", id, func() error {
		var err error
		r, err = s.load(ctx, id)
		if err != nil {
			return err
		}
		if r.HasRemoteID() {
			return apperror.ErrAlreadyCreated("refund")
		}
		author, err := loadUser(ctx, s.users, r.UserID)
		if err != nil {
			return err
		}
		payIn, err := loadPayIn(ctx, s.payIns, r.PayInID)
		if err != nil {
			return err
		}

		res, err := BuildRefund(author, payIn)
		if err != nil {
			return err
		}
		resp, err := s.sync.client.Create(ctx, res)
		if err != nil {
			return s.sync.remoteFailed("create refund", id, err)
		}

		r.RemoteID = &resp.ID
		r.Outcome = s.sync.outcome(resp)
		r.UpdatedAt = time.Now().UTC()
		return s.sync.confirm("create refund", id, resp.ID, func() error {
			return s.refunds.Update(ctx, r)
		})
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s *refundService) load(ctx context.Context, id uuid.UUID) (*domain.Refund, error) {
	r, err := s.refunds.GetByID(ctx, id)
	if err != nil {
		return nil, storageFailed("get refund", err)
	}
	if r == nil {
		return nil, apperror.ErrNotFound("refund")
	}
	return r, nil
}
