package service

import (
	"context"
	"fmt"
	"time"

	"mangopay-sync/internal/core/domain"
	"mangopay-sync/internal/core/ports"
	"mangopay-sync/internal/core/resource"
	"mangopay-sync/pkg/apperror"
	"mangopay-sync/pkg/money"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const defaultLockTTL = 2 * time.Minute

// Syncer carries what every lifecycle operation needs: the processor
// client, the per-record lock and the execution date location.
type Syncer struct {
	client  ports.RemoteClient
	locker  ports.RecordLocker
	lockTTL time.Duration
	loc     *time.Location
	log     zerolog.Logger
}

// NewSyncer creates a Syncer. A zero lockTTL or nil loc fall back to
// two minutes and UTC.
func NewSyncer(client ports.RemoteClient, locker ports.RecordLocker, lockTTL time.Duration, loc *time.Location, log zerolog.Logger) *Syncer {
	if lockTTL <= 0 {
		lockTTL = defaultLockTTL
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Syncer{
		client:  client,
		locker:  locker,
		lockTTL: lockTTL,
		loc:     loc,
		log:     log,
	}
}

// LockKey is the redis key serializing operations on one local record.
func LockKey(entity string, id uuid.UUID) string {
	return fmt.Sprintf("sync:%s:%s", entity, id)
}

// withLock runs fn while holding the record lock. A held lock fails fast
// with ErrRecordLocked instead of waiting.
func (s *Syncer) withLock(ctx context.Context, entity string, id uuid.UUID, fn func() error) error {
	key := LockKey(entity, id)
	token, ok, err := s.locker.Lock(ctx, key, s.lockTTL)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("acquire lock %s: %w", key, err))
	}
	if !ok {
		return apperror.ErrRecordLocked(entity)
	}
	defer func() {
		if err := s.locker.Unlock(context.WithoutCancel(ctx), key, token); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("failed to release sync lock")
		}
	}()
	return fn()
}

// remoteFailed wraps a processor error. Nothing local has been written
// when this is returned.
func (s *Syncer) remoteFailed(op string, id uuid.UUID, err error) error {
	s.log.Warn().Err(err).Str("op", op).Str("id", id.String()).Msg("payment processor call failed")
	return apperror.ErrRemote(op, err)
}

// confirm persists the reconciled record after a successful remote call.
// A failure here leaves an orphan on the processor side, so it is logged
// with the remote id for manual reconciliation.
func (s *Syncer) confirm(op string, id uuid.UUID, remoteID string, persist func() error) error {
	if err := persist(); err != nil {
		s.log.Error().
			Err(err).
			Str("op", op).
			Str("id", id.String()).
			Str("remote_id", remoteID).
			Msg("remote write succeeded but local persist failed")
		return apperror.InternalError(fmt.Errorf("%s: persist: %w", op, err))
	}
	s.log.Info().
		Str("op", op).
		Str("id", id.String()).
		Str("remote_id", remoteID).
		Msg("record synchronized")
	return nil
}

// executionDate converts the processor creation timestamp.
func (s *Syncer) executionDate(creationDate *int64) *time.Time {
	return ExecutionDate(creationDate, s.loc)
}

// ExecutionDate interprets ts as Unix seconds in loc. A missing timestamp
// stays nil.
func ExecutionDate(ts *int64, loc *time.Location) *time.Time {
	if ts == nil {
		return nil
	}
	if loc == nil {
		loc = time.UTC
	}
	t := time.Unix(*ts, 0).In(loc)
	return &t
}

func storageFailed(op string, err error) error {
	return apperror.InternalError(fmt.Errorf("%s: %w", op, err))
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// outcome reconciles the fields every money movement mirrors. An
// unmapped status is logged and left nil so the remote id is still
// recorded.
func (s *Syncer) outcome(resp *resource.Response) domain.Outcome {
	status, err := transactionStatusFromRemote(resp.Status)
	if err != nil {
		s.log.Warn().Err(err).Str("remote_id", resp.ID).Msg("money movement has unmapped status")
	}
	return domain.Outcome{
		ExecutionDate: s.executionDate(resp.CreationDate),
		Status:        status,
		ResultCode:    strPtr(resp.ResultCode),
	}
}

func validateFunds(debited, fees money.Amount) error {
	if debited.Value.IsNegative() || fees.Value.IsNegative() {
		return apperror.Validation("amounts must not be negative")
	}
	if !debited.InRange() || !fees.InRange() {
		return apperror.Validation(fmt.Sprintf("amounts must have at most %d digits", money.MaxDigits))
	}
	if debited.Currency != fees.Currency {
		return apperror.Validation("debited funds and fees must share a currency")
	}
	return nil
}
