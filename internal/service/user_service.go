package service

import (
	"context"
	"time"

	"mangopay-sync/internal/core/domain"
	"mangopay-sync/internal/core/ports"
	"mangopay-sync/pkg/apperror"

	"github.com/google/uuid"
)

type userService struct {
	users ports.UserRepository
	docs  ports.DocumentRepository
	sync  *Syncer
}

// NewUserService creates a new user sync service.
func NewUserService(users ports.UserRepository, docs ports.DocumentRepository, sync *Syncer) ports.UserSyncService {
	return &userService{users: users, docs: docs, sync: sync}
}

// Register reserves the local row. The user is created remotely later.
func (s *userService) Register(ctx context.Context, user *domain.User) error {
	if !user.IsNatural() && !user.IsLegal() {
		return apperror.Validation("user type must be NATURAL or LEGAL")
	}
	if user.IsLegal() && (user.Legal == nil || user.Legal.LegalPersonType == "") {
		return apperror.Validation("legal users need a legal person type")
	}
	if user.HasRemoteID() {
		return apperror.ErrAlreadyCreated("user")
	}
	if err := s.users.Create(ctx, user); err != nil {
		return storageFailed("create user", err)
	}
	return nil
}

// Create submits the user to the processor and stores the assigned id.
func (s *userService) Create(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user *domain.User
	err := s.sync.withLock(ctx, "user", id, func() error {
		var err error
		user, err = s.load(ctx, id)
		if err != nil {
			return err
		}
		if user.HasRemoteID() {
			return apperror.ErrAlreadyCreated("user")
		}

		res, err := BuildUser(user)
		if err != nil {
			return err
		}
		resp, err := s.sync.client.Create(ctx, res)
		if err != nil {
			return s.sync.remoteFailed("create user", id, err)
		}

		user.RemoteID = &resp.ID
		user.UpdatedAt = time.Now().UTC()
		return s.sync.confirm("create user", id, resp.ID, func() error {
			return s.users.Update(ctx, user)
		})
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Update re-submits the full local state. The response is not
// reconciled back.
func (s *userService) Update(ctx context.Context, id uuid.UUID) error {
	return s.sync.withLock(ctx, "user", id, func() error {
		user, err := s.load(ctx, id)
		if err != nil {
			return err
		}
		if !user.HasRemoteID() {
			return apperror.ErrMissingRemoteID("user")
		}
		res, err := BuildUser(user)
		if err != nil {
			return err
		}
		if _, err := s.sync.client.Update(ctx, res); err != nil {
			return s.sync.remoteFailed("update user", id, err)
		}
		s.sync.log.Info().Str("id", id.String()).Str("remote_id", *user.RemoteID).Msg("user updated remotely")
		return nil
	})
}

// Authentication evaluates the user's KYC levels against its documents.
func (s *userService) Authentication(ctx context.Context, id uuid.UUID) (*ports.AuthenticationReport, error) {
	user, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	docs, err := s.docs.ListByUser(ctx, id)
	if err != nil {
		return nil, storageFailed("list documents", err)
	}

	profile := user.Profile()
	return &ports.AuthenticationReport{
		UserID:              user.ID,
		Kind:                user.Kind,
		Light:               profile.HasLightAuthentication(),
		Regular:             profile.HasRegularAuthentication(docs),
		RequiredDocuments:   profile.RequiredDocumentTypes(),
		DocumentsToReupload: domain.DocumentTypesToReupload(profile, docs),
	}, nil
}

func (s *userService) load(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return loadUser(ctx, s.users, id)
}

func loadUser(ctx context.Context, users ports.UserRepository, id uuid.UUID) (*domain.User, error) {
	user, err := users.GetByID(ctx, id)
	if err != nil {
		return nil, storageFailed("get user", err)
	}
	if user == nil {
		return nil, apperror.ErrNotFound("user")
	}
	return user, nil
}
