package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"mangopay-sync/internal/core/domain"
	"mangopay-sync/internal/core/ports"
	"mangopay-sync/internal/core/resource"
	"mangopay-sync/pkg/apperror"

	"github.com/google/uuid"
)

type documentService struct {
	users   ports.UserRepository
	docs    ports.DocumentRepository
	pages   ports.PageRepository
	fetcher ports.PageFetcher
	sync    *Syncer
}

// NewDocumentService creates the KYC document workflow service.
func NewDocumentService(
	users ports.UserRepository,
	docs ports.DocumentRepository,
	pages ports.PageRepository,
	fetcher ports.PageFetcher,
	sync *Syncer,
) ports.DocumentSyncService {
	return &documentService{
		users:   users,
		docs:    docs,
		pages:   pages,
		fetcher: fetcher,
		sync:    sync,
	}
}

// Register stores a fresh document with no status. A refused document
// is never retried in place; a new one is registered instead.
func (s *documentService) Register(ctx context.Context, userID uuid.UUID, docType domain.DocumentType) (*domain.Document, error) {
	if !slices.Contains(domain.DocumentTypes, docType) {
		return nil, apperror.Validation(fmt.Sprintf("unknown document type %q", docType))
	}
	if _, err := loadUser(ctx, s.users, userID); err != nil {
		return nil, err
	}
	doc := domain.NewDocument(userID, docType)
	if err := s.docs.Create(ctx, doc); err != nil {
		return nil, storageFailed("create document", err)
	}
	return doc, nil
}

// Create uploads the document and copies the processor status.
func (s *documentService) Create(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	var doc *domain.Document
	err := s.sync.withLock(ctx, "document", id, func() error {
		var err error
		doc, err = s.load(ctx, id)
		if err != nil {
			return err
		}
		if doc.HasRemoteID() {
			return apperror.ErrAlreadyCreated("document")
		}
		owner, err := loadUser(ctx, s.users, doc.UserID)
		if err != nil {
			return err
		}

		res, err := BuildDocument(doc, owner)
		if err != nil {
			return err
		}
		resp, err := s.sync.client.Create(ctx, res)
		if err != nil {
			return s.sync.remoteFailed("create document", id, err)
		}
		// The remote document exists now; an unexpected status must not
		// prevent recording its id.
		status, err := documentStatusFromRemote(resp.Status)
		if err != nil {
			s.sync.log.Warn().Err(err).Str("remote_id", resp.ID).Msg("document created with unmapped status")
		}

		doc.RemoteID = &resp.ID
		doc.Status = status
		doc.UpdatedAt = time.Now().UTC()
		return s.sync.confirm("create document", id, resp.ID, func() error {
			return s.docs.Update(ctx, doc)
		})
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// Get re-synchronizes status and refusal reason from the processor. It
// is legal in every state.
func (s *documentService) Get(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	var doc *domain.Document
	err := s.sync.withLock(ctx, "document", id, func() error {
		var err error
		doc, err = s.load(ctx, id)
		if err != nil {
			return err
		}
		remote, err := remoteID("document", doc.RemoteID)
		if err != nil {
			return err
		}

		resp, err := s.sync.client.Fetch(ctx, resource.KindDocument, remote)
		if err != nil {
			return s.sync.remoteFailed("get document", id, err)
		}
		status, err := documentStatusFromRemote(resp.Status)
		if err != nil {
			return apperror.ErrRemote("get document", err)
		}

		doc.Status = status
		doc.RefusedReasonType = strPtr(resp.RefusedReasonType)
		doc.RefusedReasonMessage = strPtr(resp.RefusedReasonMessage)
		doc.UpdatedAt = time.Now().UTC()
		return s.sync.confirm("get document", id, remote, func() error {
			return s.docs.Update(ctx, doc)
		})
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// AskForValidation moves a CREATED document to VALIDATION_ASKED. Any
// other state is a caller bug: nothing is sent and nothing changes.
func (s *documentService) AskForValidation(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	var doc *domain.Document
	err := s.sync.withLock(ctx, "document", id, func() error {
		var err error
		doc, err = s.load(ctx, id)
		if err != nil {
			return err
		}
		if !doc.CanAskForValidation() {
			return apperror.ErrInvalidDocumentState(doc.StatusString())
		}
		if !doc.HasRemoteID() {
			return apperror.ErrMissingRemoteID("document")
		}
		owner, err := loadUser(ctx, s.users, doc.UserID)
		if err != nil {
			return err
		}

		res, err := BuildDocument(doc, owner)
		if err != nil {
			return err
		}
		res.Status = documentStatusesToRemote[domain.DocumentValidationAsked]
		resp, err := s.sync.client.Update(ctx, res)
		if err != nil {
			return s.sync.remoteFailed("ask for document validation", id, err)
		}

		status, err := documentStatusFromRemote(resp.Status)
		if err != nil {
			return apperror.ErrRemote("ask for document validation", err)
		}
		if status == nil {
			asked := domain.DocumentValidationAsked
			status = &asked
		}
		doc.Status = status
		doc.UpdatedAt = time.Now().UTC()
		return s.sync.confirm("ask for document validation", id, res.ID, func() error {
			return s.docs.Update(ctx, doc)
		})
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// UploadPage fetches the page file, submits it base64-encoded and
// records the page. Pages are never updated afterwards.
func (s *documentService) UploadPage(ctx context.Context, documentID uuid.UUID, fileURL string) (*domain.Page, error) {
	if fileURL == "" {
		return nil, apperror.Validation("file_url is required")
	}

	var page *domain.Page
	err := s.sync.withLock(ctx, "document", documentID, func() error {
		doc, err := s.load(ctx, documentID)
		if err != nil {
			return err
		}
		if !doc.HasRemoteID() {
			return apperror.ErrMissingRemoteID("document")
		}
		owner, err := loadUser(ctx, s.users, doc.UserID)
		if err != nil {
			return err
		}

		content, err := s.fetcher.Fetch(ctx, fileURL)
		if err != nil {
			return apperror.ErrBlob(err)
		}
		res, err := BuildPage(doc, owner, content)
		if err != nil {
			return err
		}
		if _, err := s.sync.client.Create(ctx, res); err != nil {
			return s.sync.remoteFailed("upload document page", documentID, err)
		}

		page = domain.NewPage(documentID, fileURL)
		return s.sync.confirm("upload document page", documentID, *doc.RemoteID, func() error {
			return s.pages.Create(ctx, page)
		})
	})
	if err != nil {
		return nil, err
	}
	return page, nil
}

// Pages lists the pages uploaded to a document, oldest first.
func (s *documentService) Pages(ctx context.Context, documentID uuid.UUID) ([]domain.Page, error) {
	if _, err := s.load(ctx, documentID); err != nil {
		return nil, err
	}
	pages, err := s.pages.ListByDocument(ctx, documentID)
	if err != nil {
		return nil, storageFailed("list document pages", err)
	}
	return pages, nil
}

func (s *documentService) load(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	doc, err := s.docs.GetByID(ctx, id)
	if err != nil {
		return nil, storageFailed("get document", err)
	}
	if doc == nil {
		return nil, apperror.ErrNotFound("document")
	}
	return doc, nil
}
