package service

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"mangopay-sync/internal/core/domain"
	"mangopay-sync/internal/core/resource"
	"mangopay-sync/pkg/apperror"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func docWithStatus(owner *domain.User, status *domain.DocumentStatus, remoteID *string) *domain.Document {
	doc := domain.NewDocument(owner.ID, domain.DocumentIdentityProof)
	doc.Status = status
	doc.RemoteID = remoteID
	return doc
}

func TestDocumentService_Create(t *testing.T) {
	d := setupSync(t)
	svc := NewDocumentService(d.users, d.docs, d.pages, d.fetcher, d.sync)
	ctx := context.Background()

	owner := naturalUser(ptr("u-1"))
	doc := docWithStatus(owner, nil, nil)

	d.expectLock("document", doc.ID)
	d.docs.EXPECT().GetByID(ctx, doc.ID).Return(doc, nil)
	d.users.EXPECT().GetByID(ctx, owner.ID).Return(owner, nil)
	d.client.EXPECT().Create(ctx, resource.Document{UserID: "u-1", Type: "IDENTITY_PROOF"}).
		Return(&resource.Response{ID: "d-1", Status: "CREATED"}, nil)
	d.docs.EXPECT().Update(ctx, doc).Return(nil)

	got, err := svc.Create(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "d-1", *got.RemoteID)
	assert.True(t, got.HasStatus(domain.DocumentCreated))
}

func TestDocumentService_Create_OwnerNotCreated(t *testing.T) {
	d := setupSync(t)
	svc := NewDocumentService(d.users, d.docs, d.pages, d.fetcher, d.sync)
	ctx := context.Background()

	owner := naturalUser(nil)
	doc := docWithStatus(owner, nil, nil)

	d.expectLock("document", doc.ID)
	d.docs.EXPECT().GetByID(ctx, doc.ID).Return(doc, nil)
	d.users.EXPECT().GetByID(ctx, owner.ID).Return(owner, nil)

	_, err := svc.Create(ctx, doc.ID)
	assert.True(t, apperror.HasCode(err, apperror.CodeMissingRemoteID))
}

func TestDocumentService_Get_RefreshesInAnyState(t *testing.T) {
	states := []*domain.DocumentStatus{
		nil,
		ptr(domain.DocumentCreated),
		ptr(domain.DocumentValidationAsked),
		ptr(domain.DocumentValidated),
	}
	for _, st := range states {
		d := setupSync(t)
		svc := NewDocumentService(d.users, d.docs, d.pages, d.fetcher, d.sync)
		ctx := context.Background()

		owner := naturalUser(ptr("u-1"))
		doc := docWithStatus(owner, st, ptr("d-1"))

		d.expectLock("document", doc.ID)
		d.docs.EXPECT().GetByID(ctx, doc.ID).Return(doc, nil)
		d.client.EXPECT().Fetch(ctx, resource.KindDocument, "d-1").Return(&resource.Response{
			ID:                   "d-1",
			Status:               "REFUSED",
			RefusedReasonType:    "DOCUMENT_UNREADABLE",
			RefusedReasonMessage: "blurry",
		}, nil)
		d.docs.EXPECT().Update(ctx, doc).Return(nil)

		got, err := svc.Get(ctx, doc.ID)
		require.NoError(t, err)
		assert.True(t, got.HasStatus(domain.DocumentRefused))
		assert.Equal(t, "DOCUMENT_UNREADABLE", *got.RefusedReasonType)
		assert.Equal(t, "blurry", *got.RefusedReasonMessage)
	}
}

func TestDocumentService_Get_WithoutRemoteID(t *testing.T) {
	d := setupSync(t)
	svc := NewDocumentService(d.users, d.docs, d.pages, d.fetcher, d.sync)
	ctx := context.Background()

	doc := docWithStatus(naturalUser(nil), nil, nil)
	d.expectLock("document", doc.ID)
	d.docs.EXPECT().GetByID(ctx, doc.ID).Return(doc, nil)

	_, err := svc.Get(ctx, doc.ID)
	assert.True(t, apperror.HasCode(err, apperror.CodeMissingRemoteID))
}

func TestDocumentService_AskForValidation(t *testing.T) {
	d := setupSync(t)
	svc := NewDocumentService(d.users, d.docs, d.pages, d.fetcher, d.sync)
	ctx := context.Background()

	owner := naturalUser(ptr("u-1"))
	doc := docWithStatus(owner, ptr(domain.DocumentCreated), ptr("d-1"))

	d.expectLock("document", doc.ID)
	d.docs.EXPECT().GetByID(ctx, doc.ID).Return(doc, nil)
	d.users.EXPECT().GetByID(ctx, owner.ID).Return(owner, nil)
	d.client.EXPECT().Update(ctx, resource.Document{ID: "d-1", UserID: "u-1", Type: "IDENTITY_PROOF", Status: "VALIDATION_ASKED"}).
		Return(&resource.Response{ID: "d-1", Status: "VALIDATION_ASKED"}, nil)
	d.docs.EXPECT().Update(ctx, doc).Return(nil)

	got, err := svc.AskForValidation(ctx, doc.ID)
	require.NoError(t, err)
	assert.True(t, got.HasStatus(domain.DocumentValidationAsked))
}

func TestDocumentService_AskForValidation_WrongStateIsFatal(t *testing.T) {
	tests := []struct {
		name   string
		status *domain.DocumentStatus
	}{
		{"null", nil},
		{"validation asked", ptr(domain.DocumentValidationAsked)},
		{"validated", ptr(domain.DocumentValidated)},
		{"refused", ptr(domain.DocumentRefused)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupSync(t)
			svc := NewDocumentService(d.users, d.docs, d.pages, d.fetcher, d.sync)
			ctx := context.Background()

			doc := docWithStatus(naturalUser(ptr("u-1")), tt.status, ptr("d-1"))
			d.expectLock("document", doc.ID)
			d.docs.EXPECT().GetByID(ctx, doc.ID).Return(doc, nil)
			// no remote call and no persist expected

			_, err := svc.AskForValidation(ctx, doc.ID)
			require.Error(t, err)
			assert.True(t, apperror.HasCode(err, apperror.CodeInvalidDocumentState))
			assert.Equal(t, tt.status, doc.Status, "status unchanged")
		})
	}
}

func TestDocumentService_AskForValidation_RemoteFailureKeepsStatus(t *testing.T) {
	d := setupSync(t)
	svc := NewDocumentService(d.users, d.docs, d.pages, d.fetcher, d.sync)
	ctx := context.Background()

	owner := naturalUser(ptr("u-1"))
	doc := docWithStatus(owner, ptr(domain.DocumentCreated), ptr("d-1"))

	d.expectLock("document", doc.ID)
	d.docs.EXPECT().GetByID(ctx, doc.ID).Return(doc, nil)
	d.users.EXPECT().GetByID(ctx, owner.ID).Return(owner, nil)
	d.client.EXPECT().Update(ctx, gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := svc.AskForValidation(ctx, doc.ID)
	assert.True(t, apperror.HasCode(err, apperror.CodeRemote))
	assert.True(t, doc.HasStatus(domain.DocumentCreated))
}

func TestDocumentService_UploadPage(t *testing.T) {
	d := setupSync(t)
	svc := NewDocumentService(d.users, d.docs, d.pages, d.fetcher, d.sync)
	ctx := context.Background()

	owner := naturalUser(ptr("u-1"))
	doc := docWithStatus(owner, ptr(domain.DocumentCreated), ptr("d-1"))
	url := "https://files.example/passport.png"
	content := []byte{0x89, 'P', 'N', 'G'}

	d.expectLock("document", doc.ID)
	d.docs.EXPECT().GetByID(ctx, doc.ID).Return(doc, nil)
	d.users.EXPECT().GetByID(ctx, owner.ID).Return(owner, nil)
	d.fetcher.EXPECT().Fetch(ctx, url).Return(content, nil)
	d.client.EXPECT().Create(ctx, resource.Page{
		UserID:     "u-1",
		DocumentID: "d-1",
		File:       base64.StdEncoding.EncodeToString(content),
	}).Return(&resource.Response{}, nil)
	d.pages.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.Page) error {
		assert.Equal(t, doc.ID, p.DocumentID)
		assert.Equal(t, url, p.FileURL)
		return nil
	})

	page, err := svc.UploadPage(ctx, doc.ID, url)
	require.NoError(t, err)
	assert.Equal(t, url, page.FileURL)
}

func TestDocumentService_Pages(t *testing.T) {
	d := setupSync(t)
	svc := NewDocumentService(d.users, d.docs, d.pages, d.fetcher, d.sync)
	ctx := context.Background()

	doc := domain.NewDocument(uuid.New(), domain.DocumentIdentityProof)
	pages := []domain.Page{*domain.NewPage(doc.ID, "https://files.example.com/p1.png")}
	d.docs.EXPECT().GetByID(ctx, doc.ID).Return(doc, nil)
	d.pages.EXPECT().ListByDocument(ctx, doc.ID).Return(pages, nil)

	got, err := svc.Pages(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, pages, got)
}

func TestDocumentService_Pages_Errors(t *testing.T) {
	d := setupSync(t)
	svc := NewDocumentService(d.users, d.docs, d.pages, d.fetcher, d.sync)
	ctx := context.Background()

	missing := uuid.New()
	d.docs.EXPECT().GetByID(ctx, missing).Return(nil, nil)
	_, err := svc.Pages(ctx, missing)
	assert.True(t, apperror.HasCode(err, apperror.CodeNotFound))

	doc := domain.NewDocument(uuid.New(), domain.DocumentIdentityProof)
	d.docs.EXPECT().GetByID(ctx, doc.ID).Return(doc, nil)
	d.pages.EXPECT().ListByDocument(ctx, doc.ID).Return(nil, errors.New("connection reset"))
	_, err = svc.Pages(ctx, doc.ID)
	assert.True(t, apperror.HasCode(err, apperror.CodeInternal))
}

func TestDocumentService_UploadPage_BlobFailure(t *testing.T) {
	d := setupSync(t)
	svc := NewDocumentService(d.users, d.docs, d.pages, d.fetcher, d.sync)
	ctx := context.Background()

	owner := naturalUser(ptr("u-1"))
	doc := docWithStatus(owner, ptr(domain.DocumentCreated), ptr("d-1"))

	d.expectLock("document", doc.ID)
	d.docs.EXPECT().GetByID(ctx, doc.ID).Return(doc, nil)
	d.users.EXPECT().GetByID(ctx, owner.ID).Return(owner, nil)
	d.fetcher.EXPECT().Fetch(ctx, "https://files.example/x").Return(nil, errors.New("404"))

	_, err := svc.UploadPage(ctx, doc.ID, "https://files.example/x")
	assert.True(t, apperror.HasCode(err, apperror.CodeBlob))

	_, err = svc.UploadPage(ctx, doc.ID, "")
	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
}

func TestDocumentService_Register(t *testing.T) {
	d := setupSync(t)
	svc := NewDocumentService(d.users, d.docs, d.pages, d.fetcher, d.sync)
	ctx := context.Background()

	owner := naturalUser(nil)
	d.users.EXPECT().GetByID(ctx, owner.ID).Return(owner, nil)
	d.docs.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	doc, err := svc.Register(ctx, owner.ID, domain.DocumentIdentityProof)
	require.NoError(t, err)
	assert.True(t, doc.IsPending())
	assert.Equal(t, owner.ID, doc.UserID)

	_, err = svc.Register(ctx, owner.ID, "ZZ")
	assert.True(t, apperror.HasCode(err, apperror.CodeValidation))
}
