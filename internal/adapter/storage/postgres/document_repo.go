package postgres

import (
	"context"
	"errors"
	"fmt"

	"mangopay-sync/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DocumentRepo implements ports.DocumentRepository and ports.PageRepository.
type DocumentRepo struct {
	pool Pool
}

// NewDocumentRepo creates a new DocumentRepo.
func NewDocumentRepo(pool Pool) *DocumentRepo {
	return &DocumentRepo{pool: pool}
}

const documentColumns = `id, remote_id, user_id, type, status, refused_reason_type, refused_reason_message, created_at, updated_at`

func scanDocument(row pgx.Row) (*domain.Document, error) {
	var (
		d       domain.Document
		docType string
		status  *string
	)
	if err := row.Scan(
		&d.ID, &d.RemoteID, &d.UserID, &docType, &status,
		&d.RefusedReasonType, &d.RefusedReasonMessage, &d.CreatedAt, &d.UpdatedAt,
	); err != nil {
		return nil, err
	}
	d.Type = domain.DocumentType(docType)
	if status != nil {
		s := domain.DocumentStatus(*status)
		d.Status = &s
	}
	return &d, nil
}

func documentStatus(d *domain.Document) *string {
	if d.Status == nil {
		return nil
	}
	s := string(*d.Status)
	return &s
}

// Create inserts a new document.
func (r *DocumentRepo) Create(ctx context.Context, d *domain.Document) error {
	query := `INSERT INTO mangopay_documents (` + documentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		d.ID, d.RemoteID, d.UserID, string(d.Type), documentStatus(d),
		d.RefusedReasonType, d.RefusedReasonMessage, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// GetByID fetches a document by its UUID.
func (r *DocumentRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM mangopay_documents WHERE id = $1`

	d, err := scanDocument(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document by id: %w", err)
	}
	return d, nil
}

// ListByUser returns every document of a user, oldest first.
func (r *DocumentRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Document, error) {
	query := `SELECT ` + documentColumns + ` FROM mangopay_documents WHERE user_id = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return docs, nil
}

// Update mirrors the remote fields of a document.
func (r *DocumentRepo) Update(ctx context.Context, d *domain.Document) error {
	query := `UPDATE mangopay_documents SET remote_id = $1, status = $2, refused_reason_type = $3,
		refused_reason_message = $4, updated_at = NOW()
		WHERE id = $5`

	return execOne(ctx, r.pool, "update document", query,
		d.RemoteID, documentStatus(d), d.RefusedReasonType, d.RefusedReasonMessage, d.ID,
	)
}

// PageRepo implements ports.PageRepository. Pages are insert-only.
type PageRepo struct {
	pool Pool
}

// NewPageRepo creates a new PageRepo.
func NewPageRepo(pool Pool) *PageRepo {
	return &PageRepo{pool: pool}
}

func (r *PageRepo) Create(ctx context.Context, p *domain.Page) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO mangopay_pages (id, document_id, file_url, created_at) VALUES ($1, $2, $3, $4)`,
		p.ID, p.DocumentID, p.FileURL, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert page: %w", err)
	}
	return nil
}

func (r *PageRepo) ListByDocument(ctx context.Context, documentID uuid.UUID) ([]domain.Page, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, document_id, file_url, created_at FROM mangopay_pages WHERE document_id = $1 ORDER BY created_at`,
		documentID,
	)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	defer rows.Close()

	var pages []domain.Page
	for rows.Next() {
		var p domain.Page
		if err := rows.Scan(&p.ID, &p.DocumentID, &p.FileURL, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan page: %w", err)
		}
		pages = append(pages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	return pages, nil
}
