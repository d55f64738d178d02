package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"

	"doclib/internal/clock"
	"doclib/internal/model"
	"doclib/internal/repository"
	"doclib/internal/storage"
)

// DocumentListResult is the service-level DTO for the paginated catalog.
type DocumentListResult struct {
	Items []model.Document `json:"data"`
	Total int              `json:"total"`
}

// ListOptions carries catalog query parameters. Page is 1-based. Unknown
// SortBy values fall back to uploadedAt descending without an error.
type ListOptions struct {
	SearchTerm string
	SortBy     string
	SortOrder  string
	Page       int
	PageSize   int
}

// FileStream is a streamed file plus the metadata a transport needs to
// serve it: display name for the disposition header, inferred content type,
// and sizes for Content-Length / Content-Range.
type FileStream struct {
	Content     io.ReadCloser
	Name        string
	ContentType string
	Size        int64 // bytes in Content
	TotalSize   int64 // full object size (differs from Size on ranged reads)
	Offset      int64
}

// DocumentService defines the use cases for handling documents.
type DocumentService interface {
	// Upload uploads the content to object storage, saves metadata to DB, and
	// rolls back storage if the DB save fails. The stored object name is a
	// UUID prefix plus the original filename, so same-named uploads never
	// collide.
	Upload(ctx context.Context, r io.Reader, originalName string, contentType string, size int64) (*model.Document, error)

	// List returns the catalog filtered, sorted, and paginated.
	List(ctx context.Context, opts ListOptions) (*DocumentListResult, error)

	// Get returns a single document by its ID.
	Get(ctx context.Context, id string) (*model.Document, error)

	// Download streams the document's bytes and increments its download
	// counter by exactly 1.
	Download(ctx context.Context, id string) (*FileStream, error)

	// Preview streams a previewable document, optionally a byte range of it
	// (length <= 0 means through the end). Types outside the preview table
	// are rejected with ErrPreviewNotSupported. Downloads are not counted.
	Preview(ctx context.Context, id string, offset, length int64) (*FileStream, error)

	// Delete removes a document from storage and the repository; its share
	// links are cascade-deleted with the row.
	Delete(ctx context.Context, id string) error
}

const defaultPageSize = 5

// documentService is a concrete implementation of DocumentService.
type documentService struct {
	store storage.Storage
	repo  repository.DocumentRepository
	clk   clock.Clock
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage, repo repository.DocumentRepository, clk clock.Clock) DocumentService {
	return &documentService{store: store, repo: repo, clk: clk}
}

// objectKey maps a stored name to its object storage key.
func objectKey(storedName string) string {
	return path.Join("documents", storedName)
}

func (s *documentService) Upload(ctx context.Context, r io.Reader, originalName string, contentType string, size int64) (*model.Document, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	// UUID prefix keeps concurrent uploads of the same filename apart.
	storedName := uuid.New().String() + "_" + originalName
	key := objectKey(storedName)

	objInfo, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalName,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	doc := &model.Document{
		ID:          uuid.New().String(),
		Name:        originalName,
		StoredName:  storedName,
		Size:        objInfo.Size,
		ContentType: contentType,
		UploadedAt:  s.clk.Now().UTC(),
		Downloads:   0,
	}
	stored, err := s.repo.Create(ctx, doc)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	return stored, nil
}

// List returns the paginated catalog without exposing repository types.
func (s *documentService) List(ctx context.Context, opts ListOptions) (*DocumentListResult, error) {
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize <= 0 {
		opts.PageSize = defaultPageSize
	}

	res, err := s.repo.List(ctx, repository.ListQuery{
		Search:    opts.SearchTerm,
		SortBy:    opts.SortBy,
		SortOrder: opts.SortOrder,
		Limit:     opts.PageSize,
		Offset:    (opts.Page - 1) * opts.PageSize,
	})
	if err != nil {
		return nil, err
	}
	return &DocumentListResult{Items: res.Items, Total: res.Total}, nil
}

// Get returns a document by ID.
func (s *documentService) Get(ctx context.Context, id string) (*model.Document, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	doc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

// Download opens the stored object, counts the download, and returns the
// stream with the content type inferred from the original filename.
func (s *documentService) Download(ctx context.Context, id string) (*FileStream, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	content, info, err := s.store.Get(ctx, objectKey(doc.StoredName))
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, ErrFileMissing
		}
		return nil, fmt.Errorf("open object: %w", err)
	}

	if err := s.repo.IncrementDownloads(ctx, doc.ID); err != nil {
		content.Close()
		return nil, fmt.Errorf("count download: %w", err)
	}

	return &FileStream{
		Content:     content,
		Name:        doc.Name,
		ContentType: DownloadContentType(doc.Name),
		Size:        info.Size,
		TotalSize:   info.Size,
	}, nil
}

// Preview streams a previewable document without touching the download
// counter. Range reads let media be seeked without a full transfer.
func (s *documentService) Preview(ctx context.Context, id string, offset, length int64) (*FileStream, error) {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	ct := PreviewContentType(doc.Name)
	if ct == octetStream {
		return nil, ErrPreviewNotSupported
	}

	var (
		content io.ReadCloser
		info    storage.ObjectInfo
	)
	if offset > 0 || length > 0 {
		content, info, err = s.store.GetRange(ctx, objectKey(doc.StoredName), offset, length)
	} else {
		content, info, err = s.store.Get(ctx, objectKey(doc.StoredName))
	}
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, ErrFileMissing
		}
		return nil, fmt.Errorf("open object: %w", err)
	}

	size := info.Size - offset
	if length > 0 && length < size {
		size = length
	}
	if size < 0 {
		size = 0
	}

	return &FileStream{
		Content:     content,
		Name:        doc.Name,
		ContentType: ct,
		Size:        size,
		TotalSize:   info.Size,
		Offset:      offset,
	}, nil
}

// Delete removes a document from storage, then deletes its record.
func (s *documentService) Delete(ctx context.Context, id string) error {
	doc, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	// Delete from storage first; if this fails, keep the DB row so the
	// object stays reachable.
	if err := s.store.Delete(ctx, objectKey(doc.StoredName)); err != nil {
		return fmt.Errorf("delete storage: %w", err)
	}
	// The share_links FK cascades, so the row's links are removed with it.
	return s.repo.Delete(ctx, id)
}
