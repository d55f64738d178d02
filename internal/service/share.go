package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"doclib/internal/clock"
	"doclib/internal/model"
	"doclib/internal/repository"
	"doclib/internal/storage"
)

// generateDurations is the allowed validity set for newly minted links.
var generateDurations = map[string]time.Duration{
	"1h": time.Hour,
	"1d": 24 * time.Hour,
	"7d": 7 * 24 * time.Hour,
}

// changeDurations is the narrower set accepted when an existing link's
// validity is reset. 7-day windows can only be granted at creation.
var changeDurations = map[string]time.Duration{
	"1h": time.Hour,
	"1d": 24 * time.Hour,
}

// ShareService mints time-limited share links, resets their validity, and
// resolves inbound share tokens to file streams.
type ShareService interface {
	// Generate mints a new share link for the document with
	// expiry = now + duration, where duration is one of 1h, 1d, 7d.
	// Returns the full share URL.
	Generate(ctx context.Context, documentID, duration string) (string, error)

	// ChangeValidity overwrites the link's expiry to now + newDuration
	// (1h or 1d). The link ID is unchanged, and an already expired link is
	// revived rather than rejected. Returns the share URL.
	ChangeValidity(ctx context.Context, shareID, newDuration string) (string, error)

	// Resolve validates the share token against the current time and, if the
	// window is still open, streams the underlying file. The document's
	// download counter is not touched on this path.
	Resolve(ctx context.Context, shareID string) (*FileStream, error)
}

type shareService struct {
	store   storage.Storage
	links   repository.ShareLinkRepository
	docs    repository.DocumentRepository
	clk     clock.Clock
	baseURL string
}

// NewShareService constructs a ShareService. baseURL is the public base the
// /shared/{id} path is appended to.
func NewShareService(store storage.Storage, links repository.ShareLinkRepository, docs repository.DocumentRepository, clk clock.Clock, baseURL string) ShareService {
	return &shareService{
		store:   store,
		links:   links,
		docs:    docs,
		clk:     clk,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *shareService) shareURL(id string) string {
	return s.baseURL + "/shared/" + id
}

func (s *shareService) Generate(ctx context.Context, documentID, duration string) (string, error) {
	if documentID == "" {
		return "", ErrIDRequired
	}
	d, ok := generateDurations[duration]
	if !ok {
		return "", fmt.Errorf("%w: allowed values are 1h, 1d, 7d", ErrInvalidDuration)
	}

	// The document must exist before a link is persisted against it.
	if _, err := s.docs.FindByID(ctx, documentID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}

	now := s.clk.Now().UTC()
	link := &model.ShareLink{
		ID:         uuid.New().String(),
		DocumentID: documentID,
		ExpiresAt:  now.Add(d),
		CreatedAt:  now,
	}
	stored, err := s.links.Create(ctx, link)
	if err != nil {
		return "", fmt.Errorf("save share link: %w", err)
	}
	return s.shareURL(stored.ID), nil
}

func (s *shareService) ChangeValidity(ctx context.Context, shareID, newDuration string) (string, error) {
	if shareID == "" {
		return "", ErrIDRequired
	}
	d, ok := changeDurations[newDuration]
	if !ok {
		return "", fmt.Errorf("%w: allowed values are 1h, 1d", ErrInvalidDuration)
	}

	link, err := s.links.FindByID(ctx, shareID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrLinkNotFound
		}
		return "", err
	}

	// No expiry check here: resetting the window on an expired link revives
	// it. Validity changes are operator-driven, so a stale link coming back
	// to life is the intended outcome.
	expiresAt := s.clk.Now().UTC().Add(d)
	if err := s.links.UpdateExpiry(ctx, link.ID, expiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrLinkNotFound
		}
		return "", fmt.Errorf("update share link: %w", err)
	}
	return s.shareURL(link.ID), nil
}

func (s *shareService) Resolve(ctx context.Context, shareID string) (*FileStream, error) {
	if shareID == "" {
		return nil, ErrIDRequired
	}

	link, err := s.links.FindByID(ctx, shareID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrLinkNotFound
		}
		return nil, err
	}

	// Valid strictly before the expiry instant; at the instant itself the
	// link is already dead. Expired rows stay in storage untouched.
	if link.ExpiredAt(s.clk.Now().UTC()) {
		return nil, ErrLinkExpired
	}

	// Cascade-delete should make a dangling link impossible, but the row is
	// checked anyway.
	doc, err := s.docs.FindByID(ctx, link.DocumentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	content, info, err := s.store.Get(ctx, objectKey(doc.StoredName))
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, ErrFileMissing
		}
		return nil, fmt.Errorf("open object: %w", err)
	}

	return &FileStream{
		Content:     content,
		Name:        doc.Name,
		ContentType: DownloadContentType(doc.Name),
		Size:        info.Size,
		TotalSize:   info.Size,
	}, nil
}
