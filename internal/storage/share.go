package storage

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/meur/tierboard/internal/models"
	"github.com/meur/tierboard/internal/share"
)

// ShareBackend publishes shares into the local database, serving uploaded
// images under <origin>/images/.
type ShareBackend struct {
	store  *Store
	origin string
}

// NewShareBackend creates a share backend over store
func NewShareBackend(store *Store, origin string) *ShareBackend {
	return &ShareBackend{store: store, origin: strings.TrimSuffix(origin, "/")}
}

// UploadImage stores the image and returns its public URL
func (b *ShareBackend) UploadImage(ctx context.Context, sessionID, itemID string, img share.Image) (string, error) {
	if err := b.store.PutImage(ctx, sessionID, itemID, img.MIME, img.Data); err != nil {
		return "", fmt.Errorf("failed to store image: %w", err)
	}
	return ImageURL(b.origin, sessionID, itemID), nil
}

// InsertShareRecord stores the state as a new share record
func (b *ShareBackend) InsertShareRecord(ctx context.Context, state models.TierListState) (string, error) {
	rec, err := b.store.CreateShareRecord(ctx, state)
	if err != nil {
		return "", fmt.Errorf("failed to create share record: %w", err)
	}
	return rec.ID, nil
}

// ImageURL returns the public URL of an uploaded image
func ImageURL(origin, sessionID, itemID string) string {
	return fmt.Sprintf("%s/images/%s/%s", strings.TrimSuffix(origin, "/"),
		url.PathEscape(sessionID), url.PathEscape(itemID))
}
