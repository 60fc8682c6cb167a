// Package share publishes a tier list as an immutable, shareable snapshot.
//
// Publishing uploads every inline image to a content store, rewrites the
// items to point at the uploaded URLs and inserts the result as a new record.
// Any failure aborts the whole attempt before the record is inserted.
package share

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync/atomic"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/meur/tierboard/internal/models"
)

var (
	// ErrInProgress is returned when a publish is attempted while another is in flight
	ErrInProgress = errors.New("share already in progress")
	// ErrInvalidImage is returned for inline image data that cannot be decoded
	ErrInvalidImage = errors.New("invalid inline image")
)

// defaultMIME is assumed when a data URL carries no media type
const defaultMIME = "image/webp"

// Image is decoded inline image data
type Image struct {
	MIME string
	Data []byte
}

// Backend is the remote collaborator holding uploaded images and share records
type Backend interface {
	// UploadImage stores an image under the share session and returns its public URL.
	UploadImage(ctx context.Context, sessionID, itemID string, img Image) (string, error)

	// InsertShareRecord stores a republished state and returns the new record ID.
	InsertShareRecord(ctx context.Context, state models.TierListState) (string, error)
}

// Result describes a published share
type Result struct {
	ID  string
	URL string
}

// Publisher runs share attempts, at most one at a time
type Publisher struct {
	backend      Backend
	origin       string
	logger       *slog.Logger
	sharing      atomic.Bool
	newSessionID func() string
}

// NewPublisher creates a Publisher producing links under origin
func NewPublisher(backend Backend, origin string, logger *slog.Logger) *Publisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Publisher{
		backend:      backend,
		origin:       strings.TrimSuffix(origin, "/"),
		logger:       logger,
		newSessionID: uuid.NewString,
	}
}

// InProgress reports whether a publish is in flight
func (p *Publisher) InProgress() bool {
	return p.sharing.Load()
}

// Publish uploads inline images, inserts the republished state and returns
// the share link. It fails with ErrInProgress while another attempt runs.
func (p *Publisher) Publish(ctx context.Context, state models.TierListState) (Result, error) {
	if !p.sharing.CompareAndSwap(false, true) {
		return Result{}, ErrInProgress
	}
	defer p.sharing.Store(false)

	sessionID := p.newSessionID()
	urls, err := p.uploadImages(ctx, sessionID, state.Items)
	if err != nil {
		p.logger.Error("share failed", "session", sessionID, "error", err)
		return Result{}, err
	}

	id, err := p.backend.InsertShareRecord(ctx, Republish(state, urls))
	if err != nil {
		p.logger.Error("share failed", "session", sessionID, "error", err)
		return Result{}, fmt.Errorf("failed to insert share record: %w", err)
	}
	if id == "" {
		return Result{}, errors.New("failed to insert share record: no id returned")
	}

	link := Link(p.origin, id)
	p.logger.Info("tier list shared", "id", id, "images", len(urls), "url", link)
	return Result{ID: id, URL: link}, nil
}

func (p *Publisher) uploadImages(ctx context.Context, sessionID string, items map[string]models.Item) (map[string]string, error) {
	ids := make([]string, 0, len(items))
	for id, item := range items {
		if item.ImageBase64 != "" {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)

	urls := make(map[string]string, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		img, err := DecodeDataURL(items[id].ImageBase64)
		if err != nil {
			return nil, fmt.Errorf("failed to upload image %s: %w", id, err)
		}
		url, err := p.backend.UploadImage(ctx, sessionID, id, img)
		if err != nil {
			return nil, fmt.Errorf("failed to upload image %s: %w", id, err)
		}
		p.logger.Debug("image uploaded", "item", id, "size", humanize.Bytes(uint64(len(img.Data))))
		urls[id] = url
	}
	return urls, nil
}

// Republish returns a copy of state where every item with an uploaded image
// drops its inline data in favour of the public URL.
func Republish(state models.TierListState, urls map[string]string) models.TierListState {
	out := state.Clone()
	for id, url := range urls {
		item, ok := out.Items[id]
		if !ok {
			continue
		}
		item.ImageBase64 = ""
		item.ImageURL = url
		out.Items[id] = item
	}
	return out
}

// Link returns the share link of a record
func Link(origin, recordID string) string {
	return strings.TrimSuffix(origin, "/") + "/share/" + recordID
}

// DecodeDataURL decodes a base64 data URL such as "data:image/png;base64,...".
func DecodeDataURL(s string) (Image, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return Image{}, fmt.Errorf("%w: not a data URL", ErrInvalidImage)
	}
	header, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return Image{}, fmt.Errorf("%w: missing payload", ErrInvalidImage)
	}
	mime, isBase64 := strings.CutSuffix(header, ";base64")
	if !isBase64 {
		return Image{}, fmt.Errorf("%w: not base64 encoded", ErrInvalidImage)
	}
	if mime == "" {
		mime = defaultMIME
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return Image{MIME: mime, Data: data}, nil
}

// EncodeDataURL encodes image bytes as a base64 data URL
func EncodeDataURL(mime string, data []byte) string {
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data)
}
