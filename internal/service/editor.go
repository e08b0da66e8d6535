package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"

	"tendas-backend/internal/domain"
	"tendas-backend/internal/repository"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

const (
	// MaxUploadBytes is the per-file ceiling for uploaded images (5 MiB).
	MaxUploadBytes = 5 * 1024 * 1024
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyImageSet   = errors.New("a product must keep at least one image")
	ErrCommitRejected  = errors.New("failed to save images")

	externalURLPattern = regexp.MustCompile(`^https?://.+\..+`)
)

// FileUpload is one candidate file for the image buffer.
type FileUpload struct {
	Name string
	Data []byte
}

// FileRejection reports why a single file in a batch was refused.
type FileRejection struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// BatchResult summarizes a file batch. Every file is settled exactly once:
// Accepted + len(Rejected) always equals the batch size.
type BatchResult struct {
	Accepted int             `json:"accepted"`
	Rejected []FileRejection `json:"rejected,omitempty"`
}

// ImageSetEditor stages a candidate image list for one product. All edits are
// in-memory until Commit, which validates the buffer and writes the full list
// through the catalog repository. A transient empty buffer is allowed while
// editing; only Commit enforces the at-least-one-image invariant.
type ImageSetEditor struct {
	repo    repository.CatalogRepository
	product domain.Product
	staged  []string
	client  *http.Client
	logger  *zap.Logger
}

// NewImageSetEditor loads the product and seeds the buffer with its
// persisted images.
func NewImageSetEditor(ctx context.Context, repo repository.CatalogRepository, productID int, logger *zap.Logger) (*ImageSetEditor, error) {
	for _, p := range repo.Load(ctx) {
		if p.ID == productID {
			return &ImageSetEditor{
				repo:    repo,
				product: p.Clone(),
				staged:  append([]string(nil), p.Images...),
				client:  http.DefaultClient,
				logger:  logger,
			}, nil
		}
	}
	return nil, ErrProductNotFound
}

// Images returns a copy of the staged buffer.
func (e *ImageSetEditor) Images() []string {
	return append([]string(nil), e.staged...)
}

// Add appends a reference if it is non-blank after trimming. No dedupe.
func (e *ImageSetEditor) Add(url string) {
	if trimmed := strings.TrimSpace(url); trimmed != "" {
		e.staged = append(e.staged, trimmed)
	}
}

// AddExternal appends an external image URL after a shape check and a
// best-effort load probe: the URL must look like http(s), respond without
// error, and sniff as an image.
func (e *ImageSetEditor) AddExternal(ctx context.Context, url string) error {
	url = strings.TrimSpace(url)
	if !externalURLPattern.MatchString(url) {
		return errors.New("please enter a valid http(s) image URL")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.New("please enter a valid http(s) image URL")
	}

	resp, err := e.client.Do(req)
	if err != nil {
		e.logger.Warn("External image probe failed", zap.String("url", url), zap.Error(err))
		return errors.New("could not load image from the provided URL")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return errors.New("could not load image from the provided URL")
	}

	kind, err := mimetype.DetectReader(resp.Body)
	if err != nil || !strings.HasPrefix(kind.String(), "image/") {
		return errors.New("the provided URL does not point to an image")
	}

	e.staged = append(e.staged, url)
	return nil
}

// AddFiles stages a batch of uploaded files. Each file is accepted or
// rejected independently: a rejected file never aborts the rest of the
// batch. Accepted files are embedded as data URLs.
func (e *ImageSetEditor) AddFiles(files []FileUpload) BatchResult {
	var result BatchResult
	for _, f := range files {
		if reason := e.stageFile(f); reason != "" {
			result.Rejected = append(result.Rejected, FileRejection{Name: f.Name, Reason: reason})
			continue
		}
		result.Accepted++
	}
	return result
}

func (e *ImageSetEditor) stageFile(f FileUpload) string {
	if len(f.Data) == 0 {
		return fmt.Sprintf("file %s is empty", f.Name)
	}
	if len(f.Data) > MaxUploadBytes {
		return fmt.Sprintf("file %s exceeds the 5MB size limit", f.Name)
	}

	kind := mimetype.Detect(f.Data)
	if !strings.HasPrefix(kind.String(), "image/") {
		return fmt.Sprintf("file %s is not an image", f.Name)
	}

	var buf bytes.Buffer
	buf.WriteString("data:")
	buf.WriteString(kind.String())
	buf.WriteString(";base64,")
	buf.WriteString(base64.StdEncoding.EncodeToString(f.Data))
	e.staged = append(e.staged, buf.String())
	return ""
}

// Remove drops the entry at index; out-of-range is a no-op. The buffer may
// go transiently empty.
func (e *ImageSetEditor) Remove(index int) {
	if index < 0 || index >= len(e.staged) {
		return
	}
	e.staged = append(e.staged[:index], e.staged[index+1:]...)
}

// MoveUp swaps the entry with its predecessor; no-op at index 0.
func (e *ImageSetEditor) MoveUp(index int) {
	if index <= 0 || index >= len(e.staged) {
		return
	}
	e.staged[index-1], e.staged[index] = e.staged[index], e.staged[index-1]
}

// MoveDown swaps the entry with its successor; no-op at the last index.
func (e *ImageSetEditor) MoveDown(index int) {
	if index < 0 || index >= len(e.staged)-1 {
		return
	}
	e.staged[index], e.staged[index+1] = e.staged[index+1], e.staged[index]
}

// Reset discards the buffer and reloads the product's persisted images.
func (e *ImageSetEditor) Reset(ctx context.Context) {
	for _, p := range e.repo.Load(ctx) {
		if p.ID == e.product.ID {
			e.product = p.Clone()
			break
		}
	}
	e.staged = append([]string(nil), e.product.Images...)
}

// Commit validates the buffer and writes it through the catalog repository.
func (e *ImageSetEditor) Commit(ctx context.Context) error {
	if len(repository.FilterImageRefs(e.staged)) == 0 {
		return ErrEmptyImageSet
	}
	if !e.repo.UpdateImages(ctx, e.product.ID, e.staged) {
		return ErrCommitRejected
	}
	return nil
}
