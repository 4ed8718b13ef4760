// Package attachment stores message attachments in the blob store.
package attachment

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/s21platform/quickchat/internal/config"
	"github.com/s21platform/quickchat/internal/model"
	"github.com/s21platform/quickchat/internal/pkg/logger"
)

// PreviewFileName is the name given to pasted or dropped images, which carry
// no name of their own.
const PreviewFileName = "image.png"

const (
	outcomeUploaded = "uploaded"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

type State string

const (
	Idle      State = "idle"
	Uploading State = "uploading"
)

type File struct {
	Name     string
	MIMEType string
	Data     []byte
}

func (f File) Size() int64 {
	return int64(len(f.Data))
}

// ContentType is the declared MIME type, or the one sniffed from the content
// when none was declared.
func (f File) ContentType() string {
	if f.MIMEType != "" {
		return f.MIMEType
	}
	return mimetype.Detect(f.Data).String()
}

type Uploader struct {
	blob      BlobStore
	validator Validator
	metrics   Metrics

	mu       sync.Mutex
	inFlight int
}

func New(blob BlobStore, validator Validator, metrics Metrics) *Uploader {
	return &Uploader{
		blob:      blob,
		validator: validator,
		metrics:   metrics,
	}
}

// State is Uploading while at least one upload has passed validation and not
// yet finished.
func (u *Uploader) State() State {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.inFlight > 0 {
		return Uploading
	}
	return Idle
}

// Upload stores file under a fresh key and returns its public URL. Files over
// the size limit are rejected before the blob store is contacted. Once started
// the upload is not cancelled with ctx.
func (u *Uploader) Upload(ctx context.Context, file File) (string, error) {
	log := logger.FromContext(ctx, config.KeyLogger)
	log.AddFuncName("Upload")

	size := file.Size()
	if err := u.validator.ValidateAttachment(file.Name, size); err != nil {
		u.metrics.Upload(outcomeRejected, size)
		log.Warn(fmt.Sprintf("attachment %q rejected: %v", file.Name, err))
		return "", err
	}

	u.begin()
	defer u.end()

	publicURL, err := u.blob.Put(context.WithoutCancel(ctx), ObjectKey(file.Name), file.ContentType(), file.Data)
	if err != nil {
		u.metrics.Upload(outcomeFailed, size)
		log.Error(fmt.Sprintf("failed to upload %q: %v", file.Name, err))
		return "", model.NetworkError("upload attachment", err)
	}

	u.metrics.Upload(outcomeUploaded, size)

	return publicURL, nil
}

// Fetch reads back the bytes of a preview so it can be uploaded. Only objects
// of the blob store are read.
func (u *Uploader) Fetch(ctx context.Context, previewURL string) (File, error) {
	key, err := u.blob.KeyOf(previewURL)
	if err != nil {
		return File{}, err
	}

	data, contentType, err := u.blob.Get(ctx, key)
	if err != nil {
		if errors.Is(err, model.ErrValidation) {
			return File{}, err
		}
		return File{}, model.NetworkError("fetch preview", err)
	}

	return File{Name: PreviewFileName, MIMEType: contentType, Data: data}, nil
}

func (u *Uploader) begin() {
	u.mu.Lock()
	u.inFlight++
	u.mu.Unlock()
}

func (u *Uploader) end() {
	u.mu.Lock()
	u.inFlight--
	u.mu.Unlock()
}

var unsafeKeyChars = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// ObjectKey derives a collision-resistant blob key from an original file name:
// "My Photo.PNG" becomes "my-photo-<uuid>.png".
func ObjectKey(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(filepath.Base(name), ext)

	base = strings.Trim(unsafeKeyChars.ReplaceAllString(strings.ToLower(base), "-"), "-")
	if base == "" {
		base = "file"
	}

	ext = unsafeKeyChars.ReplaceAllString(strings.ToLower(strings.TrimPrefix(ext, ".")), "")
	if ext != "" {
		ext = "." + ext
	}

	return base + "-" + uuid.NewString() + ext
}
