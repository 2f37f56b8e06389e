// Package upload accepts multipart file uploads and stores them in a bucket.
package upload

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrSnakeDoc/klub/internal/utils"
)

const (
	FormField  = "file"
	namePrefix = "mobil"
	sniffBytes = 512
)

var (
	ErrNoFile          = errors.New("no file uploaded")
	ErrTooLarge        = errors.New("file too large")
	ErrUnsupportedType = errors.New("only image uploads are accepted")
)

// Uploader turns an upload request into a stored object and its public URL.
type Uploader struct {
	bucket    Bucket
	publicURL string
	maxBytes  int64
	now       func() time.Time
}

func NewUploader(bucket Bucket, publicURL string, maxBytes int64) *Uploader {
	return &Uploader{
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
		maxBytes:  maxBytes,
		now:       time.Now,
	}
}

// ObjectName builds a name like mobil-1700000000000-1a2b3c4d.
func ObjectName(now time.Time) string {
	return fmt.Sprintf("%s-%d-%s", namePrefix, now.UnixMilli(), strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// FromRequest stores the multipart field "file" of r and returns its URL.
// A missing or non-file field yields ErrNoFile, an oversized body ErrTooLarge
// and content that does not sniff as an image ErrUnsupportedType.
func (u *Uploader) FromRequest(r *http.Request) (string, error) {
	if u.maxBytes > 0 {
		r.Body = http.MaxBytesReader(nil, r.Body, u.maxBytes)
	}

	file, _, err := r.FormFile(FormField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
			return "", ErrTooLarge
		}
		return "", ErrNoFile
	}
	defer utils.Close(file)

	// The declared part type is client input; the bytes decide.
	contentType, body, err := sniff(file)
	if err != nil {
		return "", err
	}
	if !IsImage(contentType) {
		return "", fmt.Errorf("%w: got %s", ErrUnsupportedType, contentType)
	}

	name := ObjectName(u.now())
	if _, err := u.bucket.Put(r.Context(), name, contentType, body); err != nil {
		return "", err
	}
	return u.publicURL + "/" + name, nil
}

// IsImage reports whether contentType is a raster image type. SVG is
// excluded since it can carry script.
func IsImage(contentType string) bool {
	return strings.HasPrefix(contentType, "image/") && !strings.HasPrefix(contentType, "image/svg")
}

// sniff detects the content type from the first bytes of r and returns a
// reader that still yields the whole content.
func sniff(r io.Reader) (string, io.Reader, error) {
	head := make([]byte, sniffBytes)
	n, err := io.ReadFull(r, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", nil, fmt.Errorf("failed to read upload: %w", err)
	}
	head = head[:n]
	return http.DetectContentType(head), io.MultiReader(bytes.NewReader(head), r), nil
}
