package upload

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

var ErrObjectNotFound = errors.New("upload: object not found")

// Object describes a stored upload.
type Object struct {
	Name        string    `json:"name"`
	ContentType string    `json:"contentType"`
	Size        int64     `json:"size"`
	UploadedAt  time.Time `json:"uploadedAt"`
}

// Bucket is the object storage behind the upload endpoint.
type Bucket interface {
	Put(ctx context.Context, name, contentType string, r io.Reader) (Object, error)
	Open(ctx context.Context, name string) (*os.File, Object, error)
}

// FSBucket stores objects as files in a directory, each with a JSON sidecar
// carrying its content type.
type FSBucket struct {
	dir string
}

// NewFSBucket creates dir if needed.
func NewFSBucket(dir string) (*FSBucket, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create bucket dir: %w", err)
	}
	return &FSBucket{dir: dir}, nil
}

func (b *FSBucket) Put(ctx context.Context, name, contentType string, r io.Reader) (Object, error) {
	if !validName(name) {
		return Object{}, fmt.Errorf("invalid object name %q", name)
	}
	if err := ctx.Err(); err != nil {
		return Object{}, err
	}

	path := filepath.Join(b.dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return Object{}, fmt.Errorf("failed to create object: %w", err)
	}

	size, err := io.Copy(f, r)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return Object{}, fmt.Errorf("failed to write object: %w", err)
	}

	obj := Object{Name: name, ContentType: contentType, Size: size, UploadedAt: time.Now().UTC()}
	meta, err := json.Marshal(obj)
	if err != nil {
		_ = os.Remove(path)
		return Object{}, fmt.Errorf("failed to encode object meta: %w", err)
	}
	if err := os.WriteFile(path+".json", meta, 0o644); err != nil {
		_ = os.Remove(path)
		return Object{}, fmt.Errorf("failed to write object meta: %w", err)
	}
	return obj, nil
}

// Open returns the object's file; the caller closes it.
func (b *FSBucket) Open(_ context.Context, name string) (*os.File, Object, error) {
	if !validName(name) {
		return nil, Object{}, ErrObjectNotFound
	}

	path := filepath.Join(b.dir, name)
	raw, err := os.ReadFile(path + ".json")
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, Object{}, ErrObjectNotFound
		}
		return nil, Object{}, fmt.Errorf("failed to read object meta: %w", err)
	}

	var obj Object
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, Object{}, fmt.Errorf("failed to decode object meta: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, Object{}, ErrObjectNotFound
		}
		return nil, Object{}, fmt.Errorf("failed to open object: %w", err)
	}
	return f, obj, nil
}

// validName rejects anything that could escape the bucket directory or
// collide with a sidecar.
func validName(name string) bool {
	return name != "" &&
		!strings.HasPrefix(name, ".") &&
		!strings.HasSuffix(name, ".json") &&
		filepath.Base(name) == name &&
		!strings.ContainsAny(name, `/\`)
}
