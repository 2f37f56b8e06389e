package upload

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartRequest(t *testing.T, field, filename, contentType string, body []byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if filename == "" {
		require.NoError(t, w.WriteField(field, string(body)))
	} else {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
		if contentType != "" {
			h.Set("Content-Type", contentType)
		}
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(body)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

var (
	jpegBytes = append([]byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00"), "rest-of-jpeg"...)
	pngBytes  = append([]byte("\x89PNG\r\n\x1a\n"), "rest-of-png"...)
)

func newTestUploader(t *testing.T, maxBytes int64) (*Uploader, *FSBucket) {
	t.Helper()
	b, err := NewFSBucket(t.TempDir())
	require.NoError(t, err)
	return NewUploader(b, "https://cdn.anloc.id/", maxBytes), b
}

func TestObjectName(t *testing.T) {
	name := ObjectName(time.UnixMilli(1700000000123))
	assert.Regexp(t, regexp.MustCompile(`^mobil-1700000000123-[0-9a-f]{8}$`), name)
	assert.NotEqual(t, name, ObjectName(time.UnixMilli(1700000000123)))
}

func TestFromRequest(t *testing.T) {
	u, b := newTestUploader(t, 1<<20)
	u.now = func() time.Time { return time.UnixMilli(1700000000000) }

	req := multipartRequest(t, FormField, "livina.jpg", "image/jpeg", jpegBytes)

	url, err := u.FromRequest(req)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "https://cdn.anloc.id/mobil-1700000000000-"), url)

	name := strings.TrimPrefix(url, "https://cdn.anloc.id/")
	f, obj, err := b.Open(context.Background(), name)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, jpegBytes, data)
	assert.Equal(t, "image/jpeg", obj.ContentType)
	assert.Equal(t, int64(len(jpegBytes)), obj.Size)
}

func TestFromRequestSniffsContentType(t *testing.T) {
	u, b := newTestUploader(t, 0)

	tests := []struct {
		name     string
		declared string
	}{
		{name: "undeclared", declared: ""},
		{name: "generic", declared: "application/octet-stream"},
		{name: "mislabelled", declared: "image/jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, err := u.FromRequest(multipartRequest(t, FormField, "mobil.png", tt.declared, pngBytes))
			require.NoError(t, err)

			f, obj, err := b.Open(context.Background(), url[strings.LastIndex(url, "/")+1:])
			require.NoError(t, err)
			defer func() { _ = f.Close() }()
			assert.Equal(t, "image/png", obj.ContentType)
		})
	}
}

func TestFromRequestRejectsNonImages(t *testing.T) {
	u, b := newTestUploader(t, 0)
	html := []byte("<html><script>alert(document.cookie)</script></html>")
	svg := []byte(`<?xml version="1.0"?><svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`)

	tests := []struct {
		name     string
		declared string
		body     []byte
	}{
		{name: "declared html", declared: "text/html", body: html},
		{name: "html posing as image", declared: "image/png", body: html},
		{name: "svg", declared: "image/svg+xml", body: svg},
		{name: "plain text", declared: "", body: []byte("just words")},
		{name: "empty", declared: "image/png", body: []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := u.FromRequest(multipartRequest(t, FormField, "x", tt.declared, tt.body))
			assert.ErrorIs(t, err, ErrUnsupportedType)
		})
	}

	entries, err := os.ReadDir(b.dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected uploads must not be stored")
}

func TestIsImage(t *testing.T) {
	assert.True(t, IsImage("image/png"))
	assert.True(t, IsImage("image/jpeg"))
	assert.False(t, IsImage("image/svg+xml"))
	assert.False(t, IsImage("text/html; charset=utf-8"))
	assert.False(t, IsImage("application/octet-stream"))
}

func TestFromRequestNoFile(t *testing.T) {
	u, _ := newTestUploader(t, 0)

	tests := []struct {
		name string
		req  *http.Request
	}{
		{name: "other field", req: multipartRequest(t, "image", "a.jpg", "image/jpeg", []byte("x"))},
		{name: "text value", req: multipartRequest(t, FormField, "", "", []byte("not a file"))},
		{name: "not multipart", req: httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := u.FromRequest(tt.req)
			assert.ErrorIs(t, err, ErrNoFile)
		})
	}
}

func TestFromRequestTooLarge(t *testing.T) {
	u, _ := newTestUploader(t, 64)

	_, err := u.FromRequest(multipartRequest(t, FormField, "big.bin", "application/octet-stream", bytes.Repeat([]byte("a"), 4096)))
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestBucketRejectsBadNames(t *testing.T) {
	b, err := NewFSBucket(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	for _, name := range []string{"", "../escape", "a/b", ".hidden", "x.json"} {
		_, err := b.Put(ctx, name, "text/plain", strings.NewReader("x"))
		assert.Error(t, err, name)

		_, _, err = b.Open(ctx, name)
		assert.ErrorIs(t, err, ErrObjectNotFound, name)
	}

	_, _, err = b.Open(ctx, "missing")
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

func TestBucketDoesNotOverwrite(t *testing.T) {
	b, err := NewFSBucket(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	_, err = b.Put(ctx, "same", "text/plain", strings.NewReader("one"))
	require.NoError(t, err)
	_, err = b.Put(ctx, "same", "text/plain", strings.NewReader("two"))
	assert.Error(t, err)
}
