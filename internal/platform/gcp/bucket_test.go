package gcp

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yungbote/sns-consult-backend/internal/platform/logger"
)

func newEmulatorBucket(t *testing.T, h http.Handler) BucketService {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	t.Setenv("STORAGE_EMULATOR_HOST", srv.URL)

	bs, err := NewBucketService(t.Context(), logger.Nop(), BucketConfig{Name: "minutes", EmulatorHost: srv.URL})
	if err != nil {
		t.Fatalf("NewBucketService: %v", err)
	}
	t.Cleanup(func() { _ = bs.Close() })
	return bs
}

func TestDownloadFileEmulator(t *testing.T) {
	bs := newEmulatorBucket(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/storage/v1/b/minutes/o/latest/minutes.docx" || r.URL.Query().Get("alt") != "media" {
			t.Errorf("unexpected request %s", r.URL.String())
			http.NotFound(w, r)
			return
		}
		_, _ = io.WriteString(w, "docx-bytes")
	}))

	rc, err := bs.DownloadFile(t.Context(), "latest/minutes.docx")
	if err != nil {
		t.Fatalf("DownloadFile: %v", err)
	}
	defer rc.Close()
	body, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(body) != "docx-bytes" {
		t.Fatalf("body: want=%q got=%q", "docx-bytes", string(body))
	}
}

func TestDownloadFileEmulatorNotFound(t *testing.T) {
	bs := newEmulatorBucket(t, http.NotFoundHandler())

	_, err := bs.DownloadFile(t.Context(), "missing.docx")
	if !errors.Is(err, ErrObjectNotFound) {
		t.Fatalf("DownloadFile: want ErrObjectNotFound, got %v", err)
	}
}

func TestNewBucketServiceRequiresName(t *testing.T) {
	if _, err := NewBucketService(t.Context(), logger.Nop(), BucketConfig{}); err == nil {
		t.Fatalf("expected error for empty bucket name")
	}
}

func TestContentTypeForKey(t *testing.T) {
	cases := map[string]string{
		"latest/minutes.docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		"A.JSON":              "application/json",
		"notes.txt?x=1":       "text/plain; charset=utf-8",
		"audio.bin":           "",
	}
	for key, want := range cases {
		if got := contentTypeForKey(key); got != want {
			t.Fatalf("contentTypeForKey(%q): want=%q got=%q", key, want, got)
		}
	}
}
