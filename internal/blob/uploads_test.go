package blob_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/adarkz/YellowCarGame-chef/internal/blob"
	"github.com/adarkz/YellowCarGame-chef/internal/blob/localfs"
)

// pngHeader is enough for http.DetectContentType to report image/png.
var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

type recordingObserver struct {
	mu      sync.Mutex
	results []string
}

func (o *recordingObserver) UploadFinished(result string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.results = append(o.results, result)
}

func (o *recordingObserver) snapshot() []string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]string(nil), o.results...)
}

func setupUploads(t *testing.T, maxBytes int64) (*blob.Uploads, *httptest.Server, *recordingObserver) {
	t.Helper()

	store, err := localfs.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create blob store: %v", err)
	}

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	observer := &recordingObserver{}
	uploads := blob.NewUploads(store, blob.Config{
		Secret:   "upload-secret",
		TTL:      time.Minute,
		BaseURL:  server.URL,
		MaxBytes: maxBytes,
	}, observer)
	uploads.Register(mux)

	return uploads, server, observer
}

func post(t *testing.T, url string, body []byte) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "image/png", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("POST failed: %v", err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestCreateTargetRequiresOwner(t *testing.T) {
	uploads, _, _ := setupUploads(t, 1<<20)

	if _, err := uploads.CreateTarget(""); err != blob.ErrMissingOwner {
		t.Errorf("expected ErrMissingOwner, got %v", err)
	}
}

func TestUploadAndDownload(t *testing.T) {
	uploads, server, observer := setupUploads(t, 1<<20)
	ctx := context.Background()

	target, err := uploads.CreateTarget("user-1")
	if err != nil {
		t.Fatalf("CreateTarget failed: %v", err)
	}
	if !strings.HasPrefix(target.URL, server.URL+"/upload/") {
		t.Errorf("unexpected upload URL %s", target.URL)
	}
	if !blob.ValidRef(target.StorageID) {
		t.Errorf("invalid storage ID %q", target.StorageID)
	}

	if _, ok := uploads.ResolveURL(ctx, target.StorageID); ok {
		t.Error("expected no URL before upload")
	}

	image := append(append([]byte{}, pngHeader...), []byte("pixels")...)
	resp := post(t, target.URL, image)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("upload: expected 200, got %d", resp.StatusCode)
	}

	var result struct {
		StorageID string `json:"storageId"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.StorageID != target.StorageID {
		t.Errorf("storageId: expected %s, got %s", target.StorageID, result.StorageID)
	}

	url, ok := uploads.ResolveURL(ctx, target.StorageID)
	if !ok {
		t.Fatal("expected URL after upload")
	}
	if url != server.URL+"/files/"+target.StorageID {
		t.Errorf("unexpected URL %s", url)
	}

	download, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer download.Body.Close()
	data, _ := io.ReadAll(download.Body)
	if !bytes.Equal(data, image) {
		t.Error("downloaded content does not match upload")
	}
	if ct := download.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type: expected image/png, got %s", ct)
	}

	if results := observer.snapshot(); len(results) != 1 || results[0] != blob.ResultStored {
		t.Errorf("expected one stored result, got %v", results)
	}
}

func TestUploadURLIsSingleUse(t *testing.T) {
	uploads, _, _ := setupUploads(t, 1<<20)

	target, err := uploads.CreateTarget("user-1")
	if err != nil {
		t.Fatalf("CreateTarget failed: %v", err)
	}

	if resp := post(t, target.URL, pngHeader); resp.StatusCode != http.StatusOK {
		t.Fatalf("first upload: expected 200, got %d", resp.StatusCode)
	}
	if resp := post(t, target.URL, pngHeader); resp.StatusCode != http.StatusConflict {
		t.Errorf("second upload: expected 409, got %d", resp.StatusCode)
	}
}

func TestUploadRejections(t *testing.T) {
	uploads, server, observer := setupUploads(t, 64)

	t.Run("bad token", func(t *testing.T) {
		resp := post(t, server.URL+"/upload/not-a-token", pngHeader)
		if resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", resp.StatusCode)
		}
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other := blob.NewUploads(nil, blob.Config{Secret: "other", TTL: time.Minute, BaseURL: server.URL}, nil)
		target, err := other.CreateTarget("user-1")
		if err != nil {
			t.Fatalf("CreateTarget failed: %v", err)
		}
		if resp := post(t, target.URL, pngHeader); resp.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", resp.StatusCode)
		}
	})

	t.Run("not an image", func(t *testing.T) {
		target, _ := uploads.CreateTarget("user-1")
		resp := post(t, target.URL, []byte("just some text"))
		if resp.StatusCode != http.StatusUnsupportedMediaType {
			t.Errorf("expected 415, got %d", resp.StatusCode)
		}
	})

	t.Run("too large", func(t *testing.T) {
		target, _ := uploads.CreateTarget("user-1")
		big := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 1024)...)
		resp := post(t, target.URL, big)
		if resp.StatusCode != http.StatusRequestEntityTooLarge {
			t.Errorf("expected 413, got %d", resp.StatusCode)
		}
		if ok, _ := uploads.Exists(context.Background(), target.StorageID); ok {
			t.Error("oversized upload must not be stored")
		}
	})

	t.Run("unknown file", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/files/" + blob.NewRef())
		if err != nil {
			t.Fatalf("GET failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("expected 404, got %d", resp.StatusCode)
		}
	})

	want := []string{blob.ResultBadToken, blob.ResultBadToken, blob.ResultNotAnImage, blob.ResultTooLarge}
	if got := observer.snapshot(); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("observer results: expected %v, got %v", want, got)
	}
}

// brokenWriter accepts headers but fails every body write.
type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset by peer")
}

func TestUploadLogsResponseWriteFailure(t *testing.T) {
	store, err := localfs.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create blob store: %v", err)
	}
	uploads := blob.NewUploads(store, blob.Config{
		Secret:   "upload-secret",
		TTL:      time.Minute,
		BaseURL:  "http://cars.test",
		MaxBytes: 1 << 20,
	}, nil)
	mux := http.NewServeMux()
	uploads.Register(mux)

	target, err := uploads.CreateTarget("user-1")
	if err != nil {
		t.Fatalf("CreateTarget failed: %v", err)
	}

	var logs bytes.Buffer
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logs, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })

	path := strings.TrimPrefix(target.URL, "http://cars.test")
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(pngHeader))
	mux.ServeHTTP(brokenWriter{httptest.NewRecorder()}, req)

	if !strings.Contains(logs.String(), "Failed to write upload response") {
		t.Errorf("expected write failure to be logged, got:\n%s", logs.String())
	}
	if ok, _ := uploads.Exists(context.Background(), target.StorageID); !ok {
		t.Error("expected the upload to be stored")
	}
}
