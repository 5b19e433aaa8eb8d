package blob

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMissingOwner is returned when an upload target is requested without
// an authenticated user.
var ErrMissingOwner = errors.New("upload target requires an owner")

// Upload results reported to the Observer.
const (
	ResultStored       = "stored"
	ResultBadToken     = "bad_token"
	ResultTooLarge     = "too_large"
	ResultNotAnImage   = "not_an_image"
	ResultAlreadyUsed  = "already_used"
	ResultStorageError = "storage_error"
)

// sniffLen is how many bytes http.DetectContentType looks at.
const sniffLen = 512

// Observer is notified of every upload attempt.
type Observer interface {
	UploadFinished(result string)
}

// Config controls upload targets.
type Config struct {
	// Secret signs upload tokens.
	Secret string
	// TTL is how long an upload target stays valid.
	TTL time.Duration
	// BaseURL is the public origin used to build upload and file URLs.
	BaseURL string
	// MaxBytes caps the size of one upload.
	MaxBytes int64
}

// Target is a place a client can POST one image to.
type Target struct {
	// URL accepts exactly one POST with the image as the request body.
	URL string
	// StorageID is the reference the image will be stored under.
	StorageID string
	// ExpiresAt is when URL stops accepting uploads.
	ExpiresAt time.Time
}

// uploadClaims binds one storage reference to the user who requested it.
type uploadClaims struct {
	jwt.RegisteredClaims
}

// Uploads issues upload targets, accepts uploads, serves files and resolves
// storage references to URLs.
type Uploads struct {
	store    Store
	secret   []byte
	ttl      time.Duration
	baseURL  string
	maxBytes int64
	observer Observer
}

// NewUploads creates an upload service on top of store.
func NewUploads(store Store, cfg Config, observer Observer) *Uploads {
	return &Uploads{
		store:    store,
		secret:   []byte(cfg.Secret),
		ttl:      cfg.TTL,
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		maxBytes: cfg.MaxBytes,
		observer: observer,
	}
}

// CreateTarget allocates a storage reference for userID and signs an upload
// URL for it.
func (u *Uploads) CreateTarget(userID string) (Target, error) {
	if userID == "" {
		return Target{}, ErrMissingOwner
	}

	ref := NewRef()
	now := time.Now()
	expiresAt := now.Add(u.ttl)
	claims := &uploadClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ID:        ref,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return Target{}, fmt.Errorf("failed to sign upload token: %w", err)
	}

	return Target{
		URL:       u.baseURL + "/upload/" + token,
		StorageID: ref,
		ExpiresAt: expiresAt,
	}, nil
}

// Exists reports whether an image was uploaded under ref.
func (u *Uploads) Exists(ctx context.Context, ref string) (bool, error) {
	return u.store.Exists(ctx, ref)
}

// ResolveURL returns the public URL of ref, or false if nothing is stored
// there.
func (u *Uploads) ResolveURL(ctx context.Context, ref string) (string, bool) {
	ok, err := u.store.Exists(ctx, ref)
	if err != nil {
		slog.Warn("Failed to resolve blob URL", "storage_id", ref, "error", err)
		return "", false
	}
	if !ok {
		return "", false
	}
	return u.baseURL + "/files/" + ref, true
}

// Register mounts the upload and download routes on mux.
func (u *Uploads) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /upload/{token}", u.handleUpload)
	mux.HandleFunc("GET /files/{ref}", u.handleFile)
}

// parseToken validates an upload token and returns its claims.
func (u *Uploads) parseToken(tokenString string) (*uploadClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&uploadClaims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return u.secret, nil
		},
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*uploadClaims)
	if !ok || !token.Valid || !ValidRef(claims.ID) || claims.Subject == "" {
		return nil, errors.New("invalid upload token")
	}
	return claims, nil
}

func (u *Uploads) handleUpload(w http.ResponseWriter, r *http.Request) {
	claims, err := u.parseToken(r.PathValue("token"))
	if err != nil {
		slog.Warn("Upload rejected", "reason", ResultBadToken, "error", err)
		u.finish(ResultBadToken)
		http.Error(w, "invalid or expired upload URL", http.StatusUnauthorized)
		return
	}
	ref := claims.ID

	body := bufio.NewReaderSize(http.MaxBytesReader(w, r.Body, u.maxBytes), sniffLen)
	head, err := body.Peek(sniffLen)
	if err != nil && !errors.Is(err, io.EOF) {
		u.failUpload(w, ref, err)
		return
	}
	if contentType := http.DetectContentType(head); !strings.HasPrefix(contentType, "image/") {
		slog.Warn("Upload rejected", "storage_id", ref, "reason", ResultNotAnImage, "content_type", contentType)
		u.finish(ResultNotAnImage)
		http.Error(w, "upload must be an image", http.StatusUnsupportedMediaType)
		return
	}

	if err := u.store.Put(r.Context(), ref, body); err != nil {
		u.failUpload(w, ref, err)
		return
	}

	slog.Info("Upload stored", "storage_id", ref, "user_id", claims.Subject)
	u.finish(ResultStored)

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(struct {
		StorageID string `json:"storageId"`
	}{StorageID: ref})
	if err != nil {
		slog.Error("Failed to write upload response", "storage_id", ref, "error", err)
	}
}

func (u *Uploads) failUpload(w http.ResponseWriter, ref string, err error) {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		slog.Warn("Upload rejected", "storage_id", ref, "reason", ResultTooLarge, "limit", tooLarge.Limit)
		u.finish(ResultTooLarge)
		http.Error(w, "upload too large", http.StatusRequestEntityTooLarge)
	case errors.Is(err, ErrExists):
		slog.Warn("Upload rejected", "storage_id", ref, "reason", ResultAlreadyUsed)
		u.finish(ResultAlreadyUsed)
		http.Error(w, "upload URL already used", http.StatusConflict)
	default:
		slog.Error("Upload failed", "storage_id", ref, "error", err)
		u.finish(ResultStorageError)
		http.Error(w, "failed to store upload", http.StatusInternalServerError)
	}
}

func (u *Uploads) handleFile(w http.ResponseWriter, r *http.Request) {
	ref := r.PathValue("ref")
	f, modTime, err := u.store.Open(r.Context(), ref)
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidRef) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		slog.Error("Failed to open blob", "storage_id", ref, "error", err)
		http.Error(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
	http.ServeContent(w, r, ref, modTime, f)
}

func (u *Uploads) finish(result string) {
	if u.observer != nil {
		u.observer.UploadFinished(result)
	}
}
