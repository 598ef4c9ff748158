package blobstore

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/google/uuid"

	"github.com/kindfood/erp-system/framework/connection"
)

const (
	downloadTokensMetadata = "firebaseStorageDownloadTokens"
	downloadURLFormat      = "https://firebasestorage.googleapis.com/v0/b/%s/o/%s?alt=media&token=%s"

	// BOMImagesPrefix is the folder BOM table images are stored under.
	BOMImagesPrefix = "bom-images/"
)

// Uploader stores a blob under a key and returns its public download reference.
//
//go:generate mockery --name Uploader --output ./mocks
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error)
}

// BucketStore writes blobs to the firebase storage bucket.
type BucketStore struct {
	bucketFun connection.BucketFromContextFun
	newToken  func() string
}

func NewBucketStore(fun connection.BucketFromContextFun) *BucketStore {
	return &BucketStore{
		bucketFun: fun,
		newToken:  uuid.NewString,
	}
}

// Upload overwrites the object at key. The returned URL embeds a fresh download token
// the way the firebase client SDK does. A failed read leaves the previous object and
// its token in place.
func (s *BucketStore) Upload(ctx context.Context, key, contentType string, r io.Reader) (string, error) {
	obj := s.bucketFun(ctx).Object(key)
	token := s.newToken()

	wctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := obj.NewWriter(wctx)
	w.ContentType = contentType
	w.Metadata = map[string]string{
		downloadTokensMetadata: token,
	}

	if _, err := io.Copy(w, r); err != nil {
		// with its context canceled Close aborts the upload instead of committing it
		cancel()
		_ = w.Close()

		return "", fmt.Errorf("upload %s: %w", key, err)
	}

	if err := w.Close(); err != nil {
		return "", err
	}

	return DownloadURL(obj.BucketName(), key, token), nil
}

// DownloadURL is the public firebase storage URL of key.
func DownloadURL(bucket, key, token string) string {
	return fmt.Sprintf(downloadURLFormat, bucket, url.PathEscape(key), token)
}

// BOMImageKey is the object key of a BOM table's image.
func BOMImageKey(bomTableID string) string {
	return BOMImagesPrefix + bomTableID
}
