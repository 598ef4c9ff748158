package connection

import (
	"context"
	"errors"
	"os"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"

	"github.com/kindfood/erp-system/logger"
)

var (
	ErrFirestoreInitialization = errors.New("firestore initialization error")
	ErrStorageInitialization   = errors.New("cloud storage initialization error")
	ErrAuthInitialization      = errors.New("firebase auth initialization error")
)

// emulator hosts honoured by the client libraries themselves
var emulatorEnv = []string{
	"FIRESTORE_EMULATOR_HOST",
	"STORAGE_EMULATOR_HOST",
	"FIREBASE_AUTH_EMULATOR_HOST",
}

type FirestoreClient struct {
	fs *firestore.Client
}

type StorageClient struct {
	gcs    *storage.Client
	bucket *storage.BucketHandle
}

type AuthClient struct {
	auth *auth.Client
}

func logEmulators(log logger.ILogger) {
	for _, env := range emulatorEnv {
		if host := os.Getenv(env); host != "" {
			log.Warningf("connection: %s is set, using emulator at %s", env, host)
		}
	}
}

// NewFirestore opens the client for the project holding the ERP collections.
func NewFirestore(ctx context.Context, log logger.ILogger, projectID string) (*FirestoreClient, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		log.Errorf("%s: project %s: %s", ErrFirestoreInitialization, projectID, err)
		return nil, ErrFirestoreInitialization
	}

	return &FirestoreClient{fs}, nil
}

// NewStorage opens the client for the bucket BOM table images are uploaded to.
func NewStorage(ctx context.Context, log logger.ILogger, bucket string) (*StorageClient, error) {
	gcs, err := storage.NewClient(ctx)
	if err != nil {
		log.Errorf("%s: bucket %s: %s", ErrStorageInitialization, bucket, err)
		return nil, ErrStorageInitialization
	}

	return &StorageClient{
		gcs:    gcs,
		bucket: gcs.Bucket(bucket),
	}, nil
}

func NewAuth(ctx context.Context, log logger.ILogger, app *firebase.App) (*AuthClient, error) {
	client, err := app.Auth(ctx)
	if err != nil {
		log.Errorf("%s: %s", ErrAuthInitialization, err)
		return nil, ErrAuthInitialization
	}

	return &AuthClient{client}, nil
}
