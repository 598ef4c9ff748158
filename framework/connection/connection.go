package connection

import (
	"context"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	"firebase.google.com/go/v4/auth"

	"github.com/kindfood/erp-system/config"
	fb "github.com/kindfood/erp-system/firebase"
	"github.com/kindfood/erp-system/logger"
)

const (
	// CtxFirestoreKey is how firestore connections are stored/retrieved.
	CtxFirestoreKey = "app-firestore"

	// CtxCloudStorageKey is how cloud storage connections are stored/retrieved.
	CtxCloudStorageKey = "app-cloud-storage"
)

type Connection struct {
	*FirestoreClient
	*StorageClient
	*AuthClient
}

// NewConnection initializes the firebase backed clients necessary for api support.
func NewConnection(ctx context.Context, log *logger.Logging, cfg *config.Config) (*Connection, error) {
	l := log.Logger(ctx)
	logEmulators(l)

	app, err := fb.NewApp(ctx, cfg.Firebase.ProjectID, cfg.Firebase.StorageBucket)
	if err != nil {
		return nil, err
	}

	fs, err := NewFirestore(ctx, l, cfg.Firebase.ProjectID)
	if err != nil {
		return nil, err
	}

	gcs, err := NewStorage(ctx, l, cfg.Firebase.StorageBucket)
	if err != nil {
		return nil, err
	}

	authClient, err := NewAuth(ctx, l, app)
	if err != nil {
		return nil, err
	}

	return &Connection{
		fs,
		gcs,
		authClient,
	}, nil
}

// Firestore returns a firestore connection that was stored in context.
// it returns by default a firestore connection, if there was not on context.
func (c *Connection) Firestore(ctx context.Context) *firestore.Client {
	if fs, ok := ctx.Value(CtxFirestoreKey).(*firestore.Client); ok {
		return fs
	}

	return c.fs
}

// Bucket returns the storage bucket stored in context, or the default one.
func (c *Connection) Bucket(ctx context.Context) *storage.BucketHandle {
	if b, ok := ctx.Value(CtxCloudStorageKey).(*storage.BucketHandle); ok {
		return b
	}

	return c.bucket
}

// Auth returns the firebase auth admin client.
func (c *Connection) Auth() *auth.Client {
	return c.auth
}

// Close releases the underlying clients.
func (c *Connection) Close() error {
	if err := c.fs.Close(); err != nil {
		return err
	}

	return c.gcs.Close()
}

type FirestoreFromContextFun = func(ctx context.Context) *firestore.Client
type BucketFromContextFun = func(ctx context.Context) *storage.BucketHandle
