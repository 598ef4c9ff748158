package localstate

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"github.com/goccy/go-json"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/kindfood/erp-system/common"
	"github.com/kindfood/erp-system/framework/connection"
)

// Keys read back verbatim by other pages.
const (
	CurrentPricingDataKey = "currentPricingData"
	LastActivityTimeKey   = "lastActivityTime"
)

var ErrInvalidKey = errors.New("invalid local state key")

// Store is a per-user string key-value store.
//
//go:generate mockery --name Store --output ./mocks
type Store interface {
	Get(ctx context.Context, uid, key string) (string, bool, error)
	Set(ctx context.Context, uid, key, value string) error
	Delete(ctx context.Context, uid, key string) error
}

// FirestoreStore keeps every user's values as string fields of user_state/{uid}.
type FirestoreStore struct {
	firestoreClientFun connection.FirestoreFromContextFun
}

func NewFirestoreStore(fun connection.FirestoreFromContextFun) *FirestoreStore {
	return &FirestoreStore{fun}
}

func (s *FirestoreStore) ref(ctx context.Context, uid string) *firestore.DocumentRef {
	return s.firestoreClientFun(ctx).Collection(common.UserStateCollection).Doc(uid)
}

func (s *FirestoreStore) Get(ctx context.Context, uid, key string) (string, bool, error) {
	if key == "" {
		return "", false, ErrInvalidKey
	}

	docSnap, err := s.ref(ctx, uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return "", false, nil
		}

		return "", false, err
	}

	v, ok := docSnap.Data()[key].(string)

	return v, ok, nil
}

func (s *FirestoreStore) Set(ctx context.Context, uid, key, value string) error {
	if key == "" {
		return ErrInvalidKey
	}

	_, err := s.ref(ctx, uid).Set(ctx, map[string]interface{}{key: value}, firestore.MergeAll)

	return err
}

func (s *FirestoreStore) Delete(ctx context.Context, uid, key string) error {
	if key == "" {
		return ErrInvalidKey
	}

	_, err := s.ref(ctx, uid).Set(ctx, map[string]interface{}{key: firestore.Delete}, firestore.MergeAll)

	return err
}

// SetJSON stores v as an opaque JSON blob under key.
func SetJSON(ctx context.Context, s Store, uid, key string, v interface{}) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}

	return s.Set(ctx, uid, key, string(b))
}

// GetJSON decodes the blob under key into v. It reports false when the key is unset.
func GetJSON(ctx context.Context, s Store, uid, key string, v interface{}) (bool, error) {
	raw, ok, err := s.Get(ctx, uid, key)
	if err != nil || !ok {
		return false, err
	}

	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, err
	}

	return true, nil
}
