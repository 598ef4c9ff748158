package collection

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/kindfood/erp-system/framework/connection"
)

// Normalizer maps one stored document into its view record. Derived fields are computed here.
type Normalizer[T any] func(snap *firestore.DocumentSnapshot) (T, error)

// Option tunes the read-all query of a Fetcher.
type Option func(*query)

type query struct {
	orderBy   string
	direction firestore.Direction
}

// OrderBy orders the query by path.
func OrderBy(path string, direction firestore.Direction) Option {
	return func(q *query) {
		q.orderBy = path
		q.direction = direction
	}
}

// Fetcher reads a whole collection in one query and materializes it eagerly.
type Fetcher[T any] struct {
	firestoreClientFun connection.FirestoreFromContextFun
	collection         string
	normalize          Normalizer[T]
	query              query
}

func NewFetcher[T any](fun connection.FirestoreFromContextFun, collection string, normalize Normalizer[T], opts ...Option) *Fetcher[T] {
	f := &Fetcher[T]{
		firestoreClientFun: fun,
		collection:         collection,
		normalize:          normalize,
	}

	for _, opt := range opts {
		opt(&f.query)
	}

	return f
}

// Collection returns the name of the fetched collection.
func (f *Fetcher[T]) Collection() string {
	return f.collection
}

// FetchAll returns every document of the collection, normalized, in query order.
// The result is never nil when err is nil.
func (f *Fetcher[T]) FetchAll(ctx context.Context) ([]T, error) {
	q := f.firestoreClientFun(ctx).Collection(f.collection).Query
	if f.query.orderBy != "" {
		q = q.OrderBy(f.query.orderBy, f.query.direction)
	}

	docSnaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	res := make([]T, 0, len(docSnaps))

	for _, docSnap := range docSnaps {
		item, err := f.normalize(docSnap)
		if err != nil {
			return nil, err
		}

		res = append(res, item)
	}

	return res, nil
}

// DataTo is a Normalizer for records that need no derived fields. The id setter receives the document id.
func DataTo[T any](setID func(*T, string)) Normalizer[T] {
	return func(snap *firestore.DocumentSnapshot) (T, error) {
		var item T

		if err := snap.DataTo(&item); err != nil {
			return item, err
		}

		if setID != nil {
			setID(&item, snap.Ref.ID)
		}

		return item, nil
	}
}
