package firebase

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// NewApp initializes the firebase admin app for the project and its storage bucket.
func NewApp(ctx context.Context, projectID, storageBucket string, opts ...option.ClientOption) (*firebase.App, error) {
	return firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     projectID,
		StorageBucket: storageBucket,
	}, opts...)
}
