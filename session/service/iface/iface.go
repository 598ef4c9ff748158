//go:generate mockery --output=../mocks --all
package iface

import (
	"context"

	"github.com/kindfood/erp-system/session/domain"
)

type AuthService interface {
	SignIn(ctx context.Context, req domain.SignInRequest) (*domain.SignInResult, error)
	SignOut(ctx context.Context, uid string) error
}
