package service

import (
	"context"
	"time"

	fb "github.com/kindfood/erp-system/firebase"
	"github.com/kindfood/erp-system/localstate"
	"github.com/kindfood/erp-system/logger"
	"github.com/kindfood/erp-system/session/domain"
	"github.com/kindfood/erp-system/times"
)

// PasswordSignIn is the identity provider's email and password sign-in.
type PasswordSignIn interface {
	SignInWithPassword(ctx context.Context, email, password string) (*fb.SignInResult, error)
}

// AdminAuth is the part of the firebase auth admin client used to manage sessions.
type AdminAuth interface {
	SessionCookie(ctx context.Context, idToken string, expiresIn time.Duration) (string, error)
	RevokeRefreshTokens(ctx context.Context, uid string) error
}

type AuthService struct {
	loggerProvider logger.Provider
	signIn         PasswordSignIn
	admin          AdminAuth
	state          localstate.Store
	hub            *Hub
	observers      *Observers
	now            func() time.Time
}

func NewAuthService(log logger.Provider, signIn PasswordSignIn, admin AdminAuth, state localstate.Store, hub *Hub, observers *Observers) *AuthService {
	return &AuthService{
		loggerProvider: log,
		signIn:         signIn,
		admin:          admin,
		state:          state,
		hub:            hub,
		observers:      observers,
		now:            time.Now,
	}
}

// SignIn authenticates with email and password and mints the session cookie the
// persistence mode asks for. The provider error is returned as is.
func (s *AuthService) SignIn(ctx context.Context, req domain.SignInRequest) (*domain.SignInResult, error) {
	l := s.loggerProvider(ctx)

	res, err := s.signIn.SignInWithPassword(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	persistence := req.Persistence
	if persistence == "" {
		persistence = domain.PersistenceLocal
	}

	result := &domain.SignInResult{
		User: domain.User{
			UID:         res.LocalID,
			Email:       res.Email,
			DisplayName: res.DisplayName,
		},
		IDToken:    res.IDToken,
		Persistent: persistence == domain.PersistenceLocal,
	}

	if persistence != domain.PersistenceNone {
		cookie, err := s.admin.SessionCookie(ctx, res.IDToken, domain.SessionCookieTTL)
		if err != nil {
			return nil, err
		}

		result.SessionCookie = cookie
	}

	if err := s.state.Set(ctx, res.LocalID, localstate.LastActivityTimeKey, times.EpochMillis(s.now())); err != nil {
		l.Warningf("failed to record last activity of %s: %s", res.LocalID, err)
	}

	user := result.User
	s.hub.Publish(res.LocalID, &user)

	return result, nil
}

// SignOut revokes the user's sessions. Observers of uid are flagged as logging out so they
// navigate home once the sign-out is published; on failure the flag is cleared again.
func (s *AuthService) SignOut(ctx context.Context, uid string) error {
	s.observers.BeginLogout(uid)

	if err := s.admin.RevokeRefreshTokens(ctx, uid); err != nil {
		s.observers.AbortLogout(uid)
		return err
	}

	s.hub.Publish(uid, nil)

	return nil
}
