package domain

import (
	"errors"
	"time"
)

// User is the identity the auth provider reports.
type User struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// Session is the observable auth state of one mounted page.
type Session struct {
	User         *User `json:"user"`
	IsLoading    bool  `json:"isLoading"`
	IsLoggingOut bool  `json:"isLoggingOut"`
}

// Persistence selects how long a sign-in survives.
type Persistence string

const (
	PersistenceLocal   Persistence = "local"
	PersistenceSession Persistence = "session"
	PersistenceNone    Persistence = "none"
)

// SessionCookieTTL is the longest lifetime firebase allows for a session cookie.
const SessionCookieTTL = 14 * 24 * time.Hour

type SignInRequest struct {
	Email       string      `json:"email" validate:"required,email"`
	Password    string      `json:"password" validate:"required"`
	Persistence Persistence `json:"persistence" validate:"omitempty,oneof=local session none"`
}

type SignInResult struct {
	User    User   `json:"user"`
	IDToken string `json:"idToken"`

	// SessionCookie is empty for PersistenceNone.
	SessionCookie string `json:"-"`

	// Persistent reports whether the cookie outlives the browser session.
	Persistent bool `json:"-"`
}

var (
	ErrObserverNotMounted = errors.New("observer is not mounted")
	ErrHubClosed          = errors.New("auth state hub is closed")
)
