package firebase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Provider error codes, as reported by the client SDKs.
const (
	CodeInvalidEmail      = "auth/invalid-email"
	CodeUserNotFound      = "auth/user-not-found"
	CodeWrongPassword     = "auth/wrong-password"
	CodeInvalidCredential = "auth/invalid-credential"
	CodeUserDisabled      = "auth/user-disabled"
	CodeTooManyRequests   = "auth/too-many-requests"
	CodeInternal          = "auth/internal-error"
)

var restErrorCodes = map[string]string{
	"INVALID_EMAIL":               CodeInvalidEmail,
	"EMAIL_NOT_FOUND":             CodeUserNotFound,
	"INVALID_PASSWORD":            CodeWrongPassword,
	"INVALID_LOGIN_CREDENTIALS":   CodeInvalidCredential,
	"USER_DISABLED":               CodeUserDisabled,
	"TOO_MANY_ATTEMPTS_TRY_LATER": CodeTooManyRequests,
}

// ProviderError is a sign-in failure carrying the identity provider error code.
type ProviderError struct {
	Code   string
	Reason string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Reason)
}

// ProviderErrorCode extracts the provider code from err, or "" when err is not a provider error.
func ProviderErrorCode(err error) string {
	var pErr *ProviderError
	if errors.As(err, &pErr) {
		return pErr.Code
	}

	return ""
}

// SignInResult is the identity returned by a successful password sign-in.
type SignInResult struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
}

type restError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// IdentityToolkit signs users in with email and password through the Identity Toolkit REST API.
type IdentityToolkit struct {
	client *resty.Client
	apiKey string
}

func NewIdentityToolkit(baseURL, apiKey string) *IdentityToolkit {
	return &IdentityToolkit{
		client: resty.New().SetBaseURL(baseURL).SetTimeout(30 * time.Second),
		apiKey: apiKey,
	}
}

func (t *IdentityToolkit) SignInWithPassword(ctx context.Context, email, password string) (*SignInResult, error) {
	var result SignInResult

	var errBody restError

	resp, err := t.client.R().
		SetContext(ctx).
		SetQueryParam("key", t.apiKey).
		SetBody(map[string]interface{}{
			"email":             email,
			"password":          password,
			"returnSecureToken": true,
		}).
		SetResult(&result).
		SetError(&errBody).
		Post("/accounts:signInWithPassword")
	if err != nil {
		return nil, err
	}

	if resp.IsError() {
		reason := errBody.Error.Message
		if reason == "" {
			reason = resp.Status()
		}

		return nil, &ProviderError{
			Code:   mapRESTError(reason),
			Reason: reason,
		}
	}

	return &result, nil
}

// mapRESTError maps "EMAIL_NOT_FOUND" or "TOO_MANY_ATTEMPTS_TRY_LATER : details" to a provider code.
func mapRESTError(message string) string {
	code := strings.TrimSpace(strings.SplitN(message, ":", 2)[0])

	if mapped, ok := restErrorCodes[code]; ok {
		return mapped
	}

	return CodeInternal
}
