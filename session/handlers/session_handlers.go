package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/kindfood/erp-system/common"
	fb "github.com/kindfood/erp-system/firebase"
	"github.com/kindfood/erp-system/framework/web"
	"github.com/kindfood/erp-system/logger"
	"github.com/kindfood/erp-system/notification"
	"github.com/kindfood/erp-system/session/domain"
	"github.com/kindfood/erp-system/session/service"
	"github.com/kindfood/erp-system/session/service/iface"
)

const (
	eventSession  = "session"
	eventNavigate = "navigate"

	eventBuffer = 16
)

var signInErrorKeys = map[string]notification.Key{
	fb.CodeInvalidEmail:      notification.SignInInvalidEmail,
	fb.CodeUserNotFound:      notification.SignInUserNotFound,
	fb.CodeWrongPassword:     notification.SignInWrongPassword,
	fb.CodeInvalidCredential: notification.SignInInvalidCredential,
}

type Session struct {
	loggerProvider logger.Provider
	service        iface.AuthService
	hub            *service.Hub
	observers      *service.Observers
	displayDelay   time.Duration
	secureCookies  bool
	validate       *validator.Validate
}

func NewSession(log logger.Provider, s iface.AuthService, hub *service.Hub, observers *service.Observers, displayDelay time.Duration) *Session {
	return &Session{
		loggerProvider: log,
		service:        s,
		hub:            hub,
		observers:      observers,
		displayDelay:   displayDelay,
		secureCookies:  !common.IsLocalhost,
		validate:       validator.New(),
	}
}

// SignInErrorToast maps a sign-in failure to the message shown on the sign-in page.
func SignInErrorToast(err error) *notification.Toast {
	if key, ok := signInErrorKeys[fb.ProviderErrorCode(err)]; ok {
		return notification.Error(key)
	}

	return notification.Error(notification.SignInFailed)
}

func (h *Session) SignIn(ctx *gin.Context) error {
	l := h.loggerProvider(ctx)

	var req domain.SignInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		return web.NewNotifiedError(err, http.StatusBadRequest, notification.Error(notification.SignInFailed))
	}

	if err := h.validate.Struct(&req); err != nil {
		return web.NewNotifiedError(err, http.StatusBadRequest, signInValidationToast(err))
	}

	res, err := h.service.SignIn(ctx, req)
	if err != nil {
		l.Warningf("sign in of %s failed: %s", req.Email, err)

		status := http.StatusUnauthorized
		if fb.ProviderErrorCode(err) == "" {
			status = http.StatusBadGateway
		}

		return web.NewNotifiedError(err, status, SignInErrorToast(err))
	}

	if res.SessionCookie != "" {
		maxAge := 0
		if res.Persistent {
			maxAge = int(domain.SessionCookieTTL.Seconds())
		}

		ctx.SetSameSite(http.SameSiteLaxMode)
		ctx.SetCookie(fb.SessionCookieName, res.SessionCookie, maxAge, "/", "", h.secureCookies, true)
	}

	return web.RespondWith(ctx, web.Reply{
		Data:     res,
		Toast:    notification.Success(notification.SignInSuccess),
		Redirect: common.RouteHome,
	}, http.StatusOK)
}

func signInValidationToast(err error) *notification.Toast {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		for _, fe := range vErrs {
			if fe.Field() == "Email" && fe.Tag() == "email" {
				return notification.Error(notification.SignInInvalidEmail)
			}
		}
	}

	return notification.Error(notification.SignInFailed)
}

func (h *Session) SignOut(ctx *gin.Context) error {
	l := h.loggerProvider(ctx)
	uid := ctx.GetString(common.CtxKeys.UID)

	if err := h.service.SignOut(ctx, uid); err != nil {
		l.Errorf("sign out of %s failed: %s", uid, err)
		return web.NewNotifiedError(err, http.StatusInternalServerError, notification.Error(notification.SignOutFailed))
	}

	ctx.SetCookie(fb.SessionCookieName, "", -1, "/", "", h.secureCookies, true)

	return web.RespondWith(ctx, web.Reply{
		Toast: notification.Success(notification.SignOutSuccess),
	}, http.StatusOK)
}

// Me returns the caller's identity.
func (h *Session) Me(ctx *gin.Context) error {
	return web.RespondWith(ctx, web.Reply{Data: userFromContext(ctx)}, http.StatusOK)
}

type event struct {
	name string
	data interface{}
}

// Events mounts an observer for the caller and streams its session and navigate events
// until the client goes away.
func (h *Session) Events(ctx *gin.Context) error {
	l := h.loggerProvider(ctx)

	user := userFromContext(ctx)
	done := ctx.Request.Context().Done()
	events := make(chan event, eventBuffer)

	send := func(name string, data interface{}) {
		select {
		case events <- event{name, data}:
		case <-done:
		}
	}

	h.hub.Remember(user.UID, user)

	o := service.NewObserver(h.hub, user.UID, h.displayDelay,
		func(s domain.Session) { send(eventSession, s) },
		func(route string) { send(eventNavigate, route) },
	)

	h.observers.Add(user.UID, o)
	defer h.observers.Remove(user.UID, o)

	if err := o.Mount(); err != nil {
		return web.NewRequestError(err, http.StatusServiceUnavailable)
	}
	defer o.Unmount()

	l.Debugf("session observer mounted for %s", user.UID)

	ctx.Stream(func(io.Writer) bool {
		select {
		case <-done:
			return false
		case ev := <-events:
			ctx.SSEvent(ev.name, ev.data)
			return true
		}
	})

	return nil
}

func userFromContext(ctx *gin.Context) *domain.User {
	u := common.CurrentUser(ctx)

	return &domain.User{
		UID:         u.UID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
	}
}
