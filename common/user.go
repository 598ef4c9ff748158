package common

import "github.com/gin-gonic/gin"

// UnknownDisplayName is recorded for users without a display name.
const UnknownDisplayName = "未知用戶"

// UserRef identifies the user who last wrote a document.
type UserRef struct {
	UID         string `firestore:"uid" json:"uid"`
	DisplayName string `firestore:"displayName" json:"displayName"`
	Email       string `firestore:"email" json:"email"`
}

// CurrentUser returns the caller set on the context by the auth middleware.
func CurrentUser(ctx *gin.Context) UserRef {
	displayName := ctx.GetString(CtxKeys.Name)
	if displayName == "" {
		displayName = UnknownDisplayName
	}

	return UserRef{
		UID:         ctx.GetString(CtxKeys.UID),
		DisplayName: displayName,
		Email:       ctx.GetString(CtxKeys.Email),
	}
}
