package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/logger"
	"github.com/portfolio/internal/service"
	"github.com/portfolio/internal/view"
)

type loginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// Login checks credentials and opens an admin session.
func (a *API) Login(c *gin.Context) {
	key := c.ClientIP()
	if !a.limiter.Allowed(key) {
		a.respondError(c, http.StatusTooManyRequests, "Too many attempts, please try again later", "محاولات كثيرة، يرجى المحاولة لاحقًا")
		return
	}

	var payload loginRequest
	if err := c.ShouldBind(&payload); err != nil {
		a.respondError(c, http.StatusBadRequest, "Invalid request body", "بيانات الطلب غير صالحة")
		return
	}

	user, err := a.auth.Authenticate(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			a.limiter.Fail(key)
			a.log.Warn("admin login rejected", logger.String("username", strings.TrimSpace(payload.Username)), logger.String("remote_ip", key))
			a.respondError(c, http.StatusUnauthorized, "Wrong username or password", "اسم المستخدم أو كلمة المرور غير صحيحة")
			return
		}
		a.handleServiceError(c, err)
		return
	}
	a.limiter.Reset(key)

	session := sessions.Default(c)
	session.Set(sessionUserKey, user.ID)
	session.Set("username", user.Username)
	if err := session.Save(); err != nil {
		a.log.Error("save session", logger.Error(err))
		a.respondError(c, http.StatusInternalServerError, "Could not save the session", "تعذر حفظ الجلسة")
		return
	}

	a.respondSuccess(c, http.StatusOK, "Signed in", "تم تسجيل الدخول", gin.H{"username": user.Username})
}

// Logout clears the admin session.
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		a.log.Error("clear session", logger.Error(err))
	}
	a.respondSuccess(c, http.StatusOK, "Signed out", "تم تسجيل الخروج", nil)
}

// ShowDashboard returns the admin landing counters.
func (a *API) ShowDashboard(c *gin.Context) {
	stats, err := a.dashboard.Stats()
	if err != nil {
		a.handleServiceError(c, err)
		return
	}

	session := sessions.Default(c)
	c.JSON(http.StatusOK, gin.H{
		"username": session.Get("username"),
		"stats": gin.H{
			"services":       stats.Services,
			"projects":       stats.Projects,
			"messages":       stats.Messages,
			"unreadMessages": stats.UnreadMessages,
		},
	})
}

// ListOptions exposes the enumerated choices of the admin forms.
func (a *API) ListOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"serviceIcons": view.ServiceIconOptions(),
		"platforms":    view.PlatformOptions(),
		"fonts":        view.FontOptions(),
		"seoPages":     service.SeoPages,
	})
}
