package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/locale"
)

const (
	noticeSuccess = "success"
	noticeError   = "error"

	confirmHeader = "X-Confirm-Delete"
	confirmQuery  = "confirm"
)

type notice struct {
	Type           string `json:"type"`
	Text           string `json:"text"`
	DismissAfterMs int64  `json:"dismissAfterMs"`
}

// text picks the English or Arabic message for the request language.
func (a *API) text(c *gin.Context, english, arabic string) string {
	return locale.Pick(a.requestLocale(c).Language, english, arabic)
}

func (a *API) notice(kind, text string) notice {
	return notice{Type: kind, Text: text, DismissAfterMs: a.noticeTTL.Milliseconds()}
}

// respondSuccess writes data plus a success notice.
func (a *API) respondSuccess(c *gin.Context, status int, english, arabic string, data gin.H) {
	body := gin.H{}
	for key, value := range data {
		body[key] = value
	}
	body["notice"] = a.notice(noticeSuccess, a.text(c, english, arabic))
	c.JSON(status, body)
}

// respondError writes the error text and a matching error notice.
func (a *API) respondError(c *gin.Context, status int, english, arabic string) {
	message := a.text(c, english, arabic)
	c.JSON(status, gin.H{
		"error":  message,
		"notice": a.notice(noticeError, message),
	})
}

func (a *API) bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		a.respondError(c, http.StatusBadRequest, "Invalid request body", "بيانات الطلب غير صالحة")
		return false
	}
	return true
}

// confirmed reports whether the request carries an explicit delete confirmation.
func confirmed(c *gin.Context) bool {
	if strings.EqualFold(strings.TrimSpace(c.GetHeader(confirmHeader)), "true") {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(c.Query(confirmQuery)), "true")
}

// requireConfirmation answers 428 when a destructive request was not confirmed.
func (a *API) requireConfirmation(c *gin.Context) bool {
	if confirmed(c) {
		return true
	}
	a.respondError(c, http.StatusPreconditionRequired,
		"Please confirm the deletion",
		"يرجى تأكيد الحذف",
	)
	return false
}

func idParam(c *gin.Context) string {
	return strings.TrimSpace(c.Param("id"))
}
