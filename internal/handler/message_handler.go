package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/service"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SubmitContact stores a public contact form submission.
func (a *API) SubmitContact(c *gin.Context) {
	var payload contactRequest
	if !a.bindJSON(c, &payload) {
		return
	}

	if _, err := a.contacts.Submit(service.ContactInput{
		Name:    payload.Name,
		Email:   payload.Email,
		Subject: payload.Subject,
		Message: payload.Message,
	}); err != nil {
		a.handleServiceError(c, err)
		return
	}
	a.respondSuccess(c, http.StatusCreated, "Thank you, your message has been sent", "شكرًا لك، تم إرسال رسالتك بنجاح", nil)
}

// ListMessages returns the inbox, newest first.
func (a *API) ListMessages(c *gin.Context) {
	messages, err := a.contacts.List()
	if err != nil {
		a.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": mapItems(messages, messagePayload)})
}

func (a *API) MarkMessageRead(c *gin.Context) {
	message, err := a.contacts.MarkRead(idParam(c))
	if err != nil {
		a.handleServiceError(c, err)
		return
	}
	a.respondSuccess(c, http.StatusOK, "Message marked as read", "تم تعليم الرسالة كمقروءة", gin.H{"message": messagePayload(*message)})
}

func (a *API) DeleteMessage(c *gin.Context) {
	if !a.requireConfirmation(c) {
		return
	}
	if err := a.contacts.Delete(idParam(c)); err != nil {
		a.handleServiceError(c, err)
		return
	}
	a.respondSuccess(c, http.StatusOK, "Message deleted", "تم حذف الرسالة", nil)
}
