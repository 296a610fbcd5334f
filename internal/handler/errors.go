package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/logger"
	"github.com/portfolio/internal/service"
	"github.com/portfolio/internal/storage"
)

var notFoundErrors = []error{
	service.ErrServiceNotFound,
	service.ErrProjectNotFound,
	service.ErrSocialLinkNotFound,
	service.ErrSectionNotFound,
	service.ErrProfileNotFound,
	service.ErrContactNotFound,
	service.ErrSeoNotFound,
	service.ErrSeoPageUnknown,
}

var invalidInputErrors = []error{
	service.ErrServiceInvalidInput,
	service.ErrProjectInvalidInput,
	service.ErrSocialLinkInvalidInput,
	service.ErrProfileInvalidInput,
	service.ErrContactInvalidInput,
	service.ErrPositionOutOfRange,
	service.ErrInvalidDirection,
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// handleServiceError maps service failures onto status codes and error notices.
func (a *API) handleServiceError(c *gin.Context, err error) {
	switch {
	case isAny(err, notFoundErrors):
		a.respondError(c, http.StatusNotFound, "Item not found", "العنصر غير موجود")
	case isAny(err, invalidInputErrors):
		a.respondError(c, http.StatusBadRequest, "Please check the required fields", "يرجى التحقق من الحقول المطلوبة")
	case errors.Is(err, service.ErrRepositoryUnavailable):
		a.log.Error("repository unavailable", logger.String("path", c.FullPath()), logger.Error(err))
		a.respondError(c, http.StatusServiceUnavailable, "Storage is unavailable, please try again", "التخزين غير متاح، يرجى المحاولة مرة أخرى")
	default:
		a.log.Error("request failed", logger.String("path", c.FullPath()), logger.Error(err))
		a.respondError(c, http.StatusInternalServerError, "Something went wrong", "حدث خطأ ما")
	}
}

func (a *API) handleUploadError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrFileTooLarge):
		a.respondError(c, http.StatusRequestEntityTooLarge, "File is too large", "حجم الملف كبير جدًا")
	case errors.Is(err, storage.ErrEmptyFile):
		a.respondError(c, http.StatusBadRequest, "Please choose a file", "يرجى اختيار ملف")
	case errors.Is(err, storage.ErrNotImage):
		a.respondError(c, http.StatusBadRequest, "Only PNG, JPEG, GIF or WebP images are allowed", "يُسمح فقط بصور PNG أو JPEG أو GIF أو WebP")
	case errors.Is(err, storage.ErrNotPDF):
		a.respondError(c, http.StatusBadRequest, "Only PDF files are allowed", "يُسمح فقط بملفات PDF")
	default:
		a.log.Error("upload failed", logger.String("path", c.FullPath()), logger.Error(err))
		a.respondError(c, http.StatusBadGateway, "Upload failed", "فشل رفع الملف")
	}
}
