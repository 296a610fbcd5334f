package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/storage"
)

const uploadField = "file"

type uploadedFile struct {
	name        string
	contentType string
	data        []byte
}

// readUpload reads the multipart file and validates it with inspect.
func (a *API) readUpload(c *gin.Context, kind string, inspect func([]byte) (string, error)) (*uploadedFile, bool) {
	if a.blobs == nil {
		a.respondError(c, http.StatusServiceUnavailable, "Uploads are not configured", "رفع الملفات غير مفعّل")
		return nil, false
	}

	header, err := c.FormFile(uploadField)
	if err != nil {
		a.handleUploadError(c, storage.ErrEmptyFile)
		return nil, false
	}
	if header.Size > storage.MaxUploadSize {
		a.handleUploadError(c, storage.ErrFileTooLarge)
		return nil, false
	}

	file, err := header.Open()
	if err != nil {
		a.handleUploadError(c, fmt.Errorf("open upload: %w", err))
		return nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, storage.MaxUploadSize+1))
	if err != nil {
		a.handleUploadError(c, fmt.Errorf("read upload: %w", err))
		return nil, false
	}

	contentType, err := inspect(data)
	if err != nil {
		a.handleUploadError(c, err)
		return nil, false
	}

	return &uploadedFile{
		name:        storage.GenerateName(kind, header.Filename, a.now()),
		contentType: contentType,
		data:        data,
	}, true
}

// store uploads the file and returns its public URL. Nothing is written to
// the database when this fails.
func (a *API) store(c *gin.Context, upload *uploadedFile) (string, bool) {
	url, err := a.blobs.Put(c.Request.Context(), upload.name, upload.contentType, upload.data)
	if err != nil {
		a.handleUploadError(c, err)
		return "", false
	}
	return url, true
}

func inspectImage(data []byte) (string, error) {
	img, err := storage.InspectImage(data)
	if err != nil {
		return "", err
	}
	return "image/" + img.Format, nil
}

func inspectPDF(data []byte) (string, error) {
	if err := storage.InspectPDF(data); err != nil {
		return "", err
	}
	return "application/pdf", nil
}

// UploadProfileImage stores a new profile picture.
func (a *API) UploadProfileImage(c *gin.Context) {
	upload, ok := a.readUpload(c, "profile", inspectImage)
	if !ok {
		return
	}
	url, ok := a.store(c, upload)
	if !ok {
		return
	}

	profile, err := a.profile.SetImage(url)
	if err != nil {
		a.handleServiceError(c, err)
		return
	}
	a.respondSuccess(c, http.StatusOK, "Profile picture uploaded", "تم رفع الصورة الشخصية", gin.H{
		"url":     url,
		"profile": profilePayload(*profile),
	})
}

// UploadResume stores the downloadable resume document.
func (a *API) UploadResume(c *gin.Context) {
	upload, ok := a.readUpload(c, "resume", inspectPDF)
	if !ok {
		return
	}
	url, ok := a.store(c, upload)
	if !ok {
		return
	}

	profile, err := a.profile.SetResumeFile(url)
	if err != nil {
		a.handleServiceError(c, err)
		return
	}
	a.respondSuccess(c, http.StatusOK, "Resume uploaded", "تم رفع السيرة الذاتية", gin.H{
		"url":     url,
		"profile": profilePayload(*profile),
	})
}

// UploadProjectImage stores the cover image of one project.
func (a *API) UploadProjectImage(c *gin.Context) {
	id := idParam(c)
	if _, err := a.projects.Get(id); err != nil {
		a.handleServiceError(c, err)
		return
	}

	upload, ok := a.readUpload(c, "project", inspectImage)
	if !ok {
		return
	}
	url, ok := a.store(c, upload)
	if !ok {
		return
	}

	project, err := a.projects.SetImage(id, url)
	if err != nil {
		a.handleServiceError(c, err)
		return
	}
	a.respondSuccess(c, http.StatusOK, "Project image uploaded", "تم رفع صورة المشروع", gin.H{
		"url":     url,
		"project": projectPayload(*project),
	})
}
