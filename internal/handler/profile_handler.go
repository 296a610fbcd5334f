package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/service"
)

type profileRequest struct {
	Name                *string `json:"name"`
	Title               *string `json:"title"`
	Bio                 *string `json:"bio"`
	Email               *string `json:"email"`
	Phone               *string `json:"phone"`
	Location            *string `json:"location"`
	ResumeText          *string `json:"resumeText"`
	ProfileImageVisible *bool   `json:"profileImageVisible"`
}

func (r profileRequest) toInput() service.ProfileInput {
	return service.ProfileInput{
		Name:                r.Name,
		Title:               r.Title,
		Bio:                 r.Bio,
		Email:               r.Email,
		Phone:               r.Phone,
		Location:            r.Location,
		ResumeText:          r.ResumeText,
		ProfileImageVisible: r.ProfileImageVisible,
	}
}

// GetAdminProfile returns the full profile for editing.
func (a *API) GetAdminProfile(c *gin.Context) {
	profile, err := a.profile.Get()
	if err != nil {
		a.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile": profilePayload(*profile)})
}

func (a *API) UpdateProfile(c *gin.Context) {
	var payload profileRequest
	if !a.bindJSON(c, &payload) {
		return
	}

	profile, err := a.profile.Update(payload.toInput())
	if err != nil {
		a.handleServiceError(c, err)
		return
	}
	a.respondSuccess(c, http.StatusOK, "Profile updated", "تم تحديث الملف الشخصي", gin.H{"profile": profilePayload(*profile)})
}

func (a *API) ToggleProfileImageVisibility(c *gin.Context) {
	profile, err := a.profile.ToggleImageVisibility()
	if err != nil {
		a.handleServiceError(c, err)
		return
	}
	a.respondSuccess(c, http.StatusOK, "Profile picture visibility updated", "تم تحديث ظهور الصورة الشخصية", gin.H{"profile": profilePayload(*profile)})
}
