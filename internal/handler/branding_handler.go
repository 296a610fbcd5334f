package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/service"
	"github.com/portfolio/internal/view"
)

type brandingRequest struct {
	SiteName   string `json:"siteName"`
	LogoLetter string `json:"logoLetter"`
	LogoFont   string `json:"logoFont"`
}

// GetSite returns the public branding.
func (a *API) GetSite(c *gin.Context) {
	settings, err := a.site.GetSettings()
	if err != nil {
		a.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"site": sitePayload(settings)})
}

// GetBranding returns the branding form state with the font choices.
func (a *API) GetBranding(c *gin.Context) {
	settings, err := a.site.GetSettings()
	if err != nil {
		a.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"site":  sitePayload(settings),
		"fonts": view.FontOptions(),
	})
}

func (a *API) UpdateBranding(c *gin.Context) {
	var payload brandingRequest
	if !a.bindJSON(c, &payload) {
		return
	}

	settings, err := a.site.UpdateSettings(service.SiteSettingsInput{
		SiteName:   payload.SiteName,
		LogoLetter: payload.LogoLetter,
		LogoFont:   payload.LogoFont,
	})
	if err != nil {
		a.handleServiceError(c, err)
		return
	}
	a.respondSuccess(c, http.StatusOK, "Branding saved", "تم حفظ الهوية", gin.H{"site": sitePayload(settings)})
}
