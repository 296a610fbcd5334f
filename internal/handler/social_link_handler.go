package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/service"
)

type socialLinkRequest struct {
	Platform  *string `json:"platform"`
	URL       *string `json:"url"`
	IsVisible *bool   `json:"isVisible"`
}

func (a *API) socialLinkResource() orderedResource[db.SocialLink] {
	return orderedResource[db.SocialLink]{
		plural:   "socialLinks",
		singular: "socialLink",
		nounEN:   "Link",
		nounAR:   "الرابط",
		list:     a.socialLinks.List,
		toggle:   a.socialLinks.ToggleVisibility,
		move:     a.socialLinks.Move,
		reorder:  a.socialLinks.Reorder,
		remove:   a.socialLinks.Delete,
		payload:  socialLinkPayload,
	}
}

func (a *API) ListSocialLinks(c *gin.Context) {
	listRows(a, c, a.socialLinkResource(), service.ListOptions{})
}

func (a *API) ListAdminSocialLinks(c *gin.Context) {
	listRows(a, c, a.socialLinkResource(), service.ListOptions{IncludeHidden: true})
}

func (a *API) CreateSocialLink(c *gin.Context) {
	var payload socialLinkRequest
	if !a.bindJSON(c, &payload) {
		return
	}

	item, err := a.socialLinks.Create(service.SocialLinkInput{Platform: payload.Platform, URL: payload.URL, Visible: payload.IsVisible})
	if err != nil {
		a.handleServiceError(c, err)
		return
	}
	a.respondSuccess(c, http.StatusCreated, "Link added", "تمت إضافة الرابط", gin.H{"socialLink": socialLinkPayload(*item)})
}

func (a *API) UpdateSocialLink(c *gin.Context) {
	var payload socialLinkRequest
	if !a.bindJSON(c, &payload) {
		return
	}

	item, err := a.socialLinks.Update(idParam(c), service.SocialLinkInput{Platform: payload.Platform, URL: payload.URL, Visible: payload.IsVisible})
	if err != nil {
		a.handleServiceError(c, err)
		return
	}
	a.respondSuccess(c, http.StatusOK, "Link updated", "تم تحديث الرابط", gin.H{"socialLink": socialLinkPayload(*item)})
}

func (a *API) DeleteSocialLink(c *gin.Context) { deleteRow(a, c, a.socialLinkResource()) }

func (a *API) ToggleSocialLinkVisibility(c *gin.Context) { toggleRow(a, c, a.socialLinkResource()) }

func (a *API) MoveSocialLink(c *gin.Context) { moveRow(a, c, a.socialLinkResource()) }

func (a *API) ReorderSocialLinks(c *gin.Context) { reorderRows(a, c, a.socialLinkResource()) }
