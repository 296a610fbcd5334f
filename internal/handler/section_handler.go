package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/service"
)

type sectionRequest struct {
	Title string `json:"title"`
}

func (a *API) sectionResource() orderedResource[db.SectionVisibility] {
	return orderedResource[db.SectionVisibility]{
		plural:   "sections",
		singular: "section",
		nounEN:   "Section",
		nounAR:   "القسم",
		list:     a.sections.List,
		toggle:   a.sections.ToggleVisibility,
		move:     a.sections.Move,
		reorder:  a.sections.Reorder,
		payload:  sectionPayload,
	}
}

// ListSections returns the visible home page blocks in display order.
func (a *API) ListSections(c *gin.Context) {
	listRows(a, c, a.sectionResource(), service.ListOptions{})
}

func (a *API) ListAdminSections(c *gin.Context) {
	listRows(a, c, a.sectionResource(), service.ListOptions{IncludeHidden: true})
}

func (a *API) UpdateSection(c *gin.Context) {
	var payload sectionRequest
	if !a.bindJSON(c, &payload) {
		return
	}

	item, err := a.sections.Rename(idParam(c), payload.Title)
	if err != nil {
		a.handleServiceError(c, err)
		return
	}
	a.respondSuccess(c, http.StatusOK, "Section updated", "تم تحديث القسم", gin.H{"section": sectionPayload(*item)})
}

func (a *API) ToggleSectionVisibility(c *gin.Context) { toggleRow(a, c, a.sectionResource()) }

func (a *API) MoveSection(c *gin.Context) { moveRow(a, c, a.sectionResource()) }

func (a *API) ReorderSections(c *gin.Context) { reorderRows(a, c, a.sectionResource()) }
