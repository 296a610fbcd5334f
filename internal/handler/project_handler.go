package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/service"
)

// projectRequest takes technologies as the comma separated text of the admin form.
type projectRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Technologies *string `json:"technologies"`
	ProjectURL   *string `json:"projectUrl"`
	GithubURL    *string `json:"githubUrl"`
	ImageURL     *string `json:"imageUrl"`
	IsVisible    *bool   `json:"isVisible"`
}

func (r projectRequest) toInput() service.ProjectInput {
	return service.ProjectInput{
		Title:        r.Title,
		Description:  r.Description,
		Technologies: r.Technologies,
		ProjectURL:   r.ProjectURL,
		GithubURL:    r.GithubURL,
		ImageURL:     r.ImageURL,
		Visible:      r.IsVisible,
	}
}

func (a *API) projectResource() orderedResource[db.Project] {
	return orderedResource[db.Project]{
		plural:   "projects",
		singular: "project",
		nounEN:   "Project",
		nounAR:   "المشروع",
		list:     a.projects.List,
		toggle:   a.projects.ToggleVisibility,
		move:     a.projects.Move,
		reorder:  a.projects.Reorder,
		remove:   a.projects.Delete,
		payload:  projectPayload,
	}
}

func (a *API) ListProjects(c *gin.Context) {
	listRows(a, c, a.projectResource(), service.ListOptions{})
}

func (a *API) ListAdminProjects(c *gin.Context) {
	listRows(a, c, a.projectResource(), service.ListOptions{IncludeHidden: true})
}

func (a *API) CreateProject(c *gin.Context) {
	var payload projectRequest
	if !a.bindJSON(c, &payload) {
		return
	}

	item, err := a.projects.Create(payload.toInput())
	if err != nil {
		a.handleServiceError(c, err)
		return
	}
	a.respondSuccess(c, http.StatusCreated, "Project added", "تمت إضافة المشروع", gin.H{"project": projectPayload(*item)})
}

func (a *API) UpdateProject(c *gin.Context) {
	var payload projectRequest
	if !a.bindJSON(c, &payload) {
		return
	}

	item, err := a.projects.Update(idParam(c), payload.toInput())
	if err != nil {
		a.handleServiceError(c, err)
		return
	}
	a.respondSuccess(c, http.StatusOK, "Project updated", "تم تحديث المشروع", gin.H{"project": projectPayload(*item)})
}

func (a *API) DeleteProject(c *gin.Context) { deleteRow(a, c, a.projectResource()) }

func (a *API) ToggleProjectVisibility(c *gin.Context) { toggleRow(a, c, a.projectResource()) }

func (a *API) MoveProject(c *gin.Context) { moveRow(a, c, a.projectResource()) }

func (a *API) ReorderProjects(c *gin.Context) { reorderRows(a, c, a.projectResource()) }
