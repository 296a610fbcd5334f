package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/db"
	"github.com/portfolio/internal/service"
)

type serviceRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	IsVisible   *bool   `json:"isVisible"`
}

func (r serviceRequest) toInput() service.ServiceInput {
	return service.ServiceInput{
		Title:       r.Title,
		Description: r.Description,
		Icon:        r.Icon,
		Visible:     r.IsVisible,
	}
}

func (a *API) serviceResource() orderedResource[db.Service] {
	return orderedResource[db.Service]{
		plural:   "services",
		singular: "service",
		nounEN:   "Service",
		nounAR:   "الخدمة",
		list:     a.services.List,
		toggle:   a.services.ToggleVisibility,
		move:     a.services.Move,
		reorder:  a.services.Reorder,
		remove:   a.services.Delete,
		payload:  servicePayload,
	}
}

// ListServices returns the visible offerings for the public site.
func (a *API) ListServices(c *gin.Context) {
	listRows(a, c, a.serviceResource(), service.ListOptions{})
}

// ListAdminServices returns every offering including hidden ones.
func (a *API) ListAdminServices(c *gin.Context) {
	listRows(a, c, a.serviceResource(), service.ListOptions{IncludeHidden: true})
}

func (a *API) CreateService(c *gin.Context) {
	var payload serviceRequest
	if !a.bindJSON(c, &payload) {
		return
	}

	item, err := a.services.Create(payload.toInput())
	if err != nil {
		a.handleServiceError(c, err)
		return
	}
	a.respondSuccess(c, http.StatusCreated, "Service added", "تمت إضافة الخدمة", gin.H{"service": servicePayload(*item)})
}

func (a *API) UpdateService(c *gin.Context) {
	var payload serviceRequest
	if !a.bindJSON(c, &payload) {
		return
	}

	item, err := a.services.Update(idParam(c), payload.toInput())
	if err != nil {
		a.handleServiceError(c, err)
		return
	}
	a.respondSuccess(c, http.StatusOK, "Service updated", "تم تحديث الخدمة", gin.H{"service": servicePayload(*item)})
}

func (a *API) DeleteService(c *gin.Context) { deleteRow(a, c, a.serviceResource()) }

func (a *API) ToggleServiceVisibility(c *gin.Context) { toggleRow(a, c, a.serviceResource()) }

func (a *API) MoveService(c *gin.Context) { moveRow(a, c, a.serviceResource()) }

func (a *API) ReorderServices(c *gin.Context) { reorderRows(a, c, a.serviceResource()) }
