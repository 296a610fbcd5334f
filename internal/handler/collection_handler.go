package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/portfolio/internal/service"
)

// orderedResource adapts one ordered collection service to the shared admin handlers.
type orderedResource[T any] struct {
	plural   string
	singular string
	nounEN   string
	nounAR   string
	list     func(service.ListOptions) ([]T, error)
	toggle   func(id string) (*T, error)
	move     func(index int, direction service.Direction) ([]T, error)
	reorder  func(ids []string) ([]T, error)
	remove   func(id string) error
	payload  func(T) gin.H
}

type moveRequest struct {
	Index     *int   `json:"index"`
	Direction string `json:"direction"`
}

type reorderRequest struct {
	IDs []string `json:"ids"`
}

func listRows[T any](a *API, c *gin.Context, res orderedResource[T], opts service.ListOptions) {
	items, err := res.list(opts)
	if err != nil {
		a.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{res.plural: mapItems(items, res.payload)})
}

func toggleRow[T any](a *API, c *gin.Context, res orderedResource[T]) {
	item, err := res.toggle(idParam(c))
	if err != nil {
		a.handleServiceError(c, err)
		return
	}
	a.respondSuccess(c, http.StatusOK,
		res.nounEN+" visibility updated",
		"تم تحديث ظهور "+res.nounAR,
		gin.H{res.singular: res.payload(*item)},
	)
}

func moveRow[T any](a *API, c *gin.Context, res orderedResource[T]) {
	var payload moveRequest
	if !a.bindJSON(c, &payload) {
		return
	}
	if payload.Index == nil {
		a.respondError(c, http.StatusBadRequest, "Position is required", "الموضع مطلوب")
		return
	}
	direction, err := service.ParseDirection(payload.Direction)
	if err != nil {
		a.handleServiceError(c, err)
		return
	}

	items, err := res.move(*payload.Index, direction)
	if err != nil {
		a.handleServiceError(c, err)
		return
	}
	a.respondSuccess(c, http.StatusOK, "Order updated", "تم تحديث الترتيب",
		gin.H{res.plural: mapItems(items, res.payload)},
	)
}

func reorderRows[T any](a *API, c *gin.Context, res orderedResource[T]) {
	var payload reorderRequest
	if !a.bindJSON(c, &payload) {
		return
	}

	items, err := res.reorder(payload.IDs)
	if err != nil {
		a.handleServiceError(c, err)
		return
	}
	a.respondSuccess(c, http.StatusOK, "Order updated", "تم تحديث الترتيب",
		gin.H{res.plural: mapItems(items, res.payload)},
	)
}

func deleteRow[T any](a *API, c *gin.Context, res orderedResource[T]) {
	if !a.requireConfirmation(c) {
		return
	}
	if err := res.remove(idParam(c)); err != nil {
		a.handleServiceError(c, err)
		return
	}
	a.respondSuccess(c, http.StatusOK, res.nounEN+" deleted", "تم حذف "+res.nounAR, nil)
}
