package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/reserva/internal/domain"
	"github.com/Gunvolt24/reserva/internal/ports"
	"github.com/Gunvolt24/reserva/pkg/ctxmeta"
	"github.com/Gunvolt24/reserva/pkg/httpx"
)

// ReservationHandler — REST-поверхность репозитория резервов (reservation-api).
type ReservationHandler struct {
	service        ports.ReservationService
	log            ports.Logger
	handlerTimeout time.Duration
}

func NewReservationHandler(service ports.ReservationService, log ports.Logger, handlerTimeout time.Duration) *ReservationHandler {
	return &ReservationHandler{service: service, log: log, handlerTimeout: handlerTimeout}
}

// NewReservationRouter — роутер reservation-api.
func NewReservationRouter(h *ReservationHandler, otelServiceName string) *gin.Engine {
	r := newEngine(h.log, otelServiceName)

	api := r.Group("/api/v1")
	api.POST("/reservations", h.create)
	api.GET("/reservations", h.listByClient)
	api.PATCH("/reservations/:id/status", h.changeStatus)
	api.POST("/reservations/:id/items", h.addItem)
	api.GET("/reservations/:id/items", h.listItems)
	api.PATCH("/items/:id", h.updateItem)
	api.DELETE("/items/:id", h.deleteItem)
	api.GET("/stores", h.stores)

	return r
}

func caller(c *gin.Context) ports.Caller {
	ctx := c.Request.Context()
	clientID, _ := ctxmeta.ClientIDFromContext(ctx)
	storeID, _ := ctxmeta.StoreIDFromContext(ctx)
	return ports.Caller{ClientID: clientID, StoreID: storeID}
}

func (h *ReservationHandler) create(c *gin.Context) {
	var in domain.Reservation
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "invalid body: "+err.Error())
		return
	}
	ctx, cancel := withTimeout(c, h.handlerTimeout)
	defer cancel()

	created, err := h.service.Create(ctx, caller(c), &in)
	if err != nil {
		writeError(c, h.log, "create reservation", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ReservationHandler) listByClient(c *gin.Context) {
	clientID, err := strconv.ParseInt(c.Query("client_id"), 10, 64)
	if err != nil || clientID <= 0 {
		badRequest(c, "client_id query parameter is required")
		return
	}
	ctx, cancel := withTimeout(c, h.handlerTimeout)
	defer cancel()

	list, err := h.service.ListByClient(ctx, caller(c), clientID, domain.Status(c.Query("status")))
	if err != nil {
		writeError(c, h.log, "list reservations", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ReservationHandler) changeStatus(c *gin.Context) {
	reservationID, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		badRequest(c, "invalid reservation id")
		return
	}
	var update domain.StatusUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		badRequest(c, "invalid body: "+err.Error())
		return
	}
	ctx, cancel := withTimeout(c, h.handlerTimeout)
	defer cancel()

	updated, err := h.service.ChangeStatus(ctx, caller(c), reservationID, &update)
	if err != nil {
		writeError(c, h.log, "change status", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ReservationHandler) addItem(c *gin.Context) {
	reservationID, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		badRequest(c, "invalid reservation id")
		return
	}
	var item domain.ReservationItem
	if err := c.ShouldBindJSON(&item); err != nil {
		badRequest(c, "invalid body: "+err.Error())
		return
	}
	item.ReservationID = reservationID

	ctx, cancel := withTimeout(c, h.handlerTimeout)
	defer cancel()

	added, err := h.service.AddItem(ctx, caller(c), &item)
	if err != nil {
		writeError(c, h.log, "add item", err)
		return
	}
	c.JSON(http.StatusCreated, added)
}

func (h *ReservationHandler) listItems(c *gin.Context) {
	reservationID, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		badRequest(c, "invalid reservation id")
		return
	}
	ctx, cancel := withTimeout(c, h.handlerTimeout)
	defer cancel()

	items, err := h.service.ListItems(ctx, caller(c), reservationID)
	if err != nil {
		writeError(c, h.log, "list items", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ReservationHandler) updateItem(c *gin.Context) {
	itemID, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		badRequest(c, "invalid item id")
		return
	}
	var req quantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body: "+err.Error())
		return
	}
	ctx, cancel := withTimeout(c, h.handlerTimeout)
	defer cancel()

	updated, err := h.service.UpdateItemQuantity(ctx, caller(c), itemID, *req.Quantity)
	if err != nil {
		writeError(c, h.log, "update item", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ReservationHandler) deleteItem(c *gin.Context) {
	itemID, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		badRequest(c, "invalid item id")
		return
	}
	ctx, cancel := withTimeout(c, h.handlerTimeout)
	defer cancel()

	if err := h.service.DeleteItem(ctx, caller(c), itemID); err != nil {
		writeError(c, h.log, "delete item", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// stores — справочник: [{id, name}] в порядке запрошенных ids; неизвестные пропускаются.
func (h *ReservationHandler) stores(c *gin.Context) {
	ids, err := httpx.ParseIDList(c.Query("ids"))
	if err != nil {
		badRequest(c, err.Error())
		return
	}
	ctx, cancel := withTimeout(c, h.handlerTimeout)
	defer cancel()

	names, err := h.service.StoreNames(ctx, ids)
	if err != nil {
		writeError(c, h.log, "list stores", err)
		return
	}
	out := make([]domain.Store, 0, len(ids))
	for _, id := range ids {
		if name, ok := names[id]; ok {
			out = append(out, domain.Store{ID: id, Name: name})
		}
	}
	c.JSON(http.StatusOK, out)
}
