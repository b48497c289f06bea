package rest

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/reserva/internal/domain"
	"github.com/Gunvolt24/reserva/internal/ports"
	"github.com/Gunvolt24/reserva/pkg/ctxmeta"
	"github.com/Gunvolt24/reserva/pkg/httpx"
)

// CartHandler — HTTP-обработчики клиентской корзины.
type CartHandler struct {
	service        ports.CartService
	log            ports.Logger
	handlerTimeout time.Duration
}

// NewCartHandler — конструктор; handlerTimeout ограничивает каждый запрос (0 — без ограничения).
func NewCartHandler(service ports.CartService, log ports.Logger, handlerTimeout time.Duration) *CartHandler {
	return &CartHandler{service: service, log: log, handlerTimeout: handlerTimeout}
}

// NewCartRouter — роутер cart-service. Все маршруты корзины требуют X-Client-ID.
func NewCartRouter(h *CartHandler, otelServiceName string) *gin.Engine {
	r := newEngine(h.log, otelServiceName)

	cart := r.Group("/api/v1/cart", httpx.RequireClient())
	cart.POST("/session", h.startSession)
	cart.DELETE("/session", h.endSession)
	cart.GET("", h.fetchActive)
	cart.GET("/view", h.view)
	cart.POST("/items", h.addItem)
	cart.PATCH("/items/:id", h.updateQuantity)
	cart.DELETE("/items/:id", h.removeItem)
	cart.GET("/groups", h.groups)
	cart.POST("/confirm", h.confirm)
	cart.GET("/history", h.history)

	return r
}

type addItemRequest struct {
	StoreID  int64          `json:"store_id" binding:"required,gt=0"`
	Product  domain.Product `json:"product"`
	Quantity int            `json:"quantity" binding:"required,gt=0"`
}

type quantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type confirmRequest struct {
	ReservationID int64 `json:"reservation_id" binding:"required,gt=0"`
}

// historyPage — страница истории (история целиком живёт в сессии).
type historyPage struct {
	Items  []domain.Reservation `json:"items"`
	Total  int                  `json:"total"`
	Limit  int                  `json:"limit"`
	Offset int                  `json:"offset"`
}

func clientID(c *gin.Context) int64 {
	id, _ := ctxmeta.ClientIDFromContext(c.Request.Context())
	return id
}

func (h *CartHandler) startSession(c *gin.Context) {
	h.service.StartSession(c.Request.Context(), clientID(c))
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) endSession(c *gin.Context) {
	h.service.EndSession(c.Request.Context(), clientID(c))
	c.Status(http.StatusNoContent)
}

func (h *CartHandler) view(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.View(c.Request.Context(), clientID(c)))
}

func (h *CartHandler) fetchActive(c *gin.Context) {
	ctx, cancel := withTimeout(c, h.handlerTimeout)
	defer cancel()

	cart, err := h.service.FetchActiveCart(ctx, clientID(c))
	if err != nil {
		writeError(c, h.log, "fetch active cart", err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) addItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body: "+err.Error())
		return
	}
	ctx, cancel := withTimeout(c, h.handlerTimeout)
	defer cancel()

	cart, err := h.service.AddOrUpdateItem(ctx, clientID(c), req.StoreID, &req.Product, req.Quantity)
	if err != nil {
		writeError(c, h.log, "add item", err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) updateQuantity(c *gin.Context) {
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

	cart, err := h.service.UpdateQuantity(ctx, clientID(c), itemID, *req.Quantity)
	if err != nil {
		writeError(c, h.log, "update quantity", err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) removeItem(c *gin.Context) {
	itemID, ok := httpx.ParseIDParam(c, "id")
	if !ok {
		badRequest(c, "invalid item id")
		return
	}
	ctx, cancel := withTimeout(c, h.handlerTimeout)
	defer cancel()

	cart, err := h.service.RemoveItem(ctx, clientID(c), itemID)
	if err != nil {
		writeError(c, h.log, "remove item", err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h *CartHandler) groups(c *gin.Context) {
	ctx, cancel := withTimeout(c, h.handlerTimeout)
	defer cancel()

	groups, err := h.service.GroupedCart(ctx, clientID(c))
	if err != nil {
		writeError(c, h.log, "grouped cart", err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

func (h *CartHandler) confirm(c *gin.Context) {
	var req confirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid body: "+err.Error())
		return
	}
	ctx, cancel := withTimeout(c, h.handlerTimeout)
	defer cancel()

	reservation, err := h.service.ConfirmReservation(ctx, clientID(c), req.ReservationID)
	if err != nil {
		writeError(c, h.log, "confirm reservation", err)
		return
	}
	c.JSON(http.StatusOK, reservation)
}

func (h *CartHandler) history(c *gin.Context) {
	ctx, cancel := withTimeout(c, h.handlerTimeout)
	defer cancel()

	list, err := h.service.FetchHistory(ctx, clientID(c))
	if err != nil {
		writeError(c, h.log, "fetch history", err)
		return
	}

	limit, offset := httpx.ParseLimitOffset(c, 50, 200)
	page := historyPage{Items: []domain.Reservation{}, Total: len(list), Limit: limit, Offset: offset}
	if offset < len(list) {
		end := offset + limit
		if end > len(list) {
			end = len(list)
		}
		page.Items = list[offset:end]
	}
	c.JSON(http.StatusOK, page)
}
