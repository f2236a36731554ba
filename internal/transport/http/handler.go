package http

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"aristobox/internal/export"
	"aristobox/internal/filter"
	"aristobox/internal/service"
	"aristobox/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	svc service.OrderService
	log *zap.Logger
}

func NewOrderHandler(svc service.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		svc: svc,
		log: log,
	}
}

func (h *OrderHandler) ListKits(c *gin.Context) {
	kits, err := h.svc.ListKits(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, kits)
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req service.CreateOrderInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid create order request", zap.Error(err))
		c.JSON(http.StatusBadRequest, NewValidationError("invalid request body", nil))
		return
	}

	ord, err := h.svc.CreateOrder(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, ord)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	res, err := h.svc.ListOrders(c.Request.Context(), filter.ParseQuery(c.Request.URL.Query(), nil))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, newOrderListResponse(res))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	key, ok := h.orderKey(c)
	if !ok {
		return
	}
	ord, err := h.svc.GetOrder(c.Request.Context(), key)
	if err != nil {
		h.fail(c, err)
		return
	}
	next, err := h.svc.NextStatuses(c.Request.Context(), key)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, OrderDetailResponse{Order: ord, NextStatuses: next})
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	key, ok := h.orderKey(c)
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid update status request", zap.Error(err))
		c.JSON(http.StatusBadRequest, NewValidationError("invalid request body", nil))
		return
	}

	ord, err := h.svc.UpdateStatus(c.Request.Context(), key, req.Status)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ord)
}

// ExportOrders отдаёт CSV по тем же параметрам, что и ListOrders.
// Тело собирается в буфер: имя файла известно только после выгрузки.
func (h *OrderHandler) ExportOrders(c *gin.Context) {
	var buf bytes.Buffer
	res, err := h.svc.ExportCSV(c.Request.Context(), filter.ParseQuery(c.Request.URL.Query(), nil), &buf)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", res.Filename))
	c.Data(http.StatusOK, export.ContentType, buf.Bytes())
}

func (h *OrderHandler) orderKey(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, NewValidationError("invalid order id", []service.FieldError{
			{Field: "id", Message: "must be a positive integer"},
		}))
		return 0, false
	}
	return uint(id), true
}

func (h *OrderHandler) fail(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, NewValidationError("validation failed", verr.Fields))
	case errors.Is(err, service.ErrEmptyItems),
		errors.Is(err, service.ErrQuantityInvalid),
		errors.Is(err, service.ErrDuplicateKit),
		errors.Is(err, service.ErrKitNotFound),
		errors.Is(err, service.ErrKitInactive),
		errors.Is(err, service.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, NewValidationError(err.Error(), nil))
	case errors.Is(err, service.ErrOrderNotFound), errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, NewNotFoundError(err.Error()))
	case errors.Is(err, store.ErrConstraint):
		c.JSON(http.StatusConflict, NewConflictError(err.Error()))
	case errors.Is(err, service.ErrNothingToExport):
		c.JSON(http.StatusUnprocessableEntity, NewUnprocessableError(err.Error()))
	default:
		h.log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, NewInternalError(""))
	}
}
