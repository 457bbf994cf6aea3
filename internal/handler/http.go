package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"ordersvc/internal/entities"
	"ordersvc/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	ListOrders(ctx context.Context) ([]entities.Order, error)
	GetOrderByID(ctx context.Context, orderUID string) (entities.Order, error)
	CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error)
	UpdateOrder(ctx context.Context, orderUID string, partial entities.PartialOrder) (entities.Order, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: newValidator(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.ListOrders)
		r.Post("/", h.CreateOrder)
		r.Get("/{order_uid}", h.GetOrderByID)
		r.Put("/{order_uid}", h.UpdateOrder)
	})
}

// ListOrders returns every stored order.
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.svc.ListOrders(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, orders, http.StatusOK)
}

// GetOrderByID returns one order by its unique identifier.
func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderUID := chi.URLParam(r, "order_uid")

	order, err := h.svc.GetOrderByID(ctx, orderUID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order",
			slog.Any("error", err), slog.String("order_uid", orderUID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, order, http.StatusOK)
}

// CreateOrder validates and stores a new order.
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var order entities.Order
	if err := utils.DecodeBody(r, &order); err != nil {
		utils.WriteDecodeError(w, err)
		return
	}

	if err := h.validate.Struct(order); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	created, err := h.svc.CreateOrder(ctx, order)

	if errors.Is(err, entities.ErrOrderExists) {
		utils.WriteError(w, "order already exists", http.StatusConflict)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create order",
			slog.Any("error", err), slog.String("order_uid", order.OrderUID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// UpdateOrder applies a partial document to an existing order. The identifier
// comes from the URL path; an order_uid in the body has no effect.
func (h *HTTPHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderUID := chi.URLParam(r, "order_uid")

	var partial entities.PartialOrder
	if err := utils.DecodeBody(r, &partial); err != nil {
		utils.WriteDecodeError(w, err)
		return
	}

	merged, err := h.svc.UpdateOrder(ctx, orderUID, partial)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	if err != nil {
		h.logger.ErrorContext(ctx, "failed to update order",
			slog.Any("error", err), slog.String("order_uid", orderUID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, merged, http.StatusOK)
}

// newValidator reports violations under the json names of the fields, so the
// response paths match the wire format ("delivery.email", not
// "Delivery.Email").
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}
