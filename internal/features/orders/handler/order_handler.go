package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"opensea-orders/internal/core/logger"
	"opensea-orders/internal/features/orders/domain"
	"opensea-orders/internal/features/orders/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// OrderHandler handles HTTP requests related to orders.
type OrderHandler struct {
	// service is the OrderService instance.
	service *service.OrderService
	// timeout bounds each upstream lookup.
	timeout time.Duration
}

// NewOrderHandler creates a new instance of OrderHandler.
func NewOrderHandler(s *service.OrderService, timeout time.Duration) *OrderHandler {
	return &OrderHandler{
		service: s,
		timeout: timeout,
	}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// RegisterRoutes mounts the order endpoints on router.
func (h *OrderHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/orders", h.ListOrders)
	router.Get("/orders/single", h.GetOrder)
	router.Get("/orders/chain/:chain/:hash", h.GetOrderV2)
}

// ListOrders lists legacy orders for a token.
// @Summary List orders for a token
// @Description Fetch legacy order book entries for one token of a contract.
// @Tags orders
// @Produce json
// @Param side query string true "Order side (buy, sell, 0 or 1)"
// @Param token_id query string true "Token ID"
// @Param asset_contract_address query string true "Contract address"
// @Param limit query int false "Maximum number of orders (1-50)"
// @Success 200 {array} domain.Order
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	req, err := parseOrderRequest(c)
	if err != nil {
		return h.fail(c, http.StatusBadRequest, err.Error())
	}

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return h.fail(c, http.StatusBadRequest, "limit must be an integer")
		}
		req.Limit = limit
	}

	ctx, cancel := h.context(c)
	defer cancel()

	orders, err := h.service.ListOrders(ctx, req)
	if err != nil {
		return h.failFromError(c, "list", err)
	}

	return c.Status(http.StatusOK).JSON(orders)
}

// GetOrder returns the first legacy order for a token.
// @Summary Get the best order for a token
// @Description Fetch a single legacy order for one token of a contract.
// @Tags orders
// @Produce json
// @Param side query string true "Order side (buy, sell, 0 or 1)"
// @Param token_id query string true "Token ID"
// @Param asset_contract_address query string true "Contract address"
// @Success 200 {object} domain.Order
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /orders/single [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	req, err := parseOrderRequest(c)
	if err != nil {
		return h.fail(c, http.StatusBadRequest, err.Error())
	}

	ctx, cancel := h.context(c)
	defer cancel()

	order, err := h.service.GetOrder(ctx, req)
	if err != nil {
		return h.failFromError(c, "single", err)
	}

	return c.Status(http.StatusOK).JSON(order)
}

// GetOrderV2 returns a Seaport order by chain and hash.
// @Summary Get order by chain and hash
// @Description Fetch a Seaport order addressed by chain slug and order hash.
// @Tags orders
// @Produce json
// @Param chain path string true "Chain slug, e.g. ethereum"
// @Param hash path string true "Order hash (0x-prefixed, 32 bytes)"
// @Success 200 {object} domain.OrderV2
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /orders/chain/{chain}/{hash} [get]
func (h *OrderHandler) GetOrderV2(c *fiber.Ctx) error {
	hash, err := domain.ParseOrderHash(c.Params("hash"))
	if err != nil {
		return h.fail(c, http.StatusBadRequest, err.Error())
	}

	ctx, cancel := h.context(c)
	defer cancel()

	order, err := h.service.GetOrderV2(ctx, domain.OrderRequestV2{
		Chain:     c.Params("chain"),
		OrderHash: hash,
	})
	if err != nil {
		return h.failFromError(c, "v2", err)
	}

	return c.Status(http.StatusOK).JSON(order)
}

func (h *OrderHandler) context(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.UserContext())
	}
	return context.WithTimeout(c.UserContext(), h.timeout)
}

// failFromError maps service and upstream errors onto HTTP statuses.
func (h *OrderHandler) failFromError(c *fiber.Ctx, operation string, err error) error {
	status := http.StatusInternalServerError
	msg := "Internal Server Error"

	var apiErr *domain.APIError
	switch {
	case errors.Is(err, service.ErrInvalidRequest):
		status = http.StatusBadRequest
		msg = err.Error()
	case errors.Is(err, domain.ErrOrderNotFound):
		status = http.StatusNotFound
		msg = err.Error()
	case errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound:
		status = http.StatusNotFound
		msg = "Order not found"
	case errors.Is(err, context.DeadlineExceeded):
		status = http.StatusGatewayTimeout
		msg = "Upstream request timed out"
	case errors.Is(err, domain.ErrTransport), errors.Is(err, domain.ErrDecode):
		status = http.StatusBadGateway
		msg = err.Error()
	}

	if status >= http.StatusInternalServerError {
		logger.Named("orders").Error("Order lookup failed",
			zap.String("operation", operation),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
	}

	return h.fail(c, status, msg)
}

func (h *OrderHandler) fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(ErrorResponse{
		Message: msg,
		RayID:   rayID(c),
	})
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

func parseOrderRequest(c *fiber.Ctx) (domain.OrderRequest, error) {
	side, err := domain.ParseOrderSide(c.Query("side"))
	if err != nil {
		return domain.OrderRequest{}, err
	}

	tokenID := c.Query("token_id")
	if tokenID == "" {
		return domain.OrderRequest{}, errors.New("token_id is required")
	}

	contract, err := domain.ParseAddress(c.Query("asset_contract_address"))
	if err != nil {
		return domain.OrderRequest{}, err
	}

	return domain.NewOrderRequest(side, contract, tokenID), nil
}
