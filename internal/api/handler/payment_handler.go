package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/paydash/payment-tracker/internal/api/metrics"
	"github.com/paydash/payment-tracker/internal/core/domain"
	"github.com/paydash/payment-tracker/internal/core/ports"
)

const queryDateFormat = "2006-01-02"

// PaymentHandler handles payment ledger and statistics endpoints.
type PaymentHandler struct {
	payments ports.PaymentService
	stats    ports.StatsService
}

func NewPaymentHandler(payments ports.PaymentService, stats ports.StatsService) *PaymentHandler {
	return &PaymentHandler{payments: payments, stats: stats}
}

// List returns payments newest first, optionally filtered.
//
// @Summary      List payments
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        status     query     string  false  "Filter by status (success|failed|pending)"
// @Param        method     query     string  false  "Filter by method (upi|card|bank|cash)"
// @Param        startDate  query     string  false  "Inclusive lower bound, YYYY-MM-DD"
// @Param        endDate    query     string  false  "Inclusive upper bound, YYYY-MM-DD"
// @Success      200  {array}   paymentResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /payments [get]
func (h *PaymentHandler) List(c echo.Context) error {
	input := ports.ListPaymentsInput{
		Status: c.QueryParam("status"),
		Method: c.QueryParam("method"),
	}
	if input.Status != "" && !domain.PaymentStatus(input.Status).Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown status value")
	}
	if input.Method != "" && !domain.PaymentMethod(input.Method).Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown method value")
	}

	if raw := c.QueryParam("startDate"); raw != "" {
		day, err := time.ParseInLocation(queryDateFormat, raw, time.UTC)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "startDate must be YYYY-MM-DD")
		}
		input.StartDate = day
	}
	if raw := c.QueryParam("endDate"); raw != "" {
		day, err := time.ParseInLocation(queryDateFormat, raw, time.UTC)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "endDate must be YYYY-MM-DD")
		}
		// Inclusive through the end of the named day.
		input.EndDate = day.Add(24*time.Hour - time.Millisecond)
	}

	payments, err := h.payments.ListPayments(c.Request().Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPaymentResponses(payments))
}

// Stats returns the dashboard statistics over the trailing revenue window.
//
// @Summary      Payment statistics
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.StatisticsSnapshot
// @Failure      401  {object}  errorResponse
// @Router       /payments/stats [get]
func (h *PaymentHandler) Stats(c echo.Context) error {
	timer := prometheus.NewTimer(metrics.StatsComputeDuration)
	defer timer.ObserveDuration()

	snapshot, err := h.stats.ComputeStats(c.Request().Context(), time.Now())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, snapshot)
}

// Get returns one payment by ID.
//
// @Summary      Get a payment
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Payment ID"
// @Success      200  {object}  paymentResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /payments/{id} [get]
func (h *PaymentHandler) Get(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "id must be an integer")
	}

	payment, err := h.payments.GetPayment(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPaymentResponse(payment))
}

// Create records a new payment. An Idempotency-Key header makes the call
// replay-safe: a repeated key returns the originally created payment.
//
// @Summary      Record a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      createPaymentRequest  true   "Payment details"
// @Success      201              {object}  paymentResponse
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Router       /payments [post]
func (h *PaymentHandler) Create(c echo.Context) error {
	var req createPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.payments.CreatePayment(c.Request().Context(), ports.CreatePaymentInput{
		Amount:         req.Amount,
		Receiver:       req.Receiver,
		Status:         req.Status,
		Method:         req.Method,
		IdempotencyKey: c.Request().Header.Get("Idempotency-Key"),
	})
	if err != nil {
		return err
	}

	status := http.StatusCreated
	if result.AlreadyExisted {
		status = http.StatusOK
	} else {
		metrics.PaymentsCreatedTotal.
			WithLabelValues(string(result.Payment.Method), string(result.Payment.Status)).
			Inc()
	}
	return c.JSON(status, toPaymentResponse(result.Payment))
}
