package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mywallet/wallet-api/internal/api/metrics"
	"github.com/mywallet/wallet-api/internal/core/ports"
)

// LedgerHandler handles the protected income/outcome/balance endpoints.
type LedgerHandler struct {
	ledgerService ports.LedgerService
}

func NewLedgerHandler(ledgerService ports.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerService: ledgerService}
}

// recordEntryRequest is the body for PUT /income and PUT /outcome. Amount is
// a pointer so a missing field is distinguishable from an explicit zero.
type recordEntryRequest struct {
	Amount      *int64 `json:"amount" validate:"required"`
	Description string `json:"description" validate:"required,alphanum"`
}

// Income appends an entry to the caller's income list.
//
// @Summary      Record an income entry
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordEntryRequest  true  "Entry details"
// @Success      201
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /income [put]
func (h *LedgerHandler) Income(c echo.Context) error {
	return h.record(c, h.ledgerService.RecordIncome, "income")
}

// Outcome appends an entry to the caller's outcome list.
//
// @Summary      Record an outcome entry
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordEntryRequest  true  "Entry details"
// @Success      201
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /outcome [put]
func (h *LedgerHandler) Outcome(c echo.Context) error {
	return h.record(c, h.ledgerService.RecordOutcome, "outcome")
}

func (h *LedgerHandler) record(c echo.Context, op func(context.Context, ports.RecordEntryInput) error, kind string) error {
	var req recordEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return err
	}

	input := ports.RecordEntryInput{
		Token:       ctxToken(c),
		Amount:      *req.Amount,
		Description: req.Description,
	}
	if err := op(c.Request().Context(), input); err != nil {
		return err
	}

	metrics.TransactionsRecordedTotal.WithLabelValues(kind).Inc()
	return c.NoContent(http.StatusCreated)
}

// Balance returns the caller's name and transaction history.
//
// @Summary      Get the balance view
// @Tags         ledger
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  ports.BalanceView
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /balance [get]
func (h *LedgerHandler) Balance(c echo.Context) error {
	view, err := h.ledgerService.Balance(c.Request().Context(), ctxToken(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}
