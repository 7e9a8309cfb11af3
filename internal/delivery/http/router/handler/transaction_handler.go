package handler

import (
	"log/slog"
	"net/http"

	"finboard/internal/delivery/http/response"
	"finboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TransactionHandler holds dependencies for the transaction endpoints.
type TransactionHandler struct {
	transactions usecase.TransactionUsecase
	logger       *slog.Logger
}

// NewTransactionHandler is the constructor for TransactionHandler, injected by Fx.
func NewTransactionHandler(transactions usecase.TransactionUsecase, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{
		transactions: transactions,
		logger:       logger,
	}
}

// List returns transactions, restricted by the optional accountId query.
func (h *TransactionHandler) List(c echo.Context) error {
	transactions, err := h.transactions.List(c.Request().Context(), c.QueryParam("accountId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, transactions, "")
}

// Create registers a new transaction.
func (h *TransactionHandler) Create(c echo.Context) error {
	var input usecase.TransactionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transaction input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.transactions.Create(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Transaction created")
}

// Update replaces the transaction identified by the path id.
func (h *TransactionHandler) Update(c echo.Context) error {
	var input usecase.TransactionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transaction input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.transactions.Update(c.Request().Context(), c.Param("id"), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Transaction updated")
}

// Delete removes the transaction identified by the path id.
func (h *TransactionHandler) Delete(c echo.Context) error {
	if err := h.transactions.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Transaction deleted")
}

// Summary returns the aggregate income/expense/balance view.
func (h *TransactionHandler) Summary(c echo.Context) error {
	summary, err := h.transactions.Summary(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "")
}
