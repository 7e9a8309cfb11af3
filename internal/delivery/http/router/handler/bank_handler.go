package handler

import (
	"net/http"

	"finboard/internal/delivery/http/response"
	"finboard/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BankHandler holds dependencies for the bank catalogue endpoint.
type BankHandler struct {
	banks usecase.BankUsecase
}

// NewBankHandler is the constructor for BankHandler, injected by Fx.
func NewBankHandler(banks usecase.BankUsecase) *BankHandler {
	return &BankHandler{banks: banks}
}

// All returns the bank catalogue for account-creation forms.
func (h *BankHandler) All(c echo.Context) error {
	banks, err := h.banks.All(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, banks, "")
}
