package billingerrors

import (
	"net/http"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/apperror"
)

var (
	ErrBillingNotFound = apperror.New(
		apperror.CodeNotFound,
		"Load billing not found",
		http.StatusNotFound,
	)

	ErrAccessorialNotFound = apperror.New(
		apperror.CodeNotFound,
		"Accessorial not found",
		http.StatusNotFound,
	)

	ErrExpenseNotFound = apperror.New(
		apperror.CodeNotFound,
		"Expense not found",
		http.StatusNotFound,
	)

	ErrBillingFinalized = apperror.New(
		apperror.CodeInvalidState,
		"Billing is finalized and can no longer be changed",
		http.StatusConflict,
	)

	ErrNegativeAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Amount must not be negative",
		http.StatusBadRequest,
	)
)
