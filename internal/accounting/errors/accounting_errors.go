package accountingerrors

import (
	"net/http"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/apperror"
)

var (
	ErrInvoiceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Invoice not found",
		http.StatusNotFound,
	)

	ErrBillNotFound = apperror.New(
		apperror.CodeNotFound,
		"Bill not found",
		http.StatusNotFound,
	)

	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company id",
		http.StatusBadRequest,
	)

	ErrInvalidLoadID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid load id",
		http.StatusBadRequest,
	)

	ErrInvalidInvoiceStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown invoice status",
		http.StatusBadRequest,
	)

	ErrInvoiceVoid = apperror.New(
		apperror.CodeInvalidState,
		"Invoice is void",
		http.StatusConflict,
	)
)
