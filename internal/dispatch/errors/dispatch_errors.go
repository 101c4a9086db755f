package dispatcherrors

import (
	"net/http"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/apperror"
)

var (
	ErrLoadNotFound = apperror.New(
		apperror.CodeNotFound,
		"Load not found",
		http.StatusNotFound,
	)

	ErrLegNotFound = apperror.New(
		apperror.CodeNotFound,
		"Dispatch leg not found",
		http.StatusNotFound,
	)

	ErrInvalidLoadID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid load id",
		http.StatusBadRequest,
	)

	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company id",
		http.StatusBadRequest,
	)

	ErrInvalidDriverID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid driver id",
		http.StatusBadRequest,
	)

	ErrInvalidTruckID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid truck id",
		http.StatusBadRequest,
	)

	ErrLegsRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Multi-driver loads require at least one dispatch leg",
		http.StatusBadRequest,
	)

	ErrLegsNotAllowed = apperror.New(
		apperror.CodeInvalidInput,
		"Dispatch legs are only accepted for multi-driver loads",
		http.StatusBadRequest,
	)

	ErrInvalidTrailerType = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown trailer type",
		http.StatusBadRequest,
	)

	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"Illegal load status transition",
		http.StatusConflict,
	)

	ErrLoadTerminal = apperror.New(
		apperror.CodeInvalidState,
		"Load is in a terminal status",
		http.StatusConflict,
	)

	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"end date must not be before start date",
		http.StatusBadRequest,
	)
)
