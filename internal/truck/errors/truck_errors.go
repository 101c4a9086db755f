package truckerrors

import (
	"net/http"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/apperror"
)

var (
	ErrTruckNotFound = apperror.New(
		apperror.CodeNotFound,
		"Truck not found",
		http.StatusNotFound,
	)

	ErrInvalidTruckID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid truck id",
		http.StatusBadRequest,
	)
)
