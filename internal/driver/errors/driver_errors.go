package drivererrors

import (
	"net/http"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/apperror"
)

var (
	ErrDriverNotFound = apperror.New(
		apperror.CodeNotFound,
		"Driver not found",
		http.StatusNotFound,
	)

	ErrInvalidDriverID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid driver id",
		http.StatusBadRequest,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown driver status",
		http.StatusBadRequest,
	)
)
