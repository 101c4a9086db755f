package recurringerrors

import (
	"net/http"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/apperror"
)

var (
	ErrTemplateNotFound = apperror.New(
		apperror.CodeNotFound,
		"Recurring template not found",
		http.StatusNotFound,
	)

	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company id",
		http.StatusBadRequest,
	)

	ErrInvalidFrequency = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown billing frequency",
		http.StatusBadRequest,
	)

	ErrTemplateInactive = apperror.New(
		apperror.CodeInvalidState,
		"Recurring template is inactive",
		http.StatusConflict,
	)
)
