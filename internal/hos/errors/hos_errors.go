package hoserrors

import (
	"net/http"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/apperror"
)

var (
	ErrAlreadyOnDuty = apperror.New(
		apperror.CodeConflict,
		"Driver is already on duty",
		http.StatusConflict,
	)

	ErrNotOnDuty = apperror.New(
		apperror.CodeInvalidState,
		"Driver has no open duty period",
		http.StatusConflict,
	)
)
