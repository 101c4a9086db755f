package subscriptionerrors

import (
	"net/http"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/apperror"
)

var (
	ErrSubscriptionNotFound = apperror.New(
		apperror.CodeNotFound,
		"Subscription not found",
		http.StatusNotFound,
	)

	ErrAddonNotFound = apperror.New(
		apperror.CodeNotFound,
		"Subscription addon not found",
		http.StatusNotFound,
	)

	ErrSubscriptionExists = apperror.New(
		apperror.CodeConflict,
		"Company already has a subscription",
		http.StatusConflict,
	)

	ErrSubscriptionCancelled = apperror.New(
		apperror.CodeInvalidState,
		"Subscription is cancelled",
		http.StatusConflict,
	)

	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company id",
		http.StatusBadRequest,
	)

	ErrInvalidPlan = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown subscription plan",
		http.StatusBadRequest,
	)

	ErrNegativePrice = apperror.New(
		apperror.CodeInvalidInput,
		"Addon price must not be negative",
		http.StatusBadRequest,
	)
)
