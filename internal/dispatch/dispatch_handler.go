package dispatch

import (
	"net/http"

	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/apperror"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) bindError(c *gin.Context, err error) {
	mapped := apperror.ToHTTP(apperror.MapValidationError(err))
	response.Error(c, http.StatusBadRequest, mapped.Code, mapped.Message, mapped.Details)
}

func (h *Handler) CreateLoad(c *gin.Context) {
	companyID := c.GetString("company_id")

	var req CreateLoadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	resp, err := h.service.CreateLoadWithDispatch(c.Request.Context(), companyID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetLoads(c *gin.Context) {
	companyID := c.GetString("company_id")
	status := c.Query("status")

	resp, err := h.service.GetLoads(c.Request.Context(), companyID, status)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetLoadByID(c *gin.Context) {
	companyID := c.GetString("company_id")

	resp, err := h.service.GetLoadByID(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateLoadStatus(c *gin.Context) {
	companyID := c.GetString("company_id")

	var req UpdateLoadStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	resp, err := h.service.UpdateLoadStatus(c.Request.Context(), companyID, c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetDispatchLegs(c *gin.Context) {
	companyID := c.GetString("company_id")

	resp, err := h.service.GetDispatchLegs(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetDriverAssignments(c *gin.Context) {
	companyID := c.GetString("company_id")

	resp, err := h.service.GetDriverAssignments(c.Request.Context(), companyID, c.Param("driverId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CompleteDispatchLeg(c *gin.Context) {
	companyID := c.GetString("company_id")

	resp, err := h.service.CompleteDispatchLeg(c.Request.Context(), companyID, c.Param("legId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetDispatchCalendar(c *gin.Context) {
	companyID := c.GetString("company_id")

	resp, err := h.service.GetDispatchCalendar(c.Request.Context(), companyID, c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetDriverMobileData(c *gin.Context) {
	companyID := c.GetString("company_id")

	resp, err := h.service.GetDriverMobileData(c.Request.Context(), companyID, c.Param("driverId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
