package overtime

import (
	"net/http"

	"optitrack/internal/middleware"
	overtimeerrors "optitrack/internal/overtime/errors"
	"optitrack/internal/shared/apperror"
	"optitrack/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("overtime.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("overtime.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("overtime request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
}

func (h *Handler) callerEmployeeID(c *gin.Context) (string, bool) {
	employeeID := middleware.GetPrincipal(c).EmployeeID
	if employeeID == "" {
		h.writeServiceError(c, overtimeerrors.ErrNoLinkedEmployee)
		return "", false
	}
	return employeeID, true
}

func (h *Handler) Submit(c *gin.Context) {
	employeeID, ok := h.callerEmployeeID(c)
	if !ok {
		return
	}

	var req SubmitOvertimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Submit(c.Request.Context(), employeeID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ListPending(c *gin.Context) {
	employeeID, ok := h.callerEmployeeID(c)
	if !ok {
		return
	}
	h.writeList(c, func() ([]OvertimeResponse, error) {
		return h.service.ListPending(c.Request.Context(), employeeID)
	})
}

func (h *Handler) ListApproved(c *gin.Context) {
	employeeID, ok := h.callerEmployeeID(c)
	if !ok {
		return
	}
	h.writeList(c, func() ([]OvertimeResponse, error) {
		return h.service.ListApproved(c.Request.Context(), employeeID)
	})
}

func (h *Handler) ListAllPending(c *gin.Context) {
	h.writeList(c, func() ([]OvertimeResponse, error) {
		return h.service.ListAllPending(c.Request.Context())
	})
}

func (h *Handler) writeList(c *gin.Context, load func() ([]OvertimeResponse, error)) {
	resp, err := load()
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	meta := response.NewListMeta(int64(len(resp)), 0)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) Approve(c *gin.Context) {
	resp, err := h.service.Approve(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Reject(c *gin.Context) {
	resp, err := h.service.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
