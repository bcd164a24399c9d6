package punch

import (
	"net/http"

	"optitrack/internal/middleware"
	puncherrors "optitrack/internal/punch/errors"
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
	l := zap.L().Named("punch.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("punch.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("punch request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
}

func (h *Handler) record(c *gin.Context, punchType string) {
	employeeID := middleware.GetPrincipal(c).EmployeeID
	if employeeID == "" {
		h.writeServiceError(c, puncherrors.ErrNoLinkedEmployee)
		return
	}

	resp, err := h.service.RecordPunch(c.Request.Context(), employeeID, punchType)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ClockIn(c *gin.Context) {
	h.record(c, TypeIn)
}

func (h *Handler) ClockOut(c *gin.Context) {
	h.record(c, TypeOut)
}

func (h *Handler) ListByEmployee(c *gin.Context) {
	resp, err := h.service.ListByEmployee(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	meta := response.NewListMeta(int64(len(resp)), 0)
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) ListAll(c *gin.Context) {
	var q ListAllQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	limit := q.Limit
	if limit == 0 {
		limit = DefaultListAllLimit
	}

	resp, err := h.service.ListAll(c.Request.Context(), limit)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	meta := response.NewListMeta(int64(len(resp)), limit)
	response.Success(c, http.StatusOK, resp, &meta)
}
