package report

import (
	"net/http"
	"time"

	reporterrors "optitrack/internal/report/errors"
	"optitrack/internal/shared/apperror"
	"optitrack/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const localTimestampLayout = "2006-01-02T15:04:05"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("report request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
}

// parseTimestamp accepts RFC3339, or a zone-less local timestamp read in loc.
func parseTimestamp(v string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(localTimestampLayout, v, loc)
	if err != nil {
		return time.Time{}, reporterrors.ErrInvalidTimestamp
	}
	return t, nil
}

func (h *Handler) HoursBetween(c *gin.Context) {
	var q HoursQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	loc := h.service.Location()
	start, err := parseTimestamp(q.Start, loc)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	end, err := parseTimestamp(q.End, loc)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.HoursBetween(c.Request.Context(), c.Param("id"), start, end)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) TodayHours(c *gin.Context) {
	var q EmployeeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.TodayHours(c.Request.Context(), q.EmployeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) WeeklyHours(c *gin.Context) {
	var q EmployeeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.WeeklyHours(c.Request.Context(), q.EmployeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
