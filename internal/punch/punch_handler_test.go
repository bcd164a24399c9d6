package punch_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"optitrack/internal/domain"
	"optitrack/internal/punch"
	puncherrors "optitrack/internal/punch/errors"
	punchMock "optitrack/internal/punch/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type apiEnvelope struct {
	Ok   bool            `json:"ok"`
	Data json.RawMessage `json:"data"`
	Meta *struct {
		Total int64 `json:"total"`
		Limit int   `json:"limit"`
	} `json:"meta"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func routerAs(p domain.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("principal", p)
		c.Next()
	})
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestPunchHandler_ClockIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := punchMock.NewMockService(ctrl)
	h := punch.NewHandler(svc)

	t.Run("uses employee from principal", func(t *testing.T) {
		r := routerAs(domain.Principal{Email: "john@optitrack.com", Role: domain.RoleEmployee, EmployeeID: "e1"})
		r.POST("/punches/in", h.ClockIn)

		svc.EXPECT().RecordPunch(gomock.Any(), "e1", punch.TypeIn).
			Return(punch.PunchResponse{ID: "p1", EmployeeID: "e1", PunchType: punch.TypeIn}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/punches/in", nil))
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, decode(t, w).Ok)
	})

	t.Run("conflict", func(t *testing.T) {
		r := routerAs(domain.Principal{Email: "john@optitrack.com", Role: domain.RoleEmployee, EmployeeID: "e1"})
		r.POST("/punches/in", h.ClockIn)

		svc.EXPECT().RecordPunch(gomock.Any(), "e1", punch.TypeIn).Return(punch.PunchResponse{}, puncherrors.ErrAlreadyClockedIn)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/punches/in", nil))
		assert.Equal(t, http.StatusConflict, w.Code)
		env := decode(t, w)
		assert.Equal(t, "CONFLICT", env.Error.Code)
		assert.Equal(t, "employee is already clocked IN", env.Error.Message)
	})

	t.Run("account without employee", func(t *testing.T) {
		r := routerAs(domain.Principal{Email: "admin@optitrack.com", Role: domain.RoleAdmin})
		r.POST("/punches/out", h.ClockOut)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/punches/out", nil))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestPunchHandler_ListAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := punchMock.NewMockService(ctrl)
	r := routerAs(domain.Principal{Email: "admin@optitrack.com", Role: domain.RoleAdmin})
	r.GET("/admin/punches/all", punch.NewHandler(svc).ListAll)

	t.Run("explicit limit", func(t *testing.T) {
		svc.EXPECT().ListAll(gomock.Any(), 5).Return([]punch.PunchResponse{{ID: "p1"}}, nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/punches/all?limit=5", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 5, decode(t, w).Meta.Limit)
	})

	t.Run("limit out of range", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/punches/all?limit=5000", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
