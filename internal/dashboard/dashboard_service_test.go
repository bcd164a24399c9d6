package dashboard_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"optitrack/internal/dashboard"
	dashboardMock "optitrack/internal/dashboard/mock"
	"optitrack/internal/employee"
	employeeerrors "optitrack/internal/employee/errors"
	"optitrack/internal/punch"
	"optitrack/internal/report"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC)

type dashboardDeps struct {
	employees *dashboardMock.MockEmployeeDirectory
	punches   *dashboardMock.MockPunchReader
	overtime  *dashboardMock.MockOvertimeCounter
	hours     *dashboardMock.MockHoursReporter
	redis     redismock.ClientMock
	service   dashboard.Service
}

func setupDashboardTest(t *testing.T) *dashboardDeps {
	ctrl := gomock.NewController(t)
	rdb, redisMock := redismock.NewClientMock()

	deps := &dashboardDeps{
		employees: dashboardMock.NewMockEmployeeDirectory(ctrl),
		punches:   dashboardMock.NewMockPunchReader(ctrl),
		overtime:  dashboardMock.NewMockOvertimeCounter(ctrl),
		hours:     dashboardMock.NewMockHoursReporter(ctrl),
		redis:     redisMock,
	}
	deps.hours.EXPECT().Location().Return(time.UTC).AnyTimes()
	deps.service = dashboard.NewService(deps.employees, deps.punches, deps.overtime, deps.hours, rdb)
	dashboard.SetClock(deps.service, func() time.Time { return now })
	return deps
}

func punchAt(empID uuid.UUID, typ string, ts time.Time) punch.Punch {
	return punch.Punch{ID: uuid.New(), EmployeeID: empID, PunchType: typ, Timestamp: ts}
}

func TestDashboardService_AdminStats(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit", func(t *testing.T) {
		deps := setupDashboardTest(t)
		cached, _ := json.Marshal(dashboard.AdminStats{TotalEmployees: 7, TotalHoursToday: "3.00"})
		deps.redis.ExpectGet("dashboard:admin:stats").SetVal(string(cached))

		stats, err := deps.service.AdminStats(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), stats.TotalEmployees)
		assert.NoError(t, deps.redis.ExpectationsWereMet())
	})

	t.Run("cache miss computes and stores", func(t *testing.T) {
		deps := setupDashboardTest(t)
		a, b := uuid.New(), uuid.New()
		day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

		deps.redis.ExpectGet("dashboard:admin:stats").RedisNil()
		deps.employees.EXPECT().Count(gomock.Any()).Return(int64(2), nil)
		deps.overtime.EXPECT().CountAllPending(gomock.Any()).Return(int64(3), nil)
		deps.punches.EXPECT().CountClockedIn(gomock.Any()).Return(int64(1), nil)
		deps.punches.EXPECT().ListBetween(gomock.Any(), day, day.Add(24*time.Hour-time.Nanosecond)).Return([]punch.Punch{
			punchAt(a, punch.TypeIn, day.Add(8*time.Hour)),
			punchAt(a, punch.TypeOut, day.Add(12*time.Hour)),
			punchAt(b, punch.TypeIn, day.Add(9*time.Hour)),
			punchAt(b, punch.TypeOut, day.Add(10*time.Hour+30*time.Minute)),
		}, nil)

		want := dashboard.AdminStats{
			TotalEmployees:          2,
			PendingOvertimeRequests: 3,
			EmployeesClockedIn:      1,
			TotalHoursToday:         "5.50",
		}
		data, _ := json.Marshal(want)
		deps.redis.ExpectSet("dashboard:admin:stats", data, 30*time.Second).SetVal("OK")

		stats, err := deps.service.AdminStats(ctx)
		assert.NoError(t, err)
		assert.Equal(t, want, stats)
		assert.NoError(t, deps.redis.ExpectationsWereMet())
	})

	t.Run("shared computation outlives a cancelled caller", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		employees := dashboardMock.NewMockEmployeeDirectory(ctrl)
		punches := dashboardMock.NewMockPunchReader(ctrl)
		overtime := dashboardMock.NewMockOvertimeCounter(ctrl)
		hours := dashboardMock.NewMockHoursReporter(ctrl)
		hours.EXPECT().Location().Return(time.UTC).AnyTimes()
		svc := dashboard.NewService(employees, punches, overtime, hours, nil)
		dashboard.SetClock(svc, func() time.Time { return now })

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		live := func(c context.Context) { assert.NoError(t, c.Err()) }
		employees.EXPECT().Count(gomock.Any()).DoAndReturn(func(c context.Context) (int64, error) {
			live(c)
			return 4, nil
		})
		overtime.EXPECT().CountAllPending(gomock.Any()).DoAndReturn(func(c context.Context) (int64, error) {
			live(c)
			return 0, nil
		})
		punches.EXPECT().CountClockedIn(gomock.Any()).DoAndReturn(func(c context.Context) (int64, error) {
			live(c)
			return 0, nil
		})
		punches.EXPECT().ListBetween(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(c context.Context, _, _ time.Time) ([]punch.Punch, error) {
				live(c)
				return nil, nil
			})

		stats, err := svc.AdminStats(cancelled)
		assert.NoError(t, err)
		assert.Equal(t, int64(4), stats.TotalEmployees)
	})

	t.Run("query failure", func(t *testing.T) {
		deps := setupDashboardTest(t)
		deps.redis.ExpectGet("dashboard:admin:stats").RedisNil()
		deps.employees.EXPECT().Count(gomock.Any()).Return(int64(0), errors.New("db down"))
		deps.overtime.EXPECT().CountAllPending(gomock.Any()).Return(int64(0), nil).AnyTimes()
		deps.punches.EXPECT().CountClockedIn(gomock.Any()).Return(int64(0), nil).AnyTimes()
		deps.punches.EXPECT().ListBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

		_, err := deps.service.AdminStats(ctx)
		assert.Error(t, err)
	})
}

func TestDashboardService_EmployeeStats(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New()
	id := empID.String()

	expectCommon := func(deps *dashboardDeps) {
		deps.employees.EXPECT().GetByID(ctx, id).Return(employee.EmployeeResponse{ID: id, FullName: "Jane Doe", Department: "Ops"}, nil)
		deps.hours.EXPECT().TodayHours(ctx, id).Return(report.HoursResponse{Hours: 2.5}, nil)
		deps.hours.EXPECT().WeeklyHours(ctx, id).Return(report.HoursResponse{Hours: 12}, nil)
		deps.overtime.EXPECT().CountPendingByEmployee(ctx, id).Return(int64(1), nil)
	}

	tests := []struct {
		name   string
		recent []punch.Punch
		want   string
	}{
		{"no punches", nil, dashboard.StatusNotClockedIn},
		{"in today", []punch.Punch{punchAt(empID, punch.TypeIn, now.Add(-time.Hour))}, dashboard.StatusClockedIn},
		{"out today", []punch.Punch{punchAt(empID, punch.TypeOut, now.Add(-time.Hour))}, dashboard.StatusClockedOut},
		{"in yesterday", []punch.Punch{punchAt(empID, punch.TypeIn, now.Add(-24*time.Hour))}, dashboard.StatusNotClockedIn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := setupDashboardTest(t)
			expectCommon(deps)
			deps.punches.EXPECT().ListRecentByEmployee(ctx, id, 5).Return(tt.recent, nil)

			stats, err := deps.service.EmployeeStats(ctx, id)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, stats.CurrentStatus)
			assert.Equal(t, "2.50", stats.TodayHours)
			assert.Equal(t, "12.00", stats.WeeklyHours)
			assert.Equal(t, int64(1), stats.PendingOvertimeRequests)
			assert.Len(t, stats.RecentPunches, len(tt.recent))
			if len(tt.recent) == 0 {
				assert.Nil(t, stats.LastPunchTime)
			}
		})
	}

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupDashboardTest(t)
		deps.employees.EXPECT().GetByID(ctx, id).Return(employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound)

		_, err := deps.service.EmployeeStats(ctx, id)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestDashboardService_RecentActivity(t *testing.T) {
	ctx := context.Background()
	deps := setupDashboardTest(t)
	a := uuid.New()

	deps.punches.EXPECT().ListAll(ctx, 10).Return([]punch.Punch{punchAt(a, punch.TypeOut, now), punchAt(a, punch.TypeIn, now.Add(-time.Hour))}, nil)
	deps.employees.EXPECT().GetNames(ctx, []string{a.String(), a.String()}).Return(map[string]string{a.String(): "Jane Doe"}, nil)

	activity, err := deps.service.RecentActivity(ctx, 0)
	assert.NoError(t, err)
	assert.Len(t, activity, 2)
	assert.Equal(t, "Jane Doe", activity[0].EmployeeName)
	assert.Equal(t, punch.TypeOut, activity[0].PunchType)
}
