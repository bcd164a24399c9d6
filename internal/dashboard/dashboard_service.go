package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"optitrack/internal/employee"
	"optitrack/internal/punch"
	"optitrack/internal/report"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	StatusClockedIn    = "Clocked In"
	StatusClockedOut   = "Clocked Out"
	StatusNotClockedIn = "Not Clocked In"

	DefaultActivityLimit = 10
	recentPunchLimit     = 5
	adminStatsCacheKey   = "dashboard:admin:stats"
	adminStatsCacheTTL   = 30 * time.Second
)

type EmployeeDirectory interface {
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error)
	GetNames(ctx context.Context, ids []string) (map[string]string, error)
}

type PunchReader interface {
	ListBetween(ctx context.Context, start, end time.Time) ([]punch.Punch, error)
	ListRecentByEmployee(ctx context.Context, employeeID string, limit int) ([]punch.Punch, error)
	ListAll(ctx context.Context, limit int) ([]punch.Punch, error)
	CountClockedIn(ctx context.Context) (int64, error)
}

type OvertimeCounter interface {
	CountAllPending(ctx context.Context) (int64, error)
	CountPendingByEmployee(ctx context.Context, employeeID string) (int64, error)
}

type HoursReporter interface {
	TodayHours(ctx context.Context, employeeID string) (report.HoursResponse, error)
	WeeklyHours(ctx context.Context, employeeID string) (report.HoursResponse, error)
	Location() *time.Location
}

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	AdminStats(ctx context.Context) (AdminStats, error)
	EmployeeStats(ctx context.Context, employeeID string) (EmployeeStats, error)
	RecentActivity(ctx context.Context, limit int) ([]Activity, error)
}

type service struct {
	employees EmployeeDirectory
	punches   PunchReader
	overtime  OvertimeCounter
	hours     HoursReporter
	rdb       *redis.Client
	sf        *singleflight.Group
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	employees EmployeeDirectory,
	punches PunchReader,
	overtime OvertimeCounter,
	hours HoursReporter,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{
		employees: employees,
		punches:   punches,
		overtime:  overtime,
		hours:     hours,
		rdb:       rdb,
		sf:        &singleflight.Group{},
		now:       time.Now,
		logger:    l,
	}
}

// AdminStats is cached briefly in redis; concurrent misses share one computation.
func (s *service) AdminStats(ctx context.Context) (AdminStats, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, adminStatsCacheKey).Result(); err == nil {
			var stats AdminStats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return stats, nil
			}
		}
	}

	v, err, _ := s.sf.Do(adminStatsCacheKey, func() (interface{}, error) {
		// Shared by every waiter, so it must not end with the first caller's request.
		ctx := context.WithoutCancel(ctx)
		stats, err := s.computeAdminStats(ctx)
		if err != nil {
			return nil, err
		}
		if s.rdb != nil {
			if data, err := json.Marshal(stats); err == nil {
				if err := s.rdb.Set(ctx, adminStatsCacheKey, data, adminStatsCacheTTL).Err(); err != nil {
					s.logger.Warn("cache admin stats failed", zap.Error(err))
				}
			}
		}
		return stats, nil
	})
	if err != nil {
		return AdminStats{}, err
	}
	return v.(AdminStats), nil
}

func (s *service) computeAdminStats(ctx context.Context) (AdminStats, error) {
	var stats AdminStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.employees.Count(gctx)
		stats.TotalEmployees = n
		return err
	})
	g.Go(func() error {
		n, err := s.overtime.CountAllPending(gctx)
		stats.PendingOvertimeRequests = n
		return err
	})
	g.Go(func() error {
		n, err := s.punches.CountClockedIn(gctx)
		stats.EmployeesClockedIn = n
		return err
	})
	g.Go(func() error {
		total, err := s.totalHoursToday(gctx)
		stats.TotalHoursToday = fmt.Sprintf("%.2f", total)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("compute admin stats failed", zap.Error(err))
		return AdminStats{}, err
	}
	return stats, nil
}

// totalHoursToday sums each employee's hours over today's window.
func (s *service) totalHoursToday(ctx context.Context) (float64, error) {
	start, end := report.TodayWindow(s.now(), s.hours.Location())
	rows, err := s.punches.ListBetween(ctx, start, end)
	if err != nil {
		return 0, err
	}

	byEmployee := make(map[string][]punch.Punch)
	for _, p := range rows {
		id := p.EmployeeID.String()
		byEmployee[id] = append(byEmployee[id], p)
	}

	var total float64
	for _, ps := range byEmployee {
		total += report.HoursWorked(ps, start, end)
	}
	return total, nil
}

func (s *service) EmployeeStats(ctx context.Context, employeeID string) (EmployeeStats, error) {
	profile, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		return EmployeeStats{}, err
	}

	stats := EmployeeStats{
		EmployeeID:       profile.ID,
		EmployeeFullName: profile.FullName,
		Department:       profile.Department,
		CurrentStatus:    StatusNotClockedIn,
		RecentPunches:    []RecentPunch{},
	}

	today, err := s.hours.TodayHours(ctx, employeeID)
	if err != nil {
		return EmployeeStats{}, err
	}
	week, err := s.hours.WeeklyHours(ctx, employeeID)
	if err != nil {
		return EmployeeStats{}, err
	}
	stats.TodayHours = fmt.Sprintf("%.2f", today.Hours)
	stats.WeeklyHours = fmt.Sprintf("%.2f", week.Hours)

	recent, err := s.punches.ListRecentByEmployee(ctx, employeeID, recentPunchLimit)
	if err != nil {
		return EmployeeStats{}, err
	}
	if len(recent) > 0 {
		last := recent[0]
		ts := last.Timestamp.UTC().Format(time.RFC3339)
		stats.LastPunchTime = &ts
		stats.CurrentStatus = currentStatus(last, s.now(), s.hours.Location())
	}
	for _, p := range recent {
		stats.RecentPunches = append(stats.RecentPunches, RecentPunch{
			ID:        p.ID.String(),
			PunchType: p.PunchType,
			Timestamp: p.Timestamp.UTC().Format(time.RFC3339),
		})
	}

	pending, err := s.overtime.CountPendingByEmployee(ctx, employeeID)
	if err != nil {
		return EmployeeStats{}, err
	}
	stats.PendingOvertimeRequests = pending
	return stats, nil
}

// currentStatus only reports IN/OUT when the last punch falls on today's local date.
func currentStatus(last punch.Punch, now time.Time, loc *time.Location) string {
	start, end := report.TodayWindow(now, loc)
	if last.Timestamp.Before(start) || last.Timestamp.After(end) {
		return StatusNotClockedIn
	}
	if last.PunchType == punch.TypeIn {
		return StatusClockedIn
	}
	return StatusClockedOut
}

func (s *service) RecentActivity(ctx context.Context, limit int) ([]Activity, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	rows, err := s.punches.ListAll(ctx, limit)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(rows))
	for _, p := range rows {
		ids = append(ids, p.EmployeeID.String())
	}
	names := map[string]string{}
	if len(ids) > 0 {
		if resolved, err := s.employees.GetNames(ctx, ids); err != nil {
			s.logger.Warn("resolve activity names failed", zap.Error(err))
		} else {
			names = resolved
		}
	}

	res := make([]Activity, len(rows))
	for i, p := range rows {
		res[i] = Activity{
			ID:           p.ID.String(),
			EmployeeID:   p.EmployeeID.String(),
			EmployeeName: names[p.EmployeeID.String()],
			PunchType:    p.PunchType,
			Timestamp:    p.Timestamp.UTC().Format(time.RFC3339),
		}
	}
	return res, nil
}
