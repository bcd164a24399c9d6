package auth_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"optitrack/internal/auth"
	autherrors "optitrack/internal/auth/errors"
	authMock "optitrack/internal/auth/mock"
	"optitrack/internal/domain"
	"optitrack/internal/employee"
	employeeerrors "optitrack/internal/employee/errors"
	employeeMock "optitrack/internal/employee/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type sentMail struct {
	to, subject, body string
}

type recordingSender struct {
	sent []sentMail
	err  error
}

func (r *recordingSender) Send(_ context.Context, to, subject, body string) error {
	r.sent = append(r.sent, sentMail{to: to, subject: subject, body: body})
	return r.err
}

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	repo      *authMock.MockRepository
	employees *employeeMock.MockService
	sender    *recordingSender
	tokens    *auth.TokenManager
	now       time.Time
	service   auth.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	deps := &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		repo:      authMock.NewMockRepository(ctrl),
		employees: employeeMock.NewMockService(ctrl),
		sender:    &recordingSender{},
		tokens:    auth.NewTokenManager("test-secret", 0).WithClock(func() time.Time { return now }),
		now:       now,
	}
	deps.service = auth.NewService(db, deps.repo, deps.tokens, deps.employees, deps.sender, auth.Options{
		FrontendURL: "http://localhost:3000",
		Now:         func() time.Time { return now },
	})
	return deps
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(h)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		empID := uuid.New()
		user := &auth.User{ID: uuid.New(), EmployeeID: &empID, Email: "john@optitrack.com", Password: hashed(t, "password123"), Role: domain.RoleEmployee}

		deps.repo.EXPECT().GetByEmail(ctx, "john@optitrack.com").Return(user, nil)

		resp, err := deps.service.Login(ctx, "john@optitrack.com", "password123")
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, empID.String(), resp.User.EmployeeID)
		assert.Equal(t, domain.RoleEmployee, resp.User.Role)

		claims, err := deps.tokens.Parse(resp.Token)
		assert.NoError(t, err)
		assert.Equal(t, "john@optitrack.com", claims.Subject)
		assert.Equal(t, domain.RoleEmployee, claims.Role)
	})

	t.Run("unknown email", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().GetByEmail(ctx, "ghost@optitrack.com").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Login(ctx, "ghost@optitrack.com", "password123")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("wrong password returns same error", func(t *testing.T) {
		deps := setupServiceTest(t)
		user := &auth.User{ID: uuid.New(), Email: "john@optitrack.com", Password: hashed(t, "password123"), Role: domain.RoleEmployee}
		deps.repo.EXPECT().GetByEmail(ctx, "john@optitrack.com").Return(user, nil)

		_, err := deps.service.Login(ctx, "john@optitrack.com", "nope")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_ResolvePrincipal(t *testing.T) {
	ctx := context.Background()

	t.Run("role comes from stored credential", func(t *testing.T) {
		deps := setupServiceTest(t)
		token, _, err := deps.tokens.Issue("jane@optitrack.com", domain.RoleEmployee)
		assert.NoError(t, err)

		empID := uuid.New()
		user := &auth.User{ID: uuid.New(), EmployeeID: &empID, Email: "jane@optitrack.com", Role: domain.RoleAdmin}
		deps.repo.EXPECT().GetByEmail(ctx, "jane@optitrack.com").Return(user, nil)

		p, err := deps.service.ResolvePrincipal(ctx, token)
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, p.Role)
		assert.Equal(t, empID.String(), p.EmployeeID)
		assert.False(t, p.IsAnonymous())
	})

	t.Run("garbage token", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.ResolvePrincipal(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("credential removed", func(t *testing.T) {
		deps := setupServiceTest(t)
		token, _, _ := deps.tokens.Issue("gone@optitrack.com", domain.RoleEmployee)
		deps.repo.EXPECT().GetByEmail(ctx, "gone@optitrack.com").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.ResolvePrincipal(ctx, token)
		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
	})
}

func TestAuthService_GetMe(t *testing.T) {
	ctx := context.Background()

	t.Run("with employee profile", func(t *testing.T) {
		deps := setupServiceTest(t)
		p := domain.Principal{UserID: "u1", Email: "john@optitrack.com", Role: domain.RoleEmployee, EmployeeID: "e1"}
		deps.employees.EXPECT().GetByID(ctx, "e1").Return(employee.EmployeeResponse{ID: "e1", FullName: "John Doe"}, nil)

		resp, err := deps.service.GetMe(ctx, p)
		assert.NoError(t, err)
		assert.Equal(t, "john@optitrack.com", resp.Email)
		assert.Equal(t, "John Doe", resp.Employee.FullName)
	})

	t.Run("admin without employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		resp, err := deps.service.GetMe(ctx, domain.Principal{Email: "admin@optitrack.com", Role: domain.RoleAdmin})
		assert.NoError(t, err)
		assert.Nil(t, resp.Employee)
	})

	t.Run("profile deleted", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.employees.EXPECT().GetByID(ctx, "e1").Return(employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound)

		resp, err := deps.service.GetMe(ctx, domain.Principal{Email: "x@optitrack.com", EmployeeID: "e1"})
		assert.NoError(t, err)
		assert.Nil(t, resp.Employee)
	})
}

func TestAuthService_Provision(t *testing.T) {
	ctx := context.Background()
	empID := uuid.New()

	t.Run("success sends setup link", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.employees.EXPECT().Exists(ctx, empID.String()).Return(true, nil)

		var created *auth.User
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *auth.User) error {
			assert.Equal(t, domain.RoleEmployee, u.Role)
			assert.Equal(t, empID, *u.EmployeeID)
			assert.NotEmpty(t, u.Password)
			created = u
			return nil
		})
		deps.repo.EXPECT().GetByEmail(ctx, "new@optitrack.com").DoAndReturn(func(context.Context, string) (*auth.User, error) {
			return created, nil
		})
		deps.repo.EXPECT().SetResetToken(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, token *string, expiry *time.Time) error {
				assert.NotNil(t, token)
				_, err := uuid.Parse(*token)
				assert.NoError(t, err)
				assert.Equal(t, deps.now.Add(24*time.Hour), *expiry)
				return nil
			})

		resp, err := deps.service.Provision(ctx, auth.ProvisionRequest{EmployeeID: empID.String(), Email: "new@optitrack.com", Role: "employee"})
		assert.NoError(t, err)
		assert.Equal(t, "new@optitrack.com", resp.Email)
		assert.Len(t, deps.sender.sent, 1)
		assert.Contains(t, deps.sender.sent[0].body, "http://localhost:3000/set-password?token=")
	})

	t.Run("malformed employee id", func(t *testing.T) {
		deps := setupServiceTest(t)
		assert.NotPanics(t, func() {
			_, err := deps.service.Provision(ctx, auth.ProvisionRequest{EmployeeID: "not-a-uuid", Email: "x@optitrack.com", Role: "EMPLOYEE"})
			assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
		})
	})

	t.Run("invalid role", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.Provision(ctx, auth.ProvisionRequest{Email: "x@optitrack.com", Role: "MANAGER"})
		assert.ErrorIs(t, err, autherrors.ErrInvalidRole)
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.employees.EXPECT().Exists(ctx, empID.String()).Return(false, nil)

		_, err := deps.service.Provision(ctx, auth.ProvisionRequest{EmployeeID: empID.String(), Email: "x@optitrack.com", Role: domain.RoleEmployee})
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("duplicate email", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(&pgconn.PgError{Code: "23505"})

		_, err := deps.service.Provision(ctx, auth.ProvisionRequest{Email: "dup@optitrack.com", Role: domain.RoleAdmin})
		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyRegistered)
	})
}

func TestAuthService_InitiatePasswordSetup(t *testing.T) {
	ctx := context.Background()

	t.Run("mail failure is not fatal", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sender.err = errors.New("smtp down")
		deps.repo.EXPECT().GetByEmail(ctx, "john@optitrack.com").Return(&auth.User{ID: uuid.New(), Email: "john@optitrack.com"}, nil)
		deps.repo.EXPECT().SetResetToken(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		assert.NoError(t, deps.service.InitiatePasswordSetup(ctx, "john@optitrack.com"))
		assert.Len(t, deps.sender.sent, 1)
	})

	t.Run("unknown email", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().GetByEmail(ctx, "ghost@optitrack.com").Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.InitiatePasswordSetup(ctx, "ghost@optitrack.com")
		assert.ErrorIs(t, err, autherrors.ErrUserNotFound)
		assert.Empty(t, deps.sender.sent)
	})
}

func TestAuthService_CompletePasswordSetup(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		expiry := deps.now.Add(time.Hour)
		token := "tok"
		user := &auth.User{ID: uuid.New(), Email: "john@optitrack.com", ResetToken: &token, ResetTokenExpiry: &expiry}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByResetTokenForUpdate(ctx, "tok").Return(user, nil)
		deps.repo.EXPECT().UpdatePasswordAndClearToken(ctx, user.ID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, hash string) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("newpassword1")))
				return nil
			})

		assert.NoError(t, deps.service.CompletePasswordSetup(ctx, "tok", "newpassword1"))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("expired token is cleared", func(t *testing.T) {
		deps := setupServiceTest(t)
		expiry := deps.now.Add(-time.Second)
		user := &auth.User{ID: uuid.New(), Email: "john@optitrack.com", ResetTokenExpiry: &expiry}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByResetTokenForUpdate(ctx, "old").Return(user, nil)
		deps.repo.EXPECT().SetResetToken(ctx, user.ID, nil, nil).Return(nil)

		err := deps.service.CompletePasswordSetup(ctx, "old", "newpassword1")
		assert.ErrorIs(t, err, autherrors.ErrResetTokenExpired)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown token", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByResetTokenForUpdate(ctx, "missing").Return(nil, gorm.ErrRecordNotFound)

		err := deps.service.CompletePasswordSetup(ctx, "missing", "newpassword1")
		assert.ErrorIs(t, err, autherrors.ErrInvalidResetToken)
	})

	t.Run("password too short", func(t *testing.T) {
		deps := setupServiceTest(t)
		err := deps.service.CompletePasswordSetup(ctx, "tok", "short")
		assert.ErrorIs(t, err, autherrors.ErrPasswordTooShort)
	})
}

func TestAuthService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("creates when missing", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().GetByEmail(ctx, "admin@optitrack.com").Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *auth.User) error {
			assert.Equal(t, domain.RoleAdmin, u.Role)
			assert.Nil(t, u.EmployeeID)
			return nil
		})

		assert.NoError(t, deps.service.EnsureAdmin(ctx, "admin@optitrack.com", "admin12345"))
	})

	t.Run("noop when present", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().GetByEmail(ctx, "admin@optitrack.com").Return(&auth.User{Email: "admin@optitrack.com"}, nil)

		assert.NoError(t, deps.service.EnsureAdmin(ctx, "admin@optitrack.com", "admin12345"))
	})

	t.Run("noop when unconfigured", func(t *testing.T) {
		deps := setupServiceTest(t)
		assert.NoError(t, deps.service.EnsureAdmin(ctx, "", ""))
	})
}
