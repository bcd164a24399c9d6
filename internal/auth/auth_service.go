package auth

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	autherrors "optitrack/internal/auth/errors"
	"optitrack/internal/domain"
	"optitrack/internal/employee"
	employeeerrors "optitrack/internal/employee/errors"
	"optitrack/internal/notification"
	"optitrack/internal/shared/apperror"
	"optitrack/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	DefaultResetTokenTTL = 24 * time.Hour
	MinPasswordLength    = 8
)

// EmployeeDirectory is the part of the employee module auth depends on.
type EmployeeDirectory interface {
	GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type Options struct {
	FrontendURL   string
	ResetTokenTTL time.Duration
	Now           func() time.Time
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (LoginResponse, error)
	ResolvePrincipal(ctx context.Context, token string) (domain.Principal, error)
	GetMe(ctx context.Context, principal domain.Principal) (MeResponse, error)
	Provision(ctx context.Context, req ProvisionRequest) (AuthResponse, error)
	InitiatePasswordSetup(ctx context.Context, email string) error
	CompletePasswordSetup(ctx context.Context, token, newPassword string) error
	EnsureAdmin(ctx context.Context, email, password string) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	tokens    *TokenManager
	employees EmployeeDirectory
	sender    notification.Sender
	opts      Options
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	tokens *TokenManager,
	employees EmployeeDirectory,
	sender notification.Sender,
	opts Options,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if opts.ResetTokenTTL <= 0 {
		opts.ResetTokenTTL = DefaultResetTokenTTL
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &service{
		db:        db,
		repo:      repo,
		tokens:    tokens,
		employees: employees,
		sender:    sender,
		opts:      opts,
		logger:    l,
	}
}

// Login answers unknown email and wrong password with the same error.
func (s *service) Login(ctx context.Context, email, password string) (LoginResponse, error) {
	user, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("login lookup failed", zap.Error(err))
		}
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user.Email, user.Role)
	if err != nil {
		s.logger.Error("issue token failed", zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success", zap.String("email", user.Email), zap.String("role", user.Role))
	return LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
		User:      mapToResponse(*user),
	}, nil
}

// ResolvePrincipal validates token and reloads the credential it names.
func (s *service) ResolvePrincipal(ctx context.Context, token string) (domain.Principal, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return domain.Principal{}, err
	}

	user, err := s.repo.GetByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Principal{}, autherrors.ErrUserNotFound
		}
		return domain.Principal{}, err
	}

	return domain.Principal{
		UserID:     user.ID.String(),
		Email:      user.Email,
		Role:       user.Role,
		EmployeeID: user.EmployeeIDString(),
	}, nil
}

func (s *service) GetMe(ctx context.Context, p domain.Principal) (MeResponse, error) {
	resp := MeResponse{AuthResponse: AuthResponse{
		ID:         p.UserID,
		EmployeeID: p.EmployeeID,
		Email:      p.Email,
		Role:       p.Role,
	}}
	if p.EmployeeID == "" {
		return resp, nil
	}

	profile, err := s.employees.GetByID(ctx, p.EmployeeID)
	if err != nil {
		if errors.Is(err, employeeerrors.ErrEmployeeNotFound) {
			return resp, nil
		}
		return MeResponse{}, err
	}
	resp.Employee = &profile
	return resp, nil
}

// Provision creates a credential with an unusable password and mails a setup link.
func (s *service) Provision(ctx context.Context, req ProvisionRequest) (AuthResponse, error) {
	role := strings.ToUpper(strings.TrimSpace(req.Role))
	if role != domain.RoleAdmin && role != domain.RoleEmployee {
		return AuthResponse{}, autherrors.ErrInvalidRole
	}

	user := &User{
		ID:    uuid.New(),
		Email: strings.TrimSpace(req.Email),
		Role:  role,
	}

	if req.EmployeeID != "" {
		eID, err := uuid.Parse(req.EmployeeID)
		if err != nil {
			return AuthResponse{}, employeeerrors.ErrInvalidEmployeeID
		}
		ok, err := s.employees.Exists(ctx, req.EmployeeID)
		if err != nil {
			return AuthResponse{}, err
		}
		if !ok {
			return AuthResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		user.EmployeeID = &eID
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}
	user.Password = string(hash)

	if err := s.repo.Create(ctx, user); err != nil {
		return AuthResponse{}, mapRepositoryError(err)
	}
	s.logger.Info("credential provisioned",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("email", user.Email),
		zap.String("role", role),
	)

	if err := s.InitiatePasswordSetup(ctx, user.Email); err != nil {
		return AuthResponse{}, err
	}
	return mapToResponse(*user), nil
}

func (s *service) InitiatePasswordSetup(ctx context.Context, email string) error {
	user, err := s.repo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("password setup requested for unknown email", zap.String("email", email))
			return autherrors.ErrUserNotFound
		}
		return err
	}

	token := uuid.NewString()
	expiry := s.opts.Now().Add(s.opts.ResetTokenTTL).UTC()
	if err := s.repo.SetResetToken(ctx, user.ID, &token, &expiry); err != nil {
		s.logger.Error("store reset token failed", zap.String("email", user.Email), zap.Error(err))
		return err
	}

	link := notification.PasswordSetupLink(s.opts.FrontendURL, token)
	if s.sender != nil {
		if err := s.sender.Send(ctx, user.Email, notification.PasswordSetupSubject, notification.PasswordSetupBody(user.Email, link)); err != nil {
			s.logger.Warn("password setup email failed", zap.String("email", user.Email), zap.Error(err))
		}
	}

	s.logger.Info("password setup initiated", zap.String("email", user.Email))
	return nil
}

// CompletePasswordSetup consumes a setup token. An expired token is cleared before the error is returned.
func (s *service) CompletePasswordSetup(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < MinPasswordLength {
		return autherrors.ErrPasswordTooShort
	}
	if strings.TrimSpace(token) == "" {
		return autherrors.ErrInvalidResetToken
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	user, err := qtx.FindByResetTokenForUpdate(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return autherrors.ErrInvalidResetToken
		}
		return err
	}

	if user.ResetTokenExpiry == nil || user.ResetTokenExpiry.Before(s.opts.Now()) {
		if err := qtx.SetResetToken(ctx, user.ID, nil, nil); err != nil {
			return err
		}
		if err := tx.Commit(); err != nil {
			return err
		}
		s.logger.Info("expired password setup token cleared", zap.String("email", user.Email))
		return autherrors.ErrResetTokenExpired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := qtx.UpdatePasswordAndClearToken(ctx, user.ID, string(hash)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("password set", zap.String("email", user.Email))
	return nil
}

// EnsureAdmin creates the bootstrap admin when configured and absent.
func (s *service) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.Create(ctx, &User{
		ID:       uuid.New(),
		Email:    email,
		Password: string(hash),
		Role:     domain.RoleAdmin,
	}); err != nil {
		return mapRepositoryError(err)
	}

	s.logger.Info("bootstrap admin created", zap.String("email", email))
	return nil
}

func mapRepositoryError(err error) error {
	if apperror.IsUniqueViolation(err) {
		return autherrors.ErrEmailAlreadyRegistered.WithCause(err)
	}
	return err
}

func mapToResponse(u User) AuthResponse {
	return AuthResponse{
		ID:         u.ID.String(),
		EmployeeID: u.EmployeeIDString(),
		Email:      u.Email,
		Role:       u.Role,
	}
}
