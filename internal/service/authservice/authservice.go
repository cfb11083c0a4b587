package authservice

import (
	"context"
	"errors"
	"time"

	"github.com/dmarkov/coindrop/internal/domain"
	"github.com/dmarkov/coindrop/internal/otp"
	"github.com/dmarkov/coindrop/pkg/auth"
	"go.uber.org/zap"
)

type UserRepo interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	MarkVerified(ctx context.Context, email string) error
}

type OTPRepo interface {
	Set(ctx context.Context, code *domain.OTPCode) error
	Get(ctx context.Context, email string) (*domain.OTPCode, error)
	Delete(ctx context.Context, email string) error
}

type Notifier interface {
	SendOTP(ctx context.Context, email, code string) error
}

type Service struct {
	userRepo    UserRepo
	otpRepo     OTPRepo
	notifier    Notifier
	hashService auth.HashServiceInterface
	jwtService  auth.JWTServiceInterface
	otpTTL      time.Duration
}

func New(userRepo UserRepo, otpRepo OTPRepo, notifier Notifier, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface, otpTTL time.Duration) *Service {
	return &Service{
		userRepo:    userRepo,
		otpRepo:     otpRepo,
		notifier:    notifier,
		hashService: hashService,
		jwtService:  jwtService,
		otpTTL:      otpTTL,
	}
}

var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidRole        = errors.New("role must be DONOR or DONEE")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotVerified        = errors.New("email is not verified")
	ErrInvalidOTP         = errors.New("invalid verification code")
	ErrExpiredOTP         = errors.New("verification code has expired")
)

// Register creates an unverified account and sends a one-time code to
// the given address. Mail delivery is best-effort and never fails the
// registration itself.
func (s *Service) Register(ctx context.Context, username, email, password, role string) (*domain.User, error) {
	if role != domain.RoleDonor && role != domain.RoleDonee {
		return nil, ErrInvalidRole
	}
	existingUser, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("user already exists, username: ", zap.String("username", username))
		return nil, ErrUsernameTaken
	}
	existingUser, err = s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		zap.L().Error("can't find user: ", zap.Error(err))
		return nil, err
	}
	if existingUser != nil {
		zap.L().Info("email already registered", zap.String("email", email))
		return nil, ErrEmailTaken
	}

	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash password: ", zap.Error(err))
		return nil, err
	}
	user := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         role,
		Verified:     false,
	}
	newUser, err := s.userRepo.Create(ctx, user)
	if err != nil {
		zap.L().Error("can't create user: ", zap.Error(err))
		return nil, err
	}

	if err := s.sendVerificationCode(ctx, email); err != nil {
		zap.L().Error("can't send verification code: ", zap.Error(err))
	}

	zap.L().Info("user successfully registered", zap.String("username", username))
	return newUser, nil
}

func (s *Service) sendVerificationCode(ctx context.Context, email string) error {
	code, err := otp.GenerateCode()
	if err != nil {
		return err
	}
	err = s.otpRepo.Set(ctx, &domain.OTPCode{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(s.otpTTL),
	})
	if err != nil {
		return err
	}
	return s.notifier.SendOTP(ctx, email, code)
}

// Verify checks the one-time code and marks the account verified. Used
// codes are deleted so they cannot be replayed.
func (s *Service) Verify(ctx context.Context, email, code string) error {
	stored, err := s.otpRepo.Get(ctx, email)
	if err != nil {
		zap.L().Error("can't get otp code: ", zap.Error(err))
		return err
	}
	if stored == nil || stored.Code != code {
		return ErrInvalidOTP
	}
	if time.Now().After(stored.ExpiresAt) {
		return ErrExpiredOTP
	}

	if err := s.userRepo.MarkVerified(ctx, email); err != nil {
		zap.L().Error("can't mark user verified: ", zap.Error(err))
		return err
	}
	if err := s.otpRepo.Delete(ctx, email); err != nil {
		zap.L().Error("can't delete otp code: ", zap.Error(err))
		return err
	}

	zap.L().Info("email verified", zap.String("email", email))
	return nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil || user == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(user.PasswordHash, password); !ok {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, ErrInvalidCredentials
	}
	if !user.Verified {
		zap.L().Info("login attempt on unverified account", zap.String("email", email))
		return nil, ErrNotVerified
	}
	zap.L().Info("user successfully authenticated", zap.String("email", email))
	return user, nil
}

func (s *Service) GenerateToken(userID int, role string) (string, error) {
	expirationTime := time.Now().Add(15 * time.Minute)

	token, err := s.jwtService.GenerateJWT(userID, role, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
