package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/hirewire/jobboard/app/dto"
	appErrors "github.com/hirewire/jobboard/app/errors"
	"github.com/hirewire/jobboard/app/logger"
	"github.com/hirewire/jobboard/app/metrics"
	"github.com/hirewire/jobboard/app/models"
	"github.com/hirewire/jobboard/app/store"
)

// AuthService handles signup, login and bearer-token authentication
type AuthService struct {
	store  store.Storage
	hasher PasswordHasher
	tokens *TokenManager
}

// NewAuthService creates a new AuthService
func NewAuthService(store store.Storage, hasher PasswordHasher, tokens *TokenManager) *AuthService {
	return &AuthService{
		store:  store,
		hasher: hasher,
		tokens: tokens,
	}
}

// Signup handles user registration
// Note: Input validation (format, strength, etc.) is already done in the handler layer.
// Uniqueness is NOT pre-checked here: the store's unique index decides
// atomically at insert time, so concurrent signups for the same email cannot
// both succeed.
func (s *AuthService) Signup(ctx context.Context, req dto.SignupRequest) (*dto.SignupResponse, *appErrors.AppError) {
	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, appErrors.NewInternal("error hashing password")
	}

	user := &models.User{
		Name:             req.Name,
		Email:            req.Email,
		PasswordHash:     passwordHash,
		PhoneNumber:      req.PhoneNumber,
		Gender:           req.Gender,
		DateOfBirth:      req.DateOfBirth,
		MembershipStatus: req.MembershipStatus,
	}
	if err := s.store.Users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return nil, appErrors.NewDuplicateEmail()
		}
		log := getLoggerFromContext(ctx)
		log.Error().Err(err).Str("email", req.Email).Msg("failed to create user")
		return nil, appErrors.NewInternal("error creating user")
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, appErrors.NewInternal("error issuing token")
	}

	metrics.RecordSignup()
	return &dto.SignupResponse{
		User:  toUserResponse(user),
		Token: token,
	}, nil
}

// Login handles user login.
// An unknown email and a wrong password both return the same generic
// credential error so the response does not reveal which one failed.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, *appErrors.AppError) {
	user, err := s.store.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			metrics.RecordLoginFailure()
			return nil, appErrors.NewInvalidCredentials()
		}
		return nil, appErrors.NewInternal("error getting user by email")
	}

	if !s.hasher.Verify(req.Password, user.PasswordHash) {
		metrics.RecordLoginFailure()
		return nil, appErrors.NewInvalidCredentials()
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return nil, appErrors.NewInternal("error issuing token")
	}

	metrics.RecordLogin()
	return &dto.LoginResponse{Token: token}, nil
}

// Authenticate resolves an Authorization header value into the identity it
// asserts. It is a pure function of the header plus one store lookup, so it
// is testable without an HTTP stack. Pipeline: header shape, signature and
// expiry, then subject existence. A token whose subject no longer exists is
// rejected, never treated as anonymous.
func (s *AuthService) Authenticate(ctx context.Context, authHeader string) (*models.User, *appErrors.AppError) {
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		metrics.RecordAuthRejection()
		return nil, appErrors.NewUnauthorized("missing token")
	}
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

	userID, err := s.tokens.Verify(tokenStr)
	if err != nil {
		metrics.RecordAuthRejection()
		return nil, appErrors.NewUnauthorized("invalid or expired token")
	}

	user, err := s.store.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			metrics.RecordAuthRejection()
			return nil, appErrors.NewUnauthorized("invalid or expired token")
		}
		return nil, appErrors.NewInternal("error resolving token subject")
	}

	return user, nil
}

func toUserResponse(user *models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:               user.ID,
		Name:             user.Name,
		Email:            user.Email,
		PhoneNumber:      user.PhoneNumber,
		Gender:           user.Gender,
		DateOfBirth:      user.DateOfBirth,
		MembershipStatus: user.MembershipStatus,
		CreatedAt:        user.CreatedAt.Format(time.RFC3339),
	}
}

// getLoggerFromContext retrieves logger from context or returns global logger
func getLoggerFromContext(ctx context.Context) zerolog.Logger {
	if log := zerolog.Ctx(ctx); log.GetLevel() != zerolog.Disabled {
		return *log
	}
	return logger.Logger
}
