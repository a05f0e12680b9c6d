package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "rossimethod/internal/delivery/context"
	"rossimethod/internal/domain/entity"
	domainerrors "rossimethod/internal/domain/errors"
	"rossimethod/internal/domain/repository"
	"rossimethod/internal/domain/service"
	"rossimethod/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minPasswordLength = 8

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	purchaseRepo repository.PurchaseRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	PurchaseRepo repository.PurchaseRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		purchaseRepo: params.PurchaseRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account and signs the user in.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("a valid email is required")
	}
	if len(input.Password) < minPasswordLength {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("password is too short")
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	user := &entity.User{
		Email:        email,
		FullName:     strings.TrimSpace(input.FullName),
		Phone:        strings.TrimSpace(input.Phone),
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Warn("Failed to create user", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	return srv.issueTokens(ctx, user)
}

// Login verifies credentials and issues a token pair.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("no account for email")
		}

		return nil, err
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch during login", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	return srv.issueTokens(ctx, user)
}

// GetMyArea loads the signed-in user's profile together with their purchases.
func (srv *userService) GetMyArea(ctx context.Context, userID uuid.UUID) (*usecase.MyAreaOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("account no longer exists")
		}

		return nil, err
	}

	purchases, err := srv.purchaseRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load purchase history")
	}

	return &usecase.MyAreaOutput{
		User:      user,
		Purchases: purchases,
	}, nil
}

func (srv *userService) issueTokens(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate tokens", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, domainerrors.ErrInternalError.WrapMessage("failed to generate session tokens")
	}

	srv.log(ctx).Debug("Session issued", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}
