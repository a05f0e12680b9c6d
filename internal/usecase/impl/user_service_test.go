package impl

import (
	"context"
	"testing"

	"rossimethod/internal/domain/entity"
	domainerrors "rossimethod/internal/domain/errors"
	"rossimethod/internal/domain/repository"
	mockRepo "rossimethod/internal/mocks/repository"
	mockSvc "rossimethod/internal/mocks/service"
	"rossimethod/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	purchaseRepo *mockRepo.MockPurchaseRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	purchaseRepo := mockRepo.NewMockPurchaseRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		PurchaseRepo: purchaseRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		purchaseRepo: purchaseRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Password123!").Return("hashed_password", nil)

	userID := uuid.New()
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.Email == "ana@example.com" &&
				user.FullName == "Ana Pérez" &&
				user.PasswordHash == "hashed_password"
		})).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = userID
		}).
		Return(nil)

	fx.tokenService.EXPECT().GenerateTokens(userID).Return("access", "refresh", nil)

	output, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email:    "Ana@Example.com",
		Password: "Password123!",
		FullName: "Ana Pérez",
		Phone:    "1155550000",
	})
	require.NoError(t, err)

	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "refresh", output.RefreshToken)
	assert.Equal(t, "ana@example.com", output.User.Email)
}

func TestUserService_Register_ShortPassword(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Email:    "ana@example.com",
		Password: "short",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("Password123!").Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists"))

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Email:    "ana@example.com",
		Password: "Password123!",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "ana@example.com",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed_password").Return(true)
	fx.tokenService.EXPECT().GenerateTokens(user.ID).Return("access", "refresh", nil)

	output, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "Password123!",
	})
	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Email:        "ana@example.com",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hashed_password").Return(false)

	_, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "ana@example.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "Password123!",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_GetMyArea_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()
	user := &entity.User{
		ID:               userID,
		Email:            "ana@example.com",
		PurchasedCourses: []string{"full-planche-workshop"},
	}
	purchases := []*entity.Purchase{
		{ID: uuid.New(), UserID: userID, Course: "full-planche-workshop", Status: entity.PurchaseStatusCompleted},
	}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	fx.purchaseRepo.EXPECT().FindByUser(ctx, userID).Return(purchases, nil)

	output, err := fx.service.GetMyArea(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, user, output.User)
	assert.Len(t, output.Purchases, 1)
}

func TestUserService_GetMyArea_UserGone(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	userID := uuid.New()
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetMyArea(ctx, userID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
