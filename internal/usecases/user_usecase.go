package usecases

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"aivault.backend/internal/domain/entities"
	domainerrors "aivault.backend/internal/domain/errors"
	"aivault.backend/internal/domain/repositories"
	"aivault.backend/pkg/crypto"
	"aivault.backend/pkg/jwt"
	"aivault.backend/pkg/utils"
)

// UserUsecase handles account registration and authentication
type UserUsecase struct {
	userRepo     repositories.UserRepository
	businessRepo repositories.BusinessRepository
	jwtService   *jwt.JWTService
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(
	userRepo repositories.UserRepository,
	businessRepo repositories.BusinessRepository,
	jwtService *jwt.JWTService,
) *UserUsecase {
	return &UserUsecase{
		userRepo:     userRepo,
		businessRepo: businessRepo,
		jwtService:   jwtService,
	}
}

// Register creates a user account together with its starter business profile
func (u *UserUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.RegisterResponse, error) {
	_, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.Conflict("Email already registered")
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	provider := entities.AuthProvider(input.AuthProvider)
	if provider == "" {
		provider = entities.AuthProviderPassword
	}

	user := &entities.User{
		Email:        input.Email,
		AuthProvider: provider,
		PasswordHash: passwordHash,
		IsActive:     true,
	}
	if input.Name != "" {
		user.Name.SetValid(input.Name)
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	// every account starts with an empty published listing
	businessName := input.Name
	if businessName == "" {
		businessName = input.Email
	}
	business := &entities.BusinessProfile{
		OwnerID:   user.ID,
		Name:      businessName,
		Published: true,
		Version:   1,
	}
	if err := u.businessRepo.Create(ctx, business); err != nil {
		return nil, err
	}

	return &entities.RegisterResponse{User: user, Business: business}, nil
}

// Login authenticates a user and returns a token pair
func (u *UserUsecase) Login(ctx context.Context, input *entities.LoginInput) (*jwt.TokenPair, *entities.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, nil, domainerrors.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if !user.IsActive {
		return nil, nil, domainerrors.ErrInvalidCredentials
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, nil, domainerrors.ErrInvalidCredentials
	}

	pair, err := u.jwtService.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, nil, err
	}

	if err := u.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		return nil, nil, err
	}

	return pair, user, nil
}

// GetByID gets a user by ID
func (u *UserUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// GetByEmail gets a user by email
func (u *UserUsecase) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	return u.userRepo.GetByEmail(ctx, email)
}

// List lists users with optional search and pagination
func (u *UserUsecase) List(ctx context.Context, search string, page, limit int) ([]*entities.User, utils.PaginationMeta, error) {
	params := utils.GetPaginationParams(page, limit)
	users, total, err := u.userRepo.List(ctx, search, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return users, utils.CalculateMeta(total, params.Page, params.Limit), nil
}
