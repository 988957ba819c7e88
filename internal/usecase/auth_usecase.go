package usecase

import (
	"errors"
	"fmt"
	"io"

	"kamstim/internal/entity"
	"kamstim/internal/repo/persistent"
	"kamstim/pkg/jwt"
	"kamstim/pkg/logger"
	"kamstim/pkg/s3"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUseCase interface {
	Register(email, name, password string) (*entity.User, string, error)
	Login(email, password string) (*entity.User, string, error)
	GetUser(userID string) (*entity.User, error)
	OAuthLogin(provider, providerAccountID, email, name, avatarURL string) (*entity.User, string, error)
	UploadAvatar(userID string, fileReader io.Reader, fileKey string, contentType string) (*entity.User, error)
}

type authUseCase struct {
	userRepo   persistent.UserRepository
	jwtService *jwt.Service
	s3Client   *s3.Client
	logger     *logger.Logger
}

func NewAuthUseCase(
	userRepo persistent.UserRepository,
	jwtService *jwt.Service,
	s3Client *s3.Client,
	logger *logger.Logger,
) AuthUseCase {
	return &authUseCase{
		userRepo:   userRepo,
		jwtService: jwtService,
		s3Client:   s3Client,
		logger:     logger,
	}
}

func (uc *authUseCase) Register(email, name, password string) (*entity.User, string, error) {
	if _, err := uc.userRepo.GetByEmail(email); err == nil {
		return nil, "", ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		uc.logger.Error("Failed to hash password: %v", err)
		return nil, "", fmt.Errorf("failed to process registration")
	}

	user := &entity.User{
		Email:    email,
		Name:     name,
		Password: string(hashedPassword),
	}

	if err := uc.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrEmailExists
		}
		uc.logger.Error("Failed to create user: %v", err)
		return nil, "", fmt.Errorf("failed to create user")
	}

	token, err := uc.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) Login(email, password string) (*entity.User, string, error) {
	user, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	// OAuth-only accounts carry no password hash.
	if user.Password == "" {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := uc.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) GetUser(userID string) (*entity.User, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
		}
		return nil, err
	}
	user.Password = ""
	return user, nil
}

// OAuthLogin upserts the (provider, account) link and its user, then issues
// a session token. An existing user with the same email is linked rather
// than duplicated.
func (uc *authUseCase) OAuthLogin(provider, providerAccountID, email, name, avatarURL string) (*entity.User, string, error) {
	var user *entity.User

	account, err := uc.userRepo.GetAccount(provider, providerAccountID)
	switch {
	case err == nil:
		user, err = uc.userRepo.GetByID(account.UserID)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load linked user: %w", err)
		}

	case errors.Is(err, gorm.ErrRecordNotFound):
		user, err = uc.userRepo.GetByEmail(email)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = &entity.User{
				Email:     email,
				Name:      name,
				AvatarURL: avatarURL,
			}
			if createErr := uc.userRepo.Create(user); createErr != nil {
				uc.logger.Error("Failed to create OAuth user: %v", createErr)
				return nil, "", fmt.Errorf("failed to create user")
			}
		} else if err != nil {
			return nil, "", fmt.Errorf("failed to look up user: %w", err)
		}

		link := &entity.Account{
			Provider:          provider,
			ProviderAccountID: providerAccountID,
			UserID:            user.ID,
		}
		if linkErr := uc.userRepo.LinkAccount(link); linkErr != nil {
			uc.logger.Error("Failed to link OAuth account: %v", linkErr)
			return nil, "", fmt.Errorf("failed to link account")
		}

	default:
		return nil, "", fmt.Errorf("failed to look up account: %w", err)
	}

	token, err := uc.jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		uc.logger.Error("Failed to generate token: %v", err)
		return nil, "", fmt.Errorf("failed to generate token")
	}

	user.Password = ""
	return user, token, nil
}

func (uc *authUseCase) UploadAvatar(userID string, fileReader io.Reader, fileKey string, contentType string) (*entity.User, error) {
	avatarURL, err := uc.s3Client.UploadFile(fileKey, fileReader, contentType)
	if err != nil {
		uc.logger.Error("Failed to upload avatar: %v", err)
		return nil, fmt.Errorf("failed to upload avatar")
	}

	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}

	user.AvatarURL = avatarURL
	if err := uc.userRepo.Update(user); err != nil {
		uc.logger.Error("Failed to update user: %v", err)
		return nil, fmt.Errorf("failed to update user")
	}

	user.Password = ""
	return user, nil
}
