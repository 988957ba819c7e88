package persistent

import (
	"kamstim/internal/entity"
	"kamstim/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	Update(user *entity.User) error
	GetAccount(provider, providerAccountID string) (*entity.Account, error)
	LinkAccount(account *entity.Account) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *entity.User) error {
	userModel := ToUserModel(user)
	if userModel.ID == "" {
		userModel.ID = uuid.New().String()
	}
	if err := r.db.Create(userModel).Error; err != nil {
		return err
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByID(id string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByEmail(email string) (*entity.User, error) {
	var userModel model.UserModel
	if err := r.db.Where("email = ?", email).First(&userModel).Error; err != nil {
		return nil, err
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) Update(user *entity.User) error {
	return r.db.Save(ToUserModel(user)).Error
}

func (r *userRepository) GetAccount(provider, providerAccountID string) (*entity.Account, error) {
	var accountModel model.AccountModel
	err := r.db.Where("provider = ? AND provider_account_id = ?", provider, providerAccountID).
		First(&accountModel).Error
	if err != nil {
		return nil, err
	}
	return ToAccountEntity(&accountModel), nil
}

func (r *userRepository) LinkAccount(account *entity.Account) error {
	accountModel := &model.AccountModel{
		ID:                account.ID,
		Provider:          account.Provider,
		ProviderAccountID: account.ProviderAccountID,
		UserID:            account.UserID,
	}
	if accountModel.ID == "" {
		accountModel.ID = uuid.New().String()
	}
	if err := r.db.Create(accountModel).Error; err != nil {
		return err
	}
	*account = *ToAccountEntity(accountModel)
	return nil
}
