package repo

import (
	"AprovaFlow/internal/model"
	"context"

	"gorm.io/gorm"
)

// UserRepository — контракт доступа к учётным записям (провайдер
// идентичности).
type UserRepository interface {
	// CreateUser создаёт учётную запись; email уникален.
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)

	// GetUserByEmail возвращает запись по email или gorm.ErrRecordNotFound.
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)

	// GetUserByID возвращает запись по id или gorm.ErrRecordNotFound.
	GetUserByID(ctx context.Context, id string) (*model.User, error)

	// DeleteByID удаляет запись. Отсутствие записи ошибкой не считается —
	// повторный запуск каскада удаления должен сходиться.
	DeleteByID(ctx context.Context, id string) error
}

type userRepo struct {
	db *gorm.DB
}

// NewUserRepository создаёт реализацию репозитория учётных записей.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepo) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) DeleteByID(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.User{}).Error
}
