package repo

import (
	"AprovaFlow/internal/model"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProfileRepository — контракт доступа к профилям.
type ProfileRepository interface {
	// GetByUserID возвращает профиль по id учётной записи
	// или gorm.ErrRecordNotFound.
	GetByUserID(ctx context.Context, userID string) (*model.Profile, error)

	// EnsureProfile создаёт профиль, если его ещё нет (upsert по user_id).
	// Конкурентное создание не ошибка: при конфликте возвращается уже
	// существующая строка.
	EnsureProfile(ctx context.Context, p *model.Profile) (*model.Profile, error)

	// ListAll возвращает все профили.
	ListAll(ctx context.Context) ([]model.Profile, error)

	// ListClients возвращает профили с ролью cliente, по возрастанию email.
	ListClients(ctx context.Context) ([]model.Profile, error)

	// UpdateRole меняет роль профиля по id строки профиля.
	UpdateRole(ctx context.Context, profileID string, role model.Role) error

	// UpdateDisplayName меняет отображаемое имя по id строки профиля.
	UpdateDisplayName(ctx context.Context, profileID, name string) error

	// DeleteByUserID удаляет профиль учётной записи; отсутствие строки
	// ошибкой не считается.
	DeleteByUserID(ctx context.Context, userID string) error
}

type profileRepo struct {
	db *gorm.DB
}

// NewProfileRepository создаёт реализацию репозитория профилей.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*model.Profile, error) {
	var p model.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *profileRepo) EnsureProfile(ctx context.Context, p *model.Profile) (*model.Profile, error) {
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(p)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected > 0 {
		return p, nil
	}
	// конфликт: строку успел создать кто-то другой, перечитываем её
	return r.GetByUserID(ctx, p.UserID)
}

func (r *profileRepo) ListAll(ctx context.Context) ([]model.Profile, error) {
	var out []model.Profile
	if err := r.db.WithContext(ctx).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *profileRepo) ListClients(ctx context.Context) ([]model.Profile, error) {
	var out []model.Profile
	err := r.db.WithContext(ctx).
		Where("role = ?", model.RoleClient).
		Order("email asc").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *profileRepo) UpdateRole(ctx context.Context, profileID string, role model.Role) error {
	tx := r.db.WithContext(ctx).Model(&model.Profile{}).
		Where("id = ?", profileID).
		Update("role", role)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *profileRepo) UpdateDisplayName(ctx context.Context, profileID, name string) error {
	tx := r.db.WithContext(ctx).Model(&model.Profile{}).
		Where("id = ?", profileID).
		Update("display_name", name)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *profileRepo) DeleteByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Profile{}).Error
}
