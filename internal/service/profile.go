package service

import (
	"AprovaFlow/internal/model"
	"AprovaFlow/internal/policy"
	"AprovaFlow/internal/repo"
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProfileService — жизненный цикл профилей: автосоздание при первом
// обращении, список клиентов, правка имени и роли.
type ProfileService struct {
	repo   repo.ProfileRepository
	users  repo.UserRepository
	logger *zap.SugaredLogger
}

func NewProfileService(r repo.ProfileRepository, users repo.UserRepository, logger *zap.SugaredLogger) *ProfileService {
	return &ProfileService{repo: r, users: users, logger: logger}
}

// Ensure возвращает профиль учётной записи, создавая его при отсутствии.
// Новый профиль всегда получает роль cliente; повышение до agencia —
// только явной операцией смены роли.
func (s *ProfileService) Ensure(ctx context.Context, userID string) (*model.Profile, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	u, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	fresh := &model.Profile{
		ID:     uuid.NewString(),
		UserID: userID,
		Email:  u.Email,
		Role:   model.RoleClient,
	}
	// upsert: конкурентное создание вернёт уже существующую строку
	return s.repo.EnsureProfile(ctx, fresh)
}

// CallerFor собирает политику вызывающего по его профилю.
// Роль перечитывается на каждый запрос — смена роли действует со
// следующего обращения.
func (s *ProfileService) CallerFor(ctx context.Context, userID string) (policy.Caller, error) {
	p, err := s.Ensure(ctx, userID)
	if err != nil {
		return policy.Caller{}, err
	}
	return policy.Caller{UserID: userID, Role: p.Role}, nil
}

// ListAll — все профили; доступно только агентству.
func (s *ProfileService) ListAll(ctx context.Context, caller policy.Caller) ([]model.Profile, error) {
	if !policy.CanManageProfiles(caller) {
		return nil, policy.ErrPermissionDenied
	}
	return s.repo.ListAll(ctx)
}

// ListClients — профили с ролью cliente для фильтров и форм агентства.
func (s *ProfileService) ListClients(ctx context.Context, caller policy.Caller) ([]model.Profile, error) {
	if !caller.IsAgency() {
		return nil, policy.ErrPermissionDenied
	}
	return s.repo.ListClients(ctx)
}

// UpdateRole меняет роль профиля. Действует на последующие проверки
// политики, уже выданные данные не отзываются.
func (s *ProfileService) UpdateRole(ctx context.Context, caller policy.Caller, profileID string, role model.Role) error {
	if !policy.CanManageProfiles(caller) {
		return policy.ErrPermissionDenied
	}
	if role != model.RoleAgency && role != model.RoleClient {
		return ErrValidation
	}
	if err := s.repo.UpdateRole(ctx, profileID, role); err != nil {
		return err
	}
	s.logger.Infow("profile role updated", "profile_id", profileID, "role", role)
	return nil
}

// UpdateDisplayName меняет отображаемое имя профиля.
func (s *ProfileService) UpdateDisplayName(ctx context.Context, caller policy.Caller, profileID, name string) error {
	if !policy.CanManageProfiles(caller) {
		return policy.ErrPermissionDenied
	}
	return s.repo.UpdateDisplayName(ctx, profileID, name)
}
