package service

import (
	"AprovaFlow/internal/model"
	"AprovaFlow/internal/policy"
	"AprovaFlow/internal/repo"
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// InviteMailer — доставка письма-приглашения. Внешний коллаборатор;
// сервер только инициирует отправку.
type InviteMailer interface {
	SendInvite(ctx context.Context, email string) error
}

// LogMailer пишет приглашение в лог вместо реальной отправки.
type LogMailer struct {
	Logger *zap.SugaredLogger
}

func (m *LogMailer) SendInvite(ctx context.Context, email string) error {
	m.Logger.Infow("invite email queued", "email", email)
	return nil
}

// AdminService — привилегированные операции обслуживания: приглашение
// пользователя и каскадное удаление.
type AdminService struct {
	users    repo.UserRepository
	profiles repo.ProfileRepository
	contents repo.ContentRepository
	mailer   InviteMailer
	logger   *zap.SugaredLogger
}

func NewAdminService(
	users repo.UserRepository,
	profiles repo.ProfileRepository,
	contents repo.ContentRepository,
	mailer InviteMailer,
	logger *zap.SugaredLogger,
) *AdminService {
	return &AdminService{
		users:    users,
		profiles: profiles,
		contents: contents,
		mailer:   mailer,
		logger:   logger,
	}
}

// Invite создаёт приглашённую учётную запись и профиль к ней.
// Пароль случайный, до первого входа учётка помечена Invited.
func (s *AdminService) Invite(ctx context.Context, caller policy.Caller, email string, role model.Role, displayName string) (*model.User, error) {
	if !policy.CanManageProfiles(caller) {
		return nil, policy.ErrPermissionDenied
	}
	if email == "" {
		return nil, ErrValidation
	}
	if role == "" {
		role = model.RoleClient
	}
	if role != model.RoleAgency && role != model.RoleClient {
		return nil, ErrValidation
	}

	if existing, err := s.users.GetUserByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}

	u := &model.User{
		ID:       uuid.NewString(),
		Email:    email,
		Password: hex.EncodeToString(buf), // заменяется при установке пароля
		Invited:  true,
	}
	u, err := s.users.CreateUser(ctx, u)
	if err != nil {
		return nil, err
	}

	// Профиль создаём сразу, чтобы роль действовала с первого входа
	p := &model.Profile{
		ID:          uuid.NewString(),
		UserID:      u.ID,
		Email:       email,
		DisplayName: displayName,
		Role:        role,
	}
	if _, err := s.profiles.EnsureProfile(ctx, p); err != nil {
		s.logger.Errorw("invite: profile creation failed", "email", email, "error", err)
	}

	if err := s.mailer.SendInvite(ctx, email); err != nil {
		return nil, err
	}

	s.logger.Infow("user invited", "email", email, "role", role)
	return u, nil
}

// DeleteUser каскадно удаляет пользователя: его записи контента, затем
// профиль, затем учётную запись — строго в этом порядке. Каждый шаг
// терпим к «уже удалено», поэтому повторный запуск после частичного
// сбоя сходится. Сбой на шаге профиля не прерывает операцию (профиль не
// авторитативен), сбой на учётной записи — общий провал.
func (s *AdminService) DeleteUser(ctx context.Context, caller policy.Caller, userID string) error {
	if !policy.CanManageProfiles(caller) {
		return policy.ErrPermissionDenied
	}
	if userID == "" {
		return ErrValidation
	}

	if err := s.contents.DeleteByOwner(ctx, userID); err != nil {
		return err
	}

	if err := s.profiles.DeleteByUserID(ctx, userID); err != nil {
		s.logger.Errorw("delete-user: profile deletion failed, continuing", "user_id", userID, "error", err)
	}

	if err := s.users.DeleteByID(ctx, userID); err != nil {
		return err
	}

	s.logger.Infow("user deleted", "user_id", userID)
	return nil
}
