package policy

import (
	"errors"

	"AprovaFlow/internal/model"
)

// Ошибки политики доступа. Хендлеры отображают их в 403/400.
var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrClientRequired   = errors.New("client selection is required")
)

// Caller — аутентифицированный вызывающий: идентичность плюс роль его
// профиля на момент запроса. Роль перечитывается на каждый запрос,
// поэтому смена роли действует со следующего обращения.
type Caller struct {
	UserID string
	Role   model.Role
}

func (c Caller) IsAgency() bool {
	return c.Role == model.RoleAgency
}

// CanSee: клиент видит только записи со своим client_id, агентство — все.
func CanSee(c Caller, rec model.Content) bool {
	if c.IsAgency() {
		return true
	}
	return rec.ClientID == c.UserID
}

// CanSetGuideline: трек темы доступен только агентству.
// Клиентам интерфейс его никогда не предлагал; здесь это закреплено
// как явное правило, а не как умолчание UI.
func CanSetGuideline(c Caller, rec model.Content) bool {
	return c.IsAgency()
}

// CanSetContentStatus: агентство правит любой видимый контент,
// клиент — только свой.
func CanSetContentStatus(c Caller, rec model.Content) bool {
	if c.IsAgency() {
		return true
	}
	return rec.ClientID == c.UserID
}

// CanEditTexts: легенда и текст арта — материалы агентства.
func CanEditTexts(c Caller) bool {
	return c.IsAgency()
}

// CanDelete: удаление записей — только агентство.
func CanDelete(c Caller) bool {
	return c.IsAgency()
}

// CanManageProfiles: приглашения, смена ролей и удаление пользователей —
// только агентство.
func CanManageProfiles(c Caller) bool {
	return c.IsAgency()
}

// ResolveClientID определяет client_id создаваемой записи.
// Агентство обязано явно выбрать клиента; клиент всегда сам себе клиент,
// что бы он ни прислал.
func ResolveClientID(c Caller, requested string) (string, error) {
	if !c.IsAgency() {
		return c.UserID, nil
	}
	if requested == "" {
		return "", ErrClientRequired
	}
	return requested, nil
}
