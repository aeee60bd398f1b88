package model

import "time"

// Роль вызывающего. Агентство видит и правит всё, клиент — только своё.
type Role string

const (
	RoleAgency Role = "agencia"
	RoleClient Role = "cliente"
)

// Profile — профиль пользователя поверх учётной записи.
// Создаётся автоматически при первом аутентифицированном обращении
// (upsert по user_id); роль и имя правит только агентство.
type Profile struct {
	ID     string `gorm:"primaryKey;type:uuid" json:"id"`
	UserID string `gorm:"uniqueIndex;not null;type:uuid" json:"user_id"`

	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        Role   `gorm:"not null;default:cliente" json:"role"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
