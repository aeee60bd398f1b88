package model

import "time"

// User — учётная запись в провайдере идентичности (аналог auth.users).
// Password хранит bcrypt-хеш; для приглашённых пользователей он случайный
// до первого входа.
type User struct {
	ID       string `gorm:"primaryKey;type:uuid"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`

	// Invited=true пока пользователь не завершил регистрацию по приглашению
	Invited bool `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
