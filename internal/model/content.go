package model

import "time"

// Статус одобрения пауты (трек темы). Токены хранятся как в БД, на
// португальском — менять их нельзя, они часть внешнего контракта.
type ApprovalStatus string

const (
	ApprovalUndefined ApprovalStatus = "indefinido"
	ApprovalPending   ApprovalStatus = "pendente"
	ApprovalApproved  ApprovalStatus = "aprovado"
	ApprovalRejected  ApprovalStatus = "rejeitado"
)

// Статус производственного трека контента.
type ContentStatus string

const (
	StatusPending          ContentStatus = "pendente"
	StatusInProduction     ContentStatus = "em_producao"
	StatusAwaitingApproval ContentStatus = "aguardando_aprovacao"
	StatusApproved         ContentStatus = "aprovado"
	StatusRejected         ContentStatus = "rejeitado"
	StatusPublished        ContentStatus = "publicado"
)

// Тип контента. На запись предлагаются только первые три; остальные
// токены встречаются в исторических строках и принимаются на чтение.
type ContentType string

const (
	TypeStatic   ContentType = "estatico"
	TypeCarousel ContentType = "carrossel"
	TypeReels    ContentType = "reels"
)

// Кто отвечает за съёмку/захват материала.
type CaptureType string

const (
	CaptureNoNeed   CaptureType = "s_necessidade"
	CaptureByAgency CaptureType = "pela_agencia"
	CaptureByClient CaptureType = "pelo_cliente"
)

// Маркетинговая цель темы.
type Objective string

const (
	ObjectiveConversion    Objective = "conversao"
	ObjectiveAwareness     Objective = "awareness"
	ObjectiveEngagement    Objective = "engajamento"
	ObjectiveConsideration Objective = "consideracao"
	ObjectiveRetention     Objective = "retencao"
)

// ValidApprovalStatus проверяет токен трека темы.
func ValidApprovalStatus(v ApprovalStatus) bool {
	switch v {
	case ApprovalUndefined, ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}

// ValidContentStatus проверяет токен производственного трека.
func ValidContentStatus(v ContentStatus) bool {
	switch v {
	case StatusPending, StatusInProduction, StatusAwaitingApproval,
		StatusApproved, StatusRejected, StatusPublished:
		return true
	}
	return false
}

// WritableContentType — допустимые значения при создании/редактировании.
func WritableContentType(v ContentType) bool {
	switch v {
	case TypeStatic, TypeCarousel, TypeReels:
		return true
	}
	return false
}

// ReadableContentType — расширенный набор из схемы хранилища.
func ReadableContentType(v ContentType) bool {
	if WritableContentType(v) {
		return true
	}
	switch v {
	case "post", "story", "reel", "video", "outro":
		return true
	}
	return false
}

// WritableCaptureType — допустимые значения при создании.
func WritableCaptureType(v CaptureType) bool {
	switch v {
	case CaptureNoNeed, CaptureByAgency, CaptureByClient:
		return true
	}
	return false
}

// ReadableCaptureType — расширенный набор из схемы хранилища.
func ReadableCaptureType(v CaptureType) bool {
	if WritableCaptureType(v) {
		return true
	}
	switch v {
	case "fotografia", "video", "design", "redacao":
		return true
	}
	return false
}

// ValidObjective проверяет токен цели.
func ValidObjective(v Objective) bool {
	switch v {
	case ObjectiveConversion, ObjectiveAwareness, ObjectiveEngagement,
		ObjectiveConsideration, ObjectiveRetention:
		return true
	}
	return false
}

// Content — запись календаря контента: одновременно «тема» (бриф на
// согласование) и «контент» (готовый материал). Какой из двух треков
// осмыслен, определяется режимом создания.
type Content struct {
	ID string `gorm:"primaryKey;type:uuid" json:"id"`

	// Date — целевая дата публикации в формате YYYY-MM-DD.
	// DayOfWeek — денормализованное имя дня недели; всегда пересчитывается
	// из Date при записи.
	Date      string `gorm:"not null;index" json:"date"`
	DayOfWeek string `gorm:"not null" json:"day_of_week"`

	FeedTheme string    `gorm:"not null" json:"feed_theme"`
	Objective Objective `json:"objective,omitempty"`

	ContentType    ContentType `json:"content_type,omitempty"`
	ContentCapture CaptureType `json:"content_capture,omitempty"`

	ApprovedGuidelines ApprovalStatus `gorm:"index" json:"approved_guidelines"`
	ContentStatus      ContentStatus  `json:"content_status"`

	Caption     string `json:"caption,omitempty"`
	ContentBody string `json:"content_body,omitempty"`

	// Observations — append-only журнал замечаний; реджекты дописывают
	// в него датированные записи и никогда не перезаписывают старые.
	Observations string `json:"observations,omitempty"`

	UserID   string `gorm:"not null;index;type:uuid" json:"user_id"`
	ClientID string `gorm:"index;type:uuid" json:"client_id"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
