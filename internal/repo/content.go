package repo

import (
	"AprovaFlow/internal/model"
	"context"

	"gorm.io/gorm"
)

// ContentRepository — контракт доступа к записям календаря контента.
// Мутации статусов — явные помеченные операции, имена колонок снаружи
// не принимаются.
type ContentRepository interface {
	// ListAll возвращает все записи по убыванию даты.
	ListAll(ctx context.Context) ([]model.Content, error)

	// ListByClient возвращает записи клиента по убыванию даты.
	ListByClient(ctx context.Context, clientID string) ([]model.Content, error)

	// GetByID возвращает запись или gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id string) (*model.Content, error)

	// Create вставляет новую запись.
	Create(ctx context.Context, c *model.Content) error

	// SetGuidelineApproval выставляет трек темы.
	SetGuidelineApproval(ctx context.Context, id string, v model.ApprovalStatus) error

	// SetContentStatus выставляет производственный трек.
	SetContentStatus(ctx context.Context, id string, v model.ContentStatus) error

	// SetGuidelineRejection одним апдейтом пишет rejeitado в трек темы
	// и новый журнал замечаний.
	SetGuidelineRejection(ctx context.Context, id string, observations string) error

	// SetContentRejection — то же для производственного трека.
	SetContentRejection(ctx context.Context, id string, observations string) error

	// UpdateTexts обновляет легенду и текст арта.
	UpdateTexts(ctx context.Context, id string, caption, contentBody *string) error

	// Delete удаляет запись.
	Delete(ctx context.Context, id string) error

	// DeleteByOwner удаляет все записи, созданные учётной записью.
	DeleteByOwner(ctx context.Context, userID string) error
}

type contentRepo struct {
	db *gorm.DB
}

// NewContentRepository создаёт реализацию репозитория контента.
func NewContentRepository(db *gorm.DB) ContentRepository {
	return &contentRepo{db: db}
}

func (r *contentRepo) ListAll(ctx context.Context) ([]model.Content, error) {
	var out []model.Content
	if err := r.db.WithContext(ctx).Order("date desc").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *contentRepo) ListByClient(ctx context.Context, clientID string) ([]model.Content, error) {
	var out []model.Content
	err := r.db.WithContext(ctx).
		Where("client_id = ?", clientID).
		Order("date desc").
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *contentRepo) GetByID(ctx context.Context, id string) (*model.Content, error) {
	var c model.Content
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contentRepo) Create(ctx context.Context, c *model.Content) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *contentRepo) updateByID(ctx context.Context, id string, updates map[string]any) error {
	tx := r.db.WithContext(ctx).Model(&model.Content{}).
		Where("id = ?", id).
		Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *contentRepo) SetGuidelineApproval(ctx context.Context, id string, v model.ApprovalStatus) error {
	return r.updateByID(ctx, id, map[string]any{"approved_guidelines": v})
}

func (r *contentRepo) SetContentStatus(ctx context.Context, id string, v model.ContentStatus) error {
	return r.updateByID(ctx, id, map[string]any{"content_status": v})
}

func (r *contentRepo) SetGuidelineRejection(ctx context.Context, id string, observations string) error {
	return r.updateByID(ctx, id, map[string]any{
		"approved_guidelines": model.ApprovalRejected,
		"observations":        observations,
	})
}

func (r *contentRepo) SetContentRejection(ctx context.Context, id string, observations string) error {
	return r.updateByID(ctx, id, map[string]any{
		"content_status": model.StatusRejected,
		"observations":   observations,
	})
}

func (r *contentRepo) UpdateTexts(ctx context.Context, id string, caption, contentBody *string) error {
	updates := map[string]any{}
	if caption != nil {
		updates["caption"] = *caption
	}
	if contentBody != nil {
		updates["content_body"] = *contentBody
	}
	if len(updates) == 0 {
		return nil
	}
	return r.updateByID(ctx, id, updates)
}

func (r *contentRepo) Delete(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Content{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *contentRepo) DeleteByOwner(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Content{}).Error
}
