package service

import (
	"AprovaFlow/internal/approval"
	"AprovaFlow/internal/model"
	"AprovaFlow/internal/policy"
	"AprovaFlow/internal/repo"
	"AprovaFlow/internal/view"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrValidation — локальная ошибка валидации: запрос не дошёл до БД.
var ErrValidation = errors.New("validation failed")

// ContentService — жизненный цикл записи контента: два режима создания,
// явные операции над двумя треками согласования, реджект с причиной,
// выборка с разбиением на очереди.
type ContentService struct {
	repo   repo.ContentRepository
	logger *zap.SugaredLogger

	// now подменяется в тестах
	now func() time.Time
}

func NewContentService(r repo.ContentRepository, logger *zap.SugaredLogger) *ContentService {
	return &ContentService{repo: r, logger: logger, now: time.Now}
}

// CreateThemeInput — поля формы «Novo Tema».
type CreateThemeInput struct {
	Date        string
	FeedTheme   string
	Objective   model.Objective
	ContentType model.ContentType
	ClientID    string
}

// CreateContentInput — поля формы «Novo Conteúdo».
type CreateContentInput struct {
	Date           string
	FeedTheme      string
	ContentType    model.ContentType
	ContentCapture model.CaptureType
	ContentStatus  model.ContentStatus
	Caption        string
	ContentBody    string
	ClientID       string
}

func validateDate(date string) error {
	if _, err := time.ParseInLocation("2006-01-02", date, time.Local); err != nil {
		return ErrValidation
	}
	return nil
}

// CreateTheme создаёт запись в режиме темы. Оба трека принудительно
// pendente, что бы ни прислал вызывающий.
func (s *ContentService) CreateTheme(ctx context.Context, caller policy.Caller, in CreateThemeInput) (*model.Content, error) {
	if in.FeedTheme == "" {
		return nil, ErrValidation
	}
	if err := validateDate(in.Date); err != nil {
		return nil, err
	}
	if in.Objective != "" && !model.ValidObjective(in.Objective) {
		return nil, ErrValidation
	}
	if in.ContentType != "" && !model.WritableContentType(in.ContentType) {
		return nil, ErrValidation
	}
	clientID, err := policy.ResolveClientID(caller, in.ClientID)
	if err != nil {
		return nil, err
	}

	c := &model.Content{
		ID:                 uuid.NewString(),
		Date:               in.Date,
		DayOfWeek:          approval.DayOfWeek(in.Date),
		FeedTheme:          in.FeedTheme,
		Objective:          in.Objective,
		ContentType:        in.ContentType,
		ApprovedGuidelines: model.ApprovalPending,
		ContentStatus:      model.StatusPending,
		UserID:             caller.UserID,
		ClientID:           clientID,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.logger.Infow("theme created", "id", c.ID, "client_id", c.ClientID, "date", c.Date)
	return c, nil
}

// CreateContent создаёт запись в режиме контента. Трек темы считается
// пройденным (aprovado); производственный статус берётся из запроса
// только у агентства, иначе pendente.
func (s *ContentService) CreateContent(ctx context.Context, caller policy.Caller, in CreateContentInput) (*model.Content, error) {
	if in.FeedTheme == "" {
		return nil, ErrValidation
	}
	if err := validateDate(in.Date); err != nil {
		return nil, err
	}
	if in.ContentType != "" && !model.WritableContentType(in.ContentType) {
		return nil, ErrValidation
	}
	if in.ContentCapture != "" && !model.WritableCaptureType(in.ContentCapture) {
		return nil, ErrValidation
	}
	clientID, err := policy.ResolveClientID(caller, in.ClientID)
	if err != nil {
		return nil, err
	}

	status := model.StatusPending
	if caller.IsAgency() && in.ContentStatus != "" {
		if !model.ValidContentStatus(in.ContentStatus) {
			return nil, ErrValidation
		}
		status = in.ContentStatus
	}

	c := &model.Content{
		ID:                 uuid.NewString(),
		Date:               in.Date,
		DayOfWeek:          approval.DayOfWeek(in.Date),
		FeedTheme:          in.FeedTheme,
		ContentType:        in.ContentType,
		ContentCapture:     in.ContentCapture,
		ApprovedGuidelines: model.ApprovalApproved,
		ContentStatus:      status,
		Caption:            in.Caption,
		ContentBody:        in.ContentBody,
		UserID:             caller.UserID,
		ClientID:           clientID,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.logger.Infow("content created", "id", c.ID, "client_id", c.ClientID, "date", c.Date)
	return c, nil
}

// visible возвращает запись, если вызывающий вправе её видеть.
func (s *ContentService) visible(ctx context.Context, caller policy.Caller, id string) (*model.Content, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanSee(caller, *c) {
		// чужая запись для клиента неотличима от несуществующей
		return nil, gorm.ErrRecordNotFound
	}
	return c, nil
}

// SetGuidelineApproval выставляет трек темы. Переход сверяется с
// таблицей допустимых.
func (s *ContentService) SetGuidelineApproval(ctx context.Context, caller policy.Caller, id string, v model.ApprovalStatus) (*model.Content, error) {
	if !model.ValidApprovalStatus(v) {
		return nil, ErrValidation
	}
	c, err := s.visible(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanSetGuideline(caller, *c) {
		return nil, policy.ErrPermissionDenied
	}
	if err := approval.CheckGuideline(c.ApprovedGuidelines, v); err != nil {
		return nil, err
	}
	if err := s.repo.SetGuidelineApproval(ctx, id, v); err != nil {
		return nil, err
	}
	c.ApprovedGuidelines = v
	return c, nil
}

// SetContentStatus выставляет производственный трек.
func (s *ContentService) SetContentStatus(ctx context.Context, caller policy.Caller, id string, v model.ContentStatus) (*model.Content, error) {
	if !model.ValidContentStatus(v) {
		return nil, ErrValidation
	}
	c, err := s.visible(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanSetContentStatus(caller, *c) {
		return nil, policy.ErrPermissionDenied
	}
	if err := approval.CheckContent(c.ContentStatus, v); err != nil {
		return nil, err
	}
	if err := s.repo.SetContentStatus(ctx, id, v); err != nil {
		return nil, err
	}
	c.ContentStatus = v
	return c, nil
}

// Reject — составная операция: прочитать журнал, дописать датированную
// причину, одним апдейтом записать rejeitado и новый журнал. Если записи
// нет, операция обрывается целиком, частичных записей не бывает.
func (s *ContentService) Reject(ctx context.Context, caller policy.Caller, id string, track approval.Track, reason string) (*model.Content, error) {
	if !approval.ValidTrack(track) {
		return nil, ErrValidation
	}
	c, err := s.visible(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	newObservations := approval.AppendRejection(c.Observations, reason, s.now())

	switch track {
	case approval.TrackGuideline:
		if !policy.CanSetGuideline(caller, *c) {
			return nil, policy.ErrPermissionDenied
		}
		if err := approval.CheckGuideline(c.ApprovedGuidelines, model.ApprovalRejected); err != nil {
			return nil, err
		}
		if err := s.repo.SetGuidelineRejection(ctx, id, newObservations); err != nil {
			return nil, err
		}
		c.ApprovedGuidelines = model.ApprovalRejected
	case approval.TrackContent:
		if !policy.CanSetContentStatus(caller, *c) {
			return nil, policy.ErrPermissionDenied
		}
		if err := approval.CheckContent(c.ContentStatus, model.StatusRejected); err != nil {
			return nil, err
		}
		if err := s.repo.SetContentRejection(ctx, id, newObservations); err != nil {
			return nil, err
		}
		c.ContentStatus = model.StatusRejected
	}

	c.Observations = newObservations
	s.logger.Infow("content rejected", "id", id, "track", track)
	return c, nil
}

// UpdateTexts правит легенду и/или текст арта.
func (s *ContentService) UpdateTexts(ctx context.Context, caller policy.Caller, id string, caption, contentBody *string) (*model.Content, error) {
	if !policy.CanEditTexts(caller) {
		return nil, policy.ErrPermissionDenied
	}
	c, err := s.visible(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateTexts(ctx, id, caption, contentBody); err != nil {
		return nil, err
	}
	if caption != nil {
		c.Caption = *caption
	}
	if contentBody != nil {
		c.ContentBody = *contentBody
	}
	return c, nil
}

// Delete удаляет запись; подтверждение у вызывающего, сервер исполняет
// сразу.
func (s *ContentService) Delete(ctx context.Context, caller policy.Caller, id string) error {
	if !policy.CanDelete(caller) {
		return policy.ErrPermissionDenied
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("content deleted", "id", id)
	return nil
}

// List возвращает видимую вызывающему коллекцию: сначала фильтры по
// клиенту и месяцу, затем разбиение на очередь тем или контента.
func (s *ContentService) List(ctx context.Context, caller policy.Caller, mode view.Mode, month, clientFilter string) ([]model.Content, error) {
	var (
		items []model.Content
		err   error
	)
	if caller.IsAgency() {
		items, err = s.repo.ListAll(ctx)
	} else {
		// клиент всегда ограничен своим client_id, фильтр игнорируется
		items, err = s.repo.ListByClient(ctx, caller.UserID)
	}
	if err != nil {
		return nil, err
	}

	if caller.IsAgency() {
		items = view.FilterClient(items, clientFilter)
	}
	items = view.FilterMonth(items, month)
	return view.Partition(items, mode), nil
}
