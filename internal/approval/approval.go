package approval

import (
	"fmt"
	"time"

	"AprovaFlow/internal/model"
)

// Track — один из двух независимых треков согласования записи.
type Track string

const (
	TrackGuideline Track = "approved_guidelines"
	TrackContent   Track = "content_status"
)

// ValidTrack проверяет имя трека, пришедшее от вызывающего.
func ValidTrack(t Track) bool {
	return t == TrackGuideline || t == TrackContent
}

// IllegalTransitionError — запрошенный переход отсутствует в таблице
// допустимых для данного трека.
type IllegalTransitionError struct {
	Track Track
	From  string
	To    string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal %s transition: %s -> %s", e.Track, e.From, e.To)
}

// Таблицы переходов. Переход в то же самое состояние всегда допустим —
// повторный реджект обязан проходить, дописывая причину в журнал.
var guidelineTransitions = map[model.ApprovalStatus][]model.ApprovalStatus{
	model.ApprovalUndefined: {model.ApprovalPending, model.ApprovalApproved},
	model.ApprovalPending:   {model.ApprovalApproved, model.ApprovalRejected},
	model.ApprovalApproved:  {model.ApprovalPending, model.ApprovalRejected},
	model.ApprovalRejected:  {model.ApprovalPending, model.ApprovalApproved},
}

var contentTransitions = map[model.ContentStatus][]model.ContentStatus{
	model.StatusPending:          {model.StatusInProduction, model.StatusAwaitingApproval, model.StatusApproved, model.StatusRejected},
	model.StatusInProduction:     {model.StatusPending, model.StatusAwaitingApproval, model.StatusApproved, model.StatusRejected},
	model.StatusAwaitingApproval: {model.StatusInProduction, model.StatusApproved, model.StatusRejected},
	model.StatusApproved:         {model.StatusPending, model.StatusRejected, model.StatusPublished},
	model.StatusRejected:         {model.StatusPending, model.StatusInProduction, model.StatusAwaitingApproval, model.StatusApproved},
	// publicado — терминальное состояние
	model.StatusPublished: {},
}

// CheckGuideline валидирует переход трека темы.
func CheckGuideline(from, to model.ApprovalStatus) error {
	// Пустое значение в исторических строках равносильно indefinido
	if from == "" {
		from = model.ApprovalUndefined
	}
	if from == to {
		return nil
	}
	for _, allowed := range guidelineTransitions[from] {
		if to == allowed {
			return nil
		}
	}
	return &IllegalTransitionError{Track: TrackGuideline, From: string(from), To: string(to)}
}

// CheckContent валидирует переход производственного трека.
func CheckContent(from, to model.ContentStatus) error {
	if from == "" {
		from = model.StatusPending
	}
	if from == to {
		return nil
	}
	for _, allowed := range contentTransitions[from] {
		if to == allowed {
			return nil
		}
	}
	return &IllegalTransitionError{Track: TrackContent, From: string(from), To: string(to)}
}

// AppendRejection дописывает датированную причину отказа в журнал
// замечаний. Существующее содержимое сохраняется целиком, новая запись
// отделяется пустой строкой. Дата — в формате pt-BR (dd/mm/yyyy).
func AppendRejection(observations, reason string, now time.Time) string {
	entry := fmt.Sprintf("[Rejeição - %s]: %s", now.Format("02/01/2006"), reason)
	if observations == "" {
		return entry
	}
	return observations + "\n\n" + entry
}
