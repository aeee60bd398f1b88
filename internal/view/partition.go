package view

import (
	"strconv"
	"strings"

	"AprovaFlow/internal/model"
)

// Mode — какую из двух коллекций показывать.
type Mode string

const (
	ModeThemes   Mode = "themes"
	ModeContents Mode = "contents"
)

// All — значение фильтра «без фильтра».
const All = "all"

// isThemeRecord: запись попадает в очередь тем, если её трек темы
// когда-либо был задействован. indefinido и пустое значение означают,
// что запись создана сразу как контент и тему миновала.
func isThemeRecord(c model.Content) bool {
	return c.ApprovedGuidelines != model.ApprovalUndefined && c.ApprovedGuidelines != ""
}

// Partition делит видимый набор записей на очередь тем или контента.
// Разбиение тотально и дизъюнктно: каждая запись попадает ровно в одну
// из двух коллекций.
func Partition(items []model.Content, mode Mode) []model.Content {
	out := make([]model.Content, 0, len(items))
	for _, c := range items {
		if isThemeRecord(c) == (mode == ModeThemes) {
			out = append(out, c)
		}
	}
	return out
}

// FilterMonth оставляет записи, чья дата приходится на выбранный месяц
// (1–12, без учёта года). "all" или пустая строка — без фильтрации.
func FilterMonth(items []model.Content, month string) []model.Content {
	if month == "" || month == All {
		return items
	}
	want, err := strconv.Atoi(month)
	if err != nil || want < 1 || want > 12 {
		return items
	}
	out := make([]model.Content, 0, len(items))
	for _, c := range items {
		parts := strings.SplitN(c.Date, "-", 3)
		if len(parts) != 3 {
			continue
		}
		m, err := strconv.Atoi(parts[1])
		if err != nil {
			continue
		}
		if m == want {
			out = append(out, c)
		}
	}
	return out
}

// FilterClient оставляет записи выбранного клиента. "all" или пустая
// строка — без фильтрации.
func FilterClient(items []model.Content, clientID string) []model.Content {
	if clientID == "" || clientID == All {
		return items
	}
	out := make([]model.Content, 0, len(items))
	for _, c := range items {
		if c.ClientID == clientID {
			out = append(out, c)
		}
	}
	return out
}
