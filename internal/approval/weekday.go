package approval

import "time"

// Имена дней недели, как они выводятся в календаре (Domingo=0..Sábado=6).
var weekdayNames = [7]string{
	"Domingo", "Segunda", "Terça", "Quarta", "Quinta", "Sexta", "Sábado",
}

// DayOfWeek возвращает имя дня недели для даты формата YYYY-MM-DD.
// Дата трактуется как локальная календарная, не UTC. Для пустой или
// некорректной строки возвращается "".
func DayOfWeek(date string) string {
	if date == "" {
		return ""
	}
	t, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return ""
	}
	return weekdayNames[int(t.Weekday())]
}
