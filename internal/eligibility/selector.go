package eligibility

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
)

// CreditFilter ограничивает типы кредитов, которые может потратить действие
type CreditFilter int

const (
	// ForLesson любые кредиты, кроме class_pass
	ForLesson CreditFilter = iota
	// ForClass только class_pass
	ForClass
)

// Matches проверяет, подходит ли тип кредита под фильтр
func (f CreditFilter) Matches(t domain.CreditType) bool {
	if f == ForClass {
		return t.IsClassPass()
	}
	return !t.IsClassPass()
}

// Selection результат выбора кредита
type Selection struct {
	CreditID string
	// Explicit true, если кредит выбран пользователем и не проверялся
	Explicit bool
	// Candidates количество действующих кредитов подходящего типа
	Candidates int
}

// NeedsPrompt true, если клиенту стоит показать выбор кредита
// При единственном кандидате кредит выбирается автоматически
func (s Selection) NeedsPrompt() bool {
	return !s.Explicit && s.Candidates > 1
}

// SelectCredit выбирает кредит для бронирования или записи на занятие.
//
// Явно переданный explicitID возвращается как есть: действительность кредита
// проверяет бэкенд. Иначе среди действующих кредитов подходящего типа берется
// кредит с самым ранним сроком действия; при равных сроках с меньшим ID.
func SelectCredit(credits []domain.LessonCredit, explicitID string, filter CreditFilter, now time.Time) (Selection, error) {
	if explicitID != "" {
		return Selection{CreditID: explicitID, Explicit: true}, nil
	}

	candidates := UsableCredits(credits, filter, now)
	if len(candidates) == 0 {
		return Selection{}, ErrNoAvailableCredit
	}

	return Selection{
		CreditID:   candidates[0].ID,
		Candidates: len(candidates),
	}, nil
}

// UsableCredits возвращает действующие кредиты подходящего типа,
// отсортированные по сроку действия (ближайший первым), затем по ID.
// Исходный срез не изменяется.
func UsableCredits(credits []domain.LessonCredit, filter CreditFilter, now time.Time) []domain.LessonCredit {
	result := make([]domain.LessonCredit, 0, len(credits))
	for _, c := range credits {
		if !filter.Matches(c.CreditType) || !c.IsUsable(now) {
			continue
		}
		result = append(result, c)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].ExpirationDate.Equal(result[j].ExpirationDate) {
			return result[i].ExpirationDate.Before(result[j].ExpirationDate)
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// RemainingTotal суммирует оставшиеся занятия по действующим кредитам
func RemainingTotal(credits []domain.LessonCredit, filter CreditFilter, now time.Time) int {
	total := 0
	for _, c := range UsableCredits(credits, filter, now) {
		total += c.Remaining()
	}
	return total
}
