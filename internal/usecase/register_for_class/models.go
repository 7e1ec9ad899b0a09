package register_for_class

import "github.com/m04kA/SMC-VolleyballService/internal/domain"

// ActionName имя действия для гейта и метрик
const ActionName = "register_for_class"

// Request модель запроса на запись на групповое занятие
type Request struct {
	ClassID  string
	CreditID string // явно выбранный абонемент (опционально)
}

// Response результат записи и свежие данные после нее
type Response struct {
	Message      string
	CreditID     string
	AutoSelected bool
	Class        *domain.GroupClass // перечитанное занятие, nil если перечитать не удалось
	Credits      []domain.LessonCredit
}
