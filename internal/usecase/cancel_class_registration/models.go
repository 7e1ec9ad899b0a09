package cancel_class_registration

import "github.com/m04kA/SMC-VolleyballService/internal/domain"

// ActionName имя действия для гейта и метрик
const ActionName = "cancel_class_registration"

// Request модель запроса на отмену записи
type Request struct {
	ClassID string
}

// Response результат отмены записи
type Response struct {
	ClassID string
	Class   *domain.GroupClass // перечитанное занятие, nil если перечитать не удалось
}
