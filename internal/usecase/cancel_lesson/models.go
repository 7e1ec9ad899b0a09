package cancel_lesson

import "github.com/m04kA/SMC-VolleyballService/internal/domain"

// ActionName имя действия для гейта и метрик
const ActionName = "cancel_lesson"

// Request модель запроса на отмену занятия
type Request struct {
	BookingID string
}

// Response результат отмены: перечитанные бронирования и кредиты
type Response struct {
	BookingID string
	Bookings  []domain.Booking
	Credits   []domain.LessonCredit
}
