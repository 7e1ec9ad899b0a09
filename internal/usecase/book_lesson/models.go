package book_lesson

import "github.com/m04kA/SMC-VolleyballService/internal/domain"

// ActionName имя действия для гейта и метрик
const ActionName = "book_lesson"

// Request модель запроса на бронирование занятия
type Request struct {
	TrainerID string // ID тренера
	SlotID    string // ID слота в расписании тренера
	CreditID  string // явно выбранный кредит (опционально)
}

// Response результат бронирования и свежие списки после него
type Response struct {
	Booking *domain.Booking // nil, если бэкенд вернул только сообщение
	Message string
	// CreditID кредит, который был отправлен на бэкенд
	CreditID string
	// AutoSelected кредит выбран автоматически (самый ранний срок действия)
	AutoSelected bool
	// Credits и OpenSlots перечитаны после успешного бронирования
	Credits   []domain.LessonCredit
	OpenSlots []domain.AvailabilitySlot
}
