package book_lesson

import (
	"time"

	bookingModels "github.com/m04kA/SMC-VolleyballService/internal/service/bookings/models"
	creditModels "github.com/m04kA/SMC-VolleyballService/internal/service/credits/models"
	trainerModels "github.com/m04kA/SMC-VolleyballService/internal/service/trainers/models"
	bookLesson "github.com/m04kA/SMC-VolleyballService/internal/usecase/book_lesson"
)

// BookLessonRequest HTTP request model
type BookLessonRequest struct {
	TrainerID string `json:"trainerId"`
	SlotID    string `json:"slotId"`
	CreditID  string `json:"creditId,omitempty"`
}

// BookLessonResponse HTTP response model
type BookLessonResponse struct {
	Booking      *bookingModels.BookingResponse   `json:"booking,omitempty"`
	Message      string                           `json:"message,omitempty"`
	CreditID     string                           `json:"creditId"`
	AutoSelected bool                             `json:"autoSelected"`
	Credits      *creditModels.CreditListResponse `json:"credits,omitempty"`
	OpenSlots    *trainerModels.SlotListResponse  `json:"openSlots,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookLessonRequest) ToUseCaseRequest() *bookLesson.Request {
	return &bookLesson.Request{
		TrainerID: r.TrainerID,
		SlotID:    r.SlotID,
		CreditID:  r.CreditID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookLesson.Response, now time.Time) *BookLessonResponse {
	out := &BookLessonResponse{
		Booking:      bookingModels.FromDomainBooking(resp.Booking, now),
		Message:      resp.Message,
		CreditID:     resp.CreditID,
		AutoSelected: resp.AutoSelected,
	}
	if resp.Credits != nil {
		out.Credits = creditModels.FromDomainCreditList(resp.Credits, now)
	}
	if resp.OpenSlots != nil {
		out.OpenSlots = trainerModels.FromDomainSlots(resp.OpenSlots, now)
	}
	return out
}
