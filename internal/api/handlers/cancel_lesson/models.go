package cancel_lesson

import (
	"time"

	bookingModels "github.com/m04kA/SMC-VolleyballService/internal/service/bookings/models"
	creditModels "github.com/m04kA/SMC-VolleyballService/internal/service/credits/models"
	cancelLesson "github.com/m04kA/SMC-VolleyballService/internal/usecase/cancel_lesson"
)

// CancelLessonResponse HTTP response model
type CancelLessonResponse struct {
	BookingID string                             `json:"bookingId"`
	Bookings  *bookingModels.BookingListResponse `json:"bookings,omitempty"`
	Credits   *creditModels.CreditListResponse   `json:"credits,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelLesson.Response, now time.Time) *CancelLessonResponse {
	out := &CancelLessonResponse{BookingID: resp.BookingID}
	if resp.Bookings != nil {
		out.Bookings = bookingModels.FromDomainBookingList(resp.Bookings, now)
	}
	if resp.Credits != nil {
		out.Credits = creditModels.FromDomainCreditList(resp.Credits, now)
	}
	return out
}
