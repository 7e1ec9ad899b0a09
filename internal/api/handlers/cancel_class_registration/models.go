package cancel_class_registration

import (
	classModels "github.com/m04kA/SMC-VolleyballService/internal/service/classes/models"
	cancelRegistration "github.com/m04kA/SMC-VolleyballService/internal/usecase/cancel_class_registration"
)

// CancelRegistrationResponse HTTP response model
type CancelRegistrationResponse struct {
	ClassID string                     `json:"classId"`
	Class   *classModels.ClassResponse `json:"class,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *cancelRegistration.Response) *CancelRegistrationResponse {
	out := &CancelRegistrationResponse{ClassID: resp.ClassID}
	if resp.Class != nil {
		class := classModels.FromDomainClass(resp.Class, false)
		out.Class = &class
	}
	return out
}
