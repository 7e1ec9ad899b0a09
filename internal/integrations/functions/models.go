package functions

import (
	"encoding/json"
)

// Имена удаленных процедур
const (
	ProcBookLesson                     = "bookLesson"
	ProcCancelLesson                   = "cancelLesson"
	ProcCancelClassRegistration        = "cancelClassRegistration"
	ProcRegisterForClass               = "registerForClass"
	ProcCreatePaymentIntent            = "createPaymentIntent"
	ProcConfirmPaymentAndCreatePackage = "confirmPaymentAndCreatePackage"
	ProcGetOrCreateCustomer            = "getOrCreateCustomer"
	ProcGetPaymentMethods              = "getPaymentMethods"
	ProcDetachPaymentMethod            = "detachPaymentMethod"
)

// callRequest тело вызова процедуры
type callRequest struct {
	Data interface{} `json:"data"`
}

// callResponse конверт ответа шлюза
type callResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *callError      `json:"error,omitempty"`
}

// callError ошибка уровня шлюза
type callError struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

type bookLessonRequest struct {
	TrainerID string `json:"trainerId"`
	SlotID    string `json:"slotId"`
	CreditID  string `json:"creditId"`
}

type bookingIDRequest struct {
	BookingID string `json:"bookingId"`
}

type classIDRequest struct {
	ClassID string `json:"classId"`
}

type registerForClassRequest struct {
	ClassID  string `json:"classId"`
	CreditID string `json:"creditId"`
}

type createPaymentIntentRequest struct {
	CreditType string `json:"creditType"`
	Amount     int64  `json:"amount"` // cents
	TrainerID  string `json:"trainerId,omitempty"`
	UserID     string `json:"userId"`
}

type confirmPaymentRequest struct {
	PaymentIntentID string `json:"paymentIntentId"`
	UserID          string `json:"userId"`
}

type userIDRequest struct {
	UserID string `json:"userId"`
}

type detachPaymentMethodRequest struct {
	UserID          string `json:"userId"`
	PaymentMethodID string `json:"paymentMethodId"`
}
