package handlers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VolleyballService/internal/action"
	"github.com/m04kA/SMC-VolleyballService/internal/eligibility"
	"github.com/m04kA/SMC-VolleyballService/internal/integrations/functions"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
)

// Тексты для пользователя по общим ошибкам
const (
	MsgNotAuthenticated  = "must be logged in"
	MsgNoCredits         = "no valid credits"
	MsgInvalidResponse   = "unexpected server response"
	MsgInFlight          = "this action is already in progress"
	MsgTooCloseToStart   = "lessons must be booked more than 5 hours before the start time, please contact us to book a lesson sooner"
	MsgClassClosed       = "this class is not open for registration"
	MsgClassFull         = "this class is full"
	MsgServerUnavailable = "server is unavailable, please try again later"
)

// Коды ошибок шлюза удаленных процедур
var serverStatusCodes = map[string]int{
	"INVALID_ARGUMENT":    http.StatusBadRequest,
	"FAILED_PRECONDITION": http.StatusConflict,
	"ALREADY_EXISTS":      http.StatusConflict,
	"NOT_FOUND":           http.StatusNotFound,
	"PERMISSION_DENIED":   http.StatusForbidden,
	"RESOURCE_EXHAUSTED":  http.StatusTooManyRequests,
}

// RespondCommonError отвечает на ошибки, общие для всех действий:
// сессия, гейт, правила записи и ошибки удаленных процедур.
// Возвращает false, если ошибка не распознана и ответ не записан.
func RespondCommonError(w http.ResponseWriter, err error) bool {
	var (
		serverErr *functions.ServerError
		tooClose  *eligibility.TooCloseToCancelError
	)

	switch {
	case errors.Is(err, session.ErrNotAuthenticated):
		RespondUnauthorized(w, MsgNotAuthenticated)

	case errors.Is(err, action.ErrInFlight):
		RespondConflict(w, MsgInFlight)

	case errors.Is(err, eligibility.ErrNoAvailableCredit):
		RespondError(w, http.StatusPaymentRequired, MsgNoCredits)

	case errors.Is(err, eligibility.ErrTooCloseToStart):
		RespondBadRequest(w, MsgTooCloseToStart)

	case errors.As(err, &tooClose):
		RespondBadRequest(w, tooClose.Message())

	case errors.Is(err, eligibility.ErrClassClosed):
		RespondConflict(w, MsgClassClosed)

	case errors.Is(err, eligibility.ErrClassFull):
		RespondConflict(w, MsgClassFull)

	case errors.As(err, &serverErr):
		status, ok := serverStatusCodes[serverErr.Status]
		if !ok {
			status = http.StatusUnprocessableEntity
		}
		RespondError(w, status, serverErr.Message)

	case errors.Is(err, functions.ErrInvalidResponse):
		RespondError(w, http.StatusBadGateway, MsgInvalidResponse)

	case errors.Is(err, functions.ErrInternal):
		RespondError(w, http.StatusBadGateway, MsgServerUnavailable)

	default:
		return false
	}
	return true
}
