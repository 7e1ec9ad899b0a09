package functions

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
	"github.com/m04kA/SMC-VolleyballService/internal/reconcile"
	"github.com/m04kA/SMC-VolleyballService/internal/session"
)

const maxErrorBody = 4 << 10

// Client клиент шлюза удаленных процедур.
// Каждый вызов выполняется ровно один раз, повторов нет.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    Metrics
	log        Logger
}

// NewClient создает новый экземпляр клиента шлюза
func NewClient(baseURL string, timeout time.Duration, metrics Metrics, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		log:     log,
	}
}

// BookLessonResult результат bookLesson: либо бронирование, либо сообщение
type BookLessonResult struct {
	Booking *domain.Booking
	Message string
}

// BookLesson бронирует слот тренера за указанный кредит
func (c *Client) BookLesson(ctx context.Context, sess session.Session, trainerID, slotID, creditID string) (*BookLessonResult, error) {
	result, err := c.call(ctx, sess, ProcBookLesson, bookLessonRequest{
		TrainerID: trainerID,
		SlotID:    slotID,
		CreditID:  creditID,
	})
	if err != nil {
		return nil, err
	}

	if raw, ok := result["booking"].(map[string]interface{}); ok {
		booking, err := reconcile.Booking("", raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidResponse, ProcBookLesson, err)
		}
		return &BookLessonResult{Booking: &booking, Message: stringValue(result, "message")}, nil
	}

	if msg := stringValue(result, "message"); msg != "" {
		return &BookLessonResult{Message: msg}, nil
	}

	return nil, fmt.Errorf("%w: %s: neither booking nor message in result", ErrInvalidResponse, ProcBookLesson)
}

// CancelLesson отменяет бронирование; кредит возвращается на стороне бэкенда
func (c *Client) CancelLesson(ctx context.Context, sess session.Session, bookingID string) error {
	_, err := c.call(ctx, sess, ProcCancelLesson, bookingIDRequest{BookingID: bookingID})
	return err
}

// CancelClassRegistration отменяет запись текущего пользователя на занятие
func (c *Client) CancelClassRegistration(ctx context.Context, sess session.Session, classID string) error {
	_, err := c.call(ctx, sess, ProcCancelClassRegistration, classIDRequest{ClassID: classID})
	return err
}

// RegisterForClass записывает пользователя на групповое занятие
func (c *Client) RegisterForClass(ctx context.Context, sess session.Session, classID, creditID string) (string, error) {
	result, err := c.call(ctx, sess, ProcRegisterForClass, registerForClassRequest{
		ClassID:  classID,
		CreditID: creditID,
	})
	if err != nil {
		return "", err
	}
	return stringValue(result, "message"), nil
}

// CreatePaymentIntent создает платеж и возвращает client secret для платежной формы
func (c *Client) CreatePaymentIntent(
	ctx context.Context,
	sess session.Session,
	creditType domain.CreditType,
	amountCents int64,
	trainerID string,
	userID string,
) (string, error) {
	result, err := c.call(ctx, sess, ProcCreatePaymentIntent, createPaymentIntentRequest{
		CreditType: string(creditType),
		Amount:     amountCents,
		TrainerID:  trainerID,
		UserID:     userID,
	})
	if err != nil {
		return "", err
	}

	secret := stringValue(result, "clientSecret")
	if secret == "" {
		return "", fmt.Errorf("%w: %s: missing clientSecret", ErrInvalidResponse, ProcCreatePaymentIntent)
	}
	return secret, nil
}

// ConfirmPaymentAndCreatePackage подтверждает оплату; пакет кредитов создает бэкенд
func (c *Client) ConfirmPaymentAndCreatePackage(ctx context.Context, sess session.Session, paymentIntentID, userID string) error {
	_, err := c.call(ctx, sess, ProcConfirmPaymentAndCreatePackage, confirmPaymentRequest{
		PaymentIntentID: paymentIntentID,
		UserID:          userID,
	})
	return err
}

// GetOrCreateCustomer возвращает ID покупателя в платежной системе
func (c *Client) GetOrCreateCustomer(ctx context.Context, sess session.Session, userID string) (string, error) {
	result, err := c.call(ctx, sess, ProcGetOrCreateCustomer, userIDRequest{UserID: userID})
	if err != nil {
		return "", err
	}

	customerID := stringValue(result, "customerId")
	if customerID == "" {
		return "", fmt.Errorf("%w: %s: missing customerId", ErrInvalidResponse, ProcGetOrCreateCustomer)
	}
	return customerID, nil
}

// GetPaymentMethods возвращает сохраненные карты пользователя
func (c *Client) GetPaymentMethods(ctx context.Context, sess session.Session, userID string) ([]domain.PaymentMethod, error) {
	result, err := c.call(ctx, sess, ProcGetPaymentMethods, userIDRequest{UserID: userID})
	if err != nil {
		return nil, err
	}

	list, ok := result["paymentMethods"].([]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: %s: missing paymentMethods", ErrInvalidResponse, ProcGetPaymentMethods)
	}

	methods := make([]domain.PaymentMethod, 0, len(list))
	for _, item := range list {
		raw, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		if pm, ok := reconcile.PaymentMethod(raw); ok {
			methods = append(methods, pm)
		}
	}
	return methods, nil
}

// DetachPaymentMethod удаляет сохраненную карту
func (c *Client) DetachPaymentMethod(ctx context.Context, sess session.Session, userID, paymentMethodID string) error {
	_, err := c.call(ctx, sess, ProcDetachPaymentMethod, detachPaymentMethodRequest{
		UserID:          userID,
		PaymentMethodID: paymentMethodID,
	})
	return err
}

// call выполняет вызов процедуры и возвращает поле result как объект.
// Ошибки приложения внутри result ({"error": "..."} или {"success": false, "message": "..."})
// превращаются в *ServerError.
func (c *Client) call(ctx context.Context, sess session.Session, procedure string, payload interface{}) (result map[string]interface{}, err error) {
	start := time.Now()
	defer func() {
		if c.metrics != nil {
			c.metrics.ObserveRemoteCall(procedure, outcome(err), time.Since(start))
		}
	}()

	body, err := json.Marshal(callRequest{Data: payload})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode %s payload: %v", ErrInternal, procedure, err)
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, procedure)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if sess.IDToken != "" {
		req.Header.Set("Authorization", "Bearer "+sess.IDToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("%s: request failed: %v", procedure, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	var envelope callResponse
	decodeErr := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&envelope)

	// Обработка статус-кодов
	switch {
	case resp.StatusCode == http.StatusOK:
		// Продолжаем обработку
	case envelope.Error != nil:
		return nil, c.gatewayError(procedure, resp.StatusCode, envelope.Error)
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, session.ErrNotAuthenticated
	default:
		return nil, fmt.Errorf("%w: %s: unexpected status code %d", ErrInvalidResponse, procedure, resp.StatusCode)
	}

	if decodeErr != nil {
		return nil, fmt.Errorf("%w: %s: failed to decode response: %v", ErrInvalidResponse, procedure, decodeErr)
	}
	if envelope.Error != nil {
		return nil, c.gatewayError(procedure, resp.StatusCode, envelope.Error)
	}

	result = map[string]interface{}{}
	if len(envelope.Result) > 0 && string(envelope.Result) != "null" {
		if err := json.Unmarshal(envelope.Result, &result); err != nil {
			// ack-процедуры могут вернуть скаляр (true, "ok")
			var scalar interface{}
			if json.Unmarshal(envelope.Result, &scalar) != nil {
				return nil, fmt.Errorf("%w: %s: result is not JSON: %v", ErrInvalidResponse, procedure, err)
			}
			return map[string]interface{}{}, nil
		}
	}

	if appErr := applicationError(procedure, result); appErr != nil {
		c.log.Warn("%s: server rejected request: %s", procedure, appErr.Message)
		return nil, appErr
	}

	return result, nil
}

func (c *Client) gatewayError(procedure string, status int, e *callError) error {
	if e.Status == "UNAUTHENTICATED" || status == http.StatusUnauthorized {
		return session.ErrNotAuthenticated
	}
	c.log.Warn("%s: gateway error status=%d code=%s: %s", procedure, status, e.Status, e.Message)
	return &ServerError{Procedure: procedure, Status: e.Status, Message: truncate(e.Message)}
}

func applicationError(procedure string, result map[string]interface{}) *ServerError {
	if msg := stringValue(result, "error"); msg != "" {
		return &ServerError{Procedure: procedure, Message: msg}
	}
	if nested, ok := result["error"].(map[string]interface{}); ok {
		if msg := stringValue(nested, "message"); msg != "" {
			return &ServerError{Procedure: procedure, Message: msg}
		}
	}
	if success, ok := result["success"].(bool); ok && !success {
		msg := stringValue(result, "message")
		if msg == "" {
			msg = "request was rejected"
		}
		return &ServerError{Procedure: procedure, Message: msg}
	}
	return nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrServer):
		return "server_error"
	case errors.Is(err, ErrInvalidResponse):
		return "invalid_response"
	case errors.Is(err, session.ErrNotAuthenticated):
		return "unauthenticated"
	default:
		return "transport_error"
	}
}

func stringValue(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func truncate(s string) string {
	if len(s) > maxErrorBody {
		return s[:maxErrorBody]
	}
	return s
}
