package purchase_credits

import "github.com/m04kA/SMC-VolleyballService/internal/domain"

// Имена действий для гейта и метрик
const (
	ActionStart    = "purchase_start"
	ActionComplete = "purchase_complete"
)

// outcomeCancelled результат для метрик, когда пользователь закрыл форму
const outcomeCancelled = "cancelled"

// secretSeparator разделитель в client secret: {paymentIntentId}_secret_{suffix}
const secretSeparator = "_secret_"

// StartRequest модель запроса на создание платежа
type StartRequest struct {
	CreditType domain.CreditType
	TrainerID  string // опционально, сохраняется в метаданных платежа
}

// StartResponse данные для платежной формы
type StartResponse struct {
	ClientSecret string
	CustomerID   string
	CreditType   domain.CreditType
	AmountCents  int64
	Display      string
}

// CompleteRequest результат платежной формы
type CompleteRequest struct {
	Outcome      domain.PaymentOutcome
	ClientSecret string
	// PaymentIntentID можно передать явно, иначе он берется из ClientSecret
	PaymentIntentID string
}

// CompleteResponse результат подтверждения платежа
type CompleteResponse struct {
	PaymentIntentID string
	Credits         []domain.LessonCredit // перечитаны после создания пакета
}
