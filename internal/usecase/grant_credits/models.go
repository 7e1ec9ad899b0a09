package grant_credits

import (
	"time"

	"github.com/m04kA/SMC-VolleyballService/internal/domain"
)

// ActionName имя действия для гейта и метрик
const ActionName = "grant_credits"

// maxGrantCredits верхняя граница количества кредитов в одном начислении
const maxGrantCredits = 100

// Request модель запроса на начисление кредитов
type Request struct {
	UserID       string
	CreditType   domain.CreditType
	TotalCredits int
	// ExpirationDate опционально; по умолчанию дата начисления + 1 год
	ExpirationDate *time.Time
}

// Response созданный пакет кредитов
type Response struct {
	Credit *domain.LessonCredit
}
