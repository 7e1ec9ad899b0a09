package purchase_credits

import (
	"context"

	"github.com/m04kA/SMC-VolleyballService/internal/session"
	purchaseCredits "github.com/m04kA/SMC-VolleyballService/internal/usecase/purchase_credits"
)

type PurchaseUseCase interface {
	Start(ctx context.Context, sess session.Session, req *purchaseCredits.StartRequest) (*purchaseCredits.StartResponse, error)
	Complete(ctx context.Context, sess session.Session, req *purchaseCredits.CompleteRequest) (*purchaseCredits.CompleteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
