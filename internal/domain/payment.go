package domain

// PaymentMethod is a saved card returned by the payment processor
type PaymentMethod struct {
	ID       string
	Brand    string
	Last4    string
	ExpMonth int
	ExpYear  int
}

// PaymentOutcome is what the payment sheet reported back to the client
type PaymentOutcome string

const (
	PaymentCompleted PaymentOutcome = "completed"
	PaymentCanceled  PaymentOutcome = "cancelled"
	PaymentFailed    PaymentOutcome = "failed"
)

// IsValid returns true for one of the three known outcomes
func (o PaymentOutcome) IsValid() bool {
	return o == PaymentCompleted || o == PaymentCanceled || o == PaymentFailed
}
