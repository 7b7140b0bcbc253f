package domain

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	}
	return false
}

type Payment struct {
	ID     string        `json:"id"`
	Amount float64       `json:"amount"`
	Status PaymentStatus `json:"status"`
}

type CreatePaymentInput struct {
	Amount float64
	Status PaymentStatus
}
