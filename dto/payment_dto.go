package dto

type CreatePaymentIntentDTO struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

// PaymentSuccessDTO is the client callback after the gateway confirms the
// charge. OrderID is the paid booking's bookingPolicyId.
type PaymentSuccessDTO struct {
	OrderID       string  `json:"orderId" binding:"required"`
	Email         string  `json:"email" binding:"required,email"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	TransactionID string  `json:"transactionId"`
	PaymentMethod string  `json:"paymentMethod"`
}
