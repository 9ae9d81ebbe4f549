package dto

type CreateBookingDTO struct {
	BookingPolicyID string `json:"bookingPolicyId" binding:"required"`
	UserEmail       string `json:"userEmail" binding:"required,email"`
	UserName        string `json:"userName"`
	Status          string `json:"status"`
	PaymentStatus   string `json:"paymentStatus"`
}

// UpdateBookingStatusDTO — feedback is only written when present.
type UpdateBookingStatusDTO struct {
	Status   string  `json:"status" binding:"required"`
	Feedback *string `json:"feedback"`
}
