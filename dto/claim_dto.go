package dto

type CreateClaimDTO struct {
	UserEmail      string  `json:"userEmail" binding:"required,email"`
	PolicyID       string  `json:"policyId"`
	PolicyTitle    string  `json:"policyTitle"`
	Reason         string  `json:"reason" binding:"required"`
	MonthlyPremium float64 `json:"monthlyPremium"`
}
