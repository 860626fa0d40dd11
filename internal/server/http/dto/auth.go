package dto

// RegisterRequest carries registration payload for a trading account.
type RegisterRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
	Company  string `json:"company" binding:"required"`
	Role     string `json:"role" binding:"required"`
}

// LoginRequest carries authentication payload.
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}
