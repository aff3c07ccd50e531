package inbound

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SellerRegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number"`
	Country     string `json:"country"`
}

type RegisterResponse struct{}

func (RegisterResponse) Message() string {
	return "OTP sent to your email. Please verify your account to proceed."
}
