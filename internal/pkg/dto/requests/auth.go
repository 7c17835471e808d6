package requests

type LoginUser struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// RegisterUser carries both role variants; Pesel and JobIdNumber are
// validated conditionally depending on the requested role.
type RegisterUser struct {
	Username    string   `json:"username" validate:"required"`
	Email       string   `json:"email" validate:"required,email"`
	Phone       string   `json:"phone" validate:"required,phone_number"`
	Password    string   `json:"password" validate:"required,min=8"`
	Roles       []string `json:"roles"`
	Pesel       string   `json:"pesel,omitempty"`
	JobIdNumber string   `json:"jobIdNumber,omitempty"`
}
