package models

// UserProfile mirrors the payload of the who-am-I endpoint. It is fetched
// fresh per protected screen and never treated as authoritative once cached.
type UserProfile struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone"`
	Name     string   `json:"name"`
	Surname  string   `json:"surname"`
	Roles    []string `json:"roles"`
	Patient  *Patient `json:"patient,omitempty"`
	Doctor   *Doctor  `json:"doctor,omitempty"`
}

type Patient struct {
	ID                      int64  `json:"id"`
	Pesel                   string `json:"pesel"`
	SmsNotificationsEnabled bool   `json:"smsNotificationsEnabled"`
}

type Doctor struct {
	ID          int64  `json:"id"`
	JobIdNumber string `json:"jobIdNumber"`
	UserID      int64  `json:"userId"`
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Phone       string `json:"phone"`
}

func (p *UserProfile) HasRole(role string) bool {
	for _, r := range p.Roles {
		if r == role {
			return true
		}
	}
	return false
}
