package models

// Session is the locally persisted browsing context. It is a disposable
// projection of backend state: the token being present does not prove it
// is still valid.
type Session struct {
	Token     string
	TokenType string
	UserID    int64
	PatientID string
	DoctorID  string
	Roles     []string
	Profile   *UserProfile
}

func (s *Session) HasRole(role string) bool {
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}
