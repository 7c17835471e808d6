package responses

// LoginResult is the normalized outcome of the login endpoint. The backend
// answers either with a bare token string or with this JSON envelope; the
// boundary parser in utils hides that inconsistency.
type LoginResult struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
	Token    string   `json:"token"`
	Type     string   `json:"type"`
}

type BackendError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
