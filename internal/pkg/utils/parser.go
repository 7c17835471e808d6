package utils

import (
	"strings"

	"medvisit-client/internal/pkg/constvars"
	"medvisit-client/internal/pkg/dto/responses"
	"medvisit-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v4"
)

// ParseLoginResponse normalizes the login endpoint's two observed body
// shapes: a JSON envelope with a token field, or the bare token as plain
// text. Structured is tried first, raw is the fallback.
func ParseLoginResponse(body []byte) (*responses.LoginResult, error) {
	result := new(responses.LoginResult)
	if err := json.Unmarshal(body, result); err == nil && result.Token != "" {
		if result.Type == "" {
			result.Type = constvars.AuthSchemeBearer
		}
		return result, nil
	}

	raw := strings.TrimSpace(string(body))
	if raw == "" || strings.HasPrefix(raw, "{") {
		return nil, exceptions.ErrEmptyToken(nil)
	}
	return &responses.LoginResult{
		Token: raw,
		Type:  constvars.AuthSchemeBearer,
	}, nil
}

// ParseBackendError extracts the backend's own message from an error body,
// falling back to the supplied HTTP status text.
func ParseBackendError(body []byte, statusText string) string {
	var backendErr responses.BackendError
	if err := json.Unmarshal(body, &backendErr); err == nil {
		if backendErr.Message != "" {
			return backendErr.Message
		}
		if backendErr.Error != "" {
			return backendErr.Error
		}
	}
	return statusText
}

// IsTokenExpired reports whether the bearer token carries an exp claim in
// the past. The signature is not checked here; only the backend can truly
// validate the token, this is a pre-flight to skip a doomed call. Tokens
// that are not JWTs or carry no exp claim are treated as not expired.
func IsTokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	return !claims.VerifyExpiresAt(nowFunc().Unix(), false)
}
