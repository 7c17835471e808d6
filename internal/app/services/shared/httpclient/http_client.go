package httpclient

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"medvisit-client/internal/pkg/constvars"
	"medvisit-client/internal/pkg/exceptions"
	"medvisit-client/internal/pkg/utils"

	"github.com/goccy/go-json"
)

// RequestInput describes one backend call. Token is optional; when set it
// is sent as a bearer Authorization header.
type RequestInput struct {
	Method string
	URL    string
	Token  string
	Body   interface{}
}

// Send issues the request and returns the raw response. Transport-level
// failures are mapped to the connectivity error class; a context deadline
// becomes the distinct long-respond error so callers can tell "server
// rejected" from "server unreachable".
func Send(ctx context.Context, client *http.Client, input RequestInput) (*http.Response, error) {
	var bodyReader io.Reader
	if input.Body != nil {
		requestJSON, err := json.Marshal(input.Body)
		if err != nil {
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		bodyReader = bytes.NewBuffer(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, input.Method, input.URL, bodyReader)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)
	if input.Token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthSchemeBearer+" "+input.Token)
	}

	resp, err := client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	return resp, nil
}

// DecodeError turns a non-2xx response into a CustomError. Authorization
// failures map to the session-expired class; everything else surfaces the
// backend's own message when the body carries one.
func DecodeError(resp *http.Response, endpoint string) error {
	bodyBytes, _ := io.ReadAll(resp.Body)

	if resp.StatusCode == constvars.StatusUnauthorized || resp.StatusCode == constvars.StatusForbidden {
		return exceptions.ErrTokenRejected(nil)
	}
	clientMessage := utils.ParseBackendError(bodyBytes, http.StatusText(resp.StatusCode))
	return exceptions.ErrBackendRejected(resp.StatusCode, clientMessage, endpoint)
}
