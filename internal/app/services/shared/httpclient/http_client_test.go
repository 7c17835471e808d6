package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medvisit-client/internal/pkg/constvars"
	"medvisit-client/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSend(t *testing.T) {
	t.Run("Sets JSON And Bearer Headers", func(t *testing.T) {
		var gotContentType, gotAccept, gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotContentType = r.Header.Get(constvars.HeaderContentType)
			gotAccept = r.Header.Get(constvars.HeaderAccept)
			gotAuth = r.Header.Get(constvars.HeaderAuthorization)
		}))
		defer server.Close()

		resp, err := Send(context.Background(), server.Client(), RequestInput{
			Method: constvars.MethodGet,
			URL:    server.URL,
			Token:  "abc",
		})
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, constvars.MIMEApplicationJSON, gotContentType)
		assert.Equal(t, constvars.MIMEApplicationJSON, gotAccept)
		assert.Equal(t, "Bearer abc", gotAuth)
	})

	t.Run("No Authorization Header Without Token", func(t *testing.T) {
		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get(constvars.HeaderAuthorization)
		}))
		defer server.Close()

		resp, err := Send(context.Background(), server.Client(), RequestInput{
			Method: constvars.MethodGet,
			URL:    server.URL,
		})
		require.NoError(t, err)
		resp.Body.Close()

		assert.Empty(t, gotAuth)
	})

	t.Run("Deadline Maps To The Long Respond Error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer server.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		resp, err := Send(ctx, server.Client(), RequestInput{
			Method: constvars.MethodGet,
			URL:    server.URL,
		})

		assert.Nil(t, resp)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusGatewayTimeout, customErr.StatusCode)
	})

	t.Run("Connection Failure Maps To Unreachable", func(t *testing.T) {
		resp, err := Send(context.Background(), http.DefaultClient, RequestInput{
			Method: constvars.MethodGet,
			URL:    "http://127.0.0.1:1",
		})

		assert.Nil(t, resp)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusServiceUnavailable, customErr.StatusCode)
	})
}

func TestDecodeError(t *testing.T) {
	responseWith := func(t *testing.T, status int, body string) *http.Response {
		t.Helper()
		recorder := httptest.NewRecorder()
		recorder.WriteHeader(status)
		recorder.WriteString(body)
		return recorder.Result()
	}

	t.Run("Unauthorized Maps To Session Expired", func(t *testing.T) {
		err := DecodeError(responseWith(t, http.StatusUnauthorized, ""), "/api/auth/me")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientSessionExpired, customErr.ClientMessage)
	})

	t.Run("Forbidden Maps To Session Expired", func(t *testing.T) {
		err := DecodeError(responseWith(t, http.StatusForbidden, ""), "/api/auth/me")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("Other Statuses Carry The Backend Message", func(t *testing.T) {
		err := DecodeError(responseWith(t, http.StatusConflict, `{"message":"slot already booked"}`), "/api/visits/reservation")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, "slot already booked", customErr.ClientMessage)
	})

	t.Run("Empty Body Falls Back To Status Text", func(t *testing.T) {
		err := DecodeError(responseWith(t, http.StatusInternalServerError, ""), "/api/visits/list")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), customErr.ClientMessage)
	})
}
