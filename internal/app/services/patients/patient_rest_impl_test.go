package patients

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"medvisit-client/internal/pkg/constvars"
	"medvisit-client/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientRestClientUpdateSmsNotifications(t *testing.T) {
	ctx := context.Background()

	t.Run("Preference Updated", func(t *testing.T) {
		var gotBody string
		router := chi.NewRouter()
		router.Put("/api/patients/{patientID}/notifications", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "3", chi.URLParam(r, "patientID"))
			body, _ := io.ReadAll(r.Body)
			gotBody = string(body)
			w.WriteHeader(http.StatusNoContent)
		})
		server := httptest.NewServer(router)
		defer server.Close()

		client := NewPatientRestClient(server.URL, server.Client())
		err := client.UpdateSmsNotifications(ctx, "token", 3, true)

		require.NoError(t, err)
		assert.JSONEq(t, `{"smsNotificationsEnabled":true}`, gotBody)
	})

	t.Run("Rejected Token", func(t *testing.T) {
		router := chi.NewRouter()
		router.Put("/api/patients/{patientID}/notifications", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		server := httptest.NewServer(router)
		defer server.Close()

		client := NewPatientRestClient(server.URL, server.Client())
		err := client.UpdateSmsNotifications(ctx, "stale", 3, true)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})
}
