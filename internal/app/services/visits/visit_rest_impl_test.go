package visits

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"medvisit-client/internal/pkg/constvars"
	"medvisit-client/internal/pkg/dto/requests"
	"medvisit-client/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitRestClientListVisitsByDate(t *testing.T) {
	ctx := context.Background()

	t.Run("Visits Of A Day", func(t *testing.T) {
		var gotBody string
		router := chi.NewRouter()
		router.Post(constvars.EndpointVisitsList, func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			gotBody = string(body)
			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			w.Write([]byte(`{"visits":[
				{"visitId":11,"doctorId":1,"patientId":3,"dateStart":"2026-09-14 10:00:00","dateEnd":"2026-09-14 11:00:00"},
				{"visitId":12,"doctorId":2,"patientId":8,"dateStart":"2026-09-14 12:00:00","dateEnd":"2026-09-14 13:00:00"}
			]}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		client := NewVisitRestClient(server.URL, server.Client(), false)
		visits, err := client.ListVisitsByDate(ctx, "token", "2026-09-14")

		require.NoError(t, err)
		require.Len(t, visits, 2)
		assert.Equal(t, int64(11), visits[0].VisitID)
		assert.Equal(t, int64(1), visits[0].DoctorID)
		assert.JSONEq(t, `{"date":"2026-09-14"}`, gotBody)
	})

	t.Run("Not Found Means Empty Day", func(t *testing.T) {
		router := chi.NewRouter()
		router.Post(constvars.EndpointVisitsList, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		server := httptest.NewServer(router)
		defer server.Close()

		client := NewVisitRestClient(server.URL, server.Client(), false)
		visits, err := client.ListVisitsByDate(ctx, "token", "2026-09-14")

		require.NoError(t, err, "404 on the day listing is data, not a failure")
		assert.Empty(t, visits)
		assert.NotNil(t, visits)
	})

	t.Run("Server Error Is A Failure", func(t *testing.T) {
		router := chi.NewRouter()
		router.Post(constvars.EndpointVisitsList, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		server := httptest.NewServer(router)
		defer server.Close()

		client := NewVisitRestClient(server.URL, server.Client(), false)
		visits, err := client.ListVisitsByDate(ctx, "token", "2026-09-14")

		assert.Nil(t, visits)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
	})

	t.Run("Legacy List Path", func(t *testing.T) {
		router := chi.NewRouter()
		router.Post(constvars.EndpointVisitsListLegacy, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			w.Write([]byte(`{"visits":[]}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		client := NewVisitRestClient(server.URL, server.Client(), true)
		visits, err := client.ListVisitsByDate(ctx, "token", "2026-09-14")

		require.NoError(t, err)
		assert.Empty(t, visits)
	})

	t.Run("Null Visits Field Decodes To Empty List", func(t *testing.T) {
		router := chi.NewRouter()
		router.Post(constvars.EndpointVisitsList, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			w.Write([]byte(`{"visits":null}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		client := NewVisitRestClient(server.URL, server.Client(), false)
		visits, err := client.ListVisitsByDate(ctx, "token", "2026-09-14")

		require.NoError(t, err)
		assert.NotNil(t, visits)
		assert.Empty(t, visits)
	})
}

func TestVisitRestClientListVisitsByUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Patient Listing", func(t *testing.T) {
		router := chi.NewRouter()
		router.Get("/api/visits/list/patient/{patientID}", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "3", chi.URLParam(r, "patientID"))
			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			w.Write([]byte(`{"visits":[{"visitId":11,"doctorId":1,"dateStart":"2026-09-14 10:00:00","dateEnd":"2026-09-14 11:00:00"}]}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		client := NewVisitRestClient(server.URL, server.Client(), false)
		visits, err := client.ListVisitsByPatient(ctx, "token", 3)

		require.NoError(t, err)
		require.Len(t, visits, 1)
		assert.Equal(t, int64(11), visits[0].VisitID)
	})

	t.Run("Doctor Listing", func(t *testing.T) {
		router := chi.NewRouter()
		router.Get("/api/visits/list/doctor/{doctorID}", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "4", chi.URLParam(r, "doctorID"))
			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			w.Write([]byte(`{"visits":[]}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		client := NewVisitRestClient(server.URL, server.Client(), false)
		visits, err := client.ListVisitsByDoctor(ctx, "token", 4)

		require.NoError(t, err)
		assert.Empty(t, visits)
	})
}

func TestVisitRestClientCreateReservation(t *testing.T) {
	ctx := context.Background()
	request := &requests.VisitReservation{
		PatientID: "3",
		DoctorID:  "1",
		DateStart: "2026-09-14 14:00:00",
		DateEnd:   "2026-09-14 15:00:00",
	}

	t.Run("Created", func(t *testing.T) {
		var gotBody string
		router := chi.NewRouter()
		router.Post(constvars.EndpointVisitReservation, func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			gotBody = string(body)
			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"visitId":99,"doctorId":1,"patientId":3,"dateStart":"2026-09-14 14:00:00","dateEnd":"2026-09-14 15:00:00"}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		client := NewVisitRestClient(server.URL, server.Client(), false)
		reservation, err := client.CreateReservation(ctx, "token", request)

		require.NoError(t, err)
		assert.Equal(t, int64(99), reservation.VisitID)
		assert.JSONEq(t,
			`{"patientId":"3","doctorId":"1","dateStart":"2026-09-14 14:00:00","dateEnd":"2026-09-14 15:00:00"}`,
			gotBody, "ids travel as strings on the wire")
	})

	t.Run("Slot Conflict", func(t *testing.T) {
		router := chi.NewRouter()
		router.Post(constvars.EndpointVisitReservation, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"message":"slot already booked"}`))
		})
		server := httptest.NewServer(router)
		defer server.Close()

		client := NewVisitRestClient(server.URL, server.Client(), false)
		reservation, err := client.CreateReservation(ctx, "token", request)

		assert.Nil(t, reservation)
		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		assert.Equal(t, "slot already booked", customErr.ClientMessage)
	})
}

func TestVisitRestClientCancelVisit(t *testing.T) {
	ctx := context.Background()

	t.Run("No Content", func(t *testing.T) {
		router := chi.NewRouter()
		router.Delete("/api/visit/{visitID}", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "11", chi.URLParam(r, "visitID"))
			w.WriteHeader(http.StatusNoContent)
		})
		server := httptest.NewServer(router)
		defer server.Close()

		client := NewVisitRestClient(server.URL, server.Client(), false)
		assert.NoError(t, client.CancelVisit(ctx, "token", 11))
	})

	t.Run("Unknown Visit", func(t *testing.T) {
		router := chi.NewRouter()
		router.Delete("/api/visit/{visitID}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})
		server := httptest.NewServer(router)
		defer server.Close()

		client := NewVisitRestClient(server.URL, server.Client(), false)
		err := client.CancelVisit(ctx, "token", 999)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode, "cancelling an unknown visit is a real error")
	})
}
