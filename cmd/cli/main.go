package main

import (
	"net/http"
	"os"
	"time"

	"medvisit-client/internal/app/config"
	"medvisit-client/internal/app/contracts"
	"medvisit-client/internal/app/drivers/logger"
	"medvisit-client/internal/app/services/auth"
	"medvisit-client/internal/app/services/doctors"
	"medvisit-client/internal/app/services/patients"
	"medvisit-client/internal/app/services/session"
	"medvisit-client/internal/app/services/visits"
	"medvisit-client/internal/app/views"

	"go.uber.org/zap"
)

type app struct {
	InternalConfig *config.InternalConfig
	Log            *zap.Logger

	AuthUsecase   contracts.AuthUsecase
	BookingView   *views.BookingView
	VisitListView *views.VisitListView
	ProfileView   *views.ProfileView
}

func main() {
	internalConfig := config.NewInternalConfig()
	bootLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		bootLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	log := logger.NewZapLogger(internalConfig)
	defer log.Sync()

	application := bootstrapTheApp(internalConfig, log)

	rootCmd := newRootCmd(application)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func bootstrapTheApp(internalConfig *config.InternalConfig, log *zap.Logger) *app {
	httpClient := &http.Client{}

	// Session
	sessionStore := session.NewFileSessionStore(internalConfig, log)

	// Auth
	authClient := auth.NewAuthRestClient(internalConfig.API.BaseURL, httpClient)
	authUsecase := auth.NewAuthUsecase(sessionStore, authClient, log)

	// Doctors
	doctorClient := doctors.NewDoctorRestClient(internalConfig.API.BaseURL, httpClient)

	// Patients
	patientClient := patients.NewPatientRestClient(internalConfig.API.BaseURL, httpClient)
	profileUsecase := patients.NewProfileUsecase(authUsecase, patientClient, log)

	// Visits
	visitClient := visits.NewVisitRestClient(internalConfig.API.BaseURL, httpClient, internalConfig.API.UseLegacyVisitList)
	visitUsecase := visits.NewVisitUsecase(authUsecase, visitClient, doctorClient, internalConfig, log)

	return &app{
		InternalConfig: internalConfig,
		Log:            log,
		AuthUsecase:    authUsecase,
		BookingView:    views.NewBookingView(internalConfig, authUsecase, visitUsecase, log),
		VisitListView:  views.NewVisitListView(internalConfig, visitUsecase, log),
		ProfileView:    views.NewProfileView(internalConfig, profileUsecase, log),
	}
}
