package config

import (
	"os"
	"path/filepath"

	"medvisit-client/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:      utils.GetEnvString("APP_ENV", "development"),
			Version:  utils.GetEnvString("APP_VERSION", "v1.0"),
			Timezone: utils.GetEnvString("APP_TIMEZONE", "Europe/Warsaw"),
		},
		API: API{
			BaseURL:             utils.GetEnvString("API_BASE_URL", "http://localhost:8080"),
			RequestTimeoutInSec: utils.GetEnvInt("API_REQUEST_TIMEOUT_IN_SEC", 10),
			UseLegacyVisitList:  utils.GetEnvBool("API_USE_LEGACY_VISIT_LIST", false),
			DoctorLookupWorkers: utils.GetEnvInt("API_DOCTOR_LOOKUP_WORKERS", 4),
		},
		Session: Session{
			FilePath: utils.GetEnvString("SESSION_FILE_PATH", defaultSessionFilePath()),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		Booking: Booking{
			ConfirmBeforeReserve: utils.GetEnvBool("BOOKING_CONFIRM_BEFORE_RESERVE", true),
		},
	}
}

func defaultSessionFilePath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "session.json"
	}
	return filepath.Join(configDir, "medvisit", "session.json")
}
