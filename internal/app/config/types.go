package config

type (
	InternalConfig struct {
		App     App
		API     API
		Session Session
		Logger  Logger
		Booking Booking
	}

	App struct {
		Env      string
		Version  string
		Timezone string
	}

	API struct {
		BaseURL             string
		RequestTimeoutInSec int
		UseLegacyVisitList  bool
		DoctorLookupWorkers int
	}

	Session struct {
		FilePath string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	Booking struct {
		// ConfirmBeforeReserve is the single confirmation policy switch:
		// when set, a reservation needs an explicit confirmation step
		// before the call is made.
		ConfirmBeforeReserve bool
	}
)
