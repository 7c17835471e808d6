package session

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"medvisit-client/internal/app/config"
	"medvisit-client/internal/app/contracts"
	"medvisit-client/internal/app/models"
	"medvisit-client/internal/pkg/constvars"
	"medvisit-client/internal/pkg/exceptions"
	"medvisit-client/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// fileSessionStore keeps the session in a JSON file, the durable-storage
// stand-in for the browser's local storage. Writes go through a temp file
// and a rename so a crash never leaves a half-written session behind.
type fileSessionStore struct {
	FilePath string
	mu       sync.Mutex
	Log      *zap.Logger
}

func NewFileSessionStore(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.SessionStore {
	return &fileSessionStore{
		FilePath: internalConfig.Session.FilePath,
		Log:      logger,
	}
}

func (s *fileSessionStore) Set(ctx context.Context, session *models.Session) error {
	requestID := utils.RequestIDFromContext(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	userJSON, err := json.Marshal(session.Profile)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	v := viper.New()
	v.SetConfigType("json")
	v.Set(constvars.SessionKeyToken, session.Token)
	v.Set(constvars.SessionKeyTokenType, session.TokenType)
	v.Set(constvars.SessionKeyUser, string(userJSON))
	v.Set(constvars.SessionKeyPatientID, session.PatientID)
	v.Set(constvars.SessionKeyDoctorID, session.DoctorID)

	if err := os.MkdirAll(filepath.Dir(s.FilePath), 0o700); err != nil {
		return exceptions.ErrSessionStoreWrite(err)
	}
	// The temp file keeps the .json extension: viper picks the output
	// codec from the extension, not from SetConfigType.
	tmpPath := s.FilePath + ".tmp.json"
	if err := v.WriteConfigAs(tmpPath); err != nil {
		return exceptions.ErrSessionStoreWrite(err)
	}
	if err := os.Rename(tmpPath, s.FilePath); err != nil {
		return exceptions.ErrSessionStoreWrite(err)
	}

	s.Log.Debug("sessionStore.Set persisted session",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}

func (s *fileSessionStore) Get(ctx context.Context) (*models.Session, error) {
	requestID := utils.RequestIDFromContext(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	v := viper.New()
	v.SetConfigType("json")
	v.SetConfigFile(s.FilePath)
	if err := v.ReadInConfig(); err != nil {
		// Missing or unreadable store means "not logged in", never a
		// hard failure.
		if !os.IsNotExist(err) {
			s.Log.Warn("sessionStore.Get could not read session file",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
		return nil, nil
	}

	token := v.GetString(constvars.SessionKeyToken)
	if token == "" {
		return nil, nil
	}

	session := &models.Session{
		Token:     token,
		TokenType: v.GetString(constvars.SessionKeyTokenType),
		PatientID: v.GetString(constvars.SessionKeyPatientID),
		DoctorID:  v.GetString(constvars.SessionKeyDoctorID),
	}

	userJSON := v.GetString(constvars.SessionKeyUser)
	if userJSON != "" {
		profile := new(models.UserProfile)
		if err := json.Unmarshal([]byte(userJSON), profile); err == nil {
			session.Profile = profile
			session.UserID = profile.ID
			session.Roles = profile.Roles
		} else {
			s.Log.Warn("sessionStore.Get dropping corrupt cached profile",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	return session, nil
}

func (s *fileSessionStore) Clear(ctx context.Context) error {
	requestID := utils.RequestIDFromContext(ctx)
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.FilePath); err != nil && !os.IsNotExist(err) {
		return exceptions.ErrSessionStoreWrite(err)
	}
	s.Log.Debug("sessionStore.Clear removed session",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
