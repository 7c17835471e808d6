package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVisitStartTime(t *testing.T) {
	t.Run("Backend Timestamp Format", func(t *testing.T) {
		visit := &Visit{DateStart: "2026-09-14 10:00:00"}

		start := visit.StartTime()
		assert.Equal(t, time.Date(2026, 9, 14, 10, 0, 0, 0, time.Local), start)
		assert.Equal(t, 10, visit.StartHour())
	})

	t.Run("RFC3339 Fallback", func(t *testing.T) {
		visit := &Visit{DateStart: "2026-09-14T10:00:00Z"}
		assert.False(t, visit.StartTime().IsZero())
	})

	t.Run("Unparseable Timestamp Is Zero", func(t *testing.T) {
		visit := &Visit{DateStart: "soon"}
		assert.True(t, visit.StartTime().IsZero(), "a bad row sorts first instead of failing the list")
	})
}
