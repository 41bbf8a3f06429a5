package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignaciosolar/TuBarberiaAPI/internal/models"
)

func TestCancel(t *testing.T) {
	now := time.Date(2026, 6, 1, 15, 0, 0, 0, time.UTC)

	t.Run("Active To Cancelled", func(t *testing.T) {
		r := &models.Reservation{Status: string(StatusActive)}

		changed := Cancel(r, now)
		assert.True(t, changed)
		assert.Equal(t, string(StatusCancelled), r.Status)
		require.NotNil(t, r.CancelledAt)
		assert.Equal(t, now, *r.CancelledAt)
	})

	t.Run("Second Cancel Is A No Op", func(t *testing.T) {
		r := &models.Reservation{Status: string(StatusActive)}

		require.True(t, Cancel(r, now))
		first := *r.CancelledAt

		later := now.Add(time.Hour)
		assert.False(t, Cancel(r, later))
		assert.Equal(t, first, *r.CancelledAt, "timestamp must not move on repeat cancel")
	})
}

func TestIsActive(t *testing.T) {
	assert.True(t, IsActive(&models.Reservation{Status: "active"}))
	assert.False(t, IsActive(&models.Reservation{Status: "cancelled"}))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusActive, InitialStatus())
}
