package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	infraRepo "github.com/ignaciosolar/TuBarberiaAPI/internal/infra/repository"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/middleware"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/models"
)

func setupScheduleRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ScheduleEntry{}))

	h := NewScheduleHandler(infraRepo.NewBookingGormRepository(db))

	r := gin.New()
	r.POST("/api/schedule", func(c *gin.Context) {
		// stand-in for the auth middleware
		c.Set(middleware.ContextUserID, uint(1))
		c.Set(middleware.ContextBarberShopID, uint(1))
	}, h.Replace)
	r.GET("/api/schedule/:barberId", h.Get)

	return r, db
}

func postSchedule(r *gin.Engine, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/schedule", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestScheduleReplace(t *testing.T) {
	t.Run("Replaces The Week", func(t *testing.T) {
		r, db := setupScheduleRouter(t)

		w := postSchedule(r, gin.H{"entries": []gin.H{
			{"weekday": 1, "start_time": "09:00", "end_time": "12:00"},
			{"weekday": 1, "start_time": "14:00", "end_time": "18:00"},
		}})
		assert.Equal(t, http.StatusOK, w.Code)

		var count int64
		db.Model(&models.ScheduleEntry{}).Count(&count)
		assert.Equal(t, int64(2), count)

		// A second replace drops the previous entries.
		w = postSchedule(r, gin.H{"entries": []gin.H{
			{"weekday": 2, "start_time": "10:00", "end_time": "13:00"},
		}})
		assert.Equal(t, http.StatusOK, w.Code)

		db.Model(&models.ScheduleEntry{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Rejects Inverted Window Naming The Day", func(t *testing.T) {
		r, _ := setupScheduleRouter(t)

		w := postSchedule(r, gin.H{"entries": []gin.H{
			{"weekday": 5, "start_time": "18:00", "end_time": "09:00"},
		}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "viernes")
	})

	t.Run("Rejects Malformed Time", func(t *testing.T) {
		r, _ := setupScheduleRouter(t)

		w := postSchedule(r, gin.H{"entries": []gin.H{
			{"weekday": 1, "start_time": "9am", "end_time": "12:00"},
		}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Rejects Out Of Range Weekday", func(t *testing.T) {
		r, _ := setupScheduleRouter(t)

		w := postSchedule(r, gin.H{"entries": []gin.H{
			{"weekday": 7, "start_time": "09:00", "end_time": "12:00"},
		}})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestScheduleGetGroupsByWeekday(t *testing.T) {
	r, _ := setupScheduleRouter(t)

	w := postSchedule(r, gin.H{"entries": []gin.H{
		{"weekday": 1, "start_time": "09:00", "end_time": "12:00"},
		{"weekday": 1, "start_time": "14:00", "end_time": "18:00"},
	}})
	require.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/schedule/1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Days []struct {
			Weekday int `json:"weekday"`
			Windows []struct {
				StartTime string `json:"start_time"`
			} `json:"windows"`
		} `json:"days"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Days, 7)

	assert.Len(t, resp.Days[1].Windows, 2)
	assert.Empty(t, resp.Days[2].Windows)
}
