package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	infraRepo "github.com/ignaciosolar/TuBarberiaAPI/internal/infra/repository"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/models"
	ucBooking "github.com/ignaciosolar/TuBarberiaAPI/internal/usecase/booking"
)

func setupReservationRouter(t *testing.T) (*gin.Engine, *gorm.DB, *models.BarberService) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.BarberShop{},
		&models.User{},
		&models.Service{},
		&models.BarberService{},
		&models.BlockedTime{},
		&models.Reservation{},
	))

	shop := models.BarberShop{Name: "Barbería Central", Timezone: "America/Santiago"}
	require.NoError(t, db.Create(&shop).Error)

	barber := models.User{
		BarberShopID: &shop.ID,
		FullName:     "Pedro Soto",
		Email:        "pedro@example.com",
		PasswordHash: "x",
		Role:         "barber",
	}
	require.NoError(t, db.Create(&barber).Error)

	service := models.Service{Name: "Corte clásico"}
	require.NoError(t, db.Create(&service).Error)

	offering := models.BarberService{
		BarberID: barber.ID, ServiceID: service.ID,
		Price: 12000, DurationMin: 30, Active: true,
	}
	require.NoError(t, db.Create(&offering).Error)

	repo := infraRepo.NewBookingGormRepository(db)
	create := ucBooking.NewCreateReservation(repo, nil, nil, nil, nil, nil, zerolog.Nop())
	h := NewReservationHandler(repo, create, nil, nil)

	r := gin.New()
	r.POST("/api/reservations/public", h.CreatePublic)

	return r, db, &offering
}

func postReservation(r *gin.Engine, body any) *httptest.ResponseRecorder {
	b, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/public", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateReservationStartTime(t *testing.T) {
	t.Run("Accepts RFC3339 With Offset", func(t *testing.T) {
		r, db, offering := setupReservationRouter(t)

		w := postReservation(r, gin.H{
			"barber_id":         offering.BarberID,
			"barber_service_id": offering.ID,
			"client_name":       "Juan Pérez",
			"client_phone":      "+56912345678",
			"start_time":        "2026-06-01T10:00:00-04:00",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var res models.Reservation
		require.NoError(t, db.First(&res).Error)
		assert.Equal(t, time.Date(2026, 6, 1, 14, 0, 0, 0, time.UTC), res.StartTime.UTC())
		assert.Equal(t, time.Date(2026, 6, 1, 14, 30, 0, 0, time.UTC), res.EndTime.UTC())
	})

	t.Run("Parses Zone-Less Input On The Shops Clock", func(t *testing.T) {
		r, db, offering := setupReservationRouter(t)

		// June: Santiago is UTC-4.
		w := postReservation(r, gin.H{
			"barber_id":         offering.BarberID,
			"barber_service_id": offering.ID,
			"client_name":       "Juan Pérez",
			"client_phone":      "+56912345678",
			"start_time":        "2026-06-02 09:30",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var res models.Reservation
		require.NoError(t, db.First(&res).Error)
		assert.Equal(t, time.Date(2026, 6, 2, 13, 30, 0, 0, time.UTC), res.StartTime.UTC())
	})

	t.Run("Rejects Malformed Start Time", func(t *testing.T) {
		r, _, offering := setupReservationRouter(t)

		w := postReservation(r, gin.H{
			"barber_id":         offering.BarberID,
			"barber_service_id": offering.ID,
			"client_name":       "Juan Pérez",
			"client_phone":      "+56912345678",
			"start_time":        "mañana a las diez",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_start_time")
	})

	t.Run("Rejects Missing Start Time", func(t *testing.T) {
		r, _, offering := setupReservationRouter(t)

		w := postReservation(r, gin.H{
			"barber_id":         offering.BarberID,
			"barber_service_id": offering.ID,
			"client_name":       "Juan Pérez",
			"client_phone":      "+56912345678",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Second Booking For The Same Slot Conflicts", func(t *testing.T) {
		r, db, offering := setupReservationRouter(t)

		body := gin.H{
			"barber_id":         offering.BarberID,
			"barber_service_id": offering.ID,
			"client_name":       "Juan Pérez",
			"client_phone":      "+56912345678",
			"start_time":        "2026-06-01T10:00:00-04:00",
		}
		require.Equal(t, http.StatusCreated, postReservation(r, body).Code)

		w := postReservation(r, body)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "slot_unavailable")

		var count int64
		db.Model(&models.Reservation{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})
}
