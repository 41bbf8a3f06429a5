package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/ignaciosolar/TuBarberiaAPI/internal/domain/booking"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/httperr"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/models"
)

// Advisory lock classifier for booking serialization. Combined with
// the barber ID it scopes mutual exclusion to a single barber's
// timeline, so unrelated barbers never block each other.
const bookingLockClass = 74_2201

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *BookingGormRepository) GetBarber(
	ctx context.Context,
	barberID uint,
) (*models.User, error) {

	var barber models.User
	if err := r.db.WithContext(ctx).
		Preload("BarberShop").
		First(&barber, barberID).Error; err != nil {
		return nil, err
	}
	return &barber, nil
}

// --------------------------------------------------
// Offering
// --------------------------------------------------

func (r *BookingGormRepository) GetActiveOffering(
	ctx context.Context,
	barberServiceID uint,
	barberID uint,
) (*models.BarberService, error) {

	var offering models.BarberService
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("id = ? AND barber_id = ? AND active = ?", barberServiceID, barberID, true).
		First(&offering).Error; err != nil {
		return nil, err
	}
	return &offering, nil
}

// --------------------------------------------------
// Schedule
// --------------------------------------------------

func (r *BookingGormRepository) ListScheduleEntries(
	ctx context.Context,
	barberID uint,
	weekday int,
) ([]models.ScheduleEntry, error) {

	var entries []models.ScheduleEntry
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND weekday = ?", barberID, weekday).
		Order("start_time ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *BookingGormRepository) ListSchedule(
	ctx context.Context,
	barberID uint,
) ([]models.ScheduleEntry, error) {

	var entries []models.ScheduleEntry
	if err := r.db.WithContext(ctx).
		Where("barber_id = ?", barberID).
		Order("weekday ASC, start_time ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ReplaceSchedule swaps a barber's whole weekly schedule in one
// transaction: delete everything, then insert the new entries.
func (r *BookingGormRepository) ReplaceSchedule(
	ctx context.Context,
	barberID uint,
	entries []models.ScheduleEntry,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("barber_id = ?", barberID).
			Delete(&models.ScheduleEntry{}).Error; err != nil {
			return err
		}

		if len(entries) == 0 {
			return nil
		}
		return tx.Create(&entries).Error
	})
}

// --------------------------------------------------
// Blocks
// --------------------------------------------------

func (r *BookingGormRepository) ListBlocksInRange(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.BlockedTime, error) {

	var blocks []models.BlockedTime
	if err := r.db.WithContext(ctx).
		Where(
			"barber_id = ? AND start_time < ? AND end_time > ?",
			barberID, end, start,
		).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

// --------------------------------------------------
// Reservations (read)
// --------------------------------------------------

func (r *BookingGormRepository) ListActiveReservationsInRange(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Reservation, error) {

	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Select("id", "barber_id", "start_time", "end_time", "status").
		Where(
			"barber_id = ? AND status = ? AND start_time < ? AND end_time > ?",
			barberID, string(domain.StatusActive), end, start,
		).
		Order("start_time ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *BookingGormRepository) ListReservationsForDay(
	ctx context.Context,
	barberID uint,
	start time.Time,
	end time.Time,
) ([]models.Reservation, error) {

	var reservations []models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("BarberService").
		Preload("BarberService.Service").
		Where(
			"barber_id = ? AND status = ? AND start_time >= ? AND start_time < ?",
			barberID, string(domain.StatusActive), start, end,
		).
		Order("start_time ASC").
		Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

func (r *BookingGormRepository) GetReservation(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *BookingGormRepository) GetReservationDetailed(
	ctx context.Context,
	id uint,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Preload("Barber").
		Preload("Barber.BarberShop").
		Preload("BarberService").
		Preload("BarberService.Service").
		First(&res, id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

// --------------------------------------------------
// Reservations (write)
// --------------------------------------------------

// CreateReservationIfFree takes a per-barber advisory lock for the
// duration of the transaction, re-checks both active reservations and
// blocked times against [start, end), and only then inserts. Two
// concurrent requests for the same barber serialize here; the loser of
// the race sees the winner's row and gets slot_unavailable.
func (r *BookingGormRepository) CreateReservationIfFree(
	ctx context.Context,
	res *models.Reservation,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Advisory locks are Postgres-only; sqlite serializes writers
		// on its own, so the re-check below still holds there.
		if tx.Dialector.Name() == "postgres" {
			if err := tx.Exec(
				"SELECT pg_advisory_xact_lock(?, ?)",
				bookingLockClass, int64(res.BarberID),
			).Error; err != nil {
				return err
			}
		}

		var occupied int64
		if err := tx.
			Model(&models.Reservation{}).
			Where(
				"barber_id = ? AND status = ? AND start_time < ? AND end_time > ?",
				res.BarberID, string(domain.StatusActive), res.EndTime, res.StartTime,
			).
			Count(&occupied).Error; err != nil {
			return err
		}

		var blocked int64
		if err := tx.
			Model(&models.BlockedTime{}).
			Where(
				"barber_id = ? AND start_time < ? AND end_time > ?",
				res.BarberID, res.EndTime, res.StartTime,
			).
			Count(&blocked).Error; err != nil {
			return err
		}

		if occupied > 0 || blocked > 0 {
			return httperr.ErrBusiness("slot_unavailable")
		}

		return tx.Create(res).Error
	})
}

func (r *BookingGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Save(res).Error
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
