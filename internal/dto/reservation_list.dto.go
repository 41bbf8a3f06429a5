package dto

import (
	"time"

	"github.com/ignaciosolar/TuBarberiaAPI/internal/models"
)

// ReservationListItem is the agenda row shown to a barber: the service
// name resolved, times rendered in the shop's civil time.
type ReservationListItem struct {
	ID          uint   `json:"id"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`
	ServiceName string `json:"service_name"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Status      string `json:"status"`
}

func NewReservationListItem(r *models.Reservation, loc *time.Location) ReservationListItem {
	return ReservationListItem{
		ID:          r.ID,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		ServiceName: r.BarberService.Service.Name,
		StartTime:   r.StartTime.In(loc).Format("15:04"),
		EndTime:     r.EndTime.In(loc).Format("15:04"),
		Status:      r.Status,
	}
}
