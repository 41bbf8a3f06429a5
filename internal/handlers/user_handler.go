package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ignaciosolar/TuBarberiaAPI/internal/httperr"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/httpresp"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/middleware"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// ListBarbers returns the barbers of the caller's shop.
func (h *UserHandler) ListBarbers(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextBarberShopID).(uint)

	var barbers []models.User
	if err := h.db.
		Where("barber_shop_id = ?", shopID).
		Order("full_name ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Error al listar los barberos.")
		return
	}

	httpresp.List(c, barbers)
}

// ListBarbersByShop is the public variant used by the booking page.
func (h *UserHandler) ListBarbersByShop(c *gin.Context) {
	shopID, err := strconv.Atoi(c.Param("id"))
	if err != nil || shopID <= 0 {
		httperr.BadRequest(c, "invalid_barbershop_id", "Barbería inválida.")
		return
	}

	var barbers []models.User
	if err := h.db.
		Select("id", "full_name", "barber_shop_id").
		Where("barber_shop_id = ?", shopID).
		Order("full_name ASC").
		Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Error al listar los barberos.")
		return
	}

	httpresp.List(c, barbers)
}
