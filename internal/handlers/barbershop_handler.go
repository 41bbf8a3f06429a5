package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ignaciosolar/TuBarberiaAPI/internal/httperr"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/media"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/middleware"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/models"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/timezone"
	"github.com/ignaciosolar/TuBarberiaAPI/internal/validators"
)

type BarberShopHandler struct {
	db       *gorm.DB
	uploader *media.S3Uploader
}

func NewBarberShopHandler(db *gorm.DB, uploader *media.S3Uploader) *BarberShopHandler {
	return &BarberShopHandler{db: db, uploader: uploader}
}

// ======================================================
// REQUESTS
// ======================================================

type RegisterBarberShopRequest struct {
	Name    string `json:"name" binding:"required"`
	Street  string `json:"street"`
	Number  string `json:"number"`
	Region  string `json:"region"`
	Commune string `json:"commune"`
	Phone   string `json:"phone"`

	Timezone      string  `json:"timezone"`
	DepositAmount float64 `json:"deposit_amount"`

	AdminFullName string `json:"admin_full_name" binding:"required"`
	AdminEmail    string `json:"admin_email" binding:"required,email"`
	AdminPassword string `json:"admin_password" binding:"required,min=6"`
	AdminPhone    string `json:"admin_phone"`
}

type UpdateBarberShopRequest struct {
	Name          *string  `json:"name"`
	Street        *string  `json:"street"`
	Number        *string  `json:"number"`
	Region        *string  `json:"region"`
	Commune       *string  `json:"commune"`
	Phone         *string  `json:"phone"`
	Timezone      *string  `json:"timezone"`
	DepositAmount *float64 `json:"deposit_amount"`
}

// ======================================================
// REGISTER (shop + admin in one call)
// ======================================================

func (h *BarberShopHandler) Register(c *gin.Context) {
	var req RegisterBarberShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.AdminEmail))
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "El dominio del correo no parece válido.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "El correo ya está registrado.")
		return
	}

	tz := req.Timezone
	if !timezone.IsValid(tz) {
		tz = timezone.DefaultTimezone
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Error al registrar la barbería.")
		return
	}

	var shop models.BarberShop
	var admin models.User

	err = h.db.Transaction(func(tx *gorm.DB) error {
		shop = models.BarberShop{
			Name:          req.Name,
			Street:        req.Street,
			Number:        req.Number,
			Region:        req.Region,
			Commune:       req.Commune,
			Phone:         req.Phone,
			Timezone:      tz,
			DepositAmount: req.DepositAmount,
		}
		if err := tx.Create(&shop).Error; err != nil {
			return err
		}

		admin = models.User{
			BarberShopID: &shop.ID,
			FullName:     req.AdminFullName,
			Email:        email,
			PasswordHash: string(hashed),
			Phone:        req.AdminPhone,
			Role:         "admin",
		}
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}

		shop.AdminUserID = admin.ID
		return tx.Save(&shop).Error
	})
	if err != nil {
		httperr.Internal(c, "failed_to_create_barbershop", "Error al registrar la barbería.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"barbershop": shop,
		"admin":      userPayload(&admin),
	})
}

// ======================================================
// LIST (public)
// ======================================================

func (h *BarberShopHandler) List(c *gin.Context) {
	var shops []models.BarberShop
	if err := h.db.Order("name ASC").Find(&shops).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbershops", "Error al listar las barberías.")
		return
	}

	c.JSON(http.StatusOK, shops)
}

// ======================================================
// UPDATE MINE
// ======================================================

func (h *BarberShopHandler) UpdateMine(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextBarberShopID).(uint)

	var req UpdateBarberShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	var shop models.BarberShop
	if err := h.db.First(&shop, shopID).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbería no encontrada.")
		return
	}

	if req.Name != nil {
		shop.Name = *req.Name
	}
	if req.Street != nil {
		shop.Street = *req.Street
	}
	if req.Number != nil {
		shop.Number = *req.Number
	}
	if req.Region != nil {
		shop.Region = *req.Region
	}
	if req.Commune != nil {
		shop.Commune = *req.Commune
	}
	if req.Phone != nil {
		shop.Phone = *req.Phone
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Zona horaria inválida.")
			return
		}
		shop.Timezone = *req.Timezone
	}
	if req.DepositAmount != nil {
		if *req.DepositAmount < 0 {
			httperr.BadRequest(c, "invalid_deposit_amount", "Monto de abono inválido.")
			return
		}
		shop.DepositAmount = *req.DepositAmount
	}

	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barbershop", "Error al actualizar la barbería.")
		return
	}

	c.JSON(http.StatusOK, shop)
}

// ======================================================
// LOGO UPLOAD
// ======================================================

func (h *BarberShopHandler) UploadLogo(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextBarberShopID).(uint)

	if h.uploader == nil {
		httperr.Internal(c, "uploads_disabled", "La carga de imágenes no está configurada.")
		return
	}

	var shop models.BarberShop
	if err := h.db.First(&shop, shopID).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbería no encontrada.")
		return
	}

	file, _, err := c.Request.FormFile("logo")
	if err != nil {
		httperr.BadRequest(c, "missing_logo_file", "Archivo de logo requerido.")
		return
	}
	defer file.Close()

	processed, err := media.ProcessLogo(file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Imagen inválida (se acepta JPEG o PNG).")
		return
	}

	url, err := h.uploader.UploadLogo(c.Request.Context(), shop.ID, processed)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_logo", "Error al subir el logo.")
		return
	}

	shop.LogoURL = url
	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "failed_to_update_barbershop", "Error al actualizar la barbería.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"logo_url": url})
}
