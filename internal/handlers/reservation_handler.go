package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/empresatech/resource-booking/internal/config"
	domain "github.com/empresatech/resource-booking/internal/domain/reservation"
	"github.com/empresatech/resource-booking/internal/dto"
	"github.com/empresatech/resource-booking/internal/httperr"
	"github.com/empresatech/resource-booking/internal/httpresp"
	"github.com/empresatech/resource-booking/internal/middleware"
	"github.com/empresatech/resource-booking/internal/models"
	ucReservation "github.com/empresatech/resource-booking/internal/usecase/reservation"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	db     *gorm.DB
	config *config.Config

	createUC       *ucReservation.CreateReservation
	updateUC       *ucReservation.UpdateReservation
	cancelUC       *ucReservation.CancelReservation
	listUC         *ucReservation.ListReservations
	availabilityUC *ucReservation.GetAvailability
}

func NewReservationHandler(
	db *gorm.DB,
	cfg *config.Config,
	createUC *ucReservation.CreateReservation,
	updateUC *ucReservation.UpdateReservation,
	cancelUC *ucReservation.CancelReservation,
	listUC *ucReservation.ListReservations,
	availabilityUC *ucReservation.GetAvailability,
) *ReservationHandler {
	return &ReservationHandler{
		db:             db,
		config:         cfg,
		createUC:       createUC,
		updateUC:       updateUC,
		cancelUC:       cancelUC,
		listUC:         listUC,
		availabilityUC: availabilityUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReservationRequest struct {
	ResourceID uint   `json:"resource_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	TimeStart  string `json:"time_start" binding:"required"`
	TimeEnd    string `json:"time_end" binding:"required"`
}

type UpdateReservationRequest struct {
	Date      string `json:"date" binding:"required"`
	TimeStart string `json:"time_start" binding:"required"`
	TimeEnd   string `json:"time_end" binding:"required"`
}

type CancelReservationRequest struct {
	Reason string `json:"reason"`
}

// ======================================================
// CREATE
// ======================================================

func (h *ReservationHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	date, err := parseDate(h.config, req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	created, err := h.createUC.Execute(c.Request.Context(), ucReservation.CreateReservationInput{
		UserID:     userID,
		ResourceID: req.ResourceID,
		Date:       date,
		TimeStart:  req.TimeStart,
		TimeEnd:    req.TimeEnd,
	})
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.Created(c, created)
}

// ======================================================
// LIST / GET
// ======================================================

func (h *ReservationHandler) List(c *gin.Context) {
	var resourceID *uint
	if raw := c.Query("resource_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_resource_id", "Recurso inválido.")
			return
		}
		v := uint(id)
		resourceID = &v
	}

	out, err := h.listUC.Execute(c.Request.Context(), resourceID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_reservations", "Erro ao listar reservas.")
		return
	}

	httpresp.List(c, out)
}

func (h *ReservationHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var r models.Reservation
	if err := h.db.
		Preload("User").
		Preload("Resource").
		First(&r, id).Error; err != nil {
		httperr.NotFound(c, "reservation_not_found", "Reserva não encontrada.")
		return
	}

	httpresp.OK(c, dto.FromModel(&r))
}

// ======================================================
// UPDATE
// ======================================================

func (h *ReservationHandler) Update(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	date, err := parseDate(h.config, req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	updated, err := h.updateUC.Execute(c.Request.Context(), ucReservation.UpdateReservationInput{
		ReservationID: uint(id),
		Date:          date,
		TimeStart:     req.TimeStart,
		TimeEnd:       req.TimeEnd,
	})
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.OK(c, updated)
}

// ======================================================
// CANCEL
// ======================================================

func (h *ReservationHandler) Cancel(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req CancelReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	cancelled, err := h.cancelUC.Execute(c.Request.Context(), uint(id), req.Reason)
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.OK(c, cancelled)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *ReservationHandler) Availability(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := parseDate(h.config, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slotMinutes := 60
	if raw := c.Query("slot_minutes"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_slot_minutes", "Duração de bloco inválida.")
			return
		}
		slotMinutes = v
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), domain.AvailabilityInput{
		ResourceID:  uint(id),
		Date:        date,
		SlotMinutes: slotMinutes,
	})
	if err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	httpresp.List(c, slots)
}
