package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/empresatech/resource-booking/internal/config"
	domain "github.com/empresatech/resource-booking/internal/domain/reservation"
	"github.com/empresatech/resource-booking/internal/httperr"
	"github.com/empresatech/resource-booking/internal/httpresp"
	"github.com/empresatech/resource-booking/internal/middleware"
	"github.com/empresatech/resource-booking/internal/models"
	"github.com/empresatech/resource-booking/internal/storage"
	ucReservation "github.com/empresatech/resource-booking/internal/usecase/reservation"
)

type ResourceHandler struct {
	db       *gorm.DB
	config   *config.Config
	photos   *storage.Uploader
	deleteUC *ucReservation.DeleteResource
}

func NewResourceHandler(
	db *gorm.DB,
	cfg *config.Config,
	photos *storage.Uploader,
	deleteUC *ucReservation.DeleteResource,
) *ResourceHandler {
	return &ResourceHandler{
		db:       db,
		config:   cfg,
		photos:   photos,
		deleteUC: deleteUC,
	}
}

// --------- Requests ---------

type ResourceRequest struct {
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`

	DateFrom string `json:"date_from" binding:"required"`
	DateTo   string `json:"date_to" binding:"required"`
	TimeFrom string `json:"time_from" binding:"required"`
	TimeTo   string `json:"time_to" binding:"required"`

	Weekdays []string `json:"weekdays"`
}

// aplica o request validado sobre o modelo; devolve mensagem de erro vazia
// quando tudo ok
func (h *ResourceHandler) applyRequest(res *models.Resource, req *ResourceRequest) (string, string) {
	dateFrom, err := parseDate(h.config, req.DateFrom)
	if err != nil {
		return "invalid_date_from", "Data inicial inválida."
	}
	dateTo, err := parseDate(h.config, req.DateTo)
	if err != nil {
		return "invalid_date_to", "Data final inválida."
	}
	if dateFrom.After(dateTo) {
		return "invalid_date_window", "Data inicial não pode ser posterior à data final."
	}

	timeFrom, err := domain.ParseClock(req.TimeFrom)
	if err != nil {
		return "invalid_time_from", "Hora inicial inválida."
	}
	timeTo, err := domain.ParseClock(req.TimeTo)
	if err != nil {
		return "invalid_time_to", "Hora final inválida."
	}
	if timeFrom >= timeTo {
		return "invalid_time_window", "Hora inicial deve ser anterior à hora final."
	}

	for _, day := range req.Weekdays {
		if !domain.IsValidWeekday(day) {
			return "invalid_weekday", "Dia da semana inválido: " + day
		}
	}

	res.Description = req.Description
	res.Category = req.Category
	res.DateFrom = domain.DateOnly(dateFrom)
	res.DateTo = domain.DateOnly(dateTo)
	res.TimeFrom = req.TimeFrom
	res.TimeTo = req.TimeTo
	res.Weekdays = domain.FormatWeekdaySet(req.Weekdays)

	return "", ""
}

// --------- Handlers ---------

func (h *ResourceHandler) List(c *gin.Context) {
	category := c.Query("category")

	q := h.db.Model(&models.Resource{})
	if category != "" {
		q = q.Where("LOWER(category) = LOWER(?)", category)
	}

	var resources []models.Resource
	if err := q.Order("id ASC").Find(&resources).Error; err != nil {
		httperr.Internal(c, "failed_to_list_resources", "Erro ao listar recursos.")
		return
	}

	httpresp.List(c, resources)
}

func (h *ResourceHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var res models.Resource
	if err := h.db.First(&res, id).Error; err != nil {
		httperr.NotFound(c, "resource_not_found", "Recurso não encontrado.")
		return
	}

	httpresp.OK(c, res)
}

func (h *ResourceHandler) Create(c *gin.Context) {
	var req ResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var res models.Resource
	if code, msg := h.applyRequest(&res, &req); code != "" {
		httperr.BadRequest(c, code, msg)
		return
	}

	if err := h.db.Create(&res).Error; err != nil {
		httperr.Internal(c, "failed_to_create_resource", "Erro ao criar recurso.")
		return
	}

	httpresp.Created(c, res)
}

func (h *ResourceHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var res models.Resource
	if err := h.db.First(&res, id).Error; err != nil {
		httperr.NotFound(c, "resource_not_found", "Recurso não encontrado.")
		return
	}

	var req ResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if code, msg := h.applyRequest(&res, &req); code != "" {
		httperr.BadRequest(c, code, msg)
		return
	}

	if err := h.db.Save(&res).Error; err != nil {
		httperr.Internal(c, "failed_to_update_resource", "Erro ao atualizar recurso.")
		return
	}

	httpresp.OK(c, res)
}

func (h *ResourceHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), actorID, uint(id)); err != nil {
		httperr.WriteDomain(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ResourceHandler) UploadPhoto(c *gin.Context) {
	if h.photos == nil {
		httperr.Internal(c, "photo_storage_disabled", "Armazenamento de fotos não configurado.")
		return
	}

	id := c.Param("id")

	var res models.Resource
	if err := h.db.First(&res, id).Error; err != nil {
		httperr.NotFound(c, "resource_not_found", "Recurso não encontrado.")
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "Arquivo de foto obrigatório.")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_photo", "Erro ao ler a foto.")
		return
	}
	defer src.Close()

	url, err := h.photos.UploadResourcePhoto(c.Request.Context(), src)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_photo", "Erro ao enviar a foto.")
		return
	}

	res.PhotoURL = url
	if err := h.db.Save(&res).Error; err != nil {
		httperr.Internal(c, "failed_to_update_resource", "Erro ao atualizar recurso.")
		return
	}

	httpresp.OK(c, res)
}
