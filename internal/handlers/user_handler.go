package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/empresatech/resource-booking/internal/httperr"
	"github.com/empresatech/resource-booking/internal/httpresp"
	"github.com/empresatech/resource-booking/internal/models"
)

type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// --------- Requests ---------

type UpdateUserRequest struct {
	Name         *string `json:"name,omitempty"`
	Email        *string `json:"email,omitempty"`
	Password     *string `json:"password,omitempty"`
	Registration *string `json:"registration,omitempty"`
	BirthDate    *string `json:"birth_date,omitempty"`
}

// --------- Handlers ---------

func (h *UserHandler) List(c *gin.Context) {
	query := strings.ToLower(strings.TrimSpace(c.Query("query")))

	q := h.db.Model(&models.User{})
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var users []models.User
	if err := q.Order("id ASC").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Erro ao listar colaboradores.")
		return
	}

	httpresp.List(c, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Colaborador não encontrado.")
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Colaborador não encontrado.")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))

		var count int64
		h.db.Model(&models.User{}).
			Where("email = ? AND id != ?", email, user.ID).
			Count(&count)
		if count > 0 {
			httperr.BadRequest(c, "email_already_exists", "E-mail já cadastrado.")
			return
		}
		user.Email = email
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "Erro ao atualizar senha.")
			return
		}
		user.PasswordHash = string(hashed)
	}
	if req.Registration != nil {
		user.Registration = *req.Registration
	}
	if req.BirthDate != nil {
		if *req.BirthDate == "" {
			user.BirthDate = nil
		} else {
			birth, err := time.Parse("2006-01-02", *req.BirthDate)
			if err != nil {
				httperr.BadRequest(c, "invalid_birth_date", "Data de nascimento inválida.")
				return
			}
			user.BirthDate = &birth
		}
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Erro ao atualizar colaborador.")
		return
	}

	httpresp.OK(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("id = ?", id).Count(&count)
	if count == 0 {
		httperr.NotFound(c, "user_not_found", "Colaborador não encontrado.")
		return
	}

	var active int64
	h.db.Model(&models.Reservation{}).
		Where("user_id = ? AND cancelled_on IS NULL", id).
		Count(&active)
	if active > 0 {
		httperr.BadRequest(c, "user_has_active_reservations", "Colaborador possui reservas ativas.")
		return
	}

	if err := h.db.Delete(&models.User{}, id).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_user", "Erro ao excluir colaborador.")
		return
	}

	c.Status(http.StatusNoContent)
}
