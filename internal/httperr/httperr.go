package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// WriteDomain mapeia um DomainError para o status HTTP correspondente.
// Erros não classificados viram 500 genérico.
func WriteDomain(c *gin.Context, err error) {
	de, ok := AsDomain(err)
	if !ok {
		Internal(c, "internal_error", "Erro interno.")
		return
	}

	switch de.Kind {
	case KindValidation:
		Write(c, http.StatusBadRequest, string(de.Kind), de.Message)
	case KindNotFound:
		Write(c, http.StatusNotFound, string(de.Kind), de.Message)
	case KindConflict:
		Write(c, http.StatusConflict, string(de.Kind), de.Message)
	case KindAvailability, KindStateRule:
		Write(c, http.StatusUnprocessableEntity, string(de.Kind), de.Message)
	default:
		Internal(c, "internal_error", "Erro interno.")
	}
}
