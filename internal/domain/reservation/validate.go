package reservation

import (
	"context"
	"time"

	"github.com/empresatech/resource-booking/internal/httperr"
)

// Request é o pedido de reserva como chega da camada HTTP, antes de qualquer
// consulta de conflito. Horários vazios são permitidos aqui; a ordenação só é
// checada quando ambos vieram.
type Request struct {
	UserID     uint
	ResourceID uint
	Date       time.Time
	TimeStart  string
	TimeEnd    string
}

// Validate rejeita pedidos estruturalmente inválidos. Campos obrigatórios são
// checados na ordem colaborador → recurso → data e a primeira falha encerra.
// Sem efeitos colaterais: as sondas de existência não carregam a entidade.
func Validate(ctx context.Context, repo Repository, req Request) error {
	if req.UserID == 0 {
		return httperr.Validation("collaborator is required")
	}
	if req.ResourceID == 0 {
		return httperr.Validation("resource is required")
	}
	if req.Date.IsZero() {
		return httperr.Validation("date is required")
	}

	ok, err := repo.UserExists(ctx, req.UserID)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.Validation("user not found")
	}

	ok, err = repo.ResourceExists(ctx, req.ResourceID)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.Validation("resource not found")
	}

	if req.TimeStart != "" && req.TimeEnd != "" {
		start, err := ParseClock(req.TimeStart)
		if err != nil {
			return httperr.Validation("invalid start time")
		}
		end, err := ParseClock(req.TimeEnd)
		if err != nil {
			return httperr.Validation("invalid end time")
		}
		if start >= end {
			return httperr.Validation("start time must precede end time")
		}
	}

	return nil
}
