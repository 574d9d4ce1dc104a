package reservation

import "github.com/empresatech/resource-booking/internal/models"

// Overlaps decide se duas faixas [aStart,aEnd) e [bStart,bEnd) no mesmo
// recurso/data disputam algum instante. Os três casos são enumerados
// separadamente porque a semântica das bordas importa: faixas encostadas
// (existing.end == new.start) NÃO conflitam.
func Overlaps(existingStart, existingEnd, newStart, newEnd int) bool {
	// início da nova cai dentro da existente
	if existingStart <= newStart && existingEnd > newStart {
		return true
	}
	// fim da nova cai dentro da existente
	if existingStart < newEnd && existingEnd >= newEnd {
		return true
	}
	// existente inteira dentro da nova
	if existingStart >= newStart && existingEnd <= newEnd {
		return true
	}
	return false
}

// FilterConflicts aplica o predicado de sobreposição sobre as reservas ativas
// candidatas. excludeID > 0 tira a própria reserva do conjunto (caminho de
// edição, senão ela conflitaria consigo mesma). Consulta pura: quem chama
// decide se a lista não vazia vira erro.
func FilterConflicts(candidates []models.Reservation, newStart, newEnd int, excludeID uint) []models.Reservation {
	var conflicts []models.Reservation
	for _, r := range candidates {
		if excludeID != 0 && r.ID == excludeID {
			continue
		}
		if r.CancelledOn != nil {
			continue
		}
		existingStart, err := ParseClock(r.TimeStart)
		if err != nil {
			continue
		}
		existingEnd, err := ParseClock(r.TimeEnd)
		if err != nil {
			continue
		}
		if Overlaps(existingStart, existingEnd, newStart, newEnd) {
			conflicts = append(conflicts, r)
		}
	}
	return conflicts
}
