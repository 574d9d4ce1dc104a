package handlers

import (
	"time"

	"github.com/empresatech/resource-booking/internal/config"
	"github.com/empresatech/resource-booking/internal/timezone"
)

// datas de request chegam como "2006-01-02" e são interpretadas no fuso
// da empresa

func parseDate(cfg *config.Config, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(cfg.Timezone),
	)
}
