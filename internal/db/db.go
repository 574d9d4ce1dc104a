package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/empresatech/resource-booking/internal/config"
	"github.com/empresatech/resource-booking/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Resource{},
		&models.Reservation{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Rede de segurança contra corrida check-then-act: duas transações que
	// passem pela checagem de conflito ao mesmo tempo esbarram aqui e a
	// segunda recebe 23P01, traduzido para erro de conflito na aplicação.
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)
	db.Exec(`ALTER TABLE reservations DROP CONSTRAINT IF EXISTS reservations_no_overlap`)
	db.Exec(`
        ALTER TABLE reservations
        ADD CONSTRAINT reservations_no_overlap
        EXCLUDE USING gist (
            resource_id WITH =,
            date WITH =,
            int4range(
                split_part(time_start, ':', 1)::int * 60 + split_part(time_start, ':', 2)::int,
                split_part(time_end, ':', 1)::int * 60 + split_part(time_end, ':', 2)::int
            ) WITH &&
        )
        WHERE (cancelled_on IS NULL)
    `)

	return db
}
