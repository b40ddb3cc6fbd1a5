package infra

import (
	"fmt"

	"github.com/InnovaCleean/innovacleannew-sub000/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate,
// then applies the idempotent SQL pieces GORM cannot express: the folio
// sequence and the seed rows every installation needs.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations creates/updates all tables and applies the SQL patches.
// Exposed separately so integration tests can run it against their own DB.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Producto{},
		&model.Usuario{},
		&model.Cliente{},
		&model.Venta{},
		&model.Compra{},
		&model.Gasto{},
		&model.MovimientoMonedero{},
		&model.MovimientoStock{},
		&model.Ajustes{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL/DML that AutoMigrate cannot handle.
func applySchemaPatches(db *gorm.DB) error {
	patches := []struct{ descr, sql string }{
		// Server-owned folio allocator. nextval() under concurrency never
		// hands out the same number twice.
		{"create ventas_folio_seq",
			`CREATE SEQUENCE IF NOT EXISTS ventas_folio_seq START 1`},

		// The walk-in client has a fixed UUID so the app can recognize it.
		{"seed cliente general", `
INSERT INTO clientes (id, nombre, rfc, telefono, calle, colonia, ciudad, estado,
                      codigo_postal, estado_monedero, activo, created_at, updated_at)
VALUES ('00000000-0000-0000-0000-000000000001', 'Cliente General', '', '', '', '', '', '',
        '', 'inactivo', true, NOW(), NOW())
ON CONFLICT (id) DO NOTHING`},

		// Partial index for the daily sales listing (active lines by date).
		{"create idx_ventas_activas_fecha", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_ventas_activas_fecha') THEN
    CREATE INDEX idx_ventas_activas_fecha ON ventas (fecha) WHERE cancelada = false;
  END IF;
END $$`},

		// Ledger lookups are always per client, newest first.
		{"create idx_movimientos_monedero_cliente", `
DO $$ BEGIN
  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_movimientos_monedero_cliente') THEN
    CREATE INDEX idx_movimientos_monedero_cliente ON movimientos_monedero (cliente_id, created_at DESC);
  END IF;
END $$`},
	}

	for _, p := range patches {
		if err := db.Exec(p.sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", p.descr, err)
		}
	}
	return nil
}
