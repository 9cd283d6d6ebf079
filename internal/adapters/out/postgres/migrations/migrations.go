// Package migrations creates and evolves the relational schema.
package migrations

import (
	"fmt"
	"strings"

	"logistics/internal/adapters/out/postgres/cityrepo"
	"logistics/internal/adapters/out/postgres/fleetrepo"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Models lists every persisted table in dependency order.
func Models() []any {
	return []any{
		&userrepo.UserDTO{},
		&userrepo.TokenDTO{},
		&cityrepo.CityDTO{},
		&fleetrepo.DriverDTO{},
		&fleetrepo.VehicleDTO{},
		&orderrepo.OrderDTO{},
		&shipmentrepo.ShipmentDTO{},
	}
}

type foreignKey struct {
	name      string
	table     string
	column    string
	reference string
}

// foreignKeys all use ON DELETE RESTRICT: a user, city, driver or vehicle
// stays while any order or shipment, finished or not, refers to it.
var foreignKeys = []foreignKey{
	{orderrepo.ClientFK, "orders", "client_id", "users(id)"},
	{orderrepo.DispatcherFK, "orders", "dispatcher_id", "users(id)"},
	{orderrepo.CityFromFK, "orders", "city_from_id", "cities(id)"},
	{orderrepo.CityToFK, "orders", "city_to_id", "cities(id)"},
	{shipmentrepo.OrderFK, "shipments", "order_id", "orders(id)"},
	{shipmentrepo.DriverFK, "shipments", "driver_id", "drivers(id)"},
	{shipmentrepo.VehicleFK, "shipments", "vehicle_plate", "vehicles(license_plate)"},
}

// Run auto-migrates all tables and adds the constraints GORM tags cannot express.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}

	var fks strings.Builder
	for _, fk := range foreignKeys {
		fmt.Fprintf(&fks, `
			IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '%[1]s') THEN
				ALTER TABLE %[2]s ADD CONSTRAINT %[1]s
					FOREIGN KEY (%[3]s) REFERENCES %[4]s ON DELETE RESTRICT;
			END IF;`, fk.name, fk.table, fk.column, fk.reference)
	}

	return db.Exec(`
		DO $$
		BEGIN
			IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_orders_dispatcher_status') THEN
				ALTER TABLE orders ADD CONSTRAINT chk_orders_dispatcher_status
					CHECK ((status = 'Pending') = (dispatcher_id IS NULL));
			END IF;
			IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'chk_shipments_review_complete') THEN
				ALTER TABLE shipments ADD CONSTRAINT chk_shipments_review_complete
					CHECK ((review_rating IS NULL) = (review_text IS NULL)
						AND (review_rating IS NULL) = (review_written_at IS NULL));
			END IF;` + fks.String() + `
		END
		$$;
	`).Error
}

// Truncate empties every table; tests call it between cases.
func Truncate(db *gorm.DB) error {
	return db.Exec("TRUNCATE TABLE shipments, orders, vehicles, drivers, cities, auth_tokens, users").Error
}
