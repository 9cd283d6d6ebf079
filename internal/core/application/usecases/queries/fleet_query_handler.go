package queries

import (
	"context"

	"logistics/internal/core/application/authz"
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	selectDrivers = `
		SELECT id, first_name, last_name, COALESCE(second_name, ''), licence_classes, is_available
		FROM drivers
	`
	selectVehicles = `
		SELECT license_plate, transport_type, max_weight, max_volume, is_available
		FROM vehicles
	`
)

// FleetQueryHandler reads drivers and vehicles for dispatchers.
type FleetQueryHandler struct {
	db *gorm.DB
}

func NewFleetQueryHandler(db *gorm.DB) FleetQueryHandler {
	return FleetQueryHandler{db: db}
}

func (h FleetQueryHandler) ListDrivers(ctx context.Context, query FleetQuery) ([]DriverView, error) {
	if err := h.authorize(query); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(selectDrivers + " ORDER BY last_name, first_name, id").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := make([]DriverView, 0)
	for rows.Next() {
		view, scanErr := scanDriver(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		drivers = append(drivers, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}

func (h FleetQueryHandler) GetDriver(ctx context.Context, query FleetQuery) (DriverView, error) {
	if err := h.authorize(query); err != nil {
		return DriverView{}, err
	}
	if query.driverID == nil {
		return DriverView{}, errs.NewValueIsRequiredError("driver_id")
	}

	rows, err := h.db.WithContext(ctx).Raw(selectDrivers+" WHERE id = ?", query.driverID.Bytes()).Rows()
	if err != nil {
		return DriverView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return DriverView{}, err
		}
		return DriverView{}, errs.NewObjectNotFoundError("driver", query.driverID.String())
	}

	return scanDriver(rows)
}

func (h FleetQueryHandler) ListVehicles(ctx context.Context, query FleetQuery) ([]VehicleView, error) {
	if err := h.authorize(query); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(selectVehicles + " ORDER BY license_plate").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	vehicles := make([]VehicleView, 0)
	for rows.Next() {
		var v VehicleView
		if err = rows.Scan(&v.LicensePlate, &v.TransportType, &v.MaxWeight, &v.MaxVolume, &v.IsAvailable); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}

func (h FleetQueryHandler) GetVehicle(ctx context.Context, query FleetQuery) (VehicleView, error) {
	if err := h.authorize(query); err != nil {
		return VehicleView{}, err
	}
	if query.plate == "" {
		return VehicleView{}, errs.NewValueIsRequiredError("license_plate")
	}

	var v VehicleView
	row := h.db.WithContext(ctx).Raw(selectVehicles+" WHERE license_plate = ?", query.plate).Row()
	if err := row.Scan(&v.LicensePlate, &v.TransportType, &v.MaxWeight, &v.MaxVolume, &v.IsAvailable); err != nil {
		if isNoRows(err) {
			return VehicleView{}, errs.NewObjectNotFoundError("vehicle", query.plate)
		}
		return VehicleView{}, err
	}

	return v, nil
}

func (h FleetQueryHandler) authorize(query FleetQuery) error {
	if err := query.Validate(); err != nil {
		return err
	}
	return authz.Require(query.Actor(), authz.ManageFleet)
}

func scanDriver(row rowScanner) (DriverView, error) {
	var (
		id       uuid.UUID
		licences pq.StringArray
		view     DriverView
	)

	if err := row.Scan(&id, &view.FirstName, &view.LastName, &view.SecondName, &licences, &view.IsAvailable); err != nil {
		return DriverView{}, err
	}

	driverID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return DriverView{}, err
	}
	view.ID = driverID

	view.Licences = make([]fleet.LicenceClass, 0, len(licences))
	for _, c := range licences {
		view.Licences = append(view.Licences, fleet.LicenceClass(c))
	}

	return view, nil
}
