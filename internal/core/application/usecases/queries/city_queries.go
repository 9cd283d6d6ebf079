package queries

import (
	"context"
	"errors"

	"logistics/internal/core/application/authz"
	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrCityQueryIsNotConstructed = errors.New(
	"CityQuery must be created via NewListCitiesQuery or NewGetCityQuery constructor",
)

const selectCities = `SELECT id, name, latitude, longitude FROM cities`

// CityQuery reads reference cities. Clients and dispatchers alike may read them.
type CityQuery struct {
	actor  identity.Actor
	cityID *kernel.UUID
	guard  guard.ConstructorGuard
}

func NewListCitiesQuery(actor identity.Actor) CityQuery {
	return CityQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func NewGetCityQuery(actor identity.Actor, cityID kernel.UUID) (CityQuery, error) {
	if err := cityID.Validate(); err != nil {
		return CityQuery{}, err
	}
	return CityQuery{actor: actor, cityID: &cityID, guard: guard.NewConstructorGuard()}, nil
}

func (q CityQuery) Validate() error {
	return q.guard.Validate(ErrCityQueryIsNotConstructed)
}

// CityView is the read model of a city.
type CityView struct {
	ID          kernel.UUID
	Name        string
	Coordinates kernel.Coordinates
}

type CityQueryHandler struct {
	db *gorm.DB
}

func NewCityQueryHandler(db *gorm.DB) CityQueryHandler {
	return CityQueryHandler{db: db}
}

// List returns every city sorted by name.
func (h CityQueryHandler) List(ctx context.Context, query CityQuery) ([]CityView, error) {
	if err := h.authorize(query); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(selectCities + " ORDER BY name, id").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cities := make([]CityView, 0)
	for rows.Next() {
		view, scanErr := scanCity(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		cities = append(cities, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cities, nil
}

func (h CityQueryHandler) Get(ctx context.Context, query CityQuery) (CityView, error) {
	if err := h.authorize(query); err != nil {
		return CityView{}, err
	}
	if query.cityID == nil {
		return CityView{}, errs.NewValueIsRequiredError("city_id")
	}

	view, err := scanCity(h.db.WithContext(ctx).Raw(selectCities+" WHERE id = ?", query.cityID.Bytes()).Row())
	if isNoRows(err) {
		return CityView{}, errs.NewObjectNotFoundError("city", query.cityID.String())
	}
	return view, err
}

func (h CityQueryHandler) authorize(query CityQuery) error {
	if err := query.Validate(); err != nil {
		return err
	}
	return authz.Require(query.actor, authz.ReadCities)
}

func scanCity(row rowScanner) (CityView, error) {
	var (
		id                  uuid.UUID
		latitude, longitude decimal.Decimal
		view                CityView
	)

	if err := row.Scan(&id, &view.Name, &latitude, &longitude); err != nil {
		return CityView{}, err
	}

	cityID, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return CityView{}, err
	}
	coordinates, err := kernel.NewCoordinates(latitude, longitude)
	if err != nil {
		return CityView{}, err
	}

	view.ID = cityID
	view.Coordinates = coordinates
	return view, nil
}
