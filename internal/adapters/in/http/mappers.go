package http

import (
	"logistics/internal/adapters/in/http/api"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/domain/model/city"
	"logistics/internal/core/domain/model/fleet"
	"logistics/internal/core/domain/model/identity"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/shipment"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// toID adopts a bound UUID. The nil UUID becomes the zero kernel.UUID, which
// command and query constructors reject as a required value.
func toID(id openapi_types.UUID) kernel.UUID {
	out, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return kernel.UUID{}
	}
	return out
}

func fromID(id kernel.UUID) openapi_types.UUID {
	return id.Bytes()
}

func fromOptionalID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	out := fromID(*id)
	return &out
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func valueOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func userResponse(u *identity.User) api.User {
	return api.User{
		Id:        fromID(u.ID()),
		Email:     openapi_types.Email(u.Email()),
		Username:  u.Username(),
		Role:      api.Role(u.Role().String()),
		FirstName: optionalString(u.FirstName()),
		LastName:  optionalString(u.LastName()),
	}
}

func orderFromView(v queries.OrderView) api.Order {
	return api.Order{
		OrderId:    fromID(v.ID),
		Client:     fromID(v.ClientID),
		Dispatcher: fromOptionalID(v.DispatcherID),
		Weight:     v.Weight.String(),
		Volume:     v.Volume.String(),
		Status:     api.OrderStatus(v.Status.String()),
		CityFrom:   fromID(v.CityFrom),
		CityTo:     fromID(v.CityTo),
		CreatedAt:  v.CreatedAt,
	}
}

func orderFromAggregate(o *order.Order) api.Order {
	return api.Order{
		OrderId:    fromID(o.ID()),
		Client:     fromID(o.ClientID()),
		Dispatcher: fromOptionalID(o.DispatcherID()),
		Weight:     o.Weight().String(),
		Volume:     o.Volume().String(),
		Status:     api.OrderStatus(o.Status().String()),
		CityFrom:   fromID(o.CityFrom()),
		CityTo:     fromID(o.CityTo()),
		CreatedAt:  o.CreatedAt(),
	}
}

func shipmentFromView(v queries.ShipmentView) api.Shipment {
	out := api.Shipment{
		ShipmentId:  fromID(v.ID),
		Order:       fromID(v.OrderID),
		Driver:      fromID(v.DriverID),
		Vehicle:     v.VehiclePlate,
		ArrivalTime: v.ArrivalTime,
		Price:       v.Price.String(),
		Status:      api.ShipmentStatus(v.Status.String()),
	}
	if v.Review != nil {
		rating, text, createdAt := v.Review.Rating, v.Review.Text, v.Review.CreatedAt
		out.ReviewRating = &rating
		out.ReviewText = &text
		out.ReviewCreatedAt = &createdAt
	}
	return out
}

func shipmentFromAggregate(s *shipment.Shipment) api.Shipment {
	out := api.Shipment{
		ShipmentId:  fromID(s.ID()),
		Order:       fromID(s.OrderID()),
		Driver:      fromID(s.DriverID()),
		Vehicle:     s.VehiclePlate(),
		ArrivalTime: s.ArrivalTime(),
		Price:       s.Price().String(),
		Status:      api.ShipmentStatus(s.Status().String()),
	}
	if r := s.Review(); r != nil {
		rating, text, createdAt := r.Rating(), r.Text(), r.CreatedAt()
		out.ReviewRating = &rating
		out.ReviewText = &text
		out.ReviewCreatedAt = &createdAt
	}
	return out
}

func licenceNames(classes []fleet.LicenceClass) []string {
	out := make([]string, len(classes))
	for i, c := range classes {
		out[i] = string(c)
	}
	return out
}

func licenceClasses(names []string) []fleet.LicenceClass {
	out := make([]fleet.LicenceClass, len(names))
	for i, n := range names {
		out[i] = fleet.LicenceClass(n)
	}
	return out
}

func driverFromView(v queries.DriverView) api.Driver {
	return api.Driver{
		DriverId:       fromID(v.ID),
		FirstName:      v.FirstName,
		LastName:       v.LastName,
		SecondName:     optionalString(v.SecondName),
		LicenceClasses: licenceNames(v.Licences),
		IsAvailable:    v.IsAvailable,
	}
}

func driverFromAggregate(d *fleet.Driver) api.Driver {
	return api.Driver{
		DriverId:       fromID(d.ID()),
		FirstName:      d.FirstName(),
		LastName:       d.LastName(),
		SecondName:     optionalString(d.SecondName()),
		LicenceClasses: licenceNames(d.Licences()),
		IsAvailable:    d.IsAvailable(),
	}
}

func vehicleFromView(v queries.VehicleView) api.Vehicle {
	return api.Vehicle{
		LicensePlate:  v.LicensePlate,
		TransportType: v.TransportType,
		MaxWeight:     v.MaxWeight,
		MaxVolume:     v.MaxVolume,
		IsAvailable:   v.IsAvailable,
	}
}

func vehicleFromAggregate(v *fleet.Vehicle) api.Vehicle {
	return api.Vehicle{
		LicensePlate:  v.Plate(),
		TransportType: v.TransportType(),
		MaxWeight:     v.MaxWeight(),
		MaxVolume:     v.MaxVolume(),
		IsAvailable:   v.IsAvailable(),
	}
}

func cityFromView(v queries.CityView) api.City {
	return api.City{
		CityId:    fromID(v.ID),
		CityName:  v.Name,
		Latitude:  v.Coordinates.Latitude().StringFixed(kernel.CoordinatesScale),
		Longitude: v.Coordinates.Longitude().StringFixed(kernel.CoordinatesScale),
	}
}

func cityFromAggregate(c *city.City) api.City {
	return cityFromView(queries.CityView{ID: c.ID(), Name: c.Name(), Coordinates: c.Coordinates()})
}

func mapSlice[T, R any](in []T, f func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}
