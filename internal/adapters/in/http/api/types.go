// Package api holds the HTTP contract: the embedded OpenAPI document, the
// request and response bodies it describes and the echo bindings of its
// operations.
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// ErrorCode is the stable machine-readable error classification.
type ErrorCode string

const (
	ErrorCodeUnauthenticated     ErrorCode = "unauthenticated"
	ErrorCodeForbidden           ErrorCode = "forbidden"
	ErrorCodeNotFound            ErrorCode = "not_found"
	ErrorCodeInvalidState        ErrorCode = "invalid_state"
	ErrorCodeResourceUnavailable ErrorCode = "resource_unavailable"
	ErrorCodeBadRequest          ErrorCode = "bad_request"
	ErrorCodeValidationError     ErrorCode = "validation_error"
	ErrorCodeInternal            ErrorCode = "internal"
)

// Error defines model for Error.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// Role defines model for User.role and RegisterRequest.role.
type Role string

const (
	RoleClient     Role = "client"
	RoleDispatcher Role = "dispatcher"
)

// RegisterRequest defines model for RegisterRequest.
type RegisterRequest struct {
	Email     openapi_types.Email `json:"email"`
	Username  string              `json:"username"`
	Password  string              `json:"password"`
	Role      Role                `json:"role"`
	FirstName *string             `json:"first_name,omitempty"`
	LastName  *string             `json:"last_name,omitempty"`
}

// LoginRequest defines model for LoginRequest.
type LoginRequest struct {
	Email    openapi_types.Email `json:"email"`
	Password string              `json:"password"`
}

// User defines model for User.
type User struct {
	Id        openapi_types.UUID  `json:"id"`
	Email     openapi_types.Email `json:"email"`
	Username  string              `json:"username"`
	Role      Role                `json:"role"`
	FirstName *string             `json:"first_name,omitempty"`
	LastName  *string             `json:"last_name,omitempty"`
}

// AuthResponse defines model for AuthResponse.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      User      `json:"user"`
}

// OrderRequest defines model for OrderRequest.
type OrderRequest struct {
	Weight   decimal.Decimal    `json:"weight"`
	Volume   decimal.Decimal    `json:"volume"`
	CityFrom openapi_types.UUID `json:"city_from"`
	CityTo   openapi_types.UUID `json:"city_to"`
}

// OrderStatus defines model for Order.status.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusConfirmed OrderStatus = "Confirmed"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// Order defines model for Order.
type Order struct {
	OrderId    openapi_types.UUID  `json:"order_id"`
	Client     openapi_types.UUID  `json:"client"`
	Dispatcher *openapi_types.UUID `json:"dispatcher"`
	Weight     string              `json:"weight"`
	Volume     string              `json:"volume"`
	Status     OrderStatus         `json:"status"`
	CityFrom   openapi_types.UUID  `json:"city_from"`
	CityTo     openapi_types.UUID  `json:"city_to"`
	CreatedAt  time.Time           `json:"created_at"`
}

// AcceptRequest defines model for AcceptRequest.
type AcceptRequest struct {
	Driver      openapi_types.UUID `json:"driver"`
	Vehicle     string             `json:"vehicle"`
	ArrivalTime time.Time          `json:"arrival_time"`
	Price       decimal.Decimal    `json:"price"`
}

// StatusResponse defines model for StatusResponse.
type StatusResponse struct {
	Status string `json:"status"`
}

// ShipmentStatus defines model for Shipment.status.
type ShipmentStatus string

const (
	ShipmentStatusInProgress ShipmentStatus = "In Progress"
	ShipmentStatusDelivered  ShipmentStatus = "Delivered"
	ShipmentStatusDelayed    ShipmentStatus = "Delayed"
)

// Shipment defines model for Shipment.
type Shipment struct {
	ShipmentId      openapi_types.UUID `json:"shipment_id"`
	Order           openapi_types.UUID `json:"order"`
	Driver          openapi_types.UUID `json:"driver"`
	Vehicle         string             `json:"vehicle"`
	ArrivalTime     time.Time          `json:"arrival_time"`
	Price           string             `json:"price"`
	Status          ShipmentStatus     `json:"status"`
	ReviewRating    *int               `json:"review_rating"`
	ReviewText      *string            `json:"review_text"`
	ReviewCreatedAt *time.Time         `json:"review_created_at"`
}

// ReviewRequest defines model for ReviewRequest.
type ReviewRequest struct {
	ReviewRating *int    `json:"review_rating"`
	ReviewText   *string `json:"review_text,omitempty"`
}

// DriverRequest defines model for DriverRequest.
type DriverRequest struct {
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	SecondName     *string  `json:"second_name,omitempty"`
	LicenceClasses []string `json:"licence_classes,omitempty"`
}

// Driver defines model for Driver.
type Driver struct {
	DriverId       openapi_types.UUID `json:"driver_id"`
	FirstName      string             `json:"first_name"`
	LastName       string             `json:"last_name"`
	SecondName     *string            `json:"second_name,omitempty"`
	LicenceClasses []string           `json:"licence_classes"`
	IsAvailable    bool               `json:"is_available"`
}

// VehicleRequest defines model for VehicleRequest.
type VehicleRequest struct {
	LicensePlate  *string `json:"license_plate,omitempty"`
	TransportType string  `json:"transport_type"`
	MaxWeight     int     `json:"max_weight"`
	MaxVolume     int     `json:"max_volume"`
}

// Vehicle defines model for Vehicle.
type Vehicle struct {
	LicensePlate  string `json:"license_plate"`
	TransportType string `json:"transport_type"`
	MaxWeight     int    `json:"max_weight"`
	MaxVolume     int    `json:"max_volume"`
	IsAvailable   bool   `json:"is_available"`
}

// CityRequest defines model for CityRequest.
type CityRequest struct {
	CityName  string          `json:"city_name"`
	Latitude  decimal.Decimal `json:"latitude"`
	Longitude decimal.Decimal `json:"longitude"`
}

// City defines model for City.
type City struct {
	CityId    openapi_types.UUID `json:"city_id"`
	CityName  string             `json:"city_name"`
	Latitude  string             `json:"latitude"`
	Longitude string             `json:"longitude"`
}

// RegisterJSONRequestBody defines body for Register for application/json ContentType.
type RegisterJSONRequestBody = RegisterRequest

// LoginJSONRequestBody defines body for Login for application/json ContentType.
type LoginJSONRequestBody = LoginRequest

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = OrderRequest

// ReviewShipmentJSONRequestBody defines body for ReviewShipment for application/json ContentType.
type ReviewShipmentJSONRequestBody = ReviewRequest

// AcceptOrderJSONRequestBody defines body for AcceptOrder for application/json ContentType.
type AcceptOrderJSONRequestBody = AcceptRequest

// CreateDriverJSONRequestBody defines body for CreateDriver for application/json ContentType.
type CreateDriverJSONRequestBody = DriverRequest

// UpdateDriverJSONRequestBody defines body for UpdateDriver for application/json ContentType.
type UpdateDriverJSONRequestBody = DriverRequest

// CreateVehicleJSONRequestBody defines body for CreateVehicle for application/json ContentType.
type CreateVehicleJSONRequestBody = VehicleRequest

// UpdateVehicleJSONRequestBody defines body for UpdateVehicle for application/json ContentType.
type UpdateVehicleJSONRequestBody = VehicleRequest

// CreateCityJSONRequestBody defines body for CreateCity for application/json ContentType.
type CreateCityJSONRequestBody = CityRequest

// UpdateCityJSONRequestBody defines body for UpdateCity for application/json ContentType.
type UpdateCityJSONRequestBody = CityRequest
