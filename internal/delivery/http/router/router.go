// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"petcare/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PetHandler          *handler.PetHandler
	UserPetHandler      *handler.UserPetHandler
	AppointmentHandler  *handler.AppointmentHandler
	HealthRecordHandler *handler.HealthRecordHandler
	DiscoveryHandler    *handler.DiscoveryHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	petHandler          *handler.PetHandler
	userPetHandler      *handler.UserPetHandler
	appointmentHandler  *handler.AppointmentHandler
	healthRecordHandler *handler.HealthRecordHandler
	discoveryHandler    *handler.DiscoveryHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		petHandler:          params.PetHandler,
		userPetHandler:      params.UserPetHandler,
		appointmentHandler:  params.AppointmentHandler,
		healthRecordHandler: params.HealthRecordHandler,
		discoveryHandler:    params.DiscoveryHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	pets := api.Group("/pets")
	{
		pets.POST("", r.petHandler.Create)
		pets.GET("", r.petHandler.List)
		pets.GET("/count", r.petHandler.Count)
		pets.GET("/:id", r.petHandler.GetOne)
		pets.PUT("/:id", r.petHandler.Update)
		pets.PATCH("/:id", r.petHandler.PartialUpdate)
		pets.DELETE("/:id", r.petHandler.Delete)
	}

	userPets := api.Group("/user-pets")
	{
		userPets.POST("/register", r.userPetHandler.Register)
		userPets.POST("/login", r.userPetHandler.Login)
		userPets.POST("", r.userPetHandler.Create)
		userPets.GET("", r.userPetHandler.List)
		userPets.GET("/count", r.userPetHandler.Count)
		userPets.GET("/:id", r.userPetHandler.GetOne)
		userPets.PUT("/:id", r.userPetHandler.Update)
		userPets.PATCH("/:id", r.userPetHandler.PartialUpdate)
		userPets.DELETE("/:id", r.userPetHandler.Delete)
	}

	appointments := api.Group("/appointments")
	{
		appointments.POST("", r.appointmentHandler.Create)
		appointments.GET("", r.appointmentHandler.List)
		appointments.GET("/count", r.appointmentHandler.Count)
		appointments.GET("/owner/:ownerId", r.appointmentHandler.ListByOwner)
		appointments.GET("/next/:ownerId", r.appointmentHandler.NextByOwner)
		appointments.GET("/pet/:petId", r.appointmentHandler.ListByPet)
		appointments.GET("/:id", r.appointmentHandler.GetOne)
		appointments.PUT("/:id", r.appointmentHandler.Update)
		appointments.PATCH("/:id", r.appointmentHandler.PartialUpdate)
		appointments.DELETE("/:id", r.appointmentHandler.Delete)
	}

	healthRecords := api.Group("/health-records")
	{
		healthRecords.POST("", r.healthRecordHandler.Create)
		healthRecords.GET("", r.healthRecordHandler.List)
		healthRecords.GET("/count", r.healthRecordHandler.Count)
		healthRecords.GET("/count/owner/:ownerId", r.healthRecordHandler.CountByOwner)
		healthRecords.GET("/pet/:petId", r.healthRecordHandler.ListByPet)
		healthRecords.GET("/:id", r.healthRecordHandler.GetOne)
		healthRecords.PUT("/:id", r.healthRecordHandler.Update)
		healthRecords.PATCH("/:id", r.healthRecordHandler.PartialUpdate)
		healthRecords.DELETE("/:id", r.healthRecordHandler.Delete)
	}

	discoveries := api.Group("/discoveries")
	{
		discoveries.POST("", r.discoveryHandler.Create)
		discoveries.GET("", r.discoveryHandler.List)
		discoveries.GET("/count", r.discoveryHandler.Count)
		discoveries.GET("/:id", r.discoveryHandler.GetOne)
		discoveries.PUT("/:id", r.discoveryHandler.Update)
		discoveries.PATCH("/:id", r.discoveryHandler.PartialUpdate)
		discoveries.DELETE("/:id", r.discoveryHandler.Delete)
	}
}
