package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/recicla365/app-ecopontos/internal/middleware"
)

// API groups the handler sets mounted under /v1
type API struct {
	Health   *HealthHandlers
	Session  *SessionHandlers
	Users    *UserHandlers
	Points   *CollectionPointHandlers
	Forms    *FormHandlers
	Lookup   *LookupHandlers
	Sessions middleware.SessionLoader
}

// RegisterRoutes mounts every endpoint on v1. Routes that read or change the
// device session go through DeviceID and LoadSession; writes on records
// also require an authenticated session.
func RegisterRoutes(v1 *gin.RouterGroup, api API) {
	v1.GET("/health", api.Health.HealthCheck)

	device := v1.Group("", middleware.DeviceID(), middleware.LoadSession(api.Sessions))
	authed := device.Group("", middleware.RequireSession())

	// Session and preferences
	device.GET("/session", api.Session.GetSession)
	device.POST("/session/register", api.Session.Register)
	device.POST("/session/login", api.Session.Login)
	device.POST("/session/logout", api.Session.Logout)
	authed.PUT("/session/profile", api.Session.UpdateProfile)
	device.GET("/preferences/theme", api.Session.GetTheme)
	device.PUT("/preferences/theme", api.Session.SetTheme)

	// Users
	v1.GET("/users", api.Users.ListUsers)
	v1.GET("/users/stats", api.Users.GetUserStats)
	v1.GET("/users/:id/collection-points", api.Points.ListUserCollectionPoints)

	// Collection points
	v1.GET("/collection-points", api.Points.ListCollectionPoints)
	v1.GET("/collection-points/stats", api.Points.GetCollectionPointStats)
	v1.GET("/collection-points/:id", api.Points.GetCollectionPoint)
	authed.POST("/collection-points", api.Points.CreateCollectionPoint)
	authed.PUT("/collection-points/:id", api.Points.UpdateCollectionPoint)
	authed.DELETE("/collection-points/:id", api.Points.DeleteCollectionPoint)

	// Form review
	v1.POST("/forms/collection-point/validate", api.Forms.ValidateCollectionPointForm)
	v1.POST("/forms/collection-point/field/:field", api.Forms.ValidateCollectionPointField)
	v1.GET("/forms/collection-point/suggestions", api.Forms.GetSuggestions)
	v1.GET("/waste-types", api.Forms.ListWasteTypes)
	v1.GET("/states", api.Forms.ListStates)

	// Lookups
	v1.GET("/cep/:cep", api.Lookup.LookupCEP)
	v1.GET("/maps-link", api.Lookup.GetMapsLink)
	v1.POST("/geolocation/position", api.Lookup.ReportPosition)
}
