package Routes

import (
	"github.com/YeyeJames/jiale15/Controllers"
	"github.com/YeyeJames/jiale15/Middleware"
	"github.com/YeyeJames/jiale15/Models"
	"github.com/YeyeJames/jiale15/SSE"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func ConfigRoutes(router *gin.Engine, ctrl *Controllers.Controller, store *Models.Store) {
	// Gzip Compression
	router.Use(gzip.Gzip(gzip.BestSpeed))

	// Public routes
	public := router.Group("/api")
	{
		public.POST("/login", ctrl.Login)
	}

	// Authorized routes
	authorized := router.Group("/api/protected")
	authorized.Use(Middleware.JwtAuthMiddleware())
	{
		// User-related routes
		authorized.GET("/user", ctrl.CurrentUser)

		// Day view routes
		authorized.GET("/FetchDaySchedule", ctrl.FetchDaySchedule)
		authorized.GET("/FetchDayStats", ctrl.FetchDayStats)

		// Appointment workflow routes
		authorized.POST("/BookAppointment", ctrl.BookAppointment)
		authorized.POST("/CheckInAppointment", ctrl.CheckInAppointment)
		authorized.POST("/ResetAppointment", ctrl.ResetAppointment)
		authorized.POST("/DeleteAppointment", ctrl.DeleteAppointment)

		// Catalog reads
		authorized.GET("/GetTherapists", ctrl.GetTherapists)
		authorized.GET("/FetchTreatments", ctrl.FetchTreatments)

		// Export-related routes
		authorized.POST("/ExportDaySales", ctrl.ExportDaySales)

		// SSE (Server-Sent Events) route
		authorized.GET("/RequestSSE", SSE.RequestSSE)
	}

	// Admin-only settings routes
	admin := router.Group("/api/protected/admin")
	admin.Use(Middleware.JwtAuthMiddleware())
	admin.Use(Middleware.RequireAdmin(store))
	{
		admin.POST("/RegisterUser", ctrl.RegisterUser)
		admin.POST("/AddTherapist", ctrl.AddTherapist)
		admin.POST("/AddTreatment", ctrl.AddTreatment)
		admin.POST("/EditTreatment", ctrl.EditTreatment)
		admin.POST("/DeleteTreatment", ctrl.DeleteTreatment)
	}
}
