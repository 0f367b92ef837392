package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Register mounts every handler under /api.
func Register(e *echo.Echo, appts *DefaultAppointmentRoute, dir *DefaultDirectoryRoute, sessions *DefaultSessionRoute) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	api := e.Group("/api")

	api.GET("/appointments", appts.GetAppointments)
	api.GET("/appointments/:id", appts.GetAppointment)
	api.DELETE("/appointments/:id", appts.DeleteAppointment)
	api.GET("/appointments/:id/activities", appts.GetActivities)
	api.GET("/appointments/:id/assignments", appts.GetAssignments)
	api.POST("/activities", appts.CreateActivity)
	api.POST("/assignments", appts.CreateAssignment)

	api.GET("/patients", dir.GetPatients)
	api.GET("/patients/:id/relatives", dir.GetRelatives)
	api.GET("/categories", dir.GetCategories)
	api.GET("/users", dir.GetUsers)

	api.POST("/sessions", sessions.OpenSession)
	api.GET("/sessions/:id", sessions.GetSession)
	api.DELETE("/sessions/:id", sessions.CloseSession)
	api.POST("/sessions/:id/reload", sessions.Reload)
	api.PUT("/sessions/:id/datasource", sessions.SetDataSource)
	api.PUT("/sessions/:id/filter", sessions.ApplyFilter)
	api.DELETE("/sessions/:id/filter", sessions.ResetFilter)
	api.GET("/sessions/:id/list", sessions.List)
	api.GET("/sessions/:id/week", sessions.Week)
	api.GET("/sessions/:id/week/now", sessions.StreamMarker)
	api.GET("/sessions/:id/month", sessions.Month)
	api.POST("/sessions/:id/appointments", sessions.CreateAppointment)
	api.GET("/sessions/:id/appointments/:appointmentId", sessions.ViewAppointment)
	api.PUT("/sessions/:id/appointments/:appointmentId", sessions.UpdateAppointment)
}
