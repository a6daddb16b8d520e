package routes

import "github.com/labstack/echo/v4"

// Mount registers every endpoint on e. Collection paths answer with and
// without the trailing slash.
func Mount(e *echo.Echo, patients *DefaultPatientRoute, appts *DefaultAppointmentRoute, health *DefaultHealthRoute) {
	e.GET("/", health.Root)
	e.GET("/health", health.Health)

	// Patients
	for _, path := range []string{"/patients", "/patients/"} {
		e.GET(path, patients.GetPatients)
		e.POST(path, patients.CreatePatient)
	}
	e.GET("/patients/:id", patients.GetPatient)
	e.PUT("/patients/:id", patients.UpdatePatient)
	e.DELETE("/patients/:id", patients.DeletePatient)

	// Appointments
	for _, path := range []string{"/appointments", "/appointments/"} {
		e.GET(path, appts.GetAppointments)
		e.POST(path, appts.CreateAppointment)
	}
	e.GET("/appointments/:id", appts.GetAppointment)
	e.PUT("/appointments/:id", appts.UpdateAppointment)
	e.DELETE("/appointments/:id", appts.DeleteAppointment)
}
