package http

import (
	"net/http"

	"careconnect-backend/internal/delivery/http/handler"
	"careconnect-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	profileHandler       *handler.ProfileHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	doctorHandler        *handler.DoctorHandler
	appointmentHandler   *handler.AppointmentHandler
	emergencyHandler     *handler.EmergencyHandler
	chatHandler          *handler.ChatHandler
	dashboardHandler     *handler.DoctorDashboardHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	medicalRecordHandler *handler.MedicalRecordHandler,
	doctorHandler *handler.DoctorHandler,
	appointmentHandler *handler.AppointmentHandler,
	emergencyHandler *handler.EmergencyHandler,
	chatHandler *handler.ChatHandler,
	dashboardHandler *handler.DoctorDashboardHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		profileHandler:       profileHandler,
		medicalRecordHandler: medicalRecordHandler,
		doctorHandler:        doctorHandler,
		appointmentHandler:   appointmentHandler,
		emergencyHandler:     emergencyHandler,
		chatHandler:          chatHandler,
		dashboardHandler:     dashboardHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Doctor catalog (public)
	api.HandleFunc("/doctors", r.doctorHandler.ListDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/available-slots", r.doctorHandler.GetAvailableSlots).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}/availability-summary", r.doctorHandler.GetAvailabilitySummary).Methods(http.MethodGet)

	// Authenticated routes
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Profile
	protected.HandleFunc("/profile", r.profileHandler.GetProfile).Methods(http.MethodGet)
	protected.HandleFunc("/profile/update", r.profileHandler.UpdateProfile).Methods(http.MethodPut)
	protected.HandleFunc("/profile/emergency-contact", r.profileHandler.UpsertEmergencyContact).Methods(http.MethodPut)

	// Medical records
	protected.HandleFunc("/medical-records", r.medicalRecordHandler.GetRecords).Methods(http.MethodGet)
	protected.HandleFunc("/medical-records/entry", r.medicalRecordHandler.AddEntry).Methods(http.MethodPost)
	protected.HandleFunc("/medical-records/{id}", r.medicalRecordHandler.UpdateEntry).Methods(http.MethodPut)
	protected.HandleFunc("/medical-records/{id}", r.medicalRecordHandler.ArchiveEntry).Methods(http.MethodDelete)
	protected.HandleFunc("/medical-records/{id}/restore", r.medicalRecordHandler.RestoreEntry).Methods(http.MethodPost)
	protected.HandleFunc("/medical-records/{id}/permanent", r.medicalRecordHandler.PurgeEntry).Methods(http.MethodDelete)

	// Appointments
	protected.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", r.appointmentHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/upcoming", r.appointmentHandler.Upcoming).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.Cancel).Methods(http.MethodDelete)

	// Visits
	protected.HandleFunc("/visits/all", r.appointmentHandler.AllVisits).Methods(http.MethodGet)
	protected.HandleFunc("/visits/recent", r.appointmentHandler.RecentVisits).Methods(http.MethodGet)

	// Emergency
	protected.HandleFunc("/emergency", r.emergencyHandler.Create).Methods(http.MethodPost)

	// Chat
	protected.HandleFunc("/chat/", r.chatHandler.Chat).Methods(http.MethodPost)
	protected.HandleFunc("/chat/clear/{id}", r.chatHandler.ClearConversation).Methods(http.MethodPost)
	protected.HandleFunc("/chat/analyze-urgency", r.chatHandler.AnalyzeUrgency).Methods(http.MethodPost)
	protected.HandleFunc("/chat/help/{topic}", r.chatHandler.HelpTopic).Methods(http.MethodGet)

	// Completing an appointment is reserved for medical staff
	staff := api.NewRoute().Subrouter()
	staff.Use(r.authMiddleware.Authenticate)
	staff.Use(middleware.RequireDoctor())
	staff.HandleFunc("/appointments/{id}/complete", r.appointmentHandler.Complete).Methods(http.MethodPost)

	// Doctor dashboard (doctor/admin only)
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor())
	doctor.HandleFunc("/patients", r.dashboardHandler.TodaysPatients).Methods(http.MethodGet)
	doctor.HandleFunc("/schedule", r.dashboardHandler.Schedule).Methods(http.MethodGet)
	doctor.HandleFunc("/availability", r.doctorHandler.ListMyAvailability).Methods(http.MethodGet)
	doctor.HandleFunc("/availability", r.doctorHandler.CreateAvailability).Methods(http.MethodPost)
	doctor.HandleFunc("/availability/{id}", r.doctorHandler.UpdateAvailability).Methods(http.MethodPut)
	doctor.HandleFunc("/availability/{id}", r.doctorHandler.DeleteAvailability).Methods(http.MethodDelete)
	doctor.HandleFunc("/experience", r.dashboardHandler.AddExperience).Methods(http.MethodPost)
	doctor.HandleFunc("/experience", r.dashboardHandler.ListExperience).Methods(http.MethodGet)
	doctor.HandleFunc("/experience/{id}", r.dashboardHandler.UpdateExperience).Methods(http.MethodPut)
	doctor.HandleFunc("/experience/{id}", r.dashboardHandler.DeleteExperience).Methods(http.MethodDelete)
	doctor.HandleFunc("/prescriptions", r.dashboardHandler.IssuePrescription).Methods(http.MethodPost)
	doctor.HandleFunc("/prescriptions", r.dashboardHandler.ListPrescriptions).Methods(http.MethodGet)
	doctor.HandleFunc("/prescriptions/{id}/status", r.dashboardHandler.UpdatePrescriptionStatus).Methods(http.MethodPut)
	doctor.HandleFunc("/referrals", r.dashboardHandler.CreateReferral).Methods(http.MethodPost)
	doctor.HandleFunc("/referrals", r.dashboardHandler.ListReferrals).Methods(http.MethodGet)
	doctor.HandleFunc("/referrals/{id}/status", r.dashboardHandler.UpdateReferralStatus).Methods(http.MethodPut)

	// Nurse station (nurse/admin only)
	nurse := api.PathPrefix("/nurse").Subrouter()
	nurse.Use(r.authMiddleware.Authenticate)
	nurse.Use(middleware.RequireNurse())
	nurse.HandleFunc("/emergencies", r.emergencyHandler.ActiveRequests).Methods(http.MethodGet)
	nurse.HandleFunc("/emergencies/{id}/resolve", r.emergencyHandler.Resolve).Methods(http.MethodPut)
	nurse.HandleFunc("/on-duty", r.emergencyHandler.OnDutyNurses).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
