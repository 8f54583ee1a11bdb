package http

import (
	"net/http"

	"pg-backend/internal/handlers"
	"pg-backend/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	roomHandler *handlers.RoomHandler,
	tenantHandler *handlers.TenantHandler,
	complaintHandler *handlers.ComplaintHandler,
	rentPaymentHandler *handlers.RentPaymentHandler,
	reportHandler *handlers.ReportHandler,
	backupHandler *handlers.BackupHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Health probes and metrics (no auth)
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.ReadinessHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Public API routes - Authentication
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/auth/login/2fa", authHandler.LoginTOTP).Methods("POST")

	// Authenticated account routes
	authAPI := r.PathPrefix("/api/auth").Subrouter()
	authAPI.Use(authMiddleware.Authenticate)
	authAPI.HandleFunc("/me", authHandler.Me).Methods("GET")

	// Users (admin-managed accounts plus self-service 2FA)
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(authMiddleware.Authenticate)
	usersAPI.HandleFunc("", authMiddleware.RequireAdmin(http.HandlerFunc(userHandler.ListUsers)).ServeHTTP).Methods("GET")
	usersAPI.HandleFunc("/{id}/status", authMiddleware.RequireAdmin(http.HandlerFunc(userHandler.SetStatus)).ServeHTTP).Methods("PUT")
	usersAPI.HandleFunc("/{id}/reset-password", authMiddleware.RequireAdmin(http.HandlerFunc(userHandler.ResetPassword)).ServeHTTP).Methods("POST")
	usersAPI.HandleFunc("/2fa/setup", userHandler.SetupTOTP).Methods("POST")
	usersAPI.HandleFunc("/2fa/enable", userHandler.EnableTOTP).Methods("POST")
	usersAPI.HandleFunc("/2fa/disable", userHandler.DisableTOTP).Methods("POST")

	// Rooms (any authenticated user can browse)
	roomsAPI := r.PathPrefix("/api/rooms").Subrouter()
	roomsAPI.Use(authMiddleware.Authenticate)
	roomsAPI.HandleFunc("", roomHandler.ListRooms).Methods("GET")
	roomsAPI.HandleFunc("/floors", roomHandler.ListFloors).Methods("GET")
	roomsAPI.HandleFunc("/available", roomHandler.ListAvailable).Methods("GET")
	roomsAPI.HandleFunc("/{id}", roomHandler.GetRoom).Methods("GET")

	// Tenants (admin only, except the self view)
	tenantsAPI := r.PathPrefix("/api/tenants").Subrouter()
	tenantsAPI.Use(authMiddleware.Authenticate)
	tenantsAPI.HandleFunc("", authMiddleware.RequireAdmin(http.HandlerFunc(tenantHandler.Onboard)).ServeHTTP).Methods("POST")
	tenantsAPI.HandleFunc("", authMiddleware.RequireAdmin(http.HandlerFunc(tenantHandler.ListTenants)).ServeHTTP).Methods("GET")
	tenantsAPI.HandleFunc("/me", authMiddleware.RequireTenant(http.HandlerFunc(tenantHandler.Me)).ServeHTTP).Methods("GET")
	tenantsAPI.HandleFunc("/{id}", authMiddleware.RequireAdmin(http.HandlerFunc(tenantHandler.GetTenant)).ServeHTTP).Methods("GET")

	// Complaints
	complaintsAPI := r.PathPrefix("/api/complaints").Subrouter()
	complaintsAPI.Use(authMiddleware.Authenticate)
	complaintsAPI.HandleFunc("", authMiddleware.RequireTenant(http.HandlerFunc(complaintHandler.Raise)).ServeHTTP).Methods("POST")
	complaintsAPI.HandleFunc("", authMiddleware.RequireAdmin(http.HandlerFunc(complaintHandler.ListAll)).ServeHTTP).Methods("GET")
	complaintsAPI.HandleFunc("/me", authMiddleware.RequireTenant(http.HandlerFunc(complaintHandler.ListMine)).ServeHTTP).Methods("GET")
	complaintsAPI.HandleFunc("/{id}/status", authMiddleware.RequireAdmin(http.HandlerFunc(complaintHandler.UpdateStatus)).ServeHTTP).Methods("PUT")

	// Rent payments
	rentAPI := r.PathPrefix("/api/rent").Subrouter()
	rentAPI.Use(authMiddleware.Authenticate)
	rentAPI.HandleFunc("", authMiddleware.RequireAdmin(http.HandlerFunc(rentPaymentHandler.ListAll)).ServeHTTP).Methods("GET")
	rentAPI.HandleFunc("/pay", authMiddleware.RequireTenant(http.HandlerFunc(rentPaymentHandler.PayRent)).ServeHTTP).Methods("POST")
	rentAPI.HandleFunc("/me", authMiddleware.RequireTenant(http.HandlerFunc(rentPaymentHandler.ListMine)).ServeHTTP).Methods("GET")
	rentAPI.HandleFunc("/{id}/receipt", rentPaymentHandler.Receipt).Methods("GET")

	// Reports (admin)
	reportsAPI := r.PathPrefix("/api/reports").Subrouter()
	reportsAPI.Use(authMiddleware.Authenticate)
	reportsAPI.Use(authMiddleware.RequireAdmin)
	reportsAPI.HandleFunc("/rent/unpaid", reportHandler.UnpaidTenants).Methods("GET")
	reportsAPI.HandleFunc("/rent/paid", reportHandler.PaidThisMonth).Methods("GET")
	reportsAPI.HandleFunc("/tenants/{id}/statement", reportHandler.TenantStatement).Methods("GET")

	// Backup (admin)
	backupAPI := r.PathPrefix("/api/backup").Subrouter()
	backupAPI.Use(authMiddleware.Authenticate)
	backupAPI.Use(authMiddleware.RequireAdmin)
	backupAPI.HandleFunc("/run", backupHandler.Run).Methods("POST")

	return r
}
