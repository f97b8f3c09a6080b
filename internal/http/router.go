package http

import (
	"rental-backend/internal/handlers"
	"rental-backend/internal/middleware"
	"rental-backend/internal/ws"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	carHandler *handlers.CarHandler,
	customerHandler *handlers.CustomerHandler,
	rentalHandler *handlers.RentalHandler,
	documentHandler *handlers.DocumentHandler,
	dashboardHandler *handlers.DashboardHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
	hub *ws.Hub,
) *mux.Router {
	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/auth/signup", authHandler.Signup).Methods("POST")
	r.HandleFunc("/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/health", healthHandler.Basic).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Live status feed for the dashboard
	r.Handle("/api/ws", hub).Methods("GET")

	// Authenticated profile
	meAPI := r.PathPrefix("/api/me").Subrouter()
	meAPI.Use(authMiddleware.Authenticate)
	meAPI.HandleFunc("", authHandler.Me).Methods("GET")

	// Users (admin only)
	usersAPI := r.PathPrefix("/api/users").Subrouter()
	usersAPI.Use(authMiddleware.RequireRole("admin"))
	usersAPI.HandleFunc("", userHandler.ListUsers).Methods("GET")
	usersAPI.HandleFunc("", userHandler.CreateUser).Methods("POST")
	usersAPI.HandleFunc("/{id}", userHandler.GetUser).Methods("GET")
	usersAPI.HandleFunc("/{id}", userHandler.UpdateUser).Methods("PUT")
	usersAPI.HandleFunc("/{id}", userHandler.DeleteUser).Methods("DELETE")

	// Cars
	carsAPI := r.PathPrefix("/api/cars").Subrouter()
	carsAPI.Use(authMiddleware.Authenticate)
	carsAPI.HandleFunc("", carHandler.ListCars).Methods("GET")
	carsAPI.HandleFunc("", carHandler.CreateCar).Methods("POST")
	carsAPI.HandleFunc("/{id}", carHandler.GetCar).Methods("GET")
	carsAPI.HandleFunc("/{id}", carHandler.UpdateCar).Methods("PUT")
	carsAPI.HandleFunc("/{id}", carHandler.DeleteCar).Methods("DELETE")
	carsAPI.HandleFunc("/{id}/status", carHandler.UpdateCarStatus).Methods("PATCH")
	carsAPI.HandleFunc("/{id}/technical", carHandler.UpdateCarTechnical).Methods("PATCH")
	carsAPI.HandleFunc("/{id}/technical-history", carHandler.ListTechnicalHistory).Methods("GET")
	carsAPI.HandleFunc("/{id}/rentals", rentalHandler.ListByCar).Methods("GET")

	// Customers
	customersAPI := r.PathPrefix("/api/customers").Subrouter()
	customersAPI.Use(authMiddleware.Authenticate)
	customersAPI.HandleFunc("", customerHandler.ListCustomers).Methods("GET")
	customersAPI.HandleFunc("", customerHandler.CreateCustomer).Methods("POST")
	customersAPI.HandleFunc("/{id}", customerHandler.GetCustomer).Methods("GET")
	customersAPI.HandleFunc("/{id}", customerHandler.UpdateCustomer).Methods("PUT")
	customersAPI.HandleFunc("/{id}", customerHandler.DeleteCustomer).Methods("DELETE")
	customersAPI.HandleFunc("/{id}/rentals", rentalHandler.ListByCustomer).Methods("GET")

	// Rentals
	rentalsAPI := r.PathPrefix("/api/rentals").Subrouter()
	rentalsAPI.Use(authMiddleware.Authenticate)
	rentalsAPI.HandleFunc("", rentalHandler.ListRentals).Methods("GET")
	rentalsAPI.HandleFunc("", rentalHandler.CreateRental).Methods("POST")
	rentalsAPI.HandleFunc("/{id}", rentalHandler.GetRental).Methods("GET")
	rentalsAPI.HandleFunc("/{id}", rentalHandler.UpdateRental).Methods("PUT")
	rentalsAPI.HandleFunc("/{id}", rentalHandler.DeleteRental).Methods("DELETE")
	rentalsAPI.HandleFunc("/{id}/status", rentalHandler.UpdateRentalStatus).Methods("PATCH")
	rentalsAPI.HandleFunc("/{id}/payment", rentalHandler.UpdateRentalPayment).Methods("PATCH")

	// Documents
	documentsAPI := r.PathPrefix("/api/documents").Subrouter()
	documentsAPI.Use(authMiddleware.Authenticate)
	documentsAPI.HandleFunc("/rentals/{id}/invoice", documentHandler.RentalInvoice).Methods("GET")
	documentsAPI.HandleFunc("/rentals/{id}/agreement", documentHandler.RentalAgreement).Methods("GET")
	documentsAPI.HandleFunc("/cars/{id}/technical-sheet", documentHandler.CarTechnicalSheet).Methods("GET")
	documentsAPI.HandleFunc("/fleet-report", documentHandler.FleetReport).Methods("GET")
	documentsAPI.HandleFunc("/technical-sheets", documentHandler.BulkTechnicalSheets).Methods("GET")

	// Dashboard
	dashboardAPI := r.PathPrefix("/api/dashboard").Subrouter()
	dashboardAPI.Use(authMiddleware.Authenticate)
	dashboardAPI.HandleFunc("/stats", dashboardHandler.Stats).Methods("GET")

	// Detailed health (admin only, exposes host stats)
	healthAPI := r.PathPrefix("/api/health").Subrouter()
	healthAPI.Use(authMiddleware.RequireRole("admin"))
	healthAPI.HandleFunc("/detailed", healthHandler.Detailed).Methods("GET")

	return r
}
