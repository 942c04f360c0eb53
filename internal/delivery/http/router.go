package http

import (
	"net/http"

	"vet-clinic-api/internal/delivery/http/handler"
	"vet-clinic-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router             *mux.Router
	authHandler        *handler.AuthHandler
	ownerHandler       *handler.OwnerHandler
	petHandler         *handler.PetHandler
	vetHandler         *handler.VetHandler
	appointmentHandler *handler.AppointmentHandler
	treatmentHandler   *handler.TreatmentHandler
	authMiddleware     *middleware.AuthMiddleware
	corsMiddleware     *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	ownerHandler *handler.OwnerHandler,
	petHandler *handler.PetHandler,
	vetHandler *handler.VetHandler,
	appointmentHandler *handler.AppointmentHandler,
	treatmentHandler *handler.TreatmentHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:             mux.NewRouter(),
		authHandler:        authHandler,
		ownerHandler:       ownerHandler,
		petHandler:         petHandler,
		vetHandler:         vetHandler,
		appointmentHandler: appointmentHandler,
		treatmentHandler:   treatmentHandler,
		authMiddleware:     authMiddleware,
		corsMiddleware:     corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public). /auth/me resolves the token itself and answers
	// with a null user when there is no session.
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Clinical data routes: every one requires a valid session.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/owners", r.ownerHandler.ListOwners).Methods(http.MethodGet)
	protected.HandleFunc("/owners", r.ownerHandler.CreateOwner).Methods(http.MethodPost)
	protected.HandleFunc("/owners/{id}", r.ownerHandler.UpdateOwner).Methods(http.MethodPut)
	protected.HandleFunc("/owners/{id}", r.ownerHandler.DeleteOwner).Methods(http.MethodDelete)

	protected.HandleFunc("/pets", r.petHandler.ListPets).Methods(http.MethodGet)
	protected.HandleFunc("/pets", r.petHandler.CreatePet).Methods(http.MethodPost)
	protected.HandleFunc("/pets/{id}", r.petHandler.UpdatePet).Methods(http.MethodPut)
	protected.HandleFunc("/pets/{id}", r.petHandler.DeletePet).Methods(http.MethodDelete)

	// Veterinarians are list-only
	protected.HandleFunc("/vets", r.vetHandler.ListVets).Methods(http.MethodGet)

	protected.HandleFunc("/appointments", r.appointmentHandler.ListAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	protected.HandleFunc("/treatments", r.treatmentHandler.ListTreatments).Methods(http.MethodGet)
	protected.HandleFunc("/treatments", r.treatmentHandler.CreateTreatment).Methods(http.MethodPost)
	protected.HandleFunc("/treatments/{id}", r.treatmentHandler.UpdateTreatment).Methods(http.MethodPut)
	protected.HandleFunc("/treatments/{id}", r.treatmentHandler.DeleteTreatment).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
