package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"flight-route-service/internal/api/handlers"
	"flight-route-service/internal/ports"
)

// Dependencies carried by the API layer. Handlers stay unaware of concrete
// adapters; only ports cross this boundary.
type Deps struct {
	Airports ports.AirportRepository
	Routes   ports.RouteRepository
	Aircraft ports.AircraftRepository
	History  ports.HistoryRepository
	Cache    ports.PathCache

	DefaultAircraft string
}

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root.
func NewRouter(deps Deps) http.Handler {
	airportHandler := &handlers.AirportHandler{Repo: deps.Airports}
	flightHandler := &handlers.FlightHandler{
		Airports: deps.Airports,
		Routes:   deps.Routes,
		Aircraft: deps.Aircraft,
	}
	optimizeHandler := &handlers.OptimizeHandler{
		Airports:        deps.Airports,
		Routes:          deps.Routes,
		Aircraft:        deps.Aircraft,
		History:         deps.History,
		Cache:           deps.Cache,
		DefaultAircraft: deps.DefaultAircraft,
	}

	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/health", handlers.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/airports", func(r chi.Router) {
			r.Get("/", airportHandler.List)
			// Registered before the wildcard so "search" never resolves
			// as an IATA code.
			r.Get("/search/autocomplete", airportHandler.Autocomplete)
			r.Get("/{iata}", airportHandler.Get)
		})

		r.Route("/flights", func(r chi.Router) {
			r.Get("/routes", flightHandler.ListRoutes)
			r.Get("/aircraft", flightHandler.ListAircraft)
			r.Post("/calculate-emissions", flightHandler.CalculateEmissions)
		})

		r.Route("/optimize", func(r chi.Router) {
			r.Post("/route", optimizeHandler.OptimizeRoute)
			r.Post("/alternatives", optimizeHandler.FindAlternatives)
			r.Get("/history", optimizeHandler.HistoryList)
		})
	})

	return r
}
