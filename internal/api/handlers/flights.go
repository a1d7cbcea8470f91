package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"flight-route-service/internal/api/dto"
	"flight-route-service/internal/domain"
	"flight-route-service/internal/ports"
	"flight-route-service/internal/services"
)

// FlightHandler exposes route listings, aircraft profiles and the
// point-to-point emission calculator.
type FlightHandler struct {
	Airports ports.AirportRepository
	Routes   ports.RouteRepository
	Aircraft ports.AircraftRepository
}

func (h *FlightHandler) ListRoutes(w http.ResponseWriter, r *http.Request) {
	filter := ports.RouteFilter{
		Origin:      domain.NormalizeCode(r.URL.Query().Get("origin")),
		Destination: domain.NormalizeCode(r.URL.Query().Get("destination")),
		Skip:        queryInt(r, "skip", 0),
		Limit:       queryInt(r, "limit", 50),
	}
	if filter.Skip < 0 {
		writeError(w, r, http.StatusBadRequest, "skip must be >= 0")
		return
	}
	if filter.Limit < 1 || filter.Limit > 500 {
		writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 500")
		return
	}

	routes, err := h.Routes.ListRoutes(r.Context(), filter)
	if err != nil {
		log.Printf("list routes failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := make([]dto.RouteResponse, 0, len(routes))
	for _, rt := range routes {
		res = append(res, dto.RouteResponse{
			ID:                rt.ID,
			Origin:            rt.Origin,
			Destination:       rt.Destination,
			DistanceKm:        rt.DistanceKm,
			FlightTimeMinutes: rt.AvgFlightTimeMinutes,
		})
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *FlightHandler) ListAircraft(w http.ResponseWriter, r *http.Request) {
	aircraft, err := h.Aircraft.ListAircraft(r.Context())
	if err != nil {
		log.Printf("list aircraft failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := make([]dto.AircraftResponse, 0, len(aircraft))
	for _, a := range aircraft {
		res = append(res, dto.AircraftResponse{
			Model:          a.Model,
			Manufacturer:   a.Manufacturer,
			Capacity:       a.Capacity,
			FuelEfficiency: a.FuelEfficiencyKgPerKm,
			CruiseSpeed:    a.CruiseSpeedKmh,
			MaxRange:       a.MaxRangeKm,
		})
	}
	writeJSON(w, r, http.StatusOK, res)
}

// CalculateEmissions estimates fuel burn and CO2 for one direct leg between
// two catalog airports on a specific aircraft model.
func (h *FlightHandler) CalculateEmissions(w http.ResponseWriter, r *http.Request) {
	var req dto.EmissionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	origin := domain.NormalizeCode(req.Origin)
	destination := domain.NormalizeCode(req.Destination)
	if origin == "" || destination == "" {
		writeError(w, r, http.StatusBadRequest, "origin and destination are required")
		return
	}

	originAirport, err := h.Airports.GetAirport(r.Context(), origin)
	if err != nil {
		log.Printf("calculate emissions: get origin failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	destAirport, err := h.Airports.GetAirport(r.Context(), destination)
	if err != nil {
		log.Printf("calculate emissions: get destination failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if originAirport == nil || destAirport == nil {
		writeError(w, r, http.StatusNotFound, "airport not found")
		return
	}

	model := strings.TrimSpace(req.AircraftModel)
	aircraft, err := h.Aircraft.GetAircraft(r.Context(), model)
	if err != nil {
		log.Printf("calculate emissions: get aircraft failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if aircraft == nil {
		writeError(w, r, http.StatusNotFound, fmt.Sprintf("aircraft model %q not found", model))
		return
	}

	distance := originAirport.Coordinates.GreatCircleKm(destAirport.Coordinates)
	cost := services.NewCostModel(*aircraft)
	fuel, co2 := cost.FuelAndCO2(distance)

	perPassenger := 0.0
	if aircraft.Capacity > 0 {
		perPassenger = co2 / float64(aircraft.Capacity)
	}

	writeJSON(w, r, http.StatusOK, dto.EmissionResponse{
		Origin:            origin,
		Destination:       destination,
		DistanceKm:        round2(distance),
		AircraftModel:     aircraft.Model,
		FuelConsumptionKg: round2(fuel),
		CO2EmissionsKg:    round2(co2),
		CO2EmissionsTons:  round3(co2 / 1000),
		FlightTimeHours:   round2(cost.FlightTimeHours(distance)),
		Passengers:        aircraft.Capacity,
		CO2PerPassengerKg: round2(perPassenger),
	})
}
