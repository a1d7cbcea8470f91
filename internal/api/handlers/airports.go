package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"flight-route-service/internal/api/dto"
	"flight-route-service/internal/domain"
	"flight-route-service/internal/ports"
)

// AirportHandler exposes read-only airport catalog endpoints.
type AirportHandler struct {
	Repo ports.AirportRepository
}

func (h *AirportHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := ports.AirportFilter{
		Country: strings.TrimSpace(r.URL.Query().Get("country")),
		Search:  strings.TrimSpace(r.URL.Query().Get("search")),
		Skip:    queryInt(r, "skip", 0),
		Limit:   queryInt(r, "limit", 100),
	}
	if filter.Skip < 0 {
		writeError(w, r, http.StatusBadRequest, "skip must be >= 0")
		return
	}
	if filter.Limit < 1 || filter.Limit > 1000 {
		writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 1000")
		return
	}

	airports, err := h.Repo.ListAirports(r.Context(), filter)
	if err != nil {
		log.Printf("list airports failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := make([]dto.AirportResponse, 0, len(airports))
	for _, a := range airports {
		res = append(res, airportResponse(a))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *AirportHandler) Get(w http.ResponseWriter, r *http.Request) {
	iata := domain.NormalizeCode(chi.URLParam(r, "iata"))

	airport, err := h.Repo.GetAirport(r.Context(), iata)
	if err != nil {
		log.Printf("get airport failed: iata=%s err=%v", iata, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if airport == nil {
		writeError(w, r, http.StatusNotFound, fmt.Sprintf("airport %s not found", iata))
		return
	}

	writeJSON(w, r, http.StatusOK, airportResponse(airport))
}

func (h *AirportHandler) Autocomplete(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeError(w, r, http.StatusBadRequest, "q is required")
		return
	}

	limit := queryInt(r, "limit", 10)
	if limit < 1 || limit > 50 {
		writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 50")
		return
	}

	airports, err := h.Repo.ListAirports(r.Context(), ports.AirportFilter{Search: q, Limit: limit})
	if err != nil {
		log.Printf("autocomplete airports failed: q=%q err=%v", q, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := make([]dto.AutocompleteEntry, 0, len(airports))
	for _, a := range airports {
		res = append(res, dto.AutocompleteEntry{
			IATA:    a.IATA,
			Name:    a.Name,
			City:    a.City,
			Country: a.Country,
			Label:   fmt.Sprintf("%s - %s (%s, %s)", a.IATA, a.Name, a.City, a.Country),
		})
	}
	writeJSON(w, r, http.StatusOK, res)
}

func airportResponse(a *domain.Airport) dto.AirportResponse {
	return dto.AirportResponse{
		ID:           a.ID,
		IATACode:     a.IATA,
		ICAOCode:     a.ICAO,
		Name:         a.Name,
		City:         a.City,
		Country:      a.Country,
		Latitude:     a.Coordinates.Lat,
		Longitude:    a.Coordinates.Lon,
		AltitudeFeet: a.AltitudeFeet,
	}
}
