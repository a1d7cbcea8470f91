package handlers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"flight-route-service/internal/api/dto"
	"flight-route-service/internal/domain"
	"flight-route-service/internal/platform/obs"
	"flight-route-service/internal/ports"
	"flight-route-service/internal/services"
)

// Alternatives are capped at the fixed preference-profile count.
const maxAlternatives = 3

// OptimizeHandler runs flight-path optimization requests end to end:
// snapshot loading, engine invocation, result caching and history.
// The engine itself stays pure; everything stateful lives here.
type OptimizeHandler struct {
	Airports ports.AirportRepository
	Routes   ports.RouteRepository
	Aircraft ports.AircraftRepository
	History  ports.HistoryRepository
	Cache    ports.PathCache

	DefaultAircraft string
}

// OptimizeRoute computes the single best path for one preference and
// persists the result to the optimization history.
func (h *OptimizeHandler) OptimizeRoute(w http.ResponseWriter, r *http.Request) {
	req, aircraft, ok := h.decodeAndValidate(w, r)
	if !ok {
		return
	}

	pref := domain.ParsePreference(req.Preference)
	origin := domain.NormalizeCode(req.Origin)
	destination := domain.NormalizeCode(req.Destination)

	path, direct, err := h.computePath(r.Context(), origin, destination, aircraft, pref)
	if err != nil {
		log.Printf("optimize route failed: origin=%s destination=%s err=%v", origin, destination, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if h.History != nil {
		rec := ports.RecordFromPath(origin, destination, "A*", path, time.Now().UTC())
		if err := h.History.SaveOptimization(r.Context(), rec); err != nil {
			// History is best-effort bookkeeping; the computed path is
			// still valid, so the request succeeds.
			log.Printf("save optimization history failed: %v", err)
		}
	}

	writeJSON(w, r, http.StatusOK, h.response(path, direct, origin, destination, aircraft.Model, string(pref)))
}

// FindAlternatives returns up to three materially distinct options.
func (h *OptimizeHandler) FindAlternatives(w http.ResponseWriter, r *http.Request) {
	req, aircraft, ok := h.decodeAndValidate(w, r)
	if !ok {
		return
	}

	origin := domain.NormalizeCode(req.Origin)
	destination := domain.NormalizeCode(req.Destination)

	optimizer, err := h.buildOptimizer(r.Context(), aircraft)
	if err != nil {
		log.Printf("find alternatives: build optimizer failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	paths, err := optimizer.FindAlternatives(origin, destination, maxAlternatives)
	if err != nil {
		log.Printf("find alternatives failed: origin=%s destination=%s err=%v", origin, destination, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	direct, err := optimizer.DirectPath(origin, destination)
	if err != nil {
		log.Printf("find alternatives: direct baseline failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.AlternativeRoutesResponse{
		Routes:       make([]dto.OptimizationResponse, 0, len(paths)),
		TotalOptions: len(paths),
	}
	for i, p := range paths {
		res.Routes = append(res.Routes,
			h.response(p, direct, origin, destination, aircraft.Model, fmt.Sprintf("Option %d", i+1)))
	}

	writeJSON(w, r, http.StatusOK, res)
}

// HistoryList returns the most recent optimization queries.
func (h *OptimizeHandler) HistoryList(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 10)
	if limit < 1 || limit > 100 {
		writeError(w, r, http.StatusBadRequest, "limit must be between 1 and 100")
		return
	}

	if h.History == nil {
		writeJSON(w, r, http.StatusOK, []dto.HistoryEntry{})
		return
	}

	records, err := h.History.RecentOptimizations(r.Context(), limit)
	if err != nil {
		log.Printf("optimization history failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := make([]dto.HistoryEntry, 0, len(records))
	for _, rec := range records {
		res = append(res, dto.HistoryEntry{
			ID:          rec.ID,
			Origin:      rec.Origin,
			Destination: rec.Destination,
			Waypoints:   rec.Waypoints,
			DistanceKm:  rec.TotalDistanceKm,
			CO2Kg:       rec.EstimatedCO2Kg,
			Algorithm:   rec.Algorithm,
			CreatedAt:   rec.CreatedAt,
		})
	}
	writeJSON(w, r, http.StatusOK, res)
}

// decodeAndValidate parses the request body, checks both airport codes
// against the catalog, and resolves the aircraft profile. An unknown model
// degrades to the fleet-default profile rather than failing the request.
func (h *OptimizeHandler) decodeAndValidate(w http.ResponseWriter, r *http.Request) (dto.OptimizationRequest, domain.Aircraft, bool) {
	var req dto.OptimizationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return req, domain.Aircraft{}, false
	}

	origin := domain.NormalizeCode(req.Origin)
	destination := domain.NormalizeCode(req.Destination)
	if origin == "" || destination == "" {
		writeError(w, r, http.StatusBadRequest, "origin and destination are required")
		return req, domain.Aircraft{}, false
	}

	for _, code := range []string{origin, destination} {
		airport, err := h.Airports.GetAirport(r.Context(), code)
		if err != nil {
			log.Printf("optimize: get airport failed: iata=%s err=%v", code, err)
			writeError(w, r, http.StatusInternalServerError, "internal server error")
			return req, domain.Aircraft{}, false
		}
		if airport == nil {
			writeError(w, r, http.StatusNotFound, fmt.Sprintf("airport %s not found", code))
			return req, domain.Aircraft{}, false
		}
	}

	model := strings.TrimSpace(req.AircraftModel)
	if model == "" {
		model = h.DefaultAircraft
	}

	aircraft := domain.Aircraft{Model: model}
	if found, err := h.Aircraft.GetAircraft(r.Context(), model); err != nil {
		log.Printf("optimize: get aircraft failed: model=%q err=%v", model, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return req, domain.Aircraft{}, false
	} else if found != nil {
		aircraft = *found
	}

	return req, aircraft, true
}

// computePath resolves the optimized path and its direct baseline, going
// through the path cache when one is configured. Cache failures degrade to
// recomputation; they never fail the request.
func (h *OptimizeHandler) computePath(
	ctx context.Context,
	origin, destination string,
	aircraft domain.Aircraft,
	pref domain.Preference,
) (path, direct domain.FlightPath, err error) {
	defer obs.Time(ctx, "optimize.computePath")(&err)

	pathKey := cacheKey("route", origin, destination, aircraft.Model, string(pref))
	directKey := cacheKey("direct", origin, destination, aircraft.Model, "")

	if h.Cache != nil {
		cachedPath, pathHit, perr := h.Cache.GetPath(ctx, pathKey)
		if perr != nil {
			log.Printf("path cache get failed: key=%s err=%v", pathKey, perr)
		}
		cachedDirect, directHit, derr := h.Cache.GetPath(ctx, directKey)
		if derr != nil {
			log.Printf("path cache get failed: key=%s err=%v", directKey, derr)
		}
		if pathHit && directHit {
			return cachedPath, cachedDirect, nil
		}
	}

	optimizer, err := h.buildOptimizer(ctx, aircraft)
	if err != nil {
		return domain.FlightPath{}, domain.FlightPath{}, err
	}

	path, err = optimizer.OptimizeRoute(origin, destination, pref)
	if err != nil {
		return domain.FlightPath{}, domain.FlightPath{}, err
	}

	direct, err = optimizer.DirectPath(origin, destination)
	if err != nil {
		return domain.FlightPath{}, domain.FlightPath{}, err
	}

	if h.Cache != nil {
		if cerr := h.Cache.PutPath(ctx, pathKey, path); cerr != nil {
			log.Printf("path cache put failed: key=%s err=%v", pathKey, cerr)
		}
		if cerr := h.Cache.PutPath(ctx, directKey, direct); cerr != nil {
			log.Printf("path cache put failed: key=%s err=%v", directKey, cerr)
		}
	}

	return path, direct, nil
}

func (h *OptimizeHandler) buildOptimizer(ctx context.Context, aircraft domain.Aircraft) (*services.Optimizer, error) {
	airports, err := h.Airports.AllAirports(ctx)
	if err != nil {
		return nil, fmt.Errorf("build optimizer: load airports: %w", err)
	}

	routes, err := h.Routes.AllRoutes(ctx)
	if err != nil {
		return nil, fmt.Errorf("build optimizer: load routes: %w", err)
	}

	return services.NewOptimizer(airports, routes, aircraft), nil
}

func (h *OptimizeHandler) response(
	path, direct domain.FlightPath,
	origin, destination, aircraftModel, preference string,
) dto.OptimizationResponse {
	segments := make([]dto.PathSegment, 0, len(path.Waypoints)-1)
	for i := 0; i < len(path.Waypoints)-1; i++ {
		segments = append(segments, dto.PathSegment{
			FromAirport: path.Waypoints[i],
			ToAirport:   path.Waypoints[i+1],
		})
	}

	var savings *float64
	if direct.EstimatedCO2Kg > 0 && len(path.Waypoints) > 2 {
		s := round2((direct.EstimatedCO2Kg - path.EstimatedCO2Kg) / direct.EstimatedCO2Kg * 100)
		savings = &s
	}

	return dto.OptimizationResponse{
		Origin:             origin,
		Destination:        destination,
		Waypoints:          path.Waypoints,
		PathSegments:       segments,
		TotalDistanceKm:    round2(path.TotalDistanceKm),
		EstimatedFuelKg:    round2(path.EstimatedFuelKg),
		EstimatedCO2Kg:     round2(path.EstimatedCO2Kg),
		EstimatedCO2Tons:   round3(path.EstimatedCO2Kg / 1000),
		FlightTimeHours:    round2(path.FlightTimeHours),
		AircraftModel:      aircraftModel,
		Preference:         preference,
		Score:              round4(path.Score),
		CO2SavingsVsDirect: savings,
	}
}

func cacheKey(kind, origin, destination, model, pref string) string {
	return strings.Join([]string{kind, origin, destination, model, pref}, "|")
}
