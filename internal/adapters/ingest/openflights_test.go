package ingest

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const airportsSample = `1,"Goroka Airport","Goroka","Papua New Guinea","GKA","AYGA",-6.081689834590001,145.391998291,5282,10,"U","Pacific/Port_Moresby","airport","OurAirports"
2,"Some Heliport","Townsville","Australia","\N","YXXX",-19.25,146.76,20,10,"O","Australia/Brisbane","heliport","OurAirports"
3,"John F Kennedy International Airport","New York","United States","JFK","KJFK",40.63980103,-73.77890015,13,-5,"A","America/New_York","airport","OurAirports"
4,"Los Angeles International Airport","Los Angeles","United States","LAX","KLAX",33.94250107,-118.4079971,125,-8,"A","America/Los_Angeles","airport","OurAirports"
5,"No Code Field","Nowhere","United States","\N","\N",10.0,10.0,0,0,"U","UTC","airport","OurAirports"
`

const routesSample = `AA,24,JFK,3797,LAX,3484,,0,738
AA,24,JFK,3797,GKA,1,,1,738
ZZ,1,JFK,3797,XXX,9999,,0,738
AA,24,LAX,3484,JFK,3797,,0,738
`

func TestParseAirportsFiltersNonAirports(t *testing.T) {
	airports, err := ParseAirports(strings.NewReader(airportsSample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Heliport row and IATA-less rows are dropped.
	if len(airports) != 3 {
		t.Fatalf("parsed %d airports, want 3", len(airports))
	}

	byIATA := map[string]bool{}
	for _, a := range airports {
		byIATA[a.IATA] = true
	}
	for _, want := range []string{"GKA", "JFK", "LAX"} {
		if !byIATA[want] {
			t.Errorf("missing airport %s", want)
		}
	}
}

func TestParseRoutesEnrichesDistances(t *testing.T) {
	airports, err := ParseAirports(strings.NewReader(airportsSample))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	routes, err := ParseRoutes(strings.NewReader(routesSample), airports)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The one-stop row and the unknown-destination row are dropped.
	if len(routes) != 2 {
		t.Fatalf("parsed %d routes, want 2", len(routes))
	}

	for _, r := range routes {
		// JFK-LAX is roughly 3974 km.
		if math.Abs(r.DistanceKm-3974) > 40 {
			t.Errorf("route %s->%s distance = %.1f km, want ~3974", r.Origin, r.Destination, r.DistanceKm)
		}
	}
}

func TestCollectorFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "airports.dat"):
			_, _ = w.Write([]byte(airportsSample))
		case strings.HasSuffix(r.URL.Path, "routes.dat"):
			_, _ = w.Write([]byte(routesSample))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewCollectorWithURLs(srv.URL+"/airports.dat", srv.URL+"/routes.dat")

	airports, err := c.FetchAirports(context.Background())
	if err != nil {
		t.Fatalf("fetch airports: %v", err)
	}
	if len(airports) != 3 {
		t.Fatalf("fetched %d airports, want 3", len(airports))
	}

	routes, err := c.FetchRoutes(context.Background(), airports)
	if err != nil {
		t.Fatalf("fetch routes: %v", err)
	}
	if len(routes) != 2 {
		t.Fatalf("fetched %d routes, want 2", len(routes))
	}
}

func TestCollectorFetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewCollectorWithURLs(srv.URL+"/airports.dat", srv.URL+"/routes.dat")
	if _, err := c.FetchAirports(context.Background()); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestSampleAircraft(t *testing.T) {
	fleet := SampleAircraft()
	if len(fleet) == 0 {
		t.Fatal("sample fleet must not be empty")
	}
	for _, a := range fleet {
		if a.FuelEfficiencyKgPerKm <= 0 {
			t.Errorf("%s: non-positive efficiency", a.Model)
		}
		if a.CruiseSpeedKmh <= 0 {
			t.Errorf("%s: non-positive cruise speed", a.Model)
		}
	}
}
