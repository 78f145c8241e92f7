package chi

import (
	"net/http"

	domsearch "github.com/kailas-cloud/redrelief/internal/domain/search"
)

var (
	opSearch         = operation{failure: "Failed to perform search"}
	opSearchByType   = operation{failure: "Failed to search by blood type"}
	opSearchByCity   = operation{failure: "Failed to search by city"}
	opAvailableTypes = operation{failure: "Failed to fetch available blood types"}
	opCities         = operation{failure: "Failed to fetch cities"}
)

// search handles GET /api/search.
func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	q, ok := queryStrings(w, r, "bloodType", "city", "urgency")
	if !ok {
		return
	}
	bloodType, city, urgency := q[0], q[1], q[2]

	banks, err := s.Search.Search(r.Context(), bloodType, city, urgency)
	if err != nil {
		s.handleError(w, r, err, opSearch)
		return
	}
	writeList(w, aggregatedToDTO(banks), map[string]any{
		"searchParams": map[string]string{
			"bloodType": domsearch.NormalizeBloodType(bloodType),
			"city":      city,
			"urgency":   urgency,
		},
	})
}

// searchByBloodType handles GET /api/search/blood-type/{type}.
func (s *Server) searchByBloodType(w http.ResponseWriter, r *http.Request) {
	bloodType, ok := requirePath(w, r, "type")
	if !ok {
		return
	}
	q, ok := queryStrings(w, r, "city")
	if !ok {
		return
	}

	banks, err := s.Search.ByBloodType(r.Context(), bloodType, q[0])
	if err != nil {
		s.handleError(w, r, err, opSearchByType)
		return
	}
	writeList(w, slimToDTO(banks), map[string]any{"bloodType": bloodType})
}

// searchByCity handles GET /api/search/city/{city}.
func (s *Server) searchByCity(w http.ResponseWriter, r *http.Request) {
	city, ok := requirePath(w, r, "city")
	if !ok {
		return
	}
	q, ok := queryStrings(w, r, "bloodType")
	if !ok {
		return
	}

	banks, err := s.Search.ByCity(r.Context(), city, q[0])
	if err != nil {
		s.handleError(w, r, err, opSearchByCity)
		return
	}
	writeList(w, aggregatedToDTO(banks), map[string]any{"city": city})
}

// availableTypes handles GET /api/search/available-types.
func (s *Server) availableTypes(w http.ResponseWriter, r *http.Request) {
	types, err := s.Search.AvailableTypes(r.Context())
	if err != nil {
		s.handleError(w, r, err, opAvailableTypes)
		return
	}
	writeList(w, types, nil)
}

// cities handles GET /api/search/cities.
func (s *Server) cities(w http.ResponseWriter, r *http.Request) {
	cities, err := s.Search.Cities(r.Context())
	if err != nil {
		s.handleError(w, r, err, opCities)
		return
	}
	writeList(w, cities, nil)
}
