package api

import (
	"encoding/json"
	"net/http"

	"rentaride/internal/catalog"
	"rentaride/internal/service"
)

type CatalogHandler struct {
	Service *service.CatalogService
}

func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// ListCars serves the catalog snapshot. A backend failure comes back as
// a loaded page in the error state, not an HTTP failure; the view stays
// up and a later visit retries.
func (h *CatalogHandler) ListCars(w http.ResponseWriter, r *http.Request) {
	snap := h.Service.Fetch()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap)
}

func (h *CatalogHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	mode := catalog.FilterByCategory
	if req.FilterBy == string(catalog.FilterByBrand) {
		mode = catalog.FilterByBrand
	}
	snap := h.Service.SearchSubmit(req.Search, req.Filter, mode)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap)
}

func (h *CatalogHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("q")
	suggestions := h.Service.Suggest(text)
	if suggestions == nil {
		suggestions = []string{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SuggestionsResponse{Suggestions: suggestions})
}
