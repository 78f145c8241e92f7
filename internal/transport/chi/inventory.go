package chi

import (
	"net/http"

	dominv "github.com/kailas-cloud/redrelief/internal/domain/inventory"
)

var (
	opListInventory   = operation{failure: "Failed to fetch blood inventory"}
	opGetInventory    = operation{failure: "Failed to fetch blood inventory item", notFound: "Blood inventory item not found"}
	opCreateInventory = operation{failure: "Failed to create blood inventory item"}
	opUpdateInventory = operation{
		failure:  "Failed to update blood inventory item",
		notFound: "Blood inventory item not found",
	}
	opDeleteInventory = operation{
		failure:  "Failed to delete blood inventory item",
		notFound: "Blood inventory item not found",
	}
)

// listInventory handles GET /api/blood-inventory.
func (s *Server) listInventory(w http.ResponseWriter, r *http.Request) {
	q, ok := queryStrings(w, r, "bloodType", "bloodBankId", "city")
	if !ok {
		return
	}
	items, err := s.Inventory.List(r.Context(), dominv.Filter{
		BloodType:   q[0],
		BloodBankID: q[1],
		City:        q[2],
	})
	if err != nil {
		s.handleError(w, r, err, opListInventory)
		return
	}
	writeList(w, inventoriesToDTO(items), nil)
}

// getInventory handles GET /api/blood-inventory/{id}.
func (s *Server) getInventory(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePath(w, r, "id")
	if !ok {
		return
	}
	it, err := s.Inventory.Get(r.Context(), id)
	if err != nil {
		s.handleError(w, r, err, opGetInventory)
		return
	}
	writeOK(w, http.StatusOK, map[string]any{"data": inventoryToDTO(&it)})
}

// createInventory handles POST /api/blood-inventory.
func (s *Server) createInventory(w http.ResponseWriter, r *http.Request) {
	var req inventoryCreateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	it, err := s.Inventory.Create(r.Context(), req.draft())
	if err != nil {
		s.handleError(w, r, err, opCreateInventory)
		return
	}
	writeOK(w, http.StatusCreated, map[string]any{
		"data":    inventoryToDTO(&it),
		"message": "Blood inventory item created successfully",
	})
}

// updateInventory handles PUT /api/blood-inventory/{id}.
func (s *Server) updateInventory(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePath(w, r, "id")
	if !ok {
		return
	}
	var req inventoryUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	it, err := s.Inventory.Update(r.Context(), id, req.patch())
	if err != nil {
		s.handleError(w, r, err, opUpdateInventory)
		return
	}
	writeOK(w, http.StatusOK, map[string]any{
		"data":    inventoryToDTO(&it),
		"message": "Blood inventory item updated successfully",
	})
}

// deleteInventory handles DELETE /api/blood-inventory/{id}.
func (s *Server) deleteInventory(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePath(w, r, "id")
	if !ok {
		return
	}
	if err := s.Inventory.Delete(r.Context(), id); err != nil {
		s.handleError(w, r, err, opDeleteInventory)
		return
	}
	writeOK(w, http.StatusOK, map[string]any{"message": "Blood inventory item deleted successfully"})
}
