package chi

import (
	"net/http"

	dombank "github.com/kailas-cloud/redrelief/internal/domain/bank"
)

var (
	opListBanks     = operation{failure: "Failed to fetch blood banks"}
	opGetBank       = operation{failure: "Failed to fetch blood bank", notFound: "Blood bank not found"}
	opCreateBank    = operation{failure: "Failed to create blood bank"}
	opUpdateBank    = operation{failure: "Failed to update blood bank", notFound: "Blood bank not found"}
	opDeleteBank    = operation{failure: "Failed to delete blood bank", notFound: "Blood bank not found"}
	opBankInventory = operation{failure: "Failed to fetch blood bank inventory", notFound: "Blood bank not found"}
)

// listBanks handles GET /api/blood-banks.
func (s *Server) listBanks(w http.ResponseWriter, r *http.Request) {
	q, ok := queryStrings(w, r, "city", "status")
	if !ok {
		return
	}
	approved, err := queryBool(r, "approved")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid query parameter approved")
		return
	}
	banks, err := s.Banks.List(r.Context(), dombank.Filter{City: q[0], Status: q[1], Approved: approved})
	if err != nil {
		s.handleError(w, r, err, opListBanks)
		return
	}
	writeList(w, banksToDTO(banks), nil)
}

// getBank handles GET /api/blood-banks/{id}.
func (s *Server) getBank(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePath(w, r, "id")
	if !ok {
		return
	}
	b, err := s.Banks.Get(r.Context(), id)
	if err != nil {
		s.handleError(w, r, err, opGetBank)
		return
	}
	writeOK(w, http.StatusOK, map[string]any{"data": bankToDTO(&b)})
}

// createBank handles POST /api/blood-banks.
func (s *Server) createBank(w http.ResponseWriter, r *http.Request) {
	var req bankCreateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	b, err := s.Banks.Create(r.Context(), req.draft())
	if err != nil {
		s.handleError(w, r, err, opCreateBank)
		return
	}
	writeOK(w, http.StatusCreated, map[string]any{
		"data":    bankToDTO(&b),
		"message": "Blood bank created successfully",
	})
}

// updateBank handles PUT /api/blood-banks/{id}.
func (s *Server) updateBank(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePath(w, r, "id")
	if !ok {
		return
	}
	var req bankUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	b, err := s.Banks.Update(r.Context(), id, req.patch())
	if err != nil {
		s.handleError(w, r, err, opUpdateBank)
		return
	}
	writeOK(w, http.StatusOK, map[string]any{
		"data":    bankToDTO(&b),
		"message": "Blood bank updated successfully",
	})
}

// deleteBank handles DELETE /api/blood-banks/{id}.
func (s *Server) deleteBank(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePath(w, r, "id")
	if !ok {
		return
	}
	if err := s.Banks.Delete(r.Context(), id); err != nil {
		s.handleError(w, r, err, opDeleteBank)
		return
	}
	writeOK(w, http.StatusOK, map[string]any{"message": "Blood bank deleted successfully"})
}

// bankInventory handles GET /api/blood-banks/{id}/inventory.
func (s *Server) bankInventory(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePath(w, r, "id")
	if !ok {
		return
	}
	items, err := s.Banks.Inventory(r.Context(), id)
	if err != nil {
		s.handleError(w, r, err, opBankInventory)
		return
	}
	writeList(w, inventoriesToDTO(items), nil)
}
