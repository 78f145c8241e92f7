package chi

import (
	"net/http"

	domreq "github.com/kailas-cloud/redrelief/internal/domain/request"
)

var (
	opListRequests  = operation{failure: "Failed to fetch blood requests"}
	opGetRequest    = operation{failure: "Failed to fetch blood request", notFound: "Blood request not found"}
	opCreateRequest = operation{failure: "Failed to create blood request"}
	opUpdateRequest = operation{failure: "Failed to update blood request", notFound: "Blood request not found"}
	opRequestStatus = operation{failure: "Failed to update blood request status", notFound: "Blood request not found"}
	opDeleteRequest = operation{failure: "Failed to delete blood request", notFound: "Blood request not found"}
)

// listRequests handles GET /api/blood-requests.
func (s *Server) listRequests(w http.ResponseWriter, r *http.Request) {
	q, ok := queryStrings(w, r, "status", "bloodType", "bloodBankId")
	if !ok {
		return
	}
	reqs, err := s.Requests.List(r.Context(), domreq.Filter{Status: q[0], BloodType: q[1], BloodBankID: q[2]})
	if err != nil {
		s.handleError(w, r, err, opListRequests)
		return
	}
	writeList(w, requestsToDTO(reqs), nil)
}

// getRequest handles GET /api/blood-requests/{id}.
func (s *Server) getRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePath(w, r, "id")
	if !ok {
		return
	}
	req, err := s.Requests.Get(r.Context(), id)
	if err != nil {
		s.handleError(w, r, err, opGetRequest)
		return
	}
	writeOK(w, http.StatusOK, map[string]any{"data": requestToDTO(&req)})
}

// createRequest handles POST /api/blood-requests.
func (s *Server) createRequest(w http.ResponseWriter, r *http.Request) {
	var body requestCreateRequest
	if !decodeBody(w, r, &body) {
		return
	}
	req, err := s.Requests.Create(r.Context(), body.draft())
	if err != nil {
		s.handleError(w, r, err, opCreateRequest)
		return
	}
	writeOK(w, http.StatusCreated, map[string]any{
		"data":    requestToDTO(&req),
		"message": "Blood request created successfully",
	})
}

// updateRequest handles PUT /api/blood-requests/{id}.
func (s *Server) updateRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePath(w, r, "id")
	if !ok {
		return
	}
	var body requestUpdateRequest
	if !decodeBody(w, r, &body) {
		return
	}
	req, err := s.Requests.Update(r.Context(), id, body.patch())
	if err != nil {
		s.handleError(w, r, err, opUpdateRequest)
		return
	}
	writeOK(w, http.StatusOK, map[string]any{
		"data":    requestToDTO(&req),
		"message": "Blood request updated successfully",
	})
}

// updateRequestStatus handles PATCH /api/blood-requests/{id}/status.
func (s *Server) updateRequestStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePath(w, r, "id")
	if !ok {
		return
	}
	var body statusRequest
	if !decodeBody(w, r, &body) {
		return
	}
	req, err := s.Requests.UpdateStatus(r.Context(), id, body.Status)
	if err != nil {
		s.handleError(w, r, err, opRequestStatus)
		return
	}
	writeOK(w, http.StatusOK, map[string]any{
		"data":    requestToDTO(&req),
		"message": "Blood request status updated to " + string(req.Status),
	})
}

// deleteRequest handles DELETE /api/blood-requests/{id}.
func (s *Server) deleteRequest(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePath(w, r, "id")
	if !ok {
		return
	}
	if err := s.Requests.Delete(r.Context(), id); err != nil {
		s.handleError(w, r, err, opDeleteRequest)
		return
	}
	writeOK(w, http.StatusOK, map[string]any{"message": "Blood request deleted successfully"})
}
