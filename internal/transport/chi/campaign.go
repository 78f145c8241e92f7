package chi

import (
	"net/http"

	domcamp "github.com/kailas-cloud/redrelief/internal/domain/campaign"
	campaignuc "github.com/kailas-cloud/redrelief/internal/usecase/campaign"
)

var (
	opListCampaigns   = operation{failure: "Failed to fetch campaigns"}
	opGetCampaign     = operation{failure: "Failed to fetch campaign", notFound: "Campaign not found"}
	opCreateCampaign  = operation{failure: "Failed to create campaign"}
	opUpdateCampaign  = operation{failure: "Failed to update campaign", notFound: "Campaign not found"}
	opCampaignStatus  = operation{failure: "Failed to update campaign status", notFound: "Campaign not found"}
	opDeleteCampaign  = operation{failure: "Failed to delete campaign", notFound: "Campaign not found"}
	opCampaignsByBank = operation{failure: "Failed to fetch campaigns by blood bank"}
	opCampaignsByCity = operation{failure: "Failed to fetch campaigns by city"}
)

// writeListing writes a campaign listing, adding the fallback note when degraded.
func writeListing(w http.ResponseWriter, l *campaignuc.Listing, extra map[string]any) {
	if note := l.Note(); note != "" {
		if extra == nil {
			extra = map[string]any{}
		}
		extra["note"] = note
	}
	writeList(w, campaignsToDTO(l.Campaigns), extra)
}

// listCampaigns handles GET /api/campaigns.
func (s *Server) listCampaigns(w http.ResponseWriter, r *http.Request) {
	q, ok := queryStrings(w, r, "status", "city", "bloodBankId", "bloodType")
	if !ok {
		return
	}
	listing, err := s.Campaigns.List(r.Context(), domcamp.Filter{
		Status:      q[0],
		Location:    q[1],
		BloodBankID: q[2],
		BloodType:   q[3],
	})
	if err != nil {
		s.handleError(w, r, err, opListCampaigns)
		return
	}
	writeListing(w, &listing, nil)
}

// getCampaign handles GET /api/campaigns/{id}.
func (s *Server) getCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePath(w, r, "id")
	if !ok {
		return
	}
	c, err := s.Campaigns.Get(r.Context(), id)
	if err != nil {
		s.handleError(w, r, err, opGetCampaign)
		return
	}
	writeOK(w, http.StatusOK, map[string]any{"data": campaignToDTO(&c)})
}

// createCampaign handles POST /api/campaigns.
func (s *Server) createCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignCreateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	c, err := s.Campaigns.Create(r.Context(), req.draft())
	if err != nil {
		s.handleError(w, r, err, opCreateCampaign)
		return
	}
	writeOK(w, http.StatusCreated, map[string]any{
		"data":    campaignToDTO(&c),
		"message": "Campaign created successfully",
	})
}

// updateCampaign handles PUT /api/campaigns/{id}.
func (s *Server) updateCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePath(w, r, "id")
	if !ok {
		return
	}
	var req campaignUpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	c, err := s.Campaigns.Update(r.Context(), id, req.patch())
	if err != nil {
		s.handleError(w, r, err, opUpdateCampaign)
		return
	}
	writeOK(w, http.StatusOK, map[string]any{
		"data":    campaignToDTO(&c),
		"message": "Campaign updated successfully",
	})
}

// updateCampaignStatus handles PATCH /api/campaigns/{id}/status.
func (s *Server) updateCampaignStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePath(w, r, "id")
	if !ok {
		return
	}
	var req statusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	c, err := s.Campaigns.UpdateStatus(r.Context(), id, req.Status, req.AdminNotes)
	if err != nil {
		s.handleError(w, r, err, opCampaignStatus)
		return
	}
	writeOK(w, http.StatusOK, map[string]any{
		"data":    campaignToDTO(&c),
		"message": "Campaign " + string(c.Status) + " successfully",
	})
}

// deleteCampaign handles DELETE /api/campaigns/{id}.
func (s *Server) deleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := requirePath(w, r, "id")
	if !ok {
		return
	}
	if err := s.Campaigns.Delete(r.Context(), id); err != nil {
		s.handleError(w, r, err, opDeleteCampaign)
		return
	}
	writeOK(w, http.StatusOK, map[string]any{"message": "Campaign deleted successfully"})
}

// campaignsByBloodBank handles GET /api/campaigns/blood-bank/{bloodBankId}.
func (s *Server) campaignsByBloodBank(w http.ResponseWriter, r *http.Request) {
	bankID, ok := requirePath(w, r, "bloodBankId")
	if !ok {
		return
	}
	q, ok := queryStrings(w, r, "status")
	if !ok {
		return
	}
	listing, err := s.Campaigns.ByBloodBank(r.Context(), bankID, q[0])
	if err != nil {
		s.handleError(w, r, err, opCampaignsByBank)
		return
	}
	writeListing(w, &listing, nil)
}

// campaignsByCity handles GET /api/campaigns/city/{city}.
func (s *Server) campaignsByCity(w http.ResponseWriter, r *http.Request) {
	city, ok := requirePath(w, r, "city")
	if !ok {
		return
	}
	q, ok := queryStrings(w, r, "bloodType")
	if !ok {
		return
	}
	listing, err := s.Campaigns.ApprovedInCity(r.Context(), city, q[0])
	if err != nil {
		s.handleError(w, r, err, opCampaignsByCity)
		return
	}
	writeListing(w, &listing, map[string]any{"city": city})
}
