package request

import (
	"github.com/kailas-cloud/redrelief/internal/domain/bloodtype"
	domreq "github.com/kailas-cloud/redrelief/internal/domain/request"
	"github.com/kailas-cloud/redrelief/internal/repository/records"
)

// requestDoc is the stored JSON shape of a blood request.
type requestDoc struct {
	ID            string `json:"id"`
	BloodType     string `json:"bloodType"`
	Units         int    `json:"units"`
	Urgency       string `json:"urgency"`
	PatientName   string `json:"patientName"`
	ContactNumber string `json:"contactNumber"`
	Hospital      string `json:"hospital"`
	BloodBankID   string `json:"bloodBankId"`
	Notes         string `json:"notes"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt,omitempty"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
	CreatedTS     int64  `json:"created_ts"`
}

func toDoc(r *domreq.Request) requestDoc {
	return requestDoc{
		ID:            r.ID,
		BloodType:     string(r.BloodType),
		Units:         r.Units,
		Urgency:       string(r.Urgency),
		PatientName:   r.PatientName,
		ContactNumber: r.ContactNumber,
		Hospital:      r.Hospital,
		BloodBankID:   r.BloodBankID,
		Notes:         r.Notes,
		Status:        string(r.Status),
		CreatedAt:     records.FormatTime(r.CreatedAt),
		UpdatedAt:     records.FormatTime(r.UpdatedAt),
		CreatedTS:     records.Unix(r.CreatedAt),
	}
}

func fromDoc(d *requestDoc) domreq.Request {
	return domreq.Request{
		ID:            d.ID,
		BloodType:     bloodtype.Type(d.BloodType),
		Units:         d.Units,
		Urgency:       domreq.Urgency(d.Urgency),
		PatientName:   d.PatientName,
		ContactNumber: d.ContactNumber,
		Hospital:      d.Hospital,
		BloodBankID:   d.BloodBankID,
		Notes:         d.Notes,
		Status:        domreq.Status(d.Status),
		CreatedAt:     records.ParseTime(d.CreatedAt),
		UpdatedAt:     records.ParseTime(d.UpdatedAt),
	}
}
