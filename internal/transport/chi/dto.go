package chi

import (
	"time"

	dombank "github.com/kailas-cloud/redrelief/internal/domain/bank"
	domcamp "github.com/kailas-cloud/redrelief/internal/domain/campaign"
	dominv "github.com/kailas-cloud/redrelief/internal/domain/inventory"
	domreq "github.com/kailas-cloud/redrelief/internal/domain/request"
	domsearch "github.com/kailas-cloud/redrelief/internal/domain/search"
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

// --- inventory ---

type inventoryDTO struct {
	ID             string `json:"id"`
	BloodType      string `json:"bloodType"`
	AvailableUnits int    `json:"availableUnits"`
	BloodBankID    string `json:"bloodBankId"`
	ExpiryDate     string `json:"expiryDate,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
	UpdatedAt      string `json:"updatedAt,omitempty"`
}

func inventoryToDTO(it *dominv.Item) inventoryDTO {
	return inventoryDTO{
		ID:             it.ID,
		BloodType:      string(it.BloodType),
		AvailableUnits: it.AvailableUnits,
		BloodBankID:    it.BloodBankID,
		ExpiryDate:     it.ExpiryDate,
		CreatedAt:      formatTime(it.CreatedAt),
		UpdatedAt:      formatTime(it.UpdatedAt),
	}
}

func inventoriesToDTO(items []dominv.Item) []inventoryDTO {
	out := make([]inventoryDTO, len(items))
	for i := range items {
		out[i] = inventoryToDTO(&items[i])
	}
	return out
}

type inventoryCreateRequest struct {
	BloodType      string `json:"bloodType"`
	AvailableUnits *int   `json:"availableUnits"`
	BloodBankID    string `json:"bloodBankId"`
	ExpiryDate     string `json:"expiryDate"`
}

func (r *inventoryCreateRequest) draft() dominv.Draft {
	return dominv.Draft{
		BloodType:      r.BloodType,
		AvailableUnits: r.AvailableUnits,
		BloodBankID:    r.BloodBankID,
		ExpiryDate:     r.ExpiryDate,
	}
}

type inventoryUpdateRequest struct {
	BloodType      *string `json:"bloodType"`
	AvailableUnits *int    `json:"availableUnits"`
	BloodBankID    *string `json:"bloodBankId"`
	ExpiryDate     *string `json:"expiryDate"`
}

func (r *inventoryUpdateRequest) patch() dominv.Patch {
	return dominv.Patch{
		BloodType:      r.BloodType,
		AvailableUnits: r.AvailableUnits,
		BloodBankID:    r.BloodBankID,
		ExpiryDate:     r.ExpiryDate,
	}
}

// --- banks ---

type bankDTO struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Capacity      int    `json:"capacity"`
	LicenseNumber string `json:"licenseNumber"`
	ContactPerson string `json:"contactPerson"`
	Status        string `json:"status"`
	Approved      bool   `json:"approved"`
	CreatedAt     string `json:"createdAt,omitempty"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
}

func bankToDTO(b *dombank.Bank) bankDTO {
	return bankDTO{
		ID:            b.ID,
		Name:          b.Name,
		Address:       b.Address,
		City:          b.City,
		Phone:         b.Phone,
		Email:         b.Email,
		Capacity:      b.Capacity,
		LicenseNumber: b.LicenseNumber,
		ContactPerson: b.ContactPerson,
		Status:        string(b.Status),
		Approved:      b.Approved,
		CreatedAt:     formatTime(b.CreatedAt),
		UpdatedAt:     formatTime(b.UpdatedAt),
	}
}

func banksToDTO(banks []dombank.Bank) []bankDTO {
	out := make([]bankDTO, len(banks))
	for i := range banks {
		out[i] = bankToDTO(&banks[i])
	}
	return out
}

type bankCreateRequest struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	Capacity      int    `json:"capacity"`
	LicenseNumber string `json:"licenseNumber"`
	ContactPerson string `json:"contactPerson"`
}

func (r *bankCreateRequest) draft() dombank.Draft {
	return dombank.Draft{
		Name:          r.Name,
		Address:       r.Address,
		City:          r.City,
		Phone:         r.Phone,
		Email:         r.Email,
		Capacity:      r.Capacity,
		LicenseNumber: r.LicenseNumber,
		ContactPerson: r.ContactPerson,
	}
}

type bankUpdateRequest struct {
	Name          *string `json:"name"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	Capacity      *int    `json:"capacity"`
	LicenseNumber *string `json:"licenseNumber"`
	ContactPerson *string `json:"contactPerson"`
	Status        *string `json:"status"`
	Approved      *bool   `json:"approved"`
}

func (r *bankUpdateRequest) patch() dombank.Patch {
	return dombank.Patch{
		Name:          r.Name,
		Address:       r.Address,
		City:          r.City,
		Phone:         r.Phone,
		Email:         r.Email,
		Capacity:      r.Capacity,
		LicenseNumber: r.LicenseNumber,
		ContactPerson: r.ContactPerson,
		Status:        r.Status,
		Approved:      r.Approved,
	}
}

// --- search views ---

// aggregatedBankDTO is a bank with its matching inventory and unit total.
type aggregatedBankDTO struct {
	bankDTO
	Inventory      []inventoryDTO `json:"inventory"`
	TotalAvailable int            `json:"totalAvailable"`
}

func aggregatedToDTO(banks []domsearch.AggregatedBank) []aggregatedBankDTO {
	out := make([]aggregatedBankDTO, len(banks))
	for i := range banks {
		out[i] = aggregatedBankDTO{
			bankDTO:        bankToDTO(&banks[i].Bank),
			Inventory:      inventoriesToDTO(banks[i].Inventory),
			TotalAvailable: banks[i].TotalAvailable,
		}
	}
	return out
}

type slimBankDTO struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Address        string `json:"address"`
	City           string `json:"city"`
	Phone          string `json:"phone"`
	AvailableUnits int    `json:"availableUnits"`
}

func slimToDTO(banks []domsearch.SlimBank) []slimBankDTO {
	out := make([]slimBankDTO, len(banks))
	for i, b := range banks {
		out[i] = slimBankDTO(b)
	}
	return out
}

// --- requests ---

type requestDTO struct {
	ID            string `json:"id"`
	BloodType     string `json:"bloodType"`
	Units         int    `json:"units"`
	Urgency       string `json:"urgency"`
	PatientName   string `json:"patientName"`
	ContactNumber string `json:"contactNumber"`
	Hospital      string `json:"hospital"`
	BloodBankID   string `json:"bloodBankId,omitempty"`
	Notes         string `json:"notes"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt,omitempty"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
}

func requestToDTO(r *domreq.Request) requestDTO {
	return requestDTO{
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
		CreatedAt:     formatTime(r.CreatedAt),
		UpdatedAt:     formatTime(r.UpdatedAt),
	}
}

func requestsToDTO(rs []domreq.Request) []requestDTO {
	out := make([]requestDTO, len(rs))
	for i := range rs {
		out[i] = requestToDTO(&rs[i])
	}
	return out
}

type requestCreateRequest struct {
	BloodType     string `json:"bloodType"`
	Units         int    `json:"units"`
	Urgency       string `json:"urgency"`
	PatientName   string `json:"patientName"`
	ContactNumber string `json:"contactNumber"`
	Hospital      string `json:"hospital"`
	BloodBankID   string `json:"bloodBankId"`
	Notes         string `json:"notes"`
}

func (r *requestCreateRequest) draft() domreq.Draft {
	return domreq.Draft(*r)
}

type requestUpdateRequest struct {
	BloodType     *string `json:"bloodType"`
	Units         *int    `json:"units"`
	Urgency       *string `json:"urgency"`
	PatientName   *string `json:"patientName"`
	ContactNumber *string `json:"contactNumber"`
	Hospital      *string `json:"hospital"`
	BloodBankID   *string `json:"bloodBankId"`
	Notes         *string `json:"notes"`
}

func (r *requestUpdateRequest) patch() domreq.Patch {
	return domreq.Patch(*r)
}

// --- campaigns ---

type campaignDTO struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	BloodBankID   string   `json:"bloodBankId"`
	BloodBankName string   `json:"bloodBankName"`
	TargetUnits   int      `json:"targetUnits"`
	CurrentUnits  int      `json:"currentUnits"`
	StartDate     string   `json:"startDate,omitempty"`
	EndDate       string   `json:"endDate,omitempty"`
	ContactPerson string   `json:"contactPerson"`
	ContactPhone  string   `json:"contactPhone"`
	ContactEmail  string   `json:"contactEmail"`
	BloodTypes    []string `json:"bloodTypes"`
	Status        string   `json:"status"`
	Approved      bool     `json:"approved"`
	AdminNotes    string   `json:"adminNotes"`
	CreatedAt     string   `json:"createdAt,omitempty"`
	UpdatedAt     string   `json:"updatedAt,omitempty"`
	ApprovedAt    string   `json:"approvedAt,omitempty"`
}

func campaignToDTO(c *domcamp.Campaign) campaignDTO {
	types := make([]string, len(c.BloodTypes))
	for i, t := range c.BloodTypes {
		types[i] = string(t)
	}
	dto := campaignDTO{
		ID:            c.ID,
		Title:         c.Title,
		Description:   c.Description,
		Location:      c.Location,
		BloodBankID:   c.BloodBankID,
		BloodBankName: c.BloodBankName,
		TargetUnits:   c.TargetUnits,
		CurrentUnits:  c.CurrentUnits,
		StartDate:     c.StartDate,
		EndDate:       c.EndDate,
		ContactPerson: c.ContactPerson,
		ContactPhone:  c.ContactPhone,
		ContactEmail:  c.ContactEmail,
		BloodTypes:    types,
		Status:        string(c.Status),
		Approved:      c.Approved,
		AdminNotes:    c.AdminNotes,
		CreatedAt:     formatTime(c.CreatedAt),
		UpdatedAt:     formatTime(c.UpdatedAt),
	}
	if c.ApprovedAt != nil {
		dto.ApprovedAt = formatTime(*c.ApprovedAt)
	}
	return dto
}

func campaignsToDTO(cs []domcamp.Campaign) []campaignDTO {
	out := make([]campaignDTO, len(cs))
	for i := range cs {
		out[i] = campaignToDTO(&cs[i])
	}
	return out
}

type campaignCreateRequest struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	BloodBankID   string   `json:"bloodBankId"`
	BloodBankName string   `json:"bloodBankName"`
	TargetUnits   int      `json:"targetUnits"`
	StartDate     string   `json:"startDate"`
	EndDate       string   `json:"endDate"`
	ContactPerson string   `json:"contactPerson"`
	ContactPhone  string   `json:"contactPhone"`
	ContactEmail  string   `json:"contactEmail"`
	BloodTypes    []string `json:"bloodTypes"`
}

func (r *campaignCreateRequest) draft() domcamp.Draft {
	return domcamp.Draft(*r)
}

type campaignUpdateRequest struct {
	Title         *string   `json:"title"`
	Description   *string   `json:"description"`
	Location      *string   `json:"location"`
	BloodBankName *string   `json:"bloodBankName"`
	TargetUnits   *int      `json:"targetUnits"`
	CurrentUnits  *int      `json:"currentUnits"`
	StartDate     *string   `json:"startDate"`
	EndDate       *string   `json:"endDate"`
	ContactPerson *string   `json:"contactPerson"`
	ContactPhone  *string   `json:"contactPhone"`
	ContactEmail  *string   `json:"contactEmail"`
	BloodTypes    *[]string `json:"bloodTypes"`
}

func (r *campaignUpdateRequest) patch() domcamp.Patch {
	return domcamp.Patch(*r)
}

type statusRequest struct {
	Status     string `json:"status"`
	AdminNotes string `json:"adminNotes"`
}
