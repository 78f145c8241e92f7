package inventory

import (
	"github.com/kailas-cloud/redrelief/internal/domain/bloodtype"
	dominv "github.com/kailas-cloud/redrelief/internal/domain/inventory"
	"github.com/kailas-cloud/redrelief/internal/repository/records"
)

// itemDoc is the stored JSON shape of an inventory item.
type itemDoc struct {
	ID             string `json:"id"`
	BloodType      string `json:"bloodType"`
	AvailableUnits int    `json:"availableUnits"`
	BloodBankID    string `json:"bloodBankId"`
	ExpiryDate     string `json:"expiryDate,omitempty"`
	CreatedAt      string `json:"createdAt,omitempty"`
	UpdatedAt      string `json:"updatedAt,omitempty"`
	CreatedTS      int64  `json:"created_ts"`
}

func toDoc(it *dominv.Item) itemDoc {
	return itemDoc{
		ID:             it.ID,
		BloodType:      string(it.BloodType),
		AvailableUnits: it.AvailableUnits,
		BloodBankID:    it.BloodBankID,
		ExpiryDate:     it.ExpiryDate,
		CreatedAt:      records.FormatTime(it.CreatedAt),
		UpdatedAt:      records.FormatTime(it.UpdatedAt),
		CreatedTS:      records.Unix(it.CreatedAt),
	}
}

func fromDoc(d *itemDoc) dominv.Item {
	return dominv.Item{
		ID:             d.ID,
		BloodType:      bloodtype.Type(d.BloodType),
		AvailableUnits: d.AvailableUnits,
		BloodBankID:    d.BloodBankID,
		ExpiryDate:     d.ExpiryDate,
		CreatedAt:      records.ParseTime(d.CreatedAt),
		UpdatedAt:      records.ParseTime(d.UpdatedAt),
	}
}

func fromDocs(docs []itemDoc) []dominv.Item {
	out := make([]dominv.Item, len(docs))
	for i := range docs {
		out[i] = fromDoc(&docs[i])
	}
	return out
}
