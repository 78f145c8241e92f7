package chi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	bankrepo "github.com/kailas-cloud/redrelief/internal/repository/bank"
	campaignrepo "github.com/kailas-cloud/redrelief/internal/repository/campaign"
	inventoryrepo "github.com/kailas-cloud/redrelief/internal/repository/inventory"
	"github.com/kailas-cloud/redrelief/internal/repository/records/recordstest"
	requestrepo "github.com/kailas-cloud/redrelief/internal/repository/request"
	bankuc "github.com/kailas-cloud/redrelief/internal/usecase/bank"
	campaignuc "github.com/kailas-cloud/redrelief/internal/usecase/campaign"
	healthuc "github.com/kailas-cloud/redrelief/internal/usecase/health"
	inventoryuc "github.com/kailas-cloud/redrelief/internal/usecase/inventory"
	requestuc "github.com/kailas-cloud/redrelief/internal/usecase/request"
	searchuc "github.com/kailas-cloud/redrelief/internal/usecase/search"
)

// testEnv is a full router over an in-memory store.
type testEnv struct {
	store   *recordstest.Store
	handler http.Handler
}

func newTestEnv(t *testing.T, opts Options, indexed bool) *testEnv {
	t.Helper()
	ms := recordstest.New()
	inv := inventoryrepo.New(ms, "rr")
	banks := bankrepo.New(ms, "rr")
	reqs := requestrepo.New(ms, "rr")
	camps := campaignrepo.New(ms, "rr")

	if indexed {
		ctx := context.Background()
		for _, ix := range []interface{ EnsureIndex(context.Context) error }{inv, banks, reqs, camps} {
			if err := ix.EnsureIndex(ctx); err != nil {
				t.Fatalf("ensure index: %v", err)
			}
		}
	}

	srv := NewServer(Services{
		Search:    searchuc.New(inv, banks, nil),
		Campaigns: campaignuc.New(camps, nil),
		Inventory: inventoryuc.New(inv, banks),
		Banks:     bankuc.New(banks, inv),
		Requests:  requestuc.New(reqs),
		Health: healthuc.New(ms, map[string]healthuc.IndexChecker{
			"campaigns": camps,
		}),
	}, opts, nil)

	return &testEnv{store: ms, handler: srv.Routes()}
}

// do sends a request and decodes the JSON response body.
func (e *testEnv) do(t *testing.T, method, path string, body any, header ...string) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rr := httptest.NewRecorder()
	e.handler.ServeHTTP(rr, req)

	var out map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("%s %s: decode response: %v", method, path, err)
	}
	return rr.Code, out
}

// create POSTs body to path and returns the new record's id.
func (e *testEnv) create(t *testing.T, path string, body any) string {
	t.Helper()
	code, out := e.do(t, http.MethodPost, path, body)
	if code != http.StatusCreated {
		t.Fatalf("POST %s: got %d (%v)", path, code, out)
	}
	id, _ := dataObject(t, out)["id"].(string)
	if id == "" {
		t.Fatalf("POST %s: no id in %v", path, out)
	}
	return id
}

func (e *testEnv) createBank(t *testing.T, name, city string) string {
	t.Helper()
	return e.create(t, "/api/blood-banks", map[string]any{
		"name":    name,
		"address": "1 Main St",
		"city":    city,
		"phone":   "555-0100",
		"email":   name + "@example.org",
	})
}

func (e *testEnv) createInventory(t *testing.T, bankID, bloodType string, units int) string {
	t.Helper()
	return e.create(t, "/api/blood-inventory", map[string]any{
		"bloodType":      bloodType,
		"availableUnits": units,
		"bloodBankId":    bankID,
	})
}

func (e *testEnv) createCampaign(t *testing.T, bankID, location string, types ...string) string {
	t.Helper()
	return e.create(t, "/api/campaigns", map[string]any{
		"title":         "Drive " + location,
		"description":   "Community drive",
		"location":      location,
		"bloodBankId":   bankID,
		"bloodBankName": "Bank",
		"targetUnits":   50,
		"bloodTypes":    types,
	})
}

func dataObject(t *testing.T, out map[string]any) map[string]any {
	t.Helper()
	obj, ok := out["data"].(map[string]any)
	if !ok {
		t.Fatalf("data is not an object: %v", out["data"])
	}
	return obj
}

func dataList(t *testing.T, out map[string]any) []map[string]any {
	t.Helper()
	raw, ok := out["data"].([]any)
	if !ok {
		t.Fatalf("data is not a list: %v", out["data"])
	}
	items := make([]map[string]any, len(raw))
	for i, v := range raw {
		m, ok := v.(map[string]any)
		if !ok {
			t.Fatalf("data[%d] is not an object: %v", i, v)
		}
		items[i] = m
	}
	return items
}

func ids(items []map[string]any) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i], _ = it["id"].(string)
	}
	return out
}
