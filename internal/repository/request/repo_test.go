package request

import (
	"context"
	"testing"
	"time"

	domreq "github.com/kailas-cloud/redrelief/internal/domain/request"
	"github.com/kailas-cloud/redrelief/internal/repository/records/recordstest"
)

func TestListWithoutIndex(t *testing.T) {
	ms := recordstest.New()
	r := New(ms, "rr")
	ctx := context.Background()

	for _, st := range []domreq.Status{domreq.StatusPending, domreq.StatusApproved, domreq.StatusPending} {
		_, err := r.Create(ctx, domreq.Request{
			BloodType: "B+", Units: 1, Urgency: domreq.UrgencyHigh, PatientName: "p",
			ContactNumber: "c", Status: st, CreatedAt: time.Now(),
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	got, err := r.List(ctx, domreq.Filter{Status: "pending"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d, want 2", len(got))
	}
	if ms.CallCount("Scan") != 1 {
		t.Error("missing index must fall back to a scan")
	}
}

func TestUpdateRoundTrip(t *testing.T) {
	r := New(recordstest.New(), "rr")
	ctx := context.Background()
	req, _ := r.Create(ctx, domreq.Request{BloodType: "B+", Units: 1, Status: domreq.StatusPending})
	req = req.WithStatus(domreq.StatusCompleted, time.Now())
	if err := r.Update(ctx, req); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := r.Get(ctx, req.ID)
	if err != nil || got.Status != domreq.StatusCompleted {
		t.Errorf("Get = %+v, %v", got, err)
	}
}
