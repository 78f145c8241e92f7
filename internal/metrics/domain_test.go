package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_IncFallback(t *testing.T) {
	before := testutil.ToFloat64(CampaignQueryFallbackTotal.WithLabelValues("city"))
	Recorder{}.IncFallback("city")
	after := testutil.ToFloat64(CampaignQueryFallbackTotal.WithLabelValues("city"))

	if after-before != 1 {
		t.Errorf("expected fallback counter +1, got %f -> %f", before, after)
	}
}

func TestRecorder_ObserveResults(t *testing.T) {
	Recorder{}.ObserveResults("blood_type", 3)

	if n := testutil.CollectAndCount(SearchResults); n == 0 {
		t.Error("expected search_results to have observations")
	}
}
