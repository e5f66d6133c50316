package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics(t *testing.T) {
	m := New()
	m.RideCreated()
	m.RideCreated()
	m.StatusChanged("Ongoing")
	m.RosterChanged("join")
	m.ObserveRPC("/ridecrew.v1.RideService/JoinRide", "ok", 5*time.Millisecond)

	if got := testutil.ToFloat64(m.ridesCreated); got != 2 {
		t.Errorf("rides_created_total = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.statusChanges.WithLabelValues("Ongoing")); got != 1 {
		t.Errorf("status changes = %v, want 1", got)
	}

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "ridecrew_rides_created_total 2") {
		t.Errorf("metrics output missing counter:\n%s", body)
	}
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	m.RideCreated()
	m.StatusChanged("Completed")
	m.RosterChanged("leave")
	m.RideRated()
	m.MessagePosted()
	m.Lookup("ok")
	m.ObserveRPC("p", "ok", time.Millisecond)
}
