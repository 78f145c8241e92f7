package health

import (
	"context"
	"sort"
)

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates the database is unreachable.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
	// CheckMissing indicates an index that was never created; queries fall back to scans.
	CheckMissing CheckResult = "missing"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks.
type Service struct {
	db      DBPinger
	indexes map[string]IndexChecker
}

// New creates a Service. indexes maps a collection name to its index probe and can be nil.
func New(db DBPinger, indexes map[string]IndexChecker) *Service {
	return &Service{db: db, indexes: indexes}
}

// Check runs health checks against all components.
// A missing index keeps the service healthy because every listing has a scan path.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult, len(s.indexes)+1)

	if err := s.db.Ping(ctx); err != nil {
		checks["database"] = CheckError
		return Report{Status: Unhealthy, Checks: checks}
	}
	checks["database"] = CheckOK

	names := make([]string, 0, len(s.indexes))
	for name := range s.indexes {
		names = append(names, name)
	}
	sort.Strings(names)

	status := Healthy
	for _, name := range names {
		ok, err := s.indexes[name].IndexReady(ctx)
		key := "index:" + name
		switch {
		case err != nil:
			checks[key] = CheckError
			status = Degraded
		case !ok:
			checks[key] = CheckMissing
		default:
			checks[key] = CheckOK
		}
	}

	return Report{Status: status, Checks: checks}
}
