package request

import (
	"context"
	"fmt"
	"time"

	domreq "github.com/kailas-cloud/redrelief/internal/domain/request"
	domsearch "github.com/kailas-cloud/redrelief/internal/domain/search"
)

// Service handles blood request CRUD and status changes.
type Service struct {
	repo Repository
	now  func() time.Time
}

// New creates a request service.
func New(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Create validates d and files a pending request.
func (s *Service) Create(ctx context.Context, d domreq.Draft) (domreq.Request, error) {
	r, err := domreq.New(d, s.now())
	if err != nil {
		return domreq.Request{}, err
	}
	created, err := s.repo.Create(ctx, r)
	if err != nil {
		return domreq.Request{}, fmt.Errorf("create request: %w", err)
	}
	return created, nil
}

// Get returns a request by ID.
func (s *Service) Get(ctx context.Context, id string) (domreq.Request, error) {
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		return domreq.Request{}, fmt.Errorf("get request %s: %w", id, err)
	}
	return r, nil
}

// Update applies p to the stored request.
func (s *Service) Update(ctx context.Context, id string, p domreq.Patch) (domreq.Request, error) {
	if err := p.Validate(); err != nil {
		return domreq.Request{}, err
	}
	r, err := s.Get(ctx, id)
	if err != nil {
		return domreq.Request{}, err
	}
	r = p.Apply(r, s.now())
	if err := s.repo.Update(ctx, r); err != nil {
		return domreq.Request{}, fmt.Errorf("update request %s: %w", id, err)
	}
	return r, nil
}

// UpdateStatus moves a request to status.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) (domreq.Request, error) {
	st, err := domreq.ParseStatus(status)
	if err != nil {
		return domreq.Request{}, err
	}
	r, err := s.Get(ctx, id)
	if err != nil {
		return domreq.Request{}, err
	}
	r = r.WithStatus(st, s.now())
	if err := s.repo.Update(ctx, r); err != nil {
		return domreq.Request{}, fmt.Errorf("update request %s status: %w", id, err)
	}
	return r, nil
}

// Delete removes a request.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete request %s: %w", id, err)
	}
	return nil
}

// List returns requests matching f.
func (s *Service) List(ctx context.Context, f domreq.Filter) ([]domreq.Request, error) {
	f.BloodType = domsearch.NormalizeBloodType(f.BloodType)
	rs, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return rs, nil
}
