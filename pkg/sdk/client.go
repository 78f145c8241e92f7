package redrelief

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/redrelief/internal/db"
	dbRedis "github.com/kailas-cloud/redrelief/internal/db/redis"
	dbValkey "github.com/kailas-cloud/redrelief/internal/db/valkey"
	domcamp "github.com/kailas-cloud/redrelief/internal/domain/campaign"
	domsearch "github.com/kailas-cloud/redrelief/internal/domain/search"
	bankrepo "github.com/kailas-cloud/redrelief/internal/repository/bank"
	campaignrepo "github.com/kailas-cloud/redrelief/internal/repository/campaign"
	inventoryrepo "github.com/kailas-cloud/redrelief/internal/repository/inventory"
	campaignuc "github.com/kailas-cloud/redrelief/internal/usecase/campaign"
	healthuc "github.com/kailas-cloud/redrelief/internal/usecase/health"
	searchuc "github.com/kailas-cloud/redrelief/internal/usecase/search"
)

const (
	defaultReadinessTimeout = 10 * time.Second
	defaultKeyPrefix        = "redrelief"
)

// Internal interfaces, swapped for mocks in tests.
type searchUseCase interface {
	Search(ctx context.Context, bloodType, city, urgency string) ([]domsearch.AggregatedBank, error)
	ByBloodType(ctx context.Context, bloodType, city string) ([]domsearch.SlimBank, error)
	ByCity(ctx context.Context, city, bloodType string) ([]domsearch.AggregatedBank, error)
	AvailableTypes(ctx context.Context) ([]string, error)
	Cities(ctx context.Context) ([]string, error)
}

type campaignUseCase interface {
	List(ctx context.Context, f domcamp.Filter) (campaignuc.Listing, error)
	ByBloodBank(ctx context.Context, bloodBankID, status string) (campaignuc.Listing, error)
	ApprovedInCity(ctx context.Context, city, bloodType string) (campaignuc.Listing, error)
}

type indexer interface {
	EnsureIndex(ctx context.Context) error
	IndexReady(ctx context.Context) (bool, error)
}

// Client is the RedRelief SDK entry point.
type Client struct {
	store       db.Store
	searchSvc   searchUseCase
	campaignSvc campaignUseCase
	healthSvc   healthUseCase
	obs         *observer
}

// New creates a Client and connects to the database.
// The provided context is used for the initial readiness check and index creation.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{keyPrefix: defaultKeyPrefix}
	for _, o := range opts {
		o.apply(cfg)
	}

	if len(cfg.addrs) == 0 {
		return nil, errors.New("redrelief: database address required (use WithValkey or WithRedis)")
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	store, err := createStore(cfg)
	if err != nil {
		return nil, err
	}

	if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
		store.Close()
		return nil, fmt.Errorf("redrelief: database not ready: %w", err)
	}

	c, indexes := wireClient(store, cfg, obs)
	if cfg.ensureIndexes {
		for name, ix := range indexes {
			if err := ix.EnsureIndex(ctx); err != nil {
				store.Close()
				return nil, fmt.Errorf("redrelief: ensure %s index: %w", name, err)
			}
		}
	}
	return c, nil
}

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "valkey":
		s, err := dbValkey.NewStore(dbValkey.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("redrelief: create valkey store: %w", err)
		}
		return s, nil
	case "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("redrelief: create redis store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("redrelief: unknown driver %q", cfg.driver)
	}
}

func wireClient(store db.Store, cfg *clientConfig, obs *observer) (*Client, map[string]indexer) {
	invRepo := inventoryrepo.New(store, cfg.keyPrefix)
	bankRepo := bankrepo.New(store, cfg.keyPrefix)
	campRepo := campaignrepo.New(store, cfg.keyPrefix)

	indexes := map[string]indexer{
		"inventory": invRepo,
		"banks":     bankRepo,
		"campaigns": campRepo,
	}
	checkers := make(map[string]healthuc.IndexChecker, len(indexes))
	for name, ix := range indexes {
		checkers[name] = ix
	}

	return &Client{
		store:       store,
		searchSvc:   searchuc.New(invRepo, bankRepo, nil),
		campaignSvc: campaignuc.New(campRepo, obs),
		healthSvc:   healthuc.New(store, checkers),
		obs:         obs,
	}, indexes
}

// Close releases all resources.
func (c *Client) Close() {
	if c.store != nil {
		c.store.Close()
	}
}

// Ping checks database connectivity.
func (c *Client) Ping(ctx context.Context) (err error) {
	start := time.Now()
	defer func() { c.obs.observe("ping", start, err) }()

	if err = c.store.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Search returns the bank search service.
func (c *Client) Search() *SearchService {
	return &SearchService{svc: c.searchSvc, obs: c.obs}
}

// Campaigns returns the campaign listing service.
func (c *Client) Campaigns() *CampaignService {
	return &CampaignService{svc: c.campaignSvc, obs: c.obs}
}
