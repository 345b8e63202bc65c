package catalogue

import (
	"context"
	"testing"
	"time"

	"salonflow/models"
	"salonflow/services/scheduling"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeServiceRepo struct {
	services        map[string]models.Service
	listActiveCalls int
}

func newFakeServiceRepo() *fakeServiceRepo {
	return &fakeServiceRepo{services: make(map[string]models.Service)}
}

func (f *fakeServiceRepo) Create(_ context.Context, svc models.Service) (*models.Service, error) {
	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	f.services[svc.ID] = svc
	return &svc, nil
}

func (f *fakeServiceRepo) GetByID(_ context.Context, id string) (*models.Service, error) {
	svc, ok := f.services[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return &svc, nil
}

func (f *fakeServiceRepo) Update(_ context.Context, svc models.Service) (*models.Service, error) {
	if _, ok := f.services[svc.ID]; !ok {
		return nil, mongo.ErrNoDocuments
	}
	f.services[svc.ID] = svc
	return &svc, nil
}

func (f *fakeServiceRepo) Delete(_ context.Context, id string) error {
	delete(f.services, id)
	return nil
}

func (f *fakeServiceRepo) ListActive(_ context.Context) ([]models.Service, error) {
	f.listActiveCalls++
	var out []models.Service
	for _, svc := range f.services {
		if svc.Active {
			out = append(out, svc)
		}
	}
	return out, nil
}

func (f *fakeServiceRepo) EnsureIndexes() error { return nil }

func newCatalogue() (*DefaultCatalogueService, *fakeServiceRepo) {
	repo := newFakeServiceRepo()
	return &DefaultCatalogueService{Repo: repo}, repo
}

func TestCreate_ActivatesAndValidates(t *testing.T) {
	svc, _ := newCatalogue()
	ctx := context.Background()

	created, err := svc.Create(ctx, models.Service{Name: "Haircut", Duration: 45, Price: 30})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !created.Active {
		t.Error("new service should be active")
	}
	if created.ID == "" {
		t.Error("new service should get an id")
	}

	cases := []struct {
		name string
		in   models.Service
	}{
		{"empty name", models.Service{Name: "  ", Duration: 30}},
		{"zero duration", models.Service{Name: "Wax", Duration: 0}},
		{"off-grid duration", models.Service{Name: "Wax", Duration: 50}},
		{"negative price", models.Service{Name: "Wax", Duration: 30, Price: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(ctx, tc.in); scheduling.KindOf(err) != scheduling.KindValidation {
				t.Errorf("want validation error, got %v", err)
			}
		})
	}
}

func TestUpdate_KeepsActiveFlag(t *testing.T) {
	svc, _ := newCatalogue()
	ctx := context.Background()

	created, err := svc.Create(ctx, models.Service{Name: "Coloring", Duration: 90, Price: 80})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	updated, err := svc.Update(ctx, models.Service{ID: created.ID, Name: "Full Coloring", Duration: 120, Price: 95})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "Full Coloring" || updated.Duration != 120 {
		t.Errorf("fields not updated: %+v", updated)
	}
	if !updated.Active {
		t.Error("update should not change active flag")
	}

	if _, err := svc.Update(ctx, models.Service{ID: "missing", Name: "X", Duration: 30}); scheduling.KindOf(err) != scheduling.KindNotFound {
		t.Errorf("want not found, got %v", err)
	}
}

func TestRetire_RemovesFromActiveList(t *testing.T) {
	svc, _ := newCatalogue()
	ctx := context.Background()

	a, _ := svc.Create(ctx, models.Service{Name: "Haircut", Duration: 45, Price: 30})
	b, _ := svc.Create(ctx, models.Service{Name: "Manicure", Duration: 30, Price: 25})

	if err := svc.Retire(ctx, a.ID); err != nil {
		t.Fatalf("Retire: %v", err)
	}

	active, err := svc.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(active) != 1 || active[0].ID != b.ID {
		t.Errorf("want only %s active, got %+v", b.ID, active)
	}

	got, err := svc.Get(ctx, a.ID)
	if err != nil {
		t.Fatalf("retired service should still resolve: %v", err)
	}
	if got.Active {
		t.Error("retired service should be inactive")
	}
}

// fakeListingCache is an in-memory stand-in for the redis listing cache.
type fakeListingCache struct {
	entries map[string]string
	dels    int
}

func newFakeListingCache() *fakeListingCache {
	return &fakeListingCache{entries: make(map[string]string)}
}

func (f *fakeListingCache) Get(_ context.Context, key string) *redis.StringCmd {
	if raw, ok := f.entries[key]; ok {
		return redis.NewStringResult(raw, nil)
	}
	return redis.NewStringResult("", redis.Nil)
}

func (f *fakeListingCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) *redis.StatusCmd {
	switch v := value.(type) {
	case []byte:
		f.entries[key] = string(v)
	case string:
		f.entries[key] = v
	}
	return redis.NewStatusResult("OK", nil)
}

func (f *fakeListingCache) Del(_ context.Context, keys ...string) *redis.IntCmd {
	for _, key := range keys {
		delete(f.entries, key)
	}
	f.dels++
	return redis.NewIntResult(int64(len(keys)), nil)
}

func TestListActive_CachedUntilMutation(t *testing.T) {
	repo := newFakeServiceRepo()
	cache := newFakeListingCache()
	svc := &DefaultCatalogueService{Repo: repo, Cache: cache}
	ctx := context.Background()

	a, _ := svc.Create(ctx, models.Service{Name: "Haircut", Duration: 45, Price: 30})
	_, _ = svc.Create(ctx, models.Service{Name: "Manicure", Duration: 30, Price: 25})

	first, err := svc.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(first) != 2 || repo.listActiveCalls != 1 {
		t.Fatalf("warm-up listing: %d services, %d repo calls", len(first), repo.listActiveCalls)
	}

	second, err := svc.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(second) != 2 {
		t.Errorf("cached listing has %d services", len(second))
	}
	if repo.listActiveCalls != 1 {
		t.Errorf("warm cache should not reach the repo, got %d calls", repo.listActiveCalls)
	}

	// Any mutation drops the cached listing.
	if err := svc.Retire(ctx, a.ID); err != nil {
		t.Fatalf("Retire: %v", err)
	}
	third, err := svc.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(third) != 1 {
		t.Errorf("listing after retire has %d services, want 1", len(third))
	}
	if repo.listActiveCalls != 2 {
		t.Errorf("retire should invalidate the cache, got %d repo calls", repo.listActiveCalls)
	}
}
