package repository

import (
	"context"
	"reflect"
	"testing"

	"tendas-backend/internal/domain"
	"tendas-backend/internal/storage"

	"go.uber.org/zap"
)

func newTestRepo() (CatalogRepository, *storage.MemoryKV) {
	kv := storage.NewMemoryKV()
	logger, _ := zap.NewDevelopment()
	return NewCatalogRepository(kv, logger), kv
}

func TestLoadReturnsDefaultsWhenEmpty(t *testing.T) {
	repo, _ := newTestRepo()
	ctx := context.Background()

	products := repo.Load(ctx)

	if len(products) != 6 {
		t.Fatalf("expected 6 default products, got %d", len(products))
	}

	seen := make(map[int]bool)
	for _, p := range products {
		if len(p.Images) < 1 {
			t.Errorf("product %d has no images", p.ID)
		}
		if p.Image != p.Images[0] {
			t.Errorf("product %d primary image %q does not match images[0] %q", p.ID, p.Image, p.Images[0])
		}
		if seen[p.ID] {
			t.Errorf("duplicate product id %d", p.ID)
		}
		seen[p.ID] = true
	}
	for id := 1; id <= 6; id++ {
		if !seen[id] {
			t.Errorf("missing default product id %d", id)
		}
	}

	// Reading twice without a save is idempotent
	again := repo.Load(ctx)
	if !reflect.DeepEqual(products, again) {
		t.Error("two loads without an intervening save returned different catalogs")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	repo, _ := newTestRepo()
	ctx := context.Background()

	catalog := []domain.Product{
		{
			ID:          10,
			Name:        "Dome Tent",
			Description: "Small dome tent",
			Image:       "/img/dome/main.jpg",
			Images:      []string{"/img/dome/main.jpg", "/img/dome/1.jpg"},
			Category:    "Tents",
			Capacity:    "2 People",
		},
		{
			ID:     11,
			Name:   "Boat Cover",
			Image:  "/img/boat.jpg",
			Images: []string{"/img/boat.jpg"},
		},
	}

	if !repo.Save(ctx, catalog) {
		t.Fatal("save failed")
	}

	loaded := repo.Load(ctx)
	if !reflect.DeepEqual(catalog, loaded) {
		t.Errorf("round trip mismatch:\nsaved:  %+v\nloaded: %+v", catalog, loaded)
	}
}

func TestLoadFallsBackOnCorruptValue(t *testing.T) {
	repo, kv := newTestRepo()
	ctx := context.Background()

	if err := kv.Set(ctx, CatalogKey, "{not json"); err != nil {
		t.Fatal(err)
	}

	products := repo.Load(ctx)
	if len(products) != 6 {
		t.Fatalf("expected default catalog after corrupt value, got %d products", len(products))
	}
}

func TestUpdateImagesSuccess(t *testing.T) {
	repo, _ := newTestRepo()
	ctx := context.Background()

	if !repo.UpdateImages(ctx, 3, []string{"/img/a.jpg", "/img/b.jpg", ""}) {
		t.Fatal("expected update to succeed")
	}

	for _, p := range repo.Load(ctx) {
		if p.ID != 3 {
			continue
		}
		want := []string{"/img/a.jpg", "/img/b.jpg"}
		if !reflect.DeepEqual(p.Images, want) {
			t.Errorf("expected images %v, got %v", want, p.Images)
		}
		if p.Image != "/img/a.jpg" {
			t.Errorf("expected primary image /img/a.jpg, got %q", p.Image)
		}
		return
	}
	t.Fatal("product 3 not found")
}

func TestUpdateImagesTrimsEntries(t *testing.T) {
	repo, _ := newTestRepo()
	ctx := context.Background()

	if !repo.UpdateImages(ctx, 1, []string{"  /img/padded.jpg  "}) {
		t.Fatal("expected update to succeed")
	}

	for _, p := range repo.Load(ctx) {
		if p.ID == 1 && p.Image != "/img/padded.jpg" {
			t.Errorf("expected trimmed primary image, got %q", p.Image)
		}
	}
}

func TestUpdateImagesRejectsEmpty(t *testing.T) {
	repo, _ := newTestRepo()
	ctx := context.Background()

	// Establish a known state first
	if !repo.UpdateImages(ctx, 3, []string{"/img/a.jpg", "/img/b.jpg"}) {
		t.Fatal("setup update failed")
	}
	before := repo.Load(ctx)

	if repo.UpdateImages(ctx, 3, []string{}) {
		t.Error("expected empty image list to be rejected")
	}
	if repo.UpdateImages(ctx, 3, []string{"", "   "}) {
		t.Error("expected all-blank image list to be rejected")
	}

	after := repo.Load(ctx)
	if !reflect.DeepEqual(before, after) {
		t.Error("rejected updates must leave the persisted catalog unchanged")
	}
}

func TestUpdateImagesUnknownID(t *testing.T) {
	repo, _ := newTestRepo()
	ctx := context.Background()

	before := repo.Load(ctx)

	if repo.UpdateImages(ctx, 999999, []string{"http://x/y.jpg"}) {
		t.Error("expected unknown id to be rejected")
	}

	after := repo.Load(ctx)
	if !reflect.DeepEqual(before, after) {
		t.Error("rejected updates must leave the catalog unchanged")
	}
}

func TestSaveFailureReturnsFalse(t *testing.T) {
	repo, kv := newTestRepo()
	ctx := context.Background()

	if !repo.Save(ctx, DefaultProducts()) {
		t.Fatal("initial save failed")
	}
	before := repo.Load(ctx)

	kv.FailWrites = storage.ErrWriteRefused

	if repo.Save(ctx, nil) {
		t.Error("expected save to report failure when storage refuses writes")
	}
	if repo.UpdateImages(ctx, 1, []string{"/img/new.jpg"}) {
		t.Error("expected update to report failure when storage refuses writes")
	}

	kv.FailWrites = nil
	after := repo.Load(ctx)
	if !reflect.DeepEqual(before, after) {
		t.Error("failed writes must leave prior persisted state untouched")
	}
}

func TestResetIdempotent(t *testing.T) {
	repo, _ := newTestRepo()
	ctx := context.Background()

	if !repo.UpdateImages(ctx, 2, []string{"/img/changed.jpg"}) {
		t.Fatal("setup update failed")
	}

	if !repo.Reset(ctx) {
		t.Fatal("reset failed")
	}
	first := repo.Load(ctx)

	if !repo.Reset(ctx) {
		t.Fatal("second reset failed")
	}
	second := repo.Load(ctx)

	if !reflect.DeepEqual(first, second) {
		t.Error("reset is not idempotent")
	}
	if !reflect.DeepEqual(first, DefaultProducts()) {
		t.Error("reset did not restore the default catalog")
	}
}
