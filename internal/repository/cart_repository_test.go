package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/binimoy-shop/internal/models"
)

func setupCartRepositoryTest(t *testing.T) *GormCartRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:cart_repo_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.CartSnapshot{}); err != nil {
		t.Fatalf("migrate cart snapshot failed: %v", err)
	}
	return NewCartRepository(db)
}

func TestCartSnapshotRoundTrip(t *testing.T) {
	repo := setupCartRepositoryTest(t)

	snapshot, err := repo.GetByKey("binimoy:cart:device-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if snapshot != nil {
		t.Fatalf("missing snapshot should be nil, got %+v", snapshot)
	}

	payload := `[{"product_id":"honey-1","quantity":2}]`
	if err := repo.Save("binimoy:cart:device-1", payload); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	snapshot, err = repo.GetByKey("binimoy:cart:device-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if snapshot == nil || snapshot.Payload != payload {
		t.Fatalf("unexpected snapshot %+v", snapshot)
	}
}

func TestCartSnapshotSaveUpserts(t *testing.T) {
	repo := setupCartRepositoryTest(t)

	if err := repo.Save("binimoy:cart:device-1", `[]`); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	updated := `[{"product_id":"oil-1","quantity":1}]`
	if err := repo.Save("binimoy:cart:device-1", updated); err != nil {
		t.Fatalf("second save failed: %v", err)
	}

	snapshot, err := repo.GetByKey("binimoy:cart:device-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if snapshot == nil || snapshot.Payload != updated {
		t.Fatalf("upsert did not replace payload: %+v", snapshot)
	}
}

func TestCartSnapshotKeysAreIsolated(t *testing.T) {
	repo := setupCartRepositoryTest(t)

	if err := repo.Save("binimoy:cart:device-1", `[{"product_id":"a","quantity":1}]`); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := repo.Save("binimoy:cart:device-2", `[{"product_id":"b","quantity":1}]`); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	first, err := repo.GetByKey("binimoy:cart:device-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	second, err := repo.GetByKey("binimoy:cart:device-2")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if first.Payload == second.Payload {
		t.Fatalf("device carts should be isolated")
	}
}

func TestCartSnapshotDelete(t *testing.T) {
	repo := setupCartRepositoryTest(t)

	if err := repo.Save("binimoy:cart:device-1", `[]`); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := repo.DeleteByKey("binimoy:cart:device-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	snapshot, err := repo.GetByKey("binimoy:cart:device-1")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if snapshot != nil {
		t.Fatalf("deleted snapshot should be nil, got %+v", snapshot)
	}
}
