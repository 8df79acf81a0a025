package application_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/felixgeelhaar/cowork/pkg/application"
	"github.com/felixgeelhaar/cowork/pkg/storage"
)

func TestInitService_Initialize(t *testing.T) {
	tempDir := t.TempDir()
	repo := storage.NewFilesystemRepository(tempDir)
	audit := application.NewAuditService(repo)
	service := application.NewInitService(repo, audit)

	if err := service.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	for _, name := range []string{"clients.json", "products.json", "rooms.json", "bookings.json"} {
		if _, err := os.Stat(filepath.Join(tempDir, ".cowork", name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}

	// The seeded documents round trip.
	sp, err := repo.LoadSpace()
	if err != nil {
		t.Fatalf("LoadSpace failed: %v", err)
	}
	if len(sp.Rooms()) != 5 || len(sp.Products()) != 7 {
		t.Errorf("expected seeded space, got %d rooms %d products", len(sp.Rooms()), len(sp.Products()))
	}
}

func TestInitService_InitializeWithMock(t *testing.T) {
	repo := &MockRepo{}
	audit := &MockAudit{}
	service := application.NewInitService(repo, audit)

	if err := service.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if repo.Saves != 1 {
		t.Errorf("expected 1 save, got %d", repo.Saves)
	}
	if !audit.Logged("workspace.initialized") {
		t.Error("expected audit event")
	}
}
