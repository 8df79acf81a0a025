package wiring

import "testing"

func TestBuildAppServices(t *testing.T) {
	root := t.TempDir()

	services, err := BuildAppServices(root)
	if err != nil {
		t.Fatalf("BuildAppServices failed: %v", err)
	}

	if services.Workspace == nil || services.Workspace.Repo == nil {
		t.Fatal("expected workspace with repository")
	}
	if services.Workspace.Root != root {
		t.Errorf("expected root %q, got %q", root, services.Workspace.Root)
	}
	if services.Init == nil || services.Clients == nil || services.Bookings == nil ||
		services.Inventory == nil || services.Billing == nil || services.Stats == nil {
		t.Fatal("expected all services to be wired")
	}
	if services.Config == nil {
		t.Fatal("expected config defaults")
	}
}
