package application_test

import (
	"errors"
	"testing"

	"github.com/felixgeelhaar/cowork/pkg/application"
	"github.com/felixgeelhaar/cowork/pkg/domain/membership"
	"github.com/felixgeelhaar/cowork/pkg/domain/space"
)

func TestClientService_Register(t *testing.T) {
	repo := &MockRepo{}
	audit := &MockAudit{}
	service := application.NewClientService(repo, audit)

	client, err := service.Register("C1", "Ada", "ada@example.com", membership.TierPremium)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if client.Plan.Tier != membership.TierPremium {
		t.Errorf("expected Premium plan, got %s", client.Plan.Tier)
	}
	if repo.Saves != 1 {
		t.Errorf("expected 1 save, got %d", repo.Saves)
	}
	if !audit.Logged("client.registered") {
		t.Error("expected audit event")
	}

	got, err := repo.Space.Client("C1")
	if err != nil {
		t.Fatalf("expected client persisted: %v", err)
	}
	if got.Name != "Ada" {
		t.Errorf("unexpected name %q", got.Name)
	}
}

func TestClientService_RegisterUnknownTier(t *testing.T) {
	service := application.NewClientService(&MockRepo{}, &MockAudit{})

	if _, err := service.Register("C1", "Ada", "", membership.Tier("Oro")); err == nil {
		t.Fatal("expected error for unknown tier")
	}
}

func TestClientService_RegisterDuplicate(t *testing.T) {
	repo := &MockRepo{}
	audit := &MockAudit{}
	service := application.NewClientService(repo, audit)

	if _, err := service.Register("C1", "Ada", "", membership.TierBasic); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}

	_, err := service.Register("C1", "Eve", "", membership.TierBasic)
	if !errors.Is(err, space.ErrDuplicateClient) {
		t.Fatalf("expected ErrDuplicateClient, got %v", err)
	}
	if repo.Saves != 1 {
		t.Errorf("duplicate must not save, got %d saves", repo.Saves)
	}
}

func TestClientService_List(t *testing.T) {
	repo := &MockRepo{}
	service := application.NewClientService(repo, &MockAudit{})

	for _, id := range []string{"C2", "C1"} {
		if _, err := service.Register(id, "Name "+id, "", membership.TierBasic); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
	}

	clients, err := service.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(clients) != 2 {
		t.Fatalf("expected 2 clients, got %d", len(clients))
	}
	if clients[0].ID != "C2" || clients[1].ID != "C1" {
		t.Error("expected registration order")
	}
}

func TestClientService_LoadErrorPropagates(t *testing.T) {
	repo := &MockRepo{LoadError: errors.New("disk gone")}
	service := application.NewClientService(repo, &MockAudit{})

	if _, err := service.Register("C1", "Ada", "", membership.TierBasic); err == nil {
		t.Error("expected load error")
	}
	if _, err := service.List(); err == nil {
		t.Error("expected load error")
	}
}
