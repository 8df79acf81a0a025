package cli

import (
	"testing"

	"github.com/felixgeelhaar/cowork/internal/infrastructure/wiring"
	"github.com/felixgeelhaar/cowork/pkg/storage"
)

func TestAuditVerify_CleanTrail(t *testing.T) {
	tempDir := t.TempDir()
	repo := storage.NewFilesystemRepository(tempDir)
	if err := repo.Initialize(); err != nil {
		t.Fatalf("initialize repo: %v", err)
	}

	workspace := wiring.NewWorkspace(tempDir)
	if err := workspace.Audit.Log("client.registered", "cli", map[string]interface{}{"client_id": "C1"}); err != nil {
		t.Fatalf("log event: %v", err)
	}
	if err := workspace.Audit.Log("room.booked", "cli", map[string]interface{}{"room_id": "S1"}); err != nil {
		t.Fatalf("log event: %v", err)
	}

	old := projectPath
	defer func() { projectPath = old }()
	projectPath = tempDir

	if err := auditVerifyCmd.RunE(auditVerifyCmd, nil); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestAuditTimeline_Empty(t *testing.T) {
	tempDir := t.TempDir()
	repo := storage.NewFilesystemRepository(tempDir)
	if err := repo.Initialize(); err != nil {
		t.Fatalf("initialize repo: %v", err)
	}

	old := projectPath
	defer func() { projectPath = old }()
	projectPath = tempDir

	if err := auditTimelineCmd.RunE(auditTimelineCmd, nil); err != nil {
		t.Fatalf("timeline: %v", err)
	}
}
