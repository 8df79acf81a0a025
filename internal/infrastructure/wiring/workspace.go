// Package wiring assembles the storage and service graph for a workspace root.
package wiring

import (
	"github.com/felixgeelhaar/cowork/pkg/application"
	"github.com/felixgeelhaar/cowork/pkg/domain/sales"
	"github.com/felixgeelhaar/cowork/pkg/storage"
)

// Workspace bundles the infrastructure bound to a single workspace root.
type Workspace struct {
	Root   string
	Repo   *storage.FilesystemRepository
	Ledger sales.Ledger
	Audit  *application.AuditService
}

// NewWorkspace wires the filesystem repository, sales ledger and audit
// service for the given root directory.
func NewWorkspace(root string) *Workspace {
	repo := storage.NewFilesystemRepository(root)
	return &Workspace{
		Root:   root,
		Repo:   repo,
		Ledger: storage.NewFileLedger(root),
		Audit:  application.NewAuditService(repo),
	}
}
