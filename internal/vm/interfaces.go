package vm

import "context"

// manifestClient defines the single orchestrator operation the batch loop
// needs: create a resource from an encoded manifest.
//
// In production, this is satisfied by *cliClient, which pipes the manifest
// to an external CLI. In tests, this is satisfied by mock implementations.
type manifestClient interface {
	// Create submits one encoded manifest for creation.
	Create(ctx context.Context, manifest []byte) error
}
