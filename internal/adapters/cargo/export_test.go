package cargo

import "context"

// NewWithRunner creates an adapter whose subprocess execution is replaced
// by run. Test-only.
func NewWithRunner(run func(ctx context.Context, args []string) ([]byte, error)) *Adapter {
	return &Adapter{run: run}
}

// MetadataArgs exposes the flag translation for tests.
var MetadataArgs = metadataArgs

// CommandError exposes the stderr classification for tests.
var CommandError = commandError
