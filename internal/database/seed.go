package database

import (
	"context"

	"valorhub/internal/models"
	"valorhub/internal/repository"
)

// seedPatch is the default announcement inserted into an empty patches
// collection so the patch notes page is never blank on a fresh install.
var seedPatch = models.Patch{
	ID:      1,
	Version: "1.0",
	Date:    "2024-01-15",
	Text:    "Welcome to ValorHub! Community forum and patch tracker are live.",
}

// SeedPatches inserts the seed patch once if the patches collection is empty.
// It runs at startup only; the condition is not re-checked per request.
func SeedPatches(ctx context.Context, patches repository.PatchRepository) error {
	n, err := patches.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	patch := seedPatch
	return patches.Create(ctx, &patch)
}
