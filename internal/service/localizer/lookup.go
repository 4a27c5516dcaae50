package localizer

import (
	"context"
	"fmt"

	"github.com/oshokin/xcode-upkeep/internal/config"
	"github.com/oshokin/xcode-upkeep/internal/localization"
	"github.com/oshokin/xcode-upkeep/internal/logger"
)

// Lookup translates phrase into lang with the built-in tables. A missing
// phrase comes back unchanged and is logged as a warning.
func Lookup(ctx context.Context, lang, phrase string) (string, error) {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "localize")

	code, err := config.CanonicalLanguage(lang)
	if err != nil {
		return "", err
	}

	catalog, err := localization.DefaultCatalog()
	if err != nil {
		return "", fmt.Errorf("load translation tables: %w", err)
	}

	return catalog.Translate(ctx, code, phrase), nil
}
