package localization

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/oshokin/xcode-upkeep/internal/logger"
)

// TestDefaultCatalog_Lookup checks the embedded German table.
func TestDefaultCatalog_Lookup(t *testing.T) {
	t.Parallel()

	catalog, err := DefaultCatalog()
	require.NoError(t, err)
	require.Equal(t, []string{"de", "es", "fr"}, catalog.Languages())

	translation, ok := catalog.Lookup("de", "Cancel")
	require.True(t, ok)
	require.Equal(t, "Abbrechen", translation)

	translation, ok = catalog.Lookup("es", "Cancel")
	require.True(t, ok)
	require.Equal(t, "Cancelar", translation)

	// Exact, case-sensitive matching.
	_, ok = catalog.Lookup("de", "cancel")
	require.False(t, ok)

	_, ok = catalog.Lookup("ja", "Cancel")
	require.False(t, ok)
}

// TestDefaultCatalog_TablesAreComplete checks every key maps to a non-empty value.
func TestDefaultCatalog_TablesAreComplete(t *testing.T) {
	t.Parallel()

	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	for _, lang := range catalog.Languages() {
		for phrase := range catalog.tables[lang] {
			translation, ok := catalog.Lookup(lang, phrase)
			require.Truef(t, ok, "%s: %q", lang, phrase)
			require.NotEmpty(t, translation)
		}
	}
}

// TestTranslate_FallsBackWithWarning returns the source phrase and logs once.
func TestTranslate_FallsBackWithWarning(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.WarnLevel)
	ctx := logger.ToContext(context.Background(), zap.New(core).Sugar())

	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	require.Equal(t, "Abbrechen", catalog.Translate(ctx, "de", "Cancel"))
	require.Zero(t, logs.Len())

	require.Equal(t, "Frobnicate", catalog.Translate(ctx, "de", "Frobnicate"))
	require.Equal(t, 1, logs.Len())
	require.Equal(t, "Frobnicate", logs.All()[0].ContextMap()["phrase"])
	require.Equal(t, "de", logs.All()[0].ContextMap()["language"])
}

// TestDefaultCatalog_FormatsKeepFileOrder checks formats.yaml is read in order.
func TestDefaultCatalog_FormatsKeepFileOrder(t *testing.T) {
	t.Parallel()

	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	formats := catalog.Formats()
	require.NotEmpty(t, formats)
	require.Equal(t, "Delete (%lld)", formats[0].Source)
	require.Equal(t, "Löschen (%lld)", formats[0].Translations["de"])
	require.Equal(t, "Version %@", formats[1].Source)
}

// TestLoadCatalog_Errors rejects bad language codes and malformed tables.
func TestLoadCatalog_Errors(t *testing.T) {
	t.Parallel()

	_, err := LoadCatalog(fstest.MapFS{
		"tables/not a code.yaml": {Data: []byte(`"a": "b"`)},
	}, "tables")
	require.Error(t, err)

	_, err = LoadCatalog(fstest.MapFS{
		"tables/formats.yaml": {Data: []byte(`- just a list`)},
	}, "tables")
	require.ErrorIs(t, err, errNotMapping)

	catalog, err := LoadCatalog(fstest.MapFS{
		"tables/DE.yaml":    {Data: []byte(`"Save": "Speichern"`)},
		"tables/README.txt": {Data: []byte(`ignored`)},
	}, "tables")
	require.NoError(t, err)
	require.Equal(t, []string{"de"}, catalog.Languages())
}

// TestDisplayName renders English and native names.
func TestDisplayName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "German - Deutsch", DisplayName("de"))
	require.Equal(t, "English", DisplayName("en"))
	require.Equal(t, "??", DisplayName("??"))
}
