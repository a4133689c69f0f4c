package localize_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize"
	"github.com/dmitrymomot/localize/langs"
)

func TestWithYAMLDir(t *testing.T) {
	t.Parallel()

	t.Run("loads one file per culture", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en.yaml": &fstest.MapFile{Data: []byte("checkout:\n  title: Checkout\n")},
			"de.yml":  &fstest.MapFile{Data: []byte("checkout:\n  title: Kasse\n")},
		}

		registry, err := localize.New(localize.WithYAMLDir(fsys))
		require.NoError(t, err)
		require.Equal(t, "Checkout", registry.GetString("checkout.title", "en"))
		require.Equal(t, "Kasse", registry.GetString("checkout.title", "de"))
	})

	t.Run("keeps built-in messages under the overlay", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"de.yaml": &fstest.MapFile{Data: []byte("checkout:\n  title: Kasse\n")},
		}

		registry, err := localize.New(localize.WithYAMLDir(fsys))
		require.NoError(t, err)
		require.Equal(t, requiredDE, registry.GetString(langs.KeyRequired, "de"))
	})

	t.Run("loads region culture files", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"pt-BR.yaml": &fstest.MapFile{Data: []byte("checkout:\n  title: Finalizar compra\n")},
		}

		registry, err := localize.New(localize.WithYAMLDir(fsys))
		require.NoError(t, err)
		require.Equal(t, "Finalizar compra", registry.GetString("checkout.title", "pt-BR"))
	})

	t.Run("canonicalizes culture codes from file names", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"PT_BR.yaml": &fstest.MapFile{Data: []byte("checkout:\n  title: Finalizar compra\n")},
		}

		registry, err := localize.New(localize.WithYAMLDir(fsys))
		require.NoError(t, err)
		require.Equal(t, "Finalizar compra", registry.GetString("checkout.title", "pt-br"))
	})

	t.Run("ignores other files and subdirectories", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en.yaml":        &fstest.MapFile{Data: []byte("checkout:\n  title: Checkout\n")},
			"notes.txt":      &fstest.MapFile{Data: []byte("not a translation")},
			"nested/fr.yaml": &fstest.MapFile{Data: []byte("cart:\n  title: Panier\n")},
		}

		registry, err := localize.New(localize.WithYAMLDir(fsys))
		require.NoError(t, err)
		require.Equal(t, "Checkout", registry.GetString("checkout.title", "en"))
		require.Empty(t, registry.GetString("cart.title", "fr"))
	})

	t.Run("stringifies non-string leaves", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en.yaml": &fstest.MapFile{Data: []byte("limits:\n  max: 42\n")},
		}

		registry, err := localize.New(localize.WithYAMLDir(fsys))
		require.NoError(t, err)
		require.Equal(t, "42", registry.GetString("limits.max", "en"))
	})

	t.Run("skips empty files", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en.yaml": &fstest.MapFile{Data: []byte("")},
		}

		registry, err := localize.New(localize.WithYAMLDir(fsys))
		require.NoError(t, err)
		require.Equal(t, requiredEN, registry.GetString(langs.KeyRequired, "en"))
	})

	t.Run("returns error for malformed yaml", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en.yaml": &fstest.MapFile{Data: []byte("checkout: [unclosed")},
		}

		_, err := localize.New(localize.WithYAMLDir(fsys))
		require.Error(t, err)
		require.ErrorIs(t, err, localize.ErrInvalidFile)
	})

	t.Run("returns error for a file without a culture name", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			".yaml": &fstest.MapFile{Data: []byte("checkout:\n  title: Checkout\n")},
		}

		_, err := localize.New(localize.WithYAMLDir(fsys))
		require.Error(t, err)
		require.ErrorIs(t, err, localize.ErrInvalidFile)
	})
}

func TestWithJSONDir(t *testing.T) {
	t.Parallel()

	t.Run("loads one file per culture", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en.json": &fstest.MapFile{Data: []byte(`{"checkout": {"title": "Checkout"}}`)},
			"de.json": &fstest.MapFile{Data: []byte(`{"checkout": {"title": "Kasse"}}`)},
		}

		registry, err := localize.New(localize.WithJSONDir(fsys))
		require.NoError(t, err)
		require.Equal(t, "Checkout", registry.GetString("checkout.title", "en"))
		require.Equal(t, "Kasse", registry.GetString("checkout.title", "de"))
	})

	t.Run("ignores yaml files", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en.json": &fstest.MapFile{Data: []byte(`{"checkout": {"title": "Checkout"}}`)},
			"de.yaml": &fstest.MapFile{Data: []byte("cart:\n  title: Warenkorb\n")},
		}

		registry, err := localize.New(localize.WithJSONDir(fsys))
		require.NoError(t, err)
		require.Empty(t, registry.GetString("cart.title", "de"))
	})

	t.Run("skips empty objects", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en.json": &fstest.MapFile{Data: []byte(`{}`)},
		}

		registry, err := localize.New(localize.WithJSONDir(fsys))
		require.NoError(t, err)
		require.Equal(t, requiredEN, registry.GetString(langs.KeyRequired, "en"))
	})

	t.Run("returns error for malformed json", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en.json": &fstest.MapFile{Data: []byte(`{not json`)},
		}

		_, err := localize.New(localize.WithJSONDir(fsys))
		require.Error(t, err)
		require.ErrorIs(t, err, localize.ErrInvalidFile)
	})

	t.Run("combines with yaml loading", func(t *testing.T) {
		t.Parallel()
		fsys := fstest.MapFS{
			"en.json": &fstest.MapFile{Data: []byte(`{"checkout": {"title": "Checkout"}}`)},
			"de.yaml": &fstest.MapFile{Data: []byte("checkout:\n  title: Kasse\n")},
		}

		registry, err := localize.New(
			localize.WithJSONDir(fsys),
			localize.WithYAMLDir(fsys),
		)
		require.NoError(t, err)
		require.Equal(t, "Checkout", registry.GetString("checkout.title", "en"))
		require.Equal(t, "Kasse", registry.GetString("checkout.title", "de"))
	})
}
