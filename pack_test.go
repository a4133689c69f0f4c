package localize_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize"
)

func TestNewPack(t *testing.T) {
	t.Parallel()

	t.Run("copies the provided messages", func(t *testing.T) {
		t.Parallel()
		messages := map[string]string{"greeting": "Hello"}
		pack := localize.NewPack("en", messages)

		messages["greeting"] = "mutated"
		require.Equal(t, "Hello", pack.Translation("greeting"))
	})

	t.Run("accepts a nil map", func(t *testing.T) {
		t.Parallel()
		pack := localize.NewPack("en", nil)
		require.Equal(t, 0, pack.Len())
		require.Empty(t, pack.Translation("anything"))
	})

	t.Run("records the culture", func(t *testing.T) {
		t.Parallel()
		pack := localize.NewPack("pt-BR", nil)
		require.Equal(t, localize.Culture("pt-BR"), pack.Culture())
	})
}

func TestPackTranslation(t *testing.T) {
	t.Parallel()

	pack := localize.NewPack("en", map[string]string{"greeting": "Hello"})

	t.Run("returns the message for a known key", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Hello", pack.Translation("greeting"))
	})

	t.Run("returns empty string for a missing key", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, pack.Translation("farewell"))
	})
}

func TestPackSet(t *testing.T) {
	t.Parallel()

	t.Run("inserts a new key", func(t *testing.T) {
		t.Parallel()
		pack := localize.NewPack("en", nil)
		pack.Set("greeting", "Hello")
		require.Equal(t, "Hello", pack.Translation("greeting"))
	})

	t.Run("overwrites an existing key", func(t *testing.T) {
		t.Parallel()
		pack := localize.NewPack("en", map[string]string{"greeting": "Hello"})
		pack.Set("greeting", "Hi")
		require.Equal(t, "Hi", pack.Translation("greeting"))
	})
}

func TestPackKeys(t *testing.T) {
	t.Parallel()

	t.Run("returns sorted keys", func(t *testing.T) {
		t.Parallel()
		pack := localize.NewPack("en", map[string]string{
			"b": "2",
			"c": "3",
			"a": "1",
		})
		require.Equal(t, []string{"a", "b", "c"}, pack.Keys())
	})

	t.Run("returns a snapshot", func(t *testing.T) {
		t.Parallel()
		pack := localize.NewPack("en", map[string]string{"a": "1"})
		keys := pack.Keys()
		pack.Set("b", "2")
		require.Equal(t, []string{"a"}, keys)
	})
}

func TestPackConcurrency(t *testing.T) {
	t.Parallel()

	pack := localize.NewPack("en", nil)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		i := i
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				pack.Set(fmt.Sprintf("key.%d.%d", i, j), "value")
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				pack.Translation(fmt.Sprintf("key.%d.%d", i, j))
				pack.Keys()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, 1000, pack.Len())
}
