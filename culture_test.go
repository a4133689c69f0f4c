package localize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize"
)

func TestParseCulture(t *testing.T) {
	t.Parallel()

	t.Run("canonicalizes case", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, localize.Culture("en-US"), localize.ParseCulture("en-us"))
		require.Equal(t, localize.Culture("pt-BR"), localize.ParseCulture("PT-BR"))
		require.Equal(t, localize.Culture("de"), localize.ParseCulture("DE"))
	})

	t.Run("accepts underscore separators", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, localize.Culture("pt-BR"), localize.ParseCulture("pt_br"))
		require.Equal(t, localize.Culture("zh-CN"), localize.ParseCulture("zh_CN"))
	})

	t.Run("canonicalizes script segments", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, localize.Culture("zh-Hans-CN"), localize.ParseCulture("zh-hans-cn"))
	})

	t.Run("trims whitespace", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, localize.Culture("en"), localize.ParseCulture("  en  "))
	})

	t.Run("returns empty culture for blank input", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, localize.Culture(""), localize.ParseCulture(""))
		require.Equal(t, localize.Culture(""), localize.ParseCulture("   "))
	})

	t.Run("normalizes unknown codes by segment", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, localize.Culture("xx-YY"), localize.ParseCulture("XX-yy"))
		require.Equal(t, localize.Culture("xx"), localize.ParseCulture("XX"))
	})
}

func TestCultureParent(t *testing.T) {
	t.Parallel()

	t.Run("strips the most specific segment", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, localize.Culture("pt"), localize.Culture("pt-BR").Parent())
		require.Equal(t, localize.Culture("zh-Hans"), localize.Culture("zh-Hans-CN").Parent())
	})

	t.Run("neutral culture is its own parent", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, localize.Culture("en"), localize.Culture("en").Parent())
	})

	t.Run("empty culture is its own parent", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, localize.Culture(""), localize.Culture("").Parent())
	})
}

func TestCultureIsNeutral(t *testing.T) {
	t.Parallel()

	require.True(t, localize.Culture("en").IsNeutral())
	require.True(t, localize.Culture("pt").IsNeutral())
	require.False(t, localize.Culture("en-US").IsNeutral())
	require.False(t, localize.Culture("zh-Hans-CN").IsNeutral())
}

func TestCultureChain(t *testing.T) {
	t.Parallel()

	t.Run("walks to the neutral root", func(t *testing.T) {
		t.Parallel()
		chain := localize.Culture("zh-Hans-CN").Chain()
		require.Equal(t, []localize.Culture{"zh-Hans-CN", "zh-Hans", "zh"}, chain)
	})

	t.Run("neutral culture is a single-element chain", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, []localize.Culture{"en"}, localize.Culture("en").Chain())
	})

	t.Run("terminates for unknown hierarchies", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, []localize.Culture{"xx-YY", "xx"}, localize.Culture("xx-YY").Chain())
	})

	t.Run("terminates for leading separator codes", func(t *testing.T) {
		t.Parallel()

		// "-x" is its own parent: the separator at index zero leaves no
		// segment to strip, so the chain must stop there instead of
		// growing forever.
		require.Equal(t, localize.Culture("-x"), localize.ParseCulture("-x"))
		require.Equal(t, []localize.Culture{"-x"}, localize.Culture("-x").Chain())
		require.Equal(t, []localize.Culture{"--x", "-"}, localize.Culture("--x").Chain())
		require.Equal(t, []localize.Culture{"-"}, localize.Culture("-").Chain())
	})
}
