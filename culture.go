package localize

import (
	"strings"

	"golang.org/x/text/language"
)

// Culture is a hierarchical culture code such as "en", "en-US", or
// "zh-Hans-CN". Segments run from least to most specific; stripping the last
// segment yields the parent culture. The zero value is the empty culture.
type Culture string

// ParseCulture normalizes a raw culture code into canonical form: lowercase
// language, title-case script, uppercase region ("pt-br" becomes "pt-BR").
// Underscore separators are accepted. Codes known to BCP 47 are canonicalized
// through x/text; well-formed unknown codes keep their normalized segments, so
// "xx-YY" stays usable for lookups. Blank input yields the empty Culture.
// ParseCulture never fails: unknown codes are a normal input that drives
// fallback, not an error.
func ParseCulture(code string) Culture {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	code = strings.ReplaceAll(code, "_", "-")

	if tag, err := language.Parse(code); err == nil {
		return Culture(tag.String())
	}

	return Culture(normalizeSegments(code))
}

// normalizeSegments applies BCP 47 casing conventions segment by segment:
// language lowercase, 4-letter script Title-case, 2-letter region uppercase.
func normalizeSegments(code string) string {
	parts := strings.Split(code, "-")
	for i, part := range parts {
		switch {
		case i == 0:
			parts[i] = strings.ToLower(part)
		case len(part) == 4:
			parts[i] = strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
		case len(part) == 2:
			parts[i] = strings.ToUpper(part)
		default:
			parts[i] = strings.ToLower(part)
		}
	}
	return strings.Join(parts, "-")
}

// Parent returns the culture with its most specific segment removed:
// "zh-Hans-CN" yields "zh-Hans", "pt-BR" yields "pt". Neutral cultures are
// their own parent. The fixed point keeps every hierarchy walk finite.
func (c Culture) Parent() Culture {
	if i := strings.LastIndexByte(string(c), '-'); i > 0 {
		return c[:i]
	}
	return c
}

// IsNeutral reports whether the culture is the root of its hierarchy,
// such as "en" or "pt".
func (c Culture) IsNeutral() bool {
	return !strings.ContainsRune(string(c), '-')
}

// Chain returns the culture and all of its ancestors, most specific first.
// The walk ends at Parent's fixed point, which is the neutral root for
// well-formed codes and the culture itself for degenerate ones like "-x".
func (c Culture) Chain() []Culture {
	chain := []Culture{c}
	for {
		parent := c.Parent()
		if parent == c {
			return chain
		}
		c = parent
		chain = append(chain, c)
	}
}

func (c Culture) String() string {
	return string(c)
}
