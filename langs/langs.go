// Package langs holds the built-in message tables, one file per culture.
// The set of cultures and keys is fixed for a given release; lookups and
// fallback live in the parent package.
package langs

import (
	"maps"
	"sort"
)

// tables maps each built-in culture code to its message table. Codes are
// canonical BCP 47: region variants are listed only where the translations
// actually differ by region.
var tables = map[string]map[string]string{
	"ar":    arabic,
	"bg":    bulgarian,
	"cs":    czech,
	"da":    danish,
	"de":    german,
	"el":    greek,
	"en":    english,
	"es":    spanish,
	"fi":    finnish,
	"fr":    french,
	"he":    hebrew,
	"hi":    hindi,
	"hr":    croatian,
	"hu":    hungarian,
	"id":    indonesian,
	"it":    italian,
	"ja":    japanese,
	"ko":    korean,
	"nb":    norwegian,
	"nl":    dutch,
	"pl":    polish,
	"pt":    portuguese,
	"pt-BR": portugueseBrazil,
	"ro":    romanian,
	"ru":    russian,
	"sk":    slovak,
	"sr":    serbian,
	"sv":    swedish,
	"th":    thai,
	"tr":    turkish,
	"uk":    ukrainian,
	"vi":    vietnamese,
	"zh-CN": chineseSimplified,
	"zh-TW": chineseTraditional,
}

// Messages returns a fresh copy of the message table for the culture code, or
// false when the code is not built in. Callers own the returned map.
func Messages(code string) (map[string]string, bool) {
	table, ok := tables[code]
	if !ok {
		return nil, false
	}
	return maps.Clone(table), true
}

// Cultures returns the sorted list of built-in culture codes.
func Cultures() []string {
	codes := make([]string, 0, len(tables))
	for code := range tables {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
