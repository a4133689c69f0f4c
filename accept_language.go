package localize

import "golang.org/x/text/language"

// MatchCulture picks the best culture from available for an Accept-Language
// header. Candidates are tried in the header's quality order, first by exact
// code and parent codes, then by primary language alone, so "en-US,fr;q=0.8"
// against [fr en] picks "en". Availability order breaks primary-language
// ties. Returns false when the header is empty, malformed, or matches
// nothing; the caller decides the fallback, usually the registry's default
// culture.
func MatchCulture(header string, available []Culture) (Culture, bool) {
	if header == "" || len(available) == 0 {
		return "", false
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil {
		return "", false
	}

	index := make(map[Culture]Culture, len(available))
	for _, avail := range available {
		index[ParseCulture(string(avail))] = avail
	}

	// Exact and ancestor matches beat primary-language matches regardless of
	// quality, mirroring how exact codes rank in content negotiation.
	for _, tag := range tags {
		for _, level := range ParseCulture(tag.String()).Chain() {
			if avail, ok := index[level]; ok {
				return avail, true
			}
		}
	}

	for _, tag := range tags {
		root := rootCulture(ParseCulture(tag.String()))
		if root == "" {
			continue
		}
		for _, avail := range available {
			if rootCulture(ParseCulture(string(avail))) == root {
				return avail, true
			}
		}
	}

	return "", false
}

// rootCulture returns the neutral culture that ends the culture's parent
// chain.
func rootCulture(c Culture) Culture {
	chain := c.Chain()
	if len(chain) == 0 {
		return ""
	}
	return chain[len(chain)-1]
}
