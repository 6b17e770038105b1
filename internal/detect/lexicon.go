package detect

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Lexicon is an ordered list of known recurring-billing merchant
// keywords. It is an immutable configuration value injected into the
// Detector; callers wanting extra keywords append to a clone.
type Lexicon []string

// maxNameLength caps display names derived from raw descriptions.
const maxNameLength = 30

// defaultKeywords covers well-known recurring-billing brands across
// streaming, SaaS, fitness, cloud storage, VPN and news.
var defaultKeywords = []string{
	"netflix", "spotify", "hulu", "disney", "hbo", "amazon prime", "apple",
	"google", "youtube", "adobe", "microsoft", "dropbox", "slack", "zoom",
	"notion", "figma", "canva", "grammarly", "linkedin", "twitter", "x premium",
	"github", "heroku", "vercel", "aws", "digitalocean", "cloudflare",
	"gym", "fitness", "peloton", "headspace", "calm", "audible", "kindle",
	"openai", "chatgpt", "claude", "anthropic", "midjourney",
	"crunchyroll", "paramount", "peacock", "espn", "sling", "fubo",
	"doordash", "uber", "lyft", "instacart", "grubhub",
	"patreon", "substack", "medium", "new york times", "washington post",
	"icloud", "google one", "onedrive", "1password", "lastpass", "nordvpn",
	"expressvpn", "surfshark", "dashlane", "bitwarden",
}

// DefaultLexicon returns a fresh copy of the built-in keyword list.
func DefaultLexicon() Lexicon {
	return slices.Clone(defaultKeywords)
}

// Match returns the first keyword the description mentions,
// case-insensitively.
func (l Lexicon) Match(description string) (string, bool) {
	lower := strings.ToLower(description)
	for _, kw := range l {
		if strings.Contains(lower, kw) {
			return kw, true
		}
	}
	return "", false
}

// Contains reports whether the description mentions any known service.
func (l Lexicon) Contains(description string) bool {
	_, ok := l.Match(description)
	return ok
}

// ServiceName derives a display name from a description: the title-cased
// keyword on a lexicon hit, otherwise the cleaned raw description.
func (l Lexicon) ServiceName(description string) string {
	if kw, ok := l.Match(description); ok {
		return titleWords(kw)
	}
	return cleanDescription(description)
}

// noiseChars are the decoration characters banks pad descriptions with.
var noiseChars = strings.NewReplacer("*", "", "#", "")

// cleanDescription strips decoration, collapses whitespace and truncates
// on a rune boundary so multi-byte descriptions stay valid UTF-8.
func cleanDescription(description string) string {
	s := noiseChars.Replace(description)
	s = strings.Join(strings.Fields(s), " ")
	if len(s) > maxNameLength {
		cut := maxNameLength
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	return s
}

// titleWords capitalizes the first letter of each word.
func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
