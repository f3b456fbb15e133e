package uafacts

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const botNameUnknown = "Unknown Bot"

// keywordSet holds lowercase substrings checked against the user agent.
type keywordSet []string

func newKeywordSet(keywords ...string) keywordSet { return keywords }

func (k keywordSet) contains(s string) bool {
	for _, keyword := range k {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// Bot detection covers crawlers, social media preview fetchers and
// monitoring tools.
var botKeywords = newKeywordSet(
	"bot", "spider", "crawler", "archiver", "slurp", "daum", "sogou",
	"yeti", "facebookexternalhit", "whatsapp", "telegram", "lighthouse",
	"monitor", "analyzer", "validator", "fetcher", "scraper",
)

// Direct mapping for common bots, checked before regex extraction.
var botNameMap = map[string]string{
	"googlebot":           "Googlebot",
	"bingbot":             "Bingbot",
	"yandexbot":           "Yandexbot",
	"baidubot":            "Baidubot",
	"twitterbot":          "Twitterbot",
	"facebookbot":         "Facebookbot",
	"facebookexternalhit": "Facebook",
	"linkedinbot":         "Linkedinbot",
	"slackbot":            "Slackbot",
	"telegrambot":         "Telegrambot",
	"adsbot":              "AdsBot",
}

// Generic bot name patterns compiled only once.
var botNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)([a-z0-9\-_]+bot)`),
	regexp.MustCompile(`(?i)([a-z0-9\-_]+spider)`),
	regexp.MustCompile(`(?i)([a-z0-9\-_]+crawler)`),
}

// extractBotName derives a display name for a bot user agent: direct map
// lookups first, then generic pattern extraction with title casing.
func extractBotName(userAgent string) string {
	lowerUA := strings.ToLower(userAgent)

	for keyword, name := range botNameMap {
		if strings.Contains(lowerUA, keyword) {
			return name
		}
	}

	for _, pattern := range botNamePatterns {
		if m := pattern.FindStringSubmatch(userAgent); len(m) > 1 {
			// cases.Caser carries state, so build one per call.
			title := cases.Title(language.English)
			return title.String(strings.ToLower(m[1]))
		}
	}

	return botNameUnknown
}
