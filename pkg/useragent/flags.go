package useragent

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Behavioral flag keyword sets. The three checks are independent: a
// crawler driven through a headless shell sets both IsBot and IsHeadless.
var (
	botKeywords = newKeywordSet(
		"bot", "spider", "crawler", "slurp", "archiver", "scraper", "fetcher",
		"facebookexternalhit", "bingpreview", "lighthouse", "pingdom",
		"gtmetrix", "daum", "yeti", "ahrefs", "semrush", "mj12",
		"bytespider", "gptbot", "claudebot", "ccbot", "perplexitybot",
		"google-extended", "applebot", "petalbot",
	)
	webViewKeywords = newKeywordSet(
		"; wv)", "fbav", "fban", "fb_iab", "instagram", "micromessenger",
		"wechat", "line/", "snapchat", "tiktok", "musical_ly", "gsa/",
		"duckduckgo/", "cordova", "capacitor", "reactnative", "electron",
		"twitterandroid", "linkedinapp",
	)
	headlessKeywords = newKeywordSet(
		"headless", "phantomjs", "slimerjs", "htmlunit",
		"selenium", "puppeteer", "playwright", "splash", "jsdom",
	)
)

// IsBotUA reports whether a lower-cased UA carries a crawler signature.
func IsBotUA(lowerUA string) bool { return botKeywords.contains(lowerUA) }

// IsWebViewUA reports whether a lower-cased UA carries an app-embedding
// signature (messaging/social shells, hybrid frameworks).
func IsWebViewUA(lowerUA string) bool { return webViewKeywords.contains(lowerUA) }

// IsHeadlessUA reports whether a lower-cased UA carries a
// headless-automation signature.
func IsHeadlessUA(lowerUA string) bool { return headlessKeywords.contains(lowerUA) }

// Direct mapping for common crawlers, checked before the generic patterns.
var botNameMap = map[string]string{
	"googlebot":           "Googlebot",
	"bingbot":             "Bingbot",
	"yandexbot":           "Yandexbot",
	"baiduspider":         "Baiduspider",
	"duckduckbot":         "DuckDuckBot",
	"twitterbot":          "Twitterbot",
	"facebookexternalhit": "Facebook",
	"linkedinbot":         "LinkedInBot",
	"slackbot":            "Slackbot",
	"telegrambot":         "TelegramBot",
	"gptbot":              "GPTBot",
	"claudebot":           "ClaudeBot",
	"applebot":            "Applebot",
}

var botNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)([a-z0-9\-_]+bot)`),
	regexp.MustCompile(`(?i)([a-z0-9\-_]+spider)`),
	regexp.MustCompile(`(?i)([a-z0-9\-_]+crawler)`),
}

// BotName extracts a display name for a crawler UA. Falls back to
// title-casing whatever token matched when the crawler is not in the
// direct map.
func BotName(raw string) string {
	lowerUA := strings.ToLower(raw)

	for keyword, name := range botNameMap {
		if strings.Contains(lowerUA, keyword) {
			return name
		}
	}

	title := cases.Title(language.English)
	for _, pattern := range botNamePatterns {
		if matches := pattern.FindStringSubmatch(raw); len(matches) > 1 {
			return title.String(strings.ToLower(matches[1]))
		}
	}

	return "Unknown Bot"
}
