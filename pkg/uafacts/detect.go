package uafacts

import (
	"regexp"
	"strconv"
	"strings"
)

// Version token patterns, compiled once. All matching runs against the
// lowercased user-agent string captured at construction.
var (
	iosVersionRe     = regexp.MustCompile(`os (\d+)_`)
	androidVersionRe = regexp.MustCompile(`android (\d+)(?:\.(\d+))?(?:\.\d+)*`)
	webkitVersionRe  = regexp.MustCompile(`applewebkit[/\s](\d+(?:\.\d+)?)`)
	chromeVersionRe  = regexp.MustCompile(`(?:chrome|crios)/(\d+)`)
	msieVersionRe    = regexp.MustCompile(`msie (\d+\.\d)`)

	edgeVersionRe    = regexp.MustCompile(`(?:edge|edg)[/\s]([\d.]+)`)
	firefoxVersionRe = regexp.MustCompile(`firefox[/\s]([\d.]+)`)
	safariVersionRe  = regexp.MustCompile(`version[/\s]([\d.]+)`)
)

// matchIOSVersion extracts the major iOS version digits from tokens like
// "CPU iPhone OS 14_4 like Mac OS X".
func matchIOSVersion(lower string) (string, bool) {
	m := iosVersionRe.FindStringSubmatch(lower)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// matchAndroidVersion extracts the Android version. Major and minor are
// joined textually and parsed as one decimal, so "android 7.1.2" yields
// 7.1; a bare major yields the major as a number. Patch components are
// matched so they don't leak into neighboring tokens, but never returned.
func matchAndroidVersion(lower string) (float64, bool) {
	m := androidVersionRe.FindStringSubmatch(lower)
	if m == nil {
		return 0, false
	}
	text := m[1]
	if m[2] != "" {
		text = m[1] + "." + m[2]
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// matchWebKitVersion extracts the AppleWebKit build number, e.g. 537.36
// from "AppleWebKit/537.36".
func matchWebKitVersion(lower string) (float64, bool) {
	m := webkitVersionRe.FindStringSubmatch(lower)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// matchChromeVersion extracts the major Chrome version from "chrome/<n>"
// or the iOS variant "crios/<n>".
func matchChromeVersion(lower string) (int, bool) {
	m := chromeVersionRe.FindStringSubmatch(lower)
	if m == nil {
		return 0, false
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return v, true
}

// matchIEVersion extracts the Internet Explorer version. IE 11 dropped
// the MSIE token, so the Trident/7.0 engine with rv:11.0 maps to 11.
func matchIEVersion(lower string) (float64, bool) {
	if m := msieVersionRe.FindStringSubmatch(lower); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v, true
		}
	}
	if strings.Contains(lower, "trident/7.0") && strings.Contains(lower, "rv:11.0") {
		return 11.0, true
	}
	return 0, false
}

// matchVersionToken extracts a dotted version string with the given
// pattern, trimming excessively long captures.
func matchVersionToken(lower string, re *regexp.Regexp) (string, bool) {
	m := re.FindStringSubmatch(lower)
	if m == nil {
		return "", false
	}
	v := m[1]
	if len(v) > 20 {
		v = v[:20]
	}
	return v, true
}

// BrowserName classifies the user agent into one of the browser name
// constants. Precedence mirrors the detection facts: Edge carries the
// Chrome token and wins over Chrome; Safari is the fallback WebKit label.
func (f *Facts) BrowserName() string {
	if f == nil {
		return BrowserUnknown
	}
	switch {
	case f.IsEdge():
		return BrowserEdge
	case f.IsChrome():
		return BrowserChrome
	case f.IsFirefox():
		return BrowserFirefox
	}
	if _, ok := f.IEVersion(); ok {
		return BrowserIE
	}
	if f.IsSafari() || f.IsAnySafari() {
		return BrowserSafari
	}
	return BrowserUnknown
}

// BrowserVersion returns the version string for the classified browser.
// The second return value is false when the browser is unknown or its
// version token is absent.
func (f *Facts) BrowserVersion() (string, bool) {
	if f == nil {
		return "", false
	}
	switch f.BrowserName() {
	case BrowserEdge:
		return matchVersionToken(f.lower, edgeVersionRe)
	case BrowserChrome:
		v, ok := f.ChromeVersion()
		if !ok {
			return "", false
		}
		return strconv.Itoa(v), true
	case BrowserFirefox:
		return matchVersionToken(f.lower, firefoxVersionRe)
	case BrowserIE:
		v, ok := f.IEVersion()
		if !ok {
			return "", false
		}
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case BrowserSafari:
		return matchVersionToken(f.lower, safariVersionRe)
	}
	return "", false
}

// ShortIdentifier returns a compact human-readable label for logging and
// analytics, e.g. "Chrome/91 (Windows)" or "Bot: Googlebot".
func (f *Facts) ShortIdentifier() string {
	if f == nil || f.raw == "" {
		return "Unknown client"
	}
	if f.IsBot() {
		return "Bot: " + f.BotName()
	}

	name := displayBrowserName(f.BrowserName())
	if name == "" {
		if platform := f.platformLabel(); platform != "" {
			return "Unknown browser (" + platform + ")"
		}
		return "Unknown client"
	}

	label := name
	if ver, ok := f.BrowserVersion(); ok {
		label += "/" + ver
	}
	if platform := f.platformLabel(); platform != "" {
		label += " (" + platform + ")"
	}
	return label
}

// platformLabel returns a display label for the host platform, or "".
func (f *Facts) platformLabel() string {
	switch {
	case f.IsIOS():
		return "iOS"
	case f.IsAndroid():
		return "Android"
	case f.IsWindows():
		return "Windows"
	}
	return ""
}

// displayBrowserName maps browser name constants to display casing.
func displayBrowserName(name string) string {
	switch name {
	case BrowserChrome:
		return "Chrome"
	case BrowserFirefox:
		return "Firefox"
	case BrowserSafari:
		return "Safari"
	case BrowserEdge:
		return "Edge"
	case BrowserIE:
		return "IE"
	}
	return ""
}
