package uafacts

import (
	"net/http"
	"strings"
	"sync"
)

// Facts is a read-only table of detection facts derived from a single
// user-agent string captured at construction time. Every accessor computes
// its value on first call, caches it, and serves the cached value on every
// subsequent call. Facts values are safe for concurrent readers.
//
// Construct with New or FromRequest; the zero value is not usable.
// All accessors tolerate a nil receiver and report absence.
type Facts struct {
	raw   string
	lower string
	probe Probe

	isIPad         func() bool
	isIPhone       func() bool
	isIPod         func() bool
	isIOS          func() bool
	iosVersion     func() (string, bool)
	isAndroid      func() bool
	androidVersion func() (float64, bool)
	isNative       func() bool
	webkitVersion  func() (float64, bool)
	isFirefox      func() bool
	isEdge         func() bool
	isChrome       func() bool
	chromeVersion  func() (int, bool)
	ieVersion      func() (float64, bool)
	isSafari       func() bool
	isAnySafari    func() bool
	isWindows      func() bool
	touchEnabled   func() bool
	isBot          func() bool
	botName        func() string
}

// Option configures a Facts table at construction.
type Option func(*Facts)

// WithProbe attaches a runtime capability probe used by TouchEnabled.
// Without a probe, TouchEnabled always reports false.
func WithProbe(p Probe) Option {
	return func(f *Facts) { f.probe = p }
}

// New captures the given user-agent string and builds a fact table over it.
// The empty string is a valid input: every boolean fact is false and every
// version fact is absent. The string is never re-read after capture, so the
// table's values are stable for its whole lifetime.
func New(ua string, opts ...Option) *Facts {
	f := &Facts{
		raw:   ua,
		lower: strings.ToLower(ua),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(f)
		}
	}

	// Each supplier runs at most once per table, even under concurrent
	// first reads. Suppliers may read sibling facts; the dependency graph
	// is acyclic so re-entrant resolution always terminates.
	f.isIPad = sync.OnceValue(func() bool {
		return strings.Contains(f.lower, "ipad")
	})
	f.isIPhone = sync.OnceValue(func() bool {
		// Some UAs self-report as both; iPad wins the disambiguation.
		return strings.Contains(f.lower, "iphone") && !f.IsIPad()
	})
	f.isIPod = sync.OnceValue(func() bool {
		return strings.Contains(f.lower, "ipod")
	})
	f.isIOS = sync.OnceValue(func() bool {
		return f.IsIPhone() || f.IsIPad() || f.IsIPod()
	})
	f.iosVersion = sync.OnceValues(func() (string, bool) {
		return matchIOSVersion(f.lower)
	})
	f.isAndroid = sync.OnceValue(func() bool {
		return strings.Contains(f.lower, "android")
	})
	f.androidVersion = sync.OnceValues(func() (float64, bool) {
		return matchAndroidVersion(f.lower)
	})
	f.webkitVersion = sync.OnceValues(func() (float64, bool) {
		return matchWebKitVersion(f.lower)
	})
	f.isNative = sync.OnceValue(func() bool {
		if !f.IsAndroid() {
			return false
		}
		av, ok := f.AndroidVersion()
		if !ok || av >= 5 {
			return false
		}
		wk, ok := f.WebKitVersion()
		return ok && wk < 537
	})
	f.isFirefox = sync.OnceValue(func() bool {
		return strings.Contains(f.lower, "firefox")
	})
	f.isEdge = sync.OnceValue(func() bool {
		return strings.Contains(f.lower, "edge")
	})
	f.isChrome = sync.OnceValue(func() bool {
		if f.IsEdge() {
			return false
		}
		return strings.Contains(f.lower, "chrome") || strings.Contains(f.lower, "crios")
	})
	f.chromeVersion = sync.OnceValues(func() (int, bool) {
		return matchChromeVersion(f.lower)
	})
	f.ieVersion = sync.OnceValues(func() (float64, bool) {
		return matchIEVersion(f.lower)
	})
	f.isSafari = sync.OnceValue(func() bool {
		return strings.Contains(f.lower, "safari") &&
			!f.IsChrome() && !f.IsAndroid() && !f.IsEdge()
	})
	f.isAnySafari = sync.OnceValue(func() bool {
		return (f.IsSafari() || f.IsIOS()) && !f.IsChrome()
	})
	f.isWindows = sync.OnceValue(func() bool {
		return strings.Contains(f.lower, "windows")
	})
	f.touchEnabled = sync.OnceValue(func() bool {
		p := f.probe
		if p == nil || !p.HasDocument() {
			return false
		}
		return p.HasTouchStartEvent() || p.MaxTouchPoints() > 0 || p.HasTouchDocument()
	})
	f.isBot = sync.OnceValue(func() bool {
		return botKeywords.contains(f.lower)
	})
	f.botName = sync.OnceValue(func() string {
		return extractBotName(f.raw)
	})

	return f
}

// FromRequest builds a fact table from the request's User-Agent header.
func FromRequest(r *http.Request, opts ...Option) *Facts {
	if r == nil {
		return New("", opts...)
	}
	return New(r.UserAgent(), opts...)
}

// String returns the raw captured user-agent string.
func (f *Facts) String() string { return f.UserAgent() }

// UserAgent returns the raw captured user-agent string.
func (f *Facts) UserAgent() string {
	if f == nil {
		return ""
	}
	return f.raw
}

// IsIPad reports whether the user agent identifies an iPad.
func (f *Facts) IsIPad() bool {
	if f == nil {
		return false
	}
	return f.isIPad()
}

// IsIPhone reports whether the user agent identifies an iPhone. A user
// agent that also carries the iPad token is classified as iPad, not iPhone.
func (f *Facts) IsIPhone() bool {
	if f == nil {
		return false
	}
	return f.isIPhone()
}

// IsIPod reports whether the user agent identifies an iPod.
func (f *Facts) IsIPod() bool {
	if f == nil {
		return false
	}
	return f.isIPod()
}

// IsIOS reports whether the user agent identifies any iOS device.
func (f *Facts) IsIOS() bool {
	if f == nil {
		return false
	}
	return f.isIOS()
}

// IOSVersion returns the major iOS version digits from the "OS <n>_" token.
// The second return value is false when the token is absent.
func (f *Facts) IOSVersion() (string, bool) {
	if f == nil {
		return "", false
	}
	return f.iosVersion()
}

// IsAndroid reports whether the user agent identifies an Android device.
func (f *Facts) IsAndroid() bool {
	if f == nil {
		return false
	}
	return f.isAndroid()
}

// AndroidVersion returns the Android version as "major.minor" parsed into a
// number ("Android 7.1.2" yields 7.1) or the bare major ("Android 8" yields
// 8). The second return value is false when no Android version is present.
func (f *Facts) AndroidVersion() (float64, bool) {
	if f == nil {
		return 0, false
	}
	return f.androidVersion()
}

// IsNativeAndroidBrowser reports whether the user agent identifies the
// legacy Android stock browser: Android before 5 on a WebKit build before
// 537. Absence of either version token makes this false.
func (f *Facts) IsNativeAndroidBrowser() bool {
	if f == nil {
		return false
	}
	return f.isNative()
}

// WebKitVersion returns the AppleWebKit build number from the user agent.
// The second return value is false when no WebKit token is present.
func (f *Facts) WebKitVersion() (float64, bool) {
	if f == nil {
		return 0, false
	}
	return f.webkitVersion()
}

// IsFirefox reports whether the user agent identifies Firefox.
func (f *Facts) IsFirefox() bool {
	if f == nil {
		return false
	}
	return f.isFirefox()
}

// IsEdge reports whether the user agent identifies Microsoft Edge.
func (f *Facts) IsEdge() bool {
	if f == nil {
		return false
	}
	return f.isEdge()
}

// IsChrome reports whether the user agent identifies Chrome, including
// Chrome on iOS (CriOS). Edge carries the Chrome token and is excluded.
func (f *Facts) IsChrome() bool {
	if f == nil {
		return false
	}
	return f.isChrome()
}

// ChromeVersion returns the major Chrome version from the "Chrome/<n>" or
// "CriOS/<n>" token. The second return value is false when absent.
func (f *Facts) ChromeVersion() (int, bool) {
	if f == nil {
		return 0, false
	}
	return f.chromeVersion()
}

// IEVersion returns the Internet Explorer version. IE 11 dropped the MSIE
// token, so a Trident/7.0 engine with rv:11.0 reports 11. The second
// return value is false when neither form is present.
func (f *Facts) IEVersion() (float64, bool) {
	if f == nil {
		return 0, false
	}
	return f.ieVersion()
}

// IsSafari reports whether the user agent identifies Safari proper. Nearly
// every WebKit-derived browser carries the Safari token, so Chrome,
// Android and Edge are excluded.
func (f *Facts) IsSafari() bool {
	if f == nil {
		return false
	}
	return f.isSafari()
}

// IsAnySafari reports whether the user agent identifies any Safari
// variant, including the WebKit views every iOS browser renders through,
// except Chrome on iOS.
func (f *Facts) IsAnySafari() bool {
	if f == nil {
		return false
	}
	return f.isAnySafari()
}

// IsWindows reports whether the user agent identifies a Windows host.
func (f *Facts) IsWindows() bool {
	if f == nil {
		return false
	}
	return f.isWindows()
}

// TouchEnabled reports whether the host environment exposes touch input.
// It requires a probe attached with WithProbe and a real document
// environment; without either it reports false rather than failing.
func (f *Facts) TouchEnabled() bool {
	if f == nil {
		return false
	}
	return f.touchEnabled()
}

// IsBot reports whether the user agent identifies an automated client.
func (f *Facts) IsBot() bool {
	if f == nil {
		return false
	}
	return f.isBot()
}

// BotName returns a display name for a bot user agent, or "Unknown Bot"
// when the bot cannot be identified more precisely.
func (f *Facts) BotName() string {
	if f == nil {
		return botNameUnknown
	}
	return f.botName()
}

// IsMobile reports whether the user agent identifies a phone-class device.
func (f *Facts) IsMobile() bool {
	if f == nil {
		return false
	}
	if f.IsIPhone() || f.IsIPod() {
		return true
	}
	return f.IsAndroid() && strings.Contains(f.lower, "mobile")
}

// IsTablet reports whether the user agent identifies a tablet-class
// device. Android tablets omit the Mobile token, unlike phones.
func (f *Facts) IsTablet() bool {
	if f == nil {
		return false
	}
	if f.IsIPad() {
		return true
	}
	return f.IsAndroid() && !strings.Contains(f.lower, "mobile")
}
