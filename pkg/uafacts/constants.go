package uafacts

// Browser name identifiers returned by BrowserName.
const (
	// BrowserChrome identifies Google Chrome, including Chrome on iOS.
	BrowserChrome = "chrome"

	// BrowserFirefox identifies Mozilla Firefox.
	BrowserFirefox = "firefox"

	// BrowserSafari identifies Apple Safari and iOS WebKit variants.
	BrowserSafari = "safari"

	// BrowserEdge identifies Microsoft Edge.
	BrowserEdge = "edge"

	// BrowserIE identifies Internet Explorer.
	BrowserIE = "ie"

	// BrowserUnknown is used when the browser cannot be determined.
	BrowserUnknown = "unknown"
)
