package uafacts

// Probe reports runtime touch capabilities of the host environment.
// Embedders running inside a browser-like host (webviews, headless
// drivers, test harnesses) implement it over whatever signals their host
// exposes; server-side consumers usually attach no probe at all.
//
// HasDocument is the reality gate: when it reports false the remaining
// signals are never consulted, so implementations may compute them only
// for genuine document environments.
type Probe interface {
	// HasDocument reports whether a real document environment is present.
	HasDocument() bool

	// HasTouchStartEvent reports whether the environment recognizes a
	// touch-start event property.
	HasTouchStartEvent() bool

	// MaxTouchPoints reports the advertised touch point capacity.
	MaxTouchPoints() int

	// HasTouchDocument reports whether the document object carries the
	// touch-document capability marker.
	HasTouchDocument() bool
}

// StaticProbe is a fixed-value Probe for embedders that sample their host
// capabilities once, and for tests.
type StaticProbe struct {
	Document      bool
	TouchStart    bool
	TouchPoints   int
	TouchDocument bool
}

func (p StaticProbe) HasDocument() bool        { return p.Document }
func (p StaticProbe) HasTouchStartEvent() bool { return p.TouchStart }
func (p StaticProbe) MaxTouchPoints() int      { return p.TouchPoints }
func (p StaticProbe) HasTouchDocument() bool   { return p.TouchDocument }
