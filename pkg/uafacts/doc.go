// Package uafacts derives a table of lazily-computed, cached facts about
// the client browser and device from a single user-agent string.
//
// Unlike a classifying parser that walks the whole string eagerly, the
// package exposes independent named facts (IsIPad, IsChrome, IEVersion,
// TouchEnabled, …) that each resolve on first read and are cached for the
// lifetime of the table. Facts may depend on sibling facts — an iPhone is
// only an iPhone if the iPad token is absent, Safari is only Safari when
// Chrome, Android and Edge are ruled out — and the dependency graph is
// acyclic and shallow.
//
// Detection is plain substring checks and a handful of pre-compiled
// regular expressions; there is no dependency on an upstream UA-parser
// database, which keeps allocations low and results stable.
//
// # Usage
//
// Build a table from a captured user-agent string:
//
//	f := uafacts.New(r.UserAgent())
//	if f.IsChrome() {
//	    if v, ok := f.ChromeVersion(); ok && v < 91 {
//	        // nudge towards an upgrade
//	    }
//	}
//
// Or attach the table to every request with the middleware:
//
//	r := chi.NewRouter()
//	r.Use(uafacts.Middleware)
//	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
//	    f := uafacts.FromContext(req.Context())
//	    if f.IsMobile() {
//	        // serve mobile-optimised assets
//	    }
//	})
//
// # Touch detection
//
// TouchEnabled is the one fact not derivable from the user-agent string.
// It reads runtime capability signals through the Probe interface, gated
// by a document-reality check so it never fails in environments without a
// document. Server-side consumers normally attach no probe and
// TouchEnabled reports false; embedders in browser-like hosts pass
// WithProbe with their own implementation or a StaticProbe snapshot.
//
// # Absent values
//
// No accessor returns an error or panics. Boolean facts report false when
// a condition is undetectable; version facts (IOSVersion, AndroidVersion,
// ChromeVersion, IEVersion, WebKitVersion) use the comma-ok idiom and
// report a false second value when their token is absent, never zero.
//
// # Concurrency
//
// A Facts value is safe for concurrent readers. Each fact's derivation
// runs at most once per table, even when multiple goroutines race on the
// first read.
package uafacts
