package uafacts_test

import (
	"testing"

	"github.com/dmitrymomot/browserkit/pkg/uafacts"
)

var sinkBool bool

// Benchmark the build-plus-first-read path, the per-request cost under
// the middleware.
func BenchmarkNewAndClassify_ChromeDesktop(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		f := uafacts.New(uaWindows)
		sinkBool = f.IsChrome() && f.IsWindows()
	}
}

func BenchmarkNewAndClassify_SafariMobile(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		f := uafacts.New(uaIPhone)
		sinkBool = f.IsIPhone() && f.IsAnySafari()
	}
}

func BenchmarkNewAndClassify_Bot(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		f := uafacts.New("Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)")
		sinkBool = f.IsBot()
	}
}

// Benchmark repeated reads against a warm table; memoized facts should
// cost a function call, not a regex.
func BenchmarkCachedReads(b *testing.B) {
	f := uafacts.New(uaAndroid)
	f.IsChrome()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkBool = f.IsChrome()
	}
}
