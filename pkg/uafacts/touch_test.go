package uafacts_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/dmitrymomot/browserkit/pkg/uafacts"

	"github.com/stretchr/testify/assert"
)

func TestTouchEnabled(t *testing.T) {
	tests := []struct {
		name     string
		probe    uafacts.Probe
		expected bool
	}{
		{name: "no probe"},
		{name: "no document", probe: uafacts.StaticProbe{TouchStart: true, TouchPoints: 5}},
		{name: "document without touch", probe: uafacts.StaticProbe{Document: true}},
		{name: "touch start event", probe: uafacts.StaticProbe{Document: true, TouchStart: true}, expected: true},
		{name: "positive touch points", probe: uafacts.StaticProbe{Document: true, TouchPoints: 5}, expected: true},
		{name: "touch document marker", probe: uafacts.StaticProbe{Document: true, TouchDocument: true}, expected: true},
		{name: "negative touch points", probe: uafacts.StaticProbe{Document: true, TouchPoints: -1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var opts []uafacts.Option
			if tc.probe != nil {
				opts = append(opts, uafacts.WithProbe(tc.probe))
			}
			f := uafacts.New(uaIPad, opts...)
			assert.Equal(t, tc.expected, f.TouchEnabled())
		})
	}
}

// countingProbe counts document checks so tests can observe how many
// times the touch derivation actually ran.
type countingProbe struct {
	documentChecks atomic.Int64
}

func (p *countingProbe) HasDocument() bool {
	p.documentChecks.Add(1)
	return true
}

func (p *countingProbe) HasTouchStartEvent() bool { return true }
func (p *countingProbe) MaxTouchPoints() int      { return 0 }
func (p *countingProbe) HasTouchDocument() bool   { return false }

func TestTouchDerivationRunsOnce(t *testing.T) {
	probe := &countingProbe{}
	f := uafacts.New(uaIPad, uafacts.WithProbe(probe))

	for range 5 {
		assert.True(t, f.TouchEnabled())
	}
	assert.Equal(t, int64(1), probe.documentChecks.Load())
}

func TestTouchDerivationRunsOnceUnderContention(t *testing.T) {
	probe := &countingProbe{}
	f := uafacts.New(uaIPad, uafacts.WithProbe(probe))

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, f.TouchEnabled())
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), probe.documentChecks.Load())
}
