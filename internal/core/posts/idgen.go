package posts

import (
	"sync"
	"time"
)

// seqBits is the number of low bits reserved for the same-millisecond
// tie-breaking sequence.
const seqBits = 10

// IDGenerator produces unique, monotonically increasing post ids derived
// from the wall clock. The millisecond timestamp occupies the high bits and
// a sequence suffix disambiguates creations landing in the same millisecond,
// so ids never collide even under rapid creation.
type IDGenerator struct {
	mu   sync.Mutex
	last int64
}

// NewIDGenerator creates a post id generator
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns the next post id. Safe for concurrent use.
func (g *IDGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := time.Now().UnixMilli() << seqBits
	if id <= g.last {
		// Same millisecond as the previous id, or clock went backwards:
		// take the next sequence slot to stay strictly increasing.
		id = g.last + 1
	}
	g.last = id
	return id
}
