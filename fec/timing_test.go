package feckit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeMonotonic(t *testing.T) {
	last := TimeUsec()
	for i := 0; i < 1000; i++ {
		now := TimeUsec()
		require.GreaterOrEqual(t, now, last)
		last = now
	}
}

func TestTimeUnits(t *testing.T) {
	u1 := TimeUsec()
	m1 := TimeMsec()
	time.Sleep(20 * time.Millisecond)
	u2 := TimeUsec()
	m2 := TimeMsec()

	assert.GreaterOrEqual(t, u2-u1, uint64(20*1000))
	assert.GreaterOrEqual(t, m2-m1, uint64(20))
	// 同一时钟, 单位差1000倍
	assert.InDelta(t, float64(u2)/1000, float64(m2), 10)
}
