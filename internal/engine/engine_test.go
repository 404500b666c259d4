package engine

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBarrierReleasesAllAtOnce(t *testing.T) {
	const n = 4
	b := NewBarrier(n)

	var wg sync.WaitGroup
	released := make([]bool, n)
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i
		go func() {
			defer wg.Done()
			time.Sleep(time.Duration(i) * 10 * time.Millisecond)
			_ = b.Wait(context.Background())
			released[i] = true
		}()
	}
	wg.Wait()
	for i, ok := range released {
		assert.True(t, ok, "party %d never released", i)
	}
}

func TestBarrierWaitRespectsContextCancel(t *testing.T) {
	b := NewBarrier(2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := b.Wait(ctx)
	assert.Error(t, err)
}
