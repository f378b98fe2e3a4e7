package keylock

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	req := require.New(t)
	locks := New()
	counter := 0
	var wg sync.WaitGroup

	// When 50 goroutines increment under the same key
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("greeting-1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	// Then no increment is lost and no entry leaks
	req.Equal(50, counter)
	req.Equal(0, locks.Len())
}

func TestKeyedMutex_IndependentKeys(t *testing.T) {
	req := require.New(t)
	locks := New()

	// Given a held key
	unlockA := locks.Lock("a")

	// When another key is locked, it does not block
	unlockB := locks.Lock("b")
	req.Equal(2, locks.Len())

	unlockB()
	unlockA()
	// And double unlock is harmless
	unlockA()
	req.Equal(0, locks.Len())
}
