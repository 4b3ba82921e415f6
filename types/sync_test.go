// SPDX-License-Identifier: NONE
package types

import (
	"sync"
	"testing"
)

func TestSafeCounter(t *testing.T) {
	c := new(SafeCounter)
	wg := new(sync.WaitGroup)

	for index := 0; index < 50; index++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Inc()
			c.Add(2)
		}()
	}
	wg.Wait()

	if got := c.Value(); got != 150 {
		t.Errorf("SafeCounter.Value() = %v, want %v", got, 150)
	}
}
