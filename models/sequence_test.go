package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSequenceChainDefaults(t *testing.T) {
	chain := NewSequenceChain()
	assert.Equal(t, []string{"order_number_seq", "sales_order_seq"}, chain.Names)

	custom := NewSequenceChain("a_seq", "b_seq", "c_seq")
	assert.Equal(t, []string{"a_seq", "b_seq", "c_seq"}, custom.Names)
}

func TestCounterSource(t *testing.T) {
	src := &CounterSource{}

	n1, err := src.Next(nil)
	assert.NoError(t, err)
	n2, err := src.Next(nil)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n1)
	assert.Equal(t, int64(2), n2)
}

func TestCounterSourceConcurrent(t *testing.T) {
	src := &CounterSource{}
	const workers = 20
	const perWorker = 50

	seen := make(chan int64, workers*perWorker)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				n, err := src.Next(nil)
				assert.NoError(t, err)
				seen <- n
			}
		}()
	}
	wg.Wait()
	close(seen)

	unique := make(map[int64]bool)
	for n := range seen {
		assert.False(t, unique[n], "number %d handed out twice", n)
		unique[n] = true
	}
	assert.Len(t, unique, workers*perWorker)
}
