package test

import (
	"math/rand"
	"sync"
	"time"
)

const asciiAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var source = struct {
	sync.Mutex
	*rand.Rand
}{Rand: rand.New(rand.NewSource(time.Now().UnixNano()))}

func intn(n int) int {
	source.Lock()
	defer source.Unlock()
	return source.Intn(n)
}

// RandomASCIIString returns a random alphanumeric string whose length falls
// in [minLen, maxLen]. Bounds below 1 are lifted to 1, and an inverted range
// collapses to minLen.
func RandomASCIIString(minLen, maxLen int) string {
	if minLen < 1 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	n := minLen
	if maxLen > minLen {
		n += intn(maxLen - minLen + 1)
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = asciiAlphabet[intn(len(asciiAlphabet))]
	}
	return string(b)
}
