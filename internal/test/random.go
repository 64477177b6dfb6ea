package test

import (
	"math/rand"
	"strings"
	"sync"
	"time"
)

const (
	lowerLetters = "abcdefghijklmnopqrstuvwxyz"
	asciiLetters = lowerLetters + "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomASCIIString returns a string of letters and digits with length in [minLen, maxLen].
func RandomASCIIString(minLen, maxLen int) string {
	return randomFrom(asciiLetters, minLen, maxLen)
}

// RandomName returns a capitalised display name.
func RandomName() string {
	name := randomFrom(lowerLetters, 3, 10)
	return strings.ToUpper(name[:1]) + name[1:]
}

// RandomEmail returns a lower-case address under example.com, unique enough for one test run.
func RandomEmail() string {
	return randomFrom(lowerLetters, 5, 12) + "@example.com"
}

// RandomPassword returns a password long enough to pass registration checks
// and short enough for bcrypt.
func RandomPassword() string {
	return RandomASCIIString(16, 32)
}

func randomFrom(alphabet string, minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	rngMu.Lock()
	defer rngMu.Unlock()
	length := minLen + rng.Intn(maxLen-minLen+1)
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(buf)
}
