package reservation

import (
	"crypto/rand"
	"io"
	"time"
)

const (
	FallbackCodePrefix = "RES-"
	fallbackCodeLength = 8
	// no 0/O or 1/I/L so codes survive being read out over the phone
	codeAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"
)

// CodeSource produces locally generated confirmation codes.
type CodeSource struct {
	rand io.Reader
}

func NewCodeSource() *CodeSource {
	return &CodeSource{rand: rand.Reader}
}

// NewCodeSourceFrom is used by tests to make codes deterministic.
func NewCodeSourceFrom(r io.Reader) *CodeSource {
	return &CodeSource{rand: r}
}

// Fallback returns RES- followed by eight random characters, each uniform over
// the alphabet.
func (s *CodeSource) Fallback() (ConfirmationCode, error) {
	// bytes at or above this are skipped so b % len(codeAlphabet) stays unbiased
	limit := 256 - 256%len(codeAlphabet)

	out := make([]byte, 0, len(FallbackCodePrefix)+fallbackCodeLength)
	out = append(out, FallbackCodePrefix...)
	buf := make([]byte, fallbackCodeLength)
	for len(out) < cap(out) {
		if _, err := io.ReadFull(s.rand, buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			out = append(out, codeAlphabet[int(b)%len(codeAlphabet)])
			if len(out) == cap(out) {
				break
			}
		}
	}
	return NewConfirmationCode(string(out))
}

func minutes(n int) time.Duration {
	return time.Duration(n) * time.Minute
}
