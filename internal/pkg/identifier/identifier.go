// Package identifier canonicalizes employee ids at every deserialization
// boundary. The relational store keeps ids as text but older datasets carry
// them as integers, so 4, "4" and "004" must resolve to the same map key.
package identifier

import (
	"regexp"
	"strconv"
	"strings"
)

// Width is the canonical zero-padded width for numeric employee ids.
const Width = 3

var numericRegex = regexp.MustCompile(`^[0-9]+$`)

// Canonical returns the canonical form of an employee id: purely numeric
// ids are re-padded to Width digits, everything else is returned trimmed.
func Canonical(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}
	if numericRegex.MatchString(s) {
		n, err := strconv.Atoi(s)
		if err != nil {
			return s
		}
		return pad(n)
	}
	return s
}

// Next generates the next sequential employee id given the existing ids.
// Non-numeric ids are ignored.
func Next(existing []string) string {
	max := 0
	for _, id := range existing {
		n, err := strconv.Atoi(strings.TrimSpace(id))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return pad(max + 1)
}

func pad(n int) string {
	s := strconv.Itoa(n)
	for len(s) < Width {
		s = "0" + s
	}
	return s
}
