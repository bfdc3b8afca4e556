package network

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxNameLength is the longest player name the score API accepts, in runes.
const MaxNameLength = 20

var ErrInvalidName = errors.New("invalid name")

// CleanName trims a typed name and checks it against the API's limits.
func CleanName(raw string) (string, error) {
	name := strings.TrimSpace(raw)
	n := utf8.RuneCountInString(name)
	switch {
	case n == 0:
		return "", fmt.Errorf("%w: empty", ErrInvalidName)
	case n > MaxNameLength:
		return "", fmt.Errorf("%w: longer than %d characters", ErrInvalidName, MaxNameLength)
	}
	for _, r := range name {
		if !unicode.IsPrint(r) {
			return "", fmt.Errorf("%w: unprintable character %q", ErrInvalidName, r)
		}
	}
	return name, nil
}
