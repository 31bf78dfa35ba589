package main

import (
	"fmt"
	"strings"
)

// Sign is an astrological sign. It shifts the mood seed and prefixes the
// calendar header with its glyph.
type Sign int

// NoSign leaves the seed untouched and prints no glyph.
const NoSign Sign = -1

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// Signs lists every sign in seed order.
var Signs = []Sign{
	Aries, Taurus, Gemini,
	Cancer, Leo, Virgo,
	Libra, Scorpio, Sagittarius,
	Capricorn, Aquarius, Pisces,
}

var signNames = map[Sign]string{
	Aries:       "aries",
	Taurus:      "taurus",
	Gemini:      "gemini",
	Cancer:      "cancer",
	Leo:         "leo",
	Virgo:       "virgo",
	Libra:       "libra",
	Scorpio:     "scorpio",
	Sagittarius: "sagittarius",
	Capricorn:   "capricorn",
	Aquarius:    "aquarius",
	Pisces:      "pisces",
}

// SignError is returned when a sign name is not one of the accepted values.
type SignError struct {
	Input string
}

func (e *SignError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Could not match %q\nPossible values:", e.Input)
	for _, s := range Signs {
		b.WriteString("\n    ")
		b.WriteString(s.String())
	}
	return b.String()
}

// ParseSign resolves a lowercase sign name. An empty string means NoSign.
func ParseSign(name string) (Sign, error) {
	if name == "" {
		return NoSign, nil
	}
	for _, s := range Signs {
		if signNames[s] == name {
			return s, nil
		}
	}
	return NoSign, &SignError{Input: name}
}

// String returns the name accepted by ParseSign.
func (s Sign) String() string {
	if name, ok := signNames[s]; ok {
		return name
	}
	return ""
}

// Glyph returns the Unicode zodiac symbol (U+2648..U+2653), or "" for NoSign.
func (s Sign) Glyph() string {
	if s < Aries || s > Pisces {
		return ""
	}
	return string(rune(0x2648 + int(s)))
}

// SeedOffset is added to the year when seeding the mood generator.
func (s Sign) SeedOffset() uint64 {
	if s < Aries || s > Pisces {
		return 0
	}
	return uint64(s)
}
