package main

import "fmt"

// Mood is the quality assigned to a single day of the year.
type Mood int

const (
	MoodWorst Mood = iota
	MoodBad
	MoodNormal
	MoodGood
	MoodBest
)

// Fractions of a standard normal distribution covered by one, two and three
// standard deviations on a single side of the mean.
const (
	stdDev1 float32 = 0.341
	stdDev2 float32 = 0.136
	stdDev3 float32 = 0.021
)

// Upper bucket edges on the unit interval. Everything at or above moodHi is
// MoodBest.
const (
	moodMin = stdDev3
	moodLo  = moodMin + stdDev2
	moodMed = moodLo + stdDev1*2
	moodHi  = moodMed + stdDev2
)

// MoodFromUnit maps a value in [0,1] to a Mood. Every input yields a Mood:
// values above 1, and NaN, land in MoodBest.
func MoodFromUnit(x float32) Mood {
	switch {
	case x < moodMin:
		return MoodWorst
	case x < moodLo:
		return MoodBad
	case x < moodMed:
		return MoodNormal
	case x < moodHi:
		return MoodGood
	default:
		return MoodBest
	}
}

// SGR returns the ANSI select-graphic-rendition code used to color a day
// with this mood.
func (m Mood) SGR() int {
	switch m {
	case MoodWorst:
		return 91
	case MoodBad:
		return 31
	case MoodGood:
		return 32
	case MoodBest:
		return 92
	default:
		return 0
	}
}

// Escape returns the full escape sequence that switches the terminal to
// this mood's color.
func (m Mood) Escape() string {
	return fmt.Sprintf("\x1b[%dm", m.SGR())
}

func (m Mood) String() string {
	switch m {
	case MoodWorst:
		return "worst"
	case MoodBad:
		return "bad"
	case MoodNormal:
		return "normal"
	case MoodGood:
		return "good"
	case MoodBest:
		return "best"
	default:
		return fmt.Sprintf("Mood(%d)", int(m))
	}
}
