package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

const (
	headerWidth   = 20
	weekdayHeader = "Su Mo Tu We Th Fr Sa"

	sgrReverse = "\x1b[7m"
	sgrReset   = "\x1b[0m"
)

// Header returns the month title, e.g. "♌March 2024", centered in the
// width of the weekday row.
func (y *Year) Header() string {
	title := fmt.Sprintf("%s%s %d", y.Sign.Glyph(), MonthName(y.CurrentMonth()), y.AD)
	return lipgloss.PlaceHorizontal(headerWidth, lipgloss.Center, title)
}

// Render writes the current month grid to w. Each day is colored by its
// mood and the day at index Today is shown in reverse video.
func (y *Year) Render(w io.Writer) error {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, y.Header())
	fmt.Fprintln(&buf, weekdayHeader)

	offset := y.DayOffset()
	length := MonthLength(y.CurrentMonth(), IsLeap(y.AD))
	weekday := (offset + y.Weekd) % 7

	for i := 0; i < weekday; i++ {
		buf.WriteString("   ")
	}

	for day := 0; day < length; day++ {
		index := offset + day
		marker := ""
		if index == y.Today {
			marker = sgrReverse
		}
		fmt.Fprintf(&buf, "%s%s%2d%s ", y.Days[index].Escape(), marker, day+1, sgrReset)

		weekday = (weekday + 1) % 7
		if weekday == 0 {
			buf.WriteByte('\n')
		}
	}
	if weekday != 0 {
		buf.WriteByte('\n')
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// String renders the current month.
func (y *Year) String() string {
	var buf bytes.Buffer
	_ = y.Render(&buf)
	return buf.String()
}
