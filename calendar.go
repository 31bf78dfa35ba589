package main

const (
	daySecs = 24 * 60 * 60

	// yearSecs is the Gregorian mean year (365 + 1/4 - 1/100 + 1/400 days)
	// in seconds.
	yearSecs = daySecs * 3652425 / 10000
)

var monthNames = [12]string{
	"January", "February", "March",
	"April", "May", "June",
	"July", "August", "September",
	"October", "November", "December",
}

// Year is one calendar year with a mood for each of its days.
//
// The year, the day of year and the weekday of January 1st are derived from
// the mean Gregorian year length rather than exact calendar arithmetic, so
// Today can drift a day or so from the real date.
type Year struct {
	AD    uint
	// Today is the zero-based day of year, always a valid index into Days.
	Today int
	// Weekd is the weekday of January 1st, 0 = Sunday.
	Weekd int
	Sign  Sign
	Days  []Mood
}

// NewYear builds the year containing the Unix timestamp ts. The mood stream
// is seeded with the year plus the sign's offset.
func NewYear(ts uint64, sign Sign) *Year {
	ad := uint(ts/yearSecs + 1970)
	today := int(ts % yearSecs / daySecs)
	weekd := int(uint64(ad) * yearSecs / daySecs % 7)

	length := YearLength(ad)
	if today >= length {
		today = length - 1
	}

	days := TakeMoods(NewHoro(uint64(ad)+sign.SeedOffset()), length)

	return &Year{
		AD:    ad,
		Today: today,
		Weekd: weekd,
		Sign:  sign,
		Days:  days,
	}
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year uint) bool {
	if year%4 != 0 {
		return false
	}
	if year%100 != 0 {
		return true
	}
	return year%400 == 0
}

// YearLength returns the number of days in year.
func YearLength(year uint) int {
	if IsLeap(year) {
		return 366
	}
	return 365
}

// MonthLength returns the number of days in month (0 = January).
func MonthLength(month int, leap bool) int {
	switch month {
	case 1:
		if leap {
			return 29
		}
		return 28
	case 3, 5, 8, 10:
		return 30
	default:
		return 31
	}
}

// MonthName returns the English name of month (0 = January).
func MonthName(month int) string {
	if month < 0 || month >= len(monthNames) {
		return ""
	}
	return monthNames[month]
}

// CurrentMonth returns the month (0 = January) that contains Today.
func (y *Year) CurrentMonth() int {
	leap := IsLeap(y.AD)
	countdown := y.Today
	month := 0
	for month < 11 {
		length := MonthLength(month, leap)
		if countdown < length {
			break
		}
		countdown -= length
		month++
	}
	return month
}

// DayOffset returns the index in Days of the first day of the current month.
func (y *Year) DayOffset() int {
	leap := IsLeap(y.AD)
	offset := 0
	for month := 0; month < y.CurrentMonth(); month++ {
		offset += MonthLength(month, leap)
	}
	return offset
}
