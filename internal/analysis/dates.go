package analysis

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/jonathan/ats-resume-scorer/internal/types"
)

// YearMonth is a calendar month; employment history is evaluated at month granularity.
type YearMonth struct {
	Year  int
	Month time.Month
}

// Index returns a monotonically increasing month number.
func (ym YearMonth) Index() int {
	return ym.Year*12 + int(ym.Month) - 1
}

// String formats the month as YYYY-MM.
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, int(ym.Month))
}

// MonthsBetween returns b - a in months.
func MonthsBetween(a, b YearMonth) int {
	return b.Index() - a.Index()
}

func yearMonthOf(t time.Time) YearMonth {
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// Date format families, used to check formatting consistency.
const (
	DateFormatISO       = "iso"        // 2021-06, 2021-06-15
	DateFormatNumeric   = "numeric"    // 06/2021
	DateFormatMonthAbbr = "month_abbr" // Jun 2021
	DateFormatMonthName = "month_name" // June 2021
	DateFormatYear      = "year"       // 2021
	DateFormatOngoing   = "ongoing"    // Present
)

var ongoingWords = map[string]bool{
	"": true, "present": true, "current": true, "currently": true,
	"now": true, "ongoing": true, "today": true, "to date": true,
}

var monthNames = map[string]time.Month{
	"january": time.January, "february": time.February, "march": time.March,
	"april": time.April, "may": time.May, "june": time.June, "july": time.July,
	"august": time.August, "september": time.September, "october": time.October,
	"november": time.November, "december": time.December,
	"jan": time.January, "feb": time.February, "mar": time.March, "apr": time.April,
	"jun": time.June, "jul": time.July, "aug": time.August, "sep": time.September,
	"sept": time.September, "oct": time.October, "nov": time.November, "dec": time.December,
}

// ErrUnparseableDate is the cause of every date parsing failure.
var ErrUnparseableDate = errors.New("unparseable date")

// IsOngoing reports whether an end date denotes a current role.
func IsOngoing(s string) bool {
	return ongoingWords[strings.ToLower(strings.TrimSpace(s))]
}

// DateFormatOf classifies the formatting family of a date string.
// Returns "" for strings that do not parse.
func DateFormatOf(s string) string {
	_, format, err := parseDate(s, false)
	if err != nil {
		return ""
	}
	return format
}

// ParseStart parses a start date. A bare year resolves to January.
func ParseStart(s string) (YearMonth, error) {
	if IsOngoing(s) {
		return YearMonth{}, errors.Wrapf(ErrUnparseableDate, "start date %q", s)
	}
	ym, _, err := parseDate(s, false)
	return ym, err
}

// ParseEnd parses an end date, resolving ongoing markers to now.
// A bare year resolves to December.
func ParseEnd(s string, now time.Time) (YearMonth, bool, error) {
	if IsOngoing(s) {
		return yearMonthOf(now), true, nil
	}
	ym, _, err := parseDate(s, true)
	return ym, false, err
}

func parseDate(raw string, yearEnd bool) (YearMonth, string, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if IsOngoing(s) {
		return YearMonth{}, DateFormatOngoing, nil
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", " ")

	for _, layout := range []string{"2006-01-02", "2006-01", "2006-1", "2006/01"} {
		if t, err := time.Parse(layout, s); err == nil {
			return yearMonthOf(t), DateFormatISO, nil
		}
	}
	for _, layout := range []string{"01/2006", "1/2006", "01/02/2006", "1/2/2006", "01-2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return yearMonthOf(t), DateFormatNumeric, nil
		}
	}

	fields := strings.Fields(s)
	if len(fields) == 2 {
		if m, ok := monthNames[fields[0]]; ok {
			if y, err := parseYear(fields[1]); err == nil {
				format := DateFormatMonthName
				if len(fields[0]) <= 4 && fields[0] != "june" && fields[0] != "july" && fields[0] != "may" {
					format = DateFormatMonthAbbr
				}
				return YearMonth{Year: y, Month: m}, format, nil
			}
		}
	}
	if len(fields) == 1 {
		if y, err := parseYear(fields[0]); err == nil {
			month := time.January
			if yearEnd {
				month = time.December
			}
			return YearMonth{Year: y, Month: month}, DateFormatYear, nil
		}
	}

	return YearMonth{}, "", errors.Wrapf(ErrUnparseableDate, "%q", raw)
}

func parseYear(s string) (int, error) {
	if len(s) != 4 {
		return 0, ErrUnparseableDate
	}
	y, err := strconv.Atoi(s)
	if err != nil || y < 1900 || y > 2100 {
		return 0, ErrUnparseableDate
	}
	return y, nil
}

// Interval is an employment record with its dates resolved.
type Interval struct {
	Record  types.EmploymentRecord
	Start   YearMonth
	End     YearMonth
	Ongoing bool
}

// Months returns the tenure of the interval in months. Both the start and
// the end month count as worked, so Jan to Dec of one year is 12.
func (iv Interval) Months() int {
	return MonthsBetween(iv.Start, iv.End) + 1
}

// ResolveIntervals parses every record's dates and returns the intervals
// sorted by start date. An end date before its start date is an error.
func ResolveIntervals(records []types.EmploymentRecord, now time.Time) ([]Interval, error) {
	intervals := make([]Interval, 0, len(records))
	for i, rec := range records {
		start, err := ParseStart(rec.StartDate)
		if err != nil {
			return nil, errors.Wrapf(err, "employment record %d (%s)", i, rec.Company)
		}
		end, ongoing, err := ParseEnd(rec.EndDate, now)
		if err != nil {
			return nil, errors.Wrapf(err, "employment record %d (%s)", i, rec.Company)
		}
		if end.Index() < start.Index() {
			return nil, errors.Errorf("employment record %d (%s): end %s is before start %s", i, rec.Company, end, start)
		}
		intervals = append(intervals, Interval{Record: rec, Start: start, End: end, Ongoing: ongoing})
	}

	sort.SliceStable(intervals, func(i, j int) bool {
		if intervals[i].Start.Index() != intervals[j].Start.Index() {
			return intervals[i].Start.Index() < intervals[j].Start.Index()
		}
		return intervals[i].End.Index() < intervals[j].End.Index()
	})
	return intervals, nil
}

// TotalExperienceMonths returns the number of months covered by at least
// one interval, so overlapping roles are not double counted.
func TotalExperienceMonths(intervals []Interval) int {
	if len(intervals) == 0 {
		return 0
	}
	total := 0
	curStart := intervals[0].Start.Index()
	curEnd := intervals[0].End.Index()
	for _, iv := range intervals[1:] {
		s, e := iv.Start.Index(), iv.End.Index()
		if s <= curEnd {
			if e > curEnd {
				curEnd = e
			}
			continue
		}
		total += curEnd - curStart
		curStart, curEnd = s, e
	}
	total += curEnd - curStart
	return total
}
