package transcript

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/balsas-labs/stenograma-cli/internal/core/domain"
)

// Lithuanian month names, genitive and nominative, with diacritics
// already stripped. Lookup strips diacritics from the input token, so
// "birželio" and "birzelio" both resolve.
var ltMonths = map[string]time.Month{
	"sausio": time.January, "sausis": time.January,
	"vasario": time.February, "vasaris": time.February,
	"kovo": time.March, "kovas": time.March,
	"balandzio": time.April, "balandis": time.April,
	"geguzes": time.May, "geguze": time.May,
	"birzelio": time.June, "birzelis": time.June,
	"liepos": time.July, "liepa": time.July,
	"rugpjucio": time.August, "rugpjutis": time.August,
	"rugsejo": time.September, "rugsejis": time.September,
	"spalio": time.October, "spalis": time.October,
	"lapkricio": time.November, "lapkritis": time.November,
	"gruodzio": time.December, "gruodis": time.December,
}

var (
	// ISO-ish numeric dates: 2024-05-16, 2024/5/16, 2024.05.16.
	isoDateRe = regexp.MustCompile(`\b(\d{4})[-/.](\d{1,2})[-/.](\d{1,2})\b`)

	// Lithuanian long form: "2024 m. gegužės 16 d."
	ltDateRe = regexp.MustCompile(`(\d{4})\s*m\.\s*(\p{L}+(?:[\s.]+\p{L}+)*)[\s.]+(\d{1,2})\s*d\.?`)
)

// stripDiacritics removes combining marks, mapping "gegužės" to the
// plain ASCII lookup key "geguzes".
func stripDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// ParseDateLabel parses an explicit date string in ISO form
// (YYYY-MM-DD) or Lithuanian long form (YYYY m. <month> DD d.).
// Returns domain.ErrMalformedDate when the label is not a date.
func ParseDateLabel(label string) (time.Time, error) {
	cleaned := strings.TrimSpace(label)
	if cleaned == "" {
		return time.Time{}, fmt.Errorf("empty label: %w", domain.ErrMalformedDate)
	}

	if m := isoDateRe.FindStringSubmatch(cleaned); m != nil {
		return makeDate(m[1], m[2], m[3])
	}

	if m := ltDateRe.FindStringSubmatch(cleaned); m != nil {
		month, ok := lookupMonth(m[2])
		if !ok {
			return time.Time{}, fmt.Errorf("unknown month in %q: %w", label, domain.ErrMalformedDate)
		}
		year, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[3])
		return validDate(year, month, day, label)
	}

	return time.Time{}, fmt.Errorf("unrecognised date %q: %w", label, domain.ErrMalformedDate)
}

// ExtractDate finds the first date-like token in a file name or title.
// ok is false when no date is present.
func ExtractDate(s string) (time.Time, bool) {
	if m := ltDateRe.FindStringSubmatch(s); m != nil {
		if month, found := lookupMonth(m[2]); found {
			year, _ := strconv.Atoi(m[1])
			day, _ := strconv.Atoi(m[3])
			if d, err := validDate(year, month, day, s); err == nil {
				return d, true
			}
		}
	}

	if m := isoDateRe.FindStringSubmatch(s); m != nil {
		if d, err := makeDate(m[1], m[2], m[3]); err == nil {
			return d, true
		}
	}

	return time.Time{}, false
}

// lookupMonth resolves a month-name fragment, tolerating the "mėn."
// abbreviation and diacritic variants.
func lookupMonth(fragment string) (time.Month, bool) {
	for _, token := range strings.FieldsFunc(fragment, func(r rune) bool {
		return !unicode.IsLetter(r)
	}) {
		key := stripDiacritics(strings.ToLower(token))
		if key == "men" {
			continue
		}
		if month, ok := ltMonths[key]; ok {
			return month, true
		}
	}
	return 0, false
}

func makeDate(year, month, day string) (time.Time, error) {
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	if m < 1 || m > 12 {
		return time.Time{}, fmt.Errorf("month %d out of range: %w", m, domain.ErrMalformedDate)
	}
	return validDate(y, time.Month(m), d, year+"-"+month+"-"+day)
}

// validDate rejects day overflow (time.Date would normalise
// 2024-02-31 into March otherwise).
func validDate(year int, month time.Month, day int, label string) (time.Time, error) {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", label, domain.ErrMalformedDate)
	}
	return t, nil
}
