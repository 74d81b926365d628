package face

import (
	"strconv"
	"time"

	"golang.org/x/text/language"
)

// calendarNames holds abbreviated weekday and month names, the way a
// medium date format spells them.
type calendarNames struct {
	weekdays [7]string  // Sunday first
	months   [12]string // January first
}

var (
	localeTags = []language.Tag{
		language.English,
		language.German,
		language.French,
		language.Spanish,
	}

	localeNames = []calendarNames{
		{
			weekdays: [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
			months:   [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		},
		{
			weekdays: [7]string{"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa."},
			months:   [12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
		},
		{
			weekdays: [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
			months:   [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
		},
		{
			weekdays: [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
			months:   [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
		},
	}

	localeMatcher = language.NewMatcher(localeTags)
)

// Locale names weekdays and months for the date strip. The zero value is
// English.
type Locale struct {
	tag   language.Tag
	names *calendarNames
}

// NewLocale picks the closest supported locale for tag; unsupported
// languages fall back to English.
func NewLocale(tag language.Tag) Locale {
	_, idx, conf := localeMatcher.Match(tag)
	if conf == language.No {
		idx = 0
	}
	return Locale{tag: localeTags[idx], names: &localeNames[idx]}
}

// ParseLocale parses a BCP 47 tag such as "de-CH" and matches it.
func ParseLocale(s string) (Locale, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return Locale{}, err
	}
	return NewLocale(tag), nil
}

// Tag returns the matched language.
func (l Locale) Tag() language.Tag {
	if l.names == nil {
		return language.English
	}
	return l.tag
}

func (l Locale) calendar() *calendarNames {
	if l.names == nil {
		return &localeNames[0]
	}
	return l.names
}

// Weekday returns the first n runes of the abbreviated weekday of t.
func (l Locale) Weekday(t time.Time, n int) string {
	return prefix(l.calendar().weekdays[t.Weekday()], n)
}

// MonthDay formats t as abbreviated month and day of month, e.g. "Oct 19".
func (l Locale) MonthDay(t time.Time) string {
	return l.calendar().months[t.Month()-1] + " " + strconv.Itoa(t.Day())
}

func prefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
