package face

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLocaleMatching(t *testing.T) {
	tests := []struct {
		in   string
		want language.Tag
	}{
		{"en-US", language.English},
		{"de-CH", language.German},
		{"fr-CA", language.French},
		{"es-MX", language.Spanish},
		{"ja", language.English},
	}
	for _, tt := range tests {
		l, err := ParseLocale(tt.in)
		require.NoError(t, err)
		base, _ := l.Tag().Base()
		want, _ := tt.want.Base()
		assert.Equal(t, want, base, tt.in)
	}

	_, err := ParseLocale("not a tag!")
	assert.Error(t, err)
}

func TestLocaleNames(t *testing.T) {
	sat := time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		tag        language.Tag
		two, three string
		monthDay   string
	}{
		{language.English, "Sa", "Sat", "Mar 7"},
		{language.German, "Sa", "Sa.", "März 7"},
		{language.French, "sa", "sam", "mars 7"},
		{language.Spanish, "sá", "sáb", "mar 7"},
	}
	for _, tt := range tests {
		l := NewLocale(tt.tag)
		assert.Equal(t, tt.two, l.Weekday(sat, 2), tt.tag.String())
		assert.Equal(t, tt.three, l.Weekday(sat, 3), tt.tag.String())
		assert.Equal(t, tt.monthDay, l.MonthDay(sat), tt.tag.String())
	}

	var zero Locale
	assert.Equal(t, "Sat", zero.Weekday(sat, 3))
	assert.Equal(t, language.English, zero.Tag())
}
