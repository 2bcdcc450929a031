// Package template expands the scaffold used when a daily note is created.
package template

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Fallback is the minimal scaffold used when no template file is available:
// just the log section header, so appends have somewhere to land.
const Fallback = "## 🕗\n\n"

// Data holds the values substituted into a template.
type Data struct {
	Today     string
	Yesterday string
	Tomorrow  string
	Weekday   string
	Created   string
}

// NewData derives template values for the given moment. The weekday name is
// localized and lowercased; unknown locales fall back to Norwegian Bokmål,
// matching the tool's home turf.
func NewData(now time.Time, locale string) Data {
	return Data{
		Today:     now.Format("2006-01-02"),
		Yesterday: now.AddDate(0, 0, -1).Format("2006-01-02"),
		Tomorrow:  now.AddDate(0, 0, 1).Format("2006-01-02"),
		Weekday:   WeekdayName(now.Weekday(), locale),
		Created:   now.Format("2006-01-02 15:04"),
	}
}

// Expand substitutes all template tokens in content.
func Expand(content string, data Data) string {
	replacer := strings.NewReplacer(
		"{today}", data.Today,
		"{yesterday}", data.Yesterday,
		"{tomorrow}", data.Tomorrow,
		"{weekday}", data.Weekday,
		"{created}", data.Created,
	)
	return replacer.Replace(content)
}

// Load reads the template at path (with ~ expansion) and expands it. A
// missing or unreadable template degrades to the fallback scaffold rather
// than blocking the day's first entry.
func Load(path string, data Data) string {
	if path == "" {
		return Expand(Fallback, data)
	}

	content, err := os.ReadFile(expandHome(path))
	if err != nil {
		return Expand(Fallback, data)
	}
	return Expand(string(content), data)
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	rest := strings.TrimPrefix(path, "~")
	rest = strings.TrimPrefix(rest, string(filepath.Separator))
	rest = strings.TrimPrefix(rest, "/")
	return filepath.Join(home, rest)
}

// weekdayNames is indexed by time.Weekday (Sunday first). Locales mirror the
// set the configuration documents; everything else gets Bokmål.
var weekdayNames = map[string][7]string{
	"en_US": {"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"},
	"nb_NO": {"søndag", "mandag", "tirsdag", "onsdag", "torsdag", "fredag", "lørdag"},
	"nn_NO": {"søndag", "måndag", "tysdag", "onsdag", "torsdag", "fredag", "laurdag"},
	"de_DE": {"sonntag", "montag", "dienstag", "mittwoch", "donnerstag", "freitag", "samstag"},
	"fr_FR": {"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
	"es_ES": {"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
	"it_IT": {"domenica", "lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato"},
	"ja_JP": {"日曜日", "月曜日", "火曜日", "水曜日", "木曜日", "金曜日", "土曜日"},
	"ko_KR": {"일요일", "월요일", "화요일", "수요일", "목요일", "금요일", "토요일"},
	"ru_RU": {"воскресенье", "понедельник", "вторник", "среда", "четверг", "пятница", "суббота"},
	"zh_CN": {"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"},
}

// WeekdayName returns the lowercase localized weekday name.
func WeekdayName(day time.Weekday, locale string) string {
	names, ok := weekdayNames[locale]
	if !ok {
		if locale == "" {
			names = weekdayNames["en_US"]
		} else {
			names = weekdayNames["nb_NO"]
		}
	}
	return names[int(day)]
}
