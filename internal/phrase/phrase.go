// Package phrase expands configured phrase templates into entry text.
//
// A phrase body may contain positional placeholders {0}..{n}, the {*}
// placeholder which joins every argument with spaces, and the {#}
// placeholder which joins the arguments as a spoken list with a localized
// conjunction ("milk, bread and eggs").
package phrase

import (
	"fmt"
	"strconv"
	"strings"
)

// NotFoundError is returned when a phrase key has no configured body.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown phrase %q", e.Key)
}

// Expand looks up key in phrases and substitutes args into its body.
// Positional placeholders beyond the supplied arguments expand to the
// empty string.
func Expand(phrases map[string]string, key string, args []string, locale string) (string, error) {
	body, ok := phrases[key]
	if !ok {
		return "", &NotFoundError{Key: key}
	}
	return Substitute(body, args, locale), nil
}

// Substitute applies placeholder replacement to body without a lookup.
func Substitute(body string, args []string, locale string) string {
	pairs := []string{
		"{*}", strings.Join(args, " "),
		"{#}", spokenList(args, locale),
	}
	for i, arg := range args {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", arg)
	}
	out := strings.NewReplacer(pairs...).Replace(body)
	return stripUnusedPlaceholders(out)
}

// spokenList renders args as "a, b and c" using the locale's conjunction.
func spokenList(args []string, locale string) string {
	switch len(args) {
	case 0:
		return ""
	case 1:
		return args[0]
	}
	head := strings.Join(args[:len(args)-1], ", ")
	return head + " " + conjunction(locale) + " " + args[len(args)-1]
}

func conjunction(locale string) string {
	switch locale {
	case "nb_NO", "nn_NO", "no":
		return "og"
	default:
		return "and"
	}
}

// stripUnusedPlaceholders removes positional placeholders that had no
// matching argument so a phrase invoked with too few words still reads
// cleanly.
func stripUnusedPlaceholders(s string) string {
	for {
		start := strings.Index(s, "{")
		if start < 0 {
			return s
		}
		end := strings.Index(s[start:], "}")
		if end < 0 {
			return s
		}
		inner := s[start+1 : start+end]
		if _, err := strconv.Atoi(inner); err != nil {
			// Not a positional placeholder; leave it alone and stop
			// scanning so literal braces survive.
			return s
		}
		s = s[:start] + s[start+end+1:]
		s = strings.TrimRight(strings.ReplaceAll(s, "  ", " "), " ")
	}
}
