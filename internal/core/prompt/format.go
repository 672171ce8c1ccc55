package prompt

import (
	"fmt"
	"regexp"
	"strconv"
)

// Indexes are written without leading zeros; "{01}" is not a placeholder.
var placeholderRe = regexp.MustCompile(`\{(0|[1-9]\d*)\}`)

// Format replaces every {i} placeholder in tmpl with values[i]. Placeholders
// whose index has no matching value are left as written. Substituted text is
// never scanned again, so a value containing "{0}" stays literal.
func Format(tmpl string, values ...any) string {
	if len(values) == 0 {
		return tmpl
	}

	return placeholderRe.ReplaceAllStringFunc(tmpl, func(match string) string {
		idx, err := strconv.Atoi(match[1 : len(match)-1])
		if err != nil || idx >= len(values) {
			return match
		}
		return fmt.Sprint(values[idx])
	})
}
