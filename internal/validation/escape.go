package validation

import "strings"

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
	`\`, "&#x5C;",
	"`", "&#96;",
)

// Escape replaces markup-significant characters so stored text is inert when
// rendered. Applied to every text field before persistence.
func Escape(s string) string {
	return escaper.Replace(s)
}
