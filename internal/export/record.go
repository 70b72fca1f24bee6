package export

import (
	"fmt"
	"strings"
)

// Each comment becomes one line: publication timestamp, author display
// name, comment text. All three fields are always quoted.
const recordFormat = "\"%s\",\"%s\",\"%s\"\n"

var textSanitizer = strings.NewReplacer(
	"\r", "",
	"\n", `\n`,
)

// sanitizeText flattens a comment body to a single line: carriage returns
// are dropped and newlines become the two characters `\n`.
func sanitizeText(s string) string {
	return textSanitizer.Replace(s)
}

// quoteField doubles embedded quotes so a field can sit inside a quoted
// CSV cell without breaking the row.
func quoteField(s string) string {
	return strings.ReplaceAll(s, `"`, `""`)
}

// formatRecord renders one CSV row. The text field is sanitized; the other
// two come straight from the API.
func formatRecord(published, author, text string) string {
	return fmt.Sprintf(recordFormat, quoteField(published), quoteField(author), quoteField(sanitizeText(text)))
}
