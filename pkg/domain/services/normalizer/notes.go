package normalizer

import (
	"strings"

	"github.com/tidwall/gjson"
)

// noteField is an auxiliary value rendered as a labeled notes line
type noteField struct {
	label  string
	key    string
	suffix string
}

// buildNotes renders each present auxiliary value as "Label: value"; absent
// values produce no line.
func buildNotes(doc gjson.Result, fields []noteField) string {
	var lines []string
	for _, f := range fields {
		value := text(doc.Get(f.key))
		if value == "" {
			continue
		}
		lines = append(lines, f.label+": "+value+f.suffix)
	}
	return strings.Join(lines, "\n")
}
