package normalizer

import "fmt"

// diagnostics accumulates distinct warnings in emission order during one call
type diagnostics struct {
	warnings []string
}

func (d *diagnostics) add(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	for _, w := range d.warnings {
		if w == msg {
			return
		}
	}
	d.warnings = append(d.warnings, msg)
}

// list returns a copy so the returned Result never aliases the collector
func (d *diagnostics) list() []string {
	out := make([]string, len(d.warnings))
	copy(out, d.warnings)
	return out
}
