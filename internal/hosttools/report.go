package hosttools

import (
	"fmt"
	"io"
)

// Report probes the standard tool set and writes a line per tool. Missing
// tools are reported, not fatal; install and doctor surface the same view.
func Report(w io.Writer) {
	for _, name := range KnownTools {
		tool, err := Probe(name)
		if err != nil {
			fmt.Fprintf(w, "  [--] %-8s not found\n", name)
			continue
		}

		status := "[ok]"
		note := ""
		if name == "python3" {
			ok, cerr := tool.Meets(MinPython)
			if cerr == nil && !ok {
				status = "[!!]"
				note = fmt.Sprintf(" (need %s)", MinPython)
			}
		}
		fmt.Fprintf(w, "  %s %-8s %s%s\n", status, name, tool.RawVersion, note)
	}
}
