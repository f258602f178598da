package runner

import (
	"fmt"
	"time"

	"github.com/hupe1980/puzzlekit/internal/printer"
	"github.com/hupe1980/puzzlekit/search"
)

// FormatDuration renders d with a precision that suits its magnitude.
func FormatDuration(d time.Duration) string {
	ns := d.Nanoseconds()
	switch {
	case ns < 0:
		return "-"
	case ns > 10_000_000_000:
		return fmt.Sprintf("%.1fs", float64(ns)/1e9)
	case ns > 1_000_000_000:
		return fmt.Sprintf("%.2fs", float64(ns)/1e9)
	case ns > 1_000_000:
		return fmt.Sprintf("%.2fms", float64(ns)/1e6)
	case ns > 1_000:
		return fmt.Sprintf("%.2fµs", float64(ns)/1e3)
	default:
		return fmt.Sprintf("%dns", ns)
	}
}

// Print renders the report.
func (rep Report) Print(p *printer.Printer) {
	p.Header("--- Day %d: %s ---", rep.Day, rep.Title)
	if rep.Err != nil {
		p.Warning("%v", rep.Err)
	}

	p.Section("Results")
	for _, s := range rep.Steps {
		if s.HasValue {
			p.Result(s.Name, s.Value)
		}
	}

	if len(rep.Info) > 0 {
		p.Blank()
		p.Section("Info")
		for _, f := range rep.Info {
			p.Field(f.Key, f.Value)
		}
	}

	if rep.Stats != (search.Stats{}) {
		p.Blank()
		p.Section("Search")
		p.Field("Pushed", fmt.Sprint(rep.Stats.Pushed))
		p.Field("Admitted", fmt.Sprint(rep.Stats.Admitted))
		p.Field("Popped", fmt.Sprint(rep.Stats.Popped))
	}

	p.Blank()
	p.Section("Times")
	for _, s := range rep.Steps {
		name := s.Name
		if s.Runs > 1 {
			name = fmt.Sprintf("%s (x%d)", s.Name, s.Runs)
		}
		p.Timing(name, FormatDuration(s.Duration))
	}
	if rep.HasTotal {
		p.Blank()
		p.Total(FormatDuration(rep.Total))
	}
	p.Blank()
}
