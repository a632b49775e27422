// Package ui renders the non-interactive output of countryfinder commands.
//
// Commands print through a Printer. When the destination is a terminal the
// printer draws lipgloss boxes sized to the terminal width; otherwise it
// writes plain lines, so `countryfinder list | sort` sees only data.
//
//	p := ui.NewPrinter(os.Stderr)
//	p.PrintError("Could not load countries", err, []string{
//	    "Check your network connection",
//	})
//
// The interactive browser lives in internal/tui.
package ui
