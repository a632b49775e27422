package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Param is one key/value line in a command header.
type Param struct {
	Key   string
	Value string
}

// Printer writes command output. On a terminal it draws styled boxes; when
// output is piped it falls back to plain lines so scripts can parse it.
type Printer struct {
	out    io.Writer
	width  int
	styled bool
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:    w,
		width:  TerminalWidth(w),
		styled: IsTerminal(w),
	}
}

// Width returns the current terminal width used by this printer
func (p *Printer) Width() int {
	return p.width
}

// Styled reports whether the printer draws boxes and colours.
func (p *Printer) Styled() bool {
	return p.styled
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// PrintHeader prints a command header. Plain output skips it entirely.
func (p *Printer) PrintHeader(title string, params ...Param) {
	if !p.styled {
		return
	}
	p.Println(RenderHeader(title, params, p.width))
}

// PrintError prints an error result with troubleshooting tips
func (p *Printer) PrintError(title string, err error, troubleshooting []string) {
	if !p.styled {
		if err != nil {
			p.Println(fmt.Sprintf("Error: %s: %v", title, err))
		} else {
			p.Println("Error: " + title)
		}
		return
	}
	p.Println(RenderErrorBox(title, err, troubleshooting, p.width))
}

// PrintSuccess prints a completed action. Plain output drops the marker.
func (p *Printer) PrintSuccess(message string) {
	if !p.styled {
		p.Println(message)
		return
	}
	p.Println(RenderSuccess(message))
}

// PrintWarning prints a single warning line or box
func (p *Printer) PrintWarning(message string) {
	if !p.styled {
		p.Println(message)
		return
	}
	p.Println(RenderWarningBox(message, p.width))
}

// RenderSuccess renders a one-line success message with its marker
func RenderSuccess(message string) string {
	return SuccessStyle.Render(SuccessMarker + "  " + message)
}

// RenderHeader renders a command header box
func RenderHeader(title string, params []Param, width int) string {
	width = clampWidth(width)

	lines := []string{HeaderTitleStyle.Render(strings.ToUpper(title))}
	for _, param := range params {
		keyStyled := HeaderParamKeyStyle.Render(param.Key + ":")
		valueStyled := HeaderParamValueStyle.Render(param.Value)
		lines = append(lines, keyStyled+" "+valueStyled)
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return HeaderBorderStyle(width).Render(content)
}

// RenderErrorBox renders an error result box with troubleshooting
func RenderErrorBox(title string, err error, troubleshooting []string, width int) string {
	width = clampWidth(width)

	var lines []string

	lines = append(lines, "")
	lines = append(lines, ErrorTitleStyle.Render(FailureMarker+"  "+title))
	lines = append(lines, "")

	if err != nil {
		lines = append(lines, ErrorMessageStyle.Render("Error: "+err.Error()))
		lines = append(lines, "")
	}

	if len(troubleshooting) > 0 {
		var troubleLines []string
		troubleLines = append(troubleLines, TroubleshootingTitleStyle.Render("Troubleshooting:"))
		for _, tip := range troubleshooting {
			troubleLines = append(troubleLines, TroubleshootingItemStyle.Render("  • "+tip))
		}

		lines = append(lines, TroubleshootingBoxStyle(width).Render(strings.Join(troubleLines, "\n")))
		lines = append(lines, "")
	}

	return ErrorBoxStyle(width).Render(strings.Join(lines, "\n"))
}

// RenderWarningBox renders a one-message warning box
func RenderWarningBox(message string, width int) string {
	width = clampWidth(width)
	return WarningBoxStyle(width).Render(WarningTitleStyle.Render(WarningMarker + "  " + message))
}
