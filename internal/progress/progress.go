// Package progress prints human-readable progress of a scaffold run.
//
// Styles are bound to the target writer, so pipes and files get plain text
// and NO_COLOR is honored by lipgloss' profile detection.
package progress

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"scaffold/internal/fsops"
)

var (
	colorSuccess = lipgloss.AdaptiveColor{Light: "#2e7d32", Dark: "#66bb6a"}
	colorInfo    = lipgloss.AdaptiveColor{Light: "#0277bd", Dark: "#4fc3f7"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#757575", Dark: "#9e9e9e"}
)

// Printer writes banners and one line per event. It implements fsops.Reporter.
type Printer struct {
	w     io.Writer
	quiet bool

	bold    lipgloss.Style
	path    lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
}

var _ fsops.Reporter = (*Printer)(nil)

// New returns a Printer writing to w. A quiet printer prints nothing.
func New(w io.Writer, quiet bool) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		quiet:   quiet,
		bold:    r.NewStyle().Bold(true),
		path:    r.NewStyle().Foreground(colorInfo),
		muted:   r.NewStyle().Foreground(colorMuted),
		success: r.NewStyle().Foreground(colorSuccess).Bold(true),
	}
}

// Start prints the start banner.
func (p *Printer) Start(title string) {
	p.printf("🚀 %s\n", p.bold.Render(fmt.Sprintf("Creating %s folder structure...", title)))
}

// Report prints a line for e.
func (p *Printer) Report(e fsops.Event) {
	path := p.path.Render(e.Path)
	switch e.Kind {
	case fsops.EventRoot:
		if e.DryRun && !e.Existed {
			p.printf("📂 %s %s\n", p.muted.Render("Would create root directory:"), path)
			return
		}
		p.printf("📂 Root directory: %s\n", path)
	case fsops.EventDir:
		p.printf("📁 %s %s\n", dirVerb(e), path)
	case fsops.EventFile:
		p.printf("📄 %s %s\n", fileVerb(e), path)
	}
}

// Done prints the completion banner.
func (p *Printer) Done(title string, st fsops.Stats, dryRun bool) {
	counts := p.muted.Render(fmt.Sprintf("(%d folders, %d files)", st.Dirs, st.Files))
	if dryRun {
		p.printf("\n✅ %s %s\n", p.success.Render(fmt.Sprintf("%s structure checked, nothing written.", title)), counts)
		return
	}
	p.printf("\n✅ %s %s\n", p.success.Render(fmt.Sprintf("%s structure created successfully!", title)), counts)
}

func dirVerb(e fsops.Event) string {
	switch {
	case e.DryRun && e.Existed:
		return "Would reuse folder:"
	case e.DryRun:
		return "Would create folder:"
	case e.Existed:
		return "Reused folder:"
	default:
		return "Created folder:"
	}
}

func fileVerb(e fsops.Event) string {
	switch {
	case e.DryRun && e.Existed:
		return "Would overwrite file:"
	case e.DryRun:
		return "Would create file:"
	case e.Existed:
		return "Overwrote file:"
	default:
		return "Created file:"
	}
}

func (p *Printer) printf(format string, args ...any) {
	if p.quiet {
		return
	}
	fmt.Fprintf(p.w, format, args...)
}
