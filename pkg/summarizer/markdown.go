package summarizer

import (
	"fmt"
	"strings"
	"time"
)

// MarkdownFormatter formats a Summary as a Markdown document.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter.
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format converts a Summary to Markdown.
func (f *MarkdownFormatter) Format(summary *Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Recording Summary: %s\n\n", summary.Artifact.RecordName)
	fmt.Fprintf(&b, "Generated: %s\n\n", summary.GeneratedAt.Format(time.RFC3339))

	b.WriteString("## Device\n\n")
	fmt.Fprintf(&b, "| Item | Value |\n")
	fmt.Fprintf(&b, "|------|-------|\n")
	fmt.Fprintf(&b, "| Index | %d |\n", summary.Device.Index)
	fmt.Fprintf(&b, "| Requested | %dx%d@%dfps |\n",
		summary.Device.RequestedWidth, summary.Device.RequestedHeight, summary.Device.RequestedFPS)
	fmt.Fprintf(&b, "| Negotiated | %dx%d@%dfps |\n\n",
		summary.Device.ActualWidth, summary.Device.ActualHeight, summary.Device.ActualFPS)

	b.WriteString("## Artifact\n\n")
	fmt.Fprintf(&b, "| Item | Value |\n")
	fmt.Fprintf(&b, "|------|-------|\n")
	fmt.Fprintf(&b, "| Path | %s |\n", summary.Artifact.Path)
	fmt.Fprintf(&b, "| Frames | %d |\n", summary.Artifact.FrameCount)
	fmt.Fprintf(&b, "| Duration | %s |\n", summary.Artifact.Duration.Round(time.Millisecond))
	fmt.Fprintf(&b, "| FPS | %.1f |\n\n", summary.Artifact.FPS)

	if summary.Probe.Codec != "" {
		b.WriteString("## Container\n\n")
		fmt.Fprintf(&b, "| Item | Value |\n")
		fmt.Fprintf(&b, "|------|-------|\n")
		fmt.Fprintf(&b, "| Codec | %s |\n", summary.Probe.Codec)
		fmt.Fprintf(&b, "| Dimensions | %dx%d |\n", summary.Probe.Width, summary.Probe.Height)
		fmt.Fprintf(&b, "| Samples | %d |\n", summary.Probe.SampleCount)
		fmt.Fprintf(&b, "| Duration | %.2fs |\n\n", summary.Probe.DurationSec)
	}

	if summary.Extraction.FrameCount > 0 {
		b.WriteString("## Extraction\n\n")
		fmt.Fprintf(&b, "| Item | Value |\n")
		fmt.Fprintf(&b, "|------|-------|\n")
		fmt.Fprintf(&b, "| Stills | %d |\n", summary.Extraction.FrameCount)
		fmt.Fprintf(&b, "| Directory | %s |\n", summary.Extraction.StillDir)
		if summary.Extraction.SheetPath != "" {
			fmt.Fprintf(&b, "| Contact sheet | %s |\n", summary.Extraction.SheetPath)
		}
		b.WriteString("\n")
	}

	return b.String()
}

var _ Formatter = (*MarkdownFormatter)(nil)
