package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/goliatone/go-nncomponent/pkg/component"
	"github.com/goliatone/go-nncomponent/pkg/network"
)

var kindColors = map[component.Kind]color.Attribute{
	component.KindObject:         color.FgCyan,
	component.KindNumber:         color.FgGreen,
	component.KindClassification: color.FgMagenta,
	component.KindSequence:       color.FgYellow,
}

// Text writes a tab-aligned table of g's nodes followed by any skipped
// fields.
func Text(w io.Writer, g *network.Graph, opts Options) error {
	if g == nil {
		return fmt.Errorf("report: graph is nil")
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	header := color.New(color.Bold)
	paint(header, opts.Color)
	fmt.Fprintln(tw, header.Sprint("KIND\tPATH\tMACHINE NAME\tDETAIL"))

	for _, node := range g.Nodes {
		kind := color.New(kindColor(node.Kind))
		paint(kind, opts.Color)
		path := node.Path
		if path == "" {
			path = "(root)"
		}
		fmt.Fprintf(tw, "%s\t%s%s\t%s\t%s\n",
			kind.Sprint(node.Kind),
			strings.Repeat("  ", node.Depth),
			path,
			node.MachineName,
			Detail(node.Component),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(g.Skipped) == 0 {
		return nil
	}
	warn := color.New(color.FgRed)
	paint(warn, opts.Color)
	fmt.Fprintln(w)
	fmt.Fprintln(w, warn.Sprintf("skipped %d field(s):", len(g.Skipped)))
	for _, skipped := range g.Skipped {
		fmt.Fprintf(w, "  %s: %v\n", skipped.Path, skipped.Err)
	}
	return nil
}

func kindColor(kind component.Kind) color.Attribute {
	if attr, ok := kindColors[kind]; ok {
		return attr
	}
	return color.FgWhite
}

func paint(c *color.Color, enabled bool) {
	if enabled {
		c.EnableColor()
		return
	}
	c.DisableColor()
}
