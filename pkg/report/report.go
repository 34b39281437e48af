// Package report renders assembled component graphs for people: a
// tab-aligned text table for terminals and a standalone HTML page.
package report

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goliatone/go-nncomponent/pkg/component"
	"github.com/goliatone/go-nncomponent/pkg/network"
)

// Format selects a report renderer.
type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
)

// ErrUnknownFormat is returned by Render for unsupported formats.
var ErrUnknownFormat = errors.New("report: unknown format")

// Options configures rendering.
type Options struct {
	// Color enables ANSI colors in text output.
	Color bool
	// Title is used as the HTML page heading.
	Title string
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(raw string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(raw))) {
	case FormatText, "":
		return FormatText, nil
	case FormatHTML:
		return FormatHTML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, raw)
	}
}

// Render writes g to w in the requested format.
func Render(w io.Writer, g *network.Graph, format Format, opts Options) error {
	switch format {
	case FormatText:
		return Text(w, g, opts)
	case FormatHTML:
		return HTML(w, g, opts)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Detail summarises variant specific state for a node.
func Detail(c component.Component) string {
	switch v := c.(type) {
	case *component.ClassificationComponent:
		return strconv.Itoa(v.NumClasses()) + " classes: " + strings.Join(v.Classes(), ", ")
	case *component.SequenceComponent:
		item, err := v.Item()
		if err != nil {
			return "item: unresolved"
		}
		return "item: " + item.Kind().String()
	case *component.ObjectComponent:
		return strconv.Itoa(len(v.PropertyNames())) + " fields"
	default:
		return ""
	}
}
