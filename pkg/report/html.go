package report

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-nncomponent/pkg/network"
)

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{ title }}</title>
</head>
<body>
<h1>{{ title }}</h1>
<table class="components">
<thead><tr><th>Kind</th><th>Path</th><th>Machine name</th><th>Detail</th><th>Description</th></tr></thead>
<tbody>
{% for row in rows %}<tr class="kind-{{ row.Kind }}" data-depth="{{ row.Depth }}">
<td>{{ row.Kind }}</td><td>{{ row.Path }}</td><td><code>{{ row.MachineName }}</code></td><td>{{ row.Detail }}</td><td>{{ row.Description|safe }}</td>
</tr>
{% endfor %}</tbody>
</table>
{% if skipped %}<h2>Skipped fields</h2>
<ul class="skipped">
{% for item in skipped %}<li><code>{{ item.Path }}</code>: {{ item.Reason }}</li>
{% endfor %}</ul>
{% endif %}</body>
</html>
`

type htmlRow struct {
	Kind        string
	Path        string
	MachineName string
	Depth       int
	Detail      string
	Description string
}

type htmlSkipped struct {
	Path   string
	Reason string
}

var (
	pageOnce     sync.Once
	pageTemplate *pongo2.Template
	pageErr      error
	policyOnce   sync.Once
	policy       *bluemonday.Policy
)

func page() (*pongo2.Template, error) {
	pageOnce.Do(func() {
		pageTemplate, pageErr = pongo2.FromString(htmlTemplate)
	})
	return pageTemplate, pageErr
}

func descriptionPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.UGCPolicy()
	})
	return policy
}

// HTML writes g as a standalone HTML page. Schema descriptions may carry
// markup; they are sanitized before rendering. Everything else is escaped.
func HTML(w io.Writer, g *network.Graph, opts Options) error {
	if g == nil {
		return fmt.Errorf("report: graph is nil")
	}
	tpl, err := page()
	if err != nil {
		return fmt.Errorf("report: parse html template: %w", err)
	}

	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = "Component graph"
	}

	rows := make([]htmlRow, 0, len(g.Nodes))
	for _, node := range g.Nodes {
		path := node.Path
		if path == "" {
			path = "(root)"
		}
		description := ""
		if s := node.Component.Schema(); s != nil {
			description = descriptionPolicy().Sanitize(s.Description)
		}
		rows = append(rows, htmlRow{
			Kind:        node.Kind.String(),
			Path:        path,
			MachineName: node.MachineName,
			Depth:       node.Depth,
			Detail:      Detail(node.Component),
			Description: description,
		})
	}

	skipped := make([]htmlSkipped, 0, len(g.Skipped))
	for _, item := range g.Skipped {
		skipped = append(skipped, htmlSkipped{Path: item.Path, Reason: item.Err.Error()})
	}

	if err := tpl.ExecuteWriter(pongo2.Context{
		"title":   title,
		"rows":    rows,
		"skipped": skipped,
	}, w); err != nil {
		return fmt.Errorf("report: render html: %w", err)
	}
	return nil
}
