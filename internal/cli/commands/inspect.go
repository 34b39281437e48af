package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-nncomponent/pkg/component"
	"github.com/goliatone/go-nncomponent/pkg/network"
	"github.com/goliatone/go-nncomponent/pkg/report"
)

func newInspectCommand(a *app) *cobra.Command {
	var (
		flags       sourceFlags
		interactive bool
	)
	cmd := &cobra.Command{
		Use:   "inspect <source>",
		Short: "Print the component graph for a schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, err := a.assemble(cmd, args[0], &flags)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := report.Text(out, graph, report.Options{Color: a.cfg.Report.Color}); err != nil {
				return err
			}
			if !interactive || len(graph.Nodes) == 0 {
				return nil
			}
			labels := make([]string, 0, len(graph.Nodes))
			for _, node := range graph.Nodes {
				labels = append(labels, nodeLabel(node))
			}
			idx, err := selectOption("Inspect component", labels)
			if err != nil {
				return err
			}
			return describe(out, graph.Nodes[idx], a.cfg.Report.Color)
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Pick a component to describe")
	return cmd
}

func nodeLabel(node network.Node) string {
	path := node.Path
	if path == "" {
		path = "(root)"
	}
	return strings.Repeat("  ", node.Depth) + path + " [" + node.Kind.String() + "]"
}

func describe(w io.Writer, node network.Node, colored bool) error {
	title := color.New(color.FgCyan, color.Bold)
	if colored {
		title.EnableColor()
	} else {
		title.DisableColor()
	}

	s := node.Component.Schema()
	fmt.Fprintln(w)
	title.Fprintln(w, node.MachineName)
	fmt.Fprintf(w, "  kind:        %s\n", node.Kind)
	fmt.Fprintf(w, "  path:        %s\n", node.Path)
	fmt.Fprintf(w, "  type:        %s\n", s.TypeString())
	if s.Title != "" {
		fmt.Fprintf(w, "  title:       %s\n", s.Title)
	}
	if s.Description != "" {
		fmt.Fprintf(w, "  description: %s\n", s.Description)
	}
	if detail := report.Detail(node.Component); detail != "" {
		fmt.Fprintf(w, "  detail:      %s\n", detail)
	}
	switch v := node.Component.(type) {
	case *component.ObjectComponent:
		for _, prop := range v.PropertyNames() {
			child, err := v.Child(prop)
			if err != nil {
				fmt.Fprintf(w, "  child:       %s (unresolved)\n", prop)
				continue
			}
			if err := describeChild(w, child); err != nil {
				return err
			}
		}
	case component.Parent:
		children, err := v.Children()
		if err != nil {
			fmt.Fprintf(w, "  child:       (unresolved: %v)\n", err)
			return nil
		}
		for _, child := range children {
			if err := describeChild(w, child); err != nil {
				return err
			}
		}
	}
	return nil
}

func describeChild(w io.Writer, child component.Component) error {
	name, err := child.MachineVariableName()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  child:       %s (%s)\n", name, child.Kind())
	return nil
}
