package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-nncomponent/internal/loader"
	"github.com/goliatone/go-nncomponent/pkg/network"
	"github.com/goliatone/go-nncomponent/pkg/openapi"
	"github.com/goliatone/go-nncomponent/pkg/schema"
)

// sourceFlags are shared by every command that assembles a graph.
type sourceFlags struct {
	openAPISchema    string
	skipUnrecognized bool
	rootPath         string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.openAPISchema, "openapi-schema", "", "Treat the source as OpenAPI and use this components.schemas entry")
	cmd.Flags().BoolVar(&f.skipUnrecognized, "skip-unrecognized", false, "Drop fields with unrecognized schemas instead of failing")
	cmd.Flags().StringVar(&f.rootPath, "root-path", "", "Variable path assigned to the root field when annotating")
}

// assemble loads the source, decodes the root schema and builds the graph.
func (a *app) assemble(cmd *cobra.Command, raw string, flags *sourceFlags) (*network.Graph, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	root, err := a.loadSchema(ctx, raw, flags.openAPISchema)
	if err != nil {
		return nil, err
	}

	skip := a.cfg.Assemble.SkipUnrecognized
	if cmd.Flags().Changed("skip-unrecognized") {
		skip = flags.skipUnrecognized
	}
	rootPath := a.cfg.Assemble.RootPath
	if cmd.Flags().Changed("root-path") {
		rootPath = flags.rootPath
	}

	options := []network.Option{
		network.WithLogger(a.logger),
		network.WithSkipUnrecognized(skip),
	}
	if a.cfg.Assemble.Annotate {
		options = append(options, network.WithPathAnnotation(rootPath))
	}
	return network.NewAssembler(options...).Assemble(ctx, root)
}

func (a *app) loadSchema(ctx context.Context, raw, openAPISchema string) (*schema.Schema, error) {
	src, err := schema.ParseSource(raw)
	if err != nil {
		return nil, err
	}

	l := loader.New(schema.LoaderOptions{
		AllowHTTPFallback: a.cfg.Loader.AllowHTTP,
		RequestTimeout:    a.cfg.Loader.Timeout,
	})
	doc, err := l.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", raw, err)
	}
	a.logger.Debug("loaded schema document",
		zap.String("kind", string(src.Kind())),
		zap.String("location", src.Location()),
	)

	if openAPISchema != "" {
		return openapi.ComponentSchema(ctx, doc, openAPISchema)
	}
	root, err := schema.Decode(doc)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", raw, err)
	}
	return root, nil
}
