// Package loader reads schema documents from disk, an fs.FS, or HTTP.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-nncomponent/pkg/schema"
)

// Loader implements schema.Loader by dispatching on the source kind.
type Loader struct {
	files   fs.FS
	client  *http.Client
	timeout time.Duration
}

var _ schema.Loader = (*Loader)(nil)

// New constructs a Loader. URL sources are only enabled when a client is
// supplied or AllowHTTPFallback is set.
func New(options schema.LoaderOptions) *Loader {
	timeout := options.RequestTimeout

	var client *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		client = &clone
	case options.AllowHTTPFallback:
		client = &http.Client{Timeout: timeout}
	}

	return &Loader{
		files:   options.FileSystem,
		client:  client,
		timeout: timeout,
	}
}

// Load reads the source and wraps the payload in a schema.Document.
func (l *Loader) Load(ctx context.Context, src schema.Source) (schema.Document, error) {
	if src == nil {
		return schema.Document{}, errors.New("loader: source is nil")
	}

	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case schema.SourceKindFile:
		data, err = readFile(ctx, src.Location())
	case schema.SourceKindFS:
		data, err = readFS(ctx, l.files, src.Location())
	case schema.SourceKindURL:
		if l.client == nil {
			return schema.Document{}, errors.New("loader: http support disabled")
		}
		data, err = fetch(ctx, l.client, src.Location(), l.timeout)
	default:
		err = fmt.Errorf("loader: unsupported source kind %q", src.Kind())
	}
	if err != nil {
		return schema.Document{}, err
	}
	return schema.NewDocument(src, data)
}
