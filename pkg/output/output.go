// Package output writes exported JWKS documents to their destination.
package output

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
)

// Output writes an exported document somewhere
type Output interface {
	Write(ctx context.Context, buffer *bytes.Buffer) error
}

// Config selects an Output. An empty Path means the CLI output.
type Config struct {
	Path      string
	Overwrite bool
	Stdout    io.Writer
}

// NewOutput creates the Output described by c.
func NewOutput(c *Config) (Output, error) {
	if c == nil {
		return nil, fmt.Errorf("output config is nil")
	}

	if c.Path == "" || c.Path == "-" {
		w := c.Stdout
		if w == nil {
			w = os.Stdout
		}
		return NewCLIOutput(w), nil
	}

	return NewLocalOutput(c.Path, c.Overwrite), nil
}
