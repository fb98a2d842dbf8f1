package output

import (
	"bytes"
	"context"
	"fmt"
	"io"
)

// CLIOutput writes to a stream, normally stdout
type CLIOutput struct {
	w io.Writer
}

// NewCLIOutput creates a new CLIOutput
func NewCLIOutput(w io.Writer) *CLIOutput {
	return &CLIOutput{w: w}
}

// Write copies the whole buffer to the stream
func (o *CLIOutput) Write(ctx context.Context, buffer *bytes.Buffer) error {
	if buffer == nil {
		return fmt.Errorf("nothing to write")
	}

	if _, err := o.w.Write(buffer.Bytes()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
