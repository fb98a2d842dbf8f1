package output

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"k8s.io/klog/v2"

	"github.com/vsphere-tmm/irsa-jwks/pkg/logs"
)

// LocalOutput writes to a local file
type LocalOutput struct {
	path      string
	overwrite bool
}

// NewLocalOutput creates a new LocalOutput
func NewLocalOutput(path string, overwrite bool) *LocalOutput {
	return &LocalOutput{
		path:      path,
		overwrite: overwrite,
	}
}

// Write writes the buffer to the configured path, creating parent directories.
// An existing directory is never replaced; an existing file only when
// overwriting is enabled.
func (o *LocalOutput) Write(ctx context.Context, buffer *bytes.Buffer) error {
	log := klog.FromContext(ctx).WithName("output")

	if buffer == nil {
		return fmt.Errorf("nothing to write")
	}

	info, err := os.Stat(o.path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return err
	case info.IsDir():
		return fmt.Errorf("%q is an existing directory", o.path)
	case !o.overwrite:
		return fmt.Errorf("%q is an existing file", o.path)
	default:
		log.Info("Overwriting existing file", "path", o.path)
	}

	if err := writeBufferToPath(o.path, buffer); err != nil {
		return err
	}

	log.V(logs.Debug).Info("Wrote JWKS", "path", o.path, "bytes", buffer.Len())
	return nil
}

func writeBufferToPath(fullpath string, buffer *bytes.Buffer) error {
	if err := os.MkdirAll(filepath.Dir(fullpath), 0755); err != nil {
		return err
	}

	// The target file is replaced atomically.
	tmp, err := os.CreateTemp(filepath.Dir(fullpath), "."+filepath.Base(fullpath)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buffer.Bytes()); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), fullpath)
}
