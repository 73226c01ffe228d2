package export

import (
	"context"

	"github.com/goliatone/core.io-data-manager/core/codec"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// FileOptions controls where and how an export is persisted.
type FileOptions struct {
	// Filename is the target path. Empty derives the default
	// <epoch-millis>-<identity>.<format> name.
	Filename string

	// FS is the target filesystem. Nil writes to the OS filesystem.
	FS afero.Fs

	// Codec passes through to the format exporter unmodified.
	Codec codec.Options
}

// ToFile exports the query result and writes it to a file, returning the
// file name used. Write failures surface as *WriteError.
func (p *Pipeline) ToFile(ctx context.Context, identity string, q Query, format string, opts FileOptions) (string, error) {
	data, err := p.Models(ctx, identity, q, format, opts.Codec)
	if err != nil {
		return "", err
	}

	filename := opts.Filename
	if filename == "" {
		filename = CreateFileNameFor(identity, format)
	}
	fs := opts.FS
	if fs == nil {
		fs = afero.NewOsFs()
	}

	if err := afero.WriteFile(fs, filename, data, 0o644); err != nil {
		return "", &WriteError{Path: filename, Err: err}
	}

	p.logger.Info("export written",
		zap.String("identity", identity),
		zap.String("file", filename),
		zap.Int("bytes", len(data)),
	)
	return filename, nil
}
