package export

import (
	"bytes"
	"context"

	"github.com/goliatone/core.io-data-manager/core/codec"
	"github.com/goliatone/core.io-data-manager/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// contentTypes maps format tags to upload content types.
var contentTypes = map[string]string{
	"json": "application/json",
	"csv":  "text/csv",
	"tsv":  "text/tab-separated-values",
}

// ToStorage exports the query result and uploads it to object storage,
// returning the object name used. Empty objectName derives the default
// export file name. Upload failures surface as *WriteError.
func (p *Pipeline) ToStorage(ctx context.Context, client storage.Client, bucket string, identity string, q Query, format, objectName string, opts codec.Options) (string, error) {
	data, err := p.Models(ctx, identity, q, format, opts)
	if err != nil {
		return "", err
	}

	if objectName == "" {
		objectName = CreateFileNameFor(identity, format)
	}

	contentType := contentTypes[format]
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = client.PutObject(ctx, bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", &WriteError{Path: bucket + "/" + objectName, Err: err}
	}

	p.logger.Info("export uploaded",
		zap.String("identity", identity),
		zap.String("bucket", bucket),
		zap.String("object", objectName),
		zap.Int("bytes", len(data)),
	)
	return objectName, nil
}
