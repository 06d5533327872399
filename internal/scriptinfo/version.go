package scriptinfo

import (
	"context"
	"fmt"

	"github.com/minio/highwayhash"
	"github.com/vk/scriptpipe/internal/ctxlog"
)

var versionHashKey = []byte("scriptpipe-version-hash-key-0001")

// Version returns a best-effort version string for the script: the
// source's modification datestamp followed by a content hash. When the
// content cannot be read or hashed the datestamp alone is returned, and
// a script that does not exist on disk has no version at all.
func (i *Info) Version(ctx context.Context) string {
	logger := ctxlog.FromContext(ctx)

	object, err := i.fs.Object(ctx, i.path)
	if err != nil {
		return ""
	}
	datestamp := object.ModTime().Format("2006-01-02-15:04:05")

	data, err := i.fs.DownloadWithURL(ctx, i.path)
	if err != nil {
		logger.Error("Error reading script for version hash.", "path", i.path, "error", err)
		return datestamp
	}
	hash, err := highwayhash.New64(versionHashKey)
	if err != nil {
		logger.Error("Error initializing version hash.", "error", err)
		return datestamp
	}
	if _, err := hash.Write(data); err != nil {
		logger.Error("Error hashing script content.", "path", i.path, "error", err)
		return datestamp
	}
	return fmt.Sprintf("%s-%016x", datestamp, hash.Sum64())
}
