package manifest

import (
	"context"
	"path"
	"strings"

	"github.com/quantmind-br/westconf-go/internal/domain"
)

// Fetcher retrieves remote manifest documents and directory listings
type Fetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
	FetchDirectoryListing(ctx context.Context, ref domain.Reference, dirPath string) []domain.DirEntry
}

// Classifier resolves raw import entries into files or directories
type Classifier struct {
	fetcher Fetcher
	ref     domain.Reference
	suffix  string
}

// NewClassifier creates a classifier for one manifest reference
func NewClassifier(fetcher Fetcher, ref domain.Reference, suffix string) *Classifier {
	if suffix == "" {
		suffix = ".yml"
	}
	return &Classifier{
		fetcher: fetcher,
		ref:     ref,
		suffix:  suffix,
	}
}

// Classify resolves a single raw import path. Entries carrying the manifest
// suffix are files; entries with a trailing slash are directories. Anything
// else is probed with a directory listing: a non-empty listing makes it a
// directory with the slash appended, an empty one makes it a file. A
// genuinely empty remote directory is indistinguishable from a non-directory
// and is classified as a file.
func (c *Classifier) Classify(ctx context.Context, rawPath string) *domain.ImportEntry {
	entry := &domain.ImportEntry{
		RawPath: rawPath,
		Path:    rawPath,
	}

	switch {
	case strings.HasSuffix(rawPath, c.suffix):
		entry.Kind = domain.KindFile
		entry.FileName = path.Base(rawPath)

	case strings.HasSuffix(rawPath, "/"):
		entry.Kind = domain.KindDirectory
		entry.Contents = c.fetcher.FetchDirectoryListing(ctx, c.ref, rawPath)

	default:
		contents := c.fetcher.FetchDirectoryListing(ctx, c.ref, rawPath+"/")
		if len(contents) > 0 {
			entry.Kind = domain.KindDirectory
			entry.Path = rawPath + "/"
			entry.Contents = contents
		} else {
			entry.Kind = domain.KindFile
			entry.FileName = path.Base(rawPath)
		}
	}

	return entry
}
