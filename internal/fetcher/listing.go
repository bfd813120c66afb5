package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"path"
	"sort"
	"strings"

	"github.com/quantmind-br/westconf-go/internal/domain"
)

// contentEntry is one item returned by the content-listing endpoint
type contentEntry struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// FetchDirectoryListing retrieves the listing of a manifest directory,
// filtered to files carrying the manifest suffix and stably sorted by
// display name. Any transport error, non-200 status, or malformed payload
// yields an empty listing: a missing listing endpoint is indistinguishable
// from an empty directory here, and callers must treat both the same.
func (c *Client) FetchDirectoryListing(ctx context.Context, ref domain.Reference, dirPath string) []domain.DirEntry {
	listURL, err := c.listingURL(ref, dirPath)
	if err != nil {
		c.logger.Debug().Str("dir", dirPath).Err(err).Msg("Cannot build listing URL")
		return nil
	}

	body, status, err := c.get(ctx, listURL)
	if err != nil {
		c.logger.Debug().Str("dir", dirPath).Err(err).Msg("Directory listing unavailable")
		return nil
	}
	if status != 200 {
		c.logger.Debug().Str("dir", dirPath).Int("status", status).Msg("Directory listing unavailable")
		return nil
	}

	var items []contentEntry
	if err := json.Unmarshal(body, &items); err != nil {
		c.logger.Debug().Str("dir", dirPath).Err(err).Msg("Malformed directory listing")
		return nil
	}

	entries := make([]domain.DirEntry, 0, len(items))
	for _, item := range items {
		if !strings.HasSuffix(item.Name, c.suffix) {
			continue
		}
		entries = append(entries, domain.DirEntry{
			Name:     strings.TrimSuffix(item.Name, c.suffix),
			FileName: item.Name,
			Path:     dirPath + item.Name,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries
}

// listingURL translates a raw-content manifest reference into the
// content-listing endpoint for the same repository and directory. The
// reference path is expected to be /{owner}/{repo}/{revision}/.../{file},
// the shape served by raw content hosts.
func (c *Client) listingURL(ref domain.Reference, dirPath string) (string, error) {
	u, err := url.Parse(ref.URL)
	if err != nil {
		return "", domain.NewInvalidURLError(ref.URL, err)
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(segments) < 4 {
		return "", fmt.Errorf("manifest URL %q has no owner/repo/revision components", ref.URL)
	}

	owner, repo, revision := segments[0], segments[1], segments[2]

	// The listed directory is relative to the manifest file's own directory.
	parts := append([]string{}, segments[3:len(segments)-1]...)
	parts = append(parts, strings.TrimSuffix(dirPath, "/"))
	dir := path.Join(parts...)

	listURL := fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.apiBaseURL, owner, repo, dir)
	if revision != "" {
		listURL += "?ref=" + url.QueryEscape(revision)
	}
	return listURL, nil
}
