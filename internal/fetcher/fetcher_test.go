package fetcher

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/westconf-go/internal/domain"
)

func newTestClient(t *testing.T, apiBase string) *Client {
	t.Helper()
	client, err := NewClient(ClientOptions{
		APIBaseURL: apiBase,
	})
	require.NoError(t, err)
	return client
}

func TestFetchText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("manifest:\n  self:\n    import: []\n"))
	}))
	defer server.Close()

	client := newTestClient(t, "")

	text, err := client.FetchText(context.Background(), server.URL+"/west.yml")
	require.NoError(t, err)
	assert.Contains(t, text, "manifest:")
}

func TestFetchText_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := newTestClient(t, "")

	_, err := client.FetchText(context.Background(), server.URL+"/west.yml")
	require.Error(t, err)

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, 404, fetchErr.StatusCode)
}

func TestFetchText_TransportError(t *testing.T) {
	client := newTestClient(t, "")

	_, err := client.FetchText(context.Background(), "http://127.0.0.1:1/west.yml")
	require.Error(t, err)

	var fetchErr *domain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, 0, fetchErr.StatusCode)
}

func TestFetchDirectoryListing(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"name": "mcx.yml", "type": "file"},
			{"name": "lpc.yml", "type": "file"},
			{"name": "README.md", "type": "file"}
		]`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	ref, err := domain.ParseReference("https://raw.githubusercontent.com/nxp-mcuxpresso/mcuxsdk-manifests/main/west.yml")
	require.NoError(t, err)

	entries := client.FetchDirectoryListing(context.Background(), ref, "devices/")

	assert.Equal(t, "/repos/nxp-mcuxpresso/mcuxsdk-manifests/contents/devices", gotPath)
	assert.Equal(t, "ref=main", gotQuery)

	// Non-suffix files are filtered out and the rest stably sorted by name.
	require.Len(t, entries, 2)
	assert.Equal(t, domain.DirEntry{Name: "lpc", FileName: "lpc.yml", Path: "devices/lpc.yml"}, entries[0])
	assert.Equal(t, domain.DirEntry{Name: "mcx", FileName: "mcx.yml", Path: "devices/mcx.yml"}, entries[1])
}

func TestFetchDirectoryListing_SoftFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"not found", func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}},
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"malformed payload", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}},
	}

	ref, err := domain.ParseReference("https://raw.githubusercontent.com/nxp-mcuxpresso/mcuxsdk-manifests/main/west.yml")
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := newTestClient(t, server.URL)
			entries := client.FetchDirectoryListing(context.Background(), ref, "devices/")
			assert.Empty(t, entries)
		})
	}
}

func TestFetchDirectoryListing_UnreachableEndpoint(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:1")
	ref, err := domain.ParseReference("https://raw.githubusercontent.com/nxp-mcuxpresso/mcuxsdk-manifests/main/west.yml")
	require.NoError(t, err)

	entries := client.FetchDirectoryListing(context.Background(), ref, "devices/")
	assert.Empty(t, entries)
}

func TestListingURL(t *testing.T) {
	client := newTestClient(t, "https://api.github.com")

	tests := []struct {
		name    string
		url     string
		dirPath string
		want    string
	}{
		{
			name:    "manifest at repository root",
			url:     "https://raw.githubusercontent.com/nxp-mcuxpresso/mcuxsdk-manifests/main/west.yml",
			dirPath: "devices/",
			want:    "https://api.github.com/repos/nxp-mcuxpresso/mcuxsdk-manifests/contents/devices?ref=main",
		},
		{
			name:    "manifest in subdirectory",
			url:     "https://raw.githubusercontent.com/org/repo/main/manifests/west.yml",
			dirPath: "middleware/",
			want:    "https://api.github.com/repos/org/repo/contents/manifests/middleware?ref=main",
		},
		{
			name:    "non-default revision",
			url:     "https://raw.githubusercontent.com/org/repo/v2.0.0/west.yml",
			dirPath: "rtos/",
			want:    "https://api.github.com/repos/org/repo/contents/rtos?ref=v2.0.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := domain.ParseReference(tt.url)
			require.NoError(t, err)

			got, err := client.listingURL(ref, tt.dirPath)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestListingURL_MissingComponents(t *testing.T) {
	client := newTestClient(t, "https://api.github.com")
	ref, err := domain.ParseReference("https://example.com/owner/west.yml")
	require.NoError(t, err)

	_, err = client.listingURL(ref, "devices/")
	assert.Error(t, err)
}
