package manifest

import (
	"context"
	"strings"

	"github.com/quantmind-br/westconf-go/internal/domain"
	"github.com/quantmind-br/westconf-go/internal/utils"
)

// Explorer fetches a root manifest and resolves its import structure.
// It holds no state shared across calls beyond the last fetched document;
// repeated loads overwrite prior results.
type Explorer struct {
	ref       domain.Reference
	fetcher   Fetcher
	suffix    string
	logger    *utils.Logger
	onListing func(dirPath string)

	doc *Document
}

// ExplorerOptions contains options for creating an Explorer
type ExplorerOptions struct {
	Reference domain.Reference
	Fetcher   Fetcher
	Suffix    string
	Logger    *utils.Logger

	// OnListing is invoked before each directory-listing fetch, letting a
	// caller drive progress indication. May be nil.
	OnListing func(dirPath string)
}

// NewExplorer creates a new explorer
func NewExplorer(opts ExplorerOptions) *Explorer {
	if opts.Suffix == "" {
		opts.Suffix = ".yml"
	}
	if opts.Logger == nil {
		opts.Logger = utils.NewDefaultLogger()
	}
	return &Explorer{
		ref:       opts.Reference,
		fetcher:   opts.Fetcher,
		suffix:    opts.Suffix,
		logger:    opts.Logger.WithComponent("explorer"),
		onListing: opts.OnListing,
	}
}

// LoadAndAnalyze fetches the root manifest and classifies every entry of
// its self-import list in declared order. The whole operation is
// synchronous; callers wanting a responsive UI run it on their own
// goroutine and marshal the result back themselves.
func (e *Explorer) LoadAndAnalyze(ctx context.Context) (*Passthrough, *domain.ImportStructure, error) {
	text, err := e.fetcher.FetchText(ctx, e.ref.URL)
	if err != nil {
		return nil, nil, err
	}

	doc, err := Parse([]byte(text))
	if err != nil {
		return nil, nil, err
	}
	e.doc = doc

	structure := e.analyze(ctx, doc)

	e.logger.Info().
		Int("imports", structure.Len()).
		Int("directories", structure.DirectoryCount()).
		Msg("Manifest analyzed")

	return doc.Passthrough(), structure, nil
}

// Document returns the last fetched root document, nil before the first load
func (e *Explorer) Document() *Document {
	return e.doc
}

// analyze classifies each declared import, preserving declaration order
func (e *Explorer) analyze(ctx context.Context, doc *Document) *domain.ImportStructure {
	classifier := NewClassifier(e.fetcher, e.ref, e.suffix)

	structure := domain.NewImportStructure()
	for _, rawPath := range doc.Imports() {
		// Only non-file entries trigger a listing fetch.
		if e.onListing != nil && !strings.HasSuffix(rawPath, e.suffix) {
			e.onListing(rawPath)
		}

		entry := classifier.Classify(ctx, rawPath)
		e.logger.Debug().
			Str("path", entry.Path).
			Str("kind", string(entry.Kind)).
			Int("children", len(entry.Contents)).
			Msg("Import classified")
		structure.Add(entry)
	}
	return structure
}
