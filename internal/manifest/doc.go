// Package manifest implements the west manifest import-structure resolution
// engine: fetching a remotely-hosted root manifest, classifying each entry
// of its self-import list as a file or a directory, grouping resolved
// entries into presentation categories, and generating a new manifest
// document from a user's selection.
//
// # Resolution
//
// An Explorer drives the whole fetch-and-classify sequence:
//
//	explorer := manifest.NewExplorer(manifest.ExplorerOptions{
//	    Reference: ref,
//	    Fetcher:   client,
//	})
//	passthrough, structure, err := explorer.LoadAndAnalyze(ctx)
//
// Every entry declared in the source manifest appears in the resulting
// structure in declaration order. Ambiguous entries (no suffix, no trailing
// slash) are resolved by probing a directory listing; an empty remote
// directory is indistinguishable from a non-directory and is classified as
// a file.
//
// # Generation
//
// Generate folds a flattened import list together with the source
// manifest's passthrough sections into a fresh document:
//
//	doc, err := manifest.Generate(passthrough, imports, opts)
//	out, err := manifest.EncodeWithHeader(doc, time.Now())
//
// Directory-listing failures are absorbed as empty listings and never
// surface as errors; fetch and generation failures abort only the
// requesting operation.
package manifest
