package manifest

import (
	"bytes"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/quantmind-br/westconf-go/internal/domain"
)

// Fixed project identity for the generated manifest. The synthesized
// project always points at the source manifest repository; its revision is
// not user-configurable.
const (
	ProjectName     = "mcuxsdk-manifests"
	FallbackRemote  = "nxp-mcuxpresso"
	ProjectRevision = "main"
)

// GenerateOptions controls which passthrough sections are copied into the
// generated document.
type GenerateOptions struct {
	UseRemotes      bool
	UseDefaults     bool
	UseWestCommands bool
	GroupFilters    []string // replaces the source group-filter entirely
}

// DefaultGenerateOptions returns options with all passthrough toggles set
func DefaultGenerateOptions() GenerateOptions {
	return GenerateOptions{
		UseRemotes:      true,
		UseDefaults:     true,
		UseWestCommands: true,
	}
}

// Generate combines the source manifest's passthrough sections with a
// flattened import list into a new manifest document. Generation is
// all-or-nothing: it fails with ErrManifestNotLoaded when no root document
// has been fetched, and never produces a partial document.
func Generate(passthrough *Passthrough, imports []string, opts GenerateOptions) (*Document, error) {
	if passthrough == nil {
		return nil, domain.ErrManifestNotLoaded
	}

	doc := &Document{}
	m := &doc.Manifest

	if opts.UseRemotes && len(passthrough.Remotes) > 0 {
		m.Remotes = passthrough.Remotes
	}
	if opts.UseDefaults && passthrough.Defaults != nil {
		m.Defaults = passthrough.Defaults
	}
	if len(opts.GroupFilters) > 0 {
		m.GroupFilter = opts.GroupFilters
	}

	self := &Self{}
	if passthrough.Self != nil {
		self.Path = passthrough.Self.Path
		if opts.UseWestCommands {
			self.WestCommands = passthrough.Self.WestCommands
		}
	}
	m.Self = self

	remote := FallbackRemote
	if m.Defaults != nil && m.Defaults.Remote != "" {
		remote = m.Defaults.Remote
	}

	m.Projects = []Project{{
		Name:     ProjectName,
		Remote:   remote,
		Revision: ProjectRevision,
		Import:   imports,
	}}

	return doc, nil
}

// Encode serializes a document to YAML
func Encode(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// EncodeWithHeader serializes a document to YAML prefixed with a
// generation header comment.
func EncodeWithHeader(doc *Document, generatedAt time.Time) ([]byte, error) {
	body, err := Encode(doc)
	if err != nil {
		return nil, err
	}

	header := fmt.Sprintf("# Auto-generated West manifest\n# Generated at: %s\n# Configuration: Custom selection\n\n",
		generatedAt.Format(time.RFC3339))

	return append([]byte(header), body...), nil
}
