package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/westconf-go/internal/domain"
)

func TestParse(t *testing.T) {
	t.Run("full document", func(t *testing.T) {
		doc, err := Parse([]byte(rootManifest))
		require.NoError(t, err)

		m := doc.Manifest
		require.Len(t, m.Remotes, 1)
		assert.Equal(t, "nxp-mcuxpresso", m.Remotes[0].Name)
		assert.Equal(t, "https://github.com/nxp-mcuxpresso", m.Remotes[0].URLBase)
		require.NotNil(t, m.Defaults)
		assert.Equal(t, "main", m.Defaults.Revision)
		require.NotNil(t, m.Self)
		assert.Equal(t, []string{"base.yml", "devices/", "middleware/foo.yml"}, m.Self.Import)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Parse([]byte("\tmanifest: {"))
		assert.ErrorIs(t, err, domain.ErrInvalidDocument)
	})

	t.Run("empty document", func(t *testing.T) {
		doc, err := Parse([]byte(""))
		require.NoError(t, err)
		assert.Nil(t, doc.Manifest.Self)
	})
}

func TestDocument_Imports(t *testing.T) {
	t.Run("no self block", func(t *testing.T) {
		doc := &Document{}
		assert.Nil(t, doc.Imports())
	})

	t.Run("declared order", func(t *testing.T) {
		doc := &Document{Manifest: Manifest{Self: &Self{
			Import: []string{"b.yml", "a.yml"},
		}}}
		assert.Equal(t, []string{"b.yml", "a.yml"}, doc.Imports())
	})
}

func TestDocument_Passthrough(t *testing.T) {
	doc, err := Parse([]byte(rootManifest))
	require.NoError(t, err)

	p := doc.Passthrough()
	assert.Equal(t, doc.Manifest.Remotes, p.Remotes)
	assert.Equal(t, doc.Manifest.Defaults, p.Defaults)
	assert.Equal(t, doc.Manifest.GroupFilter, p.GroupFilter)
	assert.Same(t, doc.Manifest.Self, p.Self)
}
