package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cartodocs/tagdoc/internal/catalog"
	"github.com/cartodocs/tagdoc/internal/registry"
	"github.com/cartodocs/tagdoc/pkg/tagdoc"
)

func TestBuiltinTags_CatalogBuilds(t *testing.T) {
	c, err := catalog.New(registry.Default())
	require.NoError(t, err)
	require.Equal(t, 13, c.Len())

	var prev string
	records := map[string]tagdoc.Record{}
	require.NoError(t, c.Walk(func(rec tagdoc.Record) error {
		assert.LessOrEqual(t, prev, rec.Key)
		prev = rec.Key
		records[rec.Key] = rec
		return nil
	}))

	highway, ok := records["highway"]
	require.True(t, ok, "highway tag missing")
	assert.Equal(t, tagdoc.ValidationEnum, highway.ValidationKind)
	assert.Contains(t, highway.ValidValues, "motorway")
	require.NotNil(t, highway.WikiLink)
	assert.Equal(t, "https://wiki.openstreetmap.org/wiki/Key:highway", highway.WikiLink.String())
	require.NotNil(t, highway.InfoLink)
	assert.Equal(t, "https://taginfo.openstreetmap.org/keys/highway", highway.InfoLink.String())

	name, ok := records["name"]
	require.True(t, ok, "name tag missing")
	assert.True(t, name.Localized)
	assert.False(t, name.Synthetic)

	derived, ok := records["last_edit_time"]
	require.True(t, ok, "last_edit_time tag missing")
	assert.True(t, derived.Synthetic)
	assert.Nil(t, derived.WikiLink)
}

func TestBuiltinTags_ValuesSorted(t *testing.T) {
	c, err := catalog.New(registry.Default())
	require.NoError(t, err)

	require.NoError(t, c.Walk(func(rec tagdoc.Record) error {
		for i := 1; i < len(rec.ValidValues); i++ {
			assert.Less(t, rec.ValidValues[i-1], rec.ValidValues[i],
				"values of %s not sorted unique", rec.Key)
		}
		return nil
	}))
}

func TestBuiltinTags_SubNamespace(t *testing.T) {
	c, err := catalog.NewForNamespace(registry.Default(), "osm/names")
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	var keys []string
	require.NoError(t, c.Walk(func(rec tagdoc.Record) error {
		keys = append(keys, rec.Key)
		return nil
	}))
	assert.Equal(t, []string{"alt_name", "name"}, keys)
}
