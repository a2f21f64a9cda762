package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Len(t, c.AgeRanges, 6)
	assert.Len(t, c.Locations, 12)
	assert.Len(t, c.Interests, 18)
	assert.True(t, c.HasAgeRange("65+"))
	assert.True(t, c.HasLocation("São Paulo, Brazil"))
	assert.True(t, c.HasInterest("Food & Dining"))
	assert.False(t, c.HasInterest("Knitting"))
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := []byte("age_ranges: [\"18-24\"]\nlocations: [\"Oslo, Norway\"]\ninterests: [\"Skiing\"]\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Oslo, Norway"}, c.Locations)
	assert.True(t, c.HasInterest("Skiing"))
}

func TestParseRejectsBrokenCatalogs(t *testing.T) {
	cases := map[string]string{
		"empty list": "age_ranges: []\nlocations: [a]\ninterests: [b]\n",
		"duplicate":  "age_ranges: [x, x]\nlocations: [a]\ninterests: [b]\n",
		"bad yaml":   "age_ranges: [\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}
