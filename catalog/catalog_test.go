package catalog_test

import (
	"testing"

	"github.com/fixora/fixora-backend/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	services := catalog.All()
	require.NotEmpty(t, services)

	seen := map[string]bool{}
	for _, s := range services {
		assert.NotEmpty(t, s.ID)
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.PriceRange)
		assert.False(t, seen[s.ID], "duplicate service id %q", s.ID)
		seen[s.ID] = true
	}
}

func TestFind(t *testing.T) {
	service, ok := catalog.Find("plumbing")
	require.True(t, ok)
	assert.Equal(t, "Plumbing", service.Name)

	_, ok = catalog.Find("time-travel")
	assert.False(t, ok)
}
