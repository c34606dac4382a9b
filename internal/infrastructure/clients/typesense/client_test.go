package typesense

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderSchema(t *testing.T) {
	schema := ProviderSchema()

	assert.Equal(t, ProvidersCollection, schema.Name)
	require.NotNil(t, schema.DefaultSortingField)
	assert.Equal(t, "review_count", *schema.DefaultSortingField)

	fields := map[string]string{}
	for _, f := range schema.Fields {
		fields[f.Name] = f.Type
	}
	assert.Equal(t, "string", fields["name"])
	assert.Equal(t, "string[]", fields["services"])
	assert.Equal(t, "float", fields["rating"])
	assert.Equal(t, "geopoint", fields["location"])
}
