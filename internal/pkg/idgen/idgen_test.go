package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-alignment/internal/pkg/idgen"
)

func TestCharacterIDs(t *testing.T) {
	gen := idgen.NewCharacterIDs()

	id := gen.Generate()
	require.True(t, strings.HasPrefix(id, "char_"))

	parsed, err := uuid.Parse(strings.TrimPrefix(id, "char_"))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
	assert.NotEqual(t, id, gen.Generate())
}

func TestTimeOrderedSortsByCreation(t *testing.T) {
	gen := idgen.NewTimeOrdered("")

	ids := make([]string, 50)
	for i := range ids {
		ids[i] = gen.Generate()
	}
	for i := 1; i < len(ids); i++ {
		assert.Less(t, ids[i-1], ids[i])
	}
}
