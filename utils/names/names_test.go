package names

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateShape(t *testing.T) {
	for i := 0; i < 100; i++ {
		name := Generate()
		parts := strings.Split(name, "-")
		require.Len(t, parts, 3, "name %q", name)
		require.True(t, slices.Contains(adjectives, parts[0]), "unknown adjective in %q", name)
		require.True(t, slices.Contains(colors, parts[1]), "unknown color in %q", name)
		require.True(t, slices.Contains(animals, parts[2]), "unknown animal in %q", name)
	}
}
