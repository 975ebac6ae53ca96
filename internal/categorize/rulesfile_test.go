package categorize

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankcat-dev/bankcat/internal/model"
)

func writeRules(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRules(t *testing.T) {
	path := writeRules(t, `rules:
  - name: gym
    category: retail/food
    keywords: ["iron temple gym"]
    sign: outgoing
  - name: rent-in
    category: transfer
    keywords: ["flat 4 rent"]
`)

	rules, err := LoadRules(path)
	require.NoError(t, err)
	require.Len(t, rules, 2)

	assert.Equal(t, "gym", rules[0].Name)
	assert.Equal(t, model.CategoryFoodRetail, rules[0].Category)
	assert.Equal(t, SignOutgoing, rules[0].Sign)
	assert.Equal(t, SignAny, rules[1].Sign)
}

func TestLoadRules_OverlayShadowsBuiltins(t *testing.T) {
	path := writeRules(t, `rules:
  - name: landlord
    category: utility
    keywords: ["sent money to landlord"]
`)

	user, err := LoadRules(path)
	require.NoError(t, err)

	r := NewResolver(append(user, DefaultRules()...))
	assert.Equal(t, model.CategoryUtility, r.Resolve("Sent money to LANDLORD ref 9", dec("-700.00")))

	// Unrelated details still hit the built-in table.
	assert.Equal(t, model.CategoryTransfer, r.Resolve("Sent money to John Baker", dec("-10.00")))
}

func TestLoadRules_UnknownCategory(t *testing.T) {
	path := writeRules(t, `rules:
  - name: bad
    category: no-such-tag
    keywords: ["x"]
`)
	_, err := LoadRules(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown category")
}

func TestLoadRules_UnknownSign(t *testing.T) {
	path := writeRules(t, `rules:
  - name: bad
    category: transfer
    keywords: ["x"]
    sign: sideways
`)
	_, err := LoadRules(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown sign")
}

func TestLoadRules_NoKeywords(t *testing.T) {
	path := writeRules(t, `rules:
  - name: bad
    category: transfer
    keywords: []
`)
	_, err := LoadRules(path)
	require.Error(t, err)
}

func TestLoadRules_MissingFile(t *testing.T) {
	_, err := LoadRules(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
