package wordlist

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSkipsCommentsAndBlanks(t *testing.T) {
	input := strings.NewReader(`# animals
cat

Dog
  bird
# trailing comment
`)
	words, err := Load(input)
	require.NoError(t, err)
	assert.Equal(t, []string{"CAT", "DOG", "BIRD"}, words)
}

func TestLoadEmptyInput(t *testing.T) {
	words, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, words)
}

func TestLoadUppercasesUmlauts(t *testing.T) {
	words, err := Load(strings.NewReader("bär\nübung\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"BÄR", "ÜBUNG"}, words)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestLoadDisplayNames(t *testing.T) {
	input := strings.NewReader(`{"all_cap": "CAT", "word": "Cat"}
{"all_cap": "ÜBUNG", "word": "Übung"}
`)
	names, err := LoadDisplayNames(input)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"CAT": "Cat", "ÜBUNG": "Übung"}, names)
}

func TestLoadDisplayNamesMalformed(t *testing.T) {
	_, err := LoadDisplayNames(strings.NewReader(`{"all_cap": "CAT"`))
	assert.Error(t, err)
}

func TestLoadDisplayNamesFileMissingIsNotAnError(t *testing.T) {
	names, err := LoadDisplayNamesFile(filepath.Join(t.TempDir(), "nope.ndjson"))
	require.NoError(t, err)
	assert.Empty(t, names)
}
