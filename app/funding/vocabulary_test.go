package funding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVocabularyWithSourceNames(t *testing.T) {
	base := DefaultVocabulary()
	extended := base.WithSourceNames(" Sifted ", "techcrunch", "")

	assert.Contains(t, extended.SourceNames, "sifted")
	assert.Len(t, extended.SourceNames, len(base.SourceNames)+1)
	assert.NotContains(t, base.SourceNames, "sifted")
}
