package seed_test

import (
	"testing"

	"hive/internal/domain/constants"
	"hive/internal/domain/seed"
	"hive/internal/infra/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedsPassStoreValidation(t *testing.T) {
	v := validation.New()

	for key, doc := range seed.Documents() {
		t.Run(key, func(t *testing.T) {
			require.NoError(t, v.Var(doc, "dive"))
		})
	}
}

func TestDocumentsCoverEveryCollection(t *testing.T) {
	docs := seed.Documents()

	assert.Len(t, docs, len(constants.CollectionKeys))
	for _, key := range constants.CollectionKeys {
		assert.Contains(t, docs, key)
	}
}

func TestSeedsReturnFreshSlices(t *testing.T) {
	first := seed.GamePartners()
	first[0].Games[0].SkillLevel = "Professional"

	assert.Equal(t, "Expert", seed.GamePartners()[0].Games[0].SkillLevel)
}
