package textfold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	assert.Equal(t, "joao", Fold("João"))
	assert.Equal(t, "hopital simao mendes", Fold("Hôpital Simão Mendes"))
	assert.Equal(t, "maria", Fold("MARIA"))
	assert.Equal(t, "", Fold(""))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains("María", "mar"))
	assert.True(t, Contains("Conceição", "CONCEICAO"))
	assert.False(t, Contains("João", "mar"))
}
