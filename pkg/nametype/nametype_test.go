package nametype_test

import (
	"testing"

	"github.com/gnames/gnameparser/pkg/nametype"
	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	assert.Equal(t, "scientific", nametype.Scientific.String())
	assert.Equal(t, "hybrid formula", nametype.HybridFormula.String())
	assert.Equal(t, "no name", nametype.NoName.String())
	assert.Equal(t, "no name", nametype.NameType(42).String())
}

func TestParsable(t *testing.T) {
	assert.True(t, nametype.Scientific.Parsable())
	assert.True(t, nametype.Informal.Parsable())
	assert.False(t, nametype.Virus.Parsable())
	assert.False(t, nametype.Placeholder.Parsable())
	assert.False(t, nametype.HybridFormula.Parsable())
}
