package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDictionary_CaseInsensitive(t *testing.T) {
	d := NewDictionary([]string{"The", "quick", "QUICK"}, true)

	assert.Equal(t, 2, d.Len())
	assert.True(t, d.Contains("the"))
	assert.True(t, d.Contains("THE"))
	assert.True(t, d.Contains("Quick"))
	assert.False(t, d.Contains("fox"))
}

func TestDictionary_CaseSensitive(t *testing.T) {
	d := NewDictionary([]string{"The", "quick"}, false)

	assert.Equal(t, 2, d.Len())
	assert.True(t, d.Contains("The"))
	assert.False(t, d.Contains("the"))
	assert.False(t, d.Contains("QUICK"))
}

func TestDictionary_Nil(t *testing.T) {
	var d *Dictionary

	assert.False(t, d.Contains("anything"))
	assert.Equal(t, 0, d.Len())
}

func TestDictionary_Empty(t *testing.T) {
	d := NewDictionary(nil, true)

	assert.Equal(t, 0, d.Len())
	assert.False(t, d.Contains(""))
}
