package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtoiOr(t *testing.T) {
	assert.Equal(t, 64, atoiOr("", 64))
	assert.Equal(t, 128, atoiOr("128", 64))
	assert.Equal(t, 64, atoiOr("abc", 64))
}

func TestSplitCSV(t *testing.T) {
	assert.Equal(t, []string{"ontime", "terlambat"}, splitCSV("ontime, terlambat"))
	assert.Empty(t, splitCSV(" , ,"))
}
