package visitor

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairsVisitor_Visit(t *testing.T) {
	pairs := []Pair[string, int]{
		{Key: "a", Element: 1},
		{Key: "b", Element: 2},
		{Key: "c", Element: 3},
	}
	visit := PairsVisitorOf(pairs)

	var keys []string
	err := visit(func(key string, element int) (bool, error) {
		keys = append(keys, key)
		return true, nil
	})
	assert.Nil(t, err)
	assert.EqualValues(t, []string{"a", "b", "c"}, keys)

	var visited int
	err = visit(func(key string, element int) (bool, error) {
		visited++
		return key != "b", nil
	})
	assert.Nil(t, err)
	assert.EqualValues(t, 2, visited)

	err = visit(func(key string, element int) (bool, error) {
		return true, fmt.Errorf("failed on %v", key)
	})
	assert.NotNil(t, err)
}

func TestSliceVisitor_Visit(t *testing.T) {
	visit := SliceVisitorOf([]string{"x", "y", "z"})

	collected := map[int]string{}
	err := visit(func(key int, element string) (bool, error) {
		collected[key] = element
		return true, nil
	})
	assert.Nil(t, err)
	assert.EqualValues(t, map[int]string{0: "x", 1: "y", 2: "z"}, collected)

	var visited int
	err = visit(func(key int, element string) (bool, error) {
		visited++
		return false, nil
	})
	assert.Nil(t, err)
	assert.EqualValues(t, 1, visited)
}
