package jsontree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_Accessors(t *testing.T) {
	v, err := ParseString(`{"id": 7, "name": "alpha", "ok": true, "gone": null, "items": [10, 20, 30]}`)
	assert.Nil(t, err)

	assert.EqualValues(t, KindObject, v.Kind())
	assert.EqualValues(t, 5, v.Len())
	assert.EqualValues(t, []string{"id", "name", "ok", "gone", "items"}, v.Keys())

	assert.EqualValues(t, 7, v.Field("id").Int())
	assert.EqualValues(t, 7.0, v.Field("id").Float64())
	assert.EqualValues(t, "alpha", v.Field("name").Text())
	assert.True(t, v.Field("ok").Bool())
	assert.True(t, v.Field("gone").IsNull())
	assert.Nil(t, v.Field("missing"))

	items := v.Field("items")
	assert.EqualValues(t, KindArray, items.Kind())
	assert.EqualValues(t, 3, items.Len())
	assert.EqualValues(t, 20, items.Item(1).Int())
	assert.Nil(t, items.Item(3))
	assert.Nil(t, items.Item(-1))

	// Mismatched-kind accessors return zero values.
	assert.EqualValues(t, "", v.Field("id").Text())
	assert.EqualValues(t, 0, v.Field("name").Int())
	assert.False(t, v.Field("name").Bool())
	assert.Nil(t, v.Field("name").Keys())
}

func TestValue_Get(t *testing.T) {
	v, err := ParseString(`{"a": {"b": [ {"c": 1}, {"c": 2} ]}}`)
	assert.Nil(t, err)

	var testCases = []struct {
		description string
		path        []string
		expect      interface{}
	}{
		{
			description: "root",
			path:        nil,
			expect:      v.Interface(),
		},
		{
			description: "object then array index",
			path:        []string{"a", "b", "1", "c"},
			expect:      2.0,
		},
		{
			description: "missing key",
			path:        []string{"a", "x"},
			expect:      nil,
		},
		{
			description: "non-numeric array step",
			path:        []string{"a", "b", "first"},
			expect:      nil,
		},
		{
			description: "step into scalar",
			path:        []string{"a", "b", "0", "c", "d"},
			expect:      nil,
		},
	}
	for _, testCase := range testCases {
		actual := v.Get(testCase.path...)
		if testCase.expect == nil {
			assert.Nil(t, actual, testCase.description)
			assert.False(t, v.Exists(testCase.path...), testCase.description)
			continue
		}
		if assert.NotNil(t, actual, testCase.description) {
			assert.EqualValues(t, testCase.expect, actual.Interface(), testCase.description)
		}
		assert.True(t, v.Exists(testCase.path...), testCase.description)
	}
}

func TestValue_Equal(t *testing.T) {
	var testCases = []struct {
		description string
		left        string
		right       string
		expect      bool
	}{
		{
			description: "object member order is irrelevant",
			left:        `{"a":1,"b":2}`,
			right:       `{"b":2,"a":1}`,
			expect:      true,
		},
		{
			description: "array order matters",
			left:        "[1,2]",
			right:       "[2,1]",
			expect:      false,
		},
		{
			description: "kind mismatch",
			left:        "1",
			right:       `"1"`,
			expect:      false,
		},
		{
			description: "nested equal",
			left:        `{"a":[true,null,{"b":0.5}]}`,
			right:       `{"a":[true,null,{"b":0.5}]}`,
			expect:      true,
		},
		{
			description: "missing member",
			left:        `{"a":1}`,
			right:       `{"b":1}`,
			expect:      false,
		},
	}
	for _, testCase := range testCases {
		left, err := ParseString(testCase.left)
		assert.Nil(t, err, testCase.description)
		right, err := ParseString(testCase.right)
		assert.Nil(t, err, testCase.description)
		assert.EqualValues(t, testCase.expect, left.Equal(right), testCase.description)
	}
}

func TestValue_Visitors(t *testing.T) {
	v, err := ParseString(`{"a":1,"b":2,"c":3}`)
	assert.Nil(t, err)

	var keys []string
	var sum int
	err = v.Members()(func(key string, element *Value) (bool, error) {
		keys = append(keys, key)
		sum += element.Int()
		return true, nil
	})
	assert.Nil(t, err)
	assert.EqualValues(t, []string{"a", "b", "c"}, keys)
	assert.EqualValues(t, 6, sum)

	arr, err := ParseString(`[10, 20, 30]`)
	assert.Nil(t, err)
	var visited int
	err = arr.Elements()(func(key int, element *Value) (bool, error) {
		visited++
		return key < 1, nil
	})
	assert.Nil(t, err)
	assert.EqualValues(t, 2, visited)

	// Non-container values yield empty visitors.
	scalar, err := ParseString("1")
	assert.Nil(t, err)
	err = scalar.Members()(func(string, *Value) (bool, error) {
		t.Fatal("unexpected visit")
		return false, nil
	})
	assert.Nil(t, err)
}
