package jsontree

import (
	stdjson "encoding/json"
	"testing"

	"github.com/francoispqt/gojay"
)

var (
	compareSmallDoc  = []byte(`{"id":7,"name":"alpha","flag":true}`)
	compareNestedDoc = []byte(`{
		"id": 7,
		"name": "alpha",
		"score": 0.5,
		"tags": ["a", "b", "c", "d"],
		"meta": {"env": "dev", "region": "us-east-1"},
		"children": [{"id": 1, "name": "x", "flag": false}, {"id": 2, "name": "y", "flag": true}]
	}`)
)

type compareEvent struct {
	ID   int
	Name string
	Flag bool
}

func (e *compareEvent) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	switch key {
	case "id":
		return dec.Int(&e.ID)
	case "name":
		return dec.String(&e.Name)
	case "flag":
		return dec.Bool(&e.Flag)
	}
	return nil
}

func (e *compareEvent) NKeys() int { return 3 }

func BenchmarkCompare_Parse_Small_Jsontree(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(compareSmallDoc); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompare_Parse_Small_Stdlib(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var out interface{}
		if err := stdjson.Unmarshal(compareSmallDoc, &out); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompare_Parse_Small_Gojay(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var out compareEvent
		if err := gojay.UnmarshalJSONObject(compareSmallDoc, &out); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompare_Parse_Nested_Jsontree(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(compareNestedDoc); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCompare_Parse_Nested_Stdlib(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var out interface{}
		if err := stdjson.Unmarshal(compareNestedDoc, &out); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_EscapedStrings(b *testing.B) {
	data := []byte(`["plain", "with \"escapes\" and é", "😀 tail"]`)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := Parse(data); err != nil {
			b.Fatal(err)
		}
	}
}
