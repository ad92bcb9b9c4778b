package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func TestStringListDecodesLegacyStringValue(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"tags": "ribbon"})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var doc struct {
		Tags StringList `bson:"tags"`
	}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(doc.Tags) != 1 || doc.Tags[0] != "ribbon" {
		t.Fatalf("expected [ribbon], got %v", doc.Tags)
	}
}

func TestStringListDecodesArrayValue(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"tags": []string{"birthday", "chocolate"}})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var doc struct {
		Tags StringList `bson:"tags"`
	}
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if len(doc.Tags) != 2 || doc.Tags[0] != "birthday" || doc.Tags[1] != "chocolate" {
		t.Fatalf("expected [birthday chocolate], got %v", doc.Tags)
	}
}

func TestStringListMarshalsAsArray(t *testing.T) {
	product := Product{Name: "Deluxe Hamper", Tags: StringList{"premium"}}
	raw, err := bson.Marshal(product)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if _, ok := doc["tags"].(bson.A); !ok {
		t.Fatalf("expected tags stored as array, got %T", doc["tags"])
	}
}
