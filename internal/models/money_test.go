package models

import (
	"encoding/json"
	"testing"
)

func TestMoneyJSONAcceptsNumbersAndStrings(t *testing.T) {
	var payload struct {
		A Money `json:"a"`
		B Money `json:"b"`
	}
	if err := json.Unmarshal([]byte(`{"a": 12.345, "b": "7.1"}`), &payload); err != nil {
		t.Fatalf("unmarshal money failed: %v", err)
	}
	if payload.A.String() != "12.35" || payload.B.String() != "7.10" {
		t.Fatalf("unexpected money values: %s %s", payload.A, payload.B)
	}
	out, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal money failed: %v", err)
	}
	if string(out) != `{"a":"12.35","b":"7.10"}` {
		t.Fatalf("unexpected json: %s", out)
	}
}

func TestMoneyMulIntAndEqual(t *testing.T) {
	price, err := NewMoneyFromString("19.99")
	if err != nil {
		t.Fatalf("parse money failed: %v", err)
	}
	total := price.MulInt(3)
	want, _ := NewMoneyFromString("59.97")
	if !total.Equal(want) {
		t.Fatalf("want %s got %s", want, total)
	}
	if total.Equal(NewMoneyFromInt(60)) {
		t.Fatalf("59.97 should not equal 60")
	}
}
