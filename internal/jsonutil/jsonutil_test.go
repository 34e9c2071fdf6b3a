package jsonutil

import (
	"encoding/json"
	"testing"
)

func TestGetString(t *testing.T) {
	m := map[string]interface{}{
		"panelId": "details",
		"count":   float64(3),
	}
	if got := GetString(m, "panelId"); got != "details" {
		t.Errorf("GetString(panelId) = %q, want %q", got, "details")
	}
	if got := GetString(m, "count"); got != "" {
		t.Errorf("GetString on number = %q, want empty", got)
	}
	if got := GetString(m, "missing"); got != "" {
		t.Errorf("GetString on missing = %q, want empty", got)
	}
}

func TestGetStringOr(t *testing.T) {
	m := map[string]interface{}{"position": "left"}
	if got := GetStringOr(m, "position", "right"); got != "left" {
		t.Errorf("got %q, want left", got)
	}
	if got := GetStringOr(m, "missing", "right"); got != "right" {
		t.Errorf("got %q, want right", got)
	}
}

func TestGetNumber(t *testing.T) {
	tests := []struct {
		name   string
		value  interface{}
		want   float64
		wantOK bool
	}{
		{"float64", float64(42.5), 42.5, true},
		{"json.Number", json.Number("30"), 30, true},
		{"quoted number", "65", 65, true},
		{"quoted float", "12.5", 12.5, true},
		{"non-numeric string", "wide", 0, false},
		{"bool", true, 0, false},
		{"missing", nil, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := map[string]interface{}{}
			if tt.value != nil {
				m["percentage"] = tt.value
			}
			got, ok := GetNumber(m, "percentage")
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("GetNumber = (%v, %v), want (%v, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestGetBool(t *testing.T) {
	m := map[string]interface{}{"closable": true, "title": "Chat"}
	if !GetBool(m, "closable") {
		t.Error("GetBool(closable) = false, want true")
	}
	if GetBool(m, "title") {
		t.Error("GetBool on string should be false")
	}
	if GetBool(m, "missing") {
		t.Error("GetBool on missing key should be false")
	}
}

func TestUnmarshalWithContext(t *testing.T) {
	var m map[string]interface{}
	if err := UnmarshalWithContext([]byte(`{"a":1}`), &m, "parse payload"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := UnmarshalWithContext([]byte(`{`), &m, "parse payload")
	if err == nil {
		t.Fatal("expected error for truncated JSON")
	}
	if got := err.Error(); len(got) == 0 || got[:13] != "parse payload" {
		t.Errorf("error should carry context, got %q", got)
	}
}

func TestUnmarshalLine(t *testing.T) {
	var v struct {
		Type string `json:"type"`
	}
	if err := UnmarshalLine(`{"type":"progress"}`, &v); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Type != "progress" {
		t.Errorf("Type = %q", v.Type)
	}
	if err := UnmarshalLine("", &v); err == nil {
		t.Error("expected error for empty line")
	}
}
