package forms

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseItem(t *testing.T) {
	tests := []struct {
		name      string
		inName    string
		inValue   string
		wantName  string
		wantValue float64
		wantErr   bool
	}{
		{"plain", "widget", "7", "widget", 7, false},
		{"trimmed name", "  widget  ", "7", "widget", 7, false},
		{"negative", "w", "-12", "w", -12, false},
		{"explicit plus", "w", "+3", "w", 3, false},
		{"leading spaces", "w", "   42", "w", 42, false},
		{"trailing garbage", "w", "12abc", "w", 12, false},
		{"decimal truncates", "w", "3.9", "w", 3, false},
		{"empty name", "", "7", "", 0, true},
		{"blank name", "   ", "7", "", 0, true},
		{"empty value", "w", "", "", 0, true},
		{"letters", "w", "abc", "", 0, true},
		{"sign only", "w", "-", "", 0, true},
		{"beyond int64", "w", "99999999999999999999", "w", 1e20, false},
		{"negative zero", "w", "-0", "w", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, err := ParseItem(tt.inName, tt.inValue)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidItem) {
					t.Fatalf("expected ErrInvalidItem, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if item.Name != tt.wantName || item.Value != tt.wantValue {
				t.Errorf("got %+v, want {%s %v}", item, tt.wantName, tt.wantValue)
			}
		})
	}
}

func TestParseUser(t *testing.T) {
	u := ParseUser("Ada", "Lovelace", "36", "true")
	if u.FirstName != "Ada" || u.LastName != "Lovelace" {
		t.Errorf("names = %q %q", u.FirstName, u.LastName)
	}
	if u.Age == nil || *u.Age != 36 {
		t.Errorf("age = %v, want 36", u.Age)
	}
	if !u.MaritalStatus {
		t.Error("expected married")
	}
}

func TestParseUserAge(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantNil bool
	}{
		{"", 0, false},
		{"  ", 0, false},
		{"25", 25, false},
		{" 25 ", 25, false},
		{"25.7", 25.7, false},
		{".5", 0.5, false},
		{"-3", -3, false},
		{"1e2", 100, false},
		{"3000000000", 3000000000, false},
		{"0x10", 16, false},
		{"0o17", 15, false},
		{"0B101", 5, false},
		{"-0", 0, false},
		{"abc", 0, true},
		{"12abc", 0, true},
		{"-0x10", 0, true},
		{"0x", 0, true},
		{"1_000", 0, true},
		{"NaN", 0, true},
		{"inf", 0, true},
		{"Infinity", 0, true},
		{"1e400", 0, true},
	}
	for _, tt := range tests {
		got := ParseUser("", "", tt.in, "").Age
		if tt.wantNil {
			if got != nil {
				t.Errorf("age %q = %v, want nil", tt.in, *got)
			}
			continue
		}
		if got == nil || *got != tt.want {
			t.Errorf("age %q = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseUserAgeEncoding(t *testing.T) {
	tests := map[string]string{
		"25.7":       `"age":25.7`,
		"0x10":       `"age":16`,
		"3000000000": `"age":3000000000`,
		"-0":         `"age":0`,
		"abc":        `"age":null`,
	}
	for in, want := range tests {
		body, err := json.Marshal(ParseUser("a", "b", in, "false"))
		if err != nil {
			t.Fatalf("marshal %q: %v", in, err)
		}
		if !strings.Contains(string(body), want) {
			t.Errorf("age %q encoded as %s, want %s", in, body, want)
		}
	}
}

func TestParseItemEncoding(t *testing.T) {
	item, err := ParseItem("w", "99999999999999999999")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	body, err := json.Marshal(item)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := `{"name":"w","value":100000000000000000000}`; string(body) != want {
		t.Errorf("body = %s, want %s", body, want)
	}
}

func TestParseUserMarital(t *testing.T) {
	for _, in := range []string{"false", "TRUE", "True", "yes", ""} {
		if ParseUser("", "", "", in).MaritalStatus {
			t.Errorf("marital %q should be false", in)
		}
	}
}

func TestParseKeyValue(t *testing.T) {
	kv, err := ParseKeyValue(" color ", "blue")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kv.Key != "color" || kv.Value != "blue" {
		t.Errorf("got %+v", kv)
	}
	if _, err := ParseKeyValue("  ", "x"); !errors.Is(err, ErrInvalidKeyValue) {
		t.Errorf("expected ErrInvalidKeyValue, got %v", err)
	}
}
