package nut

import "testing"

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{name: "string", value: "OL", want: "OL"},
		{name: "string with padding", value: " AB123 ", want: " AB123 "},
		{name: "int", value: 42, want: "42"},
		{name: "int64", value: int64(3493), want: "3493"},
		{name: "float", value: 13.6, want: "13.6"},
		{name: "float without fraction", value: 230.0, want: "230"},
		{name: "bool", value: true, want: "true"},
		{name: "nil falls back to %v", value: nil, want: "<nil>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatValue(tt.value); got != tt.want {
				t.Errorf("formatValue(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestNewClient(t *testing.T) {
	c := NewClient("nut.example.net", 3493)
	if c.host != "nut.example.net" {
		t.Errorf("host = %q, want %q", c.host, "nut.example.net")
	}
	if c.port != 3493 {
		t.Errorf("port = %d, want %d", c.port, 3493)
	}
}
