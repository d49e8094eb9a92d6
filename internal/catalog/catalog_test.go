package catalog

import (
	"regexp"
	"testing"
)

func TestMetricName(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{key: "ups.load", want: "nut_ups_load_percent"},
		{key: "battery.charge", want: "nut_battery_charge_percent"},
		{key: "battery.packs", want: "nut_battery_packs"},
		{key: "battery.packs.bad", want: "nut_battery_packs_bad"},
		{key: "device.uptime", want: "nut_device_uptime_seconds"},
		{key: "input.voltage.low.warning", want: "nut_input_voltage_low_warning_volts"},
		{key: "input.transfer.trim.low", want: "nut_input_transfer_trim_low_hertz"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			e, ok := Lookup(tt.key)
			if !ok {
				t.Fatalf("Lookup(%q) = miss, want hit", tt.key)
			}
			if got := MetricName(tt.key, e); got != tt.want {
				t.Errorf("MetricName(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestLookupUnknownKey(t *testing.T) {
	if _, ok := Lookup("foo.bar"); ok {
		t.Error("Lookup('foo.bar') = hit, want miss")
	}
	if _, ok := Lookup("ups.status"); ok {
		t.Error("Lookup('ups.status') = hit, want miss (status is synthesized, not cataloged)")
	}
}

func TestLookupEntryFields(t *testing.T) {
	e, ok := Lookup("battery.charge")
	if !ok {
		t.Fatal("Lookup('battery.charge') = miss, want hit")
	}
	if e.Unit != "percent" {
		t.Errorf("Unit = %q, want %q", e.Unit, "percent")
	}
	if e.Help != "Battery charge" {
		t.Errorf("Help = %q, want %q", e.Help, "Battery charge")
	}
}

func TestCatalogNamesAreValidMetricNames(t *testing.T) {
	validName := regexp.MustCompile(`^[a-zA-Z_:][a-zA-Z0-9_:]*$`)

	for key, e := range entries {
		name := MetricName(key, e)
		if !validName.MatchString(name) {
			t.Errorf("MetricName(%q) = %q, not a valid metric name", key, name)
		}
	}
}

func TestCatalogUnitsAreLowercaseTokens(t *testing.T) {
	validUnit := regexp.MustCompile(`^[a-z]+$`)

	for key, e := range entries {
		if e.Unit == "" {
			continue
		}
		if !validUnit.MatchString(e.Unit) {
			t.Errorf("entry %q has unit %q, want a lowercase token", key, e.Unit)
		}
	}
}

func TestCatalogHelpTextPresent(t *testing.T) {
	for key, e := range entries {
		if e.Help == "" {
			t.Errorf("entry %q has empty help text", key)
		}
	}
}
