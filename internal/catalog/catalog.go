// Package catalog defines the fixed set of NUT variables that the exporter
// knows how to translate into gauge metrics, along with each variable's
// physical unit and help text.
package catalog

import "strings"

// Namespace is the prefix shared by every exported metric name.
const Namespace = "nut"

// Entry describes one recognized NUT variable.
type Entry struct {
	// Unit is the physical unit appended to the metric name as its final
	// segment. Empty for pure counts.
	Unit string
	// Help is the one-line metric description.
	Help string
}

// entries maps NUT variable names to their unit and help text. The set
// spans the device, ups, input, output and battery domains; variables not
// listed here are ignored by the collector.
var entries = map[string]Entry{
	"device.uptime":               {Unit: "seconds", Help: "Device uptime"},
	"ups.temperature":             {Unit: "celsius", Help: "UPS temperature"},
	"ups.load":                    {Unit: "percent", Help: "Load on UPS"},
	"ups.load.high":               {Unit: "percent", Help: "Load when UPS switches to overload condition"},
	"ups.efficiency":              {Unit: "percent", Help: "Efficiency of the UPS (ratio of the output current on the input current)"},
	"ups.power":                   {Unit: "voltamperes", Help: "Current value of apparent power"},
	"ups.power.nominal":           {Unit: "voltamperes", Help: "Nominal value of apparent power"},
	"ups.realpower":               {Unit: "watts", Help: "Current value of real power"},
	"ups.realpower.nominal":       {Unit: "watts", Help: "Nominal value of real power"},
	"input.voltage":               {Unit: "volts", Help: "Input voltage"},
	"input.voltage.maximum":       {Unit: "volts", Help: "Maximum incoming voltage seen"},
	"input.voltage.minimum":       {Unit: "volts", Help: "Minimum incoming voltage seen"},
	"input.voltage.low.warning":   {Unit: "volts", Help: "Low warning threshold"},
	"input.voltage.low.critical":  {Unit: "volts", Help: "Low critical threshold"},
	"input.voltage.high.warning":  {Unit: "volts", Help: "High warning threshold"},
	"input.voltage.high.critical": {Unit: "volts", Help: "High critical threshold"},
	"input.voltage.nominal":       {Unit: "volts", Help: "Nominal input voltage"},
	"input.transfer.delay":        {Unit: "seconds", Help: "Delay before transfer to mains"},
	"input.transfer.low":          {Unit: "volts", Help: "Low voltage transfer point"},
	"input.transfer.high":         {Unit: "volts", Help: "High voltage transfer point"},
	"input.transfer.low.min":      {Unit: "volts", Help: "smallest settable low voltage transfer point"},
	"input.transfer.low.max":      {Unit: "volts", Help: "greatest settable low voltage transfer point"},
	"input.transfer.high.min":     {Unit: "volts", Help: "smallest settable high voltage transfer point"},
	"input.transfer.high.max":     {Unit: "volts", Help: "greatest settable high voltage transfer point"},
	"input.current":               {Unit: "amperes", Help: "Input current"},
	"input.current.nominal":       {Unit: "amperes", Help: "Nominal input current"},
	"input.current.low.warning":   {Unit: "amperes", Help: "Low warning threshold"},
	"input.current.low.critical":  {Unit: "amperes", Help: "Low critical threshold"},
	"input.current.high.warning":  {Unit: "amperes", Help: "High warning threshold"},
	"input.current.high.critical": {Unit: "amperes", Help: "High critical threshold"},
	"input.frequency":             {Unit: "hertz", Help: "Input line frequency"},
	"input.frequency.nominal":     {Unit: "hertz", Help: "Nominal input line frequency"},
	"input.frequency.low":         {Unit: "hertz", Help: "Input line frequency low"},
	"input.frequency.high":        {Unit: "hertz", Help: "Input line frequency high"},
	"input.transfer.boost.low":    {Unit: "hertz", Help: "Low voltage boosting transfer point"},
	"input.transfer.boost.high":   {Unit: "hertz", Help: "High voltage boosting transfer point"},
	"input.transfer.trim.low":     {Unit: "hertz", Help: "Low voltage trimming transfer point"},
	"input.transfer.trim.high":    {Unit: "hertz", Help: "High voltage trimming transfer point"},
	"input.load":                  {Unit: "percent", Help: "Load on (ePDU) input"},
	"input.realpower":             {Unit: "watts", Help: "Current sum value of all (ePDU) phases real power"},
	"input.power":                 {Unit: "voltamperes", Help: "Current sum value of all (ePDU) phases apparent power"},
	"output.voltage":              {Unit: "volts", Help: "Output voltage"},
	"output.voltage.nominal":      {Unit: "volts", Help: "Nominal output voltage"},
	"output.frequency":            {Unit: "hertz", Help: "Output frequency"},
	"output.frequency.nominal":    {Unit: "hertz", Help: "Nominal output frequency"},
	"output.current":              {Unit: "amperes", Help: "Output current"},
	"output.current.nominal":      {Unit: "amperes", Help: "Nominal output current"},
	"battery.charge":              {Unit: "percent", Help: "Battery charge"},
	"battery.charge.low":          {Unit: "percent", Help: "Remaining battery level when UPS switches to LB"},
	"battery.charge.restart":      {Unit: "percent", Help: "Minimum battery level for UPS restart after power-off"},
	"battery.charge.warning":      {Unit: "percent", Help: "Battery level when UPS switches to \"Warning\" state"},
	"battery.voltage":             {Unit: "volts", Help: "Battery voltage"},
	"battery.voltage.nominal":     {Unit: "volts", Help: "Nominal battery voltage"},
	"battery.voltage.low":         {Unit: "volts", Help: "Minimum battery voltage, that triggers FSD status"},
	"battery.voltage.high":        {Unit: "volts", Help: "Maximum battery voltage (i.e. battery.charge = 100)"},
	"battery.capacity":            {Unit: "amperehours", Help: "Battery capacity"},
	"battery.current":             {Unit: "amperes", Help: "Battery current"},
	"battery.current.total":       {Unit: "amperes", Help: "Total battery current"},
	"battery.temperature":         {Unit: "celsius", Help: "Battery temperature"},
	"battery.runtime":             {Unit: "seconds", Help: "Battery runtime"},
	"battery.runtime.low":         {Unit: "seconds", Help: "Remaining battery runtime when UPS switches to LB"},
	"battery.runtime.restart":     {Unit: "seconds", Help: "Minimum battery runtime for UPS restart after power-off"},
	"battery.packs":               {Help: "Number of battery packs"},
	"battery.packs.bad":           {Help: "Number of bad battery packs"},
}

// Lookup returns the catalog entry for a NUT variable name.
func Lookup(key string) (Entry, bool) {
	e, ok := entries[key]
	return e, ok
}

// MetricName derives the exported metric name for a catalog key: dots
// become underscores, the namespace is prefixed, and the unit, if any, is
// appended as the final segment.
//
// Example: "ups.load" with unit "percent" yields "nut_ups_load_percent";
// "battery.packs" with no unit yields "nut_battery_packs".
func MetricName(key string, e Entry) string {
	name := Namespace + "_" + strings.ReplaceAll(key, ".", "_")
	if e.Unit != "" {
		name += "_" + e.Unit
	}
	return name
}
