package valueobjects

import (
	"fmt"
	"strings"
)

// ExecutionFrequency determines which trigger fires a rule.
type ExecutionFrequency string

const (
	// FrequencyImmediate fires synchronously when the target course is published.
	FrequencyImmediate ExecutionFrequency = "IMMEDIATE"
	// FrequencyDaily is executed by the daily batch timer.
	FrequencyDaily ExecutionFrequency = "DAILY"
	// FrequencyWeekly is executed by the weekly batch timer when enabled.
	FrequencyWeekly ExecutionFrequency = "WEEKLY"
	// FrequencyMonthly is executed by the monthly batch timer when enabled.
	FrequencyMonthly ExecutionFrequency = "MONTHLY"
	// FrequencyOnNewEmployee fires when a new employee joins the directory.
	FrequencyOnNewEmployee ExecutionFrequency = "ON_NEW_EMPLOYEE"
)

// ValidFrequencies enumerates the accepted execution frequencies.
var ValidFrequencies = map[ExecutionFrequency]bool{
	FrequencyImmediate:     true,
	FrequencyDaily:         true,
	FrequencyWeekly:        true,
	FrequencyMonthly:       true,
	FrequencyOnNewEmployee: true,
}

func (f ExecutionFrequency) String() string {
	return string(f)
}

// ParseFrequency validates and normalizes a frequency string.
func ParseFrequency(value string) (ExecutionFrequency, error) {
	f := ExecutionFrequency(strings.ToUpper(strings.TrimSpace(value)))
	if !ValidFrequencies[f] {
		return "", fmt.Errorf("invalid execution frequency: %s", value)
	}
	return f, nil
}
