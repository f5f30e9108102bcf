package config

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// cronParser accepts standard 5-field cron expressions plus the descriptors
// cron.v3 supports (e.g. "@hourly").
var cronParser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// ValidateCronSchedule validates that a string is a parseable cron expression.
//
// Parameters:
//   - schedule: Cron expression to validate, e.g. "*/30 * * * *"
//
// Returns:
//   - error: nil if valid, parse error otherwise
//
// Example:
//
//	if err := ValidateCronSchedule(cfg.CronSchedule); err != nil {
//	    return fmt.Errorf("invalid schedule: %w", err)
//	}
func ValidateCronSchedule(schedule string) error {
	if schedule == "" {
		return fmt.Errorf("cron schedule must not be empty")
	}
	if _, err := cronParser.Parse(schedule); err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", schedule, err)
	}
	return nil
}

// ValidateTimezone validates that a string is a known IANA timezone name.
//
// Parameters:
//   - tz: Timezone name to validate, e.g. "Asia/Tokyo", "UTC"
//
// Returns:
//   - error: nil if valid, error otherwise
func ValidateTimezone(tz string) error {
	if tz == "" {
		return fmt.Errorf("timezone must not be empty")
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", tz, err)
	}
	return nil
}

// ValidateIntRange validates that an integer falls within [min, max] inclusive.
//
// Parameters:
//   - value: Value to validate
//   - min: Minimum allowed value (inclusive)
//   - max: Maximum allowed value (inclusive)
//
// Returns:
//   - error: nil if valid, error otherwise
func ValidateIntRange(value, min, max int) error {
	if value < min || value > max {
		return fmt.Errorf("value %d out of range [%d, %d]", value, min, max)
	}
	return nil
}
