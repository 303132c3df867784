package classify

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedConfig reports a configuration that fails validation:
// hue values outside [0,360), thresholds outside [0,1], non-finite values,
// or overlapping red/blue ranges. Wrapped errors can be tested with
// errors.Is. Validation always happens before any pixel work.
var ErrUnsupportedConfig = errors.New("unsupported configuration")

// HueRange is an inclusive arc on the hue circle, in degrees.
//
// Both endpoints must lie in [0,360). When Min > Max the range wraps through
// 0 degrees; the default red range 345-15 covers 345..360 and 0..15.
type HueRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Contains reports whether hue h (degrees) falls inside the range.
func (r HueRange) Contains(h float64) bool {
	if r.Min <= r.Max {
		return h >= r.Min && h <= r.Max
	}
	// Wraps through 0
	return h >= r.Min || h <= r.Max
}

// Config holds the classification rule: the hue range of each category and
// the saturation/value floors below which a pixel is never categorized.
//
// Hue-based classification with saturation/value floors is robust to
// lighting variation; pure RGB thresholds misclassify shadows and
// highlights.
type Config struct {
	RedHue        HueRange `yaml:"red_hue"`
	BlueHue       HueRange `yaml:"blue_hue"`
	MinSaturation float64  `yaml:"min_saturation"`
	MinValue      float64  `yaml:"min_value"`
}

// DefaultConfig returns the documented default classification rule:
// red 345-15 degrees (wrapping), blue 200-250 degrees, minimum saturation
// 0.35, minimum value 0.2.
func DefaultConfig() Config {
	return Config{
		RedHue:        HueRange{Min: 345, Max: 15},
		BlueHue:       HueRange{Min: 200, Max: 250},
		MinSaturation: 0.35,
		MinValue:      0.2,
	}
}

// Validate checks the configuration and returns an error wrapping
// ErrUnsupportedConfig if any field is out of its domain or if the red and
// blue ranges overlap. Overlap is rejected because every pixel must have
// exactly one category.
func (c Config) Validate() error {
	if err := validHueRange("red_hue", c.RedHue); err != nil {
		return err
	}
	if err := validHueRange("blue_hue", c.BlueHue); err != nil {
		return err
	}
	if err := validThreshold("min_saturation", c.MinSaturation); err != nil {
		return err
	}
	if err := validThreshold("min_value", c.MinValue); err != nil {
		return err
	}
	if c.RedHue.Contains(c.BlueHue.Min) || c.BlueHue.Contains(c.RedHue.Min) {
		return fmt.Errorf("%w: red hue range [%g,%g] overlaps blue hue range [%g,%g]",
			ErrUnsupportedConfig, c.RedHue.Min, c.RedHue.Max, c.BlueHue.Min, c.BlueHue.Max)
	}
	return nil
}

func validHueRange(name string, r HueRange) error {
	for _, h := range []float64{r.Min, r.Max} {
		if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 || h >= 360 {
			return fmt.Errorf("%w: %s value %g outside [0,360)", ErrUnsupportedConfig, name, h)
		}
	}
	return nil
}

func validThreshold(name string, v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return fmt.Errorf("%w: %s value %g outside [0,1]", ErrUnsupportedConfig, name, v)
	}
	return nil
}

// LoadConfig reads a YAML config file and returns the resulting
// configuration, validated. Fields absent from the file keep their default
// values, so a partial file overrides only what it names.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
