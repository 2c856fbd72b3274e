// Package config resolves a scaler.Config for the command-line tools from
// defaults, an optional YAML file, MOTION_SCALER_* environment variables and
// command-line flags, in increasing order of precedence.
//
// A config file keeps its settings under a "scaler" key:
//
//	scaler:
//	  max_output: 127
//	  half_input: 50
//	  exponent_tenths: 10
//	  mode: latched
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	scaler "github.com/tphakala/go-motion-scaler"
)

// New returns a viper instance with scaler defaults and environment
// overrides installed.
func New() *viper.Viper {
	v := viper.New()

	def := scaler.DefaultConfig()
	v.SetDefault(key(KeyEnabled), def.Enabled)
	v.SetDefault(key(KeyMaxOutput), def.MaxOutput)
	v.SetDefault(key(KeyHalfInput), def.HalfInput)
	v.SetDefault(key(KeyExponentTenths), def.ExponentTenths)
	v.SetDefault(key(KeyTrackRemainders), def.TrackRemainders)
	v.SetDefault(key(KeyMode), def.Mode.String())
	v.SetDefault(key(KeyArithmetic), def.Arithmetic.String())
	v.SetDefault(key(KeyShape), def.Shape.String())
	v.SetDefault(key(KeyScaleCoeffMilli), def.ScaleCoeffMilli)
	v.SetDefault(key(KeySIMD), def.EnableSIMD)

	// scaler.max_output <- MOTION_SCALER_MAX_OUTPUT. The replacer sees the
	// upper-cased, prefixed key.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(strings.ToUpper(section)+".", "", ".", "_"))
	v.AutomaticEnv()

	return v
}

// RegisterFlags adds one flag per setting to fs. Flag names use dashes,
// e.g. --max-output.
func RegisterFlags(fs *pflag.FlagSet) {
	def := scaler.DefaultConfig()
	fs.Bool(flagName(KeyEnabled), def.Enabled, "enable scaling (false passes motion through)")
	fs.Int32(flagName(KeyMaxOutput), def.MaxOutput, "symmetric output bound and curve asymptote")
	fs.Int32(flagName(KeyHalfInput), def.HalfInput, "input magnitude mapped to half of max output")
	fs.Int32(flagName(KeyExponentTenths), def.ExponentTenths, "curve exponent as (e-1)*10")
	fs.Bool(flagName(KeyTrackRemainders), def.TrackRemainders, "carry rounding remainders between samples")
	fs.String(flagName(KeyMode), def.Mode.String(), "scaling protocol: latched or immediate")
	fs.String(flagName(KeyArithmetic), def.Arithmetic.String(), "curve arithmetic: fixed or float")
	fs.String(flagName(KeyShape), def.Shape.String(), "response law: sigmoid or quadratic")
	fs.Int32(flagName(KeyScaleCoeffMilli), def.ScaleCoeffMilli, "quadratic coefficient in thousandths")
	fs.Bool(flagName(KeySIMD), def.EnableSIMD, "use SIMD for float block scaling")
}

// BindFlags connects flags registered by RegisterFlags to v. Only flags the
// user actually set override file and environment values.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, k := range Keys {
		f := fs.Lookup(flagName(k))
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key(k), f); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", f.Name, err)
		}
	}
	return nil
}

// Read loads a config file into v. An explicit path must exist. An empty
// path searches the standard locations and is not an error when nothing
// is found.
func Read(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName(configName)
	v.AddConfigPath(filepath.FromSlash("/etc/" + configName))
	v.AddConfigPath("$HOME/.config/" + configName)
	v.AddConfigPath(".")

	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// Resolve builds a validated scaler.Config from the merged settings in v.
func Resolve(v *viper.Viper) (scaler.Config, error) {
	mode, err := scaler.ParseMode(v.GetString(key(KeyMode)))
	if err != nil {
		return scaler.Config{}, err
	}
	arith, err := scaler.ParseArithmetic(v.GetString(key(KeyArithmetic)))
	if err != nil {
		return scaler.Config{}, err
	}
	shape, err := scaler.ParseShape(v.GetString(key(KeyShape)))
	if err != nil {
		return scaler.Config{}, err
	}

	cfg := scaler.Config{
		Enabled:         v.GetBool(key(KeyEnabled)),
		MaxOutput:       v.GetInt32(key(KeyMaxOutput)),
		HalfInput:       v.GetInt32(key(KeyHalfInput)),
		ExponentTenths:  v.GetInt32(key(KeyExponentTenths)),
		TrackRemainders: v.GetBool(key(KeyTrackRemainders)),
		Mode:            mode,
		Arithmetic:      arith,
		Shape:           shape,
		ScaleCoeffMilli: v.GetInt32(key(KeyScaleCoeffMilli)),
		EnableSIMD:      v.GetBool(key(KeySIMD)),
	}

	if err := cfg.Validate(); err != nil {
		return scaler.Config{}, err
	}
	return cfg, nil
}

// Load is Read followed by Resolve.
func Load(v *viper.Viper, path string) (scaler.Config, error) {
	if err := Read(v, path); err != nil {
		return scaler.Config{}, err
	}
	return Resolve(v)
}

func key(k string) string {
	return section + "." + k
}

func flagName(k string) string {
	return strings.ReplaceAll(k, "_", "-")
}
