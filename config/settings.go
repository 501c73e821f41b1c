package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. CONTOUR_CONTOURS
const EnvPrefix = "CONTOUR"

// Settings holds the runtime options of the contour command
type Settings struct {
	ContoursDir string
	Verbose     bool
	Metrics     bool
	Bench       string
	Iterations  int
}

// Load resolves settings from the parsed flags, letting CONTOUR_* environment
// variables fill in any flag the user did not pass
func Load(flags *pflag.FlagSet) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(flags); err != nil {
		return nil, err
	}

	return &Settings{
		ContoursDir: v.GetString("contours"),
		Verbose:     v.GetBool("verbose"),
		Metrics:     v.GetBool("metrics"),
		Bench:       v.GetString("bench"),
		Iterations:  v.GetInt("iter"),
	}, nil
}
