package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hismailbulut/geometry/pkg/bench"
	"github.com/hismailbulut/geometry/pkg/common"
	"github.com/hismailbulut/geometry/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	FormatTable = "table"
	FormatPlain = "plain"
)

type Config struct {
	Epsilon   float64 `mapstructure:"epsilon"`
	Threshold float64 `mapstructure:"threshold"`
	LogFile   string  `mapstructure:"log_file"`
	Color     bool    `mapstructure:"color"`
	Format    string  `mapstructure:"format"`
	Bench     bool    `mapstructure:"bench"`
}

func (cfg Config) Validate() error {
	if cfg.Epsilon < 0 {
		return fmt.Errorf("epsilon must not be negative, got %v", cfg.Epsilon)
	}
	if cfg.Threshold < 0 {
		return fmt.Errorf("threshold must not be negative, got %v", cfg.Threshold)
	}
	switch cfg.Format {
	case FormatTable, FormatPlain:
	default:
		return fmt.Errorf("unknown output format %q", cfg.Format)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("epsilon", common.DefaultEpsilon)
	v.SetDefault("threshold", float64(common.DirectionThreshold))
	v.SetDefault("log_file", "")
	v.SetDefault("color", false)
	v.SetDefault("format", FormatTable)
	v.SetDefault("bench", false)
}

// loadConfig reads the optional config file and the GEOMCALC_ environment
// variables. Flags bound to v take precedence over both.
func loadConfig(v *viper.Viper, cfgFile string) (Config, error) {
	var cfg Config
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(NAME)
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix(strings.ToUpper(NAME))
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("error reading config file: %w", err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, cfg.Validate()
}

// app is the state shared by every subcommand.
type app struct {
	viper *viper.Viper
	cfg   Config
	done  func(name ...string)
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	a := &app{viper: v}
	var cfgFile string

	root := &cobra.Command{
		Use:           NAME,
		Short:         "Evaluate box, vector and angle operations from the command line.",
		Long:          "Boxes are given as x,y,w,h (center and extent), points as x,y and sizes as w,h.\nUse -- before arguments starting with a minus sign.",
		Version:       VERSION.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			logger.Init(NAME, VERSION, bench.BUILD_TYPE, cfg.Color)
			if cfg.LogFile != "" {
				if err := logger.InitFile(cfg.LogFile); err != nil {
					return err
				}
			}
			logger.LogF(logger.DEBUG, "Running %s with %v", cmd.Name(), args)
			a.done = bench.Begin()
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.done != nil {
				a.done(cmd.Name())
			}
			if a.cfg.Bench {
				bench.PrintResults(cmd.OutOrStdout())
			}
			return nil
		},
	}
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	flags := root.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default is ./geomcalc.yaml)")
	flags.Float64("epsilon", common.DefaultEpsilon, "tolerance for equality checks")
	flags.Float64("threshold", float64(common.DirectionThreshold), "length under which a direction is treated as zero")
	flags.String("log-file", "", "append log messages to this file")
	flags.Bool("color", false, "colorize log messages")
	flags.StringP("format", "f", FormatTable, "output format, table or plain")
	flags.Bool("bench", false, "print operation timings (debug builds only)")

	setDefaults(v)
	for key, flag := range map[string]string{
		"epsilon":   "epsilon",
		"threshold": "threshold",
		"log_file":  "log-file",
		"color":     "color",
		"format":    "format",
		"bench":     "bench",
	} {
		// Only fails for a nil flag, which would be a programming error.
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(
		newBoxCmd(a),
		newContainsCmd(a),
		newIntersectsCmd(a),
		newIntersectCmd(a),
		newNearestCmd(a),
		newScaleCmd(a),
		newFromSizeCmd(a),
		newEqualsCmd(a),
		newVectorCmd(a),
		newAngleCmd(a),
		newDistanceCmd(a),
		newDirectionCmd(a),
		newConeCmd(a),
	)
	return root
}
