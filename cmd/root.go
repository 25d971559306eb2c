package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Nour-Al-Hazzouri/majorly/internal/engine"
)

const (
	app = "majorly"
)

type Config struct {
	Catalog           string        `mapstructure:"catalog"`
	Responses         string        `mapstructure:"responses"`
	ExcludeFile       string        `mapstructure:"exclude-file"`
	Exclude           []string      `mapstructure:"exclude"`
	DropEmptyProfiles bool          `mapstructure:"drop-empty-profiles"`
	Engine            engine.Config `mapstructure:"engine"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "majorly is a simple cli that recommends majors, specializations and occupations from an assessment",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("catalog", "MAJORLY_CATALOG"); err != nil {
		log.Fatalf("binding MAJORLY_CATALOG environment variable: %v", err)
	}

	setDefaults()

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is majorly.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")
	rootCmd.PersistentFlags().String("catalog", "", "catalog file with skills, traits and majors")
	rootCmd.PersistentFlags().String("responses", "", "answers file. The questionnaire is asked when unset")
	rootCmd.PersistentFlags().StringP("exclude-file", "e", "", "special file with dismissed candidates. Default is unset.")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	viper.BindPFlag("catalog", rootCmd.PersistentFlags().Lookup("catalog"))
	viper.BindPFlag("responses", rootCmd.PersistentFlags().Lookup("responses"))
	viper.BindPFlag("exclude-file", rootCmd.PersistentFlags().Lookup("exclude-file"))
}

func setDefaults() {
	d := engine.DefaultConfig()

	viper.SetDefault("catalog", app+"-catalog.yaml")
	viper.SetDefault("engine.weights.skill", d.Weights.Skill)
	viper.SetDefault("engine.weights.interest", d.Weights.Interest)
	viper.SetDefault("engine.weights.strength", d.Weights.Strength)
	viper.SetDefault("engine.deep-dive-weights.skill", d.DeepDiveWeights.Skill)
	viper.SetDefault("engine.deep-dive-weights.interest", d.DeepDiveWeights.Interest)
	viper.SetDefault("engine.deep-dive-weights.strength", d.DeepDiveWeights.Strength)
	viper.SetDefault("engine.scale.min", d.Scale.Min)
	viper.SetDefault("engine.scale.max", d.Scale.Max)
	viper.SetDefault("engine.thresholds.strong-skill", d.Thresholds.StrongSkill)
	viper.SetDefault("engine.thresholds.some-skill", d.Thresholds.SomeSkill)
	viper.SetDefault("engine.thresholds.interest", d.Thresholds.Interest)
	viper.SetDefault("engine.thresholds.strength", d.Thresholds.Strength)
	viper.SetDefault("engine.top-n", d.TopN)
	viper.SetDefault("engine.deep-dive-top-n", d.DeepDiveTopN)
	viper.SetDefault("engine.workers", d.Workers)
}

func initConfig() {
	// Only the scoring commands read the config.
	if versionCmd.CalledAs() != "" {
		return
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// Defaults are enough without a config file, but an explicit one must parse.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	var config *Config
	err := viper.Unmarshal(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
