package main

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func main() {
	// Load settings
	_ = godotenv.Load()

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.pretty", true)
	viper.SetDefault("sample.author", "sampler")

	viper.AddConfigPath(".")
	viper.SetConfigName("postcard")
	viper.SetConfigType("toml")
	viper.SetEnvPrefix("postcard")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatal().Err(err).Msg("An error occurred when loading settings.")
		}
	}

	setupLogging()

	Execute()
}

func setupLogging() {
	level, err := zerolog.ParseLevel(viper.GetString("log.level"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// Data streams go to stdout; logs always stay on stderr.
	if !viper.GetBool("log.pretty") {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
}
