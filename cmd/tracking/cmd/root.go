package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/marble-stack/financial-planning/pkg/conf"
)

var (
	file   string
	config *Conf

	rootCmd = &cobra.Command{
		Use:   "tracking",
		Short: "Marble Event Tracking",
		Long:  "",
	}
)

type Conf struct {
	Mixpanel conf.MixpanelConf `mapstructure:"mixpanel"`
	Redis    conf.RedisConf    `mapstructure:"redis"`
	DB       conf.PostgresConf `mapstructure:"db"`
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&file, "config", "c", "config.toml", "config file")
	rootCmd.AddCommand(workerCmd)
	rootCmd.AddCommand(flushCmd)
	rootCmd.AddCommand(appsCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func initConfig() {
	config = &Conf{}
	err := conf.Load(file, config)
	if err != nil {
		log.Fatalf("failed to load config: %s", err)
	}
}
