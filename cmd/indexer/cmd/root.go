package cmd

import (
	"log"

	"github.com/elastic/go-elasticsearch/v7"
	"github.com/spf13/cobra"

	"github.com/marble-stack/financial-planning/pkg/conf"
)

var (
	file   string
	config *Conf

	client *elasticsearch.Client

	rootCmd = &cobra.Command{
		Use:   "indexer",
		Short: "Marble Event Indexing",
		Long:  "",
	}
)

type Conf struct {
	Redis conf.RedisConf `mapstructure:"redis"`
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&file, "config", "c", "config.toml", "config file")
	rootCmd.AddCommand(worker)
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
