package cmd

import (
	"errors"
	"log"

	"github.com/spf13/cobra"

	"github.com/marble-stack/financial-planning/pkg/apps"
	"github.com/marble-stack/financial-planning/pkg/sql"
)

var appsCmd = &cobra.Command{
	Use:   "apps",
	Short: "manages apps and their write keys",
}

var appsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "registers an app and mints its write key",
	RunE:  runAppsCreate,
}

var appName string

func init() {
	appsCreateCmd.Flags().StringVarP(&appName, "name", "n", "", "app name")
	appsCmd.AddCommand(appsCreateCmd)
}

func runAppsCreate(*cobra.Command, []string) error {
	if appName == "" {
		return errors.New("name cannot be empty")
	}

	db, err := sql.Open(config.DB)
	if err != nil {
		return err
	}

	app, err := apps.NewBackend(db).CreateApp(appName)
	if err != nil {
		return err
	}

	log.Printf("app %s write key: %s\n", app.Name, app.Key)

	return nil
}
