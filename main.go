package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/TonAlmeida/finance-dashboard/cmd/categories"
	"github.com/TonAlmeida/finance-dashboard/cmd/clients"
	"github.com/TonAlmeida/finance-dashboard/cmd/export"
	"github.com/TonAlmeida/finance-dashboard/cmd/importcmd"
	"github.com/TonAlmeida/finance-dashboard/cmd/report"
	"github.com/TonAlmeida/finance-dashboard/cmd/root"
	"github.com/TonAlmeida/finance-dashboard/cmd/tx"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure the global log level before any logger is created
	configureLogLevelDirectly()

	// 3. Initialize the root command and flags
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(importcmd.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(clients.Cmd)
	root.Cmd.AddCommand(tx.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus
// instances from the LOG_LEVEL environment variable.
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
