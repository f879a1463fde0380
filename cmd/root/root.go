// Package root contains the root command for the application
package root

import (
	"github.com/TonAlmeida/finance-dashboard/internal/bankparser"
	"github.com/TonAlmeida/finance-dashboard/internal/bbparser"
	"github.com/TonAlmeida/finance-dashboard/internal/bradescoparser"
	"github.com/TonAlmeida/finance-dashboard/internal/categorizer"
	"github.com/TonAlmeida/finance-dashboard/internal/clients"
	"github.com/TonAlmeida/finance-dashboard/internal/config"
	"github.com/TonAlmeida/finance-dashboard/internal/fileutils"
	"github.com/TonAlmeida/finance-dashboard/internal/importer"
	"github.com/TonAlmeida/finance-dashboard/internal/nubankparser"
	"github.com/TonAlmeida/finance-dashboard/internal/rowparser"
	"github.com/TonAlmeida/finance-dashboard/internal/store"
	"github.com/TonAlmeida/finance-dashboard/internal/taxonomy"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	DataFile       string
	CategoriesFile string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// SharedFlags holds common flag values accessible to all commands
	SharedFlags = CommonFlags{}

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "finance-dashboard",
		Short: "Import bank CSV statements, categorize transactions and derive dashboard views.",
		Long: `finance-dashboard ingests bank-exported CSV statements (Nubank, Banco do
Brasil, Bradesco), normalizes them into a canonical transaction ledger,
auto-categorizes each transaction by keyword matching and derives dashboard
totals, monthly chart buckets, category breakdowns and counterparty groupings.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to finance-dashboard!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg, err := config.Load()
			if err != nil {
				Log.WithError(err).Warn("Failed to load configuration, using defaults")
				cfg = &config.Config{}
				cfg.Log.Level = "info"
				cfg.Log.Format = "text"
				cfg.CSV.Delimiter = ","
				cfg.Data.File = "transactions.json"
			}
			Cfg = cfg
			Log = config.ConfigureLogging(cfg)

			// Set the configured logger for all internal packages
			fileutils.SetLogger(Log)
			rowparser.SetLogger(Log)
			bankparser.SetLogger(Log)
			nubankparser.SetLogger(Log)
			bbparser.SetLogger(Log)
			bradescoparser.SetLogger(Log)
			categorizer.SetLogger(Log)
			taxonomy.SetLogger(Log)
			store.SetLogger(Log)
			importer.SetLogger(Log)
			clients.SetLogger(Log)

			if cfg.CSV.Delimiter != "" {
				store.SetDelimiter([]rune(cfg.CSV.Delimiter)[0])
			}
		},
	}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.DataFile, "data", "d", "", "Transactions ledger file (overrides config)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.CategoriesFile, "categories", "", "Category vocabularies YAML file (overrides config)")
}

// DataFile resolves the ledger path from flags and configuration.
func DataFile() string {
	if SharedFlags.DataFile != "" {
		return SharedFlags.DataFile
	}
	return Cfg.Data.File
}

// OpenStore opens the transaction store at the resolved ledger path.
func OpenStore() *store.Store {
	return store.New(DataFile())
}

// Vocabulary loads the category taxonomy, falling back to the built-in
// vocabularies when loading fails.
func Vocabulary() *taxonomy.Set {
	file := SharedFlags.CategoriesFile
	if file == "" {
		file = Cfg.Categories.File
	}
	set, err := taxonomy.NewStore(file).Load()
	if err != nil {
		Log.WithError(err).Warn("Failed to load category vocabularies, using built-in taxonomy")
		return taxonomy.DefaultSet()
	}
	return set
}
