package cli

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/orgsync/internal/core/ports/driving"
	"github.com/custodia-labs/orgsync/internal/logger"
)

// EnvHome overrides the default data directory.
const EnvHome = "ORGSYNC_HOME"

var (
	version = "dev"

	verbose bool
	dataDir string

	parseService    driving.ParseService
	indexService    driving.IndexService
	syncService     driving.SyncService
	outlineService  driving.OutlineService
	searchService   driving.SearchService
	settingsService driving.SettingsService

	serviceFactory ServiceFactory
	closeServices  func() error
)

// Services is the set of driving ports the commands use.
type Services struct {
	Parse    driving.ParseService
	Index    driving.IndexService
	Sync     driving.SyncService
	Outline  driving.OutlineService
	Search   driving.SearchService
	Settings driving.SettingsService

	// Close releases the stores behind the services.
	Close func() error
}

// ServiceFactory opens the stores under dataDir and builds the services.
type ServiceFactory func(dataDir string) (*Services, error)

var rootCmd = &cobra.Command{
	Use:   "orgsync",
	Short: "Parse org outlines into a local node database",
	Long: `orgsync parses MobileOrg staging directories (index.org, checksums.dat and
the outline files they list) into a SQLite database of nodes.`,
	SilenceUsage:       true,
	PersistentPreRunE:  openServices,
	PersistentPostRunE: releaseServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "",
		"Data directory (default $"+EnvHome+" or ~/.orgsync)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServiceFactory registers how services are built once flags are parsed.
func SetServiceFactory(f ServiceFactory) {
	serviceFactory = f
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ResolveDataDir picks the data directory from the flag value, the
// environment, then the home directory.
func ResolveDataDir(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv(EnvHome); env != "" {
		return env, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".orgsync"), nil
}

func setServices(s *Services) {
	parseService = s.Parse
	indexService = s.Index
	syncService = s.Sync
	outlineService = s.Outline
	searchService = s.Search
	settingsService = s.Settings
	closeServices = s.Close
}

func openServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	logger.SetOutput(cmd.ErrOrStderr())

	if serviceFactory == nil {
		return nil
	}

	dir, err := ResolveDataDir(dataDir)
	if err != nil {
		return err
	}
	logger.Debug("data directory: %s", dir)

	services, err := serviceFactory(dir)
	if err != nil {
		return err
	}
	setServices(services)
	return nil
}

func releaseServices(_ *cobra.Command, _ []string) error {
	if closeServices == nil {
		return nil
	}
	err := closeServices()
	closeServices = nil
	return err
}

var errNotConfigured = errors.New("service not configured")

// Close releases the services opened for the last command. It is safe to
// call more than once.
func Close() error {
	return releaseServices(nil, nil)
}
