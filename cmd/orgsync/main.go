// Command orgsync parses MobileOrg staging directories into a local
// SQLite node database.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/orgsync/internal/adapters/driven/config/file"
	"github.com/custodia-labs/orgsync/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/orgsync/internal/adapters/driving/cli"
	"github.com/custodia-labs/orgsync/internal/core/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// A missing .env is normal.
	_ = godotenv.Load()

	cli.SetVersion(version)
	cli.SetServiceFactory(openServices)

	err := cli.Execute()
	if closeErr := cli.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openServices opens the stores under dataDir and wires the services.
func openServices(dataDir string) (*cli.Services, error) {
	config, err := file.NewConfigStore(dataDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	prefs := file.NewPreferenceStore(config)

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	nodes := store.NodeStore()
	index := store.IndexStore()

	parse := services.NewParseService(nodes, index, prefs)
	idx := services.NewIndexService(index)
	outline := services.NewOutlineService(nodes)

	return &cli.Services{
		Parse:    parse,
		Index:    idx,
		Sync:     services.NewSyncService(idx, parse, nodes),
		Outline:  outline,
		Search:   services.NewSearchService(outline),
		Settings: services.NewSettingsService(prefs, config),
		Close:    store.Close,
	}, nil
}
