package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blast007/wifi-eap-profiles/internal/config"
	"github.com/blast007/wifi-eap-profiles/internal/database"
	"github.com/blast007/wifi-eap-profiles/internal/logging"
	"github.com/blast007/wifi-eap-profiles/pkg/profilestore"
	"github.com/blast007/wifi-eap-profiles/pkg/trustgroup"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "eapprofiled",
	Short:         "Manage 802.1X EAP profiles for wireless networks",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"Configuration file path. Supports JSON, TOML and YAML formatted configs.")
}

// app holds the components every command works with
type app struct {
	cfg         *config.Config
	log         *zap.Logger
	db          *database.Database
	profiles    *profilestore.Gateway
	trustGroups *trustgroup.Gateway
	groupSvc    *database.TrustGroupService
}

func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return nil, err
	}

	db, err := database.Open(cfg.Database.Path, log)
	if err != nil {
		return nil, err
	}

	groupSvc := db.TrustGroups()
	return &app{
		cfg: cfg,
		log: log,
		db:  db,
		profiles: profilestore.NewGateway(db.Profiles(),
			profilestore.WithLogger(log),
			profilestore.WithDuplicateSSIDs(cfg.Profiles.AllowDuplicateSSID)),
		trustGroups: trustgroup.NewGateway(groupSvc, trustgroup.WithLogger(log)),
		groupSvc:    groupSvc,
	}, nil
}

func (a *app) Close() {
	if n := a.groupSvc.OpenHandles(); n > 0 {
		a.log.Warn("trust group references were not released", zap.Int("count", n))
	}
	if err := a.db.Close(); err != nil {
		a.log.Warn("failed to close database", zap.Error(err))
	}
	_ = a.log.Sync()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
