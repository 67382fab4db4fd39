package main

import (
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blast007/wifi-eap-profiles/internal/config"
	"github.com/blast007/wifi-eap-profiles/internal/webui"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the admin web API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if a.cfg.WebUI.SessionSecret == config.DefaultSessionSecret {
			a.log.Warn("using the default session secret, set webui.session_secret")
		}

		// WaitGroup to track when our routines finish
		var wait sync.WaitGroup

		wui := webui.NewWebUI(a.db, a.profiles, a.trustGroups, a.log)
		wui.Addr = a.cfg.WebUI.Addr
		wui.SessionSecret = []byte(a.cfg.WebUI.SessionSecret)
		wui.SessionMaxAge = a.cfg.WebUI.SessionMaxAge
		wui.SessionCleanup = a.cfg.WebUI.SessionCleanup

		wait.Add(1)
		wui.Start(&wait)

		// Handle Ctrl-C
		ctrlc := make(chan os.Signal, 1)
		signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-ctrlc
			if err := wui.Stop(); err != nil {
				a.log.Error("failed to stop web server", zap.Error(err))
			}
		}()

		// Wait for the goroutines to finish
		wait.Wait()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
