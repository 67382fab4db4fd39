package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/blast007/wifi-eap-profiles/pkg/eap"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "List, import, export and remove EAP profiles",
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		profiles, err := a.profiles.List()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, p := range profiles {
			types := make([]string, 0, len(p.AcceptEAPTypes))
			for _, t := range p.AcceptEAPTypes {
				types = append(types, t.String())
			}
			ssid := "-"
			if p.SSID != nil {
				ssid = *p.SSID
			}
			fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", *p.ID, ssid, p.DisplayName(), strings.Join(types, ","))
		}
		return nil
	},
}

var profileExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write every profile as YAML to file or stdout",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		profiles, err := a.profiles.List()
		if err != nil {
			return err
		}
		data, err := eap.MarshalProfiles(profiles)
		if err != nil {
			return err
		}
		if len(args) == 0 {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		return errors.Wrap(os.WriteFile(args[0], data, 0600), "failed to write export")
	},
}

var profileImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Create the profiles of a YAML export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return errors.Wrap(err, "failed to read import file")
		}
		profiles, err := eap.UnmarshalProfiles(data)
		if err != nil {
			return err
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		for _, p := range profiles {
			// Identifiers belong to the store the profile was exported from
			p.ID = nil
			id, err := a.profiles.Create(p)
			if err != nil {
				return errors.Wrapf(err, "failed to import %s", p.DisplayName())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", id, p.DisplayName())
		}
		return nil
	},
}

var (
	removeID   string
	removeSSID string
)

var profileRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove a profile by --id or --ssid",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if (removeID == "") == (removeSSID == "") {
			return errors.New("exactly one of --id and --ssid is required")
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if removeID != "" {
			return a.profiles.RemoveByID(removeID)
		}
		return a.profiles.RemoveBySSID(removeSSID)
	},
}

func init() {
	profileRemoveCmd.Flags().StringVar(&removeID, "id", "", "profile id")
	profileRemoveCmd.Flags().StringVar(&removeSSID, "ssid", "", "profile ssid")

	profileCmd.AddCommand(profileListCmd, profileExportCmd, profileImportCmd, profileRemoveCmd)
	rootCmd.AddCommand(profileCmd)
}
