package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/blast007/wifi-eap-profiles/pkg/eap"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage web API administrators",
}

var userAddCmd = &cobra.Command{
	Use:   "add <username> <password>",
	Short: "Add an administrator",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		return a.db.AddUser(args[0], args[1])
	},
}

var credentialComment string

var credentialCmd = &cobra.Command{
	Use:   "credential",
	Short: "Manage EAP credentials",
}

var credentialSetCmd = &cobra.Command{
	Use:   "set <ssid> <username> <password>",
	Short: "Save the EAP username and password for an SSID",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		cred := eap.NewCredential(args[0], args[1], args[2])
		if cmd.Flags().Changed("comment") {
			cred.Comment = &credentialComment
		}
		return a.db.SaveCredential(cred)
	},
}

var credentialListCmd = &cobra.Command{
	Use:   "list <ssid>",
	Short: "List the EAP usernames saved for an SSID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		creds, err := a.db.Credentials(args[0])
		if err != nil {
			return err
		}
		for _, c := range creds {
			comment := ""
			if c.Comment != nil {
				comment = *c.Comment
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", c.Username, c.Kind, comment)
		}
		return nil
	},
}

var credentialDeleteCmd = &cobra.Command{
	Use:   "delete <ssid>",
	Short: "Delete every credential saved for an SSID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		n, err := a.db.DeleteCredentials(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %d credentials\n", n)
		return nil
	},
}

var trustGroupName string

var trustGroupCmd = &cobra.Command{
	Use:   "trustgroup",
	Short: "Manage application trust groups",
}

var trustGroupCreateCmd = &cobra.Command{
	Use:   "create [anchor.pem]",
	Short: "Create an application trust group, optionally anchored on a certificate",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var anchor []byte
		if len(args) == 1 {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(err, "failed to read anchor")
			}
			certs, err := eap.DecodeCertificates(data)
			if err != nil {
				return err
			}
			anchor = certs[0]
		}

		var name *string
		if cmd.Flags().Changed("name") {
			name = &trustGroupName
		}

		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		ref, err := a.trustGroups.CreateApplicationTrustGroup(name, anchor)
		if err != nil {
			return err
		}
		defer ref.Release()

		out := cmd.OutOrStdout()
		if h, ok := ref.Handle().(interface{ GroupID() uint }); ok {
			fmt.Fprintf(out, "id\t%d\n", h.GroupID())
		}
		if anchor != nil {
			fmt.Fprintf(out, "fingerprint\t%s\n", eap.Fingerprint(anchor))
		}
		return nil
	},
}

func init() {
	userCmd.AddCommand(userAddCmd)

	credentialSetCmd.Flags().StringVar(&credentialComment, "comment", "", "comment stored with the credential")
	credentialCmd.AddCommand(credentialSetCmd, credentialListCmd, credentialDeleteCmd)

	trustGroupCreateCmd.Flags().StringVar(&trustGroupName, "name", "", "group name")
	trustGroupCmd.AddCommand(trustGroupCreateCmd)

	rootCmd.AddCommand(userCmd, credentialCmd, trustGroupCmd)
}
