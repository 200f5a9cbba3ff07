// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/temotunadze/lawfolio/internal/config"
	"github.com/temotunadze/lawfolio/internal/tls"
)

var tlsCmd = &cobra.Command{
	Use:   "tls",
	Short: "TLS certificate management",
	Long:  "Inspect the certificates managed for the portfolio's domains",
}

var tlsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show certificate status",
	Long:  "Display the status of all managed SSL/TLS certificates",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}

		if !config.GetBool("server.tls_enabled") {
			fmt.Println("TLS is disabled. Enable it with: lawfolio config set server.tls_enabled true")
			return nil
		}

		tlsCfg, err := tls.LoadConfig()
		if err != nil {
			return fmt.Errorf("failed to load TLS config: %w", err)
		}

		tlsManager, err := tls.NewManager(tlsCfg, logger)
		if err != nil {
			return fmt.Errorf("failed to create TLS manager: %w", err)
		}

		statuses, err := tlsManager.GetCertificateStatus()
		if err != nil {
			return fmt.Errorf("failed to get certificate status: %w", err)
		}

		if len(statuses) == 0 {
			fmt.Println("No certificates found. Certificates are provisioned on first HTTPS request to a domain.")
			fmt.Println("\nConfigured domains:")
			for _, domain := range tlsManager.GetAllowedDomains() {
				fmt.Printf("  - %s (not yet provisioned)\n", domain)
			}
			return nil
		}

		fmt.Printf("%-30s %-20s %-15s %s\n", "Domain", "Issuer", "Expires", "Days Left")
		fmt.Println("-----------------------------------------------------------------------------------")
		for _, status := range statuses {
			fmt.Printf("%-30s %-20s %-15s %d\n",
				status.Domain,
				status.Issuer,
				status.NotAfter.Format("2006-01-02"),
				status.DaysUntilExpiry,
			)
		}
		return nil
	},
}

func init() {
	tlsCmd.AddCommand(tlsStatusCmd)
	rootCmd.AddCommand(tlsCmd)
}
