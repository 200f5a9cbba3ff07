// SPDX-License-Identifier: MIT
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/temotunadze/lawfolio/internal/config"
	"github.com/temotunadze/lawfolio/internal/content"
	"github.com/temotunadze/lawfolio/internal/db"
	"go.uber.org/zap"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect the site copy",
	Long:  "List and seed the pages, links and blocks shown on the portfolio",
}

var contentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List pages and their blocks",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		if err := initContentDB(); err != nil {
			return err
		}

		pages, err := content.ListPages(db.GetDB())
		if err != nil {
			return err
		}

		fmt.Printf("%-12s %-30s %s\n", "Path", "Title", "Blocks")
		fmt.Println("--------------------------------------------------------------")
		for _, page := range pages {
			kinds := ""
			for i, b := range page.Blocks {
				if i > 0 {
					kinds += ", "
				}
				kinds += b.Type
			}
			fmt.Printf("%-12s %-30s %s\n", page.Slug, page.Title, kinds)
		}
		return nil
	},
}

var contentSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the default site copy if the store is empty",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		if err := db.InitDB(config.GetString("database.type"), config.GetString("database.path")); err != nil {
			return err
		}

		wrote, err := content.Seed(db.GetDB())
		if err != nil {
			return err
		}
		if wrote {
			fmt.Println("Seeded default content")
		} else {
			fmt.Println("Content already present, nothing to do")
		}
		return nil
	},
}

func init() {
	contentCmd.AddCommand(contentListCmd)
	contentCmd.AddCommand(contentSeedCmd)
	rootCmd.AddCommand(contentCmd)
}

// initContentDB opens the content store and seeds it on first start
func initContentDB() error {
	dbType := config.GetString("database.type")
	if err := db.InitDB(dbType, config.GetString("database.path")); err != nil {
		return err
	}

	wrote, err := content.Seed(db.GetDB())
	if err != nil {
		return err
	}
	if wrote {
		logger.Info("seeded default content", zap.String("database", dbType))
	}
	return nil
}
