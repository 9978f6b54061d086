package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"groupahpdss/internal/config"
	"groupahpdss/internal/fx"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Start the optional HTTP API exposing the group AHP / AEM-COM pipeline over POST /api/v1/solve.`,
	Run: func(cmd *cobra.Command, args []string) {
		runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe() {
	log.Println("=== groupahpdss API server ===")

	cfg := config.Load()
	config.PrintConfig()

	log.Printf("server: http://%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("swagger: http://%s:%s/swagger/index.html", cfg.Server.Host, cfg.Server.Port)
	if config.IsDevelopment() {
		log.Println("mode: development")
	} else {
		log.Println("mode: production")
	}

	fx.Application().Run()
}
