package main

import (
	"github.com/spf13/cobra"

	"github.com/venturelens/venturelens/internal/server"
	"github.com/venturelens/venturelens/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web interface",
	Long: `Serve starts the HTTP server. POST /analyze runs the pipeline for an idea;
GET /reports lists archived reports.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkCredentials(appConfig, appLogger); err != nil {
			return err
		}

		wf, closeFn, err := buildWorkflow(cmd.Context(), appConfig, appLogger)
		if err != nil {
			return err
		}
		defer closeFn()

		var archive *store.Store
		if appConfig.Archive.Enabled {
			archive, err = store.Open(appConfig.Archive.Path)
			if err != nil {
				return err
			}
			defer archive.Close()
		}

		srv := server.New(wf, archive, appLogger)
		router := srv.SetupRouter()

		addr := ":" + appConfig.Server.Port
		appLogger.Info("starting web interface", "addr", addr)
		return router.Run(addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
