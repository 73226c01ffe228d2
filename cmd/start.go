package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/goliatone/core.io-data-manager/core/loader"
	"github.com/goliatone/core.io-data-manager/core/middleware"
	"github.com/goliatone/core.io-data-manager/feature/transfer"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the data manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		a, err := bootstrap()
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		logg := a.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We log our own startup message
		})

		app.Use(middleware.RayID())
		app.Use(middleware.APIKey(a.cfg.Server.ApiKey))

		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})

		mgr := loader.NewManager()
		mgr.Register(transfer.NewFeature(a.service, a.cfg.Import.BaseOptions(), a.cfg.Server.EnableTransfer))
		if err := mgr.LoadAll(app, logg); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// Graceful shutdown on SIGINT/SIGTERM
		go func() {
			sig := make(chan os.Signal, 1)
			signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
			<-sig
			logg.Info("Shutting down")
			_ = app.Shutdown()
		}()

		logg.Info("Server listening", zap.String("port", a.cfg.Server.Port))
		if err := app.Listen(":" + a.cfg.Server.Port); err != nil {
			logg.Fatal("Server stopped", zap.Error(err))
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
