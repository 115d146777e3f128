package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"animals-safety/internal/config"
	"animals-safety/internal/platform/logger"

	"github.com/spf13/cobra"
)

// @title Animals Safety API
// @version 1.0
// @description Alta y listado de animales con validación de formulario.
// @BasePath /

// errRejected: el formulario no pasó la validación; el mensaje ya salió por el notifier.
var errRejected = errors.New("animal rejected")

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errRejected) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:           "animals",
		Short:         "Register animals and list them",
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "config file (default ./"+config.DefaultFileName+" if present)")
	pf.String("log-level", "", "debug|info|warn|error")
	pf.String("log-format", "", "text|json")
	pf.String("storage-driver", "", "memory|postgres|sqlite")
	pf.String("dsn", "", "storage DSN (postgres URL or sqlite path)")

	load := func(cmd *cobra.Command) (config.Config, logger.Logger, error) {
		cfg, err := config.Load(cfgPath, cmd.Flags())
		if err != nil {
			return config.Config{}, nil, err
		}
		return cfg, newLogger(cfg.Log, cmd.ErrOrStderr()), nil
	}

	root.AddCommand(
		newServeCmd(load),
		newCreateCmd(load),
		newListCmd(load),
		newBreedsCmd(),
		newMigrateCmd(load),
	)
	return root
}

type loadFunc func(cmd *cobra.Command) (config.Config, logger.Logger, error)

func newLogger(cfg config.Log, out io.Writer) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Level),
		Format: logger.ParseFormat(cfg.Format),
		App:    cfg.App,
		Out:    out,
	})
}
