package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"animals-safety/internal/adapters/notify"
	"animals-safety/internal/adapters/storage"
	"animals-safety/internal/domain/animals"

	"github.com/spf13/cobra"
)

type createFlags struct {
	name   string
	breed  string
	age    string
	weight string
	height string
}

// newCreateCmd es la pantalla de alta: los flags son el formulario,
// stderr hace de snackbar y el listado final es la "vuelta atrás".
func newCreateCmd(load loadFunc) *cobra.Command {
	var f createFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Validate the form values and register a new animal",
		Example: strings.TrimSpace(`
  animals create --name Milou --breed dog --age 6 --weight 473.6 --height 14.7
  animals create --storage-driver sqlite --dsn animals.db --name Rex --age 3 --weight 20 --height 50`),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := load(cmd)
			if err != nil {
				return err
			}

			breed, err := animals.ParseBreed(f.breed)
			if err != nil {
				return fmt.Errorf("%w %q (one of %s)", err, f.breed, breedList())
			}

			st, err := storage.Open(cmd.Context(), cfg.Storage, log)
			if err != nil {
				return err
			}
			defer st.Close()

			queue := notify.NewQueue(cfg.Notify.Buffer, log, notify.WriterSink(cmd.ErrOrStderr()))
			svc := animals.NewService(st.Animals, queue, log)

			ok := svc.VerifyAndCreate(cmd.Context(), animals.CreateInput{
				Name:   f.name,
				Breed:  breed,
				Age:    f.age,
				Weight: f.weight,
				Height: f.height,
			})

			// Drenar antes de salir para que el mensaje llegue a stderr.
			_ = queue.Close(context.WithoutCancel(cmd.Context()))

			if !ok {
				return errRejected
			}
			return printListing(cmd.Context(), cmd.OutOrStdout(), svc)
		},
	}

	fl := cmd.Flags()
	fl.StringVar(&f.name, "name", "", "animal name")
	fl.StringVar(&f.breed, "breed", "", "breed (default "+string(animals.DefaultBreed())+")")
	fl.StringVar(&f.age, "age", "", "age in years (integer)")
	fl.StringVar(&f.weight, "weight", "", "weight")
	fl.StringVar(&f.height, "height", "", "height")
	fl.Bool("migrate", true, "apply SQL migrations on startup")
	return cmd
}

func newListCmd(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered animals in insertion order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := load(cmd)
			if err != nil {
				return err
			}

			st, err := storage.Open(cmd.Context(), cfg.Storage, log)
			if err != nil {
				return err
			}
			defer st.Close()

			return printListing(cmd.Context(), cmd.OutOrStdout(), animals.NewService(st.Animals, nil, log))
		},
	}
}

func newBreedsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "breeds",
		Short: "Print the available breeds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			def := animals.DefaultBreed()
			for _, b := range animals.Breeds() {
				if b == def {
					fmt.Fprintf(cmd.OutOrStdout(), "%s (default)\n", b)
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), b)
			}
			return nil
		},
	}
}

func newMigrateCmd(load loadFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply SQL migrations for the configured storage driver",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := load(cmd)
			if err != nil {
				return err
			}
			if err := storage.Migrate(cmd.Context(), cfg.Storage); err != nil {
				return err
			}
			log.Info("migrations applied", map[string]any{"driver": cfg.Storage.Driver})
			return nil
		},
	}
}

func printListing(ctx context.Context, w io.Writer, svc *animals.Service) error {
	items, err := svc.List(ctx)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		fmt.Fprintln(w, "no animals")
		return nil
	}
	for _, a := range items {
		fmt.Fprintf(w, "%s\t%s\t%s\tage=%d\tweight=%g\theight=%g\n",
			a.ID, a.Name, a.Breed, a.Age, a.Weight, a.Height)
	}
	return nil
}

func breedList() string {
	all := animals.Breeds()
	out := make([]string, 0, len(all))
	for _, b := range all {
		out = append(out, string(b))
	}
	return strings.Join(out, ", ")
}
