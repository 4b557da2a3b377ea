package main

import (
	"fmt"

	"github.com/jhoicas/Hospital-api/internal/application/seed"
	"github.com/jhoicas/Hospital-api/internal/bootstrap"
	"github.com/jhoicas/Hospital-api/pkg/config"
	"github.com/jhoicas/Hospital-api/pkg/logger"
	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	var samples bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Crea las cuentas por defecto (admin, dr.santos) y, con --samples, pacientes y artículos de ejemplo",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.App.StoreBackend != config.StorePostgres {
				return fmt.Errorf("seed solo tiene sentido con STORE_BACKEND=postgres (actual: %s)", cfg.App.StoreBackend)
			}
			log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

			storage, err := bootstrap.Open(cmd.Context(), cfg, log)
			if err != nil {
				return err
			}
			defer storage.Close()

			res, err := seed.NewSeeder(storage.Users, storage.Patients, storage.Items, log.Component("seed").Zerolog()).
				Run(cmd.Context(), samples)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "usuarios: %d, pacientes: %d, artículos: %d (contraseña inicial: %q)\n",
				res.Users, res.Patients, res.Items, seed.DefaultPassword)
			return nil
		},
	}
	cmd.Flags().BoolVar(&samples, "samples", false, "incluye pacientes y artículos de ejemplo si las tablas están vacías")
	return cmd
}
