// hnsmctl tareas de administración: migraciones del esquema y carga de datos iniciales.
//
// Uso:
//
//	hnsmctl migrate up|down|status
//	hnsmctl seed [--samples]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "hnsmctl",
		Short:         "Administración de la API del Hôpital National Simão Mendes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
