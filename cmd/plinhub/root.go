package main

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/rodrigohacking/plinhub/internal/config"
	"github.com/rodrigohacking/plinhub/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "plinhub",
	Short: "Ferramentas de linha de comando do PLIN HUB",
	Long:  "Executa a busca de negócios no Pipefy fora da API, para validar a configuração de fases de uma empresa.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.NewConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		// stdout fica livre para o JSON dos comandos
		level := cfg.App.LogLevel
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = logrus.DebugLevel.String()
		}
		log.Configure(level, os.Stderr)

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "habilita logs de debug")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
