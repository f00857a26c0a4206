package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rodrigohacking/plinhub/infrastructure/integrator/pipefy"
	"github.com/rodrigohacking/plinhub/infrastructure/integrator/pipefy/pipefyclient"
	"github.com/rodrigohacking/plinhub/internal/domain"
	"github.com/rodrigohacking/plinhub/internal/usecases/dealing"
	"github.com/spf13/cobra"
)

var pipefyCmd = &cobra.Command{
	Use:   "pipefy",
	Short: "Consultas diretas ao Pipefy",
}

var pipefyTestCmd = &cobra.Command{
	Use:   "test",
	Short: "Busca e classifica todos os cards de um pipe",
	Long:  "Executa a mesma busca da tela de administração e imprime os contadores de debug e os negócios em JSON.",
	RunE:  runPipefyTest,
}

var pipefyDetailsCmd = &cobra.Command{
	Use:   "details",
	Short: "Lista fases, campos e etiquetas de um pipe",
	RunE:  runPipefyDetails,
}

func init() {
	for _, cmd := range []*cobra.Command{pipefyTestCmd, pipefyDetailsCmd} {
		f := cmd.Flags()
		f.String("pipe", "", "ID do pipe no Pipefy")
		f.String("token", os.Getenv("PIPEFY_TOKEN"), "token da API do Pipefy (padrão: $PIPEFY_TOKEN)")
		_ = cmd.MarkFlagRequired("pipe")
	}

	f := pipefyTestCmd.Flags()
	f.String("config", "", "arquivo JSON com a configuração de fases da empresa")
	f.String("search", "", "filtra por título, cliente, vendedor ou etiqueta")
	f.Bool("summary", false, "imprime apenas os contadores, sem os negócios")

	pipefyCmd.AddCommand(pipefyTestCmd, pipefyDetailsCmd)
	rootCmd.AddCommand(pipefyCmd)
}

func newDealService() dealing.DealService {
	integrator := pipefy.New(cfg, pipefyclient.NewClient(cfg))
	// Sem banco: a CLI só usa a busca ao vivo
	return dealing.NewService(cfg, integrator, nil, nil)
}

func runPipefyTest(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pipeID, _ := cmd.Flags().GetString("pipe")
	token, _ := cmd.Flags().GetString("token")
	configPath, _ := cmd.Flags().GetString("config")
	search, _ := cmd.Flags().GetString("search")
	summary, _ := cmd.Flags().GetBool("summary")

	phaseConfig, err := loadPhaseConfig(configPath)
	if err != nil {
		return err
	}

	result, err := newDealService().FetchDeals(ctx, dealing.FetchDealsParams{
		PipeID:     pipeID,
		Token:      token,
		Config:     phaseConfig,
		SearchTerm: search,
	})
	if err != nil {
		return fmt.Errorf("pipefy test: %w", err)
	}

	if summary {
		return printJSON(cmd.OutOrStdout(), map[string]any{
			"debug":   result.Debug,
			"metrics": dealing.Summarize(result.Deals),
		})
	}

	return printJSON(cmd.OutOrStdout(), result)
}

func runPipefyDetails(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pipeID, _ := cmd.Flags().GetString("pipe")
	token, _ := cmd.Flags().GetString("token")

	details, err := newDealService().GetPipeDetails(ctx, pipeID, token)
	if err != nil {
		return fmt.Errorf("pipefy details: %w", err)
	}

	return printJSON(cmd.OutOrStdout(), details)
}

// loadPhaseConfig lê a configuração no mesmo formato salvo pelo dashboard
func loadPhaseConfig(path string) (domain.PhaseConfig, error) {
	var phaseConfig domain.PhaseConfig
	if path == "" {
		return phaseConfig, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return phaseConfig, fmt.Errorf("read phase config: %w", err)
	}

	if err := json.Unmarshal(raw, &phaseConfig); err != nil {
		return phaseConfig, fmt.Errorf("parse phase config %s: %w", path, err)
	}

	return phaseConfig, nil
}

func printJSON(w io.Writer, value any) error {
	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
