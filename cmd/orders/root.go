package main

import (
	"context"
	"encoding/json"
	"fmt"

	"opensea-orders/internal/core/config"
	"opensea-orders/internal/core/httpclient"
	"opensea-orders/internal/core/logger"
	orderadapter "opensea-orders/internal/features/orders/adapters"
	"opensea-orders/internal/features/orders/domain"
	orderservice "opensea-orders/internal/features/orders/service"

	"github.com/spf13/cobra"
)

// cli carries the state shared by every subcommand.
type cli struct {
	configPath string
	cfg        *config.AppConfig
	service    *orderservice.OrderService
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "orders",
		Short:         "Look up OpenSea marketplace orders",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", ".", "directory holding the .env file")

	root.AddCommand(
		newListCmd(c),
		newOrderCmd(c),
		newOrderV2Cmd(c),
	)
	return root
}

func (c *cli) setup() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}

	openSea, err := orderadapter.NewOpenSeaAdapter(cfg.OpenSea, httpclient.WithProxy(cfg.Proxy.Settings()))
	if err != nil {
		return err
	}

	c.cfg = cfg
	c.service = orderservice.NewOrderService(openSea)
	return nil
}

// context bounds a lookup by the configured request timeout.
func (c *cli) context(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if t := c.cfg.RequestTimeout(); t > 0 {
		return context.WithTimeout(ctx, t)
	}
	return context.WithCancel(ctx)
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// tokenFlags are the selectors shared by the legacy order commands.
type tokenFlags struct {
	side     string
	contract string
	tokenID  string
}

func (f *tokenFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.side, "side", "sell", "order side: buy or sell")
	cmd.Flags().StringVar(&f.contract, "contract", "", "asset contract address")
	cmd.Flags().StringVar(&f.tokenID, "token-id", "", "token id")
	_ = cmd.MarkFlagRequired("contract")
	_ = cmd.MarkFlagRequired("token-id")
}

func (f *tokenFlags) request() (domain.OrderRequest, error) {
	side, err := domain.ParseOrderSide(f.side)
	if err != nil {
		return domain.OrderRequest{}, err
	}
	contract, err := domain.ParseAddress(f.contract)
	if err != nil {
		return domain.OrderRequest{}, err
	}
	return domain.NewOrderRequest(side, contract, f.tokenID), nil
}
