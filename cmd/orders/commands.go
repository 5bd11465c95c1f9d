package main

import (
	"opensea-orders/internal/features/orders/domain"

	"github.com/spf13/cobra"
)

func newListCmd(c *cli) *cobra.Command {
	var (
		flags tokenFlags
		limit int
	)

	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"list"},
		Short:   "List legacy orders for a token",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request()
			if err != nil {
				return err
			}
			req.Limit = limit

			ctx, cancel := c.context(cmd)
			defer cancel()

			orders, err := c.service.ListOrders(ctx, req)
			if err != nil {
				return err
			}
			return printJSON(cmd, orders)
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVar(&limit, "limit", domain.DefaultOrderLimit, "maximum number of orders")
	return cmd
}

func newOrderCmd(c *cli) *cobra.Command {
	var flags tokenFlags

	cmd := &cobra.Command{
		Use:   "order",
		Short: "Fetch the first legacy order for a token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request()
			if err != nil {
				return err
			}

			ctx, cancel := c.context(cmd)
			defer cancel()

			order, err := c.service.GetOrder(ctx, req)
			if err != nil {
				return err
			}
			return printJSON(cmd, order)
		},
	}
	flags.register(cmd)
	return cmd
}

func newOrderV2Cmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "order-v2 <chain> <order-hash>",
		Short: "Fetch a Seaport order by chain and hash",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := domain.ParseOrderHash(args[1])
			if err != nil {
				return err
			}

			ctx, cancel := c.context(cmd)
			defer cancel()

			order, err := c.service.GetOrderV2(ctx, domain.OrderRequestV2{
				Chain:     args[0],
				OrderHash: hash,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, order)
		},
	}
}
