package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dapreg/dapreg/internal/server"
	"github.com/dapreg/dapreg/pkg/log"
)

func serverCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "server",
		Short: "Start the dapreg lookup server",
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry()
			if err != nil {
				log.Fatalf("load registry failed: %v", err)
				return nil
			}
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return server.New("dapreg", httpAddr, reg).Run(ctx)
		},
	}
	return root
}
