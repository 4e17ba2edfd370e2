// Package client provides commands that talk to a running alignment server
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/rpg-alignment/internal/errors"
	"github.com/KirkDiggler/rpg-alignment/internal/handlers/alignment/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the alignment service",
	Long:  `Client commands make real gRPC requests against a running alignment server.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Roster commands
	ClientCmd.AddCommand(registerCmd)
	ClientCmd.AddCommand(removeCmd)
	ClientCmd.AddCommand(listCmd)

	// Ledger commands
	ClientCmd.AddCommand(getCmd)
	ClientCmd.AddCommand(shiftCmd)
	ClientCmd.AddCommand(presetsCmd)
	ClientCmd.AddCommand(presetCmd)
	ClientCmd.AddCommand(syncTraitCmd)

	// View commands
	ClientCmd.AddCommand(gridCmd)
	ClientCmd.AddCommand(hoverCmd)
	ClientCmd.AddCommand(tabCmd)
}

// createAlignmentClient creates an alignment service client
func createAlignmentClient() (v1alpha1.AlignmentServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(unwrapStatus),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewAlignmentServiceClient(conn), cleanup, nil
}

// unwrapStatus turns status errors back into coded errors so commands print
// the server's message instead of the raw status text.
func unwrapStatus(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if err := invoker(ctx, method, req, reply, cc, opts...); err != nil {
		return errors.FromGRPCError(err)
	}
	return nil
}
