package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sumfall/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Host sumfall over SSH",
	Long: `Run an SSH server so others can play from their own terminal.

The SSH user name picks the player: each name keeps its own best points,
achievements and saved game, and connections under the same name share
them. Finished games from everyone land in one score history (--db).

Without --host-key a key is generated at ~/.sumfall/host_key.

Examples:
  sumfall serve
  sumfall serve --ssh :2222 --idle-timeout 10m
  sumfall serve --host-key ./host_key --db ./sumfall.db

Players join with:
  ssh -p 23234 alice@your-host`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "Listen address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Host key file (generated when missing)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", defaults.IdleTimeout, "Disconnect players idle for this long")
}

func runServe(cmd *cobra.Command, _ []string) error {
	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		IdleTimeout: flagIdleTimeout,
		Game:        loadConfig(),
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Serving sumfall on %s (Ctrl+C to stop)\n", server.Addr())
	return server.Serve(ctx)
}
