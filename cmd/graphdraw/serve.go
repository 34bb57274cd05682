package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/graphdraw/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the terminal plot over SSH",
	Long: `Start an SSH server that shows the terminal plot to every client.

Each SSH connection gets its own plot with its own draw state and color.
Flags override the ssh section of the configuration.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.graphdraw/host_key

Examples:
  graphdraw serve                           # Listen on :23235
  graphdraw serve --ssh :2222               # Listen on port 2222
  graphdraw serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Idle time before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sshCfg := tui.SSHServerConfigFrom(cfg.SSH)
	if cmd.Flags().Changed("ssh") || sshCfg.Address == "" {
		sshCfg.Address = flagSSHAddr
	}
	if cmd.Flags().Changed("host-key") {
		sshCfg.HostKeyPath = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		sshCfg.IdleTimeout = flagIdleTimeout
	}

	server, err := tui.NewSSHServer(sshCfg, cfg, logger.WithPrefix("graphdraw-ssh"))
	if err != nil {
		return err
	}
	return server.ListenAndServe()
}
