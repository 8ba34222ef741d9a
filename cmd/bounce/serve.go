package main

import (
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bounce/internal/platform/tui"
)

var (
	flagSSHAddr    string
	flagHostKey    string
	flagMaxSession int
	flagSSHFrames  int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the bounce SSH server",
	Long: `Start an SSH server that streams the animation to every connection.

Each SSH connection runs its own simulation with the configured physics.
A terminal is required, so clients must request a PTY. Finished sessions
are recorded in the history database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.bounce/host_key

Examples:
  bounce serve                           # Listen on :23235 with auto-generated key
  bounce serve --ssh :2222               # Listen on port 2222
  bounce serve --preset moon             # Serve low gravity
  bounce serve --frames 900              # End sessions after 900 frames

Users can connect with:
  ssh -t localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagMaxSession, "max-session", 30, "Disconnect sessions after this many minutes (0 = never)")
	serveCmd.Flags().IntVar(&flagSSHFrames, "frames", 0, "End each session after this many frames (0 = until disconnect)")
}

func runServe(cmd *cobra.Command, _ []string) {
	s := mustLoadSettings(cmd)

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		DBPath:      flagDBPath,
		MaxSession:  time.Duration(flagMaxSession) * time.Minute,
		MaxFrames:   flagSSHFrames,
		Sim:         s.Runtime,
		Preset:      string(s.Preset),
	}

	server, err := tui.NewSSHServer(cfg, logger)
	if err != nil {
		exitf("Error creating server: %v\n", err)
	}

	fmt.Printf("Starting bounce SSH server on %s\n", server.Addr())
	fmt.Printf("Connect with: %s\n", connectHint(server.Addr()))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		exitf("Server error: %v\n", err)
	}
}

// connectHint returns the ssh command line that reaches addr.
func connectHint(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "ssh -t " + addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return fmt.Sprintf("ssh -t %s -p %s", host, port)
}
