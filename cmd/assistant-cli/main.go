package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"banking-assistant/internal/model"
)

var (
	// Global flags
	verbose   bool
	accounts  []string
	profileID string
	seed      int64
	noDelay   bool

	// classify flags
	classifyMode string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "assistant-cli",
	Short: "Talk to the banking assistant from a terminal",
	Long: `assistant-cli runs the chat assistant and the voice command router
locally, reading one submission per line from stdin.

Examples:
  assistant-cli chat --account A1:1000 --account A2:1640
  echo "transfer money" | assistant-cli voice --account A1:500 --no-delay
  assistant-cli classify --mode voice "check my balance" "open profile"`,
	SilenceUsage: true,
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive chat session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSessionCmd(cmd, model.ModeChat)
	},
}

var voiceCmd = &cobra.Command{
	Use:   "voice",
	Short: "Start a voice session; each line is one recognized utterance",
	Long: `Each input line is treated as the transcript of one speech capture.
The line ":unsupported" simulates a browser without speech recognition
and ":error" a failed recognition.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSessionCmd(cmd, model.ModeVoice)
	},
}

var classifyCmd = &cobra.Command{
	Use:   "classify [text...]",
	Short: "Print the intent of each argument",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runClassify,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	for _, c := range []*cobra.Command{chatCmd, voiceCmd} {
		c.Flags().StringArrayVar(&accounts, "account", nil, "Account as id:balance (repeatable, first is the default target)")
		c.Flags().StringVar(&profileID, "profile", "", "Profile id used by 'open profile'")
		c.Flags().Int64Var(&seed, "seed", 0, "Seed for financial tip selection (0 = clock)")
		c.Flags().BoolVar(&noDelay, "no-delay", false, "Reveal replies and navigate immediately")
	}

	classifyCmd.Flags().StringVar(&classifyMode, "mode", string(model.ModeChat), "Rule table to use (chat or voice)")

	rootCmd.AddCommand(chatCmd, voiceCmd, classifyCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// sleepCtx waits for d unless ctx ends first.
func sleepCtx(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
