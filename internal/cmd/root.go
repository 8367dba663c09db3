package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dtek-monitor",
	Short: "DTEK Shutdowns Monitor",
	Long:  `Бот для відстеження графіків відключень електроенергії на сайті ДТЕК та публікації їх у Telegram.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
