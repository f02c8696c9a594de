package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Print the key bindings",
	Args:  cobra.NoArgs,
	Run:   runKeys,
}

func runKeys(cmd *cobra.Command, args []string) {
	keys := tui.DefaultKeyMap()

	// Calculate column width
	maxKeyLen := 3 // "Key" header
	for _, col := range keys.FullHelp() {
		for _, b := range col {
			if n := len([]rune(b.Help().Key)); n > maxKeyLen {
				maxKeyLen = n
			}
		}
	}

	fmt.Printf("  %-*s  %s\n", maxKeyLen, "Key", "Action")
	fmt.Printf("  %-*s  %s\n", maxKeyLen, "---", "------")

	for _, col := range keys.FullHelp() {
		for _, b := range col {
			h := b.Help()
			pad := maxKeyLen - len([]rune(h.Key)) + len(h.Key)
			fmt.Printf("  %-*s  %s\n", pad, h.Key, h.Desc)
		}
	}
}
