package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Search sessions by name",
	Long:  "Case-insensitive substring search across this week's and past sessions.",
	Args:  cobra.MinimumNArgs(1),
	Run: withServices(func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		text := strings.Join(args, " ")

		weekBuckets, err := client.Week(ctx, text, time.Time{})
		if err != nil {
			fmt.Printf("Error searching week's sessions: %v\n", err)
			return
		}
		pastBuckets, err := client.Past(ctx, text)
		if err != nil {
			fmt.Printf("Error searching past sessions: %v\n", err)
			return
		}

		fmt.Printf("This week matching %q:\n", text)
		printBuckets(weekBuckets, true)
		fmt.Printf("\nHistory matching %q:\n", text)
		printBuckets(pastBuckets, true)
	}),
}
