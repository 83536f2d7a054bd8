package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/HERYORDEJY/FitQii/internal/tui"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List sessions",
	Long: `List sessions. By default shows today's sessions; use --week for the
current week's day-by-day agenda, --past for the full history, --date for one
day, or --start/--end for an arbitrary range.`,
	Run: withServices(runList),
}

func runList(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	search, _ := cmd.Flags().GetString("search")

	if interactive, _ := cmd.Flags().GetBool("interactive"); interactive {
		if err := tui.RunList(client); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
		return
	}

	switch {
	case mustBool(cmd, "week"):
		buckets, err := client.Week(ctx, search, time.Time{})
		if err != nil {
			fmt.Printf("Error fetching week's sessions: %v\n", err)
			return
		}
		printBuckets(buckets, false)

	case mustBool(cmd, "past"):
		buckets, err := client.Past(ctx, search)
		if err != nil {
			fmt.Printf("Error fetching past sessions: %v\n", err)
			return
		}
		printBuckets(buckets, true)

	case mustString(cmd, "date") != "":
		d, err := parseDay(mustString(cmd, "date"))
		if err != nil {
			fmt.Printf("Error: invalid date '%s'\n", mustString(cmd, "date"))
			return
		}
		sessions, err := client.ByDate(ctx, d)
		if err != nil {
			fmt.Printf("Error fetching sessions: %v\n", err)
			return
		}
		printSessions(sessions)

	case mustString(cmd, "start") != "" || mustString(cmd, "end") != "":
		start, err := parseDay(mustString(cmd, "start"))
		if err != nil {
			fmt.Printf("Error: invalid start date '%s'\n", mustString(cmd, "start"))
			return
		}
		end, err := parseDay(mustString(cmd, "end"))
		if err != nil {
			fmt.Printf("Error: invalid end date '%s'\n", mustString(cmd, "end"))
			return
		}
		sessions, err := client.Range(ctx, start, end)
		if err != nil {
			fmt.Printf("Error fetching sessions: %v\n", err)
			return
		}
		printSessions(sessions)

	case mustBool(cmd, "all"):
		sessions, err := client.All(ctx)
		if err != nil {
			fmt.Printf("Error fetching sessions: %v\n", err)
			return
		}
		printSessions(sessions)

	default:
		sessions, err := client.Today(ctx)
		if err != nil {
			fmt.Printf("Error fetching today's sessions: %v\n", err)
			return
		}
		printSessions(sessions)
	}
}

func init() {
	listCmd.Flags().BoolP("week", "w", false, "Show this week's agenda, day by day")
	listCmd.Flags().BoolP("past", "p", false, "Show past sessions, day by day")
	listCmd.Flags().BoolP("all", "a", false, "Show every session")
	listCmd.Flags().String("date", "", "Show sessions for one day (YYYY-MM-DD)")
	listCmd.Flags().String("start", "", "Range start (YYYY-MM-DD)")
	listCmd.Flags().String("end", "", "Range end (YYYY-MM-DD)")
	listCmd.Flags().StringP("search", "s", "", "Filter by name substring")
	listCmd.Flags().BoolP("interactive", "i", false, "Open the interactive session browser")
}
