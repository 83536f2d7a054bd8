package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/HERYORDEJY/FitQii/internal/dates"
	"github.com/HERYORDEJY/FitQii/internal/db"
	"github.com/HERYORDEJY/FitQii/internal/models"
)

const (
	dayLayout   = "2006-01-02"
	clockLayout = "15:04"
)

func mustBool(cmd *cobra.Command, name string) bool {
	v, _ := cmd.Flags().GetBool(name)
	return v
}

func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}

func parseDay(s string) (time.Time, error) {
	return time.ParseInLocation(dayLayout, s, time.Local)
}

func parseClock(s string) (time.Time, error) {
	return time.ParseInLocation(clockLayout, s, time.Local)
}

func parseID(arg string) (uint, error) {
	id, err := strconv.ParseUint(arg, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid session ID '%s'", arg)
	}
	return uint(id), nil
}

func clock(ms int64) string {
	if ms == 0 {
		return "--:--"
	}
	return time.UnixMilli(ms).Format(clockLayout)
}

func day(ms int64) string {
	if ms == 0 {
		return "-"
	}
	return time.UnixMilli(ms).Format(dayLayout)
}

// printSessions prints a flat session table.
func printSessions(sessions []models.Session) {
	if len(sessions) == 0 {
		fmt.Println("No sessions found. Use 'fitqii add \"session name\"' to schedule one.")
		return
	}

	fmt.Printf("%-4s %-9s %-30s %-12s %-10s %-11s %s\n",
		"ID", "STATUS", "NAME", "CATEGORY", "DATE", "TIME", "MODE")
	fmt.Println(strings.Repeat("-", 84))

	for _, s := range sessions {
		name := s.Name
		if len(name) > 28 {
			name = name[:25] + "..."
		}
		category := s.Category
		if len(category) > 10 {
			category = category[:7] + "..."
		}
		fmt.Printf("%-4d %-9s %-30s %-12s %-10s %s-%s %s\n",
			s.ID, s.Status, name, category, day(s.StartDate), clock(s.StartTime), clock(s.EndTime), s.Mode)
	}
}

// printBuckets prints day-bucketed sessions as sections.
func printBuckets(buckets []db.DayBucket, skipEmpty bool) {
	printed := 0
	for _, b := range buckets {
		if skipEmpty && len(b.Data) == 0 {
			continue
		}
		fmt.Printf("\n%s\n", b.Title.Format("Mon, 02 Jan 2006"))
		if len(b.Data) == 0 {
			fmt.Println("  (no sessions)")
			continue
		}
		for _, s := range b.Data {
			fmt.Printf("  #%-4d %s-%s  %-30s %-12s %s\n",
				s.ID, clock(s.StartTime), clock(s.EndTime), s.Name, s.Category, s.Status)
		}
		printed++
	}
	if skipEmpty && printed == 0 {
		fmt.Println("No sessions found.")
	}
}

// printSessionDetail prints one session in full.
func printSessionDetail(s *models.Session) {
	fmt.Printf("Session #%d: %s\n", s.ID, s.Name)
	fmt.Printf("  Category:   %s\n", s.Category)
	fmt.Printf("  Status:     %s\n", s.Status)
	fmt.Printf("  Dates:      %s to %s\n", day(s.StartDate), day(s.EndDate))
	fmt.Printf("  Times:      %s to %s (%s)\n", clock(s.StartTime), clock(s.EndTime), s.Timezone)
	fmt.Printf("  Mode:       %s\n", s.Mode)
	if s.Reminder > 0 {
		fmt.Printf("  Reminder:   %ds before start\n", s.Reminder)
	}
	if s.Repetition > 0 {
		fmt.Printf("  Repeats:    every %ds\n", s.Repetition)
	}
	if s.Link != nil && *s.Link != "" {
		fmt.Printf("  Link:       %s\n", *s.Link)
	}
	if s.Location != nil && *s.Location != "" {
		fmt.Printf("  Location:   %s\n", *s.Location)
	}
	if s.Description != nil && *s.Description != "" {
		fmt.Printf("  Notes:      %s\n", *s.Description)
	}
	for _, a := range s.Attachments {
		fmt.Printf("  Attachment: %s (%s)\n", a.Name, a.URI)
	}
	if s.StatusAt != nil && dates.IsValid(time.UnixMilli(*s.StatusAt)) {
		fmt.Printf("  Status set: %s\n", time.UnixMilli(*s.StatusAt).Format(time.RFC822))
	}
}
