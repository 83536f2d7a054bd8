package commands

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/HERYORDEJY/FitQii/internal/dates"
	"github.com/HERYORDEJY/FitQii/internal/db"
	"github.com/HERYORDEJY/FitQii/internal/models"
)

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Schedule a new session",
	Long: `Schedule a session with a name, category, date span and time span.
Dates use YYYY-MM-DD, times use HH:MM (24h). Omitted dates default to today.`,
	Args: cobra.MinimumNArgs(1),
	Run:  withServices(runAdd),
}

func runAdd(cmd *cobra.Command, args []string) {
	name := strings.Join(args, " ")

	startDay := time.Now()
	if v, _ := cmd.Flags().GetString("start"); v != "" {
		parsed, err := parseDay(v)
		if err != nil {
			fmt.Printf("Error: invalid start date '%s'\n", v)
			return
		}
		startDay = parsed
	}
	endDay := startDay
	if v, _ := cmd.Flags().GetString("end"); v != "" {
		parsed, err := parseDay(v)
		if err != nil {
			fmt.Printf("Error: invalid end date '%s'\n", v)
			return
		}
		endDay = parsed
	}

	from, _ := cmd.Flags().GetString("from")
	to, _ := cmd.Flags().GetString("to")
	fromClock, err := parseClock(from)
	if err != nil {
		fmt.Printf("Error: invalid start time '%s'\n", from)
		return
	}
	toClock, err := parseClock(to)
	if err != nil {
		fmt.Printf("Error: invalid end time '%s'\n", to)
		return
	}

	// Anchor the clock-only values on the session's own days.
	startTime := time.Date(startDay.Year(), startDay.Month(), startDay.Day(),
		fromClock.Hour(), fromClock.Minute(), 0, 0, time.Local)
	endTime := time.Date(endDay.Year(), endDay.Month(), endDay.Day(),
		toClock.Hour(), toClock.Minute(), 0, 0, time.Local)
	if combined, ok := dates.CombineDateAndTime(startDay, startTime); ok {
		startTime = combined
	}
	if combined, ok := dates.CombineDateAndTime(endDay, endTime); ok {
		endTime = combined
	}

	category, _ := cmd.Flags().GetString("category")
	timezone, _ := cmd.Flags().GetString("timezone")
	if timezone == "" {
		timezone, _ = time.Now().Zone()
	}
	reminder, _ := cmd.Flags().GetInt64("reminder")
	repetition, _ := cmd.Flags().GetInt64("repeat")
	mode, _ := cmd.Flags().GetString("mode")
	link, _ := cmd.Flags().GetString("link")
	location, _ := cmd.Flags().GetString("location")
	description, _ := cmd.Flags().GetString("note")
	attachPaths, _ := cmd.Flags().GetStringArray("attach")

	var attachments models.AttachmentList
	for _, p := range attachPaths {
		attachments = append(attachments, models.Attachment{
			Name: filepath.Base(p),
			URI:  p,
		})
	}

	session, err := client.Create(context.Background(), db.CreateSessionRequest{
		Name:        name,
		Category:    category,
		StartDate:   startDay,
		EndDate:     endDay,
		StartTime:   startTime,
		EndTime:     endTime,
		Timezone:    timezone,
		Reminder:    reminder,
		Repetition:  repetition,
		Mode:        mode,
		Link:        link,
		Location:    location,
		Description: description,
		Attachments: attachments,
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("✅ Scheduled session #%d: %s\n", session.ID, session.Name)
	fmt.Printf("%s %s-%s (%s)\n", day(session.StartDate), clock(session.StartTime), clock(session.EndTime), session.Status)
}

func init() {
	addCmd.Flags().StringP("category", "c", "general", "Session category, e.g. meeting, gym")
	addCmd.Flags().String("start", "", "Start date (YYYY-MM-DD), defaults to today")
	addCmd.Flags().String("end", "", "End date (YYYY-MM-DD), defaults to the start date")
	addCmd.Flags().String("from", "09:00", "Start time (HH:MM)")
	addCmd.Flags().String("to", "10:00", "End time (HH:MM)")
	addCmd.Flags().String("timezone", "", "Timezone label, defaults to the local zone")
	addCmd.Flags().Int64("reminder", 0, "Seconds before start to remind, 0 = at start")
	addCmd.Flags().Int64("repeat", 0, "Seconds between recurrences, 0 = one-off")
	addCmd.Flags().StringP("mode", "m", "offline", "Session mode: online or offline")
	addCmd.Flags().String("link", "", "Meeting link for online sessions")
	addCmd.Flags().StringP("location", "l", "", "Location for offline sessions")
	addCmd.Flags().StringP("note", "n", "", "Free-form description")
	addCmd.Flags().StringArray("attach", nil, "Attachment file path (repeatable)")
}
