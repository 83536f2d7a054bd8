package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/HERYORDEJY/FitQii/internal/db"
)

var editCmd = &cobra.Command{
	Use:   "edit [session-id]",
	Short: "Edit an upcoming session",
	Long: `Edit a session's fields. Only the flags you pass are changed. Sessions
that are already active, completed or cancelled can no longer be edited.`,
	Args: cobra.ExactArgs(1),
	Run:  withServices(runEdit),
}

func runEdit(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	id, err := parseID(args[0])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	existing, err := client.ByID(ctx, id)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if existing == nil {
		fmt.Printf("Session #%d not found\n", id)
		return
	}
	if !existing.Status.IsEditable() {
		fmt.Printf("Session #%d is %s and can no longer be edited\n", id, existing.Status)
		return
	}

	var req db.UpdateSessionRequest
	changed := false

	setString := func(flag string, dst **string) {
		if cmd.Flags().Changed(flag) {
			v := mustString(cmd, flag)
			*dst = &v
			changed = true
		}
	}
	setDay := func(flag string, dst **time.Time) bool {
		if !cmd.Flags().Changed(flag) {
			return true
		}
		parsed, err := parseDay(mustString(cmd, flag))
		if err != nil {
			fmt.Printf("Error: invalid date '%s'\n", mustString(cmd, flag))
			return false
		}
		*dst = &parsed
		changed = true
		return true
	}

	setString("name", &req.Name)
	setString("category", &req.Category)
	setString("timezone", &req.Timezone)
	setString("mode", &req.Mode)
	setString("link", &req.Link)
	setString("location", &req.Location)
	setString("note", &req.Description)

	if !setDay("start", &req.StartDate) || !setDay("end", &req.EndDate) {
		return
	}

	if cmd.Flags().Changed("from") {
		c, err := parseClock(mustString(cmd, "from"))
		if err != nil {
			fmt.Printf("Error: invalid start time '%s'\n", mustString(cmd, "from"))
			return
		}
		base := time.UnixMilli(existing.StartDate)
		if req.StartDate != nil {
			base = *req.StartDate
		}
		t := time.Date(base.Year(), base.Month(), base.Day(), c.Hour(), c.Minute(), 0, 0, time.Local)
		req.StartTime = &t
		changed = true
	}
	if cmd.Flags().Changed("to") {
		c, err := parseClock(mustString(cmd, "to"))
		if err != nil {
			fmt.Printf("Error: invalid end time '%s'\n", mustString(cmd, "to"))
			return
		}
		base := time.UnixMilli(existing.EndDate)
		if req.EndDate != nil {
			base = *req.EndDate
		}
		t := time.Date(base.Year(), base.Month(), base.Day(), c.Hour(), c.Minute(), 0, 0, time.Local)
		req.EndTime = &t
		changed = true
	}
	if cmd.Flags().Changed("reminder") {
		v, _ := cmd.Flags().GetInt64("reminder")
		req.Reminder = &v
		changed = true
	}
	if cmd.Flags().Changed("repeat") {
		v, _ := cmd.Flags().GetInt64("repeat")
		req.Repetition = &v
		changed = true
	}

	if !changed {
		fmt.Println("Nothing to change. Pass at least one flag, see 'fitqii edit --help'.")
		return
	}

	updated, err := client.Update(ctx, id, req)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Printf("✅ Updated session #%d: %s\n", updated.ID, updated.Name)
}

func init() {
	editCmd.Flags().String("name", "", "New session name")
	editCmd.Flags().StringP("category", "c", "", "New category")
	editCmd.Flags().String("start", "", "New start date (YYYY-MM-DD)")
	editCmd.Flags().String("end", "", "New end date (YYYY-MM-DD)")
	editCmd.Flags().String("from", "", "New start time (HH:MM)")
	editCmd.Flags().String("to", "", "New end time (HH:MM)")
	editCmd.Flags().String("timezone", "", "New timezone label")
	editCmd.Flags().Int64("reminder", 0, "Seconds before start to remind")
	editCmd.Flags().Int64("repeat", 0, "Seconds between recurrences")
	editCmd.Flags().StringP("mode", "m", "", "Session mode: online or offline")
	editCmd.Flags().String("link", "", "Meeting link")
	editCmd.Flags().StringP("location", "l", "", "Location")
	editCmd.Flags().StringP("note", "n", "", "Description")
}
