package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/HERYORDEJY/FitQii/internal/db"
	"github.com/HERYORDEJY/FitQii/internal/models"
)

// transitionTo moves a session into the given status through the optimistic
// update path; the repository validates the transition.
func transitionTo(id uint, status models.Status) (*models.Session, error) {
	return client.UpdateOptimistic(context.Background(), id, db.UpdateSessionRequest{
		Status: &status,
	})
}

var startCmd = &cobra.Command{
	Use:   "start [session-id]",
	Short: "Mark a session as active",
	Args:  cobra.ExactArgs(1),
	Run: withServices(func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		session, err := transitionTo(id, models.StatusActive)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("▶️  Session #%d is now active: %s\n", session.ID, session.Name)
	}),
}

var doneCmd = &cobra.Command{
	Use:   "done [session-id]",
	Short: "Mark a session as completed",
	Args:  cobra.ExactArgs(1),
	Run: withServices(func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		session, err := transitionTo(id, models.StatusCompleted)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Completed session #%d: %s\n", session.ID, session.Name)
		if session.StatusAt != nil {
			fmt.Printf("Completed at: %s\n", time.UnixMilli(*session.StatusAt).Format("15:04:05"))
		}
	}),
}

var cancelCmd = &cobra.Command{
	Use:   "cancel [session-id]",
	Short: "Cancel a session",
	Args:  cobra.ExactArgs(1),
	Run: withServices(func(cmd *cobra.Command, args []string) {
		id, err := parseID(args[0])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		session, err := transitionTo(id, models.StatusCancelled)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🚫 Cancelled session #%d: %s\n", session.ID, session.Name)
	}),
}
