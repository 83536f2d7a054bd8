package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/HERYORDEJY/FitQii/internal/query"
)

// RunList opens the interactive session browser. Today's bucket is kept
// fresh in the background for as long as the program runs.
func RunList(client *query.Client) error {
	token := client.SubscribeToday()
	defer client.Unsubscribe(token)

	p := tea.NewProgram(NewListModel(client), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
