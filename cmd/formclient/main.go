package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"go-studio-backend/internal/tui"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "base URL of the studio backend")
	flag.Parse()

	app := tui.NewAppModel(strings.TrimRight(*baseURL, "/"))

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running form client: %v\n", err)
		os.Exit(1)
	}
}
