package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			MarginBottom(1)

	focusedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true)

	blurredStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D7D7D"))

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4"))

	progressStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5555")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	logStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			MarginTop(1)
)

const progressBarWidth = 40

func (m model) View() string {
	switch m.screen {
	case screenMenu:
		return m.viewMenu()
	case screenRecording:
		return m.viewRecording()
	case screenCompleted:
		return m.viewOutcome(successStyle.Render(m.outcome))
	case screenFailed:
		return m.viewOutcome(errorStyle.Render(m.outcome))
	}
	return ""
}

func (m model) viewMenu() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("⏱  Chronapse Timelapse Recorder"))
	b.WriteString("\n\n")

	labels := []string{"Interval (seconds):", "Duration (seconds):", "Output file:"}
	for i, label := range labels {
		if i == m.focusIndex {
			b.WriteString(focusedStyle.Render("▸ " + label))
		} else {
			b.WriteString(blurredStyle.Render("  " + label))
		}
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("Tab: next • Enter: start • Esc: quit"))
	return "\n" + b.String() + "\n"
}

func (m model) viewRecording() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("⏱  Recording in Progress"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s Recording...\n\n", m.spinner.View()))

	if m.progress.expected > 0 {
		filled := int(float64(progressBarWidth) * m.progress.percent / 100)
		if filled > progressBarWidth {
			filled = progressBarWidth
		}
		bar := strings.Repeat("█", filled) + strings.Repeat("░", progressBarWidth-filled)

		b.WriteString(progressStyle.Render(fmt.Sprintf("Progress: [%s] %.1f%%", bar, m.progress.percent)))
		b.WriteString("\n")
		b.WriteString(progressStyle.Render(fmt.Sprintf("Frames:   %d / %d", m.progress.captured, m.progress.expected)))
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("\nElapsed:  %s\n", time.Since(m.startTime).Round(time.Second)))

	if len(m.logs) > 0 {
		b.WriteString("\n" + logStyle.Render("Recent activity:") + "\n")
		for _, line := range m.logs {
			if len(line) > 80 {
				line = line[:77] + "..."
			}
			b.WriteString(logStyle.Render("  "+line) + "\n")
		}
	}

	b.WriteString(helpStyle.Render("Press 'q' to stop recording"))
	return "\n" + b.String() + "\n"
}

func (m model) viewOutcome(message string) string {
	var b strings.Builder

	if m.screen == screenCompleted {
		b.WriteString(titleStyle.Render("✓ Recording Complete"))
	} else {
		b.WriteString(titleStyle.Render("✗ Recording Failed"))
	}
	b.WriteString("\n\n")
	b.WriteString(message)
	b.WriteString("\n")

	if !m.startTime.IsZero() {
		b.WriteString(fmt.Sprintf("\nTotal time: %s\n", time.Since(m.startTime).Round(time.Second)))
	}
	if m.progress.captured > 0 {
		b.WriteString(fmt.Sprintf("Frames captured: %d\n", m.progress.captured))
	}

	b.WriteString(helpStyle.Render("Press 'q' to quit"))
	return "\n" + b.String() + "\n"
}
