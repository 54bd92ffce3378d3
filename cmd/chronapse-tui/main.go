// Command chronapse-tui is an interactive front end for the chronapse
// recorder. It collects the recording parameters, launches the recorder
// binary, and renders its progress protocol as a live view. The recorder does
// all the work; this program only consumes its stdout lines.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const maxLogLines = 5

type screen int

const (
	screenMenu screen = iota
	screenRecording
	screenCompleted
	screenFailed
)

type model struct {
	screen     screen
	inputs     []textinput.Model
	focusIndex int
	spinner    spinner.Model

	recorderBin string
	fps         int
	camera      int

	proc      *recorderProc
	startTime time.Time
	progress  progressMsg
	logs      []string
	outcome   string
}

func newModel(recorderBin string, fps, camera int) model {
	m := model{
		recorderBin: recorderBin,
		fps:         fps,
		camera:      camera,
		inputs:      make([]textinput.Model, 3),
	}

	labels := []struct{ placeholder string }{
		{"5"}, {"60"}, {"timelapse.mp4"},
	}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = labels[i].placeholder
		in.CharLimit = 256
		in.Width = 30
		in.Prompt = "│ "
		m.inputs[i] = in
	}
	m.inputs[0].Focus()
	m.inputs[0].PromptStyle = focusedStyle
	m.inputs[0].TextStyle = focusedStyle

	m.spinner = spinner.New()
	m.spinner.Spinner = spinner.Dot
	m.spinner.Style = spinnerStyle

	return m
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.screen {
		case screenMenu:
			return m.updateMenu(msg)
		case screenRecording:
			if msg.String() == "q" || msg.String() == "ctrl+c" {
				m.proc.interrupt()
			}
			return m, nil
		default:
			if msg.String() == "q" || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			return m, nil
		}

	case progressMsg:
		m.progress = msg
		return m, m.proc.next()

	case lineMsg:
		m.logs = append(m.logs, string(msg))
		if len(m.logs) > maxLogLines {
			m.logs = m.logs[len(m.logs)-maxLogLines:]
		}
		return m, m.proc.next()

	case doneMsg:
		if msg.err != nil {
			m.screen = screenFailed
			m.outcome = fmt.Sprintf("Recording failed: %v", msg.err)
		} else {
			m.screen = screenCompleted
			m.outcome = fmt.Sprintf("Timelapse saved to: %s", m.outputPath())
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "enter":
		return m.startRecording()

	case "tab", "down":
		return m.moveFocus(1)

	case "shift+tab", "up":
		return m.moveFocus(-1)
	}

	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	m.focusIndex = (m.focusIndex + delta + len(m.inputs)) % len(m.inputs)

	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		if i == m.focusIndex {
			cmds[i] = m.inputs[i].Focus()
			m.inputs[i].PromptStyle = focusedStyle
			m.inputs[i].TextStyle = focusedStyle
		} else {
			m.inputs[i].Blur()
			m.inputs[i].PromptStyle = blurredStyle
			m.inputs[i].TextStyle = blurredStyle
		}
	}
	return m, tea.Batch(cmds...)
}

func (m model) startRecording() (tea.Model, tea.Cmd) {
	interval, err := inputFloat(m.inputs[0], 5)
	if err != nil || interval <= 0 {
		m.screen = screenFailed
		m.outcome = "Invalid interval value"
		return m, nil
	}
	duration, err := inputFloat(m.inputs[1], 60)
	if err != nil || duration <= 0 {
		m.screen = screenFailed
		m.outcome = "Invalid duration value (use seconds)"
		return m, nil
	}

	proc, err := startRecorder(m.recorderBin, interval, duration, m.outputPath(), m.fps, m.camera)
	if err != nil {
		m.screen = screenFailed
		m.outcome = fmt.Sprintf("Failed to start recorder: %v", err)
		return m, nil
	}

	m.proc = proc
	m.screen = screenRecording
	m.startTime = time.Now()
	m.progress = progressMsg{}
	m.logs = nil

	return m, tea.Batch(m.spinner.Tick, proc.next())
}

func (m model) outputPath() string {
	if v := m.inputs[2].Value(); v != "" {
		return v
	}
	return "timelapse.mp4"
}

func inputFloat(in textinput.Model, fallback float64) (float64, error) {
	v := in.Value()
	if v == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(v, 64)
}

func main() {
	recorderBin := flag.String("recorder", "chronapse", "path to the recorder binary")
	fps := flag.Int("fps", 30, "output video frames per second")
	camera := flag.Int("camera", 0, "camera device index")
	flag.Parse()

	p := tea.NewProgram(newModel(*recorderBin, *fps, *camera))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "chronapse-tui: %v\n", err)
		os.Exit(1)
	}
}
