package main

import (
	"bufio"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Messages produced by the recorder child process.
type (
	progressMsg struct {
		captured int
		expected int
		percent  float64
	}
	lineMsg string
	doneMsg struct{ err error }
)

// recorderProc runs the recorder binary and turns its stdout protocol into
// bubbletea messages.
type recorderProc struct {
	cmd  *exec.Cmd
	msgs chan tea.Msg
}

func startRecorder(bin string, interval, duration float64, output string, fps, camera int) (*recorderProc, error) {
	cmd := exec.Command(bin,
		"--interval", strconv.FormatFloat(interval, 'f', 2, 64),
		"--duration", strconv.FormatFloat(duration, 'f', 2, 64),
		"--output", output,
		"--fps", strconv.Itoa(fps),
		"--camera", strconv.Itoa(camera),
	)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, err
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	p := &recorderProc{cmd: cmd, msgs: make(chan tea.Msg, 64)}

	var wg sync.WaitGroup
	wg.Add(2)
	go p.scan(stdout, &wg)
	go p.scan(stderr, &wg)
	go func() {
		wg.Wait()
		p.msgs <- doneMsg{err: cmd.Wait()}
	}()

	return p, nil
}

func (p *recorderProc) scan(r io.Reader, wg *sync.WaitGroup) {
	defer wg.Done()
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if pr, ok := parseProgress(line); ok {
			p.msgs <- pr
			continue
		}
		p.msgs <- lineMsg(line)
	}
}

// next blocks for the recorder's next message; the update loop re-arms it
// after every message.
func (p *recorderProc) next() tea.Cmd {
	return func() tea.Msg { return <-p.msgs }
}

// interrupt asks the recorder to stop gracefully, the same as Ctrl+C on its
// terminal. The recorder finishes its compile phase before exiting.
func (p *recorderProc) interrupt() {
	if p.cmd != nil && p.cmd.Process != nil {
		_ = p.cmd.Process.Signal(os.Interrupt)
	}
}

// parseProgress decodes a "[PROGRESS] 5/120 (4.2%)" line.
func parseProgress(line string) (progressMsg, bool) {
	rest, ok := strings.CutPrefix(line, "[PROGRESS] ")
	if !ok {
		return progressMsg{}, false
	}

	fields := strings.Fields(rest)
	if len(fields) != 2 {
		return progressMsg{}, false
	}

	captured, expected, ok := parseCounts(fields[0])
	if !ok {
		return progressMsg{}, false
	}

	percentStr := strings.TrimSuffix(strings.TrimPrefix(fields[1], "("), "%)")
	percent, err := strconv.ParseFloat(percentStr, 64)
	if err != nil {
		return progressMsg{}, false
	}

	return progressMsg{captured: captured, expected: expected, percent: percent}, true
}

func parseCounts(s string) (captured, expected int, ok bool) {
	capStr, expStr, found := strings.Cut(s, "/")
	if !found {
		return 0, 0, false
	}
	captured, err := strconv.Atoi(capStr)
	if err != nil {
		return 0, 0, false
	}
	expected, err = strconv.Atoi(expStr)
	if err != nil {
		return 0, 0, false
	}
	return captured, expected, true
}
