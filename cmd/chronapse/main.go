// Command chronapse records a webcam timelapse: frames are captured at a
// fixed interval for a bounded duration, then compiled into a video with
// ffmpeg. Status is reported on stdout as [INFO]/[ERROR]/[SUCCESS]/[PROGRESS]
// lines so external monitors can follow along.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chronapse.app/chronapse/capture"
	"chronapse.app/chronapse/chronapse"
	"chronapse.app/chronapse/compile"
	"chronapse.app/chronapse/internal/notify"
	"chronapse.app/chronapse/internal/report"
	"chronapse.app/chronapse/store"
)

// The frame directory is a transient working area next to the process; the
// only durable artifact is the compiled video.
const framesDir = "frames"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("chronapse", flag.ExitOnError)
	interval := fs.Float64("interval", 0, "seconds between frame captures")
	duration := fs.Float64("duration", 0, "total recording duration in seconds")
	output := fs.String("output", "", "output video file path")
	fps := fs.Int("fps", 30, "output video frames per second")
	camera := fs.Int("camera", 0, "camera device index")
	desktopNotify := fs.Bool("notify", false, "send a desktop notification when the run finishes")
	_ = fs.Parse(args)

	rep := report.NewConsole(os.Stdout)
	rep.Infof("Chronapse timelapse recorder started at %s", time.Now().Format(time.RFC1123))

	cfg := chronapse.Config{
		Interval:   time.Duration(*interval * float64(time.Second)),
		Duration:   time.Duration(*duration * float64(time.Second)),
		OutputPath: *output,
		FrameRate:  *fps,
		Device:     *camera,
	}

	session, err := chronapse.New(cfg, &chronapse.Options{
		OpenSource: func() (chronapse.FrameSource, error) {
			return capture.Open(&capture.Options{Device: cfg.Device})
		},
		Store:    store.New(framesDir),
		Compiler: ffmpegCompiler{},
		Reporter: rep,
	})
	if err != nil {
		rep.Errorf("%v", err)
		return 1
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		rep.Infof("Received stop signal. Finishing recording...")
		session.RequestStop()
	}()

	runErr := session.Run()
	code := 0
	if runErr != nil {
		code = 1
	}

	if *desktopNotify {
		_ = notify.Send("Chronapse", outcomeText(runErr, cfg, session))
	}

	rep.Infof("Chronapse finished with exit code %d", code)
	return code
}

func outcomeText(runErr error, cfg chronapse.Config, s *chronapse.Session) string {
	if runErr != nil {
		return fmt.Sprintf("Recording failed: %v", runErr)
	}
	return fmt.Sprintf("Timelapse saved to %s (%d frames)", cfg.OutputPath, s.FramesCaptured())
}

// ffmpegCompiler adapts the compile package to the session's Compiler
// interface.
type ffmpegCompiler struct{}

func (ffmpegCompiler) Compile(pattern string, frameRate int, outputPath string) error {
	return compile.Run(&compile.Options{
		Pattern:    pattern,
		FrameRate:  frameRate,
		OutputPath: outputPath,
	})
}
