package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/kmmndr/rotation_speed/internal/config"
	"github.com/kmmndr/rotation_speed/internal/rotation"
	"github.com/kmmndr/rotation_speed/internal/tracking"
	"github.com/kmmndr/rotation_speed/internal/ui"
	"github.com/kmmndr/rotation_speed/internal/ui/native"
	"github.com/kmmndr/rotation_speed/internal/video"
)

func main() {
	var videoPath string
	var configPath string
	var printJSON bool
	var verbose bool

	flag.StringVar(&videoPath, "video", "", "Video file (a file dialog opens when empty)")
	flag.StringVar(&configPath, "config", "", "YAML config file")
	flag.BoolVar(&printJSON, "json", false, "print the report as JSON")
	flag.BoolVar(&verbose, "verbose", false, "log every tracked frame")
	flag.Parse()

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			log.Fatalf("Error: %v\n", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	report, err := run(ctx, cfg, ui.NewChooser(videoPath, native.NewDialogChooser()), verbose)
	stop()
	if err != nil {
		log.Fatalf("Error: %v\n", err)
	}

	if printJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		err = encoder.Encode(report)
	} else {
		err = report.Print(os.Stdout)
	}
	if err != nil {
		log.Fatalf("Error: unable to print report: %v\n", err)
	}
}

func run(ctx context.Context, cfg *config.Config, chooser ui.FileChooser, verbose bool) (*rotation.Report, error) {
	videoPath, err := chooser.Choose()
	if err != nil {
		return nil, err
	}

	stream, err := video.NewFileStream(videoPath)
	if err != nil {
		return nil, err
	}
	defer stream.Close()

	fps := stream.Fps()
	if fps <= 0 {
		return nil, video.ErrNoFps
	}
	log.Printf("Video frame rate: %.2f fps\n", fps)

	if count := stream.FrameCount(); count > 0 && cfg.Frames.End >= count {
		log.Printf("Warning: end frame %d is past the last frame of the video (%d)\n", cfg.Frames.End, count-1)
	}

	display := native.NewWindow("Tracking")
	defer display.Close()

	source, err := tracking.NewCamShiftSource(stream, native.NewWindowSelector(), display, tracking.NewOptions(cfg))
	if err != nil {
		return nil, err
	}
	defer source.Close()

	session := rotation.NewSession(cfg.Frames.Start, cfg.Frames.End)
	measurement, err := session.RunWithSamples(ctx, source, func(sample rotation.Sample, delta float64) {
		if verbose {
			log.Printf("Frame %d: angle %.2f, step %.2f degrees, window %v\n", sample.Frame, sample.Angle, delta, source.Window())
		}
	})
	if err != nil {
		return nil, err
	}

	return rotation.NewReport(videoPath, measurement, fps, cfg.Sensor.RadiusM)
}
