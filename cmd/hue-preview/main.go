package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/kmmndr/rotation_speed/internal/config"
	"github.com/kmmndr/rotation_speed/internal/frame"
	"github.com/kmmndr/rotation_speed/internal/rotation"
	"github.com/kmmndr/rotation_speed/internal/tracking"
	"github.com/kmmndr/rotation_speed/internal/ui/native"
	"github.com/kmmndr/rotation_speed/internal/video"

	"gocv.io/x/gocv"
)

// hue-preview shows the HSV mask and the back-projection of the start frame
// so the mask bounds of a config file can be tuned before tracking.
func main() {
	var videoPath string
	var configPath string

	flag.StringVar(&videoPath, "video", "", "Video filename")
	flag.StringVar(&configPath, "config", "", "YAML config file")
	flag.Parse()

	if videoPath == "" {
		fmt.Println("Error: missing video filename option")
		os.Exit(1)
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			log.Fatalf("Error: %v\n", err)
		}
	}
	opts := tracking.NewOptions(cfg)

	stream, err := video.NewFileStream(videoPath)
	if err != nil {
		log.Fatalf("Error: %v\n", err)
	}
	defer stream.Close()

	start, err := stream.ReadAt(opts.StartFrame)
	if err != nil {
		log.Fatalf("Error: %v\n", err)
	}
	defer start.Close()
	fmt.Printf("Start frame %d at: %.2f seconds.\n", start.FrameIndex(), stream.TimeAtFrame(start))

	roi := native.NewWindowSelector().SelectROI(*start.Mat())
	window, err := rotation.ExpandWindow(roi, opts.ROIExpand, start.Bounds())
	if err != nil {
		log.Fatalf("Error: %v\n", err)
	}
	fmt.Printf("Tracking window: %v\n", window)

	hsv, err := start.HSV()
	if err != nil {
		log.Fatalf("Error: %v\n", err)
	}
	defer hsv.Close()

	model, err := frame.NewHueHistogram(hsv, window, opts.MaskLower, opts.MaskUpper, opts.HistBins, opts.HueMax)
	if err != nil {
		log.Fatalf("Error: %v\n", err)
	}
	defer model.Close()

	mask := model.Mask(hsv)
	defer mask.Close()
	fmt.Printf("Pixels inside the mask: %d of %d\n", gocv.CountNonZero(mask), start.Width()*start.Height())

	backProj := gocv.NewMat()
	defer backProj.Close()
	model.BackProject(hsv, &backProj)

	maskWindow := native.NewWindow("Mask")
	defer maskWindow.Close()
	backProjWindow := native.NewWindow("Back-projection")
	defer backProjWindow.Close()

	maskWindow.Show(mask)
	backProjWindow.Show(backProj)
	backProjWindow.WaitKey(0)
}
