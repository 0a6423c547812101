/*
NAME
  main.go

DESCRIPTION
  vibra reads frames from a video file, RTSP stream or webcam, runs
  them through the micro-vibration detection chain, and displays the
  classified output in a debug window until the quit key is pressed.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// vibra is a command-line tool that runs the micro-vibration detection
// chain over a video source and displays the result.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/utils/logging"

	"github.com/ausocean/vibra/capture"
	"github.com/ausocean/vibra/chain"
	"github.com/ausocean/vibra/colorbounds"
	"github.com/ausocean/vibra/config"
	"github.com/ausocean/vibra/display"
	"github.com/ausocean/vibra/pipeline"
)

// Current software version.
const version = "v0.1.0"

// Logging configuration.
const (
	logPath      = "/var/log/vibra/vibra.log"
	logMaxSize   = 100 // MB
	logMaxBackup = 5
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
	logSuppress  = true
)

const pkg = "vibra: "

func main() {
	showVersion := flag.Bool("version", false, "show version")
	address := flag.String("address", "0", "video source address: file path, RTSP URL, or webcam device index")
	kindFlag := flag.String("kind", "webcam", "source kind: file, rtsp or webcam")
	framesCount := flag.Int("frames", config.DefaultFramesCount, "sliding window length")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	log := logging.New(logVerbosity, io.MultiWriter(fileLog, os.Stderr), logSuppress)
	log.Info(pkg+"starting vibra", "version", version)

	kind, err := parseKind(*kindFlag)
	if err != nil {
		log.Fatal(pkg+"bad source kind", "error", err.Error())
	}

	src := capture.NewGoCVSource()
	if err := src.Open(*address, kind); err != nil {
		log.Fatal(pkg+"could not open video source", "error", err.Error())
	}
	defer src.Close()

	win := display.NewGoCVWindow("vibra")
	defer win.Close()

	settings := config.New(
		config.WithLogger(log),
		config.WithFramesCount(*framesCount),
	)
	c := chain.New(colorbounds.Default(), settings)
	defer c.Close()

	framesSeen := 0
	for {
		f, err := src.ReadFrame()
		if err != nil {
			log.Info(pkg+"end of stream", "error", err.Error())
			break
		}

		c.RunChain(f).
			Grayscale().
			Canny().
			AppendFrame()
		if settings.IsReducedAbs {
			c.ReduceAbs()
		} else {
			c.AbsRecursively()
		}
		c.Vibrating().Statistic()
		framesSeen++

		if d, ok := c.GetDispersion(); ok {
			log.Info(pkg+"dispersion", "ch1", d.Ch1, "ch2", d.Ch2, "ch3", d.Ch3, "ch4", d.Ch4)
		}

		result, err := c.GetResult()
		if err != nil {
			if pipeline.IsWarmUp(err, framesSeen, settings.FramesCount) {
				continue
			}
			log.Error(pkg+"chain stage failed", "error", err.Error())
			continue
		}

		win.Show(result)
		result.Close()

		if win.WaitEvent(10) == display.CloseApplication {
			log.Info(pkg + "quit key pressed")
			break
		}
	}
}

func parseKind(s string) (capture.Kind, error) {
	switch s {
	case "file":
		return capture.VideoFile, nil
	case "rtsp":
		return capture.RtspStream, nil
	case "webcam":
		return capture.WebCamera, nil
	default:
		return 0, fmt.Errorf("unrecognised source kind %q", s)
	}
}
