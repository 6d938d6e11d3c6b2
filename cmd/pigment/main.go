package main

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"pigment/internal/export"
	"pigment/internal/gui"
	"pigment/pkg/editor"
)

func main() {
	if len(os.Args) < 2 {
		cmdGUI(nil)
		return
	}

	switch os.Args[1] {
	case "snapshot":
		cmdSnapshot(os.Args[2:])

	case "gui":
		cmdGUI(os.Args[2:])

	case "help", "-h", "--help":
		printUsage()

	default:
		if strings.HasPrefix(os.Args[1], "-") {
			cmdGUI(os.Args[1:])
		} else {
			fmt.Printf("Unknown command: %s\n", os.Args[1])
			printUsage()
			os.Exit(1)
		}
	}
}

func printUsage() {
	fmt.Println(`Pigment - a vector and raster paint program

Usage:
  pigment [command] [options]

Commands:
  gui [options]                Open the paint window (default)
    -w <pixels>                Canvas width (default: 800)
    -h <pixels>                Canvas height (default: 600)
    -v                         Verbose logging to stderr
  snapshot [options]           Write a blank canvas headlessly
    -o <output.png|.pdf>       Output file (default: canvas.png)
    -w <pixels>                Canvas width (default: 800)
    -h <pixels>                Canvas height (default: 600)

Examples:
  pigment
  pigment -w 1024 -h 768
  pigment snapshot -o blank.pdf -w 400 -h 300`)
}

// parseCanvasArgs reads the -w/-h/-v/-o options shared by the commands.
func parseCanvasArgs(args []string) (width, height int, verbose bool, output string) {
	width = editor.DefaultWidth
	height = editor.DefaultHeight

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-w":
			if i+1 < len(args) {
				width, _ = strconv.Atoi(args[i+1])
				i++
			}
		case "-h":
			if i+1 < len(args) {
				height, _ = strconv.Atoi(args[i+1])
				i++
			}
		case "-o":
			if i+1 < len(args) {
				output = args[i+1]
				i++
			}
		case "-v":
			verbose = true
		}
	}
	return width, height, verbose, output
}

func cmdGUI(args []string) {
	width, height, verbose, _ := parseCanvasArgs(args)

	if verbose {
		editor.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if width <= 0 || height <= 0 {
		fmt.Println("Canvas size must be positive")
		os.Exit(1)
	}

	ed := editor.New(width, height)
	gui.NewApp(ed).Run()
}

func cmdSnapshot(args []string) {
	width, height, _, output := parseCanvasArgs(args)
	if output == "" {
		output = "canvas.png"
	}
	if width <= 0 || height <= 0 {
		fmt.Println("Canvas size must be positive")
		os.Exit(1)
	}

	ed := editor.New(width, height)

	var err error
	var img image.Image = ed.Image()
	if strings.HasSuffix(strings.ToLower(output), ".pdf") {
		err = export.PDF(output, img)
	} else {
		err = export.PNG(output, img)
	}
	if err != nil {
		fmt.Printf("Error writing snapshot: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Saved %s (%dx%d pixels)\n", output, width, height)
}
