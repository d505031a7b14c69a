package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/rvanwijk/gridimg/internal/distance"
	"github.com/rvanwijk/gridimg/internal/grid"
	"github.com/rvanwijk/gridimg/internal/interop"
	"github.com/rvanwijk/gridimg/internal/morph"
	"github.com/rvanwijk/gridimg/internal/netpbm"
	"github.com/rvanwijk/gridimg/internal/spectral"
	"github.com/rvanwijk/gridimg/internal/view"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func usage() {
	fmt.Println("gridimg - netpbm image processing toolbox")
	fmt.Println()
	fmt.Println("Usage: gridimg [-fast] <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  info <file>                 Print dimensions, dynamic range and value extrema")
	fmt.Println("  convert <in> <out>          Convert between pbm/pgm (optionally .gz) and raster formats")
	fmt.Println("  hist <file>                 Print the grey value histogram")
	fmt.Println("  print <file>                Print pixel values as text")
	fmt.Println("  latex <file>                Print the image as a LaTeX table")
	fmt.Println("  dt <in> <out>               Distance transform (-metric, -foreground)")
	fmt.Println("  fft <in> <out>              Fourier spectrum magnitude view (-shift)")
	fmt.Println("  morph <in> <out>            Dilation or erosion (-op, -kw, -kh)")
	fmt.Println("  preview <in> <out.png>      Scaled PNG preview (-width)")
	fmt.Println("  view <in> <out-dir>         Write a display snapshot PNG")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -fast            Disable bounds checking and range clamping")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  GRIDIMG_LOG_LEVEL=debug    Enable debug logging")
}

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(0)

	args := os.Args[1:]
	if len(args) > 0 {
		switch args[0] {
		case "--version", "-v", "version":
			fmt.Printf("gridimg %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			usage()
			return
		case "-fast":
			grid.SetMode(grid.Fast)
			args = args[1:]
		}
	}
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	if os.Getenv("GRIDIMG_LOG_LEVEL") == "debug" {
		log.Printf("gridimg v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	cmd, args := args[0], args[1:]
	switch cmd {
	case "info":
		runInfo(args)
	case "convert":
		runConvert(args)
	case "hist":
		runHist(args)
	case "print":
		runPrint(args)
	case "latex":
		runLatex(args)
	case "dt":
		runDistance(args)
	case "fft":
		runFFT(args)
	case "morph":
		runMorph(args)
	case "preview":
		runPreview(args)
	case "view":
		runView(args)
	default:
		log.Printf("unknown command %q", cmd)
		usage()
		os.Exit(2)
	}
}

// loadGray reads pbm/pgm through the netpbm codec and any other
// extension through the raster decoders.
func loadGray(path string) (*grid.IntImage, error) {
	if isNetpbm(path) {
		return netpbm.Load(path)
	}
	return interop.OpenGray(path)
}

func isNetpbm(path string) bool {
	p := strings.ToLower(strings.TrimSuffix(path, ".gz"))
	return strings.HasSuffix(p, ".pbm") || strings.HasSuffix(p, ".pgm") || strings.HasSuffix(p, ".ppm")
}

func runInfo(args []string) {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		log.Fatalf("usage: gridimg info <file>")
	}
	path := fs.Arg(0)

	im, err := loadGray(path)
	if err != nil {
		log.Fatalf("info: %v", err)
	}
	d := im.Domain()
	lo, hi := im.MinMax()
	minR, maxR := im.DynamicRange()
	fmt.Printf("%s\n", path)
	fmt.Printf("  domain: [%d..%d] x [%d..%d] (%dx%d)\n", d.MinX, d.MaxX, d.MinY, d.MaxY, d.Width(), d.Height())
	fmt.Printf("  dynamic range: [%d,%d]\n", minR, maxR)
	fmt.Printf("  values: [%d,%d]\n", lo, hi)
}

func runConvert(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	ascii := fs.Bool("ascii", false, "write netpbm output in ascii encoding")
	fs.Parse(args)
	if fs.NArg() != 2 {
		log.Fatalf("usage: gridimg convert [-ascii] <in> <out>")
	}
	in, out := fs.Arg(0), fs.Arg(1)

	im, err := loadGray(in)
	if err != nil {
		log.Fatalf("convert: %v", err)
	}
	if isNetpbm(out) {
		if *ascii {
			err = netpbm.SaveAscii(im, out)
		} else {
			err = netpbm.Save(im, out)
		}
	} else {
		err = interop.SaveGrayImage(im, out)
	}
	if err != nil {
		log.Fatalf("convert: %v", err)
	}
}

func runHist(args []string) {
	fs := flag.NewFlagSet("hist", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		log.Fatalf("usage: gridimg hist <file>")
	}
	im, err := loadGray(fs.Arg(0))
	if err != nil {
		log.Fatalf("hist: %v", err)
	}
	if err := grid.NewHistogram(im).Fprint(os.Stdout); err != nil {
		log.Fatalf("hist: %v", err)
	}
}

func runPrint(args []string) {
	fs := flag.NewFlagSet("print", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		log.Fatalf("usage: gridimg print <file>")
	}
	im, err := loadGray(fs.Arg(0))
	if err != nil {
		log.Fatalf("print: %v", err)
	}
	if err := im.Fprint(os.Stdout); err != nil {
		log.Fatalf("print: %v", err)
	}
}

func runLatex(args []string) {
	fs := flag.NewFlagSet("latex", flag.ExitOnError)
	fs.Parse(args)
	if fs.NArg() != 1 {
		log.Fatalf("usage: gridimg latex <file>")
	}
	im, err := loadGray(fs.Arg(0))
	if err != nil {
		log.Fatalf("latex: %v", err)
	}
	if err := im.FprintLatex(os.Stdout); err != nil {
		log.Fatalf("latex: %v", err)
	}
}

func runDistance(args []string) {
	fs := flag.NewFlagSet("dt", flag.ExitOnError)
	metricName := fs.String("metric", "euclid", "metric: manhattan, chessboard, euclid or sqeuclid")
	foreground := fs.Int("foreground", 1, "pixel value treated as object")
	fs.Parse(args)
	if fs.NArg() != 2 {
		log.Fatalf("usage: gridimg dt [-metric m] [-foreground v] <in> <out>")
	}

	var metric distance.Metric
	switch *metricName {
	case "manhattan":
		metric = distance.Manhattan
	case "chessboard":
		metric = distance.Chessboard
	case "euclid":
		metric = distance.Euclid
	case "sqeuclid":
		metric = distance.SquaredEuclid
	default:
		log.Fatalf("dt: unknown metric %q", *metricName)
	}

	im, err := loadGray(fs.Arg(0))
	if err != nil {
		log.Fatalf("dt: %v", err)
	}
	dt := distance.Transform(im, metric, *foreground)
	if err := netpbm.Save(dt, fs.Arg(1)); err != nil {
		log.Fatalf("dt: %v", err)
	}
}

func runFFT(args []string) {
	fs := flag.NewFlagSet("fft", flag.ExitOnError)
	shift := fs.Bool("shift", true, "center the zero-frequency term")
	fs.Parse(args)
	if fs.NArg() != 2 {
		log.Fatalf("usage: gridimg fft [-shift] <in> <out>")
	}

	im, err := loadGray(fs.Arg(0))
	if err != nil {
		log.Fatalf("fft: %v", err)
	}
	ft := spectral.FFT(im)
	if *shift {
		spectral.Shift(ft)
	}
	if err := netpbm.Save(ft.RealImage(), fs.Arg(1)); err != nil {
		log.Fatalf("fft: %v", err)
	}
}

func runMorph(args []string) {
	fs := flag.NewFlagSet("morph", flag.ExitOnError)
	op := fs.String("op", "dilate", "operation: dilate or erode")
	kw := fs.Int("kw", 3, "structuring element width")
	kh := fs.Int("kh", 3, "structuring element height")
	fs.Parse(args)
	if fs.NArg() != 2 {
		log.Fatalf("usage: gridimg morph [-op dilate|erode] [-kw n] [-kh n] <in> <out>")
	}

	im, err := loadGray(fs.Arg(0))
	if err != nil {
		log.Fatalf("morph: %v", err)
	}
	var out *grid.IntImage
	switch *op {
	case "dilate":
		out = morph.Dilate(im, *kw, *kh)
	case "erode":
		out = morph.Erode(im, *kw, *kh)
	default:
		log.Fatalf("morph: unknown operation %q", *op)
	}
	if err := netpbm.Save(out, fs.Arg(1)); err != nil {
		log.Fatalf("morph: %v", err)
	}
}

func runPreview(args []string) {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	width := fs.Int("width", 512, "preview width in pixels")
	fs.Parse(args)
	if fs.NArg() != 2 {
		log.Fatalf("usage: gridimg preview [-width n] <in> <out.png>")
	}

	im, err := loadGray(fs.Arg(0))
	if err != nil {
		log.Fatalf("preview: %v", err)
	}
	if err := interop.SavePreview(im, fs.Arg(1), *width); err != nil {
		log.Fatalf("preview: %v", err)
	}
}

func runView(args []string) {
	fs := flag.NewFlagSet("view", flag.ExitOnError)
	title := fs.String("title", "", "snapshot title (defaults to the input name)")
	fs.Parse(args)
	if fs.NArg() != 2 {
		log.Fatalf("usage: gridimg view [-title t] <in> <out-dir>")
	}
	in, dir := fs.Arg(0), fs.Arg(1)

	im, err := loadGray(in)
	if err != nil {
		log.Fatalf("view: %v", err)
	}
	name := *title
	if name == "" {
		name = filepath.Base(strings.TrimSuffix(in, ".gz"))
		name = strings.TrimSuffix(name, filepath.Ext(name))
	}
	if err := view.DisplayGray(view.PNGPresenter{Dir: dir}, im, name); err != nil {
		log.Fatalf("view: %v", err)
	}
}
