package main

import (
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/codegangsta/cli"
	"github.com/disintegration/imaging"
	"github.com/lumascope/braillecam"
	"github.com/nfnt/resize"
	"golang.org/x/crypto/ssh/terminal"
)

func main() {
	app := cli.NewApp()
	app.Version = "0.1.0"
	app.Name = "braillecam"
	app.Usage = "Renders images and frame streams as live unicode braille art in the terminal."
	app.UsageText = "1) braillecam [options] [file|url]\n" +
		/*      */ "   2) braillecam [options] < [file]\n" +
		/*      */ "   3) braillecam --pattern [options]"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "algorithm,a",
			Usage: "`ALGORITHM` is one of: edge, atkinson, floyd_steinberg, bayer, blue_noise.",
			Value: "floyd_steinberg",
		},
		cli.IntFlag{
			Name:  "threshold,t",
			Usage: "`THRESHOLD` between 0 and 255 sets the binarization cutoff.",
			Value: 128,
		},
		cli.BoolFlag{
			Name:  "invert,i",
			Usage: "Inverts on/off dots.",
		},
		cli.StringFlag{
			Name:  "fit,f",
			Usage: "`FIT` = 80,25 fits the output to 80 columns and 25 lines. Defaults to the terminal size.",
		},
		cli.StringFlag{
			Name:  "capture",
			Usage: "`CAPTURE` strategy for streams: direct or pipelined.",
			Value: "pipelined",
		},
		cli.IntFlag{
			Name:  "warmup",
			Usage: "`WARMUP` frames are captured and discarded before rendering starts.",
			Value: 0,
		},
		cli.IntFlag{
			Name:  "fps",
			Usage: "`FPS` caps the stream render rate.",
			Value: 30,
		},
		cli.BoolFlag{
			Name:  "play,p",
			Usage: "Animates gifs in the terminal. CTRL-C to quit.",
		},
		cli.BoolFlag{
			Name:  "mjpeg",
			Usage: "Treats the input as a raw MJPEG stream.",
		},
		cli.BoolFlag{
			Name:  "pattern",
			Usage: "Renders a synthetic calibration pattern instead of reading input.",
		},
		cli.Float64Flag{
			Name:  "gamma,g",
			Usage: "`GAMMA` = 1.0 gives the original image. GAMMA less than 1.0 darkens the image and GAMMA greater than 1.0 lightens it.",
			Value: 1.0,
		},
		cli.Float64Flag{
			Name:  "brightness,b",
			Usage: "`BRIGHTNESS` = 0 gives the original image. BRIGHTNESS = -100 gives solid black image. BRIGHTNESS = 100 gives solid white image.",
			Value: 0.0,
		},
		cli.Float64Flag{
			Name:  "contrast,c",
			Usage: "`CONTRAST` = 0 gives the original image. CONTRAST = -100 gives solid grey image. CONTRAST = 100 gives maximum contrast.",
			Value: 0.0,
		},
		cli.Float64Flag{
			Name:  "sharpen,s",
			Usage: "`SHARPEN` = 0 gives the original image. SHARPEN greater than 0 sharpens the image.",
			Value: 0.0,
		},
	}
	app.Action = func(c *cli.Context) {
		conv, err := braillecam.NewConverter(c.String("algorithm"), braillecam.Config{
			Threshold: uint8(c.Int("threshold")),
			Invert:    c.Bool("invert"),
		})
		if err != nil {
			exit(err.Error(), 1)
		}
		cols, lines := fit(c)
		anim := braillecam.NewAnimator(os.Stdout, conv, braillecam.WithFPS(c.Int("fps")))

		if c.Bool("pattern") {
			src := braillecam.NewPatternSource(cols*2, lines*4, c.Int("fps"))
			animate(c, anim, src, cols, lines)
			return
		}

		reader := input(c)

		if c.Bool("mjpeg") {
			animate(c, anim, braillecam.NewMJPEGSource(reader), cols, lines)
			return
		}
		if c.Bool("play") {
			src, err := braillecam.NewGIFSource(reader)
			if err != nil {
				exit(err.Error(), 1)
			}
			animate(c, anim, src, cols, lines)
			return
		}

		// Encode a still image once.
		img, _, err := image.Decode(reader)
		if err != nil {
			exit(err.Error(), 1)
		}
		frame := braillecam.Grayscale(preprocess(c, img, cols, lines))
		if err := anim.Render(frame, cols, lines); err != nil {
			exit(err.Error(), 1)
		}
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func animate(c *cli.Context, anim *braillecam.Animator, src braillecam.FrameSource, cols, lines int) {
	if n := c.Int("warmup"); n > 0 {
		braillecam.Warmup(src, n)
	}
	var p braillecam.Pipeline
	switch c.String("capture") {
	case "direct":
		p = braillecam.NewDirect(src)
	case "pipelined":
		pipelined, err := braillecam.NewPipelined(src)
		if err != nil {
			exit(err.Error(), 1)
		}
		p = pipelined
	default:
		exit("capture option must be direct or pipelined", 1)
	}
	defer p.Close()
	if err := anim.Animate(p, cols, lines); err != nil {
		exit(err.Error(), 1)
	}
}

func input(c *cli.Context) io.Reader {
	// Try to parse the args, if there are any, as a file or url
	if arg := c.Args().First(); arg != "" {
		// Is it a file?
		if file, err := os.Open(arg); err == nil {
			return file
		}
		// Is it a url?
		resp, err := http.Get(arg)
		if err != nil {
			exit(err.Error(), 1)
		}
		return resp.Body
	}
	return os.Stdin
}

func fit(c *cli.Context) (cols, lines int) {
	if c.IsSet("fit") {
		parts := strings.Split(c.String("fit"), ",")
		if len(parts) != 2 {
			exit("fit option must be comma separated", 1)
		}
		cols, _ = strconv.Atoi(strings.Trim(parts[0], " "))
		lines, _ = strconv.Atoi(strings.Trim(parts[1], " "))
	}
	if cols == 0 && lines == 0 {
		var err error
		cols, lines, err = terminal.GetSize(int(os.Stdout.Fd()))
		if err != nil {
			cols, lines = 80, 25 // Small, but a pretty standard default
		}
		lines-- // Leave a line for the shell prompt
	}
	return cols, lines
}

// preprocess applies the image adjustment flags and caps very large
// stills before conversion. The converter's own sampling handles the
// final fit; the thumbnail pass just keeps error diffusion from
// chewing through megapixels it will never show.
func preprocess(c *cli.Context, img image.Image, cols, lines int) image.Image {
	maxW, maxH := uint(cols*2*4), uint(lines*4*4)
	img = resize.Thumbnail(maxW, maxH, img, resize.NearestNeighbor)

	if c.IsSet("gamma") {
		img = imaging.AdjustGamma(img, c.Float64("gamma"))
	}
	if c.IsSet("brightness") {
		img = imaging.AdjustBrightness(img, c.Float64("brightness"))
	}
	if c.IsSet("sharpen") {
		img = imaging.Sharpen(img, c.Float64("sharpen"))
	}
	if c.IsSet("contrast") {
		img = imaging.AdjustContrast(img, c.Float64("contrast"))
	}
	return img
}

func exit(msg string, code int) {
	fmt.Println(msg)
	os.Exit(code)
}
