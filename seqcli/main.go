// Package seqcli implements the seqdiag command.
package seqcli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"cdr.dev/slog"
	"github.com/spf13/pflag"

	"oss.terrastruct.com/seqdiag/lib/log"
	"oss.terrastruct.com/seqdiag/lib/textmeasure"
	timelib "oss.terrastruct.com/seqdiag/lib/time"
	"oss.terrastruct.com/seqdiag/lib/version"
	"oss.terrastruct.com/seqdiag/lib/xbrowser"
	"oss.terrastruct.com/seqdiag/lib/xmain"
	"oss.terrastruct.com/seqdiag/seqlib"
	"oss.terrastruct.com/seqdiag/seqrenderers/seqsvg"
)

func Run(ctx context.Context, ms *xmain.State) (err error) {
	watchFlag, err := ms.Opts.Bool("SEQDIAG_WATCH", "watch", "w", false, "watch for changes to input and live reload. Use $HOST and $PORT to specify the listening address.\n(default localhost:0, which will open on a randomly available local port).")
	if err != nil {
		return err
	}
	hostFlag := ms.Opts.String("HOST", "host", "", "localhost", "host listening address when used with watch")
	portFlag := ms.Opts.String("PORT", "port", "p", "0", "port listening address when used with watch")
	openFlag, err := ms.Opts.Bool("SEQDIAG_OPEN", "open", "o", false, "open the rendered diagram in the browser. Watch mode always opens the live view.")
	if err != nil {
		return err
	}
	browserFlag := ms.Opts.String("BROWSER", "browser", "", "", "browser executable that watch and open use. Setting to 0 opens no browser.")
	bundleFlag, err := ms.Opts.Bool("SEQDIAG_BUNDLE", "bundle", "b", true, "embed the font text was measured with into the output SVG")
	if err != nil {
		return err
	}
	padFlag, err := ms.Opts.Int64("SEQDIAG_PAD", "pad", "", seqsvg.DEFAULT_PADDING, "pixels padded around the rendered diagram")
	if err != nil {
		return err
	}
	scaleFlag, err := ms.Opts.Float64("SCALE", "scale", "", -1, "scale the output. E.g., 0.5 to halve the default size. A non-positive scale renders at the default size.")
	if err != nil {
		return err
	}
	fgFlag := ms.Opts.String("SEQDIAG_FG", "fg", "", seqsvg.DEFAULT_FOREGROUND, "foreground color of lines and text. Any CSS color.")
	bgFlag := ms.Opts.String("SEQDIAG_BG", "bg", "", seqsvg.DEFAULT_BACKGROUND, `background color of boxes and the canvas. Any CSS color, or "none" for a transparent canvas.`)
	timeoutFlag, err := ms.Opts.Int64("SEQDIAG_TIMEOUT", "timeout", "", 120, "the maximum number of seconds that seqdiag runs for before timing out and exiting")
	if err != nil {
		return err
	}
	debugFlag, err := ms.Opts.Bool("DEBUG", "debug", "d", false, "print debug logs.")
	if err != nil {
		ms.Log.Warn.Printf("Invalid DEBUG flag value ignored")
		debugFlag = new(bool)
	}
	versionFlag, err := ms.Opts.Bool("", "version", "v", false, "get the version")
	if err != nil {
		return err
	}

	err = ms.Opts.Flags.Parse(ms.Opts.Args)
	if !errors.Is(err, pflag.ErrHelp) && err != nil {
		return xmain.UsageErrorf("failed to parse flags: %v", err)
	}
	if errors.Is(err, pflag.ErrHelp) {
		help(ms)
		return nil
	}

	if *debugFlag {
		ms.Env.Setenv("DEBUG", "1")
		ctx = log.Leveled(ctx, slog.LevelDebug)
	}
	if *browserFlag != "" {
		ms.Env.Setenv("BROWSER", *browserFlag)
	}

	args := ms.Opts.Flags.Args()
	if len(args) > 0 && args[0] == "version" {
		if len(args) > 1 {
			return xmain.UsageErrorf("version subcommand accepts no arguments")
		}
		fmt.Fprintf(ms.Stdout, "%s\n", version.Version)
		return nil
	}
	if *versionFlag {
		fmt.Fprintf(ms.Stdout, "%s\n", version.Version)
		return nil
	}
	if len(args) == 0 {
		help(ms)
		return nil
	}
	if len(args) > 2 {
		return xmain.UsageErrorf("too many arguments passed")
	}

	inputPath := args[0]
	var outputPath string
	if len(args) == 2 {
		outputPath = args[1]
	} else if inputPath == "-" {
		outputPath = "-"
	} else {
		outputPath = renameExt(inputPath, ".svg")
	}

	renderOpts := &seqsvg.RenderOpts{
		Pad:        padFlag,
		Scale:      scaleFlag,
		Foreground: *fgFlag,
		Background: *bgFlag,
		Bundle:     *bundleFlag,
	}
	// Rejects bad colors before anything is read or served.
	_, err = seqsvg.NewRenderer(nil, renderOpts)
	if err != nil {
		return xmain.UsageErrorf("%v", err)
	}

	ruler, err := textmeasure.NewRuler()
	if err != nil {
		return err
	}
	c := &compiler{
		ms:         ms,
		ruler:      ruler,
		renderOpts: renderOpts,
		inputPath:  inputPath,
		outputPath: outputPath,
	}

	if *watchFlag {
		if inputPath == "-" {
			return xmain.UsageErrorf("-w[atch] cannot be combined with reading input from stdin")
		}
		if outputPath == "-" {
			return xmain.UsageErrorf("-w[atch] cannot be combined with writing output to stdout")
		}
		ms.Env.Setenv("LOG_TIMESTAMPS", "1")
		w, err := newWatcher(ctx, ms, watcherOpts{
			compiler: c,
			host:     *hostFlag,
			port:     *portFlag,
		})
		if err != nil {
			return err
		}
		return w.run()
	}

	ctx, cancel := timelib.WithTimeout(ctx, time.Second*time.Duration(*timeoutFlag))
	defer cancel()

	start := time.Now()
	_, err = c.compile(ctx)
	if err != nil {
		return err
	}
	ms.Log.Success.Printf("successfully compiled %s to %s in %s", inputPath, outputPath, time.Since(start).Round(time.Millisecond))

	if *openFlag && outputPath != "-" {
		abs, err := filepath.Abs(outputPath)
		if err != nil {
			return err
		}
		url := "file://" + filepath.ToSlash(abs)
		err = xbrowser.OpenURL(ctx, ms.Env, url)
		if err != nil {
			ms.Log.Warn.Printf("failed to open browser to %v: %v", url, err)
		}
	}
	return nil
}

type compiler struct {
	ms         *xmain.State
	ruler      *textmeasure.Ruler
	renderOpts *seqsvg.RenderOpts
	inputPath  string
	outputPath string
}

// compile renders the input to the output and returns the SVG.
func (c *compiler) compile(ctx context.Context) ([]byte, error) {
	input, err := c.ms.ReadPath(c.inputPath)
	if err != nil {
		return nil, err
	}

	_, svg, err := seqlib.Compile(ctx, input, &seqlib.CompileOptions{
		Path:       c.inputPath,
		Ruler:      c.ruler,
		RenderOpts: c.renderOpts,
	})
	if err != nil {
		return nil, err
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	err = c.ms.WritePath(c.outputPath, svg)
	if err != nil {
		return nil, err
	}
	return svg, nil
}

// newExt must include leading .
func renameExt(fp string, newExt string) string {
	ext := filepath.Ext(fp)
	if ext == "" {
		return fp + newExt
	}
	return strings.TrimSuffix(fp, ext) + newExt
}
