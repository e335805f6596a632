package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sketchy/pkg/errors"
	"github.com/matzehuels/sketchy/pkg/pipeline"
	"github.com/matzehuels/sketchy/pkg/rough"
	"github.com/matzehuels/sketchy/pkg/scene"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output       string   // output file (single format) or base path (several)
	formats      []string // svg, png, json
	inputFormat  string   // toml or json, for stdin
	scale        float64  // PNG pixel density
	noIndicators bool     // hide builder handles
	noCache      bool
	refresh      bool

	seed         uint64
	singleStroke bool
	roughness    float64
	fillStyle    string
}

func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "render [scene]",
		Short: "Render a scene file to SVG, PNG or JSON",
		Long: `Render a scene file. Use "-" to read the scene from stdin.

Style flags override the scene's [options] table; shapes with their own
options keep them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := errors.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], &opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (several formats)")
	f.StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	f.StringVar(&opts.inputFormat, "input-format", "", "scene format when reading stdin: toml (default) or json")
	f.Float64Var(&opts.scale, "scale", opts.scale, "PNG pixel density")
	f.BoolVar(&opts.noIndicators, "no-indicators", false, "hide builder position and vector handles")
	f.BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	f.BoolVar(&opts.refresh, "refresh", false, "re-render even when a cached artifact exists")
	f.Uint64Var(&opts.seed, "seed", 0, "override the scene seed")
	f.BoolVar(&opts.singleStroke, "single-stroke", false, "draw one pass per outline instead of two")
	f.Float64Var(&opts.roughness, "roughness", 0, "override the scene roughness")
	f.StringVar(&opts.fillStyle, "fill-style", "", "override the fill style: hachure, cross-hatch, solid")

	return cmd
}

// styleOverrides turns the flags the user actually set into a scene style.
func (opts *renderOpts) styleOverrides(cmd *cobra.Command) (*scene.Style, error) {
	var st scene.Style
	f := cmd.Flags()
	changed := false
	if f.Changed("seed") {
		seed := opts.seed
		st.Seed, changed = &seed, true
	}
	if f.Changed("single-stroke") {
		single := opts.singleStroke
		st.DisableMultistroke, changed = &single, true
	}
	if f.Changed("roughness") {
		r := opts.roughness
		st.Roughness, changed = &r, true
	}
	if opts.fillStyle != "" {
		if !rough.FillStyle(opts.fillStyle).Valid() {
			return nil, errors.New(errors.ErrCodeInvalidOptions, "unknown fill style %q", opts.fillStyle)
		}
		st.FillStyle, changed = opts.fillStyle, true
	}
	if !changed {
		return nil, nil
	}
	return &st, nil
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	out := cmd.OutOrStdout()

	s, err := readScene(cmd.InOrStdin(), input, opts.inputFormat)
	if err != nil {
		return err
	}
	over, err := opts.styleOverrides(cmd)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	res, err := runner.Render(ctx, s, pipeline.Options{
		Formats:        opts.formats,
		Scale:          opts.scale,
		HideIndicators: opts.noIndicators,
		Style:          over,
		Refresh:        opts.refresh,
	})
	if err != nil {
		return err
	}

	paths := outputPaths(opts.output, input, opts.formats)
	for _, format := range opts.formats {
		if err := writeOutput(out, paths[format], res.Artifacts[format]); err != nil {
			return err
		}
	}
	prog.done(fmt.Sprintf("Rendered %d format(s)", len(opts.formats)))

	if paths[opts.formats[0]] == "-" {
		return nil
	}
	printSuccess(out, "Rendered %s", StyleTitle.Render(sceneName(input)))
	printStats(out, res.Stats.Shapes, res.Stats.Builders, res.CacheInfo.AllHit(opts.formats))
	if !res.Reproducible {
		printWarning(out, "scene has no seed; output changes on every run and is not cached")
	}
	for _, format := range opts.formats {
		printFile(out, paths[format])
	}
	return nil
}

func readScene(stdin io.Reader, input, format string) (*scene.Scene, error) {
	if input == "-" {
		return scene.Read(stdin, format)
	}
	return scene.Load(input)
}

// outputPaths maps each format to its destination. A single format goes to
// output verbatim ("-" is stdout). Several formats share a base path derived
// from output, or from the input file when output is empty.
func outputPaths(output, input string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	base := basePath(output, input)
	for _, f := range formats {
		if base == "-" {
			paths[f] = "-"
			continue
		}
		paths[f] = base + "." + f
	}
	return paths
}

// basePath strips a known format extension from output, or the scene
// extension from input when output is empty. Stdin scenes render to
// "sketch" in the working directory.
func basePath(output, input string) string {
	if output != "" {
		ext := filepath.Ext(output)
		if slices.Contains(errors.Formats, strings.TrimPrefix(ext, ".")) {
			return strings.TrimSuffix(output, ext)
		}
		return output
	}
	if input == "-" {
		return "sketch"
	}
	return strings.TrimSuffix(input, filepath.Ext(input))
}

func sceneName(input string) string {
	if input == "-" {
		return "stdin"
	}
	return filepath.Base(input)
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "-" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}
