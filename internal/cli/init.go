package cli

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sketchy/pkg/errors"
	"github.com/matzehuels/sketchy/pkg/scene"
)

const defaultScenePath = "scene.toml"

func (c *CLI) initCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write an example scene file",
		Long: `Write an example scene to path (default scene.toml). A .json path
writes JSON instead of TOML, and "-" prints the scene to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultScenePath
			if len(args) == 1 {
				path = args[0]
			}
			return writeExample(cmd, path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func writeExample(cmd *cobra.Command, path string, force bool) error {
	format := scene.FormatTOML
	if path != "-" {
		format = scene.FormatForPath(path)
	}

	var buf bytes.Buffer
	if err := scene.Example().Encode(&buf, format); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if path == "-" {
		_, err := out.Write(buf.Bytes())
		return err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New(errors.ErrCodeInvalidInput, "%s already exists (use --force to overwrite)", path)
		}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}

	printSuccess(out, "Created %s", StyleTitle.Render(path))
	printDetail(out, "sketchy render %s -f svg,png", path)
	return nil
}
