package commands

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/quill/pkg/errors"
	"github.com/arthur-debert/quill/pkg/logging"
	"github.com/arthur-debert/quill/pkg/model"
	"github.com/arthur-debert/quill/pkg/printer"
	"github.com/arthur-debert/quill/pkg/style"
)

type renderFlags struct {
	format   string
	width    int
	indent   int
	expand   bool
	raw      bool
	color    string
	annotate bool
	output   string
}

func newRenderCmd(a *app) *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:     "render [files...]",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			defer logging.LogDuration(time.Now(), "render")
			return runRender(a, cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "", MsgFlagFormat)
	cmd.Flags().IntVarP(&flags.width, "width", "w", printer.DefaultBreakLimit, MsgFlagWidth)
	cmd.Flags().IntVar(&flags.indent, "indent", printer.DefaultIndentSize, MsgFlagIndent)
	cmd.Flags().BoolVarP(&flags.expand, "expand", "e", false, MsgFlagExpand)
	cmd.Flags().BoolVar(&flags.raw, "raw", false, MsgFlagRaw)
	cmd.Flags().StringVar(&flags.color, "color", "", MsgFlagColor)
	cmd.Flags().BoolVarP(&flags.annotate, "annotate", "a", false, MsgFlagAnnotate)
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", MsgFlagOutput)

	return cmd
}

func runRender(a *app, cmd *cobra.Command, args []string, flags renderFlags) error {
	logger := logging.GetLogger("cmd.render")
	cfg := a.cfg.Render

	// Flags override config, config overrides defaults.
	width := cfg.Width
	if cmd.Flags().Changed("width") {
		width = flags.width
	}
	expand := cfg.Expand || flags.expand
	if expand {
		width = 0
	}
	indent := cfg.Indent
	if cmd.Flags().Changed("indent") {
		indent = flags.indent
	}
	raw := cfg.Raw
	if cmd.Flags().Changed("raw") {
		raw = flags.raw
	}
	annotate := cfg.Annotate
	if cmd.Flags().Changed("annotate") {
		annotate = flags.annotate
	}
	colorStr := cfg.Color
	if cmd.Flags().Changed("color") {
		colorStr = flags.color
	}
	mode, err := style.ParseColorMode(colorStr)
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	colorTarget := os.Stdout
	if flags.output != "" {
		f, err := os.Create(flags.output)
		if err != nil {
			return errors.Wrapf(err, errors.ErrSinkWrite, "failed to create output file %s", flags.output)
		}
		defer func() { _ = f.Close() }()
		out = f
		colorTarget = f
	}

	opts := printer.Options{
		IndentSize: indent,
		BreakLimit: width,
		Raw:        raw,
		Annotate:   annotate,
		Color:      mode.Enabled(colorTarget),
		Styles:     style.Funcs(),
	}

	logger.Debug().
		Int("width", width).
		Int("indent", indent).
		Bool("raw", raw).
		Bool("color", opts.Color).
		Int("inputs", len(args)).
		Msg("rendering")

	p := printer.New(out, opts)

	if len(args) == 0 {
		v, err := decodeStdin(cmd.InOrStdin(), flags.format, cfg.Format)
		if err != nil {
			return err
		}
		p.Model(v).Break()
	} else {
		for _, path := range args {
			v, err := decodeFile(path, flags.format, cfg.Format)
			if err != nil {
				return err
			}
			p.Model(v).Break()
		}
	}

	if err := p.Err(); err != nil {
		return errors.Wrap(err, errors.ErrSinkWrite, "failed to write output")
	}
	return nil
}

// decodeStdin reads one document from stdin. Without a format override
// stdin is treated as JSON.
func decodeStdin(in io.Reader, flagFormat, cfgFormat string) (interface{}, error) {
	format, err := resolveFormat(flagFormat, cfgFormat, model.FormatJSON)
	if err != nil {
		return nil, err
	}
	return model.Decode(in, format)
}

func decodeFile(path, flagFormat, cfgFormat string) (interface{}, error) {
	format, err := resolveFormat(flagFormat, cfgFormat, model.DetectFormat(path))
	if err != nil {
		return nil, err
	}
	if format == model.FormatUnknown {
		return nil, errors.Newf(errors.ErrUnsupportedFormat,
			"cannot detect format of %s, use --format", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputRead, "failed to open %s", path)
	}
	defer func() { _ = f.Close() }()
	return model.Decode(f, format)
}

// resolveFormat picks the input format: the flag wins, then the config,
// then the caller's fallback.
func resolveFormat(flagFormat, cfgFormat string, fallback model.Format) (model.Format, error) {
	if flagFormat != "" {
		return model.ParseFormat(flagFormat)
	}
	if cfgFormat != "" {
		return model.ParseFormat(cfgFormat)
	}
	return fallback, nil
}
