package cli

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"honnef.co/go/transition"
	"honnef.co/go/transition/internal/config"
	"honnef.co/go/transition/internal/logging"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func renderTable(w io.Writer, headers []string, rows [][]string) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	_, err := fmt.Fprintln(w, t.Render())
	return err
}

func formatFloat(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all registered curves",
		Long: `List displays all built-in curves and the curves defined in the config file,
along with the modes they can be looked up with.`,
		Example: `  # List all curves
  transition list`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, r, err := opts.setup(nil)
			if err != nil {
				return err
			}

			var rows [][]string
			for _, name := range r.Names() {
				kind := "family"
				if r.IsBare(name) {
					kind = "bare"
				}
				var modes []string
				for _, m := range r.Modes(name) {
					if m != transition.Bare {
						modes = append(modes, m.String())
					}
				}
				rows = append(rows, []string{name, kind, strings.Join(modes, ", ")})
			}
			logger := logging.GetLogger("list")
			logger.Info().Int("curves", len(rows)).Msg("Listing curves")
			return renderTable(cmd.OutOrStdout(), []string{"NAME", "KIND", "MODES"}, rows)
		},
	}
}

// curveFlags are the flags shared by commands that evaluate a curve.
type curveFlags struct {
	steps     int
	precision int
	params    []float64
}

func (f *curveFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.steps, "steps", "n", 0, "Number of intervals to sample (default from config)")
	cmd.Flags().IntVar(&f.precision, "precision", 0, "Decimal places of output values (default from config)")
	cmd.Flags().Float64SliceVarP(&f.params, "param", "p", nil, "Curve parameter to bind; repeat or comma-separate for several")
}

// overrides returns the config overrides for flags that were set explicitly.
func (f *curveFlags) overrides(cmd *cobra.Command, section string) map[string]any {
	overrides := map[string]any{}
	if cmd.Flags().Changed("steps") {
		overrides[section+".steps"] = f.steps
	}
	if cmd.Flags().Changed("precision") {
		overrides[section+".precision"] = f.precision
	}
	return overrides
}

// resolve looks up the curve at path and binds the parameters given on the
// command line.
func (f *curveFlags) resolve(r *transition.Registry, path string) (transition.Bound, error) {
	fn, err := r.LookupPath(path)
	if err != nil {
		if _, ok := r.Family(path); ok {
			return transition.Bound{}, fmt.Errorf("%w (use %s.easeIn, %s.easeOut or %s.easeInOut)", err, path, path, path)
		}
		return transition.Bound{}, err
	}
	return transition.Bind(fn, f.params...), nil
}

func newSampleCmd(opts *rootOptions) *cobra.Command {
	var flags curveFlags

	cmd := &cobra.Command{
		Use:   "sample CURVE",
		Short: "Print the values of a curve",
		Long: `Sample evaluates a curve at evenly spaced progress fractions from 0 to 1
and prints a table of the results, followed by the range of values.

CURVE is a curve name followed by a mode, such as Quad.easeOut, or the name
of a bare curve, such as linear.`,
		Example: `  # Sample the ease-out variant of Quad
  transition sample Quad.easeOut

  # Sample a stronger Back curve at 20 points
  transition sample Back.easeIn --param 3 --steps 20`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, r, err := opts.setup(flags.overrides(cmd, "sample"))
			if err != nil {
				return err
			}
			curve, err := flags.resolve(r, args[0])
			if err != nil {
				return err
			}

			logger := logging.GetLogger("sample")
			done := logging.LogOperationStart(logger, "sample")
			defer done()

			prec := cfg.Sample.Precision
			var rows [][]string
			for pt := range transition.Sample(curve, cfg.Sample.Steps) {
				x, y := pt.Splat()
				rows = append(rows, []string{formatFloat(x, prec), formatFloat(y, prec)})
			}
			if err := renderTable(cmd.OutOrStdout(), []string{"PROGRESS", "VALUE"}, rows); err != nil {
				return err
			}

			lo, hi := transition.Range(curve, cfg.Sample.Steps)
			logger.Info().
				Str("curve", args[0]).
				Floats64("params", flags.params).
				Float64("min", lo).
				Float64("max", hi).
				Msg("Sampled curve")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "range: %s .. %s\n", formatFloat(lo, prec), formatFloat(hi, prec))
			return err
		},
	}
	flags.register(cmd)
	return cmd
}

func newPlotCmd(opts *rootOptions) *cobra.Command {
	var (
		flags  curveFlags
		output string
	)

	cmd := &cobra.Command{
		Use:   "plot CURVE",
		Short: "Plot a curve as an SVG image",
		Long: `Plot samples a curve and writes it as a standalone SVG image. The image
covers progress fractions from 0 to 1 horizontally and the curve's range of
values vertically, so overshoot remains visible.`,
		Example: `  # Plot Bounce.easeOut to a file
  transition plot Bounce.easeOut -o bounce.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, r, err := opts.setup(flags.overrides(cmd, "plot"))
			if err != nil {
				return err
			}
			curve, err := flags.resolve(r, args[0])
			if err != nil {
				return err
			}

			logger := logging.GetLogger("plot")
			done := logging.LogOperationStart(logger, "plot")
			defer done()

			if output == "" {
				err = writePlot(cmd.OutOrStdout(), curve, cfg.Plot.Steps, cfg.Plot.Precision, cfg.Plot.Width, cfg.Plot.Height)
			} else {
				err = writePlotFile(output, curve, cfg.Plot)
			}
			if err != nil {
				return err
			}
			logger.Info().Str("curve", args[0]).Str("output", output).Msg("Plotted curve")
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "File to write the SVG image to (default stdout)")
	return cmd
}

// writePlotFile writes the plot to the named file.
func writePlotFile(name string, e transition.Easer, cfg config.PlotConfig) error {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	if err := writePlot(f, e, cfg.Steps, cfg.Precision, cfg.Width, cfg.Height); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// plotScale is the size of the unit square in SVG user units.
const plotScale = 100

func writePlot(w io.Writer, e transition.Easer, steps, precision, width, height int) error {
	lo, hi := transition.Range(e, steps)
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return fmt.Errorf("curve has no finite values to plot")
	}
	lo, hi = min(lo, 0), max(hi, 1)
	pad := (hi - lo) * 0.05

	// SVG is y-down and the path data is written as 1 - y.
	minY := (1 - hi - pad) * plotScale
	spanY := (hi - lo + 2*pad) * plotScale
	minX := -0.05 * plotScale
	spanX := 1.1 * plotScale

	path := transition.SVG(transition.Sample(e, steps), transition.SVGOptions{
		MaxPrecision: precision,
		Scale:        plotScale,
	})
	_, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="%s %s %s %s" preserveAspectRatio="none">
<rect x="0" y="0" width="%d" height="%d" fill="none" stroke="#ccc" vector-effect="non-scaling-stroke" />
<path d="%s" fill="none" stroke="black" vector-effect="non-scaling-stroke" />
</svg>
`,
		width, height,
		formatFloat(minX, precision), formatFloat(minY, precision),
		formatFloat(spanX, precision), formatFloat(spanY, precision),
		plotScale, plotScale,
		path,
	)
	return err
}
