// Command pcaplot renders PCA charts from a CSV of numeric observations.
//
// The last CSV column is taken as the dependent variable; every other column
// is an input variable. PCA is fitted with gonum's stat.PC, then one of the
// three chart kinds is rendered to --out (.png or .svg by extension).
//
//	pcaplot scree   --csv data.csv --out scree.png --components 4
//	pcaplot scatter --csv data.csv --out pc12.png --x 1 --y 2
//	pcaplot matrix  --csv data.csv --out matrix.svg --from 1 --to 3
package main

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/alexshd/pcaplot"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot/vg"
)

// style is the optional TOML config given with --style.
type style struct {
	Width  float64 `toml:"width"`  // inches
	Height float64 `toml:"height"` // inches
	Title  string  `toml:"title"`  // overrides the assembler's title
}

var (
	csvPath   string
	outPath   string
	stylePath string
	depName   string
)

func main() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: "15:04:05",
		}),
	))

	root := &cobra.Command{
		Use:           "pcaplot",
		Short:         "Render PCA charts from CSV data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&csvPath, "csv", "", "input CSV (last column = dependent variable)")
	root.PersistentFlags().StringVar(&outPath, "out", "", "output file (.png or .svg)")
	root.PersistentFlags().StringVar(&stylePath, "style", "", "optional TOML style file")
	root.PersistentFlags().StringVar(&depName, "dep-name", "", "display name for the dependent variable")
	root.MarkPersistentFlagRequired("csv")
	root.MarkPersistentFlagRequired("out")

	root.AddCommand(screeCmd(), scatterCmd(), matrixCmd())

	if err := root.Execute(); err != nil {
		slog.Error("pcaplot failed", "err", err)
		os.Exit(1)
	}
}

func screeCmd() *cobra.Command {
	var components int
	cmd := &cobra.Command{
		Use:   "scree",
		Short: "Line plot of explained variance per component",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, _, err := loadResult()
			if err != nil {
				return err
			}
			chart, err := pcaplot.ScreePlot(res, pcaplot.ScreeConfig{Components: components})
			if err != nil {
				return err
			}
			return emit(chart)
		},
	}
	cmd.Flags().IntVar(&components, "components", 0,
		fmt.Sprintf("components to display (default %d)", pcaplot.DefaultScreeComponents))
	return cmd
}

func scatterCmd() *cobra.Command {
	var x, y int
	cmd := &cobra.Command{
		Use:   "scatter",
		Short: "2-D scatter of two components, colored by the dependent variable",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, dep, err := loadResult()
			if err != nil {
				return err
			}
			chart, err := pcaplot.ComponentScatter(res, dep, x, y,
				pcaplot.ScatterConfig{DependentName: depName})
			if err != nil {
				return err
			}
			return emit(chart)
		},
	}
	cmd.Flags().IntVar(&x, "x", 1, "1-based component on the x-axis")
	cmd.Flags().IntVar(&y, "y", 2, "1-based component on the y-axis")
	return cmd
}

func matrixCmd() *cobra.Command {
	var from, to int
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Faceted scatterplot matrix over a component range",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, dep, err := loadResult()
			if err != nil {
				return err
			}
			chart, err := pcaplot.ScatterplotMatrix(res, from, to, dep,
				pcaplot.MatrixConfig{DependentName: depName})
			if err != nil {
				return err
			}
			return emit(chart)
		},
	}
	cmd.Flags().IntVar(&from, "from", 1, "first component (1-based, inclusive)")
	cmd.Flags().IntVar(&to, "to", 2, "last component (1-based, inclusive)")
	return cmd
}

// loadResult reads the CSV, fits the PCA, and splits off the dependent
// variable.
func loadResult() (*pcaplot.Result, []float64, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", csvPath, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", csvPath, err)
	}
	if len(records) < 2 {
		return nil, nil, fmt.Errorf("%s: need a header row and at least one observation", csvPath)
	}
	header, rows := records[0], records[1:]
	if len(header) < 3 {
		return nil, nil, fmt.Errorf("%s: need at least 2 variable columns plus a dependent column", csvPath)
	}

	vars := len(header) - 1
	data := mat.NewDense(len(rows), vars, nil)
	dep := make([]float64, len(rows))
	for i, row := range rows {
		if len(row) != len(header) {
			return nil, nil, fmt.Errorf("%s: row %d has %d fields, header has %d",
				csvPath, i+2, len(row), len(header))
		}
		for j, field := range row {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%s: row %d column %q: %w", csvPath, i+2, header[j], err)
			}
			if j == vars {
				dep[i] = v
			} else {
				data.Set(i, j, v)
			}
		}
	}

	var pc stat.PC
	if !pc.PrincipalComponents(data, nil) {
		return nil, nil, fmt.Errorf("%s: PCA decomposition failed", csvPath)
	}
	res, err := pcaplot.FromPC(&pc, data)
	if err != nil {
		return nil, nil, err
	}

	slog.Info("PCA fitted",
		"observations", res.Observations(),
		"components", res.Components(),
		"dependent", header[vars])
	return res, dep, nil
}

// emit applies the optional style and renders the chart to --out.
func emit(chart *pcaplot.Chart) error {
	renderer := pcaplot.NewGonumRenderer()

	if stylePath != "" {
		var s style
		if _, err := toml.DecodeFile(stylePath, &s); err != nil {
			return fmt.Errorf("style %s: %w", stylePath, err)
		}
		if s.Width > 0 {
			renderer.Width = vg.Length(s.Width * float64(vg.Inch))
		}
		if s.Height > 0 {
			renderer.Height = vg.Length(s.Height * float64(vg.Inch))
		}
		if s.Title != "" {
			chart.Title = s.Title
		}
	}

	if err := renderer.Render(chart, outPath); err != nil {
		return err
	}
	slog.Info("chart written", "path", outPath)
	return nil
}
