package main

import (
	"fmt"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/finstmt/pl-consolidator/internal"
)

type Params struct {
	File       string `descr:"Path to the spreadsheet export" positional:"true"`
	Source     string `descr:"Input format (xlsx, csv)" alts:"xlsx,csv" optional:"true"`
	Config     string `descr:"Path to YAML config file" optional:"true"`
	Sheet      string `descr:"Worksheet to read (overrides config)" optional:"true"`
	Split      string `descr:"Partition strategy" alts:"file-page,page,blank,none" optional:"true"`
	Merge      string `descr:"Duplicate cell policy" alts:"first-wins,sum" optional:"true"`
	YearPolicy string `descr:"Duplicate year-header policy" alts:"first,all" optional:"true"`
	Yoy        bool   `descr:"Include year-over-year comparison tables"`
	Output     string `descr:"Output format (table, json)" alts:"table,json" optional:"true"`
	Out        string `descr:"Write the consolidated workbook to this xlsx path" optional:"true"`
	Locale     string `descr:"Locale for number formatting (overrides config)" optional:"true"`
}

func main() {
	boa.NewCmdT[Params]("pl-consolidator").
		WithShort("Normalize irregular P&L spreadsheet exports into item × year tables").
		WithLong("Locates year headers in a raw spreadsheet grid, partitions it into blocks by file/page markers or blank rows, extracts line items per year, and merges everything into consolidated tables with zero-filled gaps, ascending years, and optional year-over-year deltas.").
		WithRunFunc(func(params *Params) {
			if err := run(params); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}).
		Run()
}

func run(params *Params) error {
	cfg, err := loadConfig(params)
	if err != nil {
		return err
	}

	source := params.Source
	if source == "" {
		source = "xlsx"
	}
	src, err := internal.GetSource(source)
	if err != nil {
		return err
	}

	grid, err := src.Read(params.File, cfg.InputSheet)
	if err != nil {
		return fmt.Errorf("reading %s: %w", params.File, err)
	}

	res, err := internal.NewPipeline(cfg).Run(grid)
	if err != nil {
		return err
	}

	var yoys []internal.YoYTable
	if params.Yoy {
		for _, t := range res.Tables {
			yoys = append(yoys, internal.YearOverYear(t))
		}
	}

	switch params.Output {
	case "json":
		internal.PrintResultJSON(os.Stdout, res)
	default:
		printResult(res, yoys, cfg)
	}

	if params.Out != "" {
		if err := internal.WriteWorkbook(params.Out, res.Tables, yoys, cfg); err != nil {
			return err
		}
		if params.Output != "json" {
			fmt.Printf("Wrote %s\n", params.Out)
		}
	}
	return nil
}

// loadConfig builds the effective config: file (explicit, or the default
// path when present), overridden by CLI flags.
func loadConfig(params *Params) (*internal.Config, error) {
	var cfg *internal.Config
	switch {
	case params.Config != "":
		var err error
		cfg, err = internal.LoadConfig(params.Config)
		if err != nil {
			return nil, err
		}
	default:
		if path := internal.DefaultConfigPath(); path != "" {
			if _, err := os.Stat(path); err == nil {
				var loadErr error
				cfg, loadErr = internal.LoadConfig(path)
				if loadErr != nil {
					return nil, loadErr
				}
			}
		}
		if cfg == nil {
			cfg = internal.DefaultConfig()
		}
	}

	if params.Sheet != "" {
		cfg.InputSheet = params.Sheet
	}
	if params.Split != "" {
		cfg.Split = internal.SplitMode(params.Split)
	}
	if params.Merge != "" {
		cfg.Merge = internal.MergePolicy(params.Merge)
	}
	if params.YearPolicy != "" {
		cfg.YearPolicy = internal.YearPolicy(params.YearPolicy)
	}
	if params.Locale != "" {
		cfg.Locale = params.Locale
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func printResult(res *internal.Result, yoys []internal.YoYTable, cfg *internal.Config) {
	fmt.Printf("Consolidated %d table(s) from %d block(s)", len(res.Tables), res.Stats.Blocks)
	if res.Stats.Files > 1 {
		fmt.Printf(" across %d file section(s)", res.Stats.Files)
	}
	fmt.Println()
	if res.Stats.BlocksWithoutYears > 0 {
		fmt.Printf("Skipped %d block(s) without year headers\n", res.Stats.BlocksWithoutYears)
	}
	if res.Stats.NonNumericAmounts > 0 {
		fmt.Printf("Coerced %d non-numeric amount(s) to 0\n", res.Stats.NonNumericAmounts)
	}
	fmt.Println()

	fm := internal.NewFormatter(cfg.Locale)
	for i, t := range res.Tables {
		internal.PrintTable(os.Stdout, t, fm, cfg.ItemHeader)
		if i < len(yoys) {
			internal.PrintYoYTable(os.Stdout, yoys[i], fm, cfg)
		}
		fmt.Println()
	}
}
