package internal

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the business conventions of the source documents: marker
// strings, the sentinel label, sheet names and the pipeline policies. These
// are data contracts of the exports being processed, not universal rules,
// so they live in a user-editable file.
type Config struct {
	// FileMarker tags rows that start a new source file's section.
	FileMarker string `yaml:"file_marker,omitempty"`

	// PageMarker tags rows that start a new page within a file's section.
	PageMarker string `yaml:"page_marker,omitempty"`

	// OtherLabel is the catch-all line item whose repeated occurrences are
	// kept distinct through extraction and summed at final output.
	OtherLabel string `yaml:"other_label,omitempty"`

	// InputSheet is the preferred worksheet name; the first sheet is used
	// when it is absent.
	InputSheet string `yaml:"input_sheet,omitempty"`

	// ItemHeader is the header written above the item-name column.
	ItemHeader string `yaml:"item_column_header,omitempty"`

	// OutputSheetBase is the base name for output worksheets, suffixed
	// with the 1-based table index.
	OutputSheetBase string `yaml:"output_sheet_base,omitempty"`

	// YoYSheetSuffix is appended to a table's sheet name for its
	// year-over-year worksheet.
	YoYSheetSuffix string `yaml:"yoy_sheet_suffix,omitempty"`

	// DeltaSuffix and PctSuffix label the derived year-over-year columns.
	DeltaSuffix string `yaml:"delta_suffix,omitempty"`
	PctSuffix   string `yaml:"pct_suffix,omitempty"`

	// YearPattern optionally overrides the built-in year-header rule
	// (trimmed cell matching ^20\d{2}$) with a custom regex.
	YearPattern string `yaml:"year_pattern,omitempty"`

	// Split selects the partition strategy, Merge the duplicate-cell
	// policy and YearPolicy the duplicate-year-header policy.
	Split      SplitMode   `yaml:"split,omitempty"`
	Merge      MergePolicy `yaml:"merge,omitempty"`
	YearPolicy YearPolicy  `yaml:"year_policy,omitempty"`

	// Locale selects the number formatting locale for terminal output.
	Locale string `yaml:"locale,omitempty"`

	// compiled year matcher (not serialized)
	matcher YearMatcher `yaml:"-"`
}

// DefaultConfig returns the conventions of the original P&L exports this
// tool was built for.
func DefaultConfig() *Config {
	return &Config{
		FileMarker:      "ファイル名:",
		PageMarker:      "--- ページ",
		OtherLabel:      "その他",
		InputSheet:      "抽出結果",
		ItemHeader:      "共通項目",
		OutputSheetBase: "統合まとめ表",
		YoYSheetSuffix:  "前年比",
		DeltaSuffix:     " 増減額",
		PctSuffix:       " 増減率(%)",
		Split:           SplitFilePage,
		Merge:           MergeFirstWins,
		YearPolicy:      YearFirst,
		Locale:          "ja",
	}
}

// DefaultConfigPath returns the default config file path
// (~/.pl-consolidator/config.yaml).
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pl-consolidator", "config.yaml")
}

// LoadConfig reads a YAML config file, overlaying it on the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks policy values and compiles the year pattern, if any.
func (c *Config) Validate() error {
	switch c.Split {
	case SplitFilePage, SplitPage, SplitBlank, SplitNone:
	default:
		return fmt.Errorf("invalid split strategy %q", c.Split)
	}
	switch c.Merge {
	case MergeFirstWins, MergeSum:
	default:
		return fmt.Errorf("invalid merge policy %q", c.Merge)
	}
	switch c.YearPolicy {
	case YearFirst, YearAll:
	default:
		return fmt.Errorf("invalid year policy %q", c.YearPolicy)
	}

	if c.YearPattern != "" {
		m, err := YearMatcherFromPattern(c.YearPattern)
		if err != nil {
			return err
		}
		c.matcher = m
	} else {
		c.matcher = DefaultYearMatcher
	}
	return nil
}

// Matcher returns the compiled year-header matcher.
func (c *Config) Matcher() YearMatcher {
	if c.matcher == nil {
		return DefaultYearMatcher
	}
	return c.matcher
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	// Create parent directories if they don't exist
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
