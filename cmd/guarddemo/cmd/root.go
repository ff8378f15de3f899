package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	xgxguard "github.com/xgx-io/xgx-guard"
	"github.com/xgx-io/xgx-guard/internal/demo"
)

var logDir string

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "guarddemo",
	Short: "Demonstration of xgx-guard chain composition",
	Long: `guarddemo wraps a divide-reduce function in three nested guards
(division_by_zero innermost, type_mismatch in the middle, a catch-all
outermost) and runs it over inputs that exercise each layer. The closer a
guard is to the function, the sooner it tries to claim the error — order is
significant.`,
	RunE: run,
}

// Execute runs the root command and returns its error
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringVar(&logDir, "log-dir", "", "directory for diagnostic records (default from GUARDDEMO_LOG_DIR or \".\")")
}

// initConfig reads environment variables
func initConfig() {
	viper.SetEnvPrefix("guarddemo")
	viper.AutomaticEnv()
	_ = viper.BindEnv("log_dir", "GUARDDEMO_LOG_DIR")
}

func run(cmd *cobra.Command, args []string) error {
	dir := logDir
	if dir == "" {
		dir = viper.GetString("log_dir")
	}
	if dir == "" {
		dir = "."
	}

	handler := xgxguard.NewHandler(
		"Unexpected error, seek help.",
		filepath.Join(dir, "default_error_log.txt"),
	)

	divGuard, err := handler.Guard(
		xgxguard.Categories(xgxguard.CategoryDivisionByZero),
		xgxguard.WithFallback("Division by 0 is impossible!"),
		xgxguard.WithTarget(filepath.Join(dir, "zerodivision.txt")),
	)
	if err != nil {
		return err
	}
	typeGuard, err := handler.Guard(
		xgxguard.Categories(xgxguard.CategoryTypeMismatch),
		xgxguard.WithFallback("Type error occurred! Please check the data types and try again."),
		xgxguard.WithTarget(filepath.Join(dir, "typemismatch.txt")),
	)
	if err != nil {
		return err
	}
	anyGuard, err := handler.Guard(xgxguard.Categories(xgxguard.CategoryAny))
	if err != nil {
		return err
	}

	// Innermost first: division, then type, then the catch-all.
	guarded := xgxguard.Compose(xgxguard.Func(demo.DivReduce), divGuard, typeGuard, anyGuard)

	scenarios := []struct {
		label string
		input any
	}{
		{"No error", []any{10, 2, 2}},
		{"Caught by type_mismatch", []any{"1", 2}},
		{"Caught by division_by_zero", []any{10, 0}},
		{"Caught by the outer catch-all", 1},
	}

	out := cmd.OutOrStdout()
	for _, s := range scenarios {
		res, err := guarded.Call(s.input)
		if err != nil {
			// Unreachable with the catch-all outermost, except for
			// diagnostic-write failures.
			return err
		}
		fmt.Fprintf(out, "%s:\n%v\n", s.label, res)
	}
	return nil
}
