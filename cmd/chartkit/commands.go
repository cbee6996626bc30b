package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ukaji3/chartkit-go/pkg/chartkit"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/models"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/output"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/server"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/source"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/transform"
	"github.com/ukaji3/chartkit-go/pkg/chartkit/workbook"
)

var (
	mappingPath string
	rowsPath    string
	xlsxPath    string
	sheetName   string
	queryText   string
	asJSON      bool
)

var hydrateCmd = &cobra.Command{
	Use:   "hydrate",
	Short: "Hydrate one chart from a mapping and a row source",
	Long: `Reads a column mapping (YAML or JSON) and rows from exactly one source:
  --rows   JSON array of objects
  --xlsx   worksheet data (header row first), with --sheet
  --query  SQL run against the configured database`,
	Args: cobra.NoArgs,
	RunE: runHydrate,
}

var importCmd = &cobra.Command{
	Use:   "import [input.xlsx]",
	Short: "Derive column mappings from charts embedded in an Excel file",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var renderCmd = &cobra.Command{
	Use:   "render [input.xlsx]",
	Short: "Hydrate every chart embedded in an Excel file from its own data",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard [board.yaml]",
	Short: "Run every query of a dashboard and hydrate its charts",
	Args:  cobra.ExactArgs(1),
	RunE:  runDashboard,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the chart API over HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	hydrateCmd.Flags().StringVar(&mappingPath, "mapping", "", "Column mapping file (.yaml, .yml or .json)")
	hydrateCmd.Flags().StringVar(&rowsPath, "rows", "", "JSON rows file")
	hydrateCmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Excel workbook providing the rows")
	hydrateCmd.Flags().StringVar(&sheetName, "sheet", "", "Worksheet name (default: first sheet)")
	hydrateCmd.Flags().StringVar(&queryText, "query", "", "SQL query providing the rows")
	_ = hydrateCmd.MarkFlagRequired("mapping")
	hydrateCmd.MarkFlagsMutuallyExclusive("rows", "xlsx", "query")
	hydrateCmd.MarkFlagsOneRequired("rows", "xlsx", "query")

	importCmd.Flags().BoolVar(&asJSON, "json", false, "Write JSON instead of YAML")
}

func runHydrate(cmd *cobra.Command, args []string) error {
	mapping, err := source.LoadMapping(mappingPath)
	if err != nil {
		return err
	}
	if err := chartkit.ValidateMapping(mapping); err != nil {
		return err
	}

	rows, err := loadRows(cmd.Context())
	if err != nil {
		return err
	}
	logger.Debug("rows loaded", zap.Int("rows", len(rows)))

	opts := cfg.HydrateOptions()
	chart := chartkit.Hydrate(mapping, rows, opts)
	if len(opts.Palette) > 0 {
		chart = transform.ApplyPalette(chart, opts.Palette)
	}
	return writeJSON(chart)
}

// loadRows reads rows from whichever source flag is set.
func loadRows(ctx context.Context) ([]models.Row, error) {
	switch {
	case rowsPath != "":
		return source.LoadRows(rowsPath)
	case xlsxPath != "":
		if err := checkExists(xlsxPath); err != nil {
			return nil, err
		}
		f, err := excelize.OpenFile(xlsxPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open workbook: %w", err)
		}
		defer f.Close()
		sheet := sheetName
		if sheet == "" {
			sheet = f.GetSheetName(0)
		}
		return source.ReadSheet(f, sheet)
	default:
		src, err := openDatabase(ctx)
		if err != nil {
			return nil, err
		}
		defer src.Close()
		return src.Query(ctx, queryText)
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	if err := checkExists(args[0]); err != nil {
		return err
	}
	charts, err := workbook.Import(args[0])
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}
	logger.Debug("charts imported", zap.Int("charts", len(charts)))
	if charts == nil {
		charts = []models.ImportedChart{}
	}

	if asJSON {
		return writeJSON(charts)
	}
	data, err := output.ToYAML(charts)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(data)
}

func runRender(cmd *cobra.Command, args []string) error {
	charts, err := chartkit.RenderWorkbook(args[0], cfg.HydrateOptions())
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	return writeJSON(charts)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	board, err := source.LoadDashboard(args[0])
	if err != nil {
		return err
	}

	var q chartkit.Querier
	if cfg.HasDatabase() {
		src, err := openDatabase(cmd.Context())
		if err != nil {
			return err
		}
		defer src.Close()
		q = src
	}

	view, err := chartkit.HydrateDashboard(cmd.Context(), q, board, cfg.HydrateOptions(), logger)
	if err != nil {
		return err
	}
	return writeJSON(view)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var q chartkit.Querier
	if cfg.HasDatabase() {
		src, err := openDatabase(ctx)
		if err != nil {
			return err
		}
		defer src.Close()
		q = src
	} else {
		logger.Warn("no database configured, query routes are disabled")
	}

	srv := server.New(q, cfg.HydrateOptions(), server.Config{
		Address:           cfg.Server.Address,
		ReadHeaderTimeout: cfg.GetReadHeaderTimeout(),
		ShutdownTimeout:   cfg.GetShutdownTimeout(),
		Logger:            logger,
	})
	if err := srv.Start(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	waitErr := make(chan error, 1)
	go func() { waitErr <- srv.Wait() }()

	select {
	case err := <-waitErr:
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GetShutdownTimeout())
		defer cancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		return <-waitErr
	}
}

func openDatabase(ctx context.Context) (*source.SQLSource, error) {
	if !cfg.HasDatabase() {
		return nil, fmt.Errorf("%w: set database.driver in %s or CHARTKIT_DB_DRIVER", chartkit.ErrNoDatabase, configPath)
	}
	return source.OpenSQL(ctx, cfg.Database.Driver, cfg.Database.DSN, cfg.SQLOptions(logger))
}

func checkExists(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %s", chartkit.ErrFileNotFound, path)
	}
	return nil
}

func writeJSON(v any) error {
	data, err := output.ToJSON(v, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(data)
}
