package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"platform-projections/internal/analysis"
	"platform-projections/internal/config"
	"platform-projections/internal/interp"
	"platform-projections/internal/model"
	"platform-projections/internal/params"
	"platform-projections/internal/projection"
	"platform-projections/internal/report"
	"platform-projections/internal/store"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "project":
		cmdProject(os.Args[2:])
	case "compare":
		cmdCompare(os.Args[2:])
	case "interpolate":
		cmdInterpolate(os.Args[2:])
	case "runs":
		cmdRuns(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli project --config examples/run.yaml")
	fmt.Println("  cli compare --config examples/run.yaml --month 12")
	fmt.Println("  cli interpolate --config examples/run.yaml --input Accounts --months 1,3,6,12")
	fmt.Println("  cli runs --db out/projections.db")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - project writes the table to the sinks in the config output block")
	fmt.Println("  - compare prints each scenario against Base at one month")
	fmt.Println("  - interpolate prints the reconstructed monthly series for one input")
	fmt.Println("  - runs lists the runs stored in a SQLite output database")
}

func cmdProject(args []string) {
	fs := flag.NewFlagSet("project", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML run config")
	outPath := fs.String("out", "", "Optional: override the CSV output path")
	scenario := fs.String("scenario", model.ScenarioBase, "Scenario for the key-metrics table")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	table := runProjection(cfg)

	csvPath := cfg.Output.CSV
	if *outPath != "" {
		csvPath = *outPath
	}
	if csvPath != "" {
		if err := os.MkdirAll(filepath.Dir(csvPath), 0o755); err != nil {
			panic(err)
		}
		if err := projection.WriteTableCSV(csvPath, table); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(table.Rows), csvPath)
	}
	if cfg.Output.SQLite != "" {
		db, err := store.Open(cfg.Output.SQLite)
		if err != nil {
			panic(err)
		}
		defer db.Close()
		runID, err := db.WriteRun(cfg.Name, table)
		if err != nil {
			panic(err)
		}
		fmt.Printf("Wrote run %d to %s\n", runID, cfg.Output.SQLite)
	}

	fmt.Println("")
	report.KeyMetrics(os.Stdout, table, *scenario)
	fmt.Println("")
	report.Summaries(os.Stdout, analysis.Summarize(table))
}

func cmdCompare(args []string) {
	fs := flag.NewFlagSet("compare", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML run config")
	month := fs.Int("month", 12, "Month to compare at")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	if *month < 1 || *month > cfg.HorizonMonths {
		fmt.Printf("--month must be in 1..%d\n", cfg.HorizonMonths)
		os.Exit(2)
	}

	table := runProjection(cfg)
	report.Comparison(os.Stdout, *month, analysis.CompareScenarios(table, *month))
}

func cmdInterpolate(args []string) {
	fs := flag.NewFlagSet("interpolate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML run config")
	input := fs.String("input", model.InputAccounts, "Input name to inspect")
	monthsFlag := fs.String("months", "", "Comma-separated months (default: 1..horizon)")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}
	st := buildStore(cfg)

	months := parseMonths(*monthsFlag, cfg.HorizonMonths)
	eng := interp.New(st)
	values := make([]float64, len(months))
	for i, m := range months {
		values[i] = eng.Value(*input, m)
	}
	report.Series(os.Stdout, *input, months, values)
}

func cmdRuns(args []string) {
	fs := flag.NewFlagSet("runs", flag.ExitOnError)
	dbPath := fs.String("db", "", "Path to a SQLite output database")
	_ = fs.Parse(args)

	if *dbPath == "" {
		fmt.Println("--db is required")
		os.Exit(2)
	}

	db, err := store.Open(*dbPath)
	if err != nil {
		panic(err)
	}
	defer db.Close()

	runs, err := db.ListRuns()
	if err != nil {
		panic(err)
	}
	if len(runs) == 0 {
		fmt.Println("no runs stored")
		return
	}
	fmt.Printf("%-6s %-24s %-8s %-10s %s\n", "run", "name", "months", "scenarios", "created")
	for _, r := range runs {
		name := r.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Printf("%-6d %-24s %-8d %-10d %s\n",
			r.ID, name, r.HorizonMonths, r.Scenarios, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func buildStore(cfg *config.Config) *params.Store {
	obs, err := cfg.Observations()
	if err != nil {
		panic(err)
	}
	st, err := params.Load(params.StaticSource(obs), cfg.Policy())
	if err != nil {
		panic(err)
	}
	return st
}

func runProjection(cfg *config.Config) *projection.Table {
	st := buildStore(cfg)
	engine := projection.New(interp.NewCached(interp.New(st)))
	table, err := engine.Run(cfg.HorizonMonths, cfg.ResolveScenarios())
	if err != nil {
		panic(err)
	}
	return table
}

func parseMonths(s string, horizon int) []int {
	if strings.TrimSpace(s) == "" {
		out := make([]int, horizon)
		for i := range out {
			out[i] = i + 1
		}
		return out
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		m, err := strconv.Atoi(p)
		if err != nil {
			panic(fmt.Errorf("invalid month %q", p))
		}
		out = append(out, m)
	}
	return out
}
