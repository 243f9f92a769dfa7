// Package store persists projection tables to SQLite.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"platform-projections/internal/model"
	"platform-projections/internal/projection"

	_ "modernc.org/sqlite" // register sqlite driver
)

// DB is a SQLite-backed result sink. One database may hold many runs.
type DB struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(path string) (*DB, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating db dir: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}

// WriteRun persists a full table as one named run, atomically, and
// returns the new run id.
func (d *DB) WriteRun(name string, t *projection.Table) (int64, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`INSERT INTO runs (name, horizon_months, scenarios, created_at)
		VALUES (?, ?, ?, ?)`,
		name, t.Horizon, len(t.Scenarios), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, r := range t.Rows {
		if err := insertRow(tx, runID, r); err != nil {
			return 0, fmt.Errorf("row month %d scenario %s: %w", r.Month, r.Scenario, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return runID, nil
}

func insertRow(tx *sql.Tx, runID int64, r model.BalanceRow) error {
	_, err := tx.Exec(`INSERT INTO projection_rows
		(run_id, month, scenario, total_accounts, active_accounts,
		 checking_accounts, saving_accounts, total_inflows, total_outflows,
		 net_remaining, savings_transfer, monthly_checking, monthly_savings,
		 total_revenue, revenue_per_account, revenue_per_active_account,
		 checking_balance, savings_balance)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, r.Month, r.Scenario, r.TotalAccounts, r.ActiveAccounts,
		r.CheckingAccounts, r.SavingAccounts, r.TotalInflows, r.TotalOutflows,
		r.NetRemaining, r.SavingsTransfer, r.MonthlyChecking, r.MonthlySavings,
		r.TotalRevenue, r.RevenuePerAccount, r.RevenuePerActiveAccount,
		r.CheckingBalance, r.SavingsBalance,
	)
	if err != nil {
		return err
	}

	for _, f := range r.Inflows {
		if err := insertChannel(tx, runID, r, f, "inflow"); err != nil {
			return err
		}
	}
	for _, f := range r.Outflows {
		if err := insertChannel(tx, runID, r, f, "outflow"); err != nil {
			return err
		}
	}
	return nil
}

func insertChannel(tx *sql.Tx, runID int64, r model.BalanceRow, f model.ChannelFlow, direction string) error {
	_, err := tx.Exec(`INSERT INTO projection_channels
		(run_id, month, scenario, channel, direction, quantity, amount, solved_rate)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, r.Month, r.Scenario, string(f.Channel), direction,
		f.Quantity, f.Amount, f.SolvedRate,
	)
	return err
}

// RunInfo describes one stored run.
type RunInfo struct {
	ID            int64
	Name          string
	HorizonMonths int
	Scenarios     int
	CreatedAt     time.Time
}

// ListRuns returns every stored run, oldest first.
func (d *DB) ListRuns() ([]RunInfo, error) {
	rows, err := d.db.Query(`SELECT run_id, name, horizon_months, scenarios, created_at
		FROM runs ORDER BY run_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunInfo
	for rows.Next() {
		var r RunInfo
		var created string
		if err := rows.Scan(&r.ID, &r.Name, &r.HorizonMonths, &r.Scenarios, &created); err != nil {
			return nil, err
		}
		r.CreatedAt, _ = time.Parse(time.RFC3339, created)
		out = append(out, r)
	}
	return out, rows.Err()
}

// RunRows reads one run's rows back, ordered by scenario name then month.
// Channel flows are reattached in catalog order.
func (d *DB) RunRows(runID int64) ([]model.BalanceRow, error) {
	rows, err := d.db.Query(`SELECT month, scenario, total_accounts, active_accounts,
			checking_accounts, saving_accounts, total_inflows, total_outflows,
			net_remaining, savings_transfer, monthly_checking, monthly_savings,
			total_revenue, revenue_per_account, revenue_per_active_account,
			checking_balance, savings_balance
		FROM projection_rows WHERE run_id = ? ORDER BY scenario, month`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.BalanceRow
	index := make(map[rowKey]int)
	for rows.Next() {
		var r model.BalanceRow
		if err := rows.Scan(&r.Month, &r.Scenario, &r.TotalAccounts, &r.ActiveAccounts,
			&r.CheckingAccounts, &r.SavingAccounts, &r.TotalInflows, &r.TotalOutflows,
			&r.NetRemaining, &r.SavingsTransfer, &r.MonthlyChecking, &r.MonthlySavings,
			&r.TotalRevenue, &r.RevenuePerAccount, &r.RevenuePerActiveAccount,
			&r.CheckingBalance, &r.SavingsBalance); err != nil {
			return nil, err
		}
		index[rowKey{r.Month, r.Scenario}] = len(out)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	flows, err := d.runFlows(runID)
	if err != nil {
		return nil, err
	}
	for key, byChannel := range flows {
		i, ok := index[key]
		if !ok {
			continue
		}
		for _, c := range model.InflowChannels {
			if f, ok := byChannel[c]; ok {
				out[i].Inflows = append(out[i].Inflows, f)
			}
		}
		for _, c := range model.OutflowChannels {
			if f, ok := byChannel[c]; ok {
				out[i].Outflows = append(out[i].Outflows, f)
			}
		}
	}
	return out, nil
}

type rowKey struct {
	month    int
	scenario string
}

func (d *DB) runFlows(runID int64) (map[rowKey]map[model.Channel]model.ChannelFlow, error) {
	rows, err := d.db.Query(`SELECT month, scenario, channel, quantity, amount, solved_rate
		FROM projection_channels WHERE run_id = ?`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[rowKey]map[model.Channel]model.ChannelFlow)
	for rows.Next() {
		var (
			key     rowKey
			channel string
			f       model.ChannelFlow
		)
		if err := rows.Scan(&key.month, &key.scenario, &channel, &f.Quantity, &f.Amount, &f.SolvedRate); err != nil {
			return nil, err
		}
		f.Channel = model.Channel(channel)
		byChannel, ok := out[key]
		if !ok {
			byChannel = make(map[model.Channel]model.ChannelFlow)
			out[key] = byChannel
		}
		byChannel[f.Channel] = f
	}
	return out, rows.Err()
}

// RunSink adapts WriteRun to the projection.Sink interface.
type RunSink struct {
	DB   *DB
	Name string
}

func (s RunSink) Write(t *projection.Table) error {
	_, err := s.DB.WriteRun(s.Name, t)
	return err
}
