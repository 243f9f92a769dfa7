package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS runs (
    run_id          INTEGER PRIMARY KEY AUTOINCREMENT,
    name            TEXT,
    horizon_months  INTEGER NOT NULL,
    scenarios       INTEGER NOT NULL,
    created_at      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS projection_rows (
    run_id                     INTEGER NOT NULL REFERENCES runs(run_id) ON DELETE CASCADE,
    month                      INTEGER NOT NULL,
    scenario                   TEXT NOT NULL,
    total_accounts             REAL NOT NULL,
    active_accounts            REAL NOT NULL,
    checking_accounts          REAL NOT NULL,
    saving_accounts            REAL NOT NULL,
    total_inflows              REAL NOT NULL,
    total_outflows             REAL NOT NULL,
    net_remaining              REAL NOT NULL,
    savings_transfer           REAL NOT NULL,
    monthly_checking           REAL NOT NULL,
    monthly_savings            REAL NOT NULL,
    total_revenue              REAL NOT NULL,
    revenue_per_account        REAL NOT NULL,
    revenue_per_active_account REAL NOT NULL,
    checking_balance           REAL NOT NULL,
    savings_balance            REAL NOT NULL,
    PRIMARY KEY (run_id, month, scenario)
);

CREATE TABLE IF NOT EXISTS projection_channels (
    run_id      INTEGER NOT NULL,
    month       INTEGER NOT NULL,
    scenario    TEXT NOT NULL,
    channel     TEXT NOT NULL,
    direction   TEXT NOT NULL,
    quantity    REAL NOT NULL,
    amount      REAL NOT NULL,
    solved_rate REAL NOT NULL,
    PRIMARY KEY (run_id, month, scenario, channel),
    FOREIGN KEY (run_id, month, scenario)
        REFERENCES projection_rows(run_id, month, scenario) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_projection_rows_scenario ON projection_rows(run_id, scenario);
`
