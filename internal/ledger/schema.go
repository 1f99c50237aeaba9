package ledger

const schemaSQL = `
CREATE TABLE IF NOT EXISTS incomes (
    id                   TEXT PRIMARY KEY,
    title                TEXT NOT NULL,
    amount               TEXT NOT NULL,
    recurrence           TEXT NOT NULL DEFAULT 'none',
    received_on          TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS expenses (
    id                   TEXT PRIMARY KEY,
    title                TEXT NOT NULL,
    amount               TEXT NOT NULL,
    recurrence           TEXT NOT NULL DEFAULT 'none',
    due_on               TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS investments (
    id                   TEXT PRIMARY KEY,
    title                TEXT NOT NULL,
    principal            TEXT NOT NULL,
    started_on           TEXT NOT NULL,
    ended_on             TEXT
);

CREATE INDEX IF NOT EXISTS idx_incomes_received ON incomes(received_on);
CREATE INDEX IF NOT EXISTS idx_expenses_due ON expenses(due_on);
CREATE INDEX IF NOT EXISTS idx_investments_started ON investments(started_on);
`
