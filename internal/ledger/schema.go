package ledger

const schemaSQL = `
CREATE TABLE IF NOT EXISTS decisions (
    id               TEXT PRIMARY KEY,
    item_name        TEXT,
    item_price       REAL NOT NULL DEFAULT 0,
    work_hours       REAL NOT NULL DEFAULT 0,
    investment_value REAL NOT NULL DEFAULT 0,
    decision_type    TEXT NOT NULL,
    remind_at        TEXT,
    categories       TEXT,
    created_at       TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_decisions_type ON decisions(decision_type);
CREATE INDEX IF NOT EXISTS idx_decisions_remind ON decisions(remind_at);
`
