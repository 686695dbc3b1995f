//-------------------------------------------------------------------------
//
// crmgen - synthetic retail/CRM dataset generator
//
// This software is released under the MIT License
//
//-------------------------------------------------------------------------

// Package crm generates the synthetic retail/CRM dataset: channels,
// products, members, transaction lines, campaigns and campaign logs.
package crm

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Schema SQL for the six dataset tables. The dataset is rebuilt from
// scratch every run, so there are no migrations, only this DDL.
const createSchemaSQL = `
CREATE TABLE IF NOT EXISTS channels (
    channel_id TEXT PRIMARY KEY,
    channel_name TEXT NOT NULL,
    channel_type TEXT,
    region TEXT,
    store_area REAL,
    open_date TEXT,
    close_date TEXT
);

CREATE TABLE IF NOT EXISTS products (
    product_id TEXT PRIMARY KEY,
    product_name TEXT NOT NULL,
    category_l1 TEXT,
    category_l2 TEXT,
    category_l3 TEXT,
    brand TEXT,
    cost REAL,
    list_price REAL,
    launch_date TEXT,
    is_active INTEGER DEFAULT 1
);

CREATE TABLE IF NOT EXISTS members (
    member_id TEXT PRIMARY KEY,
    name TEXT,
    gender TEXT,
    birthday TEXT,
    phone_number TEXT,
    email TEXT,
    city TEXT,
    district TEXT,
    register_date TEXT NOT NULL,
    register_channel_id TEXT,
    membership_level TEXT,
    opt_in_edm INTEGER DEFAULT 0,
    opt_in_sms INTEGER DEFAULT 0,
    curr_points INTEGER DEFAULT 0
);

CREATE TABLE IF NOT EXISTS transaction_details (
    transaction_id TEXT NOT NULL,
    line_item_id INTEGER NOT NULL,
    transaction_date TEXT NOT NULL,
    member_id TEXT,
    product_id TEXT NOT NULL,
    channel_id TEXT NOT NULL,
    quantity INTEGER NOT NULL DEFAULT 1,
    unit_price REAL NOT NULL,
    sales_amount REAL NOT NULL,
    discount_amount REAL DEFAULT 0,
    net_amount REAL NOT NULL,
    payment_method TEXT,
    PRIMARY KEY (transaction_id, line_item_id)
);

CREATE TABLE IF NOT EXISTS campaigns (
    campaign_id TEXT PRIMARY KEY,
    campaign_name TEXT NOT NULL,
    channel_type TEXT NOT NULL,
    start_date TEXT,
    end_date TEXT,
    cost_per_send REAL
);

CREATE TABLE IF NOT EXISTS campaign_logs (
    log_id TEXT PRIMARY KEY,
    campaign_id TEXT NOT NULL,
    member_id TEXT NOT NULL,
    send_time TEXT NOT NULL,
    is_opened INTEGER DEFAULT 0,
    is_clicked INTEGER DEFAULT 0,
    is_converted INTEGER DEFAULT 0,
    FOREIGN KEY (campaign_id) REFERENCES campaigns(campaign_id),
    FOREIGN KEY (member_id) REFERENCES members(member_id)
);
`

// Tables lists the dataset tables in creation order.
var Tables = []string{
	"channels",
	"products",
	"members",
	"transaction_details",
	"campaigns",
	"campaign_logs",
}

// CreateSchema creates the six dataset tables.
func CreateSchema(ctx context.Context, sqlDB *sql.DB) error {
	for _, stmt := range strings.Split(createSchemaSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := sqlDB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
