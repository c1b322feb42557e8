package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the integration-test database. Expects a MySQL instance
// on localhost:3306 with a database named 'tillroll_test'; tests are skipped
// when it is not reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/tillroll_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB removes test rows and closes the connection.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	if _, err := db.Exec("DELETE FROM order_management"); err != nil {
		t.Logf("failed to clean table order_management: %v", err)
	}

	db.Close()
}

// SetupTestTables creates the tables the integration tests need.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createOrderManagementTable := `
	CREATE TABLE IF NOT EXISTS order_management (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		restaurant_id INT NOT NULL,
		order_number VARCHAR(50) NOT NULL,
		fulfillment_status VARCHAR(20) NOT NULL DEFAULT 'pending',
		customer JSON NOT NULL,
		items JSON NOT NULL,
		order_note TEXT,
		tax DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		discount DECIMAL(10,2) NOT NULL DEFAULT 0.00,
		prep_time_minutes INT,
		cancellation_reason VARCHAR(255),
		cancelled_by VARCHAR(50),
		refund_reason VARCHAR(255),
		refund_amount DECIMAL(10,2),
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		accepted_at DATETIME,
		ready_at DATETIME,
		dispatched_at DATETIME,
		delivered_at DATETIME,
		cancelled_at DATETIME,
		refunded_at DATETIME,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_restaurant_order (restaurant_id, order_number),
		INDEX idx_restaurant_status (restaurant_id, fulfillment_status)
	)`

	if _, err := db.Exec(createOrderManagementTable); err != nil {
		t.Logf("failed to create table order_management: %v", err)
	}
}
