package sheetssql

import (
	"fmt"

	"google.golang.org/api/sheets/v4"
)

// SheetsClient defines the sheets operations the tabular store needs.
type SheetsClient interface {
	GetValues(spreadsheetID, sheetRange string) ([][]interface{}, error)
	AppendRows(spreadsheetID, sheetRange string, values [][]interface{}) error
	UpdateValues(spreadsheetID, sheetRange string, values [][]interface{}) error
	ClearValues(spreadsheetID, sheetRange string) error
	CreateSheet(spreadsheetID, sheetTitle string) (int64, error)
	Service() *sheets.Service
}

// Column defines a column with name and type.
type Column struct {
	Name string
	Type string // e.g. "text", "int", "bool", "uuid"
}

// TableSchema defines the structure of a table.
type TableSchema struct {
	Name    string
	Columns []Column
}

// Schema defines the database schema.
type Schema struct {
	Tables []TableSchema
}

// DB represents a connection to a Google Sheets "database". Each table is a
// tab whose first row holds column headers and second row holds column
// types; data rows start at row 3. All access is by column name, never by
// position, and the header rows survive a table truncate.
type DB struct {
	client        SheetsClient
	spreadsheetID string
	schema        *Schema
}

// NewDB opens a sheets database and ensures the schema exists, creating any
// missing tables and verifying the headers of existing ones.
func NewDB(client SheetsClient, spreadsheetID string, schema *Schema) (*DB, error) {
	db := &DB{
		client:        client,
		spreadsheetID: spreadsheetID,
		schema:        schema,
	}

	if err := db.ensureSchema(); err != nil {
		return nil, fmt.Errorf("failed to ensure schema: %w", err)
	}

	return db, nil
}

// SpreadsheetID returns the database spreadsheet ID.
func (db *DB) SpreadsheetID() string {
	return db.spreadsheetID
}

// InsertRows appends data rows to the named table.
func (db *DB) InsertRows(tableName string, rows [][]interface{}) error {
	return db.client.AppendRows(db.spreadsheetID, tableName, rows)
}
