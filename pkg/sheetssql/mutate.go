package sheetssql

import "fmt"

// dataStartRow is the first data row: row 1 is headers, row 2 is types.
const dataStartRow = 3

// UpdateCellByKey sets a single cell in the row whose keyColumn equals
// keyValue. Rows are located by key, never by remembered position, because
// positions shift under concurrent appends and truncates.
func (db *DB) UpdateCellByKey(tableName, keyColumn string, keyValue interface{}, targetColumn string, value interface{}) error {
	values, err := db.client.GetValues(db.spreadsheetID, tableName)
	if err != nil {
		return fmt.Errorf("failed to get table %s: %w", tableName, err)
	}
	if len(values) < 1 {
		return fmt.Errorf("table %s has no header row", tableName)
	}

	keyIdx, err := columnIndex(values[0], keyColumn)
	if err != nil {
		return err
	}
	targetIdx, err := columnIndex(values[0], targetColumn)
	if err != nil {
		return err
	}

	keyStr := fmt.Sprintf("%v", keyValue)
	for i := dataStartRow - 1; i < len(values); i++ {
		row := values[i]
		if keyIdx >= len(row) {
			continue
		}
		if fmt.Sprintf("%v", row[keyIdx]) != keyStr {
			continue
		}

		cellRange := fmt.Sprintf("%s!%s%d", tableName, columnLetter(targetIdx), i+1)
		if err := db.client.UpdateValues(db.spreadsheetID, cellRange, [][]interface{}{{value}}); err != nil {
			return fmt.Errorf("failed to update cell %s: %w", cellRange, err)
		}
		return nil
	}

	return fmt.Errorf("table %s: no row with %s=%v", tableName, keyColumn, keyValue)
}

// DeleteRowsByKey removes every data row whose keyColumn equals keyValue by
// clearing the data region and rewriting the surviving rows. The header and
// type rows are untouched.
func (db *DB) DeleteRowsByKey(tableName, keyColumn string, keyValue interface{}) error {
	values, err := db.client.GetValues(db.spreadsheetID, tableName)
	if err != nil {
		return fmt.Errorf("failed to get table %s: %w", tableName, err)
	}
	if len(values) < dataStartRow {
		// No data rows, nothing to delete.
		return nil
	}

	keyIdx, err := columnIndex(values[0], keyColumn)
	if err != nil {
		return err
	}

	keyStr := fmt.Sprintf("%v", keyValue)
	surviving := make([][]interface{}, 0, len(values)-2)
	for _, row := range values[2:] {
		if keyIdx < len(row) && fmt.Sprintf("%v", row[keyIdx]) == keyStr {
			continue
		}
		surviving = append(surviving, row)
	}

	if len(surviving) == len(values)-2 {
		// No matching rows.
		return nil
	}

	if err := db.TruncateTable(tableName); err != nil {
		return err
	}
	if len(surviving) == 0 {
		return nil
	}
	if err := db.client.AppendRows(db.spreadsheetID, tableName, surviving); err != nil {
		return fmt.Errorf("failed to rewrite surviving rows: %w", err)
	}

	return nil
}

// TruncateTable clears every data row while preserving the header and type
// rows, leaving the table ready for new inserts.
func (db *DB) TruncateTable(tableName string) error {
	clearRange := fmt.Sprintf("%s!A%d:ZZ", tableName, dataStartRow)
	if err := db.client.ClearValues(db.spreadsheetID, clearRange); err != nil {
		return fmt.Errorf("failed to clear table %s: %w", tableName, err)
	}
	return nil
}

func columnIndex(headers []interface{}, columnName string) (int, error) {
	for i, header := range headers {
		if headerStr, ok := header.(string); ok && headerStr == columnName {
			return i, nil
		}
	}
	return 0, fmt.Errorf("column %s not found in header row", columnName)
}

// columnLetter converts a zero-based column index to its A1-notation letter
// ("A", "B", ..., "Z", "AA", ...).
func columnLetter(idx int) string {
	letters := ""
	for idx >= 0 {
		letters = string(rune('A'+idx%26)) + letters
		idx = idx/26 - 1
	}
	return letters
}
