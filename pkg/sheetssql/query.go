package sheetssql

import (
	"fmt"
	"reflect"
	"strconv"
)

// GetTableAs retrieves all data rows from a table and maps them to structs
// of type T by column name, skipping the header and type rows. Rows come
// back in sheet order, which is insertion order for append-only tables.
func GetTableAs[T any](db *DB, tableName string) ([]T, error) {
	values, err := db.client.GetValues(db.spreadsheetID, tableName)
	if err != nil {
		return nil, fmt.Errorf("failed to get table %s: %w", tableName, err)
	}

	// Headers, types, and at least one data row.
	if len(values) < 3 {
		return []T{}, nil
	}

	headers := values[0]
	dataRows := values[2:]

	columnIndexes := make(map[string]int, len(headers))
	for i, header := range headers {
		if headerStr, ok := header.(string); ok {
			columnIndexes[headerStr] = i
		}
	}

	var zero T
	t := reflect.TypeOf(zero)

	fieldMap := make(map[string]reflect.StructField, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if columnName := field.Tag.Get("ssql_header"); columnName != "" {
			fieldMap[columnName] = field
		}
	}

	results := make([]T, 0, len(dataRows))
	for rowIdx, row := range dataRows {
		result := reflect.New(t).Elem()

		for columnName, colIdx := range columnIndexes {
			field, ok := fieldMap[columnName]
			if !ok {
				continue
			}
			if colIdx >= len(row) || row[colIdx] == nil {
				// Column empty in this row.
				continue
			}

			if err := setFieldValue(result.FieldByName(field.Name), row[colIdx]); err != nil {
				return nil, fmt.Errorf("row %d, column %s: %w", rowIdx+3, columnName, err)
			}
		}

		results = append(results, result.Interface().(T))
	}

	return results, nil
}

// setFieldValue converts a sheet cell value to the field's Go type.
// The sheets API returns cells as strings when reading RAW values.
func setFieldValue(field reflect.Value, cellValue interface{}) error {
	if !field.CanSet() {
		return fmt.Errorf("field cannot be set")
	}

	cellStr, ok := cellValue.(string)
	if !ok {
		return fmt.Errorf("cell value is not a string")
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(cellStr)

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if cellStr == "" {
			field.SetInt(0)
			return nil
		}
		intVal, err := strconv.ParseInt(cellStr, 10, 64)
		if err != nil {
			return fmt.Errorf("failed to parse int: %w", err)
		}
		field.SetInt(intVal)

	case reflect.Float32, reflect.Float64:
		if cellStr == "" {
			field.SetFloat(0)
			return nil
		}
		floatVal, err := strconv.ParseFloat(cellStr, 64)
		if err != nil {
			return fmt.Errorf("failed to parse float: %w", err)
		}
		field.SetFloat(floatVal)

	case reflect.Bool:
		if cellStr == "" {
			field.SetBool(false)
			return nil
		}
		boolVal, err := strconv.ParseBool(cellStr)
		if err != nil {
			return fmt.Errorf("failed to parse bool: %w", err)
		}
		field.SetBool(boolVal)

	default:
		return fmt.Errorf("unsupported field type: %s", field.Kind())
	}

	return nil
}

// InsertModels appends structs as rows to their corresponding table.
func InsertModels[T any](db *DB, models []T) error {
	if len(models) == 0 {
		return nil
	}

	t := reflect.TypeOf(models[0])
	tableName := toSnakeCase(t.Name())

	rows := make([][]interface{}, 0, len(models))
	for _, m := range models {
		v := reflect.ValueOf(m)
		row := make([]interface{}, 0, t.NumField())

		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).Tag.Get("ssql_header") == "" {
				continue
			}
			row = append(row, v.Field(i).Interface())
		}

		rows = append(rows, row)
	}

	return db.InsertRows(tableName, rows)
}

// InsertModel appends a single struct as a row to its corresponding table.
func InsertModel[T any](db *DB, model T) error {
	return InsertModels(db, []T{model})
}
