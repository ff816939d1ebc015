// Package store holds the generic prepared-statement helpers the service
// packages build their persistence on.
package store

import (
	"database/sql"
	"fmt"
	"strings"
)

func Create(tx *sql.Tx, table string, cols []string, values []interface{}) (int64, error) {
	var params []string

	for range cols {
		params = append(params, "?")
	}

	tsql := fmt.Sprintf(`INSERT INTO %s(%s) VALUES (%s);`, table, strings.Join(cols, ", "), strings.Join(params, ", "))

	stmt, err := tx.Prepare(tsql)
	if err != nil {
		return -1, fmt.Errorf("create: error preparing sql query: %s", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(values...)
	if err != nil {
		return -1, fmt.Errorf("create: unable to insert record in %s: %s", table, err)
	}

	return result.LastInsertId()
}

func Update(tx *sql.Tx, table string, cols []string, values []interface{}, column []string, value []interface{}) (int64, error) {
	values = append(values, value...)
	var set []string

	for _, col := range cols {
		set = append(set, fmt.Sprintf("%s = ?", col))
	}

	var conds []string

	for _, c := range column {
		conds = append(conds, fmt.Sprintf("%s = ?", c))
	}

	tsql := fmt.Sprintf(`UPDATE %s SET %s WHERE %s;`, table, strings.Join(set, ","), strings.Join(conds, " AND "))

	stmt, err := tx.Prepare(tsql)
	if err != nil {
		return -1, fmt.Errorf("update: error preparing sql query: %s", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(values...)
	if err != nil {
		return -1, fmt.Errorf("update: unable to update record in %s: %s", table, err)
	}

	return result.RowsAffected()
}

func Delete(tx *sql.Tx, table string, column []string, value []interface{}) (int64, error) {
	var conds []string

	for _, c := range column {
		conds = append(conds, fmt.Sprintf("%s = ?", c))
	}

	tsql := fmt.Sprintf(`DELETE FROM %s WHERE %s;`, table, strings.Join(conds, " AND "))

	stmt, err := tx.Prepare(tsql)
	if err != nil {
		return -1, fmt.Errorf("delete: error preparing sql query: %s", err)
	}
	defer stmt.Close()

	result, err := stmt.Exec(value...)
	if err != nil {
		return -1, fmt.Errorf("delete: unable to delete record in %s: %s", table, err)
	}

	return result.RowsAffected()
}
