package database_test

import (
	"testing"

	"github.com/rlisp-lang/rlisp/source/database"
	"github.com/rlisp-lang/rlisp/source/test_helper"
)

const openPeople = `(sql-open "db" "SQLite" ":memory:")
	(sql-exec "db" "CREATE TABLE people (name TEXT, age INTEGER)")
	(sql-exec "db" "INSERT INTO people VALUES (?, ?), (?, ?)" "Ann" 30 "Bob" 25.5) `

func TestOpen(t *testing.T) {
	tests := []test_helper.TestItem{
		{`(sql-open "db" "SQLite" ":memory:")`, `()`},
		{`(sql-open "db" "sqlite" ":memory:")`, `()`},
		{`(sql-open "db" "SQLite" ":memory:") (sql-open "db" "SQLite" ":memory:")`, `()`},
		{`(sql-open "db" "Nope" "")`, `error[045]: no SQL driver called "Nope"`},
		{`(sql-open "db" "SQLite")`, `error[004]: arity mismatch: expected 3, found 2`},
		{`(sql-open 'db "SQLite" ":memory:")`, `error[009]: signature mismatch: expected string, found symbol`},
	}
	test_helper.RunTest(t, "", tests, test_helper.TestValues)
}

func TestExecAndQuery(t *testing.T) {
	tests := []test_helper.TestItem{
		{openPeople, `2`},
		{openPeople + `(sql-query "db" "SELECT name, age FROM people ORDER BY age")`, `(("Bob" 25.5) ("Ann" 30))`},
		{openPeople + `(sql-query "db" "SELECT name FROM people WHERE age > ?" 26)`, `(("Ann"))`},
		{openPeople + `(sql-query "db" "SELECT name FROM people WHERE age > ?" 100)`, `()`},
		{openPeople + `(sql-exec "db" "DELETE FROM people")`, `2`},
		{`(sql-open "db" "SQLite" ":memory:") (sql-query "db" "SELECT NULL, 1.5, 'x'")`, `((() 1.5 "x"))`},
		{`(sql-open "db" "SQLite" ":memory:") (sql-query "db" "SELECT ?" nil)`, `((()))`},
		{`(sql-open "db" "SQLite" ":memory:") (sql-exec "db" "SELECT ?" '(1 2))`,
			`error[009]: signature mismatch: expected num, string, bool or nil, found cons`},
		{`(sql-query "other" "SELECT 1")`, `error[045]: no open database connection called "other"`},
		{`(sql-query "db")`, `error[004]: arity mismatch: expected 2, found 1`},
	}
	test_helper.RunTest(t, "", tests, test_helper.TestValues)
}

func TestDatabaseErrors(t *testing.T) {
	tests := []test_helper.TestItem{
		{`(sql-open "db" "SQLite" ":memory:") (sql-exec "db" "NOT SQL AT ALL")`, `44`},
		{`(sql-open "db" "SQLite" ":memory:") (sql-query "db" "SELECT * FROM nowhere")`, `44`},
		{`(sql-open "db" "SQLite" ":memory:") (sql-close "db") (sql-query "db" "SELECT 1")`, `45`},
		{`(sql-close "db")`, `45`},
	}
	test_helper.RunTest(t, "", tests, test_helper.TestErrorCodes)
}

func TestDrivers(t *testing.T) {
	tests := []test_helper.TestItem{
		{`(sql-drivers)`, `("Firebird SQL" "MariaDB" "MySQL" "Oracle" "Postgres" "SQL Server" "SQLite")`},
		{`(sql-drivers 1)`, `error[004]: arity mismatch: expected 0, found 1`},
	}
	test_helper.RunTest(t, "", tests, test_helper.TestValues)
}

func TestDriverName(t *testing.T) {
	tests := []struct {
		name, want string
		ok         bool
	}{
		{"Postgres", "postgres", true},
		{"postgres", "postgres", true},
		{"MariaDB", "mysql", true},
		{"SQLSERVER", "sqlserver", true},
		{"dBase", "", false},
	}
	for _, tt := range tests {
		got, ok := database.DriverName(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("DriverName(%q) gave %q, %v; wanted %q, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}
