package database

// The SQL intrinsics. Connections are opened by name and kept in a Connections value belonging to
// one environment, so two interpreters in the same process don't see each other's connections.

import (
	"database/sql"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"src.elv.sh/pkg/persistent/vector"

	"github.com/rlisp-lang/rlisp/source/object"
	"github.com/rlisp-lang/rlisp/source/text"

	// SQL drivers

	_ "github.com/go-sql-driver/mysql"  // MariaDB & MySQL
	_ "github.com/lib/pq"               // Postgres
	_ "github.com/microsoft/go-mssqldb" // SQL Server
	_ "github.com/nakagami/firebirdsql" // Firebird
	_ "github.com/sijms/go-ora"         // Oracle
	_ "modernc.org/sqlite"              // SQLite
)

const (
	DATABASE_ERROR     object.ErrorCode = 44
	UNKNOWN_CONNECTION object.ErrorCode = 45
)

var (
	drivers = map[string]string{"Firebird SQL": "firebirdsql", "MariaDB": "mysql", "MySQL": "mysql",
		"Oracle": "oracle", "Postgres": "postgres", "SQL Server": "sqlserver", "SQLite": "sqlite"}
)

// GetSortedDrivers lists the friendly names of the drivers.
func GetSortedDrivers() []string {
	dr := []string{}
	for k := range drivers {
		dr = append(dr, k)
	}
	sort.Strings(dr)
	return dr
}

func GetDriverOptions() string {
	result := "The following SQL drivers are available: \n\n"
	for _, v := range GetSortedDrivers() {
		result = result + text.BULLET + fmt.Sprintf("%v (%v)\n", v, drivers[v])
	}
	return result
}

// DriverName accepts either a friendly name or the name the driver registers itself under.
func DriverName(name string) (string, bool) {
	if d, ok := drivers[name]; ok {
		return d, true
	}
	for _, d := range drivers {
		if strings.EqualFold(d, name) {
			return d, true
		}
	}
	return "", false
}

type Connections struct {
	dbs map[string]*sql.DB
}

// Load installs the SQL intrinsics into the environment and returns the set of connections they
// share.
func Load(env *object.Environment) *Connections {
	c := &Connections{dbs: map[string]*sql.DB{}}
	for name, fn := range map[string]object.IntrinsicFn{
		"sql-open":    c.open,
		"sql-exec":    c.exec,
		"sql-query":   c.query,
		"sql-close":   c.close,
		"sql-drivers": sqlDrivers,
	} {
		env.DefineIntrinsic(name, fn)
	}
	return c
}

// Close closes every open connection.
func (c *Connections) Close() {
	for name, db := range c.dbs {
		db.Close()
		delete(c.dbs, name)
	}
}

func (c *Connections) Open(name, driver, dsn string) error {
	driverName, ok := DriverName(driver)
	if !ok {
		return fmt.Errorf("no SQL driver called %q", driver)
	}
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return err
	}
	if driverName == "sqlite" { // An in-memory database only lives as long as its connection.
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return err
	}
	if old, ok := c.dbs[name]; ok {
		old.Close()
	}
	c.dbs[name] = db
	return nil
}

func (c *Connections) get(args []object.Expression, min int) (*sql.DB, string, []any, *object.Error) {
	if len(args) < min {
		return nil, "", nil, object.NewArity(min, len(args))
	}
	strs := make([]string, min)
	for i := 0; i < min; i++ {
		s, ok := args[i].(*object.String)
		if !ok {
			return nil, "", nil, object.NewSignature("string", object.TypeOf(args[i]))
		}
		strs[i] = s.Value
	}
	db, ok := c.dbs[strs[0]]
	if !ok {
		return nil, "", nil, object.NewCustom(UNKNOWN_CONNECTION, "no open database connection called \""+strs[0]+"\"")
	}
	params := make([]any, 0, len(args)-min)
	for _, arg := range args[min:] {
		p, err := toParameter(arg)
		if err != nil {
			return nil, "", nil, err
		}
		params = append(params, p)
	}
	query := ""
	if min > 1 {
		query = strs[1]
	}
	return db, query, params, nil
}

// (sql-open name driver dsn)
func (c *Connections) open(args []object.Expression, env *object.Environment) object.Expression {
	if len(args) != 3 {
		return object.NewArity(3, len(args))
	}
	strs := make([]string, 3)
	for i, arg := range args {
		s, ok := arg.(*object.String)
		if !ok {
			return object.NewSignature("string", object.TypeOf(arg))
		}
		strs[i] = s.Value
	}
	if _, ok := DriverName(strs[1]); !ok {
		return object.NewCustom(UNKNOWN_CONNECTION, "no SQL driver called \""+strs[1]+"\"")
	}
	if err := c.Open(strs[0], strs[1], strs[2]); err != nil {
		return object.NewCustom(DATABASE_ERROR, err.Error())
	}
	env.Log.WithField("driver", strs[1]).Debug("opened database connection " + strs[0])
	return object.NIL
}

// (sql-exec name query params...) gives the number of rows affected.
func (c *Connections) exec(args []object.Expression, env *object.Environment) object.Expression {
	db, query, params, err := c.get(args, 2)
	if err != nil {
		return err
	}
	result, e := db.Exec(query, params...)
	if e != nil {
		return object.NewCustom(DATABASE_ERROR, e.Error())
	}
	n, e := result.RowsAffected()
	if e != nil {
		return &object.Number{Value: 0}
	}
	return &object.Number{Value: float64(n)}
}

// (sql-query name query params...) gives a list of rows, each a list of values.
func (c *Connections) query(args []object.Expression, env *object.Environment) object.Expression {
	db, query, params, err := c.get(args, 2)
	if err != nil {
		return err
	}
	rows, e := db.Query(query, params...)
	if e != nil {
		return object.NewCustom(DATABASE_ERROR, e.Error())
	}
	defer rows.Close()
	columns, e := rows.Columns()
	if e != nil {
		return object.NewCustom(DATABASE_ERROR, e.Error())
	}
	result := vector.Empty
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if e := rows.Scan(pointers...); e != nil {
			return object.NewCustom(DATABASE_ERROR, e.Error())
		}
		row := make([]object.Expression, len(values))
		for i, v := range values {
			row[i] = fromColumn(v)
		}
		result = result.Conj(object.MakeList(row...))
	}
	if e := rows.Err(); e != nil {
		return object.NewCustom(DATABASE_ERROR, e.Error())
	}
	items := make([]object.Expression, 0, result.Len())
	for it := result.Iterator(); it.HasElem(); it.Next() {
		items = append(items, it.Elem().(object.Expression))
	}
	return object.MakeList(items...)
}

// (sql-close name)
func (c *Connections) close(args []object.Expression, env *object.Environment) object.Expression {
	db, _, _, err := c.get(args, 1)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return object.NewArity(1, len(args))
	}
	name := args[0].(*object.String).Value
	delete(c.dbs, name)
	if e := db.Close(); e != nil {
		return object.NewCustom(DATABASE_ERROR, e.Error())
	}
	return object.NIL
}

func sqlDrivers(args []object.Expression, env *object.Environment) object.Expression {
	if len(args) != 0 {
		return object.NewArity(0, len(args))
	}
	result := []object.Expression{}
	for _, d := range GetSortedDrivers() {
		result = append(result, &object.String{Value: d})
	}
	return object.MakeList(result...)
}

func toParameter(e object.Expression) (any, *object.Error) {
	switch e := e.(type) {
	case *object.Number:
		if e.Value == math.Trunc(e.Value) && math.Abs(e.Value) < 1<<53 {
			return int64(e.Value), nil
		}
		return e.Value, nil
	case *object.String:
		return e.Value, nil
	case *object.Boolean:
		return e.Value, nil
	}
	if object.IsNil(e) {
		return nil, nil
	}
	return nil, object.NewSignature("num, string, bool or nil", object.TypeOf(e))
}

func fromColumn(v any) object.Expression {
	switch v := v.(type) {
	case nil:
		return object.NIL
	case int64:
		return &object.Number{Value: float64(v)}
	case int32:
		return &object.Number{Value: float64(v)}
	case float64:
		return &object.Number{Value: v}
	case float32:
		return &object.Number{Value: float64(v)}
	case bool:
		return object.MakeBool(v)
	case string:
		return &object.String{Value: v}
	case []byte:
		return &object.String{Value: string(v)}
	case time.Time:
		return &object.String{Value: v.Format(time.RFC3339)}
	}
	return &object.String{Value: fmt.Sprint(v)}
}
