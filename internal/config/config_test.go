package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDefaults(t *testing.T) {
	cfg := Resolve(NewEnvironment(nil))
	assert.Equal(t, DefaultDBConfig(), cfg)
	assert.Equal(t, "", cfg.Port)
	assert.Equal(t, "", cfg.Password)
}

func TestResolveExplicitVariableOutranksURL(t *testing.T) {
	env := NewEnvironment(map[string]string{
		"DATABASE_URL": "mysql://urluser:urlpass@a:3307/urldb",
		"MYSQLHOST":    "b",
	})

	cfg := Resolve(env)
	assert.Equal(t, "b", cfg.Host)
	// Fields without an explicit variable still come from the URL.
	assert.Equal(t, "3307", cfg.Port)
	assert.Equal(t, "urldb", cfg.Name)
	assert.Equal(t, "urluser", cfg.User)
	assert.Equal(t, "urlpass", cfg.Password)
}

func TestResolveAppVariablesOutrankPlatform(t *testing.T) {
	env := NewEnvironment(map[string]string{
		"DB_HOST":       "app-host",
		"MYSQLHOST":     "platform-host",
		"MYSQLDATABASE": "platform-db",
		"DB_PASS":       "secret",
		"MYSQLPASSWORD": "other",
	})

	cfg := Resolve(env)
	assert.Equal(t, "app-host", cfg.Host)
	assert.Equal(t, "platform-db", cfg.Name)
	assert.Equal(t, "secret", cfg.Password)
}

func TestResolveEmptyValueFallsThrough(t *testing.T) {
	env := NewEnvironment(map[string]string{
		"DB_HOST":   "",
		"MYSQLHOST": "platform-host",
		"DB_NAME":   "",
	})

	cfg := Resolve(env)
	assert.Equal(t, "platform-host", cfg.Host)
	assert.Equal(t, DefaultName, cfg.Name)
}

func TestResolveMySQLURLFallback(t *testing.T) {
	env := NewEnvironment(map[string]string{
		"MYSQL_URL": "mysql://railway:pw@mysql.internal:3306/railway",
	})

	cfg := Resolve(env)
	assert.Equal(t, "mysql.internal", cfg.Host)
	assert.Equal(t, "3306", cfg.Port)
	assert.Equal(t, "railway", cfg.Name)
	assert.Equal(t, "railway", cfg.User)
	assert.Equal(t, "pw", cfg.Password)
}

func TestResolveUnparsableURLIgnored(t *testing.T) {
	env := NewEnvironment(map[string]string{
		"DATABASE_URL": "mysql://bad host:%zz/db",
	})

	cfg := Resolve(env)
	assert.Equal(t, DefaultHost, cfg.Host)
	assert.Equal(t, DefaultName, cfg.Name)
}

func TestResolveLoopbackAlias(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"app variable", map[string]string{"DB_HOST": "localhost"}},
		{"platform variable", map[string]string{"MYSQLHOST": "LOCALHOST"}},
		{"url", map[string]string{"DATABASE_URL": "mysql://root@localhost/crud_app"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, "127.0.0.1", Resolve(NewEnvironment(tt.env)).Host)
		})
	}
}

func TestResolveCharsetAndDriver(t *testing.T) {
	cfg := Resolve(NewEnvironment(map[string]string{
		"DB_CHARSET": "latin1",
		"DB_DRIVER":  "SQLite",
	}))
	assert.Equal(t, "latin1", cfg.Charset)
	assert.Equal(t, DriverSQLite, cfg.Driver)
}

func TestParseOverrides(t *testing.T) {
	input := strings.Join([]string{
		"# comment",
		"",
		"   ",
		"DB_HOST = db.example.com ",
		"DB_USER=\"quoted user\"",
		"DB_PASS='single quoted'",
		"NO_SEPARATOR",
		"=novalue",
		"DB_NAME=inventory",
		"export DB_PORT=3307",
	}, "\n")

	got := ParseOverrides(strings.NewReader(input))
	assert.Equal(t, map[string]string{
		"DB_HOST": "db.example.com",
		"DB_USER": "quoted user",
		"DB_PASS": "single quoted",
		"DB_NAME": "inventory",
		// No shell syntax: the prefix stays part of the key.
		"export DB_PORT": "3307",
	}, got)
}

func TestParseOverridesValues(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{`PASSWORD=pa$$word`, "pa$$word"},
		{`PASSWORD=a=b=c`, "a=b=c"},
		{`PASSWORD="line\nbreak"`, `line\nbreak`},
		{`PASSWORD="pa$SECRET"`, "pa$SECRET"},
		{`PASSWORD="p${X}q"`, "p${X}q"},
		{`PASSWORD="C:\new\dir"`, `C:\new\dir`},
		{`PASSWORD="a"b"`, `a"b`},
		{`PASSWORD=""`, ""},
		{`PASSWORD='keep "inner" quotes'`, `keep "inner" quotes`},
		{`PASSWORD="mismatched'`, `"mismatched'`},
		{`PASSWORD=`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got := ParseOverrides(strings.NewReader(tt.line))
			require.Contains(t, got, "PASSWORD")
			assert.Equal(t, tt.want, got["PASSWORD"])
		})
	}
}

func TestWithFileNeverOverridesEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "DB_HOST=file-host\nDB_NAME=file-db\nDB_USER=file-user\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	env := NewEnvironment(map[string]string{
		"DB_HOST": "env-host",
		"DB_USER": "", // defined but empty still blocks the file value
	}).WithFile(path)

	host, _ := env.Lookup("DB_HOST")
	assert.Equal(t, "env-host", host)
	assert.Equal(t, "file-db", env.Get("DB_NAME"))

	user, ok := env.Lookup("DB_USER")
	assert.True(t, ok)
	assert.Equal(t, "", user)

	// Empty DB_USER falls through to the default during resolution.
	assert.Equal(t, DefaultUser, Resolve(env).User)
}

func TestWithFileMissing(t *testing.T) {
	env := NewEnvironment(map[string]string{"DB_HOST": "h"})
	got := env.WithFile(filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Equal(t, env, got)
}

func TestWithOverridesDoesNotMutateReceiver(t *testing.T) {
	env := NewEnvironment(map[string]string{"A": "1"})
	merged := env.WithOverrides(map[string]string{"B": "2"})

	_, ok := env.Lookup("B")
	assert.False(t, ok)
	assert.Equal(t, "2", merged.Get("B"))
}
