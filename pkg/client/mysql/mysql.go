package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"time"

	"github.com/go-sql-driver/mysql"
)

type Config struct {
	Username        string
	Password        string
	Host            string
	Port            string
	Database        string
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

func (c Config) DSN() string {
	mc := mysql.NewConfig()
	mc.User = c.Username
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.Host, c.Port)
	mc.DBName = c.Database
	mc.ParseTime = true
	// report matched rows, so an update that changes nothing still counts
	mc.ClientFoundRows = true
	mc.Params = map[string]string{"charset": "utf8mb4"}

	return mc.FormatDSN()
}

func NewClient(ctx context.Context, cfg Config) (*sql.DB, error) {
	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("unable to open database: %v", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("unable to ping database: %v", err)
	}

	return db, nil
}
