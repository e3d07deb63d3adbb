// Package clickhouse persists analyzed per-block stats.
package clickhouse

import (
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE
//go:generate mockgen -destination=driver_mocks_test.go -package=$GOPACKAGE github.com/ClickHouse/clickhouse-go/v2/lib/driver Conn,Batch

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

type Repository struct {
	conn    clickhouse.Conn
	metrics Metrics
	network string
}

func NewRepository(dsn, network string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}
	if network == "" {
		return nil, errors.New("network is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: conn, metrics: metrics, network: network}, nil
}
