package server

import (
	"context"
	"errors"
	"testing"

	"trivia-coffee/internal/adapter"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDependencies_HealthChecks(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	mock.ExpectPing()
	mock.ExpectClose()

	client, redisMock := redismock.NewClientMock()
	redisMock.ExpectPing().SetErr(errors.New("connection refused"))

	deps := &Dependencies{
		DB:    sqlx.NewDb(mockDB, "sqlmock"),
		Cache: adapter.NewRedisCacheAdapter(client),
		redis: client,
	}

	checks := deps.HealthChecks()
	require.Len(t, checks, 2)
	assert.NoError(t, checks["database"](context.Background()))
	assert.Error(t, checks["cache"](context.Background()))

	deps.Close()
	assert.NoError(t, mock.ExpectationsWereMet())
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestDependencies_HealthChecksWithoutCache(t *testing.T) {
	mockDB, _, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	deps := &Dependencies{DB: sqlx.NewDb(mockDB, "sqlmock")}
	checks := deps.HealthChecks()
	assert.Len(t, checks, 1)
	assert.Contains(t, checks, "database")
}
