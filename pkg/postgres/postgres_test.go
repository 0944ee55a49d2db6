package postgres_test

import (
	"testing"

	"github.com/Astemirdum/library-borrowing/pkg/postgres"
	"github.com/stretchr/testify/require"
)

func TestDB_DSN(t *testing.T) {
	cfg := postgres.DB{
		Host:     "db",
		Port:     "5433",
		Username: "lib",
		Password: "secret",
		NameDB:   "library",
		SSLMode:  "disable",
	}
	require.Equal(t, "postgres://lib:secret@db:5433/library?sslmode=disable", cfg.DSN())
}
