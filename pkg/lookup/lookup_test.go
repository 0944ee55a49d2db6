package lookup_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/Astemirdum/library-borrowing/pkg/lookup"
	"github.com/stretchr/testify/require"
)

func TestFromQuery(t *testing.T) {
	errConn := errors.New("connection refused")

	tests := []struct {
		name     string
		err      error
		wantKind lookup.Kind
		wantErr  error
	}{
		{name: "found", err: nil, wantKind: lookup.Found},
		{name: "no rows", err: sql.ErrNoRows, wantKind: lookup.NotFound},
		{name: "wrapped no rows", err: fmt.Errorf("get: %w", sql.ErrNoRows), wantKind: lookup.NotFound},
		{name: "fault", err: errConn, wantKind: lookup.StoreUnavailable, wantErr: errConn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := lookup.FromQuery(42, tt.err)
			require.Equal(t, tt.wantKind, res.Kind())
			require.Equal(t, tt.wantErr, res.Err())

			v, ok := res.Get()
			require.Equal(t, tt.wantKind == lookup.Found, ok)
			if ok {
				require.Equal(t, 42, v)
			}
		})
	}
}
