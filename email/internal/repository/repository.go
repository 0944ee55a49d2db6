package repository

import (
	"context"
	"database/sql"

	"github.com/Astemirdum/library-borrowing/email/internal/service"
	"github.com/Astemirdum/library-borrowing/pkg/lookup"
	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	bookTableName = `book`
	userTableName = `public."user"`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var _ service.EmailDatabase = (*repository)(nil)

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

func (r *repository) GetTitleByBookID(ctx context.Context, bookID int64) lookup.Result[string] {
	return r.getString(ctx, "GetTitleByBookID", qb.Select("title").
		From(bookTableName).
		Where(sq.Eq{"id": bookID}))
}

func (r *repository) GetUserEmailAddress(ctx context.Context, userID int64) lookup.Result[string] {
	return r.getString(ctx, "GetUserEmailAddress", qb.Select("email_address").
		From(userTableName).
		Where(sq.Eq{"id": userID}))
}

func (r *repository) getString(ctx context.Context, op string, sb sq.SelectBuilder) lookup.Result[string] {
	q, args, err := sb.Limit(1).ToSql()
	if err != nil {
		return lookup.Unavailable[string](err)
	}
	var v string
	err = r.db.GetContext(ctx, &v, q, args...)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		r.log.Error(op, zap.String("q", q), zap.Any("args", args), zap.Error(err))
	}
	return lookup.FromQuery(v, err)
}
