package repository

import (
	"context"
	"database/sql"

	"github.com/Astemirdum/library-borrowing/borrowing/internal/errs"
	"github.com/Astemirdum/library-borrowing/borrowing/internal/model"
	"github.com/Astemirdum/library-borrowing/pkg/lookup"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	SetBookAvailable(ctx context.Context, bookID int64) error
	GetAvailableBook(ctx context.Context, bookID int64) lookup.Result[model.AvailableBook]
	GetActiveUser(ctx context.Context, userID int64) lookup.Result[model.ActiveUser]
	GetReservedBook(ctx context.Context, bookID int64) lookup.Result[model.ReservedBook]
	Save(ctx context.Context, book model.ReservedBook) (model.ReservationDetails, error)
	SaveBorrowed(ctx context.Context, book model.BorrowedBook) error
}

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

const (
	availableTableName = `available`
	reservedTableName  = `reserved`
	borrowedTableName  = `borrowed`
	userTableName      = `public."user"`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// SetBookAvailable refuses a book that is reserved or borrowed, so a book
// holds one state at a time.
func (r *repository) SetBookAvailable(ctx context.Context, bookID int64) error {
	q, args, err := qb.Insert(availableTableName).
		Columns("book_id").
		Select(sq.Select().
			Column(sq.Expr("?::bigint", bookID)).
			Where(notExists(reservedTableName, bookID)).
			Where(notExists(borrowedTableName, bookID))).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		r.log.Error("SetBookAvailable", zap.String("q", q), zap.Any("args", args), zap.Error(err))
		if isUniqueViolation(err) {
			return errors.Wrapf(errs.ErrAlreadyExists, "book %d is already available", bookID)
		}
		return errors.Wrap(err, "SetBookAvailable")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "RowsAffected")
	}
	if n == 0 {
		return errors.Wrapf(errs.ErrAlreadyExists, "book %d is reserved or borrowed", bookID)
	}
	return nil
}

func notExists(table string, bookID int64) sq.Sqlizer {
	return sq.Expr("not exists (select 1 from "+table+" where book_id = ?)", bookID)
}

func (r *repository) GetAvailableBook(ctx context.Context, bookID int64) lookup.Result[model.AvailableBook] {
	q, args, err := qb.Select("book_id").
		From(availableTableName).
		Where(sq.Eq{"book_id": bookID}).
		Limit(1).
		ToSql()
	if err != nil {
		return lookup.Unavailable[model.AvailableBook](err)
	}

	var book model.AvailableBook
	err = r.db.GetContext(ctx, &book, q, args...)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		r.log.Error("GetAvailableBook", zap.String("q", q), zap.Any("args", args), zap.Error(err))
	}
	return lookup.FromQuery(book, err)
}

// GetActiveUser fails as a whole when the reservations of an existing user
// cannot be read; it never reports such a user with an empty list.
func (r *repository) GetActiveUser(ctx context.Context, userID int64) lookup.Result[model.ActiveUser] {
	q, args, err := qb.Select("id").
		From(userTableName).
		Where(sq.Eq{"id": userID}).
		ToSql()
	if err != nil {
		return lookup.Unavailable[model.ActiveUser](err)
	}

	var id int64
	if err := r.db.GetContext(ctx, &id, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return lookup.Missing[model.ActiveUser]()
		}
		r.log.Error("GetActiveUser", zap.String("q", q), zap.Any("args", args), zap.Error(err))
		return lookup.Unavailable[model.ActiveUser](err)
	}

	reserved, err := r.reservedBooksByUser(ctx, userID)
	if err != nil {
		return lookup.Unavailable[model.ActiveUser](err)
	}
	return lookup.Of(model.ActiveUser{UserID: id, ReservedBooks: reserved})
}

func (r *repository) reservedBooksByUser(ctx context.Context, userID int64) ([]model.ReservedBook, error) {
	q, args, err := qb.Select("book_id", "user_id").
		From(reservedTableName).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, err
	}

	books := make([]model.ReservedBook, 0)
	if err := r.db.SelectContext(ctx, &books, q, args...); err != nil {
		r.log.Error("reservedBooksByUser", zap.String("q", q), zap.Any("args", args), zap.Error(err))
		return nil, err
	}
	return books, nil
}

func (r *repository) GetReservedBook(ctx context.Context, bookID int64) lookup.Result[model.ReservedBook] {
	q, args, err := qb.Select("book_id", "user_id").
		From(reservedTableName).
		Where(sq.Eq{"book_id": bookID}).
		Limit(1).
		ToSql()
	if err != nil {
		return lookup.Unavailable[model.ReservedBook](err)
	}

	var book model.ReservedBook
	err = r.db.GetContext(ctx, &book, q, args...)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		r.log.Error("GetReservedBook", zap.String("q", q), zap.Any("args", args), zap.Error(err))
	}
	return lookup.FromQuery(book, err)
}

// Save stores the reservation and takes the book out of the available set
// in one transaction. A borrowed book cannot be reserved.
func (r *repository) Save(ctx context.Context, book model.ReservedBook) (model.ReservationDetails, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.ReservationDetails{}, errors.Wrap(err, "BeginTxx")
	}
	defer tx.Rollback() //nolint:errcheck

	q, args, err := qb.Insert(reservedTableName).
		Columns("book_id", "user_id").
		Select(sq.Select().
			Column(sq.Expr("?::bigint", book.BookID)).
			Column(sq.Expr("?::bigint", book.UserID)).
			Where(notExists(borrowedTableName, book.BookID))).
		Suffix("returning id").
		ToSql()
	if err != nil {
		return model.ReservationDetails{}, err
	}

	var id model.ReservationID
	if err := tx.QueryRowxContext(ctx, q, args...).Scan(&id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ReservationDetails{}, errors.Wrapf(errs.ErrAlreadyExists, "book %d is borrowed", book.BookID)
		}
		r.log.Error("Save", zap.String("q", q), zap.Any("args", args), zap.Error(err))
		if isUniqueViolation(err) {
			return model.ReservationDetails{}, errors.Wrapf(errs.ErrAlreadyExists, "book %d is already reserved", book.BookID)
		}
		return model.ReservationDetails{}, errors.Wrap(err, "insert reservation")
	}

	q, args, err = qb.Delete(availableTableName).
		Where(sq.Eq{"book_id": book.BookID}).
		ToSql()
	if err != nil {
		return model.ReservationDetails{}, err
	}
	if _, err := tx.ExecContext(ctx, q, args...); err != nil {
		r.log.Error("Save", zap.String("q", q), zap.Any("args", args), zap.Error(err))
		return model.ReservationDetails{}, errors.Wrap(err, "delete available")
	}

	if err := tx.Commit(); err != nil {
		return model.ReservationDetails{}, errors.Wrap(err, "Commit")
	}
	return model.ReservationDetails{ReservationID: id, ReservedBook: book}, nil
}

// SaveBorrowed replaces the reservation of the book by a loan.
func (r *repository) SaveBorrowed(ctx context.Context, book model.BorrowedBook) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "BeginTxx")
	}
	defer tx.Rollback() //nolint:errcheck

	q, args, err := qb.Delete(reservedTableName).
		Where(sq.Eq{"book_id": book.BookID, "user_id": book.UserID}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, q, args...)
	if err != nil {
		r.log.Error("SaveBorrowed", zap.String("q", q), zap.Any("args", args), zap.Error(err))
		return errors.Wrap(err, "delete reservation")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "RowsAffected")
	}
	if n == 0 {
		return errors.Wrapf(errs.ErrReservationNotFound, "book %d user %d", book.BookID, book.UserID)
	}

	q, args, err = qb.Insert(borrowedTableName).
		Columns("book_id", "user_id", "borrowed_date").
		Values(book.BookID, book.UserID, book.BorrowedAt).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, q, args...); err != nil {
		r.log.Error("SaveBorrowed", zap.String("q", q), zap.Any("args", args), zap.Error(err))
		if isUniqueViolation(err) {
			return errors.Wrapf(errs.ErrAlreadyExists, "book %d is already borrowed", book.BookID)
		}
		return errors.Wrap(err, "insert borrowed")
	}

	return errors.Wrap(tx.Commit(), "Commit")
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
