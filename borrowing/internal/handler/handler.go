package handler

import (
	"net/http"
	"strconv"

	"github.com/Astemirdum/library-borrowing/borrowing/internal/errs"
	"github.com/Astemirdum/library-borrowing/borrowing/internal/model"
	md "github.com/Astemirdum/library-borrowing/pkg/middleware"
	"github.com/Astemirdum/library-borrowing/pkg/validate"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Handler struct {
	borrowingSvc BorrowingService
	log          *zap.Logger
}

func New(borrowingSvc BorrowingService, log *zap.Logger) *Handler {
	return &Handler{
		borrowingSvc: borrowingSvc,
		log:          log.Named("handler"),
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("/api/v1",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(h.log)),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/books/:bookId/available", h.MakeBookAvailable)
	api.POST("/reservations", h.ReserveBook)
	api.POST("/borrowings", h.BorrowBook)
	api.GET("/users/:userId", h.GetActiveUser)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) MakeBookAvailable(c echo.Context) error {
	bookID, err := idParam(c, "bookId")
	if err != nil {
		return err
	}
	if err := h.borrowingSvc.MakeBookAvailable(c.Request().Context(), bookID); err != nil {
		return h.httpError(err)
	}
	return c.NoContent(http.StatusCreated)
}

func (h *Handler) ReserveBook(c echo.Context) error {
	var req model.BookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	details, err := h.borrowingSvc.ReserveBook(c.Request().Context(), req.BookID, req.UserID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, details)
}

func (h *Handler) BorrowBook(c echo.Context) error {
	var req model.BookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	borrowed, err := h.borrowingSvc.BorrowBook(c.Request().Context(), req.BookID, req.UserID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusCreated, borrowed)
}

func (h *Handler) GetActiveUser(c echo.Context) error {
	userID, err := idParam(c, "userId")
	if err != nil {
		return err
	}
	user, err := h.borrowingSvc.GetActiveUser(c.Request().Context(), userID)
	if err != nil {
		return h.httpError(err)
	}
	return c.JSON(http.StatusOK, user)
}

func idParam(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return id, nil
}

// httpError hides the cause of 5xx answers from the client and logs it instead.
func (h *Handler) httpError(err error) *echo.HTTPError {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrAvailableBookNotFound),
		errors.Is(err, errs.ErrActiveUserNotFound),
		errors.Is(err, errs.ErrReservationNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrTooManyBooksAssigned),
		errors.Is(err, errs.ErrAlreadyExists):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrStoreUnavailable):
		code = http.StatusServiceUnavailable
	}
	if code >= http.StatusInternalServerError {
		h.log.Error("request failed", zap.Int("status", code), zap.Error(err))
		return echo.NewHTTPError(code, http.StatusText(code))
	}
	return echo.NewHTTPError(code, err.Error())
}
