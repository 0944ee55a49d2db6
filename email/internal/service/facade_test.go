package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Astemirdum/library-borrowing/email/internal/errs"
	"github.com/Astemirdum/library-borrowing/email/internal/model"
	"github.com/Astemirdum/library-borrowing/email/internal/service"
	service_mocks "github.com/Astemirdum/library-borrowing/email/internal/service/mocks"
	"github.com/Astemirdum/library-borrowing/pkg/lookup"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFacade_Handle(t *testing.T) {
	t.Parallel()
	cmd := model.SendReservationConfirmationCommand{ReservationID: 3, BookID: 42, UserID: 7}
	type mockBehavior func(s *service_mocks.MockEmailSender, db *service_mocks.MockEmailDatabase)

	tests := []struct {
		name         string
		mockBehavior mockBehavior
		wantErr      error
		wantMsg      string
	}{
		{
			name: "ok",
			mockBehavior: func(s *service_mocks.MockEmailSender, db *service_mocks.MockEmailDatabase) {
				db.EXPECT().GetTitleByBookID(gomock.Any(), int64(42)).Return(lookup.Of("Dune"))
				db.EXPECT().GetUserEmailAddress(gomock.Any(), int64(7)).Return(lookup.Of("reader@example.com"))
				s.EXPECT().SendReservationConfirmationEmail(gomock.Any(), model.ReservationConfirmEmail{
					Recipient:     "reader@example.com",
					BookTitle:     "Dune",
					ReservationID: 3,
				}).Return(nil)
			},
		},
		{
			name: "err. no book title",
			mockBehavior: func(s *service_mocks.MockEmailSender, db *service_mocks.MockEmailDatabase) {
				db.EXPECT().GetTitleByBookID(gomock.Any(), int64(42)).Return(lookup.Missing[string]())
			},
			wantErr: errs.ErrIllegalArgument,
			wantMsg: "there is no book with an id: 42",
		},
		{
			name: "err. no user email",
			mockBehavior: func(s *service_mocks.MockEmailSender, db *service_mocks.MockEmailDatabase) {
				db.EXPECT().GetTitleByBookID(gomock.Any(), int64(42)).Return(lookup.Of("Dune"))
				db.EXPECT().GetUserEmailAddress(gomock.Any(), int64(7)).Return(lookup.Missing[string]())
			},
			wantErr: errs.ErrIllegalArgument,
			wantMsg: "there is no user with an id: 7",
		},
		{
			name: "err. blank user email",
			mockBehavior: func(s *service_mocks.MockEmailSender, db *service_mocks.MockEmailDatabase) {
				db.EXPECT().GetTitleByBookID(gomock.Any(), int64(42)).Return(lookup.Of("Dune"))
				db.EXPECT().GetUserEmailAddress(gomock.Any(), int64(7)).Return(lookup.Of("  "))
			},
			wantErr: errs.ErrIllegalArgument,
		},
		{
			name: "err. store unavailable",
			mockBehavior: func(s *service_mocks.MockEmailSender, db *service_mocks.MockEmailDatabase) {
				db.EXPECT().GetTitleByBookID(gomock.Any(), int64(42)).Return(lookup.Unavailable[string](errors.New("i/o timeout")))
			},
			wantErr: errs.ErrStoreUnavailable,
		},
		{
			name: "err. sender",
			mockBehavior: func(s *service_mocks.MockEmailSender, db *service_mocks.MockEmailDatabase) {
				db.EXPECT().GetTitleByBookID(gomock.Any(), int64(42)).Return(lookup.Of("Dune"))
				db.EXPECT().GetUserEmailAddress(gomock.Any(), int64(7)).Return(lookup.Of("reader@example.com"))
				s.EXPECT().SendReservationConfirmationEmail(gomock.Any(), gomock.Any()).Return(errSMTP)
			},
			wantErr: errSMTP,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			sender := service_mocks.NewMockEmailSender(c)
			db := service_mocks.NewMockEmailDatabase(c)
			tt.mockBehavior(sender, db)

			err := service.NewFacade(sender, db, zap.NewNop()).Handle(context.Background(), cmd)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				require.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

var errSMTP = errors.New("smtp: 451 try again later")

func TestFacade_HandleTwiceSendsTwice(t *testing.T) {
	c := gomock.NewController(t)
	sender := service_mocks.NewMockEmailSender(c)
	db := service_mocks.NewMockEmailDatabase(c)

	db.EXPECT().GetTitleByBookID(gomock.Any(), int64(42)).Return(lookup.Of("Dune")).Times(2)
	db.EXPECT().GetUserEmailAddress(gomock.Any(), int64(7)).Return(lookup.Of("reader@example.com")).Times(2)
	sender.EXPECT().SendReservationConfirmationEmail(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	f := service.NewFacade(sender, db, zap.NewNop())
	cmd := model.SendReservationConfirmationCommand{ReservationID: 3, BookID: 42, UserID: 7}
	require.NoError(t, f.Handle(context.Background(), cmd))
	require.NoError(t, f.Handle(context.Background(), cmd))
}

func TestReservationEmail(t *testing.T) {
	email, err := service.ReservationEmail(3, "Dune", " reader@example.com ")
	require.NoError(t, err)
	require.Equal(t, "reader@example.com", email.Recipient)
	require.Equal(t, "Library: book reserved", email.Subject())
	require.Contains(t, email.Content(), `"Dune"`)
	require.Contains(t, email.Content(), "reservation id is 3")

	_, err = service.ReservationEmail(3, "Dune", "")
	require.ErrorIs(t, err, errs.ErrEmptyRecipient)
}

func TestFacade_StoreFaultKeepsCause(t *testing.T) {
	c := gomock.NewController(t)
	sender := service_mocks.NewMockEmailSender(c)
	db := service_mocks.NewMockEmailDatabase(c)
	cause := errors.New("dial tcp 10.0.0.5:5432: connect: connection refused")
	db.EXPECT().GetTitleByBookID(gomock.Any(), int64(42)).Return(lookup.Of("Dune"))
	db.EXPECT().GetUserEmailAddress(gomock.Any(), int64(7)).Return(lookup.Unavailable[string](cause))

	err := service.NewFacade(sender, db, zap.NewNop()).
		Handle(context.Background(), model.SendReservationConfirmationCommand{ReservationID: 3, BookID: 42, UserID: 7})
	require.ErrorIs(t, err, errs.ErrStoreUnavailable)
	require.ErrorIs(t, err, cause)
}
