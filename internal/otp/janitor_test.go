package otp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestJanitorSweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	codeRepo := NewMockCodeRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	janitor := NewJanitor(codeRepo, userRepo)

	tests := []struct {
		name        string
		prepareMock func()
	}{
		{
			name: "Removes expired codes and stale accounts",
			prepareMock: func() {
				codeRepo.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).Return(int64(3), nil)
				userRepo.EXPECT().DeleteUnverifiedBefore(gomock.Any(), gomock.Any()).Return(int64(1), nil)
			},
		},
		{
			name: "Nothing to remove",
			prepareMock: func() {
				codeRepo.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).Return(int64(0), nil)
				userRepo.EXPECT().DeleteUnverifiedBefore(gomock.Any(), gomock.Any()).Return(int64(0), nil)
			},
		},
		{
			name: "Code sweep failure does not stop the user purge",
			prepareMock: func() {
				codeRepo.EXPECT().DeleteExpired(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("database error"))
				userRepo.EXPECT().DeleteUnverifiedBefore(gomock.Any(), gomock.Any()).Return(int64(2), nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()
			janitor.sweep(context.Background())
		})
	}
}

func TestJanitorStartStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	codeRepo := NewMockCodeRepo(ctrl)
	userRepo := NewMockUserRepo(ctrl)
	janitor := NewJanitor(codeRepo, userRepo)

	ctx, cancel := context.WithCancel(context.Background())
	janitor.Start(ctx)
	cancel()

	// No sweep expectations were set: cancelling before the first tick
	// must stop the loop without touching the repositories.
	assert.NotNil(t, janitor)
}
