package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/GlebRadaev/erpfinance/internal/notifier"
	"github.com/stretchr/testify/suite"
	gomock "go.uber.org/mock/gomock"
)

type ApplicationSuite struct {
	suite.Suite
	app *Application
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestWaitClosesNotifier() {
	ctrl := gomock.NewController(s.T())
	defer ctrl.Finish()

	s.app.notifier = notifier.New(notifier.NewMockMailer(ctrl), 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.app.Wait(ctx, cancel)

	s.NoError(err)
	s.ErrorIs(s.app.notifier.Enqueue(context.Background(), notificationFor("alice@example.com")), notifier.ErrPoolClosed)
}

func (s *ApplicationSuite) TestStartRejectsInvalidPolicy() {
	s.T().Setenv("REVIEW_POLICY", "lenient")
	resetFlags()

	err := s.app.Start(context.Background())

	s.Require().Error(err)
	s.Contains(err.Error(), "unsupported review policy")
}
