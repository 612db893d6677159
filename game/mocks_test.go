package game

import (
	"time"

	"github.com/stretchr/testify/mock"
)

// --- NetworkSession ---

type MockNetworkSession struct {
	mock.Mock
}

func (m *MockNetworkSession) Close(errCode string) {
	m.Called(errCode)
}

func (m *MockNetworkSession) Write(data []byte) error {
	args := m.Called(data)
	return args.Error(0)
}

func (m *MockNetworkSession) Read() ([]byte, error) {
	args := m.Called()
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockNetworkSession) Ping() error {
	args := m.Called()
	return args.Error(0)
}

// --- NumberDrawer ---

type MockNumberDrawer struct {
	mock.Mock
}

func (m *MockNumberDrawer) Draw(drawn []BingoNumber) (BingoNumber, error) {
	args := m.Called(drawn)
	return args.Get(0).(BingoNumber), args.Error(1)
}

// --- CardDealer ---

type MockCardDealer struct {
	mock.Mock
}

func (m *MockCardDealer) Deal() *Card {
	args := m.Called()
	return args.Get(0).(*Card)
}

// --- PeriodicTickerChannelCreator ---

type MockPeriodicTickerChannelCreator struct {
	mock.Mock
}

func (m *MockPeriodicTickerChannelCreator) Create(duration time.Duration) <-chan time.Time {
	args := m.Called(duration)
	return args.Get(0).(chan time.Time)
}
