package game

import "time"

type NetworkSession interface {
	Close(errCode string)
	Write(data []byte) error
	Read() ([]byte, error)
	Ping() error
}

type NumberDrawer interface {
	Draw(drawn []BingoNumber) (BingoNumber, error)
}

type CardDealer interface {
	Deal() *Card
}

type PeriodicTickerChannelCreator interface {
	Create(duration time.Duration) <-chan time.Time
}
