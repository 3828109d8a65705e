package server

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"time"
)

// newGameCode draws a 6-digit code uniformly from [100000, 999999].
func newGameCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "100000"
	}
	return strconv.FormatInt(n.Int64()+100000, 10)
}

func timeNowUTC() time.Time {
	return time.Now().UTC()
}
