package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestConnectMongo_ZeroTimeoutStillTriesToConnect(t *testing.T) {
	// nothing listens on port 1; server selection gives up after 300ms
	uri := "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=300&connectTimeoutMS=300"

	start := time.Now()
	_, err := ConnectMongo(context.Background(), uri, 0)
	require.Error(t, err)
	require.GreaterOrEqual(t, time.Since(start), 250*time.Millisecond)
}

func TestConnectMongoWithRetry_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ConnectMongoWithRetry(ctx, "mongodb://127.0.0.1:1/?serverSelectionTimeoutMS=50", time.Second, 3)
	require.Error(t, err)
}
