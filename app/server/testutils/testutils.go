// Package testutils builds throwaway databases and redis servers for tests.
package testutils

import (
	"fmt"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"personal-blog/app/server/inits"
	"strings"
	"sync/atomic"
	"testing"
)

var dbCounter atomic.Int64

// DB opens a migrated in-memory sqlite database private to the test.
func DB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	conn := fmt.Sprintf("sqlite://file:%s_%d?mode=memory&cache=shared", name, dbCounter.Add(1))

	db, err := inits.DB(conn)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	db.Logger = logger.Discard

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	// 内存数据库在所有连接关闭后就会消失，固定一个连接
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

// Redis starts a miniredis server and returns a client connected to it.
func Redis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	return rdb, mr
}

func Logger(t *testing.T) *zap.Logger {
	t.Helper()
	return zaptest.NewLogger(t, zaptest.Level(zap.WarnLevel))
}
