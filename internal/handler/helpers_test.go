package handler_test

import "go.uber.org/zap"

func testLogger() *zap.Logger {
	return zap.NewNop()
}
