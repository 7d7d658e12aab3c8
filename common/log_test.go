package common_test

import (
	"context"
	"testing"

	"github.com/labring/aiproxy/bedrock-extfunc/common"
	log "github.com/sirupsen/logrus"
	"github.com/smartystreets/goconvey/convey"
)

func TestLogger(t *testing.T) {
	convey.Convey("Logger Context", t, func() {
		convey.Convey("GetLogger should create new logger if missing", func() {
			logger := common.GetLogger(context.Background())
			convey.So(logger, convey.ShouldNotBeNil)
			convey.So(logger.Data, convey.ShouldNotBeNil)
		})

		convey.Convey("WithLogger should store logger in context", func() {
			entry := common.NewLogger().WithField("request_id", "abc")
			ctx := common.WithLogger(context.Background(), entry)

			logger := common.GetLogger(ctx)
			convey.So(logger, convey.ShouldEqual, entry)
			convey.So(logger.Data["request_id"], convey.ShouldEqual, "abc")
		})
	})
}

func TestInitLog(t *testing.T) {
	convey.Convey("InitLog", t, func() {
		l := log.New()

		convey.Convey("should enable debug level", func() {
			common.InitLog(l, true)
			convey.So(l.GetLevel(), convey.ShouldEqual, log.DebugLevel)
		})

		convey.Convey("should default to info level", func() {
			common.InitLog(l, false)
			convey.So(l.GetLevel(), convey.ShouldEqual, log.InfoLevel)
		})
	})
}
