package main

import (
	"context"

	"VidTube.com/pkg/errno"
	sentinel "github.com/alibaba/sentinel-golang/api"
	"github.com/alibaba/sentinel-golang/core/base"
	"github.com/alibaba/sentinel-golang/core/flow"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const toggleResource = "toggle"

// initFlowControl caps the toggle endpoints: like and subscribe flips are
// the write hot path and the only ones worth shedding under load.
func initFlowControl() {
	if err := sentinel.InitDefault(); err != nil {
		hlog.Fatalf("sentinel init failed: %v", err)
	}
	_, err := flow.LoadRules([]*flow.Rule{
		{
			Resource:               toggleResource,
			TokenCalculateStrategy: flow.Direct,
			ControlBehavior:        flow.Reject,
			Threshold:              500,
			StatIntervalInMs:       1000,
		},
	})
	if err != nil {
		hlog.Fatalf("sentinel flow rules failed: %v", err)
	}
}

func toggleFlowLimit() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		entry, blocked := sentinel.Entry(toggleResource, sentinel.WithTrafficType(base.Inbound))
		if blocked != nil {
			c.JSON(consts.StatusTooManyRequests, map[string]interface{}{
				"code":    errno.ServiceErrCode,
				"message": "too many toggle requests",
			})
			c.Abort()
			return
		}
		defer entry.Exit()
		c.Next(ctx)
	}
}
