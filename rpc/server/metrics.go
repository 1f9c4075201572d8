package server

import (
	"fmt"
	"time"

	"github.com/ValentinKolb/oarr/rpc/common"
	"github.com/VictoriaMetrics/metrics"
)

// observeRequest records count, errors and latency of one handled request
func observeRequest(shardId uint64, msgType common.MessageType, resp *common.Message, start time.Time) {
	metrics.GetOrCreateCounter(
		fmt.Sprintf(`oarr_requests_total{shard="%d",type="%s"}`, shardId, msgType),
	).Inc()

	if resp.MsgType == common.MsgTError || resp.Err != "" {
		metrics.GetOrCreateCounter(
			fmt.Sprintf(`oarr_request_errors_total{shard="%d",type="%s"}`, shardId, msgType),
		).Inc()
	}

	metrics.GetOrCreateHistogram(
		fmt.Sprintf(`oarr_request_duration_seconds{shard="%d"}`, shardId),
	).UpdateDuration(start)
}
