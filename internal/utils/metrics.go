package utils

import (
	"strconv"

	"handoff-address/pkg/metrics"
)

func RecordAddressParse(source string, valid bool) {
	metrics.AddressParsesTotal.WithLabelValues(source, strconv.FormatBool(valid)).Inc()
}

func RecordFallbackMode(active bool) {
	if active {
		metrics.FallbackMode.Set(1)
		return
	}
	metrics.FallbackMode.Set(0)
}
