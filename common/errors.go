package common

import (
	"context"
	"errors"
	"net"
	"strings"
	"syscall"
)

// Messages net/http leaves in the Converse send error once the typed cause
// has been flattened by a retryer or middleware.
var connectionErrorPatterns = []string{
	"dial tcp",
	"no such host",
	"connection refused",
	"connection reset",
	"connection timed out",
	"i/o timeout",
	"network is unreachable",
}

// IsConnectionError reports whether a Converse call failed before Bedrock
// returned any HTTP response. Such failures are surfaced as 502.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}

	var netOpErr *net.OpError
	if errors.As(err, &netOpErr) {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	var syscallErr syscall.Errno
	if errors.As(err, &syscallErr) {
		switch syscallErr {
		case syscall.ECONNREFUSED,
			syscall.ECONNRESET,
			syscall.ECONNABORTED,
			syscall.ETIMEDOUT,
			syscall.ENETUNREACH,
			syscall.EHOSTUNREACH:
			return true
		}
	}

	var addrErr *net.AddrError
	if errors.As(err, &addrErr) {
		return true
	}

	errStr := strings.ToLower(err.Error())
	for _, pattern := range connectionErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}

	return false
}
