package middleware

import (
	"net"
	"strings"

	"omi-relay/pkg/log"
)

// Config guards the webhook route. An empty Secret or AllowedIPs disables
// the matching check.
type Config struct {
	Secret     string
	AllowedIPs []string
}

type Middleware struct {
	l          log.Logger
	secret     string
	allowedIPs []string
	allowedNet []*net.IPNet
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:      l,
		secret: cfg.Secret,
	}
	for _, entry := range cfg.AllowedIPs {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.Contains(entry, "/") {
			if _, ipNet, err := net.ParseCIDR(entry); err == nil {
				mw.allowedNet = append(mw.allowedNet, ipNet)
			}
			continue
		}
		mw.allowedIPs = append(mw.allowedIPs, entry)
	}
	return mw
}
