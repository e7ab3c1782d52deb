package http

import (
	"net/url"
	"strings"
)

// shouldAttachAuth decides whether the cookie travels with a request. The
// cookie is attached for relative requests, for the configured base host, and
// for any Xueqiu-owned host. Absolute requests to third-party hosts (CSIndex,
// Danjuan, Eastmoney) never see the credential.
func shouldAttachAuth(u *url.URL, baseHost string) bool {
	host := strings.ToLower(strings.TrimSpace(u.Hostname()))
	if host == "" {
		return true
	}

	if baseHost != "" && host == baseHost {
		return true
	}

	return isXueqiuHost(host)
}

func isXueqiuHost(host string) bool {
	return host == "xueqiu.com" || strings.HasSuffix(host, ".xueqiu.com")
}
