package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IPFilterMiddleware rejects clients on the blocklist. Entries are CIDR
// ranges or single addresses; unparseable entries are logged and ignored.
func IPFilterMiddleware(blocklist []string, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}

	blockedCIDRs := make([]*net.IPNet, 0, len(blocklist))
	for _, entry := range blocklist {
		entry = strings.TrimSpace(entry)
		if ip := net.ParseIP(entry); ip != nil {
			bits := 32
			if ip.To4() == nil {
				bits = 128
			}
			blockedCIDRs = append(blockedCIDRs, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
			continue
		}
		_, ipNet, err := net.ParseCIDR(entry)
		if err != nil {
			log.Warn("ignoring invalid blocklist entry", zap.String("entry", entry))
			continue
		}
		blockedCIDRs = append(blockedCIDRs, ipNet)
	}

	return func(c *gin.Context) {
		clientIP := extractIP(c)
		if clientIP == nil {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}

		for _, ipNet := range blockedCIDRs {
			if ipNet.Contains(clientIP) {
				log.Info("blocked request", zap.String("ip", clientIP.String()), zap.String("path", c.Request.URL.Path))
				c.AbortWithStatus(http.StatusForbidden)
				return
			}
		}

		c.Next()
	}
}

// extractIP extracts the client IP from the request
// Handles X-Forwarded-For header if behind proxy
func extractIP(c *gin.Context) net.IP {
	return net.ParseIP(getClientIP(c))
}
