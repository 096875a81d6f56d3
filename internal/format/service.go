// Package format renders catalog values as display strings. Nothing here
// styles or pads; the view layer owns layout.
package format

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ferrovax/zeroscope/internal/catalog"
)

// TypeLabel compacts a fully qualified service type for display:
// "_http._tcp.local." becomes "http.tcp". Labels without the leading
// underscore are domain parts and are dropped.
func TypeLabel(typeName string) string {
	name := strings.TrimSuffix(typeName, ".")
	parts := strings.Split(name, ".")
	keep := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.HasPrefix(p, "_") {
			keep = append(keep, strings.TrimPrefix(p, "_"))
		}
	}
	if len(keep) == 0 {
		return name
	}
	return strings.Join(keep, ".")
}

// InstanceLabel returns the instance portion of a fully qualified name:
// "Living Room._airplay._tcp.local." becomes "Living Room".
func InstanceLabel(fullName string) string {
	if i := strings.Index(fullName, "._"); i >= 0 {
		return fullName[:i]
	}
	return strings.TrimSuffix(fullName, ".")
}

// HostPort renders the primary endpoint, preferring a resolved address
// over the hostname.
func HostPort(e catalog.Entry) string {
	host := e.PrimaryAddr()
	if host == "" {
		host = strings.TrimSuffix(e.Host, ".")
	}
	if host == "" {
		return ""
	}
	return net.JoinHostPort(host, strconv.Itoa(int(e.Port)))
}

// ServiceLine is the one-row summary shown in the services pane.
func ServiceLine(e catalog.Entry) string {
	return fmt.Sprintf("%s  %s  %s", InstanceLabel(e.FullName), strings.TrimSuffix(e.Host, "."), HostPort(e))
}

// Timestamp renders a change time at full microsecond resolution.
func Timestamp(micros int64) string {
	return time.UnixMicro(micros).UTC().Format("2006-01-02 15:04:05.000000")
}

// RelTime renders a change time relative to now, e.g. "2 minutes ago".
// Both arguments are unix microseconds so callers can pin now for
// deterministic output.
func RelTime(micros, now int64) string {
	return humanize.RelTime(time.UnixMicro(micros), time.UnixMicro(now), "ago", "from now")
}

// Details builds the details pane lines for an entry. now is unix
// microseconds, used for the relative transition time.
func Details(e catalog.Entry, now int64) []string {
	status := "alive"
	if !e.Alive {
		status = "offline"
	}
	lines := []string{
		"Name:  " + InstanceLabel(e.FullName),
		"Full:  " + e.FullName,
		"Type:  " + TypeLabel(e.Type),
	}
	if e.Subtype != "" {
		lines = append(lines, "Sub:   "+TypeLabel(e.Subtype))
	}
	lines = append(lines,
		"Host:  "+strings.TrimSuffix(e.Host, "."),
		"Port:  "+strconv.Itoa(int(e.Port)),
		fmt.Sprintf("State: %s since %s (%s)", status, Timestamp(e.ChangedAt), RelTime(e.ChangedAt, now)),
	)
	if len(e.Addrs) > 0 {
		lines = append(lines, "Addrs: "+strings.Join(e.Addrs, ", "))
	}
	for i, kv := range e.Text {
		if i == 0 {
			lines = append(lines, "TXT:   "+kv)
			continue
		}
		lines = append(lines, "       "+kv)
	}
	return lines
}

// CopyText flattens the details into clipboard-ready text.
func CopyText(e catalog.Entry, now int64) string {
	return strings.Join(Details(e, now), "\n")
}
