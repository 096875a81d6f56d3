package browser

import (
	"strings"

	"github.com/grandcat/zeroconf"

	"github.com/ferrovax/zeroscope/internal/catalog"
)

// ValidType reports whether a meta-browse answer names a browsable service
// type. Subtype enumerations are skipped; browsing the parent type already
// yields their instances.
func ValidType(name string) bool {
	if !strings.HasPrefix(name, "_") {
		return false
	}
	return !strings.Contains(name, "._sub.")
}

// TypeName builds the fully qualified type name from a meta-browse answer.
// The meta service reports each type as an instance, e.g. instance
// "_http._tcp" in domain "local.".
func TypeName(entry *zeroconf.ServiceEntry, domain string) (string, bool) {
	inst := strings.Trim(entry.Instance, ".")
	if inst == "" || !ValidType(inst) {
		return "", false
	}
	d := strings.Trim(domain, ".")
	if d == "" {
		d = strings.Trim(DefaultDomain, ".")
	}
	return inst + "." + d + ".", true
}

// Service strips the domain back off a fully qualified type name; the
// resolver wants service and domain as separate arguments.
func Service(typeName, domain string) string {
	name := strings.TrimSuffix(typeName, ".")
	if d := strings.Trim(domain, "."); d != "" {
		name = strings.TrimSuffix(name, "."+d)
	}
	return name
}

// Normalize converts a resolver answer into a catalog entry: addresses
// deduplicated and sorted, TXT records sorted, liveness set.
func Normalize(typeName string, entry *zeroconf.ServiceEntry) catalog.Entry {
	addrs := make([]string, 0, len(entry.AddrIPv4)+len(entry.AddrIPv6))
	for _, ip := range entry.AddrIPv4 {
		addrs = append(addrs, ip.String())
	}
	for _, ip := range entry.AddrIPv6 {
		addrs = append(addrs, ip.String())
	}
	e := catalog.Entry{
		FullName: entry.ServiceInstanceName(),
		Type:     typeName,
		Host:     entry.HostName,
		Addrs:    addrs,
		Port:     uint16(entry.Port),
		Text:     append([]string(nil), entry.Text...),
		Alive:    true,
	}
	e.Normalize()
	return e
}
