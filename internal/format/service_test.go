package format

import (
	"strings"
	"testing"

	"github.com/ferrovax/zeroscope/internal/catalog"
)

func TestTypeLabel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"_http._tcp.local.", "http.tcp"},
		{"_airplay._tcp.local.", "airplay.tcp"},
		{"_services._dns-sd._udp.local.", "services.dns-sd.udp"},
		{"plain.local.", "plain.local"},
	}
	for _, c := range cases {
		if got := TypeLabel(c.in); got != c.want {
			t.Fatalf("TypeLabel(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestInstanceLabel(t *testing.T) {
	if got := InstanceLabel("Living Room._airplay._tcp.local."); got != "Living Room" {
		t.Fatalf("expected instance portion, got %q", got)
	}
	if got := InstanceLabel("bare-name."); got != "bare-name" {
		t.Fatalf("expected trailing dot trimmed, got %q", got)
	}
}

func TestHostPortPrefersAddress(t *testing.T) {
	e := catalog.Entry{Host: "box.local.", Addrs: []string{"192.168.1.7"}, Port: 8080}
	if got := HostPort(e); got != "192.168.1.7:8080" {
		t.Fatalf("expected address endpoint, got %q", got)
	}

	e.Addrs = nil
	if got := HostPort(e); got != "box.local:8080" {
		t.Fatalf("expected hostname endpoint, got %q", got)
	}

	e.Addrs = []string{"fe80::1"}
	if got := HostPort(e); got != "[fe80::1]:8080" {
		t.Fatalf("expected bracketed ipv6 endpoint, got %q", got)
	}
}

func TestTimestampMicrosecondResolution(t *testing.T) {
	if got := Timestamp(1700000000123456); got != "2023-11-14 22:13:20.123456" {
		t.Fatalf("unexpected timestamp %q", got)
	}
}

func TestRelTimeIsDeterministicForFixedNow(t *testing.T) {
	base := int64(1700000000000000)
	got := RelTime(base, base+2*60*1000000)
	if got != "2 minutes ago" {
		t.Fatalf("expected \"2 minutes ago\", got %q", got)
	}
}

func TestDetailsIncludeStateAndRecords(t *testing.T) {
	e := catalog.Entry{
		FullName:  "web._http._tcp.local.",
		Type:      "_http._tcp.local.",
		Host:      "box.local.",
		Addrs:     []string{"192.168.1.7", "fe80::1"},
		Port:      8080,
		Text:      []string{"model=x", "path=/"},
		Alive:     false,
		ChangedAt: 1700000000123456,
	}
	lines := Details(e, 1700000060123456)
	joined := strings.Join(lines, "\n")

	for _, want := range []string{
		"Name:  web",
		"Type:  http.tcp",
		"Host:  box.local",
		"Port:  8080",
		"offline since 2023-11-14 22:13:20.123456",
		"Addrs: 192.168.1.7, fe80::1",
		"TXT:   model=x",
	} {
		if !strings.Contains(joined, want) {
			t.Fatalf("expected details to contain %q, got:\n%s", want, joined)
		}
	}
	if strings.Contains(joined, "Sub:") {
		t.Fatalf("expected no subtype line, got:\n%s", joined)
	}

	if got := CopyText(e, 1700000060123456); got != joined {
		t.Fatalf("expected copy text to match details")
	}
}
