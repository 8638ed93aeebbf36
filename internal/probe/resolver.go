package probe

import (
	"context"
	"fmt"
	"net"
	"net/netip"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/miekg/dns"
)

// SystemResolver resolves hosts via the system resolver. IP literals
// short-circuit without a lookup.
type SystemResolver struct {
	forceIPv4 bool
	forceIPv6 bool
}

func NewSystemResolver(forceIPv4, forceIPv6 bool) *SystemResolver {
	return &SystemResolver{forceIPv4: forceIPv4, forceIPv6: forceIPv6}
}

func (r *SystemResolver) Resolve(ctx context.Context, host string) (netip.Addr, error) {
	if addr, err := netip.ParseAddr(host); err == nil {
		addr = addr.Unmap()
		if err := r.checkFamily(addr); err != nil {
			return netip.Addr{}, err
		}
		return addr, nil
	}

	network := "ip"
	switch {
	case r.forceIPv4:
		network = "ip4"
	case r.forceIPv6:
		network = "ip6"
	}

	addrs, err := net.DefaultResolver.LookupNetIP(ctx, network, host)
	if err != nil || len(addrs) == 0 {
		return netip.Addr{}, fmt.Errorf("could not resolve %s", host)
	}
	return addrs[0].Unmap(), nil
}

func (r *SystemResolver) checkFamily(addr netip.Addr) error {
	switch {
	case r.forceIPv4 && !addr.Is4():
		return fmt.Errorf("IPv4 is forced and %s is not IPv4", addr)
	case r.forceIPv6 && addr.Is4():
		return fmt.Errorf("IPv6 is forced and %s is not IPv6", addr)
	}
	return nil
}

// DNSResolver resolves hosts by querying an explicit nameserver
// instead of the system resolver.
type DNSResolver struct {
	nameserver string
	timeout    time.Duration
	ipv6       bool
}

// NewDNSResolver creates a resolver for the given nameserver. A bare
// address or name gets the default DNS port appended.
func NewDNSResolver(nameserver string, timeout time.Duration, ipv6 bool) *DNSResolver {
	return &DNSResolver{
		nameserver: nameserverAddr(nameserver),
		timeout:    timeout,
		ipv6:       ipv6,
	}
}

func nameserverAddr(nameserver string) string {
	if _, _, err := net.SplitHostPort(nameserver); err != nil {
		return net.JoinHostPort(nameserver, "53")
	}
	return nameserver
}

func (r *DNSResolver) Resolve(ctx context.Context, host string) (netip.Addr, error) {
	if addr, err := netip.ParseAddr(host); err == nil {
		return addr.Unmap(), nil
	}

	qtype := dns.TypeA
	if r.ipv6 {
		qtype = dns.TypeAAAA
	}

	m := new(dns.Msg)
	m.SetQuestion(dns.Fqdn(host), qtype)

	c := &dns.Client{Timeout: r.timeout}
	reply, _, err := c.ExchangeContext(ctx, m, r.nameserver)
	if err != nil {
		return netip.Addr{}, fmt.Errorf("could not resolve %s: %w", host, err)
	}
	return answerAddr(reply, host)
}

// answerAddr picks the first address record out of a DNS reply
func answerAddr(reply *dns.Msg, host string) (netip.Addr, error) {
	if reply.Rcode != dns.RcodeSuccess {
		return netip.Addr{}, fmt.Errorf("could not resolve %s: %s", host, dns.RcodeToString[reply.Rcode])
	}
	for _, rr := range reply.Answer {
		switch record := rr.(type) {
		case *dns.A:
			if addr, ok := netip.AddrFromSlice(record.A); ok {
				return addr.Unmap(), nil
			}
		case *dns.AAAA:
			if addr, ok := netip.AddrFromSlice(record.AAAA); ok {
				return addr, nil
			}
		}
	}
	return netip.Addr{}, fmt.Errorf("could not resolve %s: no address records", host)
}

// CachedResolver caches successful lookups for a bounded lifetime.
// Failures are not cached, so an attempt after an outage re-resolves.
type CachedResolver struct {
	inner Resolver
	cache *ttlcache.Cache[string, netip.Addr]
}

func NewCachedResolver(inner Resolver, ttl time.Duration) *CachedResolver {
	return &CachedResolver{
		inner: inner,
		cache: ttlcache.New(
			ttlcache.WithTTL[string, netip.Addr](ttl),
			ttlcache.WithDisableTouchOnHit[string, netip.Addr](),
		),
	}
}

func (r *CachedResolver) Resolve(ctx context.Context, host string) (netip.Addr, error) {
	if item := r.cache.Get(host); item != nil {
		return item.Value(), nil
	}
	addr, err := r.inner.Resolve(ctx, host)
	if err != nil {
		return netip.Addr{}, err
	}
	r.cache.Set(host, addr, ttlcache.DefaultTTL)
	return addr, nil
}
