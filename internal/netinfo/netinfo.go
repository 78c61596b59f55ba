// Package netinfo finds the addresses shown in the host panel: the local
// address and interface used for outbound traffic, and the public address
// as seen by a STUN server.
package netinfo

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/pion/stun"
)

// ErrNoInterface is returned when no interface carries the local address.
var ErrNoInterface = errors.New("no interface with this address")

// Local describes where outbound traffic leaves this machine.
type Local struct {
	Device  string
	Address string
}

// DiscoverLocal connects a UDP socket towards probeAddr and reads back the
// local address the OS picked. Connecting a UDP socket sends no packets.
func DiscoverLocal(ctx context.Context, probeAddr string) (Local, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "udp", probeAddr)
	if err != nil {
		return Local{}, fmt.Errorf("failed to open route probe: %w", err)
	}
	defer conn.Close()

	udpAddr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return Local{}, fmt.Errorf("unexpected local address type %T", conn.LocalAddr())
	}
	local := Local{Address: udpAddr.IP.String()}
	name, err := InterfaceName(udpAddr.IP)
	if err != nil {
		return local, err
	}
	local.Device = name
	return local, nil
}

// InterfaceName returns the name of the interface that has ip assigned.
func InterfaceName(ip net.IP) (string, error) {
	ifaces, err := net.Interfaces()
	if err != nil {
		return "", fmt.Errorf("failed to list interfaces: %w", err)
	}
	for _, iface := range ifaces {
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			if ipnet, ok := addr.(*net.IPNet); ok && ipnet.IP.Equal(ip) {
				return iface.Name, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNoInterface, ip)
}

// PublicAddress performs a STUN binding request against serverAddr and
// returns the mapped external IP.
func PublicAddress(ctx context.Context, serverAddr string) (string, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "udp", serverAddr)
	if err != nil {
		return "", fmt.Errorf("failed to dial STUN server: %w", err)
	}
	defer conn.Close()

	c, err := stun.NewClient(conn)
	if err != nil {
		return "", fmt.Errorf("failed to create STUN client: %w", err)
	}
	defer c.Close()

	message := stun.MustBuild(stun.TransactionID, stun.BindingRequest)

	type result struct {
		ip  string
		err error
	}
	done := make(chan result, 1)
	go func() {
		var res result
		var xorAddr stun.XORMappedAddress
		err := c.Do(message, func(ev stun.Event) {
			if ev.Error != nil {
				res.err = ev.Error
				return
			}
			if err := xorAddr.GetFrom(ev.Message); err != nil {
				res.err = err
				return
			}
			res.ip = xorAddr.IP.String()
		})
		if err != nil && res.err == nil {
			res.err = err
		}
		done <- res
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return "", fmt.Errorf("STUN request failed: %w", res.err)
		}
		return res.ip, nil
	case <-ctx.Done():
		return "", fmt.Errorf("STUN request: %w", ctx.Err())
	}
}
