package registry

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	"xdao.co/lumen/codec"
	"xdao.co/lumen/fetch"
	"xdao.co/lumen/lumerr"
)

// Endpoint is the registry resource path on every host.
const Endpoint = "/skynet/registry"

// Entry is a fully decoded, signature-checked registry entry.
type Entry struct {
	PublicKey ed25519.PublicKey
	Datakey   Datakey
	Data      []byte
	Revision  uint64
	Signature []byte
}

// readResponse is the wire shape of a registry read. Revision rides as a
// json.Number: decoding it through a float64 silently corrupts revisions
// above 2^53, so the numeric text is parsed as a uint64 directly.
type readResponse struct {
	Data      string      `json:"data"`
	Revision  json.Number `json:"revision"`
	Signature string      `json:"signature"`
}

// writeRequest is the wire shape of a registry write.
type writeRequest struct {
	PublicKey string `json:"publickey"`
	Datakey   string `json:"datakey"`
	Revision  uint64 `json:"revision"`
	Data      string `json:"data"`
	Signature string `json:"signature"`
}

// Client reads and writes registry entries against an ordered host list.
//
// Hosts are untrusted; every read is gated by entry-signature verification
// through the progressive fetch protocol, so a host can deny service but
// cannot forge contents.
type Client struct {
	// Hosts are tried in order, best first.
	Hosts []string

	// HTTP owns transport policy. Nil uses http.DefaultClient.
	HTTP *http.Client

	// Logger receives fetch diagnostics. Nil disables logging.
	Logger *zap.Logger
}

// DecodeReadResponse parses and verifies one host's read response body.
//
// Every failure mode — malformed JSON, bad hex, oversized data, unparsable
// revision, invalid signature — is a verification failure: the host is
// lying or broken, and the caller's fetch loop should move on.
func DecodeReadResponse(body []byte, pubkey ed25519.PublicKey, datakey Datakey) (*Entry, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var raw readResponse
	if err := dec.Decode(&raw); err != nil {
		return nil, lumerr.Wrap(lumerr.KindValidation, "LUM-REG-201", "malformed registry response", err)
	}

	data, err := codec.FromHex(raw.Data)
	if err != nil {
		return nil, lumerr.Wrap(lumerr.KindValidation, "LUM-REG-202", "registry data is not hex", err)
	}
	if len(data) > MaxDataSize {
		return nil, lumerr.New(lumerr.KindValidation, "LUM-REG-203", "registry data exceeds 86 bytes")
	}
	sig, err := codec.FromHex(raw.Signature)
	if err != nil {
		return nil, lumerr.Wrap(lumerr.KindValidation, "LUM-REG-204", "registry signature is not hex", err)
	}
	revision, err := strconv.ParseUint(raw.Revision.String(), 10, 64)
	if err != nil {
		return nil, lumerr.Wrap(lumerr.KindValidation, "LUM-REG-205", "registry revision is not a uint64", err)
	}

	if !VerifyEntry(pubkey, datakey, data, revision, sig) {
		return nil, lumerr.New(lumerr.KindCrypto, "LUM-REG-206", "registry entry signature invalid")
	}
	return &Entry{
		PublicKey: pubkey,
		Datakey:   datakey,
		Data:      data,
		Revision:  revision,
		Signature: sig,
	}, nil
}

// ReadVerifier returns the fetch verifier for a registry read at
// (pubkey, datakey).
func ReadVerifier(pubkey ed25519.PublicKey, datakey Datakey) fetch.Verifier {
	return func(r *fetch.Response) error {
		_, err := DecodeReadResponse(r.Body, pubkey, datakey)
		return err
	}
}

// readEndpoint builds the query path for one slot.
func readEndpoint(pubkey ed25519.PublicKey, datakey Datakey) string {
	q := url.Values{}
	q.Set("publickey", "ed25519:"+codec.ToHex(pubkey))
	q.Set("datakey", codec.ToHex(datakey[:]))
	return Endpoint + "?" + q.Encode()
}

// Read fetches and verifies the entry at (pubkey, datakey).
//
// The returned fetch result carries the full per-host trail either way. On
// exhaustion the error is the fetch protocol's; a host-fabricated 404 alone
// never terminates the search.
func (c *Client) Read(ctx context.Context, pubkey ed25519.PublicKey, datakey Datakey) (*Entry, *fetch.Result, error) {
	if len(pubkey) != ed25519.PublicKeySize {
		return nil, nil, lumerr.New(lumerr.KindValidation, "LUM-REG-101", "public key must be exactly 32 bytes")
	}

	opts := fetch.Options{Client: c.HTTP, Logger: c.Logger}
	res, err := fetch.Progressive(ctx, readEndpoint(pubkey, datakey), opts, c.Hosts, ReadVerifier(pubkey, datakey))
	if err != nil {
		return nil, res, err
	}
	// The verifier already accepted this body; decoding again cannot fail.
	entry, err := DecodeReadResponse(res.Response.Body, pubkey, datakey)
	if err != nil {
		return nil, res, lumerr.Wrap(lumerr.KindInternal, "LUM-REG-207", "verified response failed redecode", err)
	}
	return entry, res, nil
}

// Write signs and publishes a new revision for the slot owned by keys.
//
// Unlike reads, an oversized payload here is the caller's own data and is
// fatal to the operation rather than a host failure.
func (c *Client) Write(ctx context.Context, keys Keys, data []byte, revision uint64) (*fetch.Result, error) {
	sig, err := SignEntry(keys.PrivateKey, keys.Datakey, data, revision)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(writeRequest{
		PublicKey: "ed25519:" + codec.ToHex(keys.PublicKey),
		Datakey:   codec.ToHex(keys.Datakey[:]),
		Revision:  revision,
		Data:      codec.ToHex(data),
		Signature: codec.ToHex(sig),
	})
	if err != nil {
		return nil, lumerr.Wrap(lumerr.KindInternal, "LUM-REG-208", "encoding write request", err)
	}

	opts := fetch.Options{
		Method: http.MethodPost,
		Body:   body,
		Header: http.Header{"Content-Type": []string{"application/json"}},
		Client: c.HTTP,
		Logger: c.Logger,
	}
	// A write acknowledgment carries nothing to check cryptographically;
	// a 2xx from any host is the ack.
	return fetch.Progressive(ctx, Endpoint, opts, c.Hosts, func(*fetch.Response) error { return nil })
}
