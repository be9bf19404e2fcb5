package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"xdao.co/lumen/codec"
	"xdao.co/lumen/lumerr"
)

// entryJSON renders a wire read response for an entry.
func entryJSON(t *testing.T, data []byte, revision string, sig []byte) []byte {
	t.Helper()
	body := fmt.Sprintf(`{"data":%q,"revision":%s,"signature":%q}`,
		codec.ToHex(data), revision, codec.ToHex(sig))
	return []byte(body)
}

func TestDecodeReadResponse(t *testing.T) {
	k := testKeys(t)
	data := []byte("profile-v1")
	sig, err := SignEntry(k.PrivateKey, k.Datakey, data, 7)
	if err != nil {
		t.Fatalf("SignEntry: %v", err)
	}

	entry, err := DecodeReadResponse(entryJSON(t, data, "7", sig), k.PublicKey, k.Datakey)
	if err != nil {
		t.Fatalf("DecodeReadResponse: %v", err)
	}
	if entry.Revision != 7 || string(entry.Data) != "profile-v1" {
		t.Fatalf("entry = %+v", entry)
	}
}

// Revisions above 2^53 survive decoding exactly. A float64 path would round
// this value and the signature check would pass on corrupted state; the
// json.Number path must keep every digit.
func TestDecodeReadResponseLargeRevision(t *testing.T) {
	k := testKeys(t)
	revision := uint64(1<<63 + 3)
	sig, err := SignEntry(k.PrivateKey, k.Datakey, []byte("x"), revision)
	if err != nil {
		t.Fatalf("SignEntry: %v", err)
	}

	body := entryJSON(t, []byte("x"), fmt.Sprintf("%d", revision), sig)
	entry, err := DecodeReadResponse(body, k.PublicKey, k.Datakey)
	if err != nil {
		t.Fatalf("DecodeReadResponse: %v", err)
	}
	if entry.Revision != revision {
		t.Fatalf("revision = %d, want %d", entry.Revision, revision)
	}
}

func TestDecodeReadResponseRejects(t *testing.T) {
	k := testKeys(t)
	sig, err := SignEntry(k.PrivateKey, k.Datakey, []byte("x"), 1)
	if err != nil {
		t.Fatalf("SignEntry: %v", err)
	}

	cases := []struct {
		name string
		body []byte
	}{
		{"not json", []byte("<html>portal error page</html>")},
		{"bad data hex", []byte(`{"data":"zz","revision":1,"signature":"00"}`)},
		{"bad signature hex", []byte(`{"data":"00","revision":1,"signature":"zz"}`)},
		{"negative revision", entryJSON(t, []byte("x"), "-1", sig)},
		{"fractional revision", entryJSON(t, []byte("x"), "1.5", sig)},
		{"overflow revision", entryJSON(t, []byte("x"), "18446744073709551616", sig)},
		{"wrong revision", entryJSON(t, []byte("x"), "2", sig)},
		{"oversized data", entryJSON(t, make([]byte, MaxDataSize+1), "1", sig)},
		{"truncated signature", entryJSON(t, []byte("x"), "1", sig[:32])},
	}
	for _, c := range cases {
		if _, err := DecodeReadResponse(c.body, k.PublicKey, k.Datakey); err == nil {
			t.Fatalf("%s: expected error", c.name)
		}
	}
}

func TestClientReadEscalatesPastLyingHost(t *testing.T) {
	k := testKeys(t)
	data := []byte("current state")
	sig, err := SignEntry(k.PrivateKey, k.Datakey, data, 3)
	if err != nil {
		t.Fatalf("SignEntry: %v", err)
	}
	good := entryJSON(t, data, "3", sig)

	forged := entryJSON(t, []byte("forged state"), "9999", sig)

	lying := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(forged)
	}))
	defer lying.Close()
	honest := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, Endpoint) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		q := r.URL.Query()
		if q.Get("publickey") != "ed25519:"+codec.ToHex(k.PublicKey) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if q.Get("datakey") != codec.ToHex(k.Datakey[:]) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_, _ = w.Write(good)
	}))
	defer honest.Close()

	c := &Client{Hosts: []string{lying.URL, honest.URL}}
	entry, res, err := c.Read(context.Background(), k.PublicKey, k.Datakey)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(entry.Data) != "current state" || entry.Revision != 3 {
		t.Fatalf("entry = %+v", entry)
	}
	if res.Host != honest.URL {
		t.Fatalf("Host = %q, want honest host", res.Host)
	}
	if len(res.FailedHosts) != 1 || res.FailedHosts[0] != lying.URL {
		t.Fatalf("FailedHosts = %v", res.FailedHosts)
	}
}

func TestClientReadExhaustion(t *testing.T) {
	k := testKeys(t)
	notFound := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer notFound.Close()

	c := &Client{Hosts: []string{notFound.URL}}
	_, res, err := c.Read(context.Background(), k.PublicKey, k.Datakey)
	if err == nil {
		t.Fatalf("expected exhaustion error")
	}
	if !lumerr.IsKind(err, lumerr.KindExhausted) {
		t.Fatalf("expected Exhausted kind, got %v", err)
	}
	if res.Response == nil || res.Response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected the 404 surfaced, got %+v", res.Response)
	}
}

func TestClientWrite(t *testing.T) {
	k := testKeys(t)
	var got writeRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != Endpoint {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		b, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(b, &got); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := &Client{Hosts: []string{srv.URL}}
	res, err := c.Write(context.Background(), k, []byte("new state"), 12)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected write success")
	}

	// The server saw a request this library would itself verify.
	data, err := codec.FromHex(got.Data)
	if err != nil {
		t.Fatalf("data hex: %v", err)
	}
	sig, err := codec.FromHex(got.Signature)
	if err != nil {
		t.Fatalf("signature hex: %v", err)
	}
	if got.Revision != 12 {
		t.Fatalf("revision = %d", got.Revision)
	}
	if !VerifyEntry(k.PublicKey, k.Datakey, data, got.Revision, sig) {
		t.Fatalf("written entry does not verify")
	}
}

func TestClientWriteOversizedDataFatal(t *testing.T) {
	k := testKeys(t)
	c := &Client{Hosts: []string{"https://unused.example"}}
	if _, err := c.Write(context.Background(), k, make([]byte, MaxDataSize+1), 1); err == nil {
		t.Fatalf("expected oversized caller data to be fatal")
	}
}
