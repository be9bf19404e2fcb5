// Package fetch implements the progressive, verify-gated multi-host
// retrieval protocol.
//
// Every host is assumed potentially dishonest. A response is only ever
// accepted when it passes the caller-supplied verifier; HTTP status codes
// are recorded as diagnostics but are never dispositive. The one exception
// is terminal absence: when every host has been tried without a verified
// success, the first non-2xx response is surfaced so a genuine "not found"
// stays distinguishable from pure network failure.
//
// Hosts are tried strictly in the order supplied, one in-flight request at a
// time. This bounds wasted bandwidth when an early host succeeds (the common
// case) and gives callers a deterministic, append-only audit trail.
package fetch

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"xdao.co/lumen/lumerr"
)

// DefaultMaxResponseBytes caps how much of an untrusted response body is
// read. Large enough for a full sector plus headroom.
const DefaultMaxResponseBytes = (1 << 22) + (1 << 16)

// Response is one host's reply, reduced to the pieces the verifier and the
// caller need.
type Response struct {
	Host       string
	StatusCode int
	Body       []byte
}

// Verifier checks the authenticity of a 2xx response. Only the caller knows
// what "authentic" means for a given request: a registry signature check, a
// Merkle-root check, or any other structural rule. A non-nil return demotes
// the response to a failed attempt.
type Verifier func(*Response) error

// Options shape a single logical fetch operation.
type Options struct {
	// Method defaults to GET.
	Method string

	// Body is sent on every attempt. It is re-read per host.
	Body []byte

	// Header entries are copied onto every request.
	Header http.Header

	// Client owns transport policy, timeouts included. Defaults to
	// http.DefaultClient.
	Client *http.Client

	// MaxResponseBytes caps body reads per host. Defaults to
	// DefaultMaxResponseBytes. A body exceeding the cap fails the host.
	MaxResponseBytes int64

	// Logger receives per-host diagnostics. Nil disables logging; the
	// Result trail is always populated regardless.
	Logger *zap.Logger
}

// Result is the outcome of a progressive fetch.
//
// The trail fields are append-only and ordered by attempt. RemainingHosts
// lists hosts never tried, so a caller whose post-hoc validation later
// rejects a "successful" response can resume against the rest of the list.
type Result struct {
	Success bool

	// Host and Response are the verified success, or on failure, Response
	// carries the first non-2xx reply seen (nil if no host answered).
	Host     string
	Response *Response

	FailedHosts     []string
	FailedResponses []*Response
	RemainingHosts  []string
	Log             []string
}

// Progressive queries hosts in order until one returns a 2xx response that
// passes verify.
//
// Transport failures, non-2xx statuses, and verifier rejections all demote
// the host and advance to the next; none abort the operation. The returned
// error is non-nil only on exhaustion (every host demoted) or cancellation,
// and the Result always carries the complete trail.
func Progressive(ctx context.Context, endpoint string, opts Options, hosts []string, verify Verifier) (*Result, error) {
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}
	maxBody := opts.MaxResponseBytes
	if maxBody <= 0 {
		maxBody = DefaultMaxResponseBytes
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	res := &Result{}
	if verify == nil {
		res.RemainingHosts = append(res.RemainingHosts, hosts...)
		res.Log = append(res.Log, "no verifier supplied")
		return res, lumerr.New(lumerr.KindValidation, "LUM-FETCH-005", "a verifier is required; responses are never trusted unchecked")
	}
	if len(hosts) == 0 {
		res.Log = append(res.Log, "no hosts supplied")
		return res, lumerr.New(lumerr.KindExhausted, "LUM-FETCH-001", "no hosts to query")
	}

	for i, host := range hosts {
		if err := ctx.Err(); err != nil {
			res.RemainingHosts = append(res.RemainingHosts, hosts[i:]...)
			res.Log = append(res.Log, "canceled before querying "+host)
			return res, lumerr.Wrap(lumerr.KindTransport, "LUM-FETCH-002", "fetch canceled", err)
		}

		resp, err := tryHost(ctx, client, method, hostURL(host, endpoint), opts.Header, opts.Body, maxBody)
		if err != nil {
			attemptsTotal.WithLabelValues(outcomeTransportError).Inc()
			res.FailedHosts = append(res.FailedHosts, host)
			res.Log = append(res.Log, host+": transport error: "+err.Error())
			logger.Debug("host transport failure", zap.String("host", host), zap.Error(err))
			continue
		}
		resp.Host = host

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			// An untrusted host's error status cannot be taken at face
			// value; a malicious host could fabricate a 404 to censor
			// content. Keep the first one for terminal reporting.
			attemptsTotal.WithLabelValues(outcomeBadStatus).Inc()
			res.FailedHosts = append(res.FailedHosts, host)
			res.FailedResponses = append(res.FailedResponses, resp)
			if res.Response == nil {
				res.Response = resp
			}
			res.Log = append(res.Log, host+": status "+resp.statusText())
			logger.Debug("host returned error status", zap.String("host", host), zap.Int("status", resp.StatusCode))
			continue
		}

		if verr := verify(resp); verr != nil {
			attemptsTotal.WithLabelValues(outcomeVerifyFailed).Inc()
			res.FailedHosts = append(res.FailedHosts, host)
			res.FailedResponses = append(res.FailedResponses, resp)
			res.Log = append(res.Log, host+": verification failed: "+verr.Error())
			logger.Debug("host response failed verification", zap.String("host", host), zap.Error(verr))
			continue
		}

		attemptsTotal.WithLabelValues(outcomeSuccess).Inc()
		res.Success = true
		res.Host = host
		res.Response = resp
		res.RemainingHosts = append(res.RemainingHosts, hosts[i+1:]...)
		res.Log = append(res.Log, host+": verified success")
		logger.Debug("fetch succeeded", zap.String("host", host), zap.Int("failed", len(res.FailedHosts)))
		return res, nil
	}

	exhaustedTotal.Inc()
	res.Log = append(res.Log, "all hosts exhausted")
	logger.Debug("fetch exhausted", zap.Int("hosts", len(hosts)))
	return res, lumerr.New(lumerr.KindExhausted, "LUM-FETCH-003", "no host returned a verifiable response")
}

func tryHost(ctx context.Context, client *http.Client, method, url string, header http.Header, body []byte, maxBody int64) (*Response, error) {
	var reqBody io.Reader
	if body != nil {
		reqBody = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, err
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	httpResp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	// Read one byte past the cap so an at-cap body is distinguishable from
	// an oversized one.
	respBody, err := io.ReadAll(io.LimitReader(httpResp.Body, maxBody+1))
	if err != nil {
		return nil, err
	}
	if int64(len(respBody)) > maxBody {
		return nil, lumerr.New(lumerr.KindTransport, "LUM-FETCH-004", "response body exceeds the read cap")
	}
	return &Response{StatusCode: httpResp.StatusCode, Body: respBody}, nil
}

// hostURL joins a host with an endpoint path. Bare hosts default to https.
func hostURL(host, endpoint string) string {
	h := strings.TrimSuffix(host, "/")
	if !strings.Contains(h, "://") {
		h = "https://" + h
	}
	if endpoint != "" && !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	return h + endpoint
}

func (r *Response) statusText() string {
	return http.StatusText(r.StatusCode) + " (" + strconv.Itoa(r.StatusCode) + ")"
}
