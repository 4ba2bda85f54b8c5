// Copyright 2024 NDP Systèmes. All Rights Reserved.
// See LICENSE file for full licensing details.

package aeatclient

import (
	"context"
	"crypto/tls"
	"net/http"
	"net/url"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-retryablehttp"
	"github.com/hooklift/gowsdl/soap"
)

// ErrNoAddress is returned when binding a service with neither address nor WSDL
var ErrNoAddress = errors.New("no address given for AEAT service")

type options struct {
	config      Config
	certificate *tls.Certificate
	httpClient  soap.HTTPClient
	logger      retryablehttp.LeveledLogger
}

// An Option modifies the way a service is bound
type Option func(*options)

// WithCertificate sets the client certificate used to authenticate to AEAT
func WithCertificate(cert tls.Certificate) Option {
	return func(o *options) {
		o.certificate = &cert
	}
}

// WithHTTPClient sets the HTTP client used for the calls.
// When set, the certificate and the config are not used.
func WithHTTPClient(client soap.HTTPClient) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithConfig overrides the configuration read from the server config
func WithConfig(config Config) Option {
	return func(o *options) {
		o.config = config
	}
}

// WithLogger sets the logger of the transport
func WithLogger(logger retryablehttp.LeveledLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// A Service is a SOAP service bound to an AEAT address
type Service struct {
	params Params
	client *soap.Client
}

// Bind returns a Service calling the given port at params.Address.
// If params.Address is empty, the WSDL URL without query is used instead.
func Bind(params Params, opts ...Option) (*Service, error) {
	o := options{config: LoadConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	if params.Address == "" {
		address, err := addressFromWSDL(params.WSDL)
		if err != nil {
			return nil, errors.Wrapf(err, "port %s", params.PortName)
		}
		params.Address = address
	}
	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = newHTTPClient(o)
	}
	return &Service{
		params: params,
		client: soap.NewClient(params.Address, soap.WithHTTPClient(httpClient)),
	}, nil
}

// addressFromWSDL strips the query and the fragment of the WSDL URL
func addressFromWSDL(wsdl string) (string, error) {
	if wsdl == "" {
		return "", ErrNoAddress
	}
	u, err := url.Parse(wsdl)
	if err != nil {
		return "", errors.Wrapf(err, "invalid WSDL URL %q", wsdl)
	}
	u.RawQuery = ""
	u.ForceQuery = false
	u.Fragment = ""
	return u.String(), nil
}

// checkRetry retries on connection errors only. Any HTTP answer, including
// a 500 carrying a SOAP fault, means the submission reached AEAT and must
// not be sent again.
func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if err == nil {
		return false, nil
	}
	return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
}

// newHTTPClient returns a retrying HTTP client presenting the configured
// client certificate.
func newHTTPClient(o options) *http.Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = o.config.RetryMax
	rc.RetryWaitMin = o.config.RetryWaitMin
	rc.RetryWaitMax = o.config.RetryWaitMax
	rc.HTTPClient.Timeout = o.config.Timeout
	rc.CheckRetry = checkRetry
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.Logger = nil
	if o.logger != nil {
		rc.Logger = o.logger
	}
	if o.certificate != nil {
		if transport, ok := rc.HTTPClient.Transport.(*http.Transport); ok {
			transport.TLSClientConfig = &tls.Config{
				Certificates: []tls.Certificate{*o.certificate},
				MinVersion:   tls.VersionTLS12,
			}
		}
	}
	return rc.StandardClient()
}

// Params returns the parameters this service has been bound with
func (s *Service) Params() Params {
	return s.params
}

// Call sends request to the service with the given SOAP action and decodes
// the answer into response.
func (s *Service) Call(ctx context.Context, action string, request, response interface{}) error {
	if err := s.client.CallContext(ctx, action, request, response); err != nil {
		return errors.Wrapf(err, "AEAT call %s on %s", action, s.params.PortName)
	}
	return nil
}
