// Copyright 2019 - 2025 The Samply Community
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fhir

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// A Client is a FHIR client which combines an HTTP client with the base URL of
// a FHIR server.
type Client struct {
	httpClient http.Client
	baseURL    url.URL
	auth       Auth
}

// Auth adds authentication information to requests of a Client.
type Auth interface {
	setAuth(req *http.Request)
}

// BasicAuth authenticates requests with HTTP basic authentication.
type BasicAuth struct {
	User     string
	Password string
}

func (a BasicAuth) setAuth(req *http.Request) {
	req.SetBasicAuth(a.User, a.Password)
}

// TokenAuth authenticates requests with a bearer token.
type TokenAuth struct {
	Token string
}

func (a TokenAuth) setAuth(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+a.Token)
}

// NewClient creates a new Client with the given base URL and Auth. Auth can be
// nil for servers without authentication.
func NewClient(fhirServerBaseUrl url.URL, auth Auth) *Client {
	return createClient(fhirServerBaseUrl, auth, false)
}

// NewClientInsecure creates a new Client as NewClient does but disables TLS security checks. I.e. the client will
// accept any connection to a servers without verifying its certificate.
// Use this with great caution as it opens up man-in-the-middle attacks.
func NewClientInsecure(fhirServerBaseUrl url.URL, auth Auth) *Client {
	return createClient(fhirServerBaseUrl, auth, true)
}

func createClient(fhirServerBaseUrl url.URL, auth Auth, insecure bool) *Client {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 100
	t.MaxConnsPerHost = 100
	t.MaxIdleConnsPerHost = 100
	t.TLSClientConfig.InsecureSkipVerify = insecure

	return &Client{
		httpClient: http.Client{Transport: t},
		baseURL:    fhirServerBaseUrl,
		auth:       auth,
	}
}

const fhirJson = "application/fhir+json"

// NewTransactionRequest creates a new transaction/batch interaction request.
// Uses the base URL from the FHIR client and sets JSON Accept and Content-Type
// headers. Otherwise, it's identical to http.NewRequest.
func (c *Client) NewTransactionRequest(body io.Reader) (*http.Request, error) {
	req, err := http.NewRequest("POST", c.baseURL.String(), body)
	if err != nil {
		return nil, fmt.Errorf("error while creating a transaction request: %w", err)
	}
	req.Header.Add("Accept", fhirJson)
	req.Header.Add("Content-Type", fhirJson)
	return req, nil
}

// NewReadRequest creates a new read interaction request for the resource with
// the given type and id.
func (c *Client) NewReadRequest(resourceType string, id string) (*http.Request, error) {
	req, err := http.NewRequest("GET", c.baseURL.JoinPath(resourceType, id).String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Add("Accept", fhirJson)
	return req, nil
}

// NewTypeOperationRequest creates a new operation request that will use GET with parameters in the query params of the URL.
func (c *Client) NewTypeOperationRequest(resourceType string, operationName string, parameters url.Values) (*http.Request, error) {
	_url := c.baseURL.JoinPath(resourceType, "/$"+operationName)
	_url.RawQuery = parameters.Encode()
	req, err := http.NewRequest("GET", _url.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Add("Accept", fhirJson)
	return req, nil
}

// NewPollRequest creates a request polling the status of an asynchronous
// request at location, as given by the Content-Location header of the
// accepted response.
func (c *Client) NewPollRequest(location string) (*http.Request, error) {
	req, err := http.NewRequest("GET", location, nil)
	if err != nil {
		return nil, fmt.Errorf("error while creating a poll request: %w", err)
	}
	req.Header.Add("Accept", fhirJson)
	return req, nil
}

// Do calls Do on the HTTP client of the FHIR client.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.auth != nil {
		c.auth.setAuth(req)
	}

	return c.httpClient.Do(req)
}

// CloseIdleConnections calls CloseIdleConnections on the HTTP client of the
// FHIR client.
func (c *Client) CloseIdleConnections() {
	c.httpClient.CloseIdleConnections()
}
