package box

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
)

// Legacy v1 ticket authentication. These endpoints predate OAuth2 and
// answer in XML; they are retained for older enterprise deployments and are
// the only XML consumers in the SDK.

type ticketResponse struct {
	XMLName xml.Name `xml:"response"`
	Status  string   `xml:"status"`
	Ticket  string   `xml:"ticket"`
}

type authTokenResponse struct {
	XMLName   xml.Name `xml:"response"`
	Status    string   `xml:"status"`
	AuthToken string   `xml:"auth_token"`
}

func legacyAuthDescriptor(action string, params map[string]string) *RequestDescriptor {
	d := &RequestDescriptor{
		Kind:   ResourceToken,
		Method: http.MethodGet,
		Path:   "1.0/rest",
		Query:  url.Values{},
		Header: http.Header{},
	}
	d.Query.Set("action", action)
	for k, v := range params {
		d.Query.Set(k, v)
	}
	return d
}

// GetTicket obtains a login ticket for the legacy v1 flow.
func (c *Client) GetTicket(ctx context.Context, apiKey string) (string, error) {
	if err := requireArg("apiKey", apiKey); err != nil {
		return "", err
	}
	desc := legacyAuthDescriptor("get_ticket", map[string]string{"api_key": apiKey})
	var res ticketResponse
	if err := c.doAndDecode(ctx, desc, &res); err != nil {
		return "", err
	}
	if res.Status != "get_ticket_ok" {
		return "", fmt.Errorf("box: get_ticket returned status %q", res.Status)
	}
	return res.Ticket, nil
}

// GetAuthToken exchanges a user-approved ticket for a legacy auth token.
func (c *Client) GetAuthToken(ctx context.Context, apiKey, ticket string) (string, error) {
	if err := requireArg("apiKey", apiKey); err != nil {
		return "", err
	}
	if err := requireArg("ticket", ticket); err != nil {
		return "", err
	}
	desc := legacyAuthDescriptor("get_auth_token", map[string]string{
		"api_key": apiKey,
		"ticket":  ticket,
	})
	var res authTokenResponse
	if err := c.doAndDecode(ctx, desc, &res); err != nil {
		return "", err
	}
	if res.Status != "get_auth_token_ok" {
		return "", fmt.Errorf("box: get_auth_token returned status %q", res.Status)
	}
	return res.AuthToken, nil
}
