package auth

import (
	"context"
	"io"
	"net/http"

	"medvisit-client/internal/app/contracts"
	"medvisit-client/internal/app/models"
	"medvisit-client/internal/app/services/shared/httpclient"
	"medvisit-client/internal/pkg/constvars"
	"medvisit-client/internal/pkg/dto/requests"
	"medvisit-client/internal/pkg/dto/responses"
	"medvisit-client/internal/pkg/exceptions"
	"medvisit-client/internal/pkg/utils"

	"github.com/goccy/go-json"
)

type authRestClient struct {
	BaseUrl    string
	HTTPClient *http.Client
}

func NewAuthRestClient(baseUrl string, httpClient *http.Client) contracts.AuthClient {
	return &authRestClient{
		BaseUrl:    baseUrl,
		HTTPClient: httpClient,
	}
}

func (c *authRestClient) Login(ctx context.Context, request *requests.LoginUser) (*responses.LoginResult, error) {
	resp, err := httpclient.Send(ctx, c.HTTPClient, httpclient.RequestInput{
		Method: constvars.MethodPost,
		URL:    c.BaseUrl + constvars.EndpointLogin,
		Body:   request,
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.EndpointLogin)
	}

	if resp.StatusCode != constvars.StatusOK {
		clientMessage := utils.ParseBackendError(bodyBytes, http.StatusText(resp.StatusCode))
		return nil, exceptions.ErrBackendRejected(resp.StatusCode, clientMessage, constvars.EndpointLogin)
	}

	// The backend answers with either a JSON envelope or the bare token
	// as plain text; normalize here so nothing downstream cares.
	return utils.ParseLoginResponse(bodyBytes)
}

func (c *authRestClient) RegisterPatient(ctx context.Context, request *requests.RegisterUser) error {
	return c.register(ctx, constvars.EndpointRegisterPatient, request)
}

func (c *authRestClient) RegisterDoctor(ctx context.Context, request *requests.RegisterUser) error {
	return c.register(ctx, constvars.EndpointRegisterDoctor, request)
}

func (c *authRestClient) register(ctx context.Context, endpoint string, request *requests.RegisterUser) error {
	resp, err := httpclient.Send(ctx, c.HTTPClient, httpclient.RequestInput{
		Method: constvars.MethodPost,
		URL:    c.BaseUrl + endpoint,
		Body:   request,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		clientMessage := utils.ParseBackendError(bodyBytes, http.StatusText(resp.StatusCode))
		return exceptions.ErrBackendRejected(resp.StatusCode, clientMessage, endpoint)
	}
	return nil
}

func (c *authRestClient) WhoAmI(ctx context.Context, token string) (*models.UserProfile, error) {
	resp, err := httpclient.Send(ctx, c.HTTPClient, httpclient.RequestInput{
		Method: constvars.MethodGet,
		URL:    c.BaseUrl + constvars.EndpointWhoAmI,
		Token:  token,
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, httpclient.DecodeError(resp, constvars.EndpointWhoAmI)
	}

	profile := new(models.UserProfile)
	if err := json.NewDecoder(resp.Body).Decode(profile); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.EndpointWhoAmI)
	}
	return profile, nil
}
