package doctors

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"medvisit-client/internal/app/contracts"
	"medvisit-client/internal/app/models"
	"medvisit-client/internal/app/services/shared/httpclient"
	"medvisit-client/internal/pkg/constvars"
	"medvisit-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type doctorRestClient struct {
	BaseUrl    string
	HTTPClient *http.Client
}

func NewDoctorRestClient(baseUrl string, httpClient *http.Client) contracts.DoctorClient {
	return &doctorRestClient{
		BaseUrl:    baseUrl,
		HTTPClient: httpClient,
	}
}

func (c *doctorRestClient) FindDoctorByID(ctx context.Context, token string, doctorID int64) (*models.Doctor, error) {
	endpoint := fmt.Sprintf(constvars.EndpointDoctorByID, strconv.FormatInt(doctorID, 10))
	resp, err := httpclient.Send(ctx, c.HTTPClient, httpclient.RequestInput{
		Method: constvars.MethodGet,
		URL:    c.BaseUrl + endpoint,
		Token:  token,
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, httpclient.DecodeError(resp, endpoint)
	}

	doctor := new(models.Doctor)
	if err := json.NewDecoder(resp.Body).Decode(doctor); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, endpoint)
	}
	return doctor, nil
}
