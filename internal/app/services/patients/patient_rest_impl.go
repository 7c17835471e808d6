package patients

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"medvisit-client/internal/app/contracts"
	"medvisit-client/internal/app/services/shared/httpclient"
	"medvisit-client/internal/pkg/constvars"
	"medvisit-client/internal/pkg/dto/requests"
)

type patientRestClient struct {
	BaseUrl    string
	HTTPClient *http.Client
}

func NewPatientRestClient(baseUrl string, httpClient *http.Client) contracts.PatientClient {
	return &patientRestClient{
		BaseUrl:    baseUrl,
		HTTPClient: httpClient,
	}
}

func (c *patientRestClient) UpdateSmsNotifications(ctx context.Context, token string, patientID int64, enabled bool) error {
	endpoint := fmt.Sprintf(constvars.EndpointPatientNotifications, strconv.FormatInt(patientID, 10))
	resp, err := httpclient.Send(ctx, c.HTTPClient, httpclient.RequestInput{
		Method: constvars.MethodPut,
		URL:    c.BaseUrl + endpoint,
		Token:  token,
		Body:   &requests.UpdateSmsNotifications{SmsNotificationsEnabled: enabled},
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusNoContent {
		return httpclient.DecodeError(resp, endpoint)
	}
	return nil
}
