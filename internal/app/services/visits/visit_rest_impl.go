package visits

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"medvisit-client/internal/app/contracts"
	"medvisit-client/internal/app/models"
	"medvisit-client/internal/app/services/shared/httpclient"
	"medvisit-client/internal/pkg/constvars"
	"medvisit-client/internal/pkg/dto/requests"
	"medvisit-client/internal/pkg/dto/responses"
	"medvisit-client/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type visitRestClient struct {
	BaseUrl      string
	ListEndpoint string
	HTTPClient   *http.Client
}

// NewVisitRestClient builds the visit client. useLegacyListPath switches
// the date-scoped listing to the singular /api/visit/list path some
// backend deployments still expose.
func NewVisitRestClient(baseUrl string, httpClient *http.Client, useLegacyListPath bool) contracts.VisitClient {
	listEndpoint := constvars.EndpointVisitsList
	if useLegacyListPath {
		listEndpoint = constvars.EndpointVisitsListLegacy
	}
	return &visitRestClient{
		BaseUrl:      baseUrl,
		ListEndpoint: listEndpoint,
		HTTPClient:   httpClient,
	}
}

func (c *visitRestClient) ListVisitsByDate(ctx context.Context, token, date string) ([]models.Visit, error) {
	resp, err := httpclient.Send(ctx, c.HTTPClient, httpclient.RequestInput{
		Method: constvars.MethodPost,
		URL:    c.BaseUrl + c.ListEndpoint,
		Token:  token,
		Body:   &requests.VisitList{Date: date},
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// 404 is the backend's way of saying "no visits that day".
	if resp.StatusCode == constvars.StatusNotFound {
		return []models.Visit{}, nil
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, httpclient.DecodeError(resp, c.ListEndpoint)
	}

	return decodeVisitList(resp, c.ListEndpoint)
}

func (c *visitRestClient) ListVisitsByPatient(ctx context.Context, token string, patientID int64) ([]models.Visit, error) {
	endpoint := fmt.Sprintf(constvars.EndpointVisitsListPatient, strconv.FormatInt(patientID, 10))
	return c.listVisitsByUser(ctx, token, endpoint)
}

func (c *visitRestClient) ListVisitsByDoctor(ctx context.Context, token string, doctorID int64) ([]models.Visit, error) {
	endpoint := fmt.Sprintf(constvars.EndpointVisitsListDoctor, strconv.FormatInt(doctorID, 10))
	return c.listVisitsByUser(ctx, token, endpoint)
}

func (c *visitRestClient) listVisitsByUser(ctx context.Context, token, endpoint string) ([]models.Visit, error) {
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

	return decodeVisitList(resp, endpoint)
}

func (c *visitRestClient) CreateReservation(ctx context.Context, token string, request *requests.VisitReservation) (*responses.VisitReservation, error) {
	resp, err := httpclient.Send(ctx, c.HTTPClient, httpclient.RequestInput{
		Method: constvars.MethodPost,
		URL:    c.BaseUrl + constvars.EndpointVisitReservation,
		Token:  token,
		Body:   request,
	})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated {
		return nil, httpclient.DecodeError(resp, constvars.EndpointVisitReservation)
	}

	reservation := new(responses.VisitReservation)
	if err := json.NewDecoder(resp.Body).Decode(reservation); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.EndpointVisitReservation)
	}
	return reservation, nil
}

func (c *visitRestClient) CancelVisit(ctx context.Context, token string, visitID int64) error {
	endpoint := fmt.Sprintf(constvars.EndpointVisitByID, strconv.FormatInt(visitID, 10))
	resp, err := httpclient.Send(ctx, c.HTTPClient, httpclient.RequestInput{
		Method: constvars.MethodDelete,
		URL:    c.BaseUrl + endpoint,
		Token:  token,
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

func decodeVisitList(resp *http.Response, endpoint string) ([]models.Visit, error) {
	result := new(responses.VisitList)
	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return nil, exceptions.ErrDecodeResponse(err, endpoint)
	}
	if result.Visits == nil {
		return []models.Visit{}, nil
	}
	return result.Visits, nil
}
