package bookings

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mentorportal-service/internal/app/contracts"
	"mentorportal-service/internal/pkg/constvars"
	"mentorportal-service/internal/pkg/exceptions"
	"mentorportal-service/internal/pkg/mentorhub_dto"
	"net/http"

	"github.com/goccy/go-json"
)

type bookingHubClient struct {
	BaseUrl string
}

func NewBookingHubClient(baseUrl string) contracts.BookingHubClient {
	return &bookingHubClient{
		BaseUrl: baseUrl,
	}
}

func (c *bookingHubClient) FindMenteeBookings(ctx context.Context, upstreamToken string) ([]mentorhub_dto.Booking, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s/api/mentee/bookings", c.BaseUrl), nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, fmt.Sprintf("Bearer %s", upstreamToken))

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusUnauthorized {
		return nil, exceptions.ErrSessionInvalid(fmt.Errorf("mentorhub rejected the mentee token"))
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrGetHubResource(c.decodeHubError(resp), constvars.ResourceBooking)
	}

	var bookings []mentorhub_dto.Booking
	err = json.NewDecoder(resp.Body).Decode(&bookings)
	if err != nil {
		return nil, exceptions.ErrDecodeHubResponse(err, constvars.ResourceBooking)
	}

	return bookings, nil
}

func (c *bookingHubClient) CreateBooking(ctx context.Context, upstreamToken string, request *mentorhub_dto.CreateBookingRequest) (*mentorhub_dto.CreateBookingResponse, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, fmt.Sprintf("%s/api/mentee/book-slot", c.BaseUrl), bytes.NewReader(payload))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderAuthorization, fmt.Sprintf("Bearer %s", upstreamToken))

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == constvars.StatusUnauthorized:
		return nil, exceptions.ErrSessionInvalid(fmt.Errorf("mentorhub rejected the mentee token"))
	case resp.StatusCode == constvars.StatusConflict:
		return nil, exceptions.ErrBookingRejected(c.decodeHubError(resp))
	case resp.StatusCode != constvars.StatusOK && resp.StatusCode != constvars.StatusCreated:
		return nil, exceptions.ErrCreateHubResource(c.decodeHubError(resp), constvars.ResourceBooking)
	}

	var booking mentorhub_dto.CreateBookingResponse
	err = json.NewDecoder(resp.Body).Decode(&booking)
	if err != nil {
		return nil, exceptions.ErrDecodeHubResponse(err, constvars.ResourceBooking)
	}

	return &booking, nil
}

func (c *bookingHubClient) decodeHubError(resp *http.Response) error {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var hubError mentorhub_dto.HubError
	err = json.Unmarshal(bodyBytes, &hubError)
	if err != nil || hubError.Message == "" {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return fmt.Errorf(hubError.Message)
}
