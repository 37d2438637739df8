package mentors

import (
	"context"
	"fmt"
	"io"
	"mentorportal-service/internal/app/contracts"
	"mentorportal-service/internal/pkg/constvars"
	"mentorportal-service/internal/pkg/exceptions"
	"mentorportal-service/internal/pkg/mentorhub_dto"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"
)

type mentorHubClient struct {
	BaseUrl string
}

func NewMentorHubClient(baseUrl string) contracts.MentorHubClient {
	return &mentorHubClient{
		BaseUrl: baseUrl,
	}
}

func (c *mentorHubClient) FindAvailableSlotsByDay(ctx context.Context, day string) ([]mentorhub_dto.Slot, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s/api/mentor/available-slots?date=%s", c.BaseUrl, url.QueryEscape(day)), nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, c.buildHubError(resp, constvars.ResourceSlot)
	}

	var slots []mentorhub_dto.Slot
	err = json.NewDecoder(resp.Body).Decode(&slots)
	if err != nil {
		return nil, exceptions.ErrDecodeHubResponse(err, constvars.ResourceSlot)
	}

	// Per-day fetches may omit the day field on each record; the caller
	// tagged the request with the weekday, so stamp it back on.
	for i := range slots {
		if slots[i].Day == "" {
			slots[i].Day = day
		}
	}

	return slots, nil
}

func (c *mentorHubClient) FindAllAvailableSlots(ctx context.Context) ([]mentorhub_dto.MentorWithSlots, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s/api/mentor/all-available-slots", c.BaseUrl), nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, c.buildHubError(resp, constvars.ResourceMentor)
	}

	var mentors []mentorhub_dto.MentorWithSlots
	err = json.NewDecoder(resp.Body).Decode(&mentors)
	if err != nil {
		return nil, exceptions.ErrDecodeHubResponse(err, constvars.ResourceMentor)
	}

	return mentors, nil
}

func (c *mentorHubClient) buildHubError(resp *http.Response, resource string) error {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return exceptions.ErrGetHubResource(err, resource)
	}

	var hubError mentorhub_dto.HubError
	err = json.Unmarshal(bodyBytes, &hubError)
	if err != nil || hubError.Message == "" {
		return exceptions.ErrGetHubResource(fmt.Errorf("unexpected status %d", resp.StatusCode), resource)
	}
	return exceptions.ErrGetHubResource(fmt.Errorf(hubError.Message), resource)
}
