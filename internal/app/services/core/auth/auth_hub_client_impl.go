package auth

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

type authHubClient struct {
	BaseUrl string
}

func NewAuthHubClient(baseUrl string) contracts.AuthHubClient {
	return &authHubClient{
		BaseUrl: baseUrl,
	}
}

func (c *authHubClient) Login(ctx context.Context, request *mentorhub_dto.LoginRequest) (*mentorhub_dto.LoginResponse, error) {
	requestJSON, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, fmt.Sprintf("%s/api/auth/login", c.BaseUrl), bytes.NewBuffer(requestJSON))
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

	if resp.StatusCode == constvars.StatusUnauthorized {
		return nil, exceptions.ErrInvalidCredentials(nil)
	}
	if resp.StatusCode != constvars.StatusOK {
		bodyBytes, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, exceptions.ErrGetHubResource(err, constvars.ResourceIdentity)
		}

		var hubError mentorhub_dto.HubError
		err = json.Unmarshal(bodyBytes, &hubError)
		if err != nil {
			return nil, exceptions.ErrGetHubResource(err, constvars.ResourceIdentity)
		}
		return nil, exceptions.ErrGetHubResource(fmt.Errorf(hubError.Message), constvars.ResourceIdentity)
	}

	loginResponse := new(mentorhub_dto.LoginResponse)
	err = json.NewDecoder(resp.Body).Decode(&loginResponse)
	if err != nil {
		return nil, exceptions.ErrDecodeHubResponse(err, constvars.ResourceIdentity)
	}

	return loginResponse, nil
}
