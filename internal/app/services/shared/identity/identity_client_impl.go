package identity

import (
	"context"
	"fmt"
	"net/http"
	"timetable-service/internal/app/contracts"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/dto/responses"
	"timetable-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type identityClient struct {
	BaseUrl string
}

func NewIdentityClient(baseUrl string) contracts.IdentityClient {
	return &identityClient{
		BaseUrl: baseUrl,
	}
}

func (c *identityClient) FindTeacherByID(ctx context.Context, teacherID string) (*responses.IdentityRecord, error) {
	return c.findByID(ctx, constvars.ResourceTeacher, teacherID)
}

func (c *identityClient) FindSubjectByID(ctx context.Context, subjectID string) (*responses.IdentityRecord, error) {
	return c.findByID(ctx, constvars.ResourceSubject, subjectID)
}

func (c *identityClient) FindClassByID(ctx context.Context, classID string) (*responses.IdentityRecord, error) {
	return c.findByID(ctx, constvars.ResourceClass, classID)
}

func (c *identityClient) findByID(ctx context.Context, resource, id string) (*responses.IdentityRecord, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, fmt.Sprintf("%s%s/%s", c.BaseUrl, resource, id), nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == constvars.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrIdentityLookup(fmt.Errorf("status %d", resp.StatusCode), resource)
	}

	record := new(responses.IdentityRecord)
	err = json.NewDecoder(resp.Body).Decode(record)
	if err != nil {
		return nil, exceptions.ErrIdentityDecode(err, resource)
	}
	return record, nil
}
