package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/donapoint/donapoint/internal/models"
)

// RESTClient is the resty-backed implementation of Client. A token provider
// supplies the bearer credential on every request; an unauthorized hook is
// fired on any 401 so the session can be torn down in one place.
type RESTClient struct {
	http           *resty.Client
	tokenFn        func() string
	onUnauthorized func()
}

// NewRESTClient builds a client for the given base URL, e.g.
// "http://localhost:8000".
func NewRESTClient(baseURL string, timeout time.Duration) *RESTClient {
	c := &RESTClient{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}

	c.http.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-Id", uuid.NewString())
		if c.tokenFn != nil {
			if token := c.tokenFn(); token != "" {
				req.SetAuthToken(token)
			}
		}
		return nil
	})

	c.http.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.StatusCode() == http.StatusUnauthorized && c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return nil
	})

	return c
}

// SetTokenProvider registers the source of the current bearer token.
// An empty string means "no credential", and the header is omitted.
func (c *RESTClient) SetTokenProvider(fn func() string) {
	c.tokenFn = fn
}

// SetUnauthorizedHook registers the callback fired on every 401 response,
// before the originating call returns ErrUnauthorized.
func (c *RESTClient) SetUnauthorizedHook(fn func()) {
	c.onUnauthorized = fn
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (c *RESTClient) Login(ctx context.Context, idToken string) (string, error) {
	var out tokenResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"id_token": idToken}).
		SetResult(&out).
		Post("/api/creators/login")
	if err := c.checkResp(resp, err); err != nil {
		return "", err
	}
	return out.AccessToken, nil
}

func (c *RESTClient) GetMe(ctx context.Context) (*models.Creator, error) {
	var out models.Creator

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/creators/me")
	if err := c.checkResp(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RESTClient) UpdateCreator(ctx context.Context, id int64, update models.CreatorUpdate) (*models.Creator, error) {
	var out models.Creator

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(update).
		SetResult(&out).
		Patch(fmt.Sprintf("/api/creators/%d", id))
	if err := c.checkResp(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RESTClient) VerifyCreator(ctx context.Context, id int64) (*models.Creator, error) {
	var out models.Creator

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Post(fmt.Sprintf("/api/creators/%d/verify", id))
	if err := c.checkResp(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RESTClient) ListPoints(ctx context.Context, query PointQuery) ([]models.DonationPoint, error) {
	var out []models.DonationPoint

	req := c.http.R().SetContext(ctx).SetResult(&out)
	if query.Location != nil {
		req.SetQueryParams(map[string]string{
			"lat":    formatCoord(query.Location.Lat),
			"lng":    formatCoord(query.Location.Lng),
			"radius": formatCoord(query.RadiusKm),
		})
	}

	resp, err := req.Get("/api/donation-points")
	if err := c.checkResp(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RESTClient) GetPoint(ctx context.Context, id int64) (*models.DonationPoint, error) {
	var out models.DonationPoint

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get(fmt.Sprintf("/api/donation-points/%d", id))
	if err := c.checkResp(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreatePoint submits the point as a single multipart request. Optional
// fields are appended only when set, so the form mirrors exactly what the
// user filled in.
func (c *RESTClient) CreatePoint(ctx context.Context, input models.PointCreate, image *ImageUpload) (*models.DonationPoint, error) {
	var out models.DonationPoint

	fields := map[string]string{
		"organization_name": input.OrganizationName,
		"address":           input.Address,
		"latitude":          formatCoord(input.Latitude),
		"longitude":         formatCoord(input.Longitude),
	}
	if input.Description != "" {
		fields["description"] = input.Description
	}
	if input.StartDate != nil {
		fields["start_date"] = input.StartDate.Format(time.RFC3339)
	}
	if input.EndDate != nil {
		fields["end_date"] = input.EndDate.Format(time.RFC3339)
	}

	req := c.http.R().
		SetContext(ctx).
		SetMultipartFormData(fields).
		SetResult(&out)
	if image != nil {
		req.SetMultipartField("image", image.FileName, "application/octet-stream", image.Reader)
	}

	resp, err := req.Post("/api/donation-points")
	if err := c.checkResp(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RESTClient) UpdatePoint(ctx context.Context, id int64, update models.PointUpdate) (*models.DonationPoint, error) {
	var out models.DonationPoint

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(update).
		SetResult(&out).
		Patch(fmt.Sprintf("/api/donation-points/%d", id))
	if err := c.checkResp(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *RESTClient) ListCreators(ctx context.Context) ([]models.Creator, error) {
	var out []models.Creator

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/api/admin/creators")
	if err := c.checkResp(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *RESTClient) AdminVerifyCreator(ctx context.Context, id int64) (*models.Creator, error) {
	return c.adminSetVerified(ctx, id, "verify")
}

func (c *RESTClient) AdminUnverifyCreator(ctx context.Context, id int64) (*models.Creator, error) {
	return c.adminSetVerified(ctx, id, "unverify")
}

func (c *RESTClient) adminSetVerified(ctx context.Context, id int64, action string) (*models.Creator, error) {
	var out models.Creator

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Post(fmt.Sprintf("/api/admin/creators/%d/%s", id, action))
	if err := c.checkResp(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// checkResp folds transport errors and HTTP status codes into the package's
// error taxonomy. Backend rejections keep their detail message verbatim.
func (c *RESTClient) checkResp(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %s", ErrUnavailable, err)
	}

	switch code := resp.StatusCode(); {
	case code < 400:
		return nil
	case code == http.StatusUnauthorized:
		return ErrUnauthorized
	case code == http.StatusForbidden:
		return ErrForbidden
	case code == http.StatusNotFound:
		return ErrNotFound
	default:
		var body errorResponse
		_ = json.Unmarshal(resp.Body(), &body)
		return &APIError{StatusCode: code, Detail: body.Detail}
	}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
