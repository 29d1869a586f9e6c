package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"biodata-api/internal/aggregate"
	"biodata-api/internal/models"
	"biodata-api/internal/transport/dto"
)

func (c *Client) ListBiodata(ctx context.Context) ([]models.Biodata, error) {
	var out []models.Biodata
	if err := c.do(ctx, http.MethodGet, "/api/biodata", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetBiodata(ctx context.Context, id int64) (*models.Biodata, error) {
	var out models.Biodata
	if err := c.do(ctx, http.MethodGet, biodataPath(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBiodata submits a biodata and returns its new id.
func (c *Client) CreateBiodata(ctx context.Context, in *models.BiodataInput) (int64, error) {
	var out dto.CreatedResponse
	if err := c.do(ctx, http.MethodPost, "/api/biodata", nil, in, &out); err != nil {
		return 0, err
	}
	return out.ID, nil
}

func (c *Client) UpdateBiodata(ctx context.Context, id int64, in *models.BiodataInput) error {
	return c.do(ctx, http.MethodPut, biodataPath(id), nil, in, nil)
}

func (c *Client) DeleteBiodata(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, biodataPath(id), nil, nil, nil)
}

// ListAll is the admin listing across every owner.
func (c *Client) ListAll(ctx context.Context, filter models.BiodataFilter) ([]models.Biodata, error) {
	var out []models.Biodata
	if err := c.do(ctx, http.MethodGet, "/api/admin/biodata", filterQuery(filter), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAllLegacy fetches the admin listing in the delimiter-encoded form and
// parses the child collections back into structured rows.
func (c *Client) ListAllLegacy(ctx context.Context, filter models.BiodataFilter) ([]models.Biodata, error) {
	q := filterQuery(filter)
	q.Set("format", dto.FormatLegacy)

	var rows []dto.LegacyBiodata
	if err := c.do(ctx, http.MethodGet, "/api/admin/biodata", q, nil, &rows); err != nil {
		return nil, err
	}

	out := make([]models.Biodata, len(rows))
	for i, r := range rows {
		out[i] = models.Biodata{
			ID:             r.ID,
			UserID:         r.UserID,
			UserEmail:      r.UserEmail,
			Profile:        r.Profile,
			Education:      aggregate.ToEducation(aggregate.DecodeEducation(r.Education)),
			Training:       aggregate.ToTraining(aggregate.DecodeTraining(r.Training)),
			WorkExperience: aggregate.ToWork(aggregate.DecodeWork(r.WorkExperience)),
			CreatedAt:      r.CreatedAt,
			UpdatedAt:      r.UpdatedAt,
		}
	}
	return out, nil
}

// Export streams the admin workbook into w.
func (c *Client) Export(ctx context.Context, filter models.BiodataFilter, w io.Writer) error {
	resp, err := c.send(ctx, http.MethodGet, "/api/admin/biodata/export", filterQuery(filter), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("read export: %w", err)
	}
	return nil
}

func (c *Client) GetAny(ctx context.Context, id int64) (*models.Biodata, error) {
	var out models.Biodata
	if err := c.do(ctx, http.MethodGet, adminBiodataPath(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateAny(ctx context.Context, id int64, in *models.BiodataInput) error {
	return c.do(ctx, http.MethodPut, adminBiodataPath(id), nil, in, nil)
}

func (c *Client) DeleteAny(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, adminBiodataPath(id), nil, nil, nil)
}

func biodataPath(id int64) string {
	return "/api/biodata/" + strconv.FormatInt(id, 10)
}

func adminBiodataPath(id int64) string {
	return "/api/admin/biodata/" + strconv.FormatInt(id, 10)
}

func filterQuery(f models.BiodataFilter) url.Values {
	q := url.Values{}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.By != "" {
		q.Set("by", string(f.By))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		q.Set("offset", strconv.Itoa(f.Offset))
	}
	return q
}
