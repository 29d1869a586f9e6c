package dto

import (
	"time"

	"biodata-api/internal/aggregate"
	"biodata-api/internal/models"
	"biodata-api/internal/policy"
)

const FormatLegacy = "legacy"

// CreatedResponse is returned after a biodata is stored.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// BiodataListQuery defines the query string of the admin listing.
type BiodataListQuery struct {
	Search string `form:"search" validate:"max=255"`
	By     string `form:"by" validate:"omitempty,oneof=nama posisi pendidikan"`
	Limit  int    `form:"limit" validate:"gte=0,lte=500"`
	Offset int    `form:"offset" validate:"gte=0"`
	Format string `form:"format" validate:"omitempty,oneof=json legacy"`
}

func (q BiodataListQuery) Filter() models.BiodataFilter {
	return models.BiodataFilter{
		Search: q.Search,
		By:     models.SearchField(q.By),
		Limit:  q.Limit,
		Offset: q.Offset,
	}
}

// LegacyBiodata is the flat view where each child collection is a
// delimiter-encoded string.
type LegacyBiodata struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	UserEmail string `json:"user_email,omitempty"`
	models.Profile
	Education      string    `json:"education"`
	Training       string    `json:"training"`
	WorkExperience string    `json:"work_experience"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func NewLegacyBiodata(b models.Biodata) LegacyBiodata {
	return LegacyBiodata{
		ID:             b.ID,
		UserID:         b.UserID,
		UserEmail:      b.UserEmail,
		Profile:        b.Profile,
		Education:      aggregate.EncodeEducation(b.Education),
		Training:       aggregate.EncodeTraining(b.Training),
		WorkExperience: aggregate.EncodeWork(b.WorkExperience),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func NewLegacyBiodataList(list []models.Biodata) []LegacyBiodata {
	out := make([]LegacyBiodata, len(list))
	for i, b := range list {
		out[i] = NewLegacyBiodata(b)
	}
	return out
}

// PolicyResponse publishes the access table to browser clients.
type PolicyResponse struct {
	API   []policy.Rule `json:"api"`
	Pages []policy.Rule `json:"pages"`
}
