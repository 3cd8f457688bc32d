package model

import "github.com/a48zhang/AIditor/pkg/querybuilder"

const (
	ReviewPending  = "pending"
	ReviewApproved = "approved"
)

// ToPublish is a finished article waiting for review and publication.
// MaterialID optionally points at the material it was produced from; it is
// not enforced by the datastore.
type ToPublish struct {
	ID           string `json:"id"`
	FinalTitle   string `json:"final_title"`
	FinalBody    string `json:"final_body"`
	Platform     string `json:"platform"`
	ReviewStatus string `json:"review_status"`
	MaterialID   string `json:"material_id"`
	CreatedAt    int64  `json:"created_at"`
	UpdatedAt    int64  `json:"updated_at"`
}

type CreateToPublishRequest struct {
	FinalTitle   string `json:"final_title"`
	FinalBody    string `json:"final_body"`
	Platform     string `json:"platform"`
	ReviewStatus string `json:"review_status"`
	MaterialID   string `json:"material_id"`
}

type UpdateToPublishRequest struct {
	FinalTitle   *string `json:"final_title"`
	FinalBody    *string `json:"final_body"`
	Platform     *string `json:"platform"`
	ReviewStatus *string `json:"review_status"`
}

func (u UpdateToPublishRequest) Assignments() querybuilder.Assignments {
	return querybuilder.Assignments{}.
		String("final_title", u.FinalTitle).
		String("final_body", u.FinalBody).
		String("platform", u.Platform).
		String("review_status", u.ReviewStatus)
}

type Filter struct {
	ReviewStatus *string
	Platform     *string
	Page         querybuilder.Page
}

func (f Filter) Predicates() querybuilder.Predicates {
	return querybuilder.Predicates{}.
		Eq("review_status", f.ReviewStatus).
		Eq("platform", f.Platform)
}
