package model

import "github.com/a48zhang/AIditor/pkg/querybuilder"

const (
	StatusPending   = "pending"
	StatusProcessed = "processed"
)

// Material is one collected article in the material pool. Times are Unix milliseconds.
type Material struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Body           string `json:"body"`
	Source         string `json:"source"`
	Tags           string `json:"tags"`
	CollectionTime int64  `json:"collection_time"`
	Status         string `json:"status"`
	CreatedAt      int64  `json:"created_at"`
	UpdatedAt      int64  `json:"updated_at"`
}

type CreateMaterialRequest struct {
	Title          string `json:"title"`
	Body           string `json:"body"`
	Source         string `json:"source"`
	Tags           string `json:"tags"`
	CollectionTime int64  `json:"collection_time"`
	Status         string `json:"status"`
}

// UpdateMaterialRequest is a partial patch; nil fields are left untouched.
type UpdateMaterialRequest struct {
	Title  *string `json:"title"`
	Body   *string `json:"body"`
	Source *string `json:"source"`
	Tags   *string `json:"tags"`
	Status *string `json:"status"`
}

// Assignments lists the columns the patch sets, in a fixed order.
func (u UpdateMaterialRequest) Assignments() querybuilder.Assignments {
	return querybuilder.Assignments{}.
		String("title", u.Title).
		String("body", u.Body).
		String("source", u.Source).
		String("tags", u.Tags).
		String("status", u.Status)
}

// Filter narrows a material listing. StartTime and EndTime bound collection_time inclusively.
type Filter struct {
	Status    *string
	StartTime *int64
	EndTime   *int64
	Page      querybuilder.Page
}

func (f Filter) Predicates() querybuilder.Predicates {
	return querybuilder.Predicates{}.
		Eq("status", f.Status).
		GtOrEq("collection_time", f.StartTime).
		LtOrEq("collection_time", f.EndTime)
}
