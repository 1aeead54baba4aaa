// Package industries implements the industry resource: listing, creation,
// and the industry-company relationship endpoint.
package industries

// Industry represents an industry row.
type Industry struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

// Relationship is the many-to-many join row between an industry and a
// company; it has no identity beyond the pair.
type Relationship struct {
	IndusCode string `json:"indus_code"`
	CompCode  string `json:"comp_code"`
}

// IndustryListing pairs the full industry list with a flattened best-effort
// list of company codes: at most one code per industry, in industry-list
// order, industries without companies contributing nothing.
type IndustryListing struct {
	Industries   []Industry
	CompanyCodes []string
}

// CreateIndustryInput for creating industries.
type CreateIndustryInput struct {
	Code     string `validate:"required"`
	Industry string `validate:"required"`
}

// CreateRelationshipInput for associating an industry with a company. No
// existence check is performed here; the store's foreign keys decide.
type CreateRelationshipInput struct {
	IndusCode string `validate:"required"`
	CompCode  string `validate:"required"`
}
