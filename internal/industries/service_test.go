package industries

import (
	"context"
	"fmt"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/biztime/biztime/internal/platform/httpx"
)

type memoryIndustryRepo struct {
	industries    map[string]Industry
	relationships []Relationship
}

func newMemoryIndustryRepo() *memoryIndustryRepo {
	return &memoryIndustryRepo{industries: make(map[string]Industry)}
}

func (r *memoryIndustryRepo) List(ctx context.Context) (IndustryListing, error) {
	listing := IndustryListing{Industries: []Industry{}, CompanyCodes: []string{}}

	codes := make([]string, 0, len(r.industries))
	for code := range r.industries {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	for _, code := range codes {
		listing.Industries = append(listing.Industries, r.industries[code])
		first := ""
		for _, rel := range r.relationships {
			if rel.IndusCode != code {
				continue
			}
			if first == "" || rel.CompCode < first {
				first = rel.CompCode
			}
		}
		if first != "" {
			listing.CompanyCodes = append(listing.CompanyCodes, first)
		}
	}
	return listing, nil
}

func (r *memoryIndustryRepo) Create(ctx context.Context, input CreateIndustryInput) (Industry, error) {
	if _, ok := r.industries[input.Code]; ok {
		return Industry{}, fmt.Errorf("industries: create: %w", httpx.ErrDuplicate)
	}
	ind := Industry{Code: input.Code, Industry: input.Industry}
	r.industries[ind.Code] = ind
	return ind, nil
}

func (r *memoryIndustryRepo) CreateRelationship(ctx context.Context, input CreateRelationshipInput) (Relationship, error) {
	for _, rel := range r.relationships {
		if rel.IndusCode == input.IndusCode && rel.CompCode == input.CompCode {
			return Relationship{}, fmt.Errorf("industries: create relationship: %w", httpx.ErrDuplicate)
		}
	}
	rel := Relationship{IndusCode: input.IndusCode, CompCode: input.CompCode}
	r.relationships = append(r.relationships, rel)
	return rel, nil
}

func TestCreateIndustryAndRelationship(t *testing.T) {
	svc := NewService(newMemoryIndustryRepo())
	ctx := context.Background()

	ind, err := svc.Create(ctx, CreateIndustryInput{Code: "acct", Industry: "Accounting"})
	require.NoError(t, err)
	require.Equal(t, Industry{Code: "acct", Industry: "Accounting"}, ind)

	rel, err := svc.CreateRelationship(ctx, CreateRelationshipInput{IndusCode: "acct", CompCode: "ibm"})
	require.NoError(t, err)
	require.Equal(t, Relationship{IndusCode: "acct", CompCode: "ibm"}, rel)
}

func TestCreateIndustryRequiresCodeAndName(t *testing.T) {
	svc := NewService(newMemoryIndustryRepo())

	_, err := svc.Create(context.Background(), CreateIndustryInput{Industry: "Accounting"})
	require.ErrorIs(t, err, httpx.ErrValidation)

	_, err = svc.CreateRelationship(context.Background(), CreateRelationshipInput{IndusCode: "acct"})
	require.ErrorIs(t, err, httpx.ErrValidation)
}

func TestListFlattensOneCompanyPerIndustry(t *testing.T) {
	repo := newMemoryIndustryRepo()
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateIndustryInput{Code: "acct", Industry: "Accounting"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateIndustryInput{Code: "tech", Industry: "Technology"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateIndustryInput{Code: "zero", Industry: "Empty"})
	require.NoError(t, err)

	_, err = svc.CreateRelationship(ctx, CreateRelationshipInput{IndusCode: "acct", CompCode: "ibm"})
	require.NoError(t, err)
	_, err = svc.CreateRelationship(ctx, CreateRelationshipInput{IndusCode: "tech", CompCode: "apple"})
	require.NoError(t, err)
	_, err = svc.CreateRelationship(ctx, CreateRelationshipInput{IndusCode: "tech", CompCode: "ibm"})
	require.NoError(t, err)

	listing, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, listing.Industries, 3)
	// One code per related industry, none for the empty one, no null
	// placeholder.
	require.Equal(t, []string{"ibm", "apple"}, listing.CompanyCodes)
}

func TestDuplicateRelationshipIsRejected(t *testing.T) {
	svc := NewService(newMemoryIndustryRepo())
	ctx := context.Background()

	_, err := svc.CreateRelationship(ctx, CreateRelationshipInput{IndusCode: "acct", CompCode: "ibm"})
	require.NoError(t, err)

	_, err = svc.CreateRelationship(ctx, CreateRelationshipInput{IndusCode: "acct", CompCode: "ibm"})
	require.ErrorIs(t, err, httpx.ErrDuplicate)
}
