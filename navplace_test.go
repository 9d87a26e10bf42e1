package navplace

import (
	"testing"

	. "gopkg.in/check.v1"
)

// Hook up gocheck into the "go test" runner.
func Test(t *testing.T) { TestingT(t) }

// newTestCatalog loads the bundled catalog for table-driven tests.
func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := New()
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return c
}

type NavplaceSuite struct{}

var _ = Suite(&NavplaceSuite{})

func (s *NavplaceSuite) TestNew(c *C) {
	cat, err := New()
	c.Assert(err, IsNil)
	c.Assert(cat, Not(IsNil))
	c.Assert(len(cat.places), Not(Equals), 0)
	c.Assert(len(cat.tokens), Equals, len(cat.places))
	c.Assert(len(cat.aliasIndex), Not(Equals), 0)
	c.Assert(len(cat.categories), Not(Equals), 0)
	c.Assert(len(cat.generic), Not(Equals), 0)
	c.Assert(len(cat.sortKeys), Equals, len(cat.places))
}

func (s *NavplaceSuite) TestDefaultSharedInstance(c *C) {
	first, err := Default()
	c.Assert(err, IsNil)
	second, err := Default()
	c.Assert(err, IsNil)
	c.Assert(first, Equals, second)
}

func (s *NavplaceSuite) TestCatalogInvariants(c *C) {
	cat, err := New()
	c.Assert(err, IsNil)

	seen := map[string]bool{}
	for _, p := range cat.places {
		c.Assert(p.ID, Not(Equals), "")
		c.Assert(p.Name, Not(Equals), "")
		c.Assert(seen[p.ID], Equals, false)
		seen[p.ID] = true

		// Every country code must round-trip through the normalizer.
		code, ok := cat.NormalizeCountry(p.Country)
		c.Assert(ok, Equals, true)
		c.Assert(code, Equals, p.Country)

		// Kinds are mutually exclusive and exhaustive.
		c.Assert(p.IsAirport() && p.IsCruiseTerminal(), Equals, false)
		c.Assert(p.IsAirport() || p.IsCruiseTerminal(), Equals, true)
	}
}

func (s *NavplaceSuite) TestOptions(c *C) {
	cat, err := New(WithDefaultCategoryPhrase("city center"))
	c.Assert(err, IsNil)
	c.Assert(cat.CategoryPhrase("완전히 모르는 말"), Equals, "city center")

	cat, err = New(WithGenericTerms([]string{"부두"}))
	c.Assert(err, IsNil)
	c.Assert(cat.isGenericQuery("부두"), Equals, true)
	c.Assert(cat.isGenericQuery("터미널"), Equals, false)
}

func (s *NavplaceSuite) TestNewRejectsEmptyDefaultPhrase(c *C) {
	_, err := New(WithDefaultCategoryPhrase(""))
	c.Assert(err, Not(IsNil))
}

func (s *NavplaceSuite) TestPlacesReturnsCopy(c *C) {
	cat, err := New()
	c.Assert(err, IsNil)

	places := cat.Places()
	c.Assert(len(places), Equals, len(cat.places))
	places[0].ID = "mutated"
	c.Assert(cat.places[0].ID, Not(Equals), "mutated")
}

func (s *NavplaceSuite) TestValidateData(c *C) {
	c.Assert(ValidateData(), IsNil)
}
