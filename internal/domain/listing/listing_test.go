package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staynest/service-stay/internal/pkg/domain"
)

func validFields() Fields {
	return Fields{
		Name:        "Beach House",
		Location:    "Miami",
		PriceLabel:  "$350/night",
		Description: "A stunning house near the beach.",
		ImageURL:    "https://img.example.com/hotel3.jpg",
	}
}

func TestFields_Validate(t *testing.T) {
	require.NoError(t, validFields().Validate())

	blank := []func(*Fields){
		func(f *Fields) { f.Name = "" },
		func(f *Fields) { f.Location = " " },
		func(f *Fields) { f.PriceLabel = "" },
		func(f *Fields) { f.Description = "" },
		func(f *Fields) { f.ImageURL = "\t" },
	}
	for i, mutate := range blank {
		f := validFields()
		mutate(&f)
		err := f.Validate()
		assert.True(t, domain.IsValidation(err), "case %d", i)
	}
}

func TestListing_Matches(t *testing.T) {
	l := Reconstruct("1", validFields())

	assert.True(t, l.Matches("miami"))
	assert.True(t, l.Matches("BEACH"))
	assert.True(t, l.Matches("h Ho"))
	assert.False(t, l.Matches("new york"))
}

func TestListing_NightlyRate(t *testing.T) {
	assert.Equal(t, 350.0, Reconstruct("1", validFields()).NightlyRate())
}

func TestRecord_Decode(t *testing.T) {
	l, err := RecordFrom("id-1", validFields()).Decode()
	require.NoError(t, err)
	assert.Equal(t, "id-1", l.ID())
	assert.Equal(t, validFields(), l.Fields())
}

func TestRecord_DecodeRejectsMissingFields(t *testing.T) {
	empty := ""
	cases := map[string]func(*Record){
		"no id":          func(r *Record) { r.ID = nil },
		"blank id":       func(r *Record) { r.ID = &empty },
		"no name":        func(r *Record) { r.Name = nil },
		"blank location": func(r *Record) { r.Location = &empty },
		"no price":       func(r *Record) { r.PriceLabel = nil },
		"no description": func(r *Record) { r.Description = nil },
		"no image":       func(r *Record) { r.ImageURL = nil },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			rec := RecordFrom("id-1", validFields())
			mutate(&rec)
			_, err := rec.Decode()
			assert.ErrorIs(t, err, ErrUndecodable)
		})
	}
}

func TestRecord_DecodeAllowsEmptyPriceAndImage(t *testing.T) {
	f := validFields()
	f.PriceLabel = ""
	f.ImageURL = ""
	l, err := RecordFrom("id-1", f).Decode()
	require.NoError(t, err)
	assert.Equal(t, 0.0, l.NightlyRate())
}
