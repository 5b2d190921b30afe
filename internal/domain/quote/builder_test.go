package quote

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hometheater_quote/internal/domain/entities"
)

func newTestBuilder(t *testing.T) *Builder {
	t.Helper()
	c, err := entities.NewPriceCatalog("₹", []entities.CatalogCategory{
		{Name: "SOUND", Options: []entities.CatalogOption{{Label: "A", Price: 100}, {Label: "B", Price: 200}}},
		{Name: "AVR", Options: []entities.CatalogOption{{Label: "C", Price: 50}}},
	})
	require.NoError(t, err)
	return NewBuilder(c)
}

func TestBuilder_ItemsFollowCatalogOrder(t *testing.T) {
	b := newTestBuilder(t)
	sel := entities.SelectionSet{}
	sel.Select("AVR", "C")
	sel.Select("SOUND", "B")
	sel.Select("ZZZ", "q")
	sel.Select("LIGHTS", "w")

	items := b.Items(sel)
	require.Len(t, items, 4)
	assert.Equal(t, entities.Category("SOUND"), items[0].Category)
	assert.Equal(t, entities.Category("AVR"), items[1].Category)
	assert.Equal(t, entities.Category("LIGHTS"), items[2].Category)
	assert.Equal(t, entities.Category("ZZZ"), items[3].Category)
	assert.False(t, items[2].Known)
	assert.Zero(t, items[3].Price)
}

func TestBuilder_BuildSubmission(t *testing.T) {
	b := newTestBuilder(t)
	draft := entities.QuoteDraft{
		Name:       "John Smith",
		Phone:      "98765",
		Selections: entities.SelectionSet{"SOUND": "B", "AVR": "C"},
	}

	sub, err := b.BuildSubmission(draft, "tok")
	require.NoError(t, err)
	assert.Equal(t, int64(250), sub.TotalPrice)
	assert.Equal(t, "tok", sub.CaptchaToken)
	assert.Equal(t, "SOUND: B; AVR: C", sub.SelectionList().Format())

	want := "Name: John Smith\n" +
		"Phone: 98765\n" +
		"Email: Not Provided\n" +
		"Services:\n" +
		"SOUND: B - ₹200\n" +
		"AVR: C - ₹50\n" +
		"Total: ₹250\n" +
		"Notes: None"
	assert.Equal(t, want, sub.Summary)
}

func TestBuilder_SummaryWithOptionalFields(t *testing.T) {
	b := newTestBuilder(t)
	draft := entities.QuoteDraft{Name: "A", Phone: "1", Email: "a@b.c", Notes: "call after 5"}

	q := b.Preview(draft)
	assert.Zero(t, q.TotalPrice)
	assert.Equal(t, "Name: A\nPhone: 1\nEmail: a@b.c\nServices:\n\nTotal: ₹0\nNotes: call after 5", q.Summary)
}

func TestBuilder_UnknownOptionPricedAtZero(t *testing.T) {
	b := newTestBuilder(t)
	q := b.Preview(entities.QuoteDraft{Selections: entities.SelectionSet{"SOUND": "Z"}})
	require.Len(t, q.Items, 1)
	assert.Equal(t, "SOUND: Z - ₹0", b.ItemLine(q.Items[0]))
	assert.Zero(t, q.TotalPrice)
}

func TestBuilder_BuildSubmissionValidation(t *testing.T) {
	b := newTestBuilder(t)

	_, err := b.BuildSubmission(entities.QuoteDraft{Name: "A", Phone: "1"}, "  ")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, MsgCaptchaRequired, verr.Fields[FieldCaptcha])

	_, err = b.BuildSubmission(entities.QuoteDraft{Phone: "1"}, "tok")
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, FieldName)
	assert.Equal(t, "validation failed: name: Name is required", err.Error())
}
