package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/tappio/internal/model"
)

func TestOpeningBalances(t *testing.T) {
	doc := testDocument()

	ev := OpeningBalances(doc, model.MustDate(2010, 2, 1), "Tilinavaukset", 0)

	assert.Equal(t, 0, ev.Number)
	assert.Equal(t, model.MustDate(2010, 2, 1), ev.Date)
	assert.Equal(t, "Tilinavaukset", ev.Description)
	assert.Equal(t, []model.Entry{entry(101, 13000), entry(201, -10000), entry(202, -3000)}, ev.Entries)
}

func TestOpeningBalancesSkipResultAccounts(t *testing.T) {
	doc := testDocument()

	ev := OpeningBalances(doc, model.MustDate(2011, 1, 1), "x", 0)

	assert.Equal(t, []model.Entry{entry(101, 11000), entry(102, 5000), entry(201, -10000), entry(202, -3000)}, ev.Entries)
	assert.Equal(t, int64(3000), ev.Total(), "imbalance equals the period result")
}

func TestOpeningBalancesExcludesTheDayItself(t *testing.T) {
	doc := testDocument()

	ev := OpeningBalances(doc, model.MustDate(2010, 1, 1), "x", 0)
	assert.Empty(t, ev.Entries)
}

func TestExtract(t *testing.T) {
	doc := testDocument()
	from := model.MustDate(2010, 2, 1)
	to := model.MustDate(2010, 2, 28)

	require.NoError(t, Extract(doc, from, to, DefaultExtractOptions()))

	assert.Equal(t, from, doc.Begin)
	assert.Equal(t, to, doc.End)
	require.Len(t, doc.Events, 2)
	assert.Equal(t, "Tilinavaukset", doc.Events[0].Description)
	assert.Equal(t, from, doc.Events[0].Date)
	assert.Equal(t, "Myynti", doc.Events[1].Description)
	assert.Empty(t, ValidateEvents(doc.Events[1:], alwaysExists{}, from, to))
}

func TestExtractInclusiveBounds(t *testing.T) {
	doc := testDocument()
	day := model.MustDate(2010, 3, 5)

	require.NoError(t, Extract(doc, day, day, ExtractOptions{Description: "Avaus", Number: 99}))

	require.Len(t, doc.Events, 2)
	assert.Equal(t, 99, doc.Events[0].Number)
	assert.Equal(t, "Osto", doc.Events[1].Description)
}

func TestExtractRejectsReversedPeriod(t *testing.T) {
	doc := testDocument()
	err := Extract(doc, model.MustDate(2010, 6, 1), model.MustDate(2010, 5, 31), DefaultExtractOptions())
	require.Error(t, err)
	assert.Len(t, doc.Events, 4, "document untouched on error")
}

type alwaysExists struct{}

func (alwaysExists) Exists(int) bool {
	return true
}
