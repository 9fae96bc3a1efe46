package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/tappio/internal/model"
)

func event(number int, date string, desc string, entries ...model.Entry) model.Event {
	d, err := model.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return model.Event{Number: number, Date: d, Description: desc, Entries: entries}
}

func entry(account int, cents int64) model.Entry {
	return model.Entry{AccountNumber: account, Cents: cents}
}

func testDocument() *model.Document {
	doc := model.NewDocument("tappio test")
	doc.Name = "2010"
	doc.Accounts = []model.Account{
		model.NewGroup("Vastaavaa",
			model.NewAccount(102, "Pankki"),
			model.NewAccount(101, "Kassa"),
		),
		model.NewGroup("Vastattavaa",
			model.NewAccount(201, "Oma pääoma"),
			model.NewAccount(202, "Velat"),
		),
		model.NewGroup("Tulos",
			model.NewGroup("Tuotot", model.NewAccount(300, "Myynti")),
			model.NewGroup("Kulut", model.NewAccount(400, "Ostot")),
		),
	}
	doc.Events = []model.Event{
		event(1, "2010-01-01", "Alku", entry(101, 10000), entry(201, -10000)),
		event(2, "2010-02-10", "Myynti", entry(102, 5000), entry(300, -5000)),
		event(3, "2010-03-05", "Osto", entry(400, 2000), entry(101, -2000)),
		event(4, "2010-01-15", "Laina", entry(101, 3000), entry(202, -3000)),
	}
	return doc
}

func descriptions(events []model.Event) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.Description
	}
	return out
}

func numbers(events []model.Event) []int {
	out := make([]int, len(events))
	for i, ev := range events {
		out[i] = ev.Number
	}
	return out
}

func TestSortEvents(t *testing.T) {
	doc := testDocument()
	SortEvents(doc.Events)
	assert.Equal(t, []string{"Alku", "Laina", "Myynti", "Osto"}, descriptions(doc.Events))
}

func TestSortEventsSameDate(t *testing.T) {
	events := []model.Event{
		event(5, "2010-01-01", "b"),
		event(2, "2010-01-01", "a"),
		event(5, "2010-01-01", "c"),
	}
	SortEvents(events)
	assert.Equal(t, []string{"a", "b", "c"}, descriptions(events), "number breaks date ties, then document order")
}

func TestRenumberEvents(t *testing.T) {
	doc := testDocument()
	RenumberEvents(doc.Events, 0)
	assert.Equal(t, []int{0, 1, 2, 3}, numbers(doc.Events))

	RenumberEvents(doc.Events, 10)
	assert.Equal(t, []int{10, 11, 12, 13}, numbers(doc.Events))
}

func TestRenumber(t *testing.T) {
	doc := testDocument()
	Renumber(doc)

	assert.Equal(t, []string{"Alku", "Laina", "Myynti", "Osto"}, descriptions(doc.Events))
	assert.Equal(t, []int{1, 2, 3, 4}, numbers(doc.Events))

	assets := doc.Accounts[model.BranchAssets].Subaccounts
	assert.Equal(t, 101, *assets[0].Number)
	assert.Equal(t, 102, *assets[1].Number)
}

func TestMoveEntries(t *testing.T) {
	doc := testDocument()

	moved := MoveEntries(doc.Events, 101, 103)
	assert.Equal(t, 3, moved)

	totals := CollectTotals(doc.Events)
	assert.NotContains(t, totals, 101)
	assert.Equal(t, int64(11000), totals[103])

	assert.Zero(t, MoveEntries(doc.Events, 999, 1))
}

func TestCollectTotals(t *testing.T) {
	doc := testDocument()

	totals := CollectTotals(doc.Events)
	assert.Equal(t, map[int]int64{
		101: 11000,
		102: 5000,
		201: -10000,
		202: -3000,
		300: -5000,
		400: 2000,
	}, totals)

	totals[101] = 0
	again := CollectTotals(doc.Events)
	assert.Equal(t, int64(11000), again[101], "each call starts from an empty map")

	assert.Empty(t, CollectTotals(nil))
}

func TestMerge(t *testing.T) {
	earlier := testDocument()
	earlier.Name = "2009"
	earlier.Version = "old"
	earlier.Begin = model.MustDate(2009, 1, 1)
	earlier.End = model.MustDate(2009, 12, 31)

	later := testDocument()
	later.Version = ""
	later.Accounts = later.Accounts[:2]

	merged, err := Merge(earlier, later)
	require.NoError(t, err)

	assert.Equal(t, "2010", merged.Name)
	assert.Equal(t, "old", merged.Version, "empty later field keeps the earlier value")
	assert.Equal(t, model.MustDate(2009, 1, 1), merged.Begin)
	assert.Equal(t, model.MustDate(2010, 12, 31), merged.End)
	assert.Len(t, merged.Accounts, 2, "accounts come from the last document")
	assert.Len(t, merged.Events, 8)

	assert.Len(t, earlier.Events, 4, "inputs are not modified")
}

func TestMergeSingleAndEmpty(t *testing.T) {
	doc := testDocument()
	merged, err := Merge(doc)
	require.NoError(t, err)
	assert.Equal(t, doc.Events, merged.Events)

	_, err = Merge()
	assert.ErrorIs(t, err, ErrNoDocuments)
}
