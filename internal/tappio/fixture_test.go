package tappio

import (
	"github.com/cleared-dev/tappio/internal/model"
)

const minimalDocument = `(identity "Tappio" version "v1" finances (fiscal-year "t" (date 2010 1 1) (date 2010 12 31) (account-map (account -1 "A" ()) (account -1 "B" ()) (account -1 "C" ())) ()))`

// sampleDocument is a small but complete ledger: nested groups, a zero
// amount, escaped text and an event without entries.
func sampleDocument() *model.Document {
	doc := model.NewDocument("Tappio 0.22")
	doc.Name = "Tilikausi 2010"
	doc.Accounts = []model.Account{
		model.NewGroup("Vastaavaa",
			model.NewGroup("Rahat",
				model.NewAccount(101, "Kassa"),
				model.NewAccount(102, `Pankkitili "Nordea"`),
			),
		),
		model.NewGroup("Vastattavaa",
			model.NewAccount(201, "Oma pääoma"),
		),
		model.NewGroup("Tulos",
			model.NewAccount(300, "Myynti"),
			model.NewAccount(400, `Kulut\muut`),
		),
	}
	doc.Events = []model.Event{
		{
			Number:      1,
			Date:        model.MustDate(2010, 1, 1),
			Description: "Tilinavaukset",
			Entries: []model.Entry{
				{AccountNumber: 101, Cents: 10000},
				{AccountNumber: 201, Cents: -10000},
			},
		},
		{
			Number:      2,
			Date:        model.MustDate(2010, 3, 15),
			Description: "Myynti\nlasku 12",
			Entries: []model.Entry{
				{AccountNumber: 102, Cents: 12550},
				{AccountNumber: 300, Cents: -12550},
				{AccountNumber: 400, Cents: 0},
			},
		},
		{
			Number:      3,
			Date:        model.MustDate(2010, 12, 31),
			Description: "Tyhjä",
		},
	}
	return doc
}
