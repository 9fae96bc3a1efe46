package accounts

import (
	"fmt"

	"github.com/cleared-dev/tappio/internal/model"
)

// Chart names accepted by DefaultTree.
const (
	ChartEmpty = "empty"
	ChartBasic = "basic"
)

// DefaultTree returns the account trees for a new document: the three
// top-level groups, optionally filled with a small starter chart.
func DefaultTree(chart string) ([]model.Account, error) {
	switch chart {
	case "", ChartEmpty:
		return []model.Account{
			model.NewGroup("Vastaavaa"),
			model.NewGroup("Vastattavaa"),
			model.NewGroup("Tulos"),
		}, nil
	case ChartBasic:
		return basicTree(), nil
	default:
		return nil, fmt.Errorf("unknown chart %q: want %s or %s", chart, ChartEmpty, ChartBasic)
	}
}

func basicTree() []model.Account {
	return []model.Account{
		model.NewGroup("Vastaavaa",
			model.NewGroup("Saamiset",
				model.NewAccount(1700, "Myyntisaamiset"),
			),
			model.NewGroup("Rahat ja pankkisaamiset",
				model.NewAccount(1910, "Käteisvarat"),
				model.NewAccount(1920, "Pankkitili"),
			),
		),
		model.NewGroup("Vastattavaa",
			model.NewGroup("Oma pääoma",
				model.NewAccount(2000, "Osakepääoma"),
				model.NewAccount(2250, "Edellisten tilikausien voitto"),
			),
			model.NewGroup("Vieras pääoma",
				model.NewAccount(2870, "Ostovelat"),
				model.NewAccount(2939, "Arvonlisäverovelka"),
			),
		),
		model.NewGroup("Tulos",
			model.NewGroup("Liikevaihto",
				model.NewAccount(3000, "Myynti"),
			),
			model.NewGroup("Kulut",
				model.NewAccount(4000, "Ostot"),
				model.NewAccount(7000, "Toimitilakulut"),
				model.NewAccount(8000, "Muut kulut"),
			),
		),
	}
}
