package domain

import "github.com/kindfood/erp-system/slice"

// Category groups BOM tables. BOM tables reference it by name.
type Category struct {
	ID   string `firestore:"-" json:"id"`
	Name string `firestore:"name" json:"name"`
}

func (c Category) Matches(search string) bool {
	return slice.ContainsFold(search, c.Name)
}
