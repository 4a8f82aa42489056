package domain

import "fmt"

// ItemType tells whether the poster offers an item or asks for one.
type ItemType string

const (
	ItemLending   ItemType = "lending"
	ItemBorrowing ItemType = "borrowing"
)

// ItemStatus is the loan state of an item listing.
type ItemStatus string

const (
	ItemAvailable ItemStatus = "available"
	ItemBorrowed  ItemStatus = "borrowed"
)

// ParseItemType validates a wire value.
func ParseItemType(s string) (ItemType, error) {
	switch t := ItemType(s); t {
	case ItemLending, ItemBorrowing:
		return t, nil
	}
	return "", fmt.Errorf("%w: type must be one of lending, borrowing", ErrValidation)
}

// Item is a loan listing. Exactly one of Owner/Borrower is set while the
// item is available; both are set once it has been claimed.
type Item struct {
	ID          string     `json:"_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Type        ItemType   `json:"type"`
	Status      ItemStatus `json:"status"`
	Owner       string     `json:"owner,omitempty"`
	Borrower    string     `json:"borrower,omitempty"`
}

// NewItem builds an available listing attributed to the poster: the poster
// is the owner of a lending item and the borrower of a borrowing request.
func NewItem(name, description string, typ ItemType, actingName string) *Item {
	it := &Item{
		Name:        name,
		Description: description,
		Type:        typ,
		Status:      ItemAvailable,
	}
	if typ == ItemLending {
		it.Owner = actingName
	} else {
		it.Borrower = actingName
	}
	return it
}

// ClaimField returns the party field a claimer fills in for this type.
func (t ItemType) ClaimField() string {
	if t == ItemLending {
		return "borrower"
	}
	return "owner"
}

// IsParty reports whether name is the owner or borrower of the item.
func (it *Item) IsParty(name string) bool {
	return name != "" && (it.Owner == name || it.Borrower == name)
}
