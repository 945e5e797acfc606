package entities

// AppData is the catalog document persisted as a single JSON blob.
//
// Storage model (S3):
//   - key: app_data.json
//   - no versioning, last write wins
type AppData struct {
	MenuItems []MenuItem `json:"menuItems"`
	Coupons   []Coupon   `json:"coupons"`
}

// Clone returns a deep copy so staging edits never alias stored data.
func (d AppData) Clone() AppData {
	out := AppData{
		MenuItems: make([]MenuItem, len(d.MenuItems)),
		Coupons:   make([]Coupon, len(d.Coupons)),
	}
	copy(out.MenuItems, d.MenuItems)
	for i, c := range d.Coupons {
		if c.MinOrderValue != nil {
			v := *c.MinOrderValue
			c.MinOrderValue = &v
		}
		out.Coupons[i] = c
	}
	return out
}

func (d AppData) FindItem(id string) (MenuItem, bool) {
	for _, it := range d.MenuItems {
		if it.ID == id {
			return it, true
		}
	}
	return MenuItem{}, false
}
