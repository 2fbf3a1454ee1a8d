package cart

import "github.com/angelmondragon/skinshop-backend/internal/catalog"

const (
	ActionAddItem        = "add_item"
	ActionRemoveItem     = "remove_item"
	ActionUpdateQuantity = "update_quantity"
	ActionClearCart      = "clear_cart"
)

// Action is the closed set of cart transitions accepted by Reduce.
type Action interface {
	Name() string
	isAction()
}

// AddItem puts one more unit of Skin in the cart. The skin is trusted to be a
// catalog entry.
type AddItem struct {
	Skin catalog.Skin
}

// RemoveItem drops the line for SkinID.
type RemoveItem struct {
	SkinID string
}

// UpdateQuantity sets the quantity of the line for SkinID. Negative values are
// treated as zero and zero removes the line.
type UpdateQuantity struct {
	SkinID   string
	Quantity int
}

// ClearCart empties the cart.
type ClearCart struct{}

func (AddItem) Name() string        { return ActionAddItem }
func (RemoveItem) Name() string     { return ActionRemoveItem }
func (UpdateQuantity) Name() string { return ActionUpdateQuantity }
func (ClearCart) Name() string      { return ActionClearCart }

func (AddItem) isAction()        {}
func (RemoveItem) isAction()     {}
func (UpdateQuantity) isAction() {}
func (ClearCart) isAction()      {}
