package users

import (
	"net/http"

	"github.com/SebastianOso/api-habi3/middleware"
	"github.com/SebastianOso/api-habi3/utils"
)

// UseItemRequest selects the item to equip. item_id 0 unequips everything.
type UseItemRequest struct {
	ItemID uint `json:"item_id"`
}

// POST /v1/shop/use
func UseItemHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUserID(w, r)
	if !ok {
		return
	}
	var req UseItemRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}
	res, err := ledgerService().UseItem(r.Context(), uid, req.ItemID)
	if err != nil {
		writeLedgerError(w, "shop-use", err)
		return
	}
	msg := "Item equipped"
	if req.ItemID == 0 {
		msg = "Items unequipped"
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: msg, Data: res})
}
