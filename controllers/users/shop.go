package users

import (
	"net/http"

	"github.com/SebastianOso/api-habi3/middleware"
	"github.com/SebastianOso/api-habi3/utils"
)

// GET /v1/shop
func ShopListHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUserID(w, r)
	if !ok {
		return
	}
	items, err := catalogService().ShopForUser(uid)
	if err != nil {
		writeLedgerError(w, "shop", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: items})
}

type BuyItemRequest struct {
	ItemID uint `json:"item_id" validate:"required"`
}

// POST /v1/shop/buy
func BuyItemHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUserID(w, r)
	if !ok {
		return
	}
	var req BuyItemRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}
	res, err := ledgerService().PurchaseItem(r.Context(), uid, req.ItemID)
	if err != nil {
		writeLedgerError(w, "shop-buy", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: res.Message, Data: res})
}
