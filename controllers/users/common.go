package users

import (
	"log"
	"net/http"

	"github.com/SebastianOso/api-habi3/catalog"
	"github.com/SebastianOso/api-habi3/database"
	"github.com/SebastianOso/api-habi3/ledger"
	"github.com/SebastianOso/api-habi3/utils"
)

func ledgerService() *ledger.Service {
	return ledger.New(database.DB)
}

func catalogService() *catalog.Service {
	return catalog.New(database.DB, utils.GenerateSignedURL)
}

// writeLedgerError maps a ledger failure onto the response envelope using the
// ledger's own status taxonomy. Unclassified failures are logged and reported
// as a generic server error.
func writeLedgerError(w http.ResponseWriter, op string, err error) {
	status := ledger.StatusCode(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("[%s] error: %v", op, err)
		msg = "Server error"
	}
	utils.WriteJSON(w, status, utils.APIResponse{
		Success: false,
		Message: msg,
		Data:    utils.ErrorDetails(err),
	})
}

// requireUserID extracts the authenticated user or writes a 401.
func requireUserID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	uid, ok := utils.GetUserID(r)
	if !ok || uid == 0 {
		utils.WriteJSON(w, http.StatusUnauthorized, utils.APIResponse{Success: false, Message: "Unauthorized"})
		return 0, false
	}
	return uid, true
}
