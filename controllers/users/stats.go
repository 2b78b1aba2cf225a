package users

import (
	"net/http"

	"github.com/SebastianOso/api-habi3/utils"
)

// GET /v1/users/stats
func StatsHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUserID(w, r)
	if !ok {
		return
	}
	stats, err := catalogService().StatsForUser(uid)
	if err != nil {
		writeLedgerError(w, "stats", err)
		return
	}
	// name is stored encrypted; decode before it leaves the API
	stats.Name = utils.DecryptField(stats.Name)
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: stats})
}
