package users

import (
	"net/http"

	"github.com/SebastianOso/api-habi3/middleware"
	"github.com/SebastianOso/api-habi3/models"
	"github.com/SebastianOso/api-habi3/utils"
)

// GET /v1/missions
func MissionListHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUserID(w, r)
	if !ok {
		return
	}
	missions, err := catalogService().AchievementsForUser(models.KindMission, uid)
	if err != nil {
		writeLedgerError(w, "missions", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: missions})
}

type CompleteMissionRequest struct {
	MissionID uint `json:"mission_id" validate:"required"`
}

// POST /v1/missions/complete
func CompleteMissionHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUserID(w, r)
	if !ok {
		return
	}
	var req CompleteMissionRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}
	res, err := ledgerService().CompleteAchievement(r.Context(), uid, req.MissionID, models.KindMission)
	if err != nil {
		writeLedgerError(w, "mission-complete", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Mission completed", Data: res})
}
