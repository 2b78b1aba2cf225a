package users

import (
	"net/http"
	"strconv"

	"github.com/SebastianOso/api-habi3/middleware"
	"github.com/SebastianOso/api-habi3/models"
	"github.com/SebastianOso/api-habi3/utils"

	"github.com/gorilla/mux"
)

// GET /v1/quizzes
func QuizListHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUserID(w, r)
	if !ok {
		return
	}
	quizzes, err := catalogService().AchievementsForUser(models.KindQuiz, uid)
	if err != nil {
		writeLedgerError(w, "quizzes", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: quizzes})
}

// GET /v1/quizzes/{id}
func QuizDetailHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireUserID(w, r); !ok {
		return
	}
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		utils.WriteJSON(w, http.StatusBadRequest, utils.APIResponse{Success: false, Message: "Invalid quiz id"})
		return
	}
	quiz, err := catalogService().QuizByID(uint(id))
	if err != nil {
		writeLedgerError(w, "quiz-detail", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Successfully", Data: quiz})
}

type CompleteQuizRequest struct {
	QuizID uint `json:"quiz_id" validate:"required"`
}

// POST /v1/quizzes/complete
func CompleteQuizHandler(w http.ResponseWriter, r *http.Request) {
	uid, ok := requireUserID(w, r)
	if !ok {
		return
	}
	var req CompleteQuizRequest
	if err := middleware.ValidateJSON(w, r, &req); err != nil {
		return
	}
	res, err := ledgerService().CompleteAchievement(r.Context(), uid, req.QuizID, models.KindQuiz)
	if err != nil {
		writeLedgerError(w, "quiz-complete", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, utils.APIResponse{Success: true, Message: "Quiz completed", Data: res})
}
