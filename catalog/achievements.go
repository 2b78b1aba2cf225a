package catalog

import (
	"errors"

	"github.com/SebastianOso/api-habi3/ledger"
	"github.com/SebastianOso/api-habi3/models"

	"gorm.io/gorm"
)

type RewardView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Type        string `json:"type"`
	Value       int64  `json:"value"`
}

type QuestionView struct {
	ID           uint   `json:"id"`
	Question     string `json:"question"`
	Answer       string `json:"answer"`
	WrongAnswers string `json:"wrong_answers"`
}

type AchievementView struct {
	ID          uint           `json:"id"`
	Kind        string         `json:"kind"`
	Category    string         `json:"category"`
	Description string         `json:"description"`
	Experience  int64          `json:"experience"`
	Completed   bool           `json:"completed"`
	Rewards     []RewardView   `json:"rewards"`
	Questions   []QuestionView `json:"questions,omitempty"`
}

// AchievementsForUser lists available achievements of the given kind with the
// user's completion status and the currently available rewards. Availability
// gates new completions only; rewards already granted stay visible through
// the grant history, not here.
func (s *Service) AchievementsForUser(kind string, userID uint) ([]AchievementView, error) {
	q := s.db.
		Preload("Rewards", "available = ?", true).
		Where("available = ?", true)
	if kind != "" {
		q = q.Where("kind = ?", kind)
	}
	if kind == models.KindQuiz {
		q = q.Preload("Questions")
	}

	var achs []models.Achievement
	if err := q.Order("id ASC").Find(&achs).Error; err != nil {
		return nil, err
	}

	var done []models.Completion
	if err := s.db.Where("user_id = ?", userID).Find(&done).Error; err != nil {
		return nil, err
	}
	completed := make(map[uint]bool, len(done))
	for _, c := range done {
		completed[c.AchievementID] = true
	}

	views := make([]AchievementView, 0, len(achs))
	for _, a := range achs {
		views = append(views, achievementView(a, completed[a.ID]))
	}
	return views, nil
}

// QuizByID returns one quiz with its questions and rewards, available or not.
func (s *Service) QuizByID(id uint) (*AchievementView, error) {
	var ach models.Achievement
	err := s.db.
		Preload("Rewards").
		Preload("Questions").
		Where("kind = ?", models.KindQuiz).
		First(&ach, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrAchievementNotFound
		}
		return nil, err
	}
	v := achievementView(ach, false)
	return &v, nil
}

func achievementView(a models.Achievement, completed bool) AchievementView {
	v := AchievementView{
		ID:          a.ID,
		Kind:        a.Kind,
		Category:    a.Category,
		Description: a.Description,
		Experience:  a.Experience,
		Completed:   completed,
		Rewards:     make([]RewardView, 0, len(a.Rewards)),
	}
	for _, rw := range a.Rewards {
		v.Rewards = append(v.Rewards, RewardView{
			ID:          rw.ID,
			Name:        rw.Name,
			Description: rw.Description,
			Type:        rw.Type,
			Value:       rw.Value,
		})
	}
	for _, qu := range a.Questions {
		v.Questions = append(v.Questions, QuestionView{
			ID:           qu.ID,
			Question:     qu.Question,
			Answer:       qu.Answer,
			WrongAnswers: qu.WrongAnswers,
		})
	}
	return v
}
