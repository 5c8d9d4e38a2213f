package dto

import "time"

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// UpdateRoleRequest — role dicek terhadap constants.AllRoles di controller.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

/* =======================================================
   RESPONSE DTOs (dashboard)
   ======================================================= */

type DashboardCounts struct {
	Users     int64 `json:"users"`
	Surveys   int64 `json:"surveys"`
	Questions int64 `json:"questions"`
	Answers   int64 `json:"answers"`
	Videos    int64 `json:"videos"`
}

type RecentAnswer struct {
	AnswerID       int       `json:"answer_id"`
	Text           string    `json:"text"`
	CreatedAt      time.Time `json:"created_at"`
	AuthorName     string    `json:"author_name"`
	AuthorLastName string    `json:"author_last_name"`
	AuthorEmail    string    `json:"author_email"`
	QuestionTitle  string    `json:"question_title"`
}

type RecentSurvey struct {
	SurveyID       int       `json:"survey_id"`
	Title          string    `json:"title"`
	CreatedAt      time.Time `json:"created_at"`
	AuthorName     string    `json:"author_name"`
	AuthorLastName string    `json:"author_last_name"`
	QuestionsCount int64     `json:"questions_count"`
}

type DashboardStats struct {
	Counts        DashboardCounts  `json:"counts"`
	UsersByRole   map[string]int64 `json:"usersByRole"`
	RecentAnswers []RecentAnswer   `json:"recentAnswers"`
	RecentSurveys []RecentSurvey   `json:"recentSurveys"`
}

/* =======================================================
   RESPONSE DTOs (listing)
   ======================================================= */

type AdminUserItem struct {
	UserID       int       `json:"user_id"`
	Name         string    `json:"name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	SurveysCount int64     `json:"surveys_count"`
	AnswersCount int64     `json:"answers_count"`
}

type AdminSurveyItem struct {
	SurveyID       int       `json:"survey_id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	CreatedAt      time.Time `json:"created_at"`
	AuthorID       int       `json:"authorId"`
	AuthorName     string    `json:"author_name"`
	AuthorLastName string    `json:"author_last_name"`
	QuestionsCount int64     `json:"questions_count"`
	AnswersCount   int64     `json:"answers_count"`
}
