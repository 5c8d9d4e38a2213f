package dto

import "time"

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// UserProfileResponse — GET /api/users/profile
type UserProfileResponse struct {
	UserID            int       `json:"user_id"`
	Name              string    `json:"name"`
	LastName          string    `json:"last_name"`
	Email             string    `json:"email"`
	Role              string    `json:"role"`
	CreatedAt         time.Time `json:"created_at"`
	SurveysCount      int64     `json:"surveysCount"`
	QuestionsCount    int64     `json:"questionsCount"`
	AnswersCount      int64     `json:"answersCount"`
	SurveyVideosCount int64     `json:"surveyVideosCount"`
}

// UserSummary — baris minimal untuk POST /api/users/get-by-ids
type UserSummary struct {
	UserID   int    `json:"user_id"`
	Name     string `json:"name"`
	LastName string `json:"last_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

/* =======================================================
   REQUEST DTOs
   ======================================================= */

type UsersByIDsRequest struct {
	UserIDs []int `json:"userIds"`
}
